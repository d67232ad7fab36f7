package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/fermerce/backend/internal/domain/payment"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// minorUnitFactor converts a major-unit amount to the minor unit Paystack expects
var minorUnitFactor = decimal.NewFromInt(100)

// Adapter implements the payment Gateway port against the Paystack API
type Adapter struct {
	config     Config
	httpClient *http.Client
}

// NewAdapter creates a new Paystack adapter
func NewAdapter(config Config) (*Adapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

// CreateCharge initializes a transaction for the given order total.
// Any transport, status or decoding failure surfaces as a server error.
func (a *Adapter) CreateCharge(ctx context.Context, req payment.ChargeRequest) (*payment.ChargeResponse, error) {
	body := initializeRequest{
		Email:     req.Email,
		Amount:    toMinorUnit(req.Amount),
		Reference: req.Reference,
		Currency:  req.Currency,
	}

	envelope, err := a.post(ctx, a.config.ChargePath, body)
	if err != nil {
		return nil, shared.ErrServer
	}

	var data initializeData
	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, &data); err != nil {
			return nil, shared.ErrServer
		}
	}

	return &payment.ChargeResponse{
		Status:           envelope.Status,
		Message:          envelope.Message,
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}, nil
}

// CreateAuthorizedCharge charges a previously stored card authorization
func (a *Adapter) CreateAuthorizedCharge(ctx context.Context, req payment.AuthorizedChargeRequest) (*payment.ChargeResponse, error) {
	body := authorizedChargeRequest{
		Email:             req.Email,
		Amount:            toMinorUnit(req.Amount),
		AuthorizationCode: req.AuthorizationCode,
		Reference:         req.Reference,
		Currency:          req.Currency,
	}

	envelope, err := a.post(ctx, a.config.AuthorizedChargePath, body)
	if err != nil {
		return nil, shared.ErrServer
	}

	var data initializeData
	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, &data); err != nil {
			return nil, shared.ErrServer
		}
	}

	return &payment.ChargeResponse{
		Status:           envelope.Status,
		Message:          envelope.Message,
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}, nil
}

// VerifyCharge looks up the outcome of a transaction by reference.
// Failures surface as bad data so callers treat the reference as unusable.
func (a *Adapter) VerifyCharge(ctx context.Context, reference string) (*payment.VerifyResponse, error) {
	if reference == "" {
		return nil, shared.ErrBadData
	}

	path := a.config.VerifyPath + "/" + url.PathEscape(reference)
	envelope, err := a.get(ctx, path)
	if err != nil {
		return nil, shared.ErrBadData
	}

	var data verifyData
	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, &data); err != nil {
			return nil, shared.ErrBadData
		}
	}

	return &payment.VerifyResponse{
		Status:       envelope.Status,
		Message:      envelope.Message,
		Reference:    data.Reference,
		ChargeStatus: data.Status,
		Amount:       fromMinorUnit(data.Amount),
		Currency:     data.Currency,
		Authorization: payment.CardAuthorization{
			AuthorizationCode: data.Authorization.AuthorizationCode,
			Bin:               data.Authorization.Bin,
			Last4:             data.Authorization.Last4,
			ExpMonth:          data.Authorization.ExpMonth,
			ExpYear:           data.Authorization.ExpYear,
			CardType:          data.Authorization.CardType,
			Bank:              data.Authorization.Bank,
			CountryCode:       data.Authorization.CountryCode,
			Brand:             data.Authorization.Brand,
			Reusable:          data.Authorization.Reusable,
		},
	}, nil
}

// post sends a JSON request and decodes the Paystack envelope
func (a *Adapter) post(ctx context.Context, path string, body interface{}) (*apiResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("paystack: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.config.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("paystack: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return a.do(req)
}

// get sends a GET request and decodes the Paystack envelope
func (a *Adapter) get(ctx context.Context, path string) (*apiResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.config.BaseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("paystack: build request: %w", err)
	}

	return a.do(req)
}

func (a *Adapter) do(req *http.Request) (*apiResponse, error) {
	req.Header.Set("Authorization", "Bearer "+a.config.SecretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paystack: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("paystack: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("paystack: unexpected status %d", resp.StatusCode)
	}

	var envelope apiResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("paystack: decode response: %w", err)
	}
	return &envelope, nil
}

func toMinorUnit(amount decimal.Decimal) int64 {
	return amount.Mul(minorUnitFactor).Round(0).IntPart()
}

func fromMinorUnit(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount).Div(minorUnitFactor)
}

// Ensure Adapter implements the Gateway port
var _ payment.Gateway = (*Adapter)(nil)
