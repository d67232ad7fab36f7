package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// Gateway is the port to the external payment provider. The adapter keeps
// a flat error-mapping policy: transport or decoding failure surfaces as a
// Server error for charge creation and BadData for verification. It never
// retries and does not distinguish provider 4xx from network failure.
type Gateway interface {
	CreateCharge(ctx context.Context, req ChargeRequest) (*ChargeResponse, error)
	CreateAuthorizedCharge(ctx context.Context, req AuthorizedChargeRequest) (*ChargeResponse, error)
	VerifyCharge(ctx context.Context, reference string) (*VerifyResponse, error)
}

// ChargeRequest initiates a charge for an order total. Amount is sent in
// the provider's minor currency unit.
type ChargeRequest struct {
	Email     string
	Amount    decimal.Decimal
	Reference string
	Currency  string
}

// AuthorizedChargeRequest charges a previously saved card authorization
type AuthorizedChargeRequest struct {
	Email             string
	Amount            decimal.Decimal
	AuthorizationCode string
	Reference         string
	Currency          string
}

// ChargeResponse is the provider's answer to a charge initiation
type ChargeResponse struct {
	Status           bool
	Message          string
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// VerifyResponse is the provider's answer to a charge verification
type VerifyResponse struct {
	Status        bool
	Message       string
	Reference     string
	ChargeStatus  string
	Amount        decimal.Decimal
	Currency      string
	Authorization CardAuthorization
}

// CardAuthorization is the reusable card token embedded in a verification
type CardAuthorization struct {
	AuthorizationCode string
	Bin               string
	Last4             string
	ExpMonth          string
	ExpYear           string
	CardType          string
	Bank              string
	CountryCode       string
	Brand             string
	Reusable          bool
}

// Succeeded reports whether the verified charge went through
func (v *VerifyResponse) Succeeded() bool {
	return v.Status && v.ChargeStatus == "success"
}
