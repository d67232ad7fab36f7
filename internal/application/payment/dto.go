package payment

import (
	"time"

	"github.com/fermerce/backend/internal/domain/payment"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateChargeRequest represents a request to charge an order
type CreateChargeRequest struct {
	OrderID  uuid.UUID       `json:"order_id" binding:"required"`
	Total    decimal.Decimal `json:"total" binding:"required"`
	Currency string          `json:"currency" binding:"omitempty,len=3"`
}

// CreateAuthorizedChargeRequest represents a request to charge an order
// against a previously saved card
type CreateAuthorizedChargeRequest struct {
	OrderID  uuid.UUID       `json:"order_id" binding:"required"`
	CardID   uuid.UUID       `json:"card_id" binding:"required"`
	Total    decimal.Decimal `json:"total" binding:"required"`
	Currency string          `json:"currency" binding:"omitempty,len=3"`
}

// RefundRequest represents a request to refund a payment
type RefundRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// ChargeResponse carries the payment record and the provider checkout data
type ChargeResponse struct {
	Payment          PaymentResponse `json:"payment"`
	AuthorizationURL string          `json:"authorization_url,omitempty"`
	AccessCode       string          `json:"access_code,omitempty"`
}

// VerifyResponse carries the payment record and the verified charge state
type VerifyResponse struct {
	Payment      PaymentResponse `json:"payment"`
	ChargeStatus string          `json:"charge_status"`
	Succeeded    bool            `json:"succeeded"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID        uuid.UUID       `json:"id"`
	Reference string          `json:"reference"`
	Total     decimal.Decimal `json:"total"`
	UserID    uuid.UUID       `json:"user_id"`
	OrderID   uuid.UUID       `json:"order_id"`
	StatusID  uuid.UUID       `json:"status_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SavedCardResponse represents a saved card in API responses. The
// authorization code never leaves the system.
type SavedCardResponse struct {
	ID          uuid.UUID `json:"id"`
	Bin         string    `json:"bin"`
	Last4       string    `json:"last4"`
	ExpMonth    string    `json:"exp_month"`
	ExpYear     string    `json:"exp_year"`
	CardType    string    `json:"card_type"`
	Bank        string    `json:"bank"`
	CountryCode string    `json:"country_code"`
	Brand       string    `json:"brand"`
	Reusable    bool      `json:"reusable"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateRecipientRequest represents a request to register a payout recipient
type CreateRecipientRequest struct {
	Type          string `json:"type" binding:"omitempty,oneof=nuban basa mobile_money"`
	Name          string `json:"name" binding:"required,min=1,max=200"`
	Currency      string `json:"currency" binding:"omitempty,len=3"`
	AccountNumber string `json:"account_number" binding:"required,min=6,max=20"`
	BankCode      string `json:"bank_code" binding:"required,min=2,max=10"`
}

// RecipientResponse represents a payout recipient in API responses
type RecipientResponse struct {
	ID            uuid.UUID `json:"id"`
	Type          string    `json:"type"`
	Name          string    `json:"name"`
	Currency      string    `json:"currency"`
	AccountNumber string    `json:"account_number"`
	BankCode      string    `json:"bank_code"`
	RecipientCode string    `json:"recipient_code"`
	StatusID      uuid.UUID `json:"status_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateTransferRequest represents a request to pay out to a recipient
type CreateTransferRequest struct {
	RecipientID uuid.UUID       `json:"recipient_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency" binding:"omitempty,len=3"`
	Source      string          `json:"source" binding:"omitempty,oneof=balance"`
	Reason      string          `json:"reason" binding:"max=500"`
}

// TransferResponse represents a transfer in API responses
type TransferResponse struct {
	ID           uuid.UUID       `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Source       string          `json:"source"`
	Reason       string          `json:"reason"`
	RecipientID  uuid.UUID       `json:"recipient_id"`
	TransferCode string          `json:"transfer_code"`
	StatusID     uuid.UUID       `json:"status_id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CountResponse reports the total number of records for an entity
type CountResponse struct {
	TotalCount int64 `json:"total_count"`
}

// ListFilter represents filter options for payment listings
type ListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

func (f ListFilter) domainFilter() shared.Filter {
	return shared.Filter{
		Page:     f.Page,
		PageSize: f.PageSize,
		OrderBy:  f.OrderBy,
		OrderDir: f.OrderDir,
		Search:   f.Search,
	}.Normalize()
}

// ToPaymentResponse converts a domain Payment to PaymentResponse
func ToPaymentResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		Reference: p.Reference,
		Total:     p.Total,
		UserID:    p.UserID,
		OrderID:   p.OrderID,
		StatusID:  p.StatusID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToPaymentResponses converts a slice of domain Payments to PaymentResponses
func ToPaymentResponses(payments []payment.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToPaymentResponse(&p)
	}
	return responses
}

// ToSavedCardResponse converts a domain SavedCard to SavedCardResponse
func ToSavedCardResponse(c *payment.SavedCard) SavedCardResponse {
	return SavedCardResponse{
		ID:          c.ID,
		Bin:         c.Bin,
		Last4:       c.Last4,
		ExpMonth:    c.ExpMonth,
		ExpYear:     c.ExpYear,
		CardType:    c.CardType,
		Bank:        c.Bank,
		CountryCode: c.CountryCode,
		Brand:       c.Brand,
		Reusable:    c.Reusable,
		CreatedAt:   c.CreatedAt,
	}
}

// ToSavedCardResponses converts a slice of domain SavedCards to SavedCardResponses
func ToSavedCardResponses(cards []payment.SavedCard) []SavedCardResponse {
	responses := make([]SavedCardResponse, len(cards))
	for i, c := range cards {
		responses[i] = ToSavedCardResponse(&c)
	}
	return responses
}

// ToRecipientResponse converts a domain PaymentRecipient to RecipientResponse
func ToRecipientResponse(r *payment.PaymentRecipient) RecipientResponse {
	return RecipientResponse{
		ID:            r.ID,
		Type:          r.Type,
		Name:          r.Name,
		Currency:      r.Currency,
		AccountNumber: r.AccountNumber,
		BankCode:      r.BankCode,
		RecipientCode: r.RecipientCode,
		StatusID:      r.StatusID,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// ToRecipientResponses converts a slice of domain PaymentRecipients to RecipientResponses
func ToRecipientResponses(recipients []payment.PaymentRecipient) []RecipientResponse {
	responses := make([]RecipientResponse, len(recipients))
	for i, r := range recipients {
		responses[i] = ToRecipientResponse(&r)
	}
	return responses
}

// ToTransferResponse converts a domain TransferPayment to TransferResponse
func ToTransferResponse(t *payment.TransferPayment) TransferResponse {
	return TransferResponse{
		ID:           t.ID,
		Amount:       t.Amount,
		Currency:     t.Currency,
		Source:       t.Source,
		Reason:       t.Reason,
		RecipientID:  t.RecipientID,
		TransferCode: t.TransferCode,
		StatusID:     t.StatusID,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// ToTransferResponses converts a slice of domain TransferPayments to TransferResponses
func ToTransferResponses(transfers []payment.TransferPayment) []TransferResponse {
	responses := make([]TransferResponse, len(transfers))
	for i, t := range transfers {
		responses[i] = ToTransferResponse(&t)
	}
	return responses
}
