package payment

import (
	"time"

	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferPayment is an outbound payout to a recipient. Its lifecycle runs
// pending -> completed/failed through the generic status lookup.
type TransferPayment struct {
	shared.BaseEntity
	Amount       decimal.Decimal
	Currency     string
	Source       string
	Reason       string
	RecipientID  uuid.UUID
	TransferCode string
	StatusID     uuid.UUID
}

// NewTransferPayment creates a payout in its initial status
func NewTransferPayment(recipientID, statusID uuid.UUID, amount decimal.Decimal, currency, source, reason string) (*TransferPayment, error) {
	if recipientID == uuid.Nil || statusID == uuid.Nil {
		return nil, shared.ErrBadData
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Transfer amount must be positive")
	}
	if currency == "" {
		currency = "NGN"
	}
	if source == "" {
		source = "balance"
	}
	return &TransferPayment{
		BaseEntity:  shared.NewBaseEntity(),
		Amount:      amount.Round(2),
		Currency:    currency,
		Source:      source,
		Reason:      reason,
		RecipientID: recipientID,
		StatusID:    statusID,
	}, nil
}

// Complete records the provider transfer code and final status
func (t *TransferPayment) Complete(transferCode string, statusID uuid.UUID) {
	t.TransferCode = transferCode
	t.StatusID = statusID
	t.UpdatedAt = time.Now()
}
