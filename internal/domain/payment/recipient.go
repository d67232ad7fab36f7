package payment

import (
	"strings"
	"time"

	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PaymentRecipient holds the bank-transfer metadata for a payout target.
// Recipients are soft-deleted so historical transfers keep a valid link.
type PaymentRecipient struct {
	shared.BaseEntity
	Type          string
	Name          string
	Currency      string
	AccountNumber string
	BankCode      string
	RecipientCode string
	StatusID      uuid.UUID
	IsDeleted     bool
}

// NewPaymentRecipient creates a payout recipient
func NewPaymentRecipient(recipientType, name, currency, accountNumber, bankCode, recipientCode string, statusID uuid.UUID) (*PaymentRecipient, error) {
	name = strings.TrimSpace(name)
	accountNumber = strings.TrimSpace(accountNumber)
	if name == "" || accountNumber == "" || bankCode == "" {
		return nil, shared.ErrBadData
	}
	if currency == "" {
		currency = "NGN"
	}
	return &PaymentRecipient{
		BaseEntity:    shared.NewBaseEntity(),
		Type:          recipientType,
		Name:          name,
		Currency:      currency,
		AccountNumber: accountNumber,
		BankCode:      bankCode,
		RecipientCode: recipientCode,
		StatusID:      statusID,
	}, nil
}

// MarkDeleted soft-deletes the recipient
func (r *PaymentRecipient) MarkDeleted() {
	r.IsDeleted = true
	r.UpdatedAt = time.Now()
}
