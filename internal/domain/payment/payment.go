package payment

import (
	"time"

	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is the record of a charge against an order. It is append-mostly:
// after creation only the status and refund metadata change. The reference
// is generated once at creation and backed by a unique index.
type Payment struct {
	shared.BaseEntity
	Reference  string
	Total      decimal.Decimal
	UserID     uuid.UUID
	StatusID   uuid.UUID
	OrderID    uuid.UUID
	RefundMeta []byte
}

// NewPayment creates a payment for an order with a fresh reference
func NewPayment(userID, orderID, statusID uuid.UUID, total decimal.Decimal) (*Payment, error) {
	if userID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}
	if orderID == uuid.Nil || statusID == uuid.Nil {
		return nil, shared.ErrBadData
	}
	if total.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TOTAL", "Payment total cannot be negative")
	}
	return &Payment{
		BaseEntity: shared.NewBaseEntity(),
		Reference:  shared.GeneratePaymentReference(),
		Total:      total.Round(2),
		UserID:     userID,
		StatusID:   statusID,
		OrderID:    orderID,
	}, nil
}

// IsOwnedBy reports whether the payment belongs to the given user
func (p *Payment) IsOwnedBy(userID uuid.UUID) bool {
	return p.UserID == userID
}

// SetStatus moves the payment to a new lifecycle status
func (p *Payment) SetStatus(statusID uuid.UUID) {
	p.StatusID = statusID
	p.UpdatedAt = time.Now()
}

// RecordRefund stores the raw provider refund payload alongside the payment
func (p *Payment) RecordRefund(statusID uuid.UUID, meta []byte) {
	p.StatusID = statusID
	p.RefundMeta = meta
	p.UpdatedAt = time.Now()
}
