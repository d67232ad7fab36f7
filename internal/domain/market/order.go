package market

import (
	"context"

	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Order is the minimal order aggregate the payment flow hangs off: a
// payment links one-to-one to an order, and tracking notes attach to its
// items.
type Order struct {
	shared.BaseEntity
	UserID      uuid.UUID
	OrderNumber string
	Items       []OrderItem
}

// OrderItem is a single line of an order
type OrderItem struct {
	shared.BaseEntity
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
}

// NewOrder creates an order with a generated order number
func NewOrder(userID uuid.UUID) (*Order, error) {
	if userID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}
	return &Order{
		BaseEntity:  shared.NewBaseEntity(),
		UserID:      userID,
		OrderNumber: shared.GeneratePaymentReference(),
	}, nil
}

// AddItem appends a line to the order
func (o *Order) AddItem(productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	o.Items = append(o.Items, OrderItem{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    o.ID,
		ProductID:  productID,
		Quantity:   quantity,
	})
	return nil
}

// OrderRepository is the persistence port for orders
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*Order, error)
	FindItemByID(ctx context.Context, itemID uuid.UUID) (*OrderItem, error)
	Save(ctx context.Context, order *Order) error
}
