package market

import (
	"context"
	"strings"

	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Tracking is an append-only note/location entry attached to an order
// item. Entries are never updated or deleted once written.
type Tracking struct {
	shared.BaseEntity
	OrderItemID uuid.UUID
	Location    string
	Note        string
}

// NewTracking creates a tracking entry for an order item
func NewTracking(orderItemID uuid.UUID, location, note string) (*Tracking, error) {
	if orderItemID == uuid.Nil {
		return nil, shared.ErrBadData
	}
	location = strings.TrimSpace(location)
	note = strings.TrimSpace(note)
	if location == "" && note == "" {
		return nil, shared.NewDomainError("INVALID_TRACKING", "Tracking entry needs a location or a note")
	}
	return &Tracking{
		BaseEntity:  shared.NewBaseEntity(),
		OrderItemID: orderItemID,
		Location:    location,
		Note:        note,
	}, nil
}

// TrackingRepository is the persistence port for tracking entries.
// There is deliberately no update or delete.
type TrackingRepository interface {
	Save(ctx context.Context, tracking *Tracking) error
	FindByOrderItem(ctx context.Context, orderItemID uuid.UUID, filter shared.Filter) ([]Tracking, error)
	CountByOrderItem(ctx context.Context, orderItemID uuid.UUID) (int64, error)
}
