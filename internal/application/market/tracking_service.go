package market

import (
	"context"
	"errors"

	"github.com/fermerce/backend/internal/domain/market"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TrackingService appends tracking entries to order items. Entries are
// append-only; there is no update or delete path.
type TrackingService struct {
	trackingRepo market.TrackingRepository
	orderRepo    market.OrderRepository
}

// NewTrackingService creates a new TrackingService
func NewTrackingService(trackingRepo market.TrackingRepository, orderRepo market.OrderRepository) *TrackingService {
	return &TrackingService{
		trackingRepo: trackingRepo,
		orderRepo:    orderRepo,
	}
}

// Create appends a tracking entry to an order item
func (s *TrackingService) Create(ctx context.Context, orderItemID uuid.UUID, req CreateTrackingRequest) (*TrackingResponse, error) {
	if _, err := s.orderRepo.FindItemByID(ctx, orderItemID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Order item not found")
		}
		return nil, err
	}

	entry, err := market.NewTracking(orderItemID, req.Location, req.Note)
	if err != nil {
		return nil, err
	}

	if err := s.trackingRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	response := ToTrackingResponse(entry)
	return &response, nil
}

// ListByOrderItem retrieves a page of an order item's tracking entries
func (s *TrackingService) ListByOrderItem(ctx context.Context, orderItemID uuid.UUID, filter ListFilter) (*shared.Page[TrackingResponse], error) {
	domainFilter := filter.domainFilter()

	entries, err := s.trackingRepo.FindByOrderItem(ctx, orderItemID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.trackingRepo.CountByOrderItem(ctx, orderItemID)
	if err != nil {
		return nil, err
	}

	page := shared.NewPage(ToTrackingResponses(entries), total, domainFilter)
	return &page, nil
}
