package market

import (
	"time"

	"github.com/fermerce/backend/internal/domain/market"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreateStatusRequest represents a request to create a status lookup
type CreateStatusRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// UpdateStatusRequest represents a request to rename a status lookup
type UpdateStatusRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// StatusResponse represents a status lookup in API responses
type StatusResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateTrackingRequest represents a request to append a tracking entry
type CreateTrackingRequest struct {
	Location string `json:"location" binding:"max=200"`
	Note     string `json:"note" binding:"max=500"`
}

// TrackingResponse represents a tracking entry in API responses
type TrackingResponse struct {
	ID          uuid.UUID `json:"id"`
	OrderItemID uuid.UUID `json:"order_item_id"`
	Location    string    `json:"location"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListFilter represents filter options for market listings
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

// ToStatusResponse converts a domain Status to StatusResponse
func ToStatusResponse(s *market.Status) StatusResponse {
	return StatusResponse{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToStatusResponses converts a slice of domain Statuses to StatusResponses
func ToStatusResponses(statuses []market.Status) []StatusResponse {
	responses := make([]StatusResponse, len(statuses))
	for i, s := range statuses {
		responses[i] = ToStatusResponse(&s)
	}
	return responses
}

// ToTrackingResponse converts a domain Tracking to TrackingResponse
func ToTrackingResponse(t *market.Tracking) TrackingResponse {
	return TrackingResponse{
		ID:          t.ID,
		OrderItemID: t.OrderItemID,
		Location:    t.Location,
		Note:        t.Note,
		CreatedAt:   t.CreatedAt,
	}
}

// ToTrackingResponses converts a slice of domain Trackings to TrackingResponses
func ToTrackingResponses(entries []market.Tracking) []TrackingResponse {
	responses := make([]TrackingResponse, len(entries))
	for i, t := range entries {
		responses[i] = ToTrackingResponse(&t)
	}
	return responses
}
