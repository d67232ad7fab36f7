package handler

import (
	marketapp "github.com/fermerce/backend/internal/application/market"
	"github.com/gin-gonic/gin"
)

// TrackingHandler handles order item tracking endpoints. Tracking entries
// are append-only: they can be added and listed but never edited.
type TrackingHandler struct {
	BaseHandler
	trackingService *marketapp.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler
func NewTrackingHandler(trackingService *marketapp.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// Create appends a tracking entry to an order item
func (h *TrackingHandler) Create(c *gin.Context) {
	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		h.BadRequest(c, "Invalid order item ID format")
		return
	}

	var req marketapp.CreateTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	entry, err := h.trackingService.Create(c.Request.Context(), itemID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, entry)
}

// List returns a page of an order item's tracking history
func (h *TrackingHandler) List(c *gin.Context) {
	itemID, err := parseIDParam(c, "itemId")
	if err != nil {
		h.BadRequest(c, "Invalid order item ID format")
		return
	}

	var filter marketapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.trackingService.ListByOrderItem(c.Request.Context(), itemID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, page)
}
