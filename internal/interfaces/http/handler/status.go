package handler

import (
	marketapp "github.com/fermerce/backend/internal/application/market"
	"github.com/gin-gonic/gin"
)

// StatusHandler handles order status reference data endpoints
type StatusHandler struct {
	BaseHandler
	statusService *marketapp.StatusService
}

// NewStatusHandler creates a new StatusHandler
func NewStatusHandler(statusService *marketapp.StatusService) *StatusHandler {
	return &StatusHandler{
		statusService: statusService,
	}
}

// Create registers a status
func (h *StatusHandler) Create(c *gin.Context) {
	var req marketapp.CreateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	status, err := h.statusService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, status)
}

// GetByID returns a status by ID
func (h *StatusHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid status ID format")
		return
	}

	status, err := h.statusService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, status)
}

// List returns a page of statuses
func (h *StatusHandler) List(c *gin.Context) {
	var filter marketapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.statusService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, page)
}

// Update renames a status
func (h *StatusHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid status ID format")
		return
	}

	var req marketapp.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	status, err := h.statusService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, status)
}

// Delete removes a status
func (h *StatusHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid status ID format")
		return
	}

	if err := h.statusService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
