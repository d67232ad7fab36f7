package handler

import (
	geoapp "github.com/fermerce/backend/internal/application/geo"
	"github.com/gin-gonic/gin"
)

// StateHandler handles state reference data endpoints
type StateHandler struct {
	BaseHandler
	stateService *geoapp.StateService
}

// NewStateHandler creates a new StateHandler
func NewStateHandler(stateService *geoapp.StateService) *StateHandler {
	return &StateHandler{
		stateService: stateService,
	}
}

// Create registers a state
func (h *StateHandler) Create(c *gin.Context) {
	var req geoapp.CreateStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	state, err := h.stateService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, state)
}

// GetByID returns a state by ID
func (h *StateHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid state ID format")
		return
	}

	state, err := h.stateService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, state)
}

// List returns a page of states
func (h *StateHandler) List(c *gin.Context) {
	var filter geoapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.stateService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, page)
}

// TotalCount returns the total number of states
func (h *StateHandler) TotalCount(c *gin.Context) {
	count, err := h.stateService.TotalCount(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, count)
}

// Update renames a state
func (h *StateHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid state ID format")
		return
	}

	var req geoapp.UpdateStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	state, err := h.stateService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, state)
}

// Delete removes a state
func (h *StateHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid state ID format")
		return
	}

	if err := h.stateService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
