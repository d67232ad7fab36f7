package handler

import (
	paymentapp "github.com/fermerce/backend/internal/application/payment"
	"github.com/gin-gonic/gin"
)

// RecipientHandler handles payout recipient endpoints
type RecipientHandler struct {
	BaseHandler
	recipientService *paymentapp.RecipientService
}

// NewRecipientHandler creates a new RecipientHandler
func NewRecipientHandler(recipientService *paymentapp.RecipientService) *RecipientHandler {
	return &RecipientHandler{
		recipientService: recipientService,
	}
}

// Create registers a payout recipient
func (h *RecipientHandler) Create(c *gin.Context) {
	var req paymentapp.CreateRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	recipient, err := h.recipientService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, recipient)
}

// GetByID returns a recipient by ID
func (h *RecipientHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid recipient ID format")
		return
	}

	recipient, err := h.recipientService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, recipient)
}

// List returns a page of recipients
func (h *RecipientHandler) List(c *gin.Context) {
	var filter paymentapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.recipientService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, page)
}

// Delete soft-deletes a recipient
func (h *RecipientHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid recipient ID format")
		return
	}

	if err := h.recipientService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
