package handler

import (
	paymentapp "github.com/fermerce/backend/internal/application/payment"
	"github.com/gin-gonic/gin"
)

// CardHandler handles the authenticated user's saved cards
type CardHandler struct {
	BaseHandler
	cardService *paymentapp.CardService
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(cardService *paymentapp.CardService) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

// GetByID returns one of the user's saved cards
func (h *CardHandler) GetByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid card ID format")
		return
	}

	card, err := h.cardService.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, card)
}

// List returns a page of the user's saved cards
func (h *CardHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter paymentapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.cardService.List(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, page)
}

// Delete removes one of the user's saved cards
func (h *CardHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid card ID format")
		return
	}

	if err := h.cardService.Delete(c.Request.Context(), userID, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
