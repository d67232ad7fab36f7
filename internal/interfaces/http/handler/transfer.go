package handler

import (
	paymentapp "github.com/fermerce/backend/internal/application/payment"
	"github.com/gin-gonic/gin"
)

// TransferHandler handles outbound payout endpoints
type TransferHandler struct {
	BaseHandler
	transferService *paymentapp.TransferService
}

// NewTransferHandler creates a new TransferHandler
func NewTransferHandler(transferService *paymentapp.TransferService) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
	}
}

// Create creates a pending transfer to a recipient
func (h *TransferHandler) Create(c *gin.Context) {
	var req paymentapp.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	transfer, err := h.transferService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, transfer)
}

// Complete settles a pending transfer
func (h *TransferHandler) Complete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid transfer ID format")
		return
	}

	transfer, err := h.transferService.Complete(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, transfer)
}

// GetByID returns a transfer by ID
func (h *TransferHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid transfer ID format")
		return
	}

	transfer, err := h.transferService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, transfer)
}

// List returns a page of transfers
func (h *TransferHandler) List(c *gin.Context) {
	var filter paymentapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.transferService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, page)
}
