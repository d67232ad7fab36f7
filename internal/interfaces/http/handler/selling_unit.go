package handler

import (
	catalogapp "github.com/fermerce/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// SellingUnitHandler handles per-product selling unit endpoints. Selling
// units are addressed by the (product, unit) pair, not by their own ID.
type SellingUnitHandler struct {
	BaseHandler
	sellingUnitService *catalogapp.SellingUnitService
}

// NewSellingUnitHandler creates a new SellingUnitHandler
func NewSellingUnitHandler(sellingUnitService *catalogapp.SellingUnitService) *SellingUnitHandler {
	return &SellingUnitHandler{
		sellingUnitService: sellingUnitService,
	}
}

// Create attaches a selling unit to a product
func (h *SellingUnitHandler) Create(c *gin.Context) {
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req catalogapp.CreateSellingUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	unit, err := h.sellingUnitService.Create(c.Request.Context(), productID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, unit)
}

// Get returns the selling unit for a (product, unit) pair
func (h *SellingUnitHandler) Get(c *gin.Context) {
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	unitID, err := parseIDParam(c, "unitId")
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	unit, err := h.sellingUnitService.GetByProductAndUnit(c.Request.Context(), productID, unitID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, unit)
}

// List returns a page of a product's selling units
func (h *SellingUnitHandler) List(c *gin.Context) {
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var filter catalogapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.sellingUnitService.ListByProduct(c.Request.Context(), productID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, page)
}

// TotalCount returns how many selling units a product carries
func (h *SellingUnitHandler) TotalCount(c *gin.Context) {
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	count, err := h.sellingUnitService.TotalCountByProduct(c.Request.Context(), productID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, count)
}

// Update reprices or resizes a selling unit
func (h *SellingUnitHandler) Update(c *gin.Context) {
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	unitID, err := parseIDParam(c, "unitId")
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	var req catalogapp.UpdateSellingUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	unit, err := h.sellingUnitService.Update(c.Request.Context(), productID, unitID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, unit)
}

// Delete detaches a selling unit from a product
func (h *SellingUnitHandler) Delete(c *gin.Context) {
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	unitID, err := parseIDParam(c, "unitId")
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	if err := h.sellingUnitService.Delete(c.Request.Context(), productID, unitID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
