package handler

import (
	geoapp "github.com/fermerce/backend/internal/application/geo"
	"github.com/gin-gonic/gin"
)

// CountryHandler handles country reference data endpoints
type CountryHandler struct {
	BaseHandler
	countryService *geoapp.CountryService
}

// NewCountryHandler creates a new CountryHandler
func NewCountryHandler(countryService *geoapp.CountryService) *CountryHandler {
	return &CountryHandler{
		countryService: countryService,
	}
}

// Create registers a country
func (h *CountryHandler) Create(c *gin.Context) {
	var req geoapp.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	country, err := h.countryService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, country)
}

// GetByID returns a country by ID
func (h *CountryHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid country ID format")
		return
	}

	country, err := h.countryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, country)
}

// List returns a page of countries
func (h *CountryHandler) List(c *gin.Context) {
	var filter geoapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.countryService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, page)
}

// TotalCount returns the total number of countries
func (h *CountryHandler) TotalCount(c *gin.Context) {
	count, err := h.countryService.TotalCount(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, count)
}

// Update renames a country
func (h *CountryHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid country ID format")
		return
	}

	var req geoapp.UpdateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	country, err := h.countryService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, country)
}

// Delete removes a country
func (h *CountryHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid country ID format")
		return
	}

	if err := h.countryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
