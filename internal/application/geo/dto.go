package geo

import (
	"time"

	"github.com/fermerce/backend/internal/domain/geo"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreateCountryRequest represents a request to create a country
type CreateCountryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateCountryRequest represents a request to rename a country
type UpdateCountryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CountryResponse represents a country in API responses
type CountryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateStateRequest represents a request to create a state
type CreateStateRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateStateRequest represents a request to rename a state
type UpdateStateRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// StateResponse represents a state in API responses
type StateResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CountResponse reports the total number of records for an entity
type CountResponse struct {
	TotalCount int64 `json:"total_count"`
}

// ListFilter represents filter options for reference-data listings
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

// ToCountryResponse converts a domain Country to CountryResponse
func ToCountryResponse(c *geo.Country) CountryResponse {
	return CountryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCountryResponses converts a slice of domain Countries to CountryResponses
func ToCountryResponses(countries []geo.Country) []CountryResponse {
	responses := make([]CountryResponse, len(countries))
	for i, c := range countries {
		responses[i] = ToCountryResponse(&c)
	}
	return responses
}

// ToStateResponse converts a domain State to StateResponse
func ToStateResponse(s *geo.State) StateResponse {
	return StateResponse{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToStateResponses converts a slice of domain States to StateResponses
func ToStateResponses(states []geo.State) []StateResponse {
	responses := make([]StateResponse, len(states))
	for i, s := range states {
		responses[i] = ToStateResponse(&s)
	}
	return responses
}
