package catalog

import (
	"time"

	"github.com/fermerce/backend/internal/domain/catalog"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateSellingUnitRequest represents a request to attach a measurement
// unit to a product
type CreateSellingUnitRequest struct {
	UnitID uuid.UUID       `json:"unit_id" binding:"required"`
	Size   int             `json:"size" binding:"required,min=1"`
	Price  decimal.Decimal `json:"price" binding:"required"`
}

// UpdateSellingUnitRequest represents a request to reprice a selling unit
type UpdateSellingUnitRequest struct {
	Size  int             `json:"size" binding:"required,min=1"`
	Price decimal.Decimal `json:"price" binding:"required"`
}

// SellingUnitResponse represents a selling unit in API responses
type SellingUnitResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	UnitID    uuid.UUID       `json:"unit_id"`
	Size      int             `json:"size"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CountResponse reports the total number of records for an entity
type CountResponse struct {
	TotalCount int64 `json:"total_count"`
}

// ListFilter represents filter options for selling unit listings
type ListFilter struct {
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
	}.Normalize()
}

// ToSellingUnitResponse converts a domain SellingUnit to SellingUnitResponse
func ToSellingUnitResponse(u *catalog.SellingUnit) SellingUnitResponse {
	return SellingUnitResponse{
		ID:        u.ID,
		ProductID: u.ProductID,
		UnitID:    u.UnitID,
		Size:      u.Size,
		Price:     u.Price,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToSellingUnitResponses converts a slice of domain SellingUnits to SellingUnitResponses
func ToSellingUnitResponses(units []catalog.SellingUnit) []SellingUnitResponse {
	responses := make([]SellingUnitResponse, len(units))
	for i, u := range units {
		responses[i] = ToSellingUnitResponse(&u)
	}
	return responses
}
