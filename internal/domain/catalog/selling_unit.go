package catalog

import (
	"context"

	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SellingUnit binds a measurement unit to a product with a pack size and a
// price. A product carries at most one selling unit per measurement unit;
// (product, unit) is the uniqueness pair.
type SellingUnit struct {
	shared.BaseEntity
	ProductID uuid.UUID
	UnitID    uuid.UUID
	Size      int
	Price     decimal.Decimal
}

// NewSellingUnit creates a selling unit for a product
func NewSellingUnit(productID, unitID uuid.UUID, size int, price decimal.Decimal) (*SellingUnit, error) {
	if productID == uuid.Nil || unitID == uuid.Nil {
		return nil, shared.ErrBadData
	}
	if size <= 0 {
		return nil, shared.NewDomainError("INVALID_SIZE", "Size must be positive")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	return &SellingUnit{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		UnitID:     unitID,
		Size:       size,
		Price:      price.Round(2),
	}, nil
}

// Reprice updates size and price together
func (s *SellingUnit) Reprice(size int, price decimal.Decimal) error {
	if size <= 0 {
		return shared.NewDomainError("INVALID_SIZE", "Size must be positive")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	s.Size = size
	s.Price = price.Round(2)
	return nil
}

// SellingUnitRepository is the persistence port for selling units
type SellingUnitRepository interface {
	shared.Repository[SellingUnit]
	FindByProductAndUnit(ctx context.Context, productID, unitID uuid.UUID) (*SellingUnit, error)
	FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]SellingUnit, error)
	CountByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) (int64, error)
	DeleteByProductAndUnit(ctx context.Context, productID, unitID uuid.UUID) error
}
