package catalog

import (
	"context"
	"errors"

	"github.com/fermerce/backend/internal/domain/catalog"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SellingUnitService handles the selling units attached to a product.
// A product carries at most one selling unit per measurement unit.
type SellingUnitService struct {
	unitRepo catalog.SellingUnitRepository
}

// NewSellingUnitService creates a new SellingUnitService
func NewSellingUnitService(unitRepo catalog.SellingUnitRepository) *SellingUnitService {
	return &SellingUnitService{
		unitRepo: unitRepo,
	}
}

// Create attaches a measurement unit to a product
func (s *SellingUnitService) Create(ctx context.Context, productID uuid.UUID, req CreateSellingUnitRequest) (*SellingUnitResponse, error) {
	existing, err := s.unitRepo.FindByProductAndUnit(ctx, productID, req.UnitID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.ErrDuplicate
	}

	unit, err := catalog.NewSellingUnit(productID, req.UnitID, req.Size, req.Price)
	if err != nil {
		return nil, err
	}

	if err := s.unitRepo.Save(ctx, unit); err != nil {
		return nil, err
	}

	response := ToSellingUnitResponse(unit)
	return &response, nil
}

// GetByProductAndUnit retrieves the selling unit for a product and unit pair
func (s *SellingUnitService) GetByProductAndUnit(ctx context.Context, productID, unitID uuid.UUID) (*SellingUnitResponse, error) {
	unit, err := s.unitRepo.FindByProductAndUnit(ctx, productID, unitID)
	if err != nil {
		return nil, err
	}

	response := ToSellingUnitResponse(unit)
	return &response, nil
}

// ListByProduct retrieves a page of a product's selling units
func (s *SellingUnitService) ListByProduct(ctx context.Context, productID uuid.UUID, filter ListFilter) (*shared.Page[SellingUnitResponse], error) {
	domainFilter := filter.domainFilter()

	units, err := s.unitRepo.FindByProduct(ctx, productID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.unitRepo.CountByProduct(ctx, productID, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPage(ToSellingUnitResponses(units), total, domainFilter)
	return &page, nil
}

// TotalCountByProduct reports how many selling units a product carries
func (s *SellingUnitService) TotalCountByProduct(ctx context.Context, productID uuid.UUID) (*CountResponse, error) {
	total, err := s.unitRepo.CountByProduct(ctx, productID, shared.Filter{})
	if err != nil {
		return nil, err
	}
	return &CountResponse{TotalCount: total}, nil
}

// Update reprices the selling unit for a product and unit pair
func (s *SellingUnitService) Update(ctx context.Context, productID, unitID uuid.UUID, req UpdateSellingUnitRequest) (*SellingUnitResponse, error) {
	unit, err := s.unitRepo.FindByProductAndUnit(ctx, productID, unitID)
	if err != nil {
		return nil, err
	}

	if err := unit.Reprice(req.Size, req.Price); err != nil {
		return nil, err
	}

	if err := s.unitRepo.Save(ctx, unit); err != nil {
		return nil, err
	}

	response := ToSellingUnitResponse(unit)
	return &response, nil
}

// Delete removes the selling unit for a product and unit pair
func (s *SellingUnitService) Delete(ctx context.Context, productID, unitID uuid.UUID) error {
	return s.unitRepo.DeleteByProductAndUnit(ctx, productID, unitID)
}
