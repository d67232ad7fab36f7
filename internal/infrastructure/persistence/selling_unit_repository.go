package persistence

import (
	"context"
	"errors"

	"github.com/fermerce/backend/internal/domain/catalog"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/fermerce/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSellingUnitRepository implements SellingUnitRepository using GORM
type GormSellingUnitRepository struct {
	db *gorm.DB
}

// NewGormSellingUnitRepository creates a new GormSellingUnitRepository
func NewGormSellingUnitRepository(db *gorm.DB) *GormSellingUnitRepository {
	return &GormSellingUnitRepository{db: db}
}

// FindByID finds a selling unit by its ID
func (r *GormSellingUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.SellingUnit, error) {
	var model models.SellingUnitModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProductAndUnit finds the selling unit for a product and measuring unit pair
func (r *GormSellingUnitRepository) FindByProductAndUnit(ctx context.Context, productID, unitID uuid.UUID) (*catalog.SellingUnit, error) {
	var model models.SellingUnitModel
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND unit_id = ?", productID, unitID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProduct finds all selling units of a product
func (r *GormSellingUnitRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]catalog.SellingUnit, error) {
	var unitModels []models.SellingUnitModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.SellingUnitModel{}).Where("product_id = ?", productID),
		filter,
	)

	if err := query.Find(&unitModels).Error; err != nil {
		return nil, err
	}
	return toDomainSellingUnits(unitModels), nil
}

// FindAll finds all selling units matching the filter
func (r *GormSellingUnitRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.SellingUnit, error) {
	var unitModels []models.SellingUnitModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.SellingUnitModel{}), filter)

	if err := query.Find(&unitModels).Error; err != nil {
		return nil, err
	}
	return toDomainSellingUnits(unitModels), nil
}

// Save creates or updates a selling unit
func (r *GormSellingUnitRepository) Save(ctx context.Context, unit *catalog.SellingUnit) error {
	model := models.SellingUnitModelFromDomain(unit)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrDuplicate
		}
		return err
	}
	return nil
}

// Delete deletes a selling unit
func (r *GormSellingUnitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SellingUnitModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByProductAndUnit deletes the selling unit for a product and unit pair
func (r *GormSellingUnitRepository) DeleteByProductAndUnit(ctx context.Context, productID, unitID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.SellingUnitModel{}, "product_id = ? AND unit_id = ?", productID, unitID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts selling units matching the filter
func (r *GormSellingUnitRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SellingUnitModel{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByProduct counts selling units of a product
func (r *GormSellingUnitRepository) CountByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SellingUnitModel{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormSellingUnitRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	filter = filter.Normalize()
	query = query.Offset(filter.Offset()).Limit(filter.PageSize)

	return query.Order(OrderClause(filter.OrderBy, filter.OrderDir, SellingUnitSortFields, "created_at"))
}

func toDomainSellingUnits(unitModels []models.SellingUnitModel) []catalog.SellingUnit {
	units := make([]catalog.SellingUnit, len(unitModels))
	for i, model := range unitModels {
		units[i] = *model.ToDomain()
	}
	return units
}

// Ensure GormSellingUnitRepository implements SellingUnitRepository
var _ catalog.SellingUnitRepository = (*GormSellingUnitRepository)(nil)
