package persistence

import (
	"context"
	"errors"

	"github.com/fermerce/backend/internal/domain/market"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/fermerce/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStatusRepository implements StatusRepository using GORM
type GormStatusRepository struct {
	db *gorm.DB
}

// NewGormStatusRepository creates a new GormStatusRepository
func NewGormStatusRepository(db *gorm.DB) *GormStatusRepository {
	return &GormStatusRepository{db: db}
}

// FindByID finds a status by its ID
func (r *GormStatusRepository) FindByID(ctx context.Context, id uuid.UUID) (*market.Status, error) {
	var model models.StatusModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByName finds a status by its exact name
func (r *GormStatusRepository) FindByName(ctx context.Context, name string) (*market.Status, error) {
	var model models.StatusModel
	if err := r.db.WithContext(ctx).First(&model, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all statuses matching the filter
func (r *GormStatusRepository) FindAll(ctx context.Context, filter shared.Filter) ([]market.Status, error) {
	var statusModels []models.StatusModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.StatusModel{}), filter)

	if err := query.Find(&statusModels).Error; err != nil {
		return nil, err
	}

	statuses := make([]market.Status, len(statusModels))
	for i, model := range statusModels {
		statuses[i] = *model.ToDomain()
	}
	return statuses, nil
}

// Save creates or updates a status
func (r *GormStatusRepository) Save(ctx context.Context, status *market.Status) error {
	model := models.StatusModelFromDomain(status)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrDuplicate
		}
		return err
	}
	return nil
}

// Delete deletes a status
func (r *GormStatusRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.StatusModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts statuses matching the filter
func (r *GormStatusRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.StatusModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormStatusRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	filter = filter.Normalize()
	query = query.Offset(filter.Offset()).Limit(filter.PageSize)

	return query.Order(OrderClause(filter.OrderBy, filter.OrderDir, NameSortFields, "name"))
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormStatusRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	return query
}

// Ensure GormStatusRepository implements StatusRepository
var _ market.StatusRepository = (*GormStatusRepository)(nil)
