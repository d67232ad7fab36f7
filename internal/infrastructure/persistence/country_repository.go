package persistence

import (
	"context"
	"errors"

	"github.com/fermerce/backend/internal/domain/geo"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/fermerce/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCountryRepository implements CountryRepository using GORM
type GormCountryRepository struct {
	db *gorm.DB
}

// NewGormCountryRepository creates a new GormCountryRepository
func NewGormCountryRepository(db *gorm.DB) *GormCountryRepository {
	return &GormCountryRepository{db: db}
}

// FindByID finds a country by its ID
func (r *GormCountryRepository) FindByID(ctx context.Context, id uuid.UUID) (*geo.Country, error) {
	var model models.CountryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByName finds a country by its exact name
func (r *GormCountryRepository) FindByName(ctx context.Context, name string) (*geo.Country, error) {
	var model models.CountryModel
	if err := r.db.WithContext(ctx).First(&model, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all countries matching the filter
func (r *GormCountryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]geo.Country, error) {
	var countryModels []models.CountryModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.CountryModel{}), filter)

	if err := query.Find(&countryModels).Error; err != nil {
		return nil, err
	}

	countries := make([]geo.Country, len(countryModels))
	for i, model := range countryModels {
		countries[i] = *model.ToDomain()
	}
	return countries, nil
}

// Save creates or updates a country
func (r *GormCountryRepository) Save(ctx context.Context, country *geo.Country) error {
	model := models.CountryModelFromDomain(country)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrDuplicate
		}
		return err
	}
	return nil
}

// Delete deletes a country
func (r *GormCountryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CountryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts countries matching the filter
func (r *GormCountryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.CountryModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormCountryRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	filter = filter.Normalize()
	query = query.Offset(filter.Offset()).Limit(filter.PageSize)

	return query.Order(OrderClause(filter.OrderBy, filter.OrderDir, NameSortFields, "name"))
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormCountryRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	return query
}

// Ensure GormCountryRepository implements CountryRepository
var _ geo.CountryRepository = (*GormCountryRepository)(nil)
