package persistence

import (
	"context"
	"errors"

	"github.com/fermerce/backend/internal/domain/identity"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/fermerce/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAddressRepository implements AddressRepository using GORM
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// FindByID finds an address by its ID
func (r *GormAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Address, error) {
	var model models.AddressModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUser finds an address by ID scoped to its owner
func (r *GormAddressRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*identity.Address, error) {
	var model models.AddressModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all addresses matching the filter
func (r *GormAddressRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Address, error) {
	var addressModels []models.AddressModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.AddressModel{}), filter)

	if err := query.Find(&addressModels).Error; err != nil {
		return nil, err
	}
	return toDomainAddresses(addressModels), nil
}

// FindAllForUser finds all addresses belonging to a user
func (r *GormAddressRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]identity.Address, error) {
	var addressModels []models.AddressModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.AddressModel{}).Where("user_id = ?", userID),
		filter,
	)

	if err := query.Find(&addressModels).Error; err != nil {
		return nil, err
	}
	return toDomainAddresses(addressModels), nil
}

// Save creates or updates an address
func (r *GormAddressRepository) Save(ctx context.Context, address *identity.Address) error {
	model := models.AddressModelFromDomain(address)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrDuplicate
		}
		return err
	}
	return nil
}

// Delete deletes an address
func (r *GormAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AddressModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteForUser deletes an address scoped to its owner
func (r *GormAddressRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.AddressModel{}, "user_id = ? AND id = ?", userID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts addresses matching the filter
func (r *GormAddressRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.AddressModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountForUser counts addresses belonging to a user
func (r *GormAddressRepository) CountForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.AddressModel{}).Where("user_id = ?", userID),
		filter,
	)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormAddressRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	filter = filter.Normalize()
	query = query.Offset(filter.Offset()).Limit(filter.PageSize)

	return query.Order(OrderClause(filter.OrderBy, filter.OrderDir, AddressSortFields, "created_at"))
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormAddressRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("street ILIKE ? OR city ILIKE ? OR zipcode ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}
	return query
}

func toDomainAddresses(addressModels []models.AddressModel) []identity.Address {
	addresses := make([]identity.Address, len(addressModels))
	for i, model := range addressModels {
		addresses[i] = *model.ToDomain()
	}
	return addresses
}

// Ensure GormAddressRepository implements AddressRepository
var _ identity.AddressRepository = (*GormAddressRepository)(nil)
