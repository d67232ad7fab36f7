package persistence

import (
	"context"
	"errors"

	"github.com/fermerce/backend/internal/domain/payment"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/fermerce/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRecipientRepository implements RecipientRepository using GORM.
// All reads exclude soft-deleted rows; deletion happens through
// MarkDeleted on the domain entity followed by Save.
type GormRecipientRepository struct {
	db *gorm.DB
}

// NewGormRecipientRepository creates a new GormRecipientRepository
func NewGormRecipientRepository(db *gorm.DB) *GormRecipientRepository {
	return &GormRecipientRepository{db: db}
}

// FindByID finds a recipient by its ID
func (r *GormRecipientRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.PaymentRecipient, error) {
	var model models.PaymentRecipientModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByAccount finds a recipient by account number and bank code
func (r *GormRecipientRepository) FindByAccount(ctx context.Context, accountNumber, bankCode string) (*payment.PaymentRecipient, error) {
	var model models.PaymentRecipientModel
	if err := r.db.WithContext(ctx).
		Where("account_number = ? AND bank_code = ? AND is_deleted = ?", accountNumber, bankCode, false).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all live recipients matching the filter
func (r *GormRecipientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]payment.PaymentRecipient, error) {
	var recipientModels []models.PaymentRecipientModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.PaymentRecipientModel{}).Where("is_deleted = ?", false),
		filter,
	)

	if err := query.Find(&recipientModels).Error; err != nil {
		return nil, err
	}

	recipients := make([]payment.PaymentRecipient, len(recipientModels))
	for i, model := range recipientModels {
		recipients[i] = *model.ToDomain()
	}
	return recipients, nil
}

// Count counts live recipients matching the filter
func (r *GormRecipientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.PaymentRecipientModel{}).Where("is_deleted = ?", false),
		filter,
	)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a recipient
func (r *GormRecipientRepository) Save(ctx context.Context, recipient *payment.PaymentRecipient) error {
	model := models.PaymentRecipientModelFromDomain(recipient)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrDuplicate
		}
		return err
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormRecipientRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	filter = filter.Normalize()
	query = query.Offset(filter.Offset()).Limit(filter.PageSize)

	return query.Order(OrderClause(filter.OrderBy, filter.OrderDir, RecipientSortFields, "created_at"))
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormRecipientRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR account_number ILIKE ?", searchPattern, searchPattern)
	}
	return query
}

// Ensure GormRecipientRepository implements RecipientRepository
var _ payment.RecipientRepository = (*GormRecipientRepository)(nil)
