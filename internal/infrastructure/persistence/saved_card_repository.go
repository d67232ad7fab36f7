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

// GormSavedCardRepository implements SavedCardRepository using GORM
type GormSavedCardRepository struct {
	db *gorm.DB
}

// NewGormSavedCardRepository creates a new GormSavedCardRepository
func NewGormSavedCardRepository(db *gorm.DB) *GormSavedCardRepository {
	return &GormSavedCardRepository{db: db}
}

// FindByID finds a saved card by its ID
func (r *GormSavedCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.SavedCard, error) {
	var model models.SavedCardModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUser finds a saved card by ID scoped to its owner
func (r *GormSavedCardRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*payment.SavedCard, error) {
	var model models.SavedCardModel
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

// FindByAuthorizationCode finds a user's card by its gateway authorization code
func (r *GormSavedCardRepository) FindByAuthorizationCode(ctx context.Context, userID uuid.UUID, code string) (*payment.SavedCard, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_AUTHORIZATION", "Authorization code cannot be empty")
	}
	var model models.SavedCardModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND authorization_code = ?", userID, code).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForUser finds all cards belonging to a user
func (r *GormSavedCardRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]payment.SavedCard, error) {
	filter = filter.Normalize()

	var cardModels []models.SavedCardModel
	if err := r.db.WithContext(ctx).
		Model(&models.SavedCardModel{}).
		Where("user_id = ?", userID).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Order(OrderClause(filter.OrderBy, filter.OrderDir, SavedCardSortFields, "created_at")).
		Find(&cardModels).Error; err != nil {
		return nil, err
	}

	cards := make([]payment.SavedCard, len(cardModels))
	for i, model := range cardModels {
		cards[i] = *model.ToDomain()
	}
	return cards, nil
}

// CountForUser counts the cards belonging to a user
func (r *GormSavedCardRepository) CountForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SavedCardModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a saved card
func (r *GormSavedCardRepository) Save(ctx context.Context, card *payment.SavedCard) error {
	model := models.SavedCardModelFromDomain(card)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrDuplicate
		}
		return err
	}
	return nil
}

// DeleteForUser deletes a card scoped to its owner
func (r *GormSavedCardRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.SavedCardModel{}, "user_id = ? AND id = ?", userID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormSavedCardRepository implements SavedCardRepository
var _ payment.SavedCardRepository = (*GormSavedCardRepository)(nil)
