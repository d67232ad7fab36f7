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

// GormAuthSessionRepository implements AuthSessionRepository using GORM
type GormAuthSessionRepository struct {
	db *gorm.DB
}

// NewGormAuthSessionRepository creates a new GormAuthSessionRepository
func NewGormAuthSessionRepository(db *gorm.DB) *GormAuthSessionRepository {
	return &GormAuthSessionRepository{db: db}
}

// FindByUserAndIP finds the session for a user on a given client IP
func (r *GormAuthSessionRepository) FindByUserAndIP(ctx context.Context, userID uuid.UUID, ip string) (*identity.AuthSession, error) {
	var model models.AuthSessionModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND ip_address = ?", userID, ip).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a session
func (r *GormAuthSessionRepository) Save(ctx context.Context, session *identity.AuthSession) error {
	model := models.AuthSessionModelFromDomain(session)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrDuplicate
		}
		return err
	}
	return nil
}

// DeleteForUser removes all sessions belonging to a user
func (r *GormAuthSessionRepository) DeleteForUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.AuthSessionModel{}, "user_id = ?", userID).Error
}

// Ensure GormAuthSessionRepository implements AuthSessionRepository
var _ identity.AuthSessionRepository = (*GormAuthSessionRepository)(nil)
