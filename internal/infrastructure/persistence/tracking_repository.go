package persistence

import (
	"context"

	"github.com/fermerce/backend/internal/domain/market"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/fermerce/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTrackingRepository implements TrackingRepository using GORM.
// Tracking entries are append-only; there are no update or delete paths.
type GormTrackingRepository struct {
	db *gorm.DB
}

// NewGormTrackingRepository creates a new GormTrackingRepository
func NewGormTrackingRepository(db *gorm.DB) *GormTrackingRepository {
	return &GormTrackingRepository{db: db}
}

// Save appends a tracking entry
func (r *GormTrackingRepository) Save(ctx context.Context, tracking *market.Tracking) error {
	model := models.TrackingModelFromDomain(tracking)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByOrderItem finds tracking entries for an order item, oldest first
func (r *GormTrackingRepository) FindByOrderItem(ctx context.Context, orderItemID uuid.UUID, filter shared.Filter) ([]market.Tracking, error) {
	filter = filter.Normalize()

	var trackingModels []models.TrackingModel
	if err := r.db.WithContext(ctx).
		Model(&models.TrackingModel{}).
		Where("order_item_id = ?", orderItemID).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Order(OrderClause("created_at", filter.OrderDir, CommonSortFields, "created_at")).
		Find(&trackingModels).Error; err != nil {
		return nil, err
	}

	entries := make([]market.Tracking, len(trackingModels))
	for i, model := range trackingModels {
		entries[i] = *model.ToDomain()
	}
	return entries, nil
}

// CountByOrderItem counts tracking entries for an order item
func (r *GormTrackingRepository) CountByOrderItem(ctx context.Context, orderItemID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TrackingModel{}).
		Where("order_item_id = ?", orderItemID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormTrackingRepository implements TrackingRepository
var _ market.TrackingRepository = (*GormTrackingRepository)(nil)
