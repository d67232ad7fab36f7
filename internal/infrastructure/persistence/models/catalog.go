package models

import (
	"github.com/fermerce/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SellingUnitModel is the persistence model for product selling units.
// A product carries at most one row per measuring unit.
type SellingUnitModel struct {
	BaseModel
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_selling_unit_product_unit"`
	UnitID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_selling_unit_product_unit"`
	Size      int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName returns the table name for GORM
func (SellingUnitModel) TableName() string {
	return "fm_selling_unit"
}

// ToDomain converts the persistence model to a domain SellingUnit
func (m *SellingUnitModel) ToDomain() *catalog.SellingUnit {
	return &catalog.SellingUnit{
		BaseEntity: m.BaseModel.ToDomain(),
		ProductID:  m.ProductID,
		UnitID:     m.UnitID,
		Size:       m.Size,
		Price:      m.Price,
	}
}

// SellingUnitModelFromDomain builds a persistence model from a domain SellingUnit
func SellingUnitModelFromDomain(s *catalog.SellingUnit) *SellingUnitModel {
	m := &SellingUnitModel{
		ProductID: s.ProductID,
		UnitID:    s.UnitID,
		Size:      s.Size,
		Price:     s.Price,
	}
	m.FromDomainBaseEntity(s.BaseEntity)
	return m
}
