package models

import (
	"github.com/fermerce/backend/internal/domain/market"
	"github.com/google/uuid"
)

// StatusModel is the persistence model for the status lookup table
type StatusModel struct {
	BaseModel
	Name string `gorm:"type:varchar(50);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (StatusModel) TableName() string {
	return "fm_status"
}

// ToDomain converts the persistence model to a domain Status
func (m *StatusModel) ToDomain() *market.Status {
	return &market.Status{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
	}
}

// StatusModelFromDomain builds a persistence model from a domain Status
func StatusModelFromDomain(s *market.Status) *StatusModel {
	m := &StatusModel{Name: s.Name}
	m.FromDomainBaseEntity(s.BaseEntity)
	return m
}

// OrderModel is the persistence model for orders
type OrderModel struct {
	BaseModel
	UserID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	OrderNumber string           `gorm:"type:varchar(30);not null;uniqueIndex"`
	Items       []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "fm_order"
}

// ToDomain converts the persistence model to a domain Order with its items
func (m *OrderModel) ToDomain() *market.Order {
	items := make([]market.OrderItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = *item.ToDomain()
	}
	return &market.Order{
		BaseEntity:  m.BaseModel.ToDomain(),
		UserID:      m.UserID,
		OrderNumber: m.OrderNumber,
		Items:       items,
	}
}

// OrderModelFromDomain builds a persistence model from a domain Order
func OrderModelFromDomain(o *market.Order) *OrderModel {
	items := make([]OrderItemModel, len(o.Items))
	for i := range o.Items {
		items[i] = *OrderItemModelFromDomain(&o.Items[i])
	}
	m := &OrderModel{
		UserID:      o.UserID,
		OrderNumber: o.OrderNumber,
		Items:       items,
	}
	m.FromDomainBaseEntity(o.BaseEntity)
	return m
}

// OrderItemModel is the persistence model for order lines
type OrderItemModel struct {
	BaseModel
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "fm_order_item"
}

// ToDomain converts the persistence model to a domain OrderItem
func (m *OrderItemModel) ToDomain() *market.OrderItem {
	return &market.OrderItem{
		BaseEntity: m.BaseModel.ToDomain(),
		OrderID:    m.OrderID,
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
	}
}

// OrderItemModelFromDomain builds a persistence model from a domain OrderItem
func OrderItemModelFromDomain(i *market.OrderItem) *OrderItemModel {
	m := &OrderItemModel{
		OrderID:   i.OrderID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
	}
	m.FromDomainBaseEntity(i.BaseEntity)
	return m
}

// TrackingModel is the persistence model for order item tracking events
type TrackingModel struct {
	BaseModel
	OrderItemID uuid.UUID `gorm:"type:uuid;not null;index"`
	Location    string    `gorm:"type:varchar(255)"`
	Note        string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (TrackingModel) TableName() string {
	return "fm_tracking"
}

// ToDomain converts the persistence model to a domain Tracking entry
func (m *TrackingModel) ToDomain() *market.Tracking {
	return &market.Tracking{
		BaseEntity:  m.BaseModel.ToDomain(),
		OrderItemID: m.OrderItemID,
		Location:    m.Location,
		Note:        m.Note,
	}
}

// TrackingModelFromDomain builds a persistence model from a domain Tracking entry
func TrackingModelFromDomain(t *market.Tracking) *TrackingModel {
	m := &TrackingModel{
		OrderItemID: t.OrderItemID,
		Location:    t.Location,
		Note:        t.Note,
	}
	m.FromDomainBaseEntity(t.BaseEntity)
	return m
}
