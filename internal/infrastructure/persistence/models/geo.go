package models

import (
	"github.com/fermerce/backend/internal/domain/geo"
)

// CountryModel is the persistence model for the Country domain entity
type CountryModel struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (CountryModel) TableName() string {
	return "fm_country"
}

// ToDomain converts the persistence model to a domain Country entity
func (m *CountryModel) ToDomain() *geo.Country {
	return &geo.Country{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
	}
}

// CountryModelFromDomain builds a persistence model from a domain Country
func CountryModelFromDomain(c *geo.Country) *CountryModel {
	m := &CountryModel{Name: c.Name}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// StateModel is the persistence model for the State domain entity
type StateModel struct {
	BaseModel
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (StateModel) TableName() string {
	return "fm_state"
}

// ToDomain converts the persistence model to a domain State entity
func (m *StateModel) ToDomain() *geo.State {
	return &geo.State{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
	}
}

// StateModelFromDomain builds a persistence model from a domain State
func StateModelFromDomain(s *geo.State) *StateModel {
	m := &StateModel{Name: s.Name}
	m.FromDomainBaseEntity(s.BaseEntity)
	return m
}
