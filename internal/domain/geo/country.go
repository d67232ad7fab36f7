package geo

import (
	"context"
	"strings"

	"github.com/fermerce/backend/internal/domain/shared"
)

// Country is globally visible reference data: it has no owning user and
// its name is unique across all rows.
type Country struct {
	shared.BaseEntity
	Name string
}

// NewCountry creates a new country with a trimmed name
func NewCountry(name string) (*Country, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Country name cannot be empty")
	}
	return &Country{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}

// Rename updates the country name
func (c *Country) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Country name cannot be empty")
	}
	c.Name = name
	return nil
}

// CountryRepository is the persistence port for countries
type CountryRepository interface {
	shared.Repository[Country]
	FindByName(ctx context.Context, name string) (*Country, error)
}
