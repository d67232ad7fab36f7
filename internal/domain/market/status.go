package market

import (
	"context"
	"strings"

	"github.com/fermerce/backend/internal/domain/shared"
)

// Status is a generic lookup entity describing the lifecycle state of
// payments and transfers. It is modelled as a row referenced by foreign
// key rather than an enum so states can be added without a migration of
// every referencing table.
type Status struct {
	shared.BaseEntity
	Name string
}

// Well-known status names seeded by migrations
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusRefunded  = "refunded"
)

// NewStatus creates a status lookup row
func NewStatus(name string) (*Status, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Status name cannot be empty")
	}
	return &Status{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}

// Rename updates the status name
func (s *Status) Rename(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Status name cannot be empty")
	}
	s.Name = name
	return nil
}

// StatusRepository is the persistence port for status lookups
type StatusRepository interface {
	shared.Repository[Status]
	FindByName(ctx context.Context, name string) (*Status, error)
}
