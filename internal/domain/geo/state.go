package geo

import (
	"context"
	"strings"

	"github.com/fermerce/backend/internal/domain/shared"
)

// State is reference data for a geographic state/province. Like Country it
// is not owned by any user and its name is unique.
type State struct {
	shared.BaseEntity
	Name string
}

// NewState creates a new state with a trimmed name
func NewState(name string) (*State, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "State name cannot be empty")
	}
	return &State{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}

// Rename updates the state name
func (s *State) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "State name cannot be empty")
	}
	s.Name = name
	return nil
}

// StateRepository is the persistence port for states
type StateRepository interface {
	shared.Repository[State]
	FindByName(ctx context.Context, name string) (*State, error)
}
