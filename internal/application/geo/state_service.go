package geo

import (
	"context"
	"errors"

	"github.com/fermerce/backend/internal/domain/geo"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StateService handles state reference-data operations
type StateService struct {
	stateRepo geo.StateRepository
}

// NewStateService creates a new StateService
func NewStateService(stateRepo geo.StateRepository) *StateService {
	return &StateService{
		stateRepo: stateRepo,
	}
}

// Create creates a new state
func (s *StateService) Create(ctx context.Context, req CreateStateRequest) (*StateResponse, error) {
	existing, err := s.stateRepo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.ErrDuplicate
	}

	state, err := geo.NewState(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.stateRepo.Save(ctx, state); err != nil {
		return nil, err
	}

	response := ToStateResponse(state)
	return &response, nil
}

// GetByID retrieves a state by ID
func (s *StateService) GetByID(ctx context.Context, stateID uuid.UUID) (*StateResponse, error) {
	state, err := s.stateRepo.FindByID(ctx, stateID)
	if err != nil {
		return nil, err
	}

	response := ToStateResponse(state)
	return &response, nil
}

// List retrieves a page of states
func (s *StateService) List(ctx context.Context, filter ListFilter) (*shared.Page[StateResponse], error) {
	domainFilter := filter.domainFilter()

	states, err := s.stateRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.stateRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPage(ToStateResponses(states), total, domainFilter)
	return &page, nil
}

// TotalCount reports the total number of states
func (s *StateService) TotalCount(ctx context.Context) (*CountResponse, error) {
	total, err := s.stateRepo.Count(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}
	return &CountResponse{TotalCount: total}, nil
}

// Update renames a state
func (s *StateService) Update(ctx context.Context, stateID uuid.UUID, req UpdateStateRequest) (*StateResponse, error) {
	state, err := s.stateRepo.FindByID(ctx, stateID)
	if err != nil {
		return nil, err
	}

	// Renaming to the current name is a no-op: return the record as-is
	// without touching storage.
	if req.Name == state.Name {
		response := ToStateResponse(state)
		return &response, nil
	}

	existing, err := s.stateRepo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil && existing.ID != state.ID {
		return nil, shared.ErrDuplicate
	}

	if err := state.Rename(req.Name); err != nil {
		return nil, err
	}

	if err := s.stateRepo.Save(ctx, state); err != nil {
		return nil, err
	}

	response := ToStateResponse(state)
	return &response, nil
}

// Delete deletes a state
func (s *StateService) Delete(ctx context.Context, stateID uuid.UUID) error {
	return s.stateRepo.Delete(ctx, stateID)
}
