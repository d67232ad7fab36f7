package market

import (
	"context"
	"errors"
	"strings"

	"github.com/fermerce/backend/internal/domain/market"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StatusService handles the status lookup table shared by payments and
// transfers.
type StatusService struct {
	statusRepo market.StatusRepository
}

// NewStatusService creates a new StatusService
func NewStatusService(statusRepo market.StatusRepository) *StatusService {
	return &StatusService{
		statusRepo: statusRepo,
	}
}

// Create creates a new status lookup row
func (s *StatusService) Create(ctx context.Context, req CreateStatusRequest) (*StatusResponse, error) {
	name := strings.ToLower(strings.TrimSpace(req.Name))
	existing, err := s.statusRepo.FindByName(ctx, name)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.ErrDuplicate
	}

	status, err := market.NewStatus(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.statusRepo.Save(ctx, status); err != nil {
		return nil, err
	}

	response := ToStatusResponse(status)
	return &response, nil
}

// GetByID retrieves a status by ID
func (s *StatusService) GetByID(ctx context.Context, statusID uuid.UUID) (*StatusResponse, error) {
	status, err := s.statusRepo.FindByID(ctx, statusID)
	if err != nil {
		return nil, err
	}

	response := ToStatusResponse(status)
	return &response, nil
}

// List retrieves a page of statuses
func (s *StatusService) List(ctx context.Context, filter ListFilter) (*shared.Page[StatusResponse], error) {
	domainFilter := filter.domainFilter()

	statuses, err := s.statusRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.statusRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPage(ToStatusResponses(statuses), total, domainFilter)
	return &page, nil
}

// Update renames a status
func (s *StatusService) Update(ctx context.Context, statusID uuid.UUID, req UpdateStatusRequest) (*StatusResponse, error) {
	status, err := s.statusRepo.FindByID(ctx, statusID)
	if err != nil {
		return nil, err
	}

	// Renaming to the current name is a no-op: return the record as-is
	// without touching storage.
	name := strings.ToLower(strings.TrimSpace(req.Name))
	if name == status.Name {
		response := ToStatusResponse(status)
		return &response, nil
	}

	existing, err := s.statusRepo.FindByName(ctx, name)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil && existing.ID != status.ID {
		return nil, shared.ErrDuplicate
	}

	if err := status.Rename(req.Name); err != nil {
		return nil, err
	}

	if err := s.statusRepo.Save(ctx, status); err != nil {
		return nil, err
	}

	response := ToStatusResponse(status)
	return &response, nil
}

// Delete deletes a status
func (s *StatusService) Delete(ctx context.Context, statusID uuid.UUID) error {
	return s.statusRepo.Delete(ctx, statusID)
}
