package geo

import (
	"context"
	"errors"

	"github.com/fermerce/backend/internal/domain/geo"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CountryService handles country reference-data operations
type CountryService struct {
	countryRepo geo.CountryRepository
}

// NewCountryService creates a new CountryService
func NewCountryService(countryRepo geo.CountryRepository) *CountryService {
	return &CountryService{
		countryRepo: countryRepo,
	}
}

// Create creates a new country
func (s *CountryService) Create(ctx context.Context, req CreateCountryRequest) (*CountryResponse, error) {
	existing, err := s.countryRepo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.ErrDuplicate
	}

	country, err := geo.NewCountry(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.countryRepo.Save(ctx, country); err != nil {
		return nil, err
	}

	response := ToCountryResponse(country)
	return &response, nil
}

// GetByID retrieves a country by ID
func (s *CountryService) GetByID(ctx context.Context, countryID uuid.UUID) (*CountryResponse, error) {
	country, err := s.countryRepo.FindByID(ctx, countryID)
	if err != nil {
		return nil, err
	}

	response := ToCountryResponse(country)
	return &response, nil
}

// List retrieves a page of countries
func (s *CountryService) List(ctx context.Context, filter ListFilter) (*shared.Page[CountryResponse], error) {
	domainFilter := filter.domainFilter()

	countries, err := s.countryRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.countryRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPage(ToCountryResponses(countries), total, domainFilter)
	return &page, nil
}

// TotalCount reports the total number of countries
func (s *CountryService) TotalCount(ctx context.Context) (*CountResponse, error) {
	total, err := s.countryRepo.Count(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}
	return &CountResponse{TotalCount: total}, nil
}

// Update renames a country
func (s *CountryService) Update(ctx context.Context, countryID uuid.UUID, req UpdateCountryRequest) (*CountryResponse, error) {
	country, err := s.countryRepo.FindByID(ctx, countryID)
	if err != nil {
		return nil, err
	}

	// Renaming to the current name is a no-op: return the record as-is
	// without touching storage.
	if req.Name == country.Name {
		response := ToCountryResponse(country)
		return &response, nil
	}

	existing, err := s.countryRepo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil && existing.ID != country.ID {
		return nil, shared.ErrDuplicate
	}

	if err := country.Rename(req.Name); err != nil {
		return nil, err
	}

	if err := s.countryRepo.Save(ctx, country); err != nil {
		return nil, err
	}

	response := ToCountryResponse(country)
	return &response, nil
}

// Delete deletes a country
func (s *CountryService) Delete(ctx context.Context, countryID uuid.UUID) error {
	return s.countryRepo.Delete(ctx, countryID)
}
