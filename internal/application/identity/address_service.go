package identity

import (
	"context"
	"errors"

	"github.com/fermerce/backend/internal/domain/geo"
	"github.com/fermerce/backend/internal/domain/identity"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AddressService handles shipping addresses. Every operation is scoped to
// the owning user; an address belonging to someone else resolves to
// NotFound rather than Forbidden.
type AddressService struct {
	addressRepo identity.AddressRepository
	stateRepo   geo.StateRepository
	countryRepo geo.CountryRepository
}

// NewAddressService creates a new AddressService
func NewAddressService(
	addressRepo identity.AddressRepository,
	stateRepo geo.StateRepository,
	countryRepo geo.CountryRepository,
) *AddressService {
	return &AddressService{
		addressRepo: addressRepo,
		stateRepo:   stateRepo,
		countryRepo: countryRepo,
	}
}

// Create creates a shipping address for the given user
func (s *AddressService) Create(ctx context.Context, userID uuid.UUID, req CreateAddressRequest) (*AddressResponse, error) {
	if err := s.checkReferences(ctx, req.StateID, req.CountryID); err != nil {
		return nil, err
	}

	address, err := identity.NewAddress(userID, req.Street, req.City, req.StateID, req.CountryID, req.Zipcode, req.Phones)
	if err != nil {
		return nil, err
	}

	if err := s.addressRepo.Save(ctx, address); err != nil {
		return nil, err
	}

	response := ToAddressResponse(address)
	return &response, nil
}

// GetByID retrieves one of the user's addresses
func (s *AddressService) GetByID(ctx context.Context, userID, addressID uuid.UUID) (*AddressResponse, error) {
	address, err := s.addressRepo.FindByIDForUser(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	response := ToAddressResponse(address)
	return &response, nil
}

// List retrieves a page of the user's addresses
func (s *AddressService) List(ctx context.Context, userID uuid.UUID, filter ListFilter) (*shared.Page[AddressResponse], error) {
	domainFilter := filter.domainFilter()

	addresses, err := s.addressRepo.FindAllForUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.addressRepo.CountForUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPage(ToAddressResponses(addresses), total, domainFilter)
	return &page, nil
}

// TotalCount reports how many addresses the user owns
func (s *AddressService) TotalCount(ctx context.Context, userID uuid.UUID) (*CountResponse, error) {
	total, err := s.addressRepo.CountForUser(ctx, userID, shared.Filter{})
	if err != nil {
		return nil, err
	}
	return &CountResponse{TotalCount: total}, nil
}

// Update updates one of the user's addresses
func (s *AddressService) Update(ctx context.Context, userID, addressID uuid.UUID, req UpdateAddressRequest) (*AddressResponse, error) {
	address, err := s.addressRepo.FindByIDForUser(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	street := address.Street
	city := address.City
	stateID := address.StateID
	countryID := address.CountryID
	zipcode := address.Zipcode
	phones := address.Phones

	if req.Street != nil {
		street = *req.Street
	}
	if req.City != nil {
		city = *req.City
	}
	if req.StateID != nil {
		stateID = *req.StateID
	}
	if req.CountryID != nil {
		countryID = *req.CountryID
	}
	if req.Zipcode != nil {
		zipcode = *req.Zipcode
	}
	if req.Phones != nil {
		phones = *req.Phones
	}

	if stateID != address.StateID || countryID != address.CountryID {
		if err := s.checkReferences(ctx, stateID, countryID); err != nil {
			return nil, err
		}
	}

	if err := address.Update(street, city, stateID, countryID, zipcode, phones); err != nil {
		return nil, err
	}

	if err := s.addressRepo.Save(ctx, address); err != nil {
		return nil, err
	}

	response := ToAddressResponse(address)
	return &response, nil
}

// Delete deletes one of the user's addresses
func (s *AddressService) Delete(ctx context.Context, userID, addressID uuid.UUID) error {
	return s.addressRepo.DeleteForUser(ctx, userID, addressID)
}

// checkReferences verifies the state and country rows exist before an
// address points at them.
func (s *AddressService) checkReferences(ctx context.Context, stateID, countryID uuid.UUID) error {
	if _, err := s.stateRepo.FindByID(ctx, stateID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "State not found")
		}
		return err
	}
	if _, err := s.countryRepo.FindByID(ctx, countryID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Country not found")
		}
		return err
	}
	return nil
}
