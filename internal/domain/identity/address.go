package identity

import (
	"strings"
	"time"

	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Address is a shipping address owned by a single user. Only the owner may
// read or mutate it; lookups by other users resolve to NotFound.
type Address struct {
	shared.BaseEntity
	UserID    uuid.UUID
	Street    string
	City      string
	StateID   uuid.UUID
	CountryID uuid.UUID
	Zipcode   string
	Phones    string
}

// NewAddress creates a shipping address for the given owner
func NewAddress(userID uuid.UUID, street, city string, stateID, countryID uuid.UUID, zipcode, phones string) (*Address, error) {
	street = strings.TrimSpace(street)
	if street == "" {
		return nil, shared.NewDomainError("INVALID_STREET", "Street cannot be empty")
	}
	if userID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}
	return &Address{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Street:     street,
		City:       strings.TrimSpace(city),
		StateID:    stateID,
		CountryID:  countryID,
		Zipcode:    strings.TrimSpace(zipcode),
		Phones:     strings.TrimSpace(phones),
	}, nil
}

// Update replaces the address fields
func (a *Address) Update(street, city string, stateID, countryID uuid.UUID, zipcode, phones string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return shared.NewDomainError("INVALID_STREET", "Street cannot be empty")
	}
	a.Street = street
	a.City = strings.TrimSpace(city)
	a.StateID = stateID
	a.CountryID = countryID
	a.Zipcode = strings.TrimSpace(zipcode)
	a.Phones = strings.TrimSpace(phones)
	a.UpdatedAt = time.Now()
	return nil
}

// IsOwnedBy reports whether the address belongs to the given user
func (a *Address) IsOwnedBy(userID uuid.UUID) bool {
	return a.UserID == userID
}

// AddressRepository is the persistence port for shipping addresses
type AddressRepository interface {
	shared.OwnedRepository[Address]
}
