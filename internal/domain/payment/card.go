package payment

import (
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SavedCard stores a reusable card authorization returned by the gateway
// after a successful charge. The authorization code is what later charges
// reference; full card data never touches this system.
type SavedCard struct {
	shared.BaseEntity
	UserID            uuid.UUID
	AuthorizationCode string
	Bin               string
	Last4             string
	ExpMonth          string
	ExpYear           string
	CardType          string
	Bank              string
	CountryCode       string
	Brand             string
	Reusable          bool
}

// NewSavedCard creates a saved card from a gateway authorization
func NewSavedCard(userID uuid.UUID, auth CardAuthorization) (*SavedCard, error) {
	if userID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}
	if auth.AuthorizationCode == "" {
		return nil, shared.ErrBadData
	}
	return &SavedCard{
		BaseEntity:        shared.NewBaseEntity(),
		UserID:            userID,
		AuthorizationCode: auth.AuthorizationCode,
		Bin:               auth.Bin,
		Last4:             auth.Last4,
		ExpMonth:          auth.ExpMonth,
		ExpYear:           auth.ExpYear,
		CardType:          auth.CardType,
		Bank:              auth.Bank,
		CountryCode:       auth.CountryCode,
		Brand:             auth.Brand,
		Reusable:          auth.Reusable,
	}, nil
}

// IsOwnedBy reports whether the card belongs to the given user
func (c *SavedCard) IsOwnedBy(userID uuid.UUID) bool {
	return c.UserID == userID
}
