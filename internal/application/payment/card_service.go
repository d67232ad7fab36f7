package payment

import (
	"context"

	"github.com/fermerce/backend/internal/domain/payment"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CardService exposes a user's saved card authorizations. Cards are only
// ever created by a successful charge verification; here they can be
// listed and removed.
type CardService struct {
	cardRepo payment.SavedCardRepository
}

// NewCardService creates a new CardService
func NewCardService(cardRepo payment.SavedCardRepository) *CardService {
	return &CardService{
		cardRepo: cardRepo,
	}
}

// GetByID retrieves one of the user's saved cards
func (s *CardService) GetByID(ctx context.Context, userID, cardID uuid.UUID) (*SavedCardResponse, error) {
	card, err := s.cardRepo.FindByIDForUser(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}

	response := ToSavedCardResponse(card)
	return &response, nil
}

// List retrieves a page of the user's saved cards
func (s *CardService) List(ctx context.Context, userID uuid.UUID, filter ListFilter) (*shared.Page[SavedCardResponse], error) {
	domainFilter := filter.domainFilter()

	cards, err := s.cardRepo.FindAllForUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.cardRepo.CountForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	page := shared.NewPage(ToSavedCardResponses(cards), total, domainFilter)
	return &page, nil
}

// Delete removes one of the user's saved cards
func (s *CardService) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	return s.cardRepo.DeleteForUser(ctx, userID, cardID)
}
