package payment

import (
	"context"
	"errors"

	"github.com/fermerce/backend/internal/domain/market"
	"github.com/fermerce/backend/internal/domain/payment"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// RecipientService manages payout recipients. Recipients are soft-deleted
// so historical transfers keep a valid link; a deleted recipient's account
// number can be registered again.
type RecipientService struct {
	recipientRepo payment.RecipientRepository
	statusRepo    market.StatusRepository
}

// NewRecipientService creates a new RecipientService
func NewRecipientService(recipientRepo payment.RecipientRepository, statusRepo market.StatusRepository) *RecipientService {
	return &RecipientService{
		recipientRepo: recipientRepo,
		statusRepo:    statusRepo,
	}
}

// Create registers a payout recipient
func (s *RecipientService) Create(ctx context.Context, req CreateRecipientRequest) (*RecipientResponse, error) {
	existing, err := s.recipientRepo.FindByAccount(ctx, req.AccountNumber, req.BankCode)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.ErrDuplicate
	}

	status, err := s.statusRepo.FindByName(ctx, market.StatusPending)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrServer
		}
		return nil, err
	}

	recipientType := req.Type
	if recipientType == "" {
		recipientType = "nuban"
	}
	recipientCode := "RCP_" + shared.GenerateReference(12)

	recipient, err := payment.NewPaymentRecipient(recipientType, req.Name, req.Currency, req.AccountNumber, req.BankCode, recipientCode, status.ID)
	if err != nil {
		return nil, err
	}

	if err := s.recipientRepo.Save(ctx, recipient); err != nil {
		return nil, err
	}

	response := ToRecipientResponse(recipient)
	return &response, nil
}

// GetByID retrieves a recipient by ID
func (s *RecipientService) GetByID(ctx context.Context, recipientID uuid.UUID) (*RecipientResponse, error) {
	recipient, err := s.recipientRepo.FindByID(ctx, recipientID)
	if err != nil {
		return nil, err
	}

	response := ToRecipientResponse(recipient)
	return &response, nil
}

// List retrieves a page of recipients
func (s *RecipientService) List(ctx context.Context, filter ListFilter) (*shared.Page[RecipientResponse], error) {
	domainFilter := filter.domainFilter()

	recipients, err := s.recipientRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.recipientRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPage(ToRecipientResponses(recipients), total, domainFilter)
	return &page, nil
}

// Delete soft-deletes a recipient
func (s *RecipientService) Delete(ctx context.Context, recipientID uuid.UUID) error {
	recipient, err := s.recipientRepo.FindByID(ctx, recipientID)
	if err != nil {
		return err
	}

	recipient.MarkDeleted()
	return s.recipientRepo.Save(ctx, recipient)
}
