package payment

import (
	"context"
	"errors"

	"github.com/fermerce/backend/internal/domain/market"
	"github.com/fermerce/backend/internal/domain/payment"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TransferService manages outbound payouts. A transfer starts pending and
// is settled with a transfer code once the payout goes through.
type TransferService struct {
	transferRepo  payment.TransferRepository
	recipientRepo payment.RecipientRepository
	statusRepo    market.StatusRepository
}

// NewTransferService creates a new TransferService
func NewTransferService(
	transferRepo payment.TransferRepository,
	recipientRepo payment.RecipientRepository,
	statusRepo market.StatusRepository,
) *TransferService {
	return &TransferService{
		transferRepo:  transferRepo,
		recipientRepo: recipientRepo,
		statusRepo:    statusRepo,
	}
}

// Create creates a pending transfer to a recipient
func (s *TransferService) Create(ctx context.Context, req CreateTransferRequest) (*TransferResponse, error) {
	if _, err := s.recipientRepo.FindByID(ctx, req.RecipientID); err != nil {
		return nil, err
	}

	pendingID, err := s.resolveStatus(ctx, market.StatusPending)
	if err != nil {
		return nil, err
	}

	transfer, err := payment.NewTransferPayment(req.RecipientID, pendingID, req.Amount, req.Currency, req.Source, req.Reason)
	if err != nil {
		return nil, err
	}

	if err := s.transferRepo.Save(ctx, transfer); err != nil {
		return nil, err
	}

	response := ToTransferResponse(transfer)
	return &response, nil
}

// Complete settles a pending transfer with a provider transfer code
func (s *TransferService) Complete(ctx context.Context, transferID uuid.UUID) (*TransferResponse, error) {
	transfer, err := s.transferRepo.FindByID(ctx, transferID)
	if err != nil {
		return nil, err
	}

	pendingID, err := s.resolveStatus(ctx, market.StatusPending)
	if err != nil {
		return nil, err
	}
	if transfer.StatusID != pendingID {
		return nil, shared.NewDomainError("BAD_DATA", "Only pending transfers can be completed")
	}

	completedID, err := s.resolveStatus(ctx, market.StatusCompleted)
	if err != nil {
		return nil, err
	}

	transfer.Complete("TRF_"+shared.GenerateReference(12), completedID)

	if err := s.transferRepo.Save(ctx, transfer); err != nil {
		return nil, err
	}

	response := ToTransferResponse(transfer)
	return &response, nil
}

// GetByID retrieves a transfer by ID
func (s *TransferService) GetByID(ctx context.Context, transferID uuid.UUID) (*TransferResponse, error) {
	transfer, err := s.transferRepo.FindByID(ctx, transferID)
	if err != nil {
		return nil, err
	}

	response := ToTransferResponse(transfer)
	return &response, nil
}

// List retrieves a page of transfers
func (s *TransferService) List(ctx context.Context, filter ListFilter) (*shared.Page[TransferResponse], error) {
	domainFilter := filter.domainFilter()

	transfers, err := s.transferRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.transferRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPage(ToTransferResponses(transfers), total, domainFilter)
	return &page, nil
}

func (s *TransferService) resolveStatus(ctx context.Context, name string) (uuid.UUID, error) {
	status, err := s.statusRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return uuid.Nil, shared.ErrServer
		}
		return uuid.Nil, err
	}
	return status.ID, nil
}
