package payment

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/fermerce/backend/internal/domain/market"
	"github.com/fermerce/backend/internal/domain/payment"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PaymentService drives the charge lifecycle: initiate against the
// gateway, verify the result, and record refunds. One payment exists per
// order.
type PaymentService struct {
	paymentRepo payment.PaymentRepository
	cardRepo    payment.SavedCardRepository
	orderRepo   market.OrderRepository
	statusRepo  market.StatusRepository
	gateway     payment.Gateway
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo payment.PaymentRepository,
	cardRepo payment.SavedCardRepository,
	orderRepo market.OrderRepository,
	statusRepo market.StatusRepository,
	gateway payment.Gateway,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		cardRepo:    cardRepo,
		orderRepo:   orderRepo,
		statusRepo:  statusRepo,
		gateway:     gateway,
	}
}

// CreateCharge initiates a gateway charge for an order and records the
// pending payment. The payment row is written only after the gateway
// accepts the charge, so an abandoned checkout leaves nothing behind.
func (s *PaymentService) CreateCharge(ctx context.Context, userID uuid.UUID, email string, req CreateChargeRequest) (*ChargeResponse, error) {
	if _, err := s.orderRepo.FindByIDForUser(ctx, userID, req.OrderID); err != nil {
		return nil, err
	}

	existing, err := s.paymentRepo.FindByOrder(ctx, req.OrderID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.ErrDuplicate
	}

	pendingID, err := s.resolveStatus(ctx, market.StatusPending)
	if err != nil {
		return nil, err
	}

	p, err := payment.NewPayment(userID, req.OrderID, pendingID, req.Total)
	if err != nil {
		return nil, err
	}

	charge, err := s.gateway.CreateCharge(ctx, payment.ChargeRequest{
		Email:     email,
		Amount:    p.Total,
		Reference: p.Reference,
		Currency:  req.Currency,
	})
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	return &ChargeResponse{
		Payment:          ToPaymentResponse(p),
		AuthorizationURL: charge.AuthorizationURL,
		AccessCode:       charge.AccessCode,
	}, nil
}

// CreateAuthorizedCharge charges an order against one of the user's saved
// cards.
func (s *PaymentService) CreateAuthorizedCharge(ctx context.Context, userID uuid.UUID, email string, req CreateAuthorizedChargeRequest) (*ChargeResponse, error) {
	if _, err := s.orderRepo.FindByIDForUser(ctx, userID, req.OrderID); err != nil {
		return nil, err
	}

	existing, err := s.paymentRepo.FindByOrder(ctx, req.OrderID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.ErrDuplicate
	}

	card, err := s.cardRepo.FindByIDForUser(ctx, userID, req.CardID)
	if err != nil {
		return nil, err
	}
	if !card.Reusable {
		return nil, shared.NewDomainError("BAD_DATA", "Card authorization is not reusable")
	}

	pendingID, err := s.resolveStatus(ctx, market.StatusPending)
	if err != nil {
		return nil, err
	}

	p, err := payment.NewPayment(userID, req.OrderID, pendingID, req.Total)
	if err != nil {
		return nil, err
	}

	charge, err := s.gateway.CreateAuthorizedCharge(ctx, payment.AuthorizedChargeRequest{
		Email:             email,
		Amount:            p.Total,
		AuthorizationCode: card.AuthorizationCode,
		Reference:         p.Reference,
		Currency:          req.Currency,
	})
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	return &ChargeResponse{
		Payment:          ToPaymentResponse(p),
		AuthorizationURL: charge.AuthorizationURL,
		AccessCode:       charge.AccessCode,
	}, nil
}

// Verify asks the gateway for the outcome of a charge and settles the
// payment. A successful verification with a reusable authorization also
// saves the card for later one-click charges.
func (s *PaymentService) Verify(ctx context.Context, userID uuid.UUID, reference string) (*VerifyResponse, error) {
	p, err := s.paymentRepo.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if !p.IsOwnedBy(userID) {
		return nil, shared.ErrNotFound
	}

	result, err := s.gateway.VerifyCharge(ctx, reference)
	if err != nil {
		return nil, err
	}

	statusName := market.StatusFailed
	if result.Succeeded() {
		statusName = market.StatusCompleted
	}
	statusID, err := s.resolveStatus(ctx, statusName)
	if err != nil {
		return nil, err
	}
	p.SetStatus(statusID)

	if err := s.paymentRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	if result.Succeeded() && result.Authorization.Reusable && result.Authorization.AuthorizationCode != "" {
		if err := s.saveCardAuthorization(ctx, userID, result.Authorization); err != nil {
			return nil, err
		}
	}

	return &VerifyResponse{
		Payment:      ToPaymentResponse(p),
		ChargeStatus: result.ChargeStatus,
		Succeeded:    result.Succeeded(),
	}, nil
}

// Refund marks a completed payment as refunded and records the refund
// metadata alongside it.
func (s *PaymentService) Refund(ctx context.Context, paymentID uuid.UUID, req RefundRequest) (*PaymentResponse, error) {
	p, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	completedID, err := s.resolveStatus(ctx, market.StatusCompleted)
	if err != nil {
		return nil, err
	}
	if p.StatusID != completedID {
		return nil, shared.NewDomainError("BAD_DATA", "Only completed payments can be refunded")
	}

	refundedID, err := s.resolveStatus(ctx, market.StatusRefunded)
	if err != nil {
		return nil, err
	}

	meta, err := json.Marshal(map[string]any{
		"reason":      req.Reason,
		"amount":      p.Total,
		"refunded_at": time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	p.RecordRefund(refundedID, meta)

	if err := s.paymentRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToPaymentResponse(p)
	return &response, nil
}

// GetByID retrieves one of the user's payments
func (s *PaymentService) GetByID(ctx context.Context, userID, paymentID uuid.UUID) (*PaymentResponse, error) {
	p, err := s.paymentRepo.FindByIDForUser(ctx, userID, paymentID)
	if err != nil {
		return nil, err
	}

	response := ToPaymentResponse(p)
	return &response, nil
}

// List retrieves a page of the user's payments
func (s *PaymentService) List(ctx context.Context, userID uuid.UUID, filter ListFilter) (*shared.Page[PaymentResponse], error) {
	domainFilter := filter.domainFilter()

	payments, err := s.paymentRepo.FindAllForUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.paymentRepo.CountForUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPage(ToPaymentResponses(payments), total, domainFilter)
	return &page, nil
}

// TotalCount reports how many payments the user owns
func (s *PaymentService) TotalCount(ctx context.Context, userID uuid.UUID) (*CountResponse, error) {
	total, err := s.paymentRepo.CountForUser(ctx, userID, shared.Filter{})
	if err != nil {
		return nil, err
	}
	return &CountResponse{TotalCount: total}, nil
}

// ListAll retrieves a page of every payment in the system
func (s *PaymentService) ListAll(ctx context.Context, filter ListFilter) (*shared.Page[PaymentResponse], error) {
	domainFilter := filter.domainFilter()

	payments, err := s.paymentRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.paymentRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPage(ToPaymentResponses(payments), total, domainFilter)
	return &page, nil
}

func (s *PaymentService) saveCardAuthorization(ctx context.Context, userID uuid.UUID, auth payment.CardAuthorization) error {
	_, err := s.cardRepo.FindByAuthorizationCode(ctx, userID, auth.AuthorizationCode)
	if err == nil {
		return nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	card, err := payment.NewSavedCard(userID, auth)
	if err != nil {
		return err
	}
	if err := s.cardRepo.Save(ctx, card); err != nil {
		// Concurrent verifications can race on the unique index
		if errors.Is(err, shared.ErrDuplicate) {
			return nil
		}
		return err
	}
	return nil
}

// resolveStatus maps a well-known status name to its row ID. The statuses
// are seeded by migrations; a missing one is an operational fault.
func (s *PaymentService) resolveStatus(ctx context.Context, name string) (uuid.UUID, error) {
	status, err := s.statusRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return uuid.Nil, shared.ErrServer
		}
		return uuid.Nil, err
	}
	return status.ID, nil
}
