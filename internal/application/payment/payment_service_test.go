package payment

import (
	"context"
	"testing"

	"github.com/fermerce/backend/internal/domain/market"
	"github.com/fermerce/backend/internal/domain/payment"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPaymentRepository is a mock implementation of PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByReference(ctx context.Context, reference string) (*payment.Payment, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]payment.Payment, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]payment.Payment, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Save(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockPaymentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) CountForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockSavedCardRepository is a mock implementation of SavedCardRepository
type MockSavedCardRepository struct {
	mock.Mock
}

func (m *MockSavedCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.SavedCard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.SavedCard), args.Error(1)
}

func (m *MockSavedCardRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*payment.SavedCard, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.SavedCard), args.Error(1)
}

func (m *MockSavedCardRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]payment.SavedCard, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]payment.SavedCard), args.Error(1)
}

func (m *MockSavedCardRepository) FindByAuthorizationCode(ctx context.Context, userID uuid.UUID, code string) (*payment.SavedCard, error) {
	args := m.Called(ctx, userID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.SavedCard), args.Error(1)
}

func (m *MockSavedCardRepository) CountForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSavedCardRepository) Save(ctx context.Context, card *payment.SavedCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockSavedCardRepository) DeleteForUser(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*market.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*market.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*market.Order, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*market.Order), args.Error(1)
}

func (m *MockOrderRepository) FindItemByID(ctx context.Context, itemID uuid.UUID) (*market.OrderItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*market.OrderItem), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *market.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// MockStatusRepository is a mock implementation of StatusRepository
type MockStatusRepository struct {
	mock.Mock
}

func (m *MockStatusRepository) FindByID(ctx context.Context, id uuid.UUID) (*market.Status, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*market.Status), args.Error(1)
}

func (m *MockStatusRepository) FindByName(ctx context.Context, name string) (*market.Status, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*market.Status), args.Error(1)
}

func (m *MockStatusRepository) FindAll(ctx context.Context, filter shared.Filter) ([]market.Status, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]market.Status), args.Error(1)
}

func (m *MockStatusRepository) Save(ctx context.Context, status *market.Status) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}

func (m *MockStatusRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStatusRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockGateway is a mock implementation of the payment Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateCharge(ctx context.Context, req payment.ChargeRequest) (*payment.ChargeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.ChargeResponse), args.Error(1)
}

func (m *MockGateway) CreateAuthorizedCharge(ctx context.Context, req payment.AuthorizedChargeRequest) (*payment.ChargeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.ChargeResponse), args.Error(1)
}

func (m *MockGateway) VerifyCharge(ctx context.Context, reference string) (*payment.VerifyResponse, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.VerifyResponse), args.Error(1)
}

type paymentServiceFixture struct {
	service     *PaymentService
	paymentRepo *MockPaymentRepository
	cardRepo    *MockSavedCardRepository
	orderRepo   *MockOrderRepository
	statusRepo  *MockStatusRepository
	gateway     *MockGateway

	pending   *market.Status
	completed *market.Status
	failed    *market.Status
	refunded  *market.Status
}

func newPaymentServiceFixture() *paymentServiceFixture {
	f := &paymentServiceFixture{
		paymentRepo: new(MockPaymentRepository),
		cardRepo:    new(MockSavedCardRepository),
		orderRepo:   new(MockOrderRepository),
		statusRepo:  new(MockStatusRepository),
		gateway:     new(MockGateway),
	}
	f.service = NewPaymentService(f.paymentRepo, f.cardRepo, f.orderRepo, f.statusRepo, f.gateway)

	f.pending, _ = market.NewStatus(market.StatusPending)
	f.completed, _ = market.NewStatus(market.StatusCompleted)
	f.failed, _ = market.NewStatus(market.StatusFailed)
	f.refunded, _ = market.NewStatus(market.StatusRefunded)
	return f
}

func (f *paymentServiceFixture) stubStatuses() {
	f.statusRepo.On("FindByName", mock.Anything, market.StatusPending).Return(f.pending, nil).Maybe()
	f.statusRepo.On("FindByName", mock.Anything, market.StatusCompleted).Return(f.completed, nil).Maybe()
	f.statusRepo.On("FindByName", mock.Anything, market.StatusFailed).Return(f.failed, nil).Maybe()
	f.statusRepo.On("FindByName", mock.Anything, market.StatusRefunded).Return(f.refunded, nil).Maybe()
}

func TestPaymentService_CreateCharge(t *testing.T) {
	t.Run("initiates a charge and records the pending payment", func(t *testing.T) {
		f := newPaymentServiceFixture()
		f.stubStatuses()

		userID := uuid.New()
		order, _ := market.NewOrder(userID)
		f.orderRepo.On("FindByIDForUser", mock.Anything, userID, order.ID).Return(order, nil)
		f.paymentRepo.On("FindByOrder", mock.Anything, order.ID).Return(nil, shared.ErrNotFound)
		f.gateway.On("CreateCharge", mock.Anything, mock.MatchedBy(func(req payment.ChargeRequest) bool {
			return req.Email == "ada@example.com" && req.Amount.Equal(decimal.RequireFromString("1200.50")) && req.Reference != ""
		})).Return(&payment.ChargeResponse{
			Status:           true,
			AuthorizationURL: "https://checkout.example.com/abc",
			AccessCode:       "abc",
		}, nil)
		f.paymentRepo.On("Save", mock.Anything, mock.AnythingOfType("*payment.Payment")).Return(nil)

		resp, err := f.service.CreateCharge(context.Background(), userID, "ada@example.com", CreateChargeRequest{
			OrderID: order.ID,
			Total:   decimal.RequireFromString("1200.50"),
		})

		assert.NoError(t, err)
		assert.Equal(t, f.pending.ID, resp.Payment.StatusID)
		assert.Equal(t, "https://checkout.example.com/abc", resp.AuthorizationURL)
		assert.Len(t, resp.Payment.Reference, shared.PaymentReferenceLength)
		f.paymentRepo.AssertExpectations(t)
	})

	t.Run("rejects a second payment for the same order", func(t *testing.T) {
		f := newPaymentServiceFixture()
		f.stubStatuses()

		userID := uuid.New()
		order, _ := market.NewOrder(userID)
		existing, _ := payment.NewPayment(userID, order.ID, f.pending.ID, decimal.NewFromInt(100))
		f.orderRepo.On("FindByIDForUser", mock.Anything, userID, order.ID).Return(order, nil)
		f.paymentRepo.On("FindByOrder", mock.Anything, order.ID).Return(existing, nil)

		resp, err := f.service.CreateCharge(context.Background(), userID, "ada@example.com", CreateChargeRequest{
			OrderID: order.ID,
			Total:   decimal.NewFromInt(100),
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, shared.ErrDuplicate)
		f.gateway.AssertNotCalled(t, "CreateCharge")
	})

	t.Run("does not record a payment when the gateway rejects the charge", func(t *testing.T) {
		f := newPaymentServiceFixture()
		f.stubStatuses()

		userID := uuid.New()
		order, _ := market.NewOrder(userID)
		f.orderRepo.On("FindByIDForUser", mock.Anything, userID, order.ID).Return(order, nil)
		f.paymentRepo.On("FindByOrder", mock.Anything, order.ID).Return(nil, shared.ErrNotFound)
		f.gateway.On("CreateCharge", mock.Anything, mock.Anything).Return(nil, shared.ErrServer)

		resp, err := f.service.CreateCharge(context.Background(), userID, "ada@example.com", CreateChargeRequest{
			OrderID: order.ID,
			Total:   decimal.NewFromInt(100),
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, shared.ErrServer)
		f.paymentRepo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects an order belonging to someone else", func(t *testing.T) {
		f := newPaymentServiceFixture()

		userID := uuid.New()
		orderID := uuid.New()
		f.orderRepo.On("FindByIDForUser", mock.Anything, userID, orderID).Return(nil, shared.ErrNotFound)

		resp, err := f.service.CreateCharge(context.Background(), userID, "ada@example.com", CreateChargeRequest{
			OrderID: orderID,
			Total:   decimal.NewFromInt(100),
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestPaymentService_CreateAuthorizedCharge(t *testing.T) {
	t.Run("charges a saved card", func(t *testing.T) {
		f := newPaymentServiceFixture()
		f.stubStatuses()

		userID := uuid.New()
		order, _ := market.NewOrder(userID)
		card, _ := payment.NewSavedCard(userID, payment.CardAuthorization{
			AuthorizationCode: "AUTH_xyz",
			Last4:             "4081",
			Reusable:          true,
		})
		f.orderRepo.On("FindByIDForUser", mock.Anything, userID, order.ID).Return(order, nil)
		f.paymentRepo.On("FindByOrder", mock.Anything, order.ID).Return(nil, shared.ErrNotFound)
		f.cardRepo.On("FindByIDForUser", mock.Anything, userID, card.ID).Return(card, nil)
		f.gateway.On("CreateAuthorizedCharge", mock.Anything, mock.MatchedBy(func(req payment.AuthorizedChargeRequest) bool {
			return req.AuthorizationCode == "AUTH_xyz"
		})).Return(&payment.ChargeResponse{Status: true}, nil)
		f.paymentRepo.On("Save", mock.Anything, mock.AnythingOfType("*payment.Payment")).Return(nil)

		resp, err := f.service.CreateAuthorizedCharge(context.Background(), userID, "ada@example.com", CreateAuthorizedChargeRequest{
			OrderID: order.ID,
			CardID:  card.ID,
			Total:   decimal.NewFromInt(100),
		})

		assert.NoError(t, err)
		assert.Equal(t, f.pending.ID, resp.Payment.StatusID)
	})

	t.Run("rejects a non-reusable card", func(t *testing.T) {
		f := newPaymentServiceFixture()
		f.stubStatuses()

		userID := uuid.New()
		order, _ := market.NewOrder(userID)
		card, _ := payment.NewSavedCard(userID, payment.CardAuthorization{
			AuthorizationCode: "AUTH_once",
			Reusable:          false,
		})
		f.orderRepo.On("FindByIDForUser", mock.Anything, userID, order.ID).Return(order, nil)
		f.paymentRepo.On("FindByOrder", mock.Anything, order.ID).Return(nil, shared.ErrNotFound)
		f.cardRepo.On("FindByIDForUser", mock.Anything, userID, card.ID).Return(card, nil)

		resp, err := f.service.CreateAuthorizedCharge(context.Background(), userID, "ada@example.com", CreateAuthorizedChargeRequest{
			OrderID: order.ID,
			CardID:  card.ID,
			Total:   decimal.NewFromInt(100),
		})

		assert.Nil(t, resp)
		assert.Error(t, err)
		f.gateway.AssertNotCalled(t, "CreateAuthorizedCharge")
	})
}

func TestPaymentService_Verify(t *testing.T) {
	t.Run("completes the payment and saves the reusable card", func(t *testing.T) {
		f := newPaymentServiceFixture()
		f.stubStatuses()

		userID := uuid.New()
		p, _ := payment.NewPayment(userID, uuid.New(), f.pending.ID, decimal.NewFromInt(100))
		f.paymentRepo.On("FindByReference", mock.Anything, p.Reference).Return(p, nil)
		f.gateway.On("VerifyCharge", mock.Anything, p.Reference).Return(&payment.VerifyResponse{
			Status:       true,
			ChargeStatus: "success",
			Reference:    p.Reference,
			Amount:       decimal.NewFromInt(100),
			Authorization: payment.CardAuthorization{
				AuthorizationCode: "AUTH_xyz",
				Last4:             "4081",
				Reusable:          true,
			},
		}, nil)
		f.paymentRepo.On("Save", mock.Anything, p).Return(nil)
		f.cardRepo.On("FindByAuthorizationCode", mock.Anything, userID, "AUTH_xyz").Return(nil, shared.ErrNotFound)
		f.cardRepo.On("Save", mock.Anything, mock.AnythingOfType("*payment.SavedCard")).Return(nil)

		resp, err := f.service.Verify(context.Background(), userID, p.Reference)

		assert.NoError(t, err)
		assert.True(t, resp.Succeeded)
		assert.Equal(t, f.completed.ID, resp.Payment.StatusID)
		f.cardRepo.AssertExpectations(t)
	})

	t.Run("marks a failed charge failed without saving a card", func(t *testing.T) {
		f := newPaymentServiceFixture()
		f.stubStatuses()

		userID := uuid.New()
		p, _ := payment.NewPayment(userID, uuid.New(), f.pending.ID, decimal.NewFromInt(100))
		f.paymentRepo.On("FindByReference", mock.Anything, p.Reference).Return(p, nil)
		f.gateway.On("VerifyCharge", mock.Anything, p.Reference).Return(&payment.VerifyResponse{
			Status:       true,
			ChargeStatus: "failed",
			Reference:    p.Reference,
		}, nil)
		f.paymentRepo.On("Save", mock.Anything, p).Return(nil)

		resp, err := f.service.Verify(context.Background(), userID, p.Reference)

		assert.NoError(t, err)
		assert.False(t, resp.Succeeded)
		assert.Equal(t, f.failed.ID, resp.Payment.StatusID)
		f.cardRepo.AssertNotCalled(t, "Save")
	})

	t.Run("hides another user's payment", func(t *testing.T) {
		f := newPaymentServiceFixture()

		owner := uuid.New()
		p, _ := payment.NewPayment(owner, uuid.New(), uuid.New(), decimal.NewFromInt(100))
		f.paymentRepo.On("FindByReference", mock.Anything, p.Reference).Return(p, nil)

		resp, err := f.service.Verify(context.Background(), uuid.New(), p.Reference)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		f.gateway.AssertNotCalled(t, "VerifyCharge")
	})

	t.Run("does not duplicate an already saved card", func(t *testing.T) {
		f := newPaymentServiceFixture()
		f.stubStatuses()

		userID := uuid.New()
		p, _ := payment.NewPayment(userID, uuid.New(), f.pending.ID, decimal.NewFromInt(100))
		card, _ := payment.NewSavedCard(userID, payment.CardAuthorization{AuthorizationCode: "AUTH_xyz", Reusable: true})
		f.paymentRepo.On("FindByReference", mock.Anything, p.Reference).Return(p, nil)
		f.gateway.On("VerifyCharge", mock.Anything, p.Reference).Return(&payment.VerifyResponse{
			Status:       true,
			ChargeStatus: "success",
			Authorization: payment.CardAuthorization{
				AuthorizationCode: "AUTH_xyz",
				Reusable:          true,
			},
		}, nil)
		f.paymentRepo.On("Save", mock.Anything, p).Return(nil)
		f.cardRepo.On("FindByAuthorizationCode", mock.Anything, userID, "AUTH_xyz").Return(card, nil)

		_, err := f.service.Verify(context.Background(), userID, p.Reference)

		assert.NoError(t, err)
		f.cardRepo.AssertNotCalled(t, "Save")
	})
}

func TestPaymentService_Refund(t *testing.T) {
	t.Run("refunds a completed payment", func(t *testing.T) {
		f := newPaymentServiceFixture()
		f.stubStatuses()

		p, _ := payment.NewPayment(uuid.New(), uuid.New(), f.completed.ID, decimal.NewFromInt(100))
		f.paymentRepo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
		f.paymentRepo.On("Save", mock.Anything, p).Return(nil)

		resp, err := f.service.Refund(context.Background(), p.ID, RefundRequest{Reason: "damaged goods"})

		assert.NoError(t, err)
		assert.Equal(t, f.refunded.ID, resp.StatusID)
		assert.Contains(t, string(p.RefundMeta), "damaged goods")
	})

	t.Run("rejects refunding a pending payment", func(t *testing.T) {
		f := newPaymentServiceFixture()
		f.stubStatuses()

		p, _ := payment.NewPayment(uuid.New(), uuid.New(), f.pending.ID, decimal.NewFromInt(100))
		f.paymentRepo.On("FindByID", mock.Anything, p.ID).Return(p, nil)

		resp, err := f.service.Refund(context.Background(), p.ID, RefundRequest{})

		assert.Nil(t, resp)
		assert.Error(t, err)
		f.paymentRepo.AssertNotCalled(t, "Save")
	})
}

func TestPaymentService_List(t *testing.T) {
	f := newPaymentServiceFixture()

	userID := uuid.New()
	p, _ := payment.NewPayment(userID, uuid.New(), uuid.New(), decimal.NewFromInt(100))
	f.paymentRepo.On("FindAllForUser", mock.Anything, userID, mock.AnythingOfType("shared.Filter")).Return([]payment.Payment{*p}, nil)
	f.paymentRepo.On("CountForUser", mock.Anything, userID, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)

	page, err := f.service.List(context.Background(), userID, ListFilter{})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalResults)
	assert.Len(t, page.Results, 1)
}
