package market

import (
	"context"
	"testing"

	"github.com/fermerce/backend/internal/domain/market"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

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

func TestStatusService_Create(t *testing.T) {
	t.Run("rejects duplicate name after normalization", func(t *testing.T) {
		repo := new(MockStatusRepository)
		service := NewStatusService(repo)

		existing, _ := market.NewStatus("pending")
		repo.On("FindByName", mock.Anything, "pending").Return(existing, nil)

		resp, err := service.Create(context.Background(), CreateStatusRequest{Name: "  Pending "})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, shared.ErrDuplicate)
		repo.AssertNotCalled(t, "Save")
	})
}

func TestStatusService_Update(t *testing.T) {
	t.Run("update to the current name returns the record without writing", func(t *testing.T) {
		repo := new(MockStatusRepository)
		service := NewStatusService(repo)

		status, _ := market.NewStatus("pending")
		repo.On("FindByID", mock.Anything, status.ID).Return(status, nil)

		resp, err := service.Update(context.Background(), status.ID, UpdateStatusRequest{Name: "Pending"})

		assert.NoError(t, err)
		assert.Equal(t, "pending", resp.Name)
		repo.AssertNotCalled(t, "FindByName")
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects rename onto another status's name", func(t *testing.T) {
		repo := new(MockStatusRepository)
		service := NewStatusService(repo)

		status, _ := market.NewStatus("pending")
		other, _ := market.NewStatus("failed")
		repo.On("FindByID", mock.Anything, status.ID).Return(status, nil)
		repo.On("FindByName", mock.Anything, "failed").Return(other, nil)

		resp, err := service.Update(context.Background(), status.ID, UpdateStatusRequest{Name: "Failed"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, shared.ErrDuplicate)
		repo.AssertNotCalled(t, "Save")
	})
}
