package payment

import (
	"testing"

	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.New()
	statusID := uuid.New()

	t.Run("generates fixed-length reference", func(t *testing.T) {
		p, err := NewPayment(userID, orderID, statusID, decimal.NewFromFloat(120.50))
		require.NoError(t, err)

		assert.Len(t, p.Reference, shared.PaymentReferenceLength)
		assert.Equal(t, "120.5", p.Total.String())
	})

	t.Run("rounds total to two fraction digits", func(t *testing.T) {
		p, err := NewPayment(userID, orderID, statusID, decimal.NewFromFloat(99.999))
		require.NoError(t, err)
		assert.Equal(t, "100", p.Total.String())
	})

	t.Run("rejects negative total", func(t *testing.T) {
		_, err := NewPayment(userID, orderID, statusID, decimal.NewFromInt(-1))
		assert.Error(t, err)
	})

	t.Run("requires an owner", func(t *testing.T) {
		_, err := NewPayment(uuid.Nil, orderID, statusID, decimal.NewFromInt(10))
		assert.ErrorIs(t, err, shared.ErrUnauthorized)
	})
}

func TestPaymentOwnership(t *testing.T) {
	userID := uuid.New()
	p, err := NewPayment(userID, uuid.New(), uuid.New(), decimal.NewFromInt(50))
	require.NoError(t, err)

	assert.True(t, p.IsOwnedBy(userID))
	assert.False(t, p.IsOwnedBy(uuid.New()))
}

func TestPaymentRecordRefund(t *testing.T) {
	p, err := NewPayment(uuid.New(), uuid.New(), uuid.New(), decimal.NewFromInt(50))
	require.NoError(t, err)

	refundedStatus := uuid.New()
	meta := []byte(`{"refund_reference":"RF123"}`)
	p.RecordRefund(refundedStatus, meta)

	assert.Equal(t, refundedStatus, p.StatusID)
	assert.Equal(t, meta, p.RefundMeta)
}

func TestVerifyResponseSucceeded(t *testing.T) {
	assert.True(t, (&VerifyResponse{Status: true, ChargeStatus: "success"}).Succeeded())
	assert.False(t, (&VerifyResponse{Status: true, ChargeStatus: "failed"}).Succeeded())
	assert.False(t, (&VerifyResponse{Status: false, ChargeStatus: "success"}).Succeeded())
}
