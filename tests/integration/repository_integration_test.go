package integration

import (
	"context"
	"testing"

	"github.com/fermerce/backend/internal/domain/geo"
	"github.com/fermerce/backend/internal/domain/identity"
	"github.com/fermerce/backend/internal/domain/market"
	"github.com/fermerce/backend/internal/domain/payment"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/fermerce/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserEmailUniqueness(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := NewTestDB(t)
	ctx := context.Background()
	userRepo := persistence.NewGormUserRepository(tdb.DB)

	first, err := identity.NewUser("ada@example.com", "password123")
	require.NoError(t, err)
	require.NoError(t, userRepo.Save(ctx, first))

	second, err := identity.NewUser("ada@example.com", "different456")
	require.NoError(t, err)
	err = userRepo.Save(ctx, second)
	assert.ErrorIs(t, err, shared.ErrDuplicate)

	found, err := userRepo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
}

func TestCountryNameUniqueness(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := NewTestDB(t)
	ctx := context.Background()
	countryRepo := persistence.NewGormCountryRepository(tdb.DB)

	nigeria, err := geo.NewCountry("Nigeria")
	require.NoError(t, err)
	require.NoError(t, countryRepo.Save(ctx, nigeria))

	dup, err := geo.NewCountry("Nigeria")
	require.NoError(t, err)
	assert.ErrorIs(t, countryRepo.Save(ctx, dup), shared.ErrDuplicate)
}

func TestOnePaymentPerOrder(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := NewTestDB(t)
	ctx := context.Background()
	userRepo := persistence.NewGormUserRepository(tdb.DB)
	orderRepo := persistence.NewGormOrderRepository(tdb.DB)
	statusRepo := persistence.NewGormStatusRepository(tdb.DB)
	paymentRepo := persistence.NewGormPaymentRepository(tdb.DB)

	user, err := identity.NewUser("buyer@example.com", "password123")
	require.NoError(t, err)
	require.NoError(t, userRepo.Save(ctx, user))

	order, err := market.NewOrder(user.ID)
	require.NoError(t, err)
	require.NoError(t, orderRepo.Save(ctx, order))

	// Statuses are seeded by migrations
	pending, err := statusRepo.FindByName(ctx, market.StatusPending)
	require.NoError(t, err)

	first, err := payment.NewPayment(user.ID, order.ID, pending.ID, decimal.NewFromInt(1200))
	require.NoError(t, err)
	require.NoError(t, paymentRepo.Save(ctx, first))

	// A second payment for the same order carries a fresh reference, so
	// the order unique index is what rejects it
	second, err := payment.NewPayment(user.ID, order.ID, pending.ID, decimal.NewFromInt(1200))
	require.NoError(t, err)
	assert.ErrorIs(t, paymentRepo.Save(ctx, second), shared.ErrDuplicate)

	found, err := paymentRepo.FindByReference(ctx, first.Reference)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
	assert.True(t, found.Total.Equal(decimal.NewFromInt(1200)))
}

func TestAuthSessionRotation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := NewTestDB(t)
	ctx := context.Background()
	userRepo := persistence.NewGormUserRepository(tdb.DB)
	sessionRepo := persistence.NewGormAuthSessionRepository(tdb.DB)

	user, err := identity.NewUser("ada@example.com", "password123")
	require.NoError(t, err)
	require.NoError(t, userRepo.Save(ctx, user))

	session := identity.NewAuthSession(user.ID, "203.0.113.7", "access-1", "refresh-1")
	require.NoError(t, sessionRepo.Save(ctx, session))

	// A repeat login from the same address rotates the existing row
	// instead of inserting a second one
	existing, err := sessionRepo.FindByUserAndIP(ctx, user.ID, "203.0.113.7")
	require.NoError(t, err)
	existing.Rotate("access-2", "refresh-2")
	require.NoError(t, sessionRepo.Save(ctx, existing))

	rotated, err := sessionRepo.FindByUserAndIP(ctx, user.ID, "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, session.ID, rotated.ID)
	assert.Equal(t, "access-2", rotated.AccessToken)

	require.NoError(t, sessionRepo.DeleteForUser(ctx, user.ID))
	_, err = sessionRepo.FindByUserAndIP(ctx, user.ID, "203.0.113.7")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
