package identity

import (
	"testing"

	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates active unverified user", func(t *testing.T) {
		user, err := NewUser("Jane.Doe@Example.com", "s3cretpass")
		require.NoError(t, err)

		assert.Equal(t, "jane.doe@example.com", user.Email)
		assert.True(t, user.IsActive)
		assert.False(t, user.IsVerified)
		assert.NotEqual(t, "s3cretpass", user.PasswordHash)
	})

	t.Run("rejects empty email", func(t *testing.T) {
		_, err := NewUser("", "s3cretpass")
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_EMAIL", domainErr.Code)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := NewUser("not-an-email", "s3cretpass")
		assert.Error(t, err)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser("jane@example.com", "short")
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PASSWORD", domainErr.Code)
	})
}

func TestUserVerifyPassword(t *testing.T) {
	user, err := NewUser("jane@example.com", "s3cretpass")
	require.NoError(t, err)

	assert.True(t, user.VerifyPassword("s3cretpass"))
	assert.False(t, user.VerifyPassword("wrongpass1"))
}

func TestUserChangePassword(t *testing.T) {
	user, err := NewUser("jane@example.com", "s3cretpass")
	require.NoError(t, err)

	require.NoError(t, user.ChangePassword("news3cret"))
	assert.True(t, user.VerifyPassword("news3cret"))
	assert.False(t, user.VerifyPassword("s3cretpass"))

	assert.Error(t, user.ChangePassword("short"))
}

func TestUserFullName(t *testing.T) {
	user, err := NewUser("jane@example.com", "s3cretpass")
	require.NoError(t, err)

	user.SetName("  Jane ", " Doe ")
	assert.Equal(t, "Jane Doe", user.FullName())
}
