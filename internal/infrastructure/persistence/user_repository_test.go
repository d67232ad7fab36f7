package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fermerce/backend/internal/domain/identity"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockUserRepository creates a GormUserRepository with a mocked SQL connection
func newMockUserRepository(t *testing.T) (*GormUserRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormUserRepository(gormDB), mock, mockDB
}

func userFixture(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("ada@example.com", "s3cret-pass")
	require.NoError(t, err)
	return user
}

func userRows(id uuid.UUID, email string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "created_at", "updated_at", "email", "password_hash",
		"first_name", "last_name", "is_verified", "is_active",
	}).AddRow(id, time.Now(), time.Now(), email, "$2a$12$hash", "Ada", "Obi", true, true)
}

func TestGormUserRepository_FindByEmail(t *testing.T) {
	t.Run("finds user and lowercases the lookup", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		userID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "fm_user" WHERE email = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("ada@example.com", 1).
			WillReturnRows(userRows(userID, "ada@example.com"))

		user, err := repo.FindByEmail(context.Background(), "Ada@Example.com")

		assert.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects empty email", func(t *testing.T) {
		repo, _, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		_, err := repo.FindByEmail(context.Background(), "")
		assert.Error(t, err)
	})

	t.Run("returns not found for unknown email", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "fm_user" WHERE email = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("ghost@example.com", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByEmail(context.Background(), "ghost@example.com")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormUserRepository_ExistsByEmail(t *testing.T) {
	t.Run("reports existing email", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "fm_user" WHERE email = \$1`).
			WithArgs("ada@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByEmail(context.Background(), "ada@example.com")

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty email never exists", func(t *testing.T) {
		repo, _, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		exists, err := repo.ExistsByEmail(context.Background(), "")
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestGormUserRepository_FindAll(t *testing.T) {
	repo, mock, mockDB := newMockUserRepository(t)
	defer mockDB.Close()

	rows := userRows(uuid.New(), "ada@example.com")
	mock.ExpectQuery(`SELECT \* FROM "fm_user" WHERE email ILIKE \$1 OR first_name ILIKE \$2 OR last_name ILIKE \$3 ORDER BY created_at ASC, id ASC LIMIT .*`).
		WithArgs("%ada%", "%ada%", "%ada%", 10).
		WillReturnRows(rows)

	users, err := repo.FindAll(context.Background(), shared.Filter{
		Page:     1,
		PageSize: 10,
		Search:   "ada",
	})

	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_Save(t *testing.T) {
	t.Run("translates unique violation to duplicate error", func(t *testing.T) {
		repo, mock, mockDB := newMockUserRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`INSERT INTO "fm_user"`).
			WillReturnError(gorm.ErrDuplicatedKey)

		user := userFixture(t)
		err := repo.Save(context.Background(), user)
		assert.ErrorIs(t, err, shared.ErrDuplicate)
	})
}
