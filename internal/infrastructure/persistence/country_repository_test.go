package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fermerce/backend/internal/domain/geo"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockCountryRepository creates a GormCountryRepository with a mocked SQL connection
func newMockCountryRepository(t *testing.T) (*GormCountryRepository, sqlmock.Sqlmock, *sql.DB) {
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

	return NewGormCountryRepository(gormDB), mock, mockDB
}

func TestGormCountryRepository_FindByID(t *testing.T) {
	t.Run("finds existing country", func(t *testing.T) {
		repo, mock, mockDB := newMockCountryRepository(t)
		defer mockDB.Close()

		countryID := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name"}).
			AddRow(countryID, time.Now(), time.Now(), "Nigeria")

		mock.ExpectQuery(`SELECT \* FROM "fm_country" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(countryID, 1).
			WillReturnRows(rows)

		country, err := repo.FindByID(context.Background(), countryID)

		assert.NoError(t, err)
		assert.NotNil(t, country)
		assert.Equal(t, countryID, country.ID)
		assert.Equal(t, "Nigeria", country.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for missing country", func(t *testing.T) {
		repo, mock, mockDB := newMockCountryRepository(t)
		defer mockDB.Close()

		countryID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "fm_country" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(countryID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		country, err := repo.FindByID(context.Background(), countryID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Nil(t, country)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCountryRepository_FindByName(t *testing.T) {
	repo, mock, mockDB := newMockCountryRepository(t)
	defer mockDB.Close()

	countryID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name"}).
		AddRow(countryID, time.Now(), time.Now(), "Ghana")

	mock.ExpectQuery(`SELECT \* FROM "fm_country" WHERE name = \$1 ORDER BY .* LIMIT .*`).
		WithArgs("Ghana", 1).
		WillReturnRows(rows)

	country, err := repo.FindByName(context.Background(), "Ghana")

	assert.NoError(t, err)
	assert.Equal(t, "Ghana", country.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCountryRepository_FindAll(t *testing.T) {
	t.Run("applies search and pagination", func(t *testing.T) {
		repo, mock, mockDB := newMockCountryRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name"}).
			AddRow(uuid.New(), time.Now(), time.Now(), "Niger").
			AddRow(uuid.New(), time.Now(), time.Now(), "Nigeria")

		mock.ExpectQuery(`SELECT \* FROM "fm_country" WHERE name ILIKE \$1 ORDER BY name ASC, id ASC LIMIT .*`).
			WithArgs("%Nig%", 10).
			WillReturnRows(rows)

		countries, err := repo.FindAll(context.Background(), shared.Filter{
			Page:     1,
			PageSize: 10,
			Search:   "Nig",
		})

		assert.NoError(t, err)
		assert.Len(t, countries, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects unknown sort column", func(t *testing.T) {
		repo, mock, mockDB := newMockCountryRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name"})

		// Unknown order column falls back to the default
		mock.ExpectQuery(`SELECT \* FROM "fm_country" ORDER BY name DESC, id DESC LIMIT .*`).
			WithArgs(10).
			WillReturnRows(rows)

		_, err := repo.FindAll(context.Background(), shared.Filter{
			Page:     1,
			PageSize: 10,
			OrderBy:  "name; DROP TABLE fm_country",
			OrderDir: "desc",
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCountryRepository_Save(t *testing.T) {
	t.Run("translates unique violation to duplicate error", func(t *testing.T) {
		repo, mock, mockDB := newMockCountryRepository(t)
		defer mockDB.Close()

		country, err := geo.NewCountry("Nigeria")
		require.NoError(t, err)

		mock.ExpectExec(`INSERT INTO "fm_country"`).
			WillReturnError(gorm.ErrDuplicatedKey)

		err = repo.Save(context.Background(), country)
		assert.ErrorIs(t, err, shared.ErrDuplicate)
	})
}

func TestGormCountryRepository_Delete(t *testing.T) {
	t.Run("returns not found when nothing deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockCountryRepository(t)
		defer mockDB.Close()

		countryID := uuid.New()
		mock.ExpectExec(`DELETE FROM "fm_country" WHERE id = \$1`).
			WithArgs(countryID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), countryID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deletes existing country", func(t *testing.T) {
		repo, mock, mockDB := newMockCountryRepository(t)
		defer mockDB.Close()

		countryID := uuid.New()
		mock.ExpectExec(`DELETE FROM "fm_country" WHERE id = \$1`).
			WithArgs(countryID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), countryID)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCountryRepository_Count(t *testing.T) {
	repo, mock, mockDB := newMockCountryRepository(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "fm_country"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.Count(context.Background(), shared.Filter{})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
