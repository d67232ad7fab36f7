package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	geoapp "github.com/fermerce/backend/internal/application/geo"
	"github.com/fermerce/backend/internal/domain/geo"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// stubCountryRepository keeps countries in a map, enough to drive the
// handler through a real CountryService
type stubCountryRepository struct {
	countries map[uuid.UUID]*geo.Country
}

func newStubCountryRepository() *stubCountryRepository {
	return &stubCountryRepository{countries: make(map[uuid.UUID]*geo.Country)}
}

func (s *stubCountryRepository) FindByID(_ context.Context, id uuid.UUID) (*geo.Country, error) {
	if c, ok := s.countries[id]; ok {
		return c, nil
	}
	return nil, shared.ErrNotFound
}

func (s *stubCountryRepository) FindByName(_ context.Context, name string) (*geo.Country, error) {
	for _, c := range s.countries {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (s *stubCountryRepository) FindAll(_ context.Context, _ shared.Filter) ([]geo.Country, error) {
	out := make([]geo.Country, 0, len(s.countries))
	for _, c := range s.countries {
		out = append(out, *c)
	}
	return out, nil
}

func (s *stubCountryRepository) Count(_ context.Context, _ shared.Filter) (int64, error) {
	return int64(len(s.countries)), nil
}

func (s *stubCountryRepository) Save(_ context.Context, country *geo.Country) error {
	s.countries[country.ID] = country
	return nil
}

func (s *stubCountryRepository) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.countries[id]; !ok {
		return shared.ErrNotFound
	}
	delete(s.countries, id)
	return nil
}

func setupCountryRouter(repo geo.CountryRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCountryHandler(geoapp.NewCountryService(repo))

	engine := gin.New()
	engine.POST("/countries", h.Create)
	engine.GET("/countries", h.List)
	engine.GET("/countries/total/count", h.TotalCount)
	engine.GET("/countries/:id", h.GetByID)
	engine.DELETE("/countries/:id", h.Delete)
	return engine
}

func TestCountryHandler_Create(t *testing.T) {
	t.Run("creates a country and returns 201", func(t *testing.T) {
		engine := setupCountryRouter(newStubCountryRepository())

		body, _ := json.Marshal(gin.H{"name": "Nigeria"})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/countries", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "Nigeria")
	})

	t.Run("returns 409 for a duplicate name", func(t *testing.T) {
		repo := newStubCountryRepository()
		existing, _ := geo.NewCountry("Nigeria")
		repo.countries[existing.ID] = existing
		engine := setupCountryRouter(repo)

		body, _ := json.Marshal(gin.H{"name": "Nigeria"})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/countries", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("returns 400 for a missing name", func(t *testing.T) {
		engine := setupCountryRouter(newStubCountryRepository())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/countries", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCountryHandler_GetByID(t *testing.T) {
	t.Run("returns 400 for a malformed ID", func(t *testing.T) {
		engine := setupCountryRouter(newStubCountryRepository())

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/countries/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns 404 for an unknown country", func(t *testing.T) {
		engine := setupCountryRouter(newStubCountryRepository())

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/countries/"+uuid.NewString(), nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCountryHandler_List(t *testing.T) {
	repo := newStubCountryRepository()
	nigeria, _ := geo.NewCountry("Nigeria")
	ghana, _ := geo.NewCountry("Ghana")
	repo.countries[nigeria.ID] = nigeria
	repo.countries[ghana.ID] = ghana
	engine := setupCountryRouter(repo)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/countries?page=1&page_size=10", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			TotalResults int64 `json:"total_results"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(2), resp.Data.TotalResults)
}

func TestCountryHandler_TotalCount(t *testing.T) {
	repo := newStubCountryRepository()
	nigeria, _ := geo.NewCountry("Nigeria")
	ghana, _ := geo.NewCountry("Ghana")
	repo.countries[nigeria.ID] = nigeria
	repo.countries[ghana.ID] = ghana
	engine := setupCountryRouter(repo)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/countries/total/count", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			TotalCount int64 `json:"total_count"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(2), resp.Data.TotalCount)
}

func TestCountryHandler_Delete(t *testing.T) {
	t.Run("returns 204 with no body", func(t *testing.T) {
		repo := newStubCountryRepository()
		nigeria, _ := geo.NewCountry("Nigeria")
		repo.countries[nigeria.ID] = nigeria
		engine := setupCountryRouter(repo)

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/countries/"+nigeria.ID.String(), nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("returns 404 for an unknown country", func(t *testing.T) {
		engine := setupCountryRouter(newStubCountryRepository())

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/countries/"+uuid.NewString(), nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
