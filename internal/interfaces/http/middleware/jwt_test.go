package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fermerce/backend/internal/infrastructure/auth"
	"github.com/fermerce/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestJWTService(accessTTL time.Duration) *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-access-secret-0123456789abcdef",
		RefreshSecret:          "test-refresh-secret-0123456789abcdef",
		AccessTokenExpiration:  accessTTL,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "fermerce-test",
	})
}

// fakeBlacklist is a TokenBlacklist backed by in-memory sets; lookupErr
// makes every lookup fail to simulate an unreachable store
type fakeBlacklist struct {
	jtis        map[string]bool
	invalidated map[string]time.Time
	lookupErr   error
}

func newFakeBlacklist() *fakeBlacklist {
	return &fakeBlacklist{
		jtis:        make(map[string]bool),
		invalidated: make(map[string]time.Time),
	}
}

func (f *fakeBlacklist) AddToBlacklist(_ context.Context, jti string, _ time.Duration) error {
	f.jtis[jti] = true
	return nil
}

func (f *fakeBlacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	if f.lookupErr != nil {
		return false, f.lookupErr
	}
	return f.jtis[jti], nil
}

func (f *fakeBlacklist) AddUserTokensToBlacklist(_ context.Context, userID string, _ time.Duration) error {
	f.invalidated[userID] = time.Now()
	return nil
}

func (f *fakeBlacklist) IsUserTokenInvalidated(_ context.Context, userID string, issuedAt time.Time) (bool, error) {
	if f.lookupErr != nil {
		return false, f.lookupErr
	}
	at, ok := f.invalidated[userID]
	if !ok {
		return false, nil
	}
	return issuedAt.Before(at), nil
}

func setupAuthRouter(cfg JWTMiddlewareConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(JWTAuthMiddlewareWithConfig(cfg))
	engine.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetJWTUserID(c),
			"email":   GetJWTEmail(c),
		})
	})
	engine.GET("/public", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func TestJWTAuthMiddleware(t *testing.T) {
	jwtService := newTestJWTService(15 * time.Minute)
	userID := uuid.New()

	t.Run("accepts a valid bearer token and exposes claims", func(t *testing.T) {
		engine := setupAuthRouter(JWTMiddlewareConfig{JWTService: jwtService})

		pair, err := jwtService.GenerateTokenPair(userID, "ada@example.com")
		assert.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, userID.String(), body["user_id"])
		assert.Equal(t, "ada@example.com", body["email"])
	})

	t.Run("rejects a missing authorization header", func(t *testing.T) {
		engine := setupAuthRouter(JWTMiddlewareConfig{JWTService: jwtService})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
	})

	t.Run("rejects a refresh token on an access endpoint", func(t *testing.T) {
		engine := setupAuthRouter(JWTMiddlewareConfig{JWTService: jwtService})

		pair, err := jwtService.GenerateTokenPair(userID, "ada@example.com")
		assert.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expiredService := newTestJWTService(-time.Minute)
		engine := setupAuthRouter(JWTMiddlewareConfig{JWTService: expiredService})

		pair, err := expiredService.GenerateTokenPair(userID, "ada@example.com")
		assert.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "TOKEN_EXPIRED")
	})

	t.Run("skips configured public paths", func(t *testing.T) {
		engine := setupAuthRouter(JWTMiddlewareConfig{
			JWTService: jwtService,
			SkipPaths:  []string{"/public"},
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects a blacklisted jti", func(t *testing.T) {
		blacklist := newFakeBlacklist()
		engine := setupAuthRouter(JWTMiddlewareConfig{
			JWTService:     jwtService,
			TokenBlacklist: blacklist,
		})

		pair, err := jwtService.GenerateTokenPair(userID, "ada@example.com")
		assert.NoError(t, err)

		claims, err := jwtService.ValidateAccessToken(pair.AccessToken)
		assert.NoError(t, err)
		assert.NoError(t, blacklist.AddToBlacklist(context.Background(), claims.ID, time.Minute))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "TOKEN_REVOKED")
	})

	t.Run("lets a valid token through when the blacklist is unreachable", func(t *testing.T) {
		blacklist := newFakeBlacklist()
		blacklist.lookupErr = errors.New("connection refused")

		core, observed := observer.New(zap.WarnLevel)
		engine := setupAuthRouter(JWTMiddlewareConfig{
			JWTService:     jwtService,
			TokenBlacklist: blacklist,
			Logger:         zap.New(core),
		})

		pair, err := jwtService.GenerateTokenPair(userID, "ada@example.com")
		assert.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), userID.String())
		assert.NotZero(t, observed.FilterMessage("Failed to check token blacklist").Len())
	})

	t.Run("rejects tokens issued before a user-wide invalidation", func(t *testing.T) {
		blacklist := newFakeBlacklist()
		engine := setupAuthRouter(JWTMiddlewareConfig{
			JWTService:     jwtService,
			TokenBlacklist: blacklist,
		})

		pair, err := jwtService.GenerateTokenPair(userID, "ada@example.com")
		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		assert.NoError(t, blacklist.AddUserTokensToBlacklist(context.Background(), userID.String(), time.Hour))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
