package identity

import (
	"context"
	"time"

	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AuthSession records the token pair issued to a user from a given IP.
// One row exists per (user, ip); a new login from the same address
// overwrites the stored tokens.
type AuthSession struct {
	shared.BaseEntity
	UserID       uuid.UUID
	IPAddress    string
	AccessToken  string
	RefreshToken string
}

// NewAuthSession creates a session record for a freshly issued token pair
func NewAuthSession(userID uuid.UUID, ip, accessToken, refreshToken string) *AuthSession {
	return &AuthSession{
		BaseEntity:   shared.NewBaseEntity(),
		UserID:       userID,
		IPAddress:    ip,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
}

// Rotate replaces the stored tokens after a refresh or re-login
func (s *AuthSession) Rotate(accessToken, refreshToken string) {
	s.AccessToken = accessToken
	s.RefreshToken = refreshToken
	s.UpdatedAt = time.Now()
}

// AuthSessionRepository is the persistence port for auth sessions
type AuthSessionRepository interface {
	FindByUserAndIP(ctx context.Context, userID uuid.UUID, ip string) (*AuthSession, error)
	Save(ctx context.Context, session *AuthSession) error
	DeleteForUser(ctx context.Context, userID uuid.UUID) error
}
