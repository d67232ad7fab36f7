package identity

import (
	"context"
	"errors"

	"github.com/fermerce/backend/internal/domain/identity"
	"github.com/fermerce/backend/internal/domain/shared"
	"github.com/fermerce/backend/internal/infrastructure/auth"
)

// ErrInvalidCredentials is returned for any login failure so a caller
// cannot distinguish an unknown email from a wrong password.
var ErrInvalidCredentials = shared.NewDomainError("UNAUTHORIZED", "Invalid email or password")

// AuthService handles registration, login and the token lifecycle
type AuthService struct {
	userRepo    identity.UserRepository
	sessionRepo identity.AuthSessionRepository
	tokens      *auth.JWTService
	blacklist   auth.TokenBlacklist
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo identity.UserRepository,
	sessionRepo identity.AuthSessionRepository,
	tokens *auth.JWTService,
	blacklist auth.TokenBlacklist,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		blacklist:   blacklist,
	}
}

// Register creates a new user account
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ErrDuplicate
	}

	user, err := identity.NewUser(req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" || req.LastName != "" {
		user.SetName(req.FirstName, req.LastName)
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// Login authenticates a user and issues a token pair. The session row for
// (user, ip) is written before the response is returned so a crash cannot
// hand out tokens that were never recorded.
func (s *AuthService) Login(ctx context.Context, req LoginRequest, ip string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.VerifyPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, shared.ErrUnauthorized
	}

	pair, err := s.tokens.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	if err := s.persistSession(ctx, user, ip, pair); err != nil {
		return nil, err
	}

	return &LoginResponse{
		User:   ToUserResponse(user),
		Tokens: pair,
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest, ip string) (*auth.TokenPair, error) {
	claims, err := s.tokens.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	revoked, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, shared.ErrUnauthorized
	}

	if claims.IssuedAt != nil {
		invalidated, err := s.blacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.IssuedAt.Time)
		if err != nil {
			return nil, err
		}
		if invalidated {
			return nil, shared.ErrUnauthorized
		}
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, shared.ErrUnauthorized
	}

	pair, err := s.tokens.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	if err := s.persistSession(ctx, user, ip, pair); err != nil {
		return nil, err
	}

	return pair, nil
}

// Logout revokes the presented access token and every token issued to the
// user before now, then drops the stored sessions.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if ttl := claims.GetRemainingTTL(); ttl > 0 {
		if err := s.blacklist.AddToBlacklist(ctx, claims.ID, ttl); err != nil {
			return err
		}
	}

	if err := s.blacklist.AddUserTokensToBlacklist(ctx, claims.UserID, s.tokens.GetRefreshTokenExpiration()); err != nil {
		return err
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return shared.ErrUnauthorized
	}
	return s.sessionRepo.DeleteForUser(ctx, userID)
}

func (s *AuthService) persistSession(ctx context.Context, user *identity.User, ip string, pair *auth.TokenPair) error {
	session, err := s.sessionRepo.FindByUserAndIP(ctx, user.ID, ip)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		session = identity.NewAuthSession(user.ID, ip, pair.AccessToken, pair.RefreshToken)
	} else {
		session.Rotate(pair.AccessToken, pair.RefreshToken)
	}
	return s.sessionRepo.Save(ctx, session)
}
