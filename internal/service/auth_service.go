package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cyberguard/internal/auth"
	apperrors "cyberguard/internal/errors"
)

// AuthService handles caller authentication against provider-issued ID tokens.
type AuthService interface {
	Authenticate(ctx context.Context, idToken string) (*auth.Claims, error)
	SignOut(ctx context.Context, claims *auth.Claims) error
}

type authService struct {
	tokens     *auth.TokenService
	revocation auth.RevocationStoreInterface
	now        func() time.Time
}

// NewAuthService creates a new authentication service.
func NewAuthService(tokens *auth.TokenService, revocation auth.RevocationStoreInterface) AuthService {
	return &authService{
		tokens:     tokens,
		revocation: revocation,
		now:        time.Now,
	}
}

// Authenticate verifies the token and rejects it when its user signed out after it was issued.
func (s *authService) Authenticate(ctx context.Context, idToken string) (*auth.Claims, error) {
	claims, err := s.tokens.VerifyIDToken(idToken)
	if err != nil {
		slog.DebugContext(ctx, "id token rejected", "error", err)
		return nil, apperrors.ErrUnauthenticated
	}

	revoked, err := s.revocation.IsRevoked(ctx, claims)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, apperrors.ErrUnauthenticated
	}
	return claims, nil
}

// SignOut revokes every token of the caller issued up to now.
func (s *authService) SignOut(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.UID() == "" {
		return apperrors.ErrUnauthenticated
	}
	if err := s.revocation.RevokeUserTokens(ctx, claims.UID(), s.now()); err != nil {
		return fmt.Errorf("revoke tokens: %w", err)
	}
	slog.InfoContext(ctx, "user signed out", "uid", claims.UID())
	return nil
}
