package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// MaxTokenLifetime bounds exp-iat of every accepted token. Provider ID
	// tokens are issued for one hour.
	MaxTokenLifetime = time.Hour
	// DevTokenExpiry is the default lifetime of tokens minted by IssueIDToken.
	DevTokenExpiry = MaxTokenLifetime
)

var (
	// ErrInvalidToken is returned for tokens that fail signature or claim checks.
	ErrInvalidToken = errors.New("invalid token")
	// ErrMissingSubject is returned for tokens without a user id.
	ErrMissingSubject = errors.New("token has no subject")
	// ErrTokenLifetime is returned for tokens without iat or living longer than the lifetime limit.
	ErrTokenLifetime = errors.New("token lifetime exceeds limit")
)

// Claims are the ID token claims issued by the identity provider.
// The subject is the user id.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UID returns the user id carried by the token.
func (c *Claims) UID() string {
	return c.Subject
}

// TokenService verifies provider-issued HS256 ID tokens. It can also mint
// tokens with the same secret for local development and tests.
type TokenService struct {
	secret      []byte
	issuer      string
	maxLifetime time.Duration
}

// NewTokenService creates a token service. An empty issuer disables the issuer check.
func NewTokenService(secret, issuer string) *TokenService {
	return &TokenService{
		secret:      []byte(secret),
		issuer:      issuer,
		maxLifetime: MaxTokenLifetime,
	}
}

// MaxLifetime is the longest exp-iat span VerifyIDToken accepts. Revocation
// markers must live at least this long.
func (s *TokenService) MaxLifetime() time.Duration {
	return s.maxLifetime
}

// IssueIDToken signs an ID token for uid valid for ttl.
func (s *TokenService) IssueIDToken(uid, email string, ttl time.Duration) (string, error) {
	if ttl > s.maxLifetime {
		return "", fmt.Errorf("%w: %s > %s", ErrTokenLifetime, ttl, s.maxLifetime)
	}

	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   uid,
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyIDToken validates a token and returns its claims.
func (s *TokenService) VerifyIDToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	if claims.IssuedAt == nil || claims.ExpiresAt.Sub(claims.IssuedAt.Time) > s.maxLifetime {
		return nil, errors.Join(ErrInvalidToken, ErrTokenLifetime)
	}
	return claims, nil
}
