package auth

import (
	"context"
	"strconv"
	"time"

	"cyberguard/internal/cache"
)

const revokedBeforeKeyPrefix = "revoked_before:"

// RevocationStoreInterface defines the interface for token revocation.
type RevocationStoreInterface interface {
	RevokeUserTokens(ctx context.Context, uid string, at time.Time) error
	IsRevoked(ctx context.Context, claims *Claims) (bool, error)
}

// RevocationStore marks every token of a user issued up to a point in time as
// revoked. Entries must live at least TokenService.MaxLifetime so that every
// token they cover has expired before the entry does.
//
// iat has one-second resolution, so tokens issued in the same second as the
// revocation are revoked as well.
type RevocationStore struct {
	cache  *cache.Client
	maxTTL time.Duration
}

// Ensure RevocationStore implements RevocationStoreInterface
var _ RevocationStoreInterface = (*RevocationStore)(nil)

// NewRevocationStore creates a new revocation store.
func NewRevocationStore(cache *cache.Client, maxTTL time.Duration) *RevocationStore {
	return &RevocationStore{cache: cache, maxTTL: maxTTL}
}

// RevokeUserTokens revokes the tokens of uid issued in or before the second of at.
func (s *RevocationStore) RevokeUserTokens(ctx context.Context, uid string, at time.Time) error {
	key := revokedBeforeKeyPrefix + uid
	return s.cache.Set(ctx, key, []byte(strconv.FormatInt(at.Unix(), 10)), s.maxTTL)
}

// IsRevoked reports whether the token was issued before its user's last
// revocation. An unreachable cache counts as not revoked.
func (s *RevocationStore) IsRevoked(ctx context.Context, claims *Claims) (bool, error) {
	data, err := s.cache.Get(ctx, revokedBeforeKeyPrefix+claims.UID())
	if err != nil || data == nil {
		return false, nil
	}

	revokedAt, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return false, nil
	}
	if claims.IssuedAt == nil {
		return true, nil
	}
	return claims.IssuedAt.Unix() <= revokedAt, nil
}
