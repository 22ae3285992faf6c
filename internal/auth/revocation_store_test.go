package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyberguard/internal/cache"
)

func newRedisRevocationStore(t *testing.T) (*RevocationStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := cache.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = client.Close() })
	return NewRevocationStore(client, MaxTokenLifetime), mr
}

func claimsIssuedAt(uid string, at time.Time) *Claims {
	return &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: uid, IssuedAt: jwt.NewNumericDate(at)}}
}

func TestRevocationStore_IssuedAtComparison(t *testing.T) {
	store, _ := newRedisRevocationStore(t)
	ctx := context.Background()
	signOut := time.Date(2024, 5, 1, 12, 0, 0, 500_000_000, time.UTC)
	require.NoError(t, store.RevokeUserTokens(ctx, "uid-1", signOut))

	tests := []struct {
		name   string
		claims *Claims
		want   bool
	}{
		{name: "issued earlier", claims: claimsIssuedAt("uid-1", signOut.Add(-time.Minute)), want: true},
		{name: "issued in the same second", claims: claimsIssuedAt("uid-1", signOut.Add(400*time.Millisecond)), want: true},
		{name: "issued in the next second", claims: claimsIssuedAt("uid-1", signOut.Add(time.Second)), want: false},
		{name: "no iat", claims: &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "uid-1"}}, want: true},
		{name: "other user", claims: claimsIssuedAt("uid-2", signOut.Add(-time.Minute)), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			revoked, err := store.IsRevoked(ctx, tt.claims)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, revoked)
		})
	}
}

func TestRevocationStore_MarkerOutlivesCoveredTokens(t *testing.T) {
	store, mr := newRedisRevocationStore(t)
	tokens := NewTokenService("test-secret", "")
	ctx := context.Background()

	tok, err := tokens.IssueIDToken("uid-1", "a@b.c", tokens.MaxLifetime())
	require.NoError(t, err)
	claims, err := tokens.VerifyIDToken(tok)
	require.NoError(t, err)

	require.NoError(t, store.RevokeUserTokens(ctx, "uid-1", time.Now()))
	assert.Equal(t, MaxTokenLifetime, mr.TTL(revokedBeforeKeyPrefix+"uid-1"))

	revoked, err := store.IsRevoked(ctx, claims)
	require.NoError(t, err)
	assert.True(t, revoked)

	// The marker may only disappear once the token it covers has expired.
	assert.False(t, claims.ExpiresAt.After(claims.IssuedAt.Add(mr.TTL(revokedBeforeKeyPrefix+"uid-1"))))
}

func TestRevocationStore_CorruptMarkerIsIgnored(t *testing.T) {
	store, mr := newRedisRevocationStore(t)
	require.NoError(t, mr.Set(revokedBeforeKeyPrefix+"uid-1", "not-a-number"))

	revoked, err := store.IsRevoked(context.Background(), claimsIssuedAt("uid-1", time.Now()))

	assert.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevocationStore_UnreachableRedisFailsOpen(t *testing.T) {
	store, mr := newRedisRevocationStore(t)
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.NoError(t, store.RevokeUserTokens(ctx, "uid-1", time.Now()))
	revoked, err := store.IsRevoked(ctx, claimsIssuedAt("uid-1", time.Now().Add(-time.Minute)))
	assert.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevocationStore_NilCacheNeverRevokes(t *testing.T) {
	store := NewRevocationStore(nil, time.Hour)

	require.NoError(t, store.RevokeUserTokens(context.Background(), "uid-1", time.Now()))
	revoked, err := store.IsRevoked(context.Background(), claimsIssuedAt("uid-1", time.Now()))
	assert.NoError(t, err)
	assert.False(t, revoked)
}
