package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisRevocationStore, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	store, err := NewRedisRevocationStore(context.Background(), "redis://"+s.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, s
}

// ── redis ─────────────────────────────────────────────────────────────────────

func TestRedisRevocationStore_RevokeAndCheck(t *testing.T) {
	store, s := setupTestRedis(t)
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.True(t, s.Exists("revoked:jti-1"))
	assert.InDelta(t, time.Hour.Seconds(), s.TTL("revoked:jti-1").Seconds(), 5)
}

func TestRedisRevocationStore_ExpiresWithToken(t *testing.T) {
	store, s := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "jti-2", time.Now().Add(time.Minute)))
	s.FastForward(2 * time.Minute)

	revoked, err := store.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisRevocationStore_AlreadyExpiredTokenIsSkipped(t *testing.T) {
	store, s := setupTestRedis(t)

	require.NoError(t, store.Revoke(context.Background(), "old", time.Now().Add(-time.Minute)))
	assert.False(t, s.Exists("revoked:old"))
}

func TestRedisRevocationStore_Unreachable(t *testing.T) {
	s := miniredis.RunT(t)
	addr := s.Addr()
	s.Close()

	_, err := NewRedisRevocationStore(context.Background(), "redis://"+addr)
	assert.Error(t, err)

	_, err = NewRedisRevocationStore(context.Background(), "://bad")
	assert.Error(t, err)
}

func TestRedisRevocationStore_ServerError(t *testing.T) {
	store, s := setupTestRedis(t)
	s.SetError("LOADING")

	_, err := store.IsRevoked(context.Background(), "jti")
	assert.Error(t, err)

	err = store.Revoke(context.Background(), "jti", time.Now().Add(time.Hour))
	assert.Error(t, err)
}

// ── memory ────────────────────────────────────────────────────────────────────

func TestMemoryRevocationStore(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	store := NewMemoryRevocationStore()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "a", now.Add(time.Hour)))
	require.NoError(t, store.Revoke(ctx, "expired", now.Add(-time.Second)))

	revoked, _ := store.IsRevoked(ctx, "a")
	assert.True(t, revoked)
	revoked, _ = store.IsRevoked(ctx, "expired")
	assert.False(t, revoked)

	now = now.Add(2 * time.Hour)
	revoked, _ = store.IsRevoked(ctx, "a")
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "b", now.Add(time.Hour)))
	assert.Len(t, store.revoked, 1, "expired entries are swept on write")
}
