package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (*TokenStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewTokenStorage(client), mr
}

func TestTokenStorage_Revoke(t *testing.T) {
	storage, mr := newTestStorage(t)
	ctx := context.Background()

	revoked, err := storage.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, storage.Revoke(ctx, "jti-1", time.Minute))

	revoked, err = storage.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = storage.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)

	mr.FastForward(2 * time.Minute)

	revoked, err = storage.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenStorage_RevokeExpired(t *testing.T) {
	storage, mr := newTestStorage(t)

	require.NoError(t, storage.Revoke(context.Background(), "jti-1", 0))
	assert.False(t, mr.Exists("auth:revoked:jti-1"))
}

func TestTokenStorage_RedisDown(t *testing.T) {
	storage, mr := newTestStorage(t)
	mr.Close()

	_, err := storage.IsRevoked(context.Background(), "jti-1")
	assert.Error(t, err)
}
