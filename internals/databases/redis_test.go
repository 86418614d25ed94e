package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rc, err := NewRedisCache("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { rc.Close() })
	return rc, mr
}

func TestRedisCache_GetMissIsNotError(t *testing.T) {
	rc, _ := newTestCache(t)

	val, ok, err := rc.Get(context.Background(), "tidak-ada")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, val)
}

func TestRedisCache_SetGetWithTTL(t *testing.T) {
	rc, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, rc.SetWithTTL(ctx, "k", `{"a":1}`, time.Minute))

	val, ok, err := rc.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, val)

	// lewat TTL → kembali miss
	mr.FastForward(2 * time.Minute)
	_, ok, err = rc.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_DeleteByPrefix(t *testing.T) {
	rc, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("analytics:u1:dashboard:7d:all:w7", "{}"))
	require.NoError(t, mr.Set("analytics:u1:dashboard:30d:all:w7", "{}"))
	require.NoError(t, mr.Set("analytics:u2:dashboard:7d:all:w7", "{}"))
	require.NoError(t, mr.Set("leaderboard:all:all:10:0", "{}"))

	n, err := rc.DeleteByPrefix(ctx, "analytics:u1:")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// key di luar prefix tetap hidup
	assert.True(t, mr.Exists("analytics:u2:dashboard:7d:all:w7"))
	assert.True(t, mr.Exists("leaderboard:all:all:10:0"))
}

// Cache nil = cache dimatikan: semua operasi jadi no-op, bukan panic.
func TestRedisCache_NilReceiverSafe(t *testing.T) {
	var rc *RedisCache
	ctx := context.Background()

	val, ok, err := rc.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, val)

	require.NoError(t, rc.SetWithTTL(ctx, "k", "v", time.Minute))

	n, err := rc.DeleteByPrefix(ctx, "k")
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, rc.Ping(ctx))
	require.NoError(t, rc.Close())
}

func TestNewRedisCache_InvalidURL(t *testing.T) {
	_, err := NewRedisCache("bukan-url")
	require.Error(t, err)
}
