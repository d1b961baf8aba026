package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), mr
}

func TestRedisStore_SetGetDel(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tok", 42, time.Hour))

	userID, ok, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint(42), userID)

	require.NoError(t, store.Del(ctx, "tok"))

	_, ok, err = store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_GetMissingToken(t *testing.T) {
	store, _ := newRedisStore(t)

	_, ok, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_TTLExpiry(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "tok", 5, time.Minute))

	mr.FastForward(2 * time.Minute)

	_, ok, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, ok, "session must expire with its TTL")
}

func TestManager_WithRedisStore(t *testing.T) {
	store, _ := newRedisStore(t)
	m := NewManager(store, time.Hour)
	ctx := context.Background()

	old, err := m.Establish(ctx, 11)
	require.NoError(t, err)

	fresh, err := m.Rotate(ctx, old, 11)
	require.NoError(t, err)

	_, ok, err := m.Resolve(ctx, old)
	require.NoError(t, err)
	assert.False(t, ok)

	userID, ok, err := m.Resolve(ctx, fresh)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint(11), userID)
}
