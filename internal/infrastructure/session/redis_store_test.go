package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestRedisStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t, time.Hour)

	_, found, err := store.Get(ctx, "s1:estimateNumber")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "s1:estimateNumber", "EST-20250615-0427"))
	assert.True(t, mr.Exists(keyPrefix+"s1:estimateNumber"))
	assert.Equal(t, time.Hour, mr.TTL(keyPrefix+"s1:estimateNumber"))

	v, found, err := store.Get(ctx, "s1:estimateNumber")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "EST-20250615-0427", v)

	require.NoError(t, store.Delete(ctx, "s1:estimateNumber"))
	_, found, _ = store.Get(ctx, "s1:estimateNumber")
	assert.False(t, found)
}

func TestRedisStore_TakeIsAtMostOnce(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t, time.Hour)
	require.NoError(t, store.Set(ctx, "k", "v"))

	v, found, err := store.Take(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", v)

	_, found, err = store.Take(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t, time.Minute)
	require.NoError(t, store.Set(ctx, "k", "v"))

	mr.FastForward(2 * time.Minute)

	_, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStore_ServerDown(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	mr.Close()

	_, _, err := store.Get(context.Background(), "k")
	assert.Error(t, err)
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewRedisClient(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	_ = client.Close()

	_, err = NewRedisClient(context.Background(), "127.0.0.1:1", "", 0)
	assert.Error(t, err)
}
