package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*miniredis.Miniredis, *redisRepository) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return server, NewRedisRepository(client).(*redisRepository)
}

func TestRedisRepository_SetGetDelete(t *testing.T) {
	server, repository := newTestRepository(t)
	ctx := context.Background()

	err := repository.Set(ctx, "token", "abc", 0)
	require.NoError(t, err)

	raw, err := server.Get("token")
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, raw, "values are stored JSON encoded")

	value, err := repository.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, value)

	err = repository.Delete(ctx, "token")
	require.NoError(t, err)
	assert.False(t, server.Exists("token"))
}

func TestRedisRepository_GetMissingKey(t *testing.T) {
	_, repository := newTestRepository(t)

	value, err := repository.Get(context.Background(), "missing")

	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestRedisRepository_Expiry(t *testing.T) {
	server, repository := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repository.Set(ctx, "short", 1, time.Minute))
	server.FastForward(2 * time.Minute)

	value, err := repository.Get(ctx, "short")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestRedisRepository_ServerDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { client.Close() })
	repository := NewRedisRepository(client)

	_, err := repository.Get(context.Background(), "token")
	assert.Error(t, err)
}
