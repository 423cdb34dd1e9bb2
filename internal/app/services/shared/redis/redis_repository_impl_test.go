package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisRepository_SetGet(t *testing.T) {
	mr, client := newTestRedis(t)
	repo := NewRedisRepository(client)
	ctx := context.Background()

	t.Run("Stores JSON", func(t *testing.T) {
		err := repo.Set(ctx, "k", map[string]string{"email": "a@b.com"}, time.Minute)
		require.NoError(t, err)

		raw, err := repo.Get(ctx, "k")
		require.NoError(t, err)
		assert.JSONEq(t, `{"email":"a@b.com"}`, raw)
		assert.Equal(t, time.Minute, mr.TTL("k"))
	})

	t.Run("Missing Key Returns Empty", func(t *testing.T) {
		raw, err := repo.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Empty(t, raw)
	})

	t.Run("Exists And Delete", func(t *testing.T) {
		exists, err := repo.Exists(ctx, "k")
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, repo.Delete(ctx, "k"))

		exists, err = repo.Exists(ctx, "k")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestRedisRepository_TrySetNX(t *testing.T) {
	_, client := newTestRedis(t)
	repo := NewRedisRepository(client)
	ctx := context.Background()

	acquired, err := repo.TrySetNX(ctx, "lock", "first", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = repo.TrySetNX(ctx, "lock", "second", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)

	raw, err := repo.Get(ctx, "lock")
	require.NoError(t, err)
	assert.Equal(t, `"first"`, raw)
}

func TestRedisRepository_ConnectionFailure(t *testing.T) {
	mr, client := newTestRedis(t)
	repo := NewRedisRepository(client)
	mr.Close()

	_, err := repo.Get(context.Background(), "k")
	assert.Error(t, err)

	err = repo.Set(context.Background(), "k", "v", time.Minute)
	assert.Error(t, err)
}
