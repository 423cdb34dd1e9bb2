package locker

import (
	"context"
	"login-service/internal/app/services/shared/redis"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLocker(t *testing.T) (*miniredis.Miniredis, *lockService) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	svc := NewLockService(redis.NewRedisRepository(client), zap.NewNop()).(*lockService)
	return mr, svc
}

func TestLockService(t *testing.T) {
	ctx := context.Background()

	t.Run("Second TryLock Fails While Held", func(t *testing.T) {
		_, svc := newTestLocker(t)

		acquired, lockValue, err := svc.TryLock(ctx, "login:submit:c1", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, lockValue)

		acquired, other, err := svc.TryLock(ctx, "login:submit:c1", time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, other)
	})

	t.Run("Unlock Releases Lock", func(t *testing.T) {
		mr, svc := newTestLocker(t)

		_, lockValue, err := svc.TryLock(ctx, "login:submit:c1", time.Minute)
		require.NoError(t, err)

		require.NoError(t, svc.Unlock(ctx, "login:submit:c1", lockValue))
		assert.False(t, mr.Exists("login:submit:c1"))

		acquired, _, err := svc.TryLock(ctx, "login:submit:c1", time.Minute)
		require.NoError(t, err)
		assert.True(t, acquired)
	})

	t.Run("Unlock With Foreign Value Keeps Lock", func(t *testing.T) {
		mr, svc := newTestLocker(t)

		_, _, err := svc.TryLock(ctx, "login:submit:c1", time.Minute)
		require.NoError(t, err)

		err = svc.Unlock(ctx, "login:submit:c1", "someone-else")
		assert.Error(t, err)
		assert.True(t, mr.Exists("login:submit:c1"))
	})

	t.Run("Unlock Missing Lock Is No-op", func(t *testing.T) {
		_, svc := newTestLocker(t)

		assert.NoError(t, svc.Unlock(ctx, "login:submit:none", "value"))
	})

	t.Run("Lock Expires", func(t *testing.T) {
		mr, svc := newTestLocker(t)

		acquired, _, err := svc.TryLock(ctx, "login:submit:c1", time.Second)
		require.NoError(t, err)
		require.True(t, acquired)

		mr.FastForward(2 * time.Second)

		acquired, _, err = svc.TryLock(ctx, "login:submit:c1", time.Second)
		require.NoError(t, err)
		assert.True(t, acquired)
	})
}
