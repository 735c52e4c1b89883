//go:build integration

package session

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"go.uber.org/zap"

	"whalestreet_ai_server/internal/gamecode"
)

func newRedisStore(t *testing.T, lockTTL time.Duration) *RedisStore {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())

	return NewRedisStore(client, time.Hour, lockTTL, zap.NewNop())
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	store := newRedisStore(t, 2*time.Second)

	s, err := store.Create(ctx)
	require.NoError(t, err)

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, WelcomeMessage, got.Messages[0].Text)

	got.Code = gamecode.FragmentSet{Markup: "<canvas></canvas>", Script: "draw()"}
	got.AddMessage(SenderUser, "make it red", time.Now())
	require.NoError(t, store.Save(ctx, got))

	reloaded, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "draw()", reloaded.Code.Script)
	assert.Len(t, reloaded.Messages, 2)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Save(ctx, &State{ID: "missing"}), ErrNotFound)
}

func TestRedisStore_Lock(t *testing.T) {
	ctx := context.Background()

	t.Run("acquire is exclusive until release", func(t *testing.T) {
		store := newRedisStore(t, time.Minute)
		s, err := store.Create(ctx)
		require.NoError(t, err)

		token, err := store.Acquire(ctx, s.ID)
		require.NoError(t, err)
		_, err = store.Acquire(ctx, s.ID)
		assert.ErrorIs(t, err, ErrBusy)

		require.NoError(t, store.Release(ctx, s.ID, token))
		_, err = store.Acquire(ctx, s.ID)
		require.NoError(t, err)

		_, err = store.Acquire(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("expired lock re-acquired by another request is not released by the first", func(t *testing.T) {
		store := newRedisStore(t, time.Second)
		s, err := store.Create(ctx)
		require.NoError(t, err)

		first, err := store.Acquire(ctx, s.ID)
		require.NoError(t, err)

		// The first request outlives its lock and a second one takes over.
		var second string
		require.Eventually(t, func() bool {
			second, err = store.Acquire(ctx, s.ID)
			return err == nil
		}, 5*time.Second, 100*time.Millisecond)

		require.NoError(t, store.Release(ctx, s.ID, first))
		_, err = store.Acquire(ctx, s.ID)
		assert.ErrorIs(t, err, ErrBusy)

		require.NoError(t, store.Release(ctx, s.ID, second))
		_, err = store.Acquire(ctx, s.ID)
		assert.NoError(t, err)
	})

	t.Run("save does not recreate an expired session", func(t *testing.T) {
		store := newRedisStore(t, time.Minute)
		s, err := store.Create(ctx)
		require.NoError(t, err)

		require.NoError(t, store.client.Del(ctx, stateKey(s.ID)).Err())

		assert.ErrorIs(t, store.Save(ctx, s), ErrNotFound)
		_, err = store.Get(ctx, s.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
