//go:build integration

package yearcache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/holidays/pkg/yearcache"
)

const testRedisURL = "redis://localhost:6379/0"

func newTestRedisClient(t *testing.T) redis.UniversalClient {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = testRedisURL
	}

	opt, err := redis.ParseURL(url)
	require.NoError(t, err)

	client := redis.NewClient(opt)
	require.NoError(t, client.Ping(context.Background()).Err(), "failed to connect to Redis")

	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})

	return client
}

func TestRedisStore(t *testing.T) {
	t.Parallel()

	key := yearcache.Key{Provider: "jp", Year: 2015, Locale: "ja_JP"}

	t.Run("miss returns ErrNotFound", func(t *testing.T) {
		t.Parallel()
		store := yearcache.NewRedis(newTestRedisClient(t), yearcache.WithPrefix("t-miss"))

		_, err := store.Get(context.Background(), key)
		require.ErrorIs(t, err, yearcache.ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		t.Parallel()
		store := yearcache.NewRedis(newTestRedisClient(t), yearcache.WithPrefix("t-hit"))

		ctx := context.Background()
		require.NoError(t, store.Set(ctx, key, []byte(`{"year":2015}`), time.Minute))

		payload, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.JSONEq(t, `{"year":2015}`, string(payload))
	})

	t.Run("expired payload is gone", func(t *testing.T) {
		t.Parallel()
		store := yearcache.NewRedis(newTestRedisClient(t), yearcache.WithPrefix("t-ttl"))

		ctx := context.Background()
		require.NoError(t, store.Set(ctx, key, []byte("x"), 50*time.Millisecond))
		time.Sleep(100 * time.Millisecond)

		_, err := store.Get(ctx, key)
		require.ErrorIs(t, err, yearcache.ErrNotFound)
	})

	t.Run("purge only removes own prefix", func(t *testing.T) {
		t.Parallel()
		client := newTestRedisClient(t)
		mine := yearcache.NewRedis(client, yearcache.WithPrefix("t-purge-a"))
		other := yearcache.NewRedis(client, yearcache.WithPrefix("t-purge-b"))

		ctx := context.Background()
		require.NoError(t, mine.Set(ctx, key, []byte("a"), time.Minute))
		require.NoError(t, other.Set(ctx, key, []byte("b"), time.Minute))

		require.NoError(t, mine.Purge(ctx))

		_, err := mine.Get(ctx, key)
		require.ErrorIs(t, err, yearcache.ErrNotFound)

		payload, err := other.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("b"), payload)
	})
}
