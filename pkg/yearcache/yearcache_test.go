package yearcache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/holidays/pkg/yearcache"
)

var japan2015 = yearcache.Key{Provider: "jp", Year: 2015, Locale: "ja_JP"}

func TestKey(t *testing.T) {
	t.Parallel()

	t.Run("string form", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "jp:2015:ja_JP", japan2015.String())
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		k, err := yearcache.ParseKey("ie:2018:en_IE")
		require.NoError(t, err)
		assert.Equal(t, yearcache.Key{Provider: "ie", Year: 2018, Locale: "en_IE"}, k)
	})

	t.Run("rejects malformed strings", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"", "jp", "jp:2015", "jp:notayear:ja_JP", "a:1:b:c"} {
			_, err := yearcache.ParseKey(s)
			assert.ErrorIs(t, err, yearcache.ErrInvalidKey, s)
		}
	})
}

func TestMemory(t *testing.T) {
	t.Parallel()

	t.Run("miss returns ErrNotFound", func(t *testing.T) {
		t.Parallel()
		store := yearcache.NewMemory(yearcache.WithCleanupInterval(0))
		defer store.Close()

		_, err := store.Get(context.Background(), japan2015)
		require.ErrorIs(t, err, yearcache.ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		t.Parallel()
		store := yearcache.NewMemory(yearcache.WithCleanupInterval(0))
		defer store.Close()

		ctx := context.Background()
		require.NoError(t, store.Set(ctx, japan2015, []byte(`{"year":2015}`), time.Minute))

		payload, err := store.Get(ctx, japan2015)
		require.NoError(t, err)
		assert.JSONEq(t, `{"year":2015}`, string(payload))
	})

	t.Run("expired payload is gone", func(t *testing.T) {
		t.Parallel()
		store := yearcache.NewMemory(yearcache.WithCleanupInterval(0))
		defer store.Close()

		ctx := context.Background()
		require.NoError(t, store.Set(ctx, japan2015, []byte("x"), time.Nanosecond))
		time.Sleep(10 * time.Millisecond)

		_, err := store.Get(ctx, japan2015)
		require.ErrorIs(t, err, yearcache.ErrNotFound)
	})

	t.Run("negative ttl never expires", func(t *testing.T) {
		t.Parallel()
		store := yearcache.NewMemory(
			yearcache.WithCleanupInterval(0),
			yearcache.WithDefaultTTL(time.Nanosecond),
		)
		defer store.Close()

		ctx := context.Background()
		require.NoError(t, store.Set(ctx, japan2015, []byte("x"), -1))
		time.Sleep(10 * time.Millisecond)

		_, err := store.Get(ctx, japan2015)
		require.NoError(t, err)
	})

	t.Run("delete and purge", func(t *testing.T) {
		t.Parallel()
		store := yearcache.NewMemory(yearcache.WithCleanupInterval(0))
		defer store.Close()

		ctx := context.Background()
		other := yearcache.Key{Provider: "ie", Year: 2018, Locale: "en_IE"}
		require.NoError(t, store.Set(ctx, japan2015, []byte("a"), time.Minute))
		require.NoError(t, store.Set(ctx, other, []byte("b"), time.Minute))

		require.NoError(t, store.Delete(ctx, japan2015))
		_, err := store.Get(ctx, japan2015)
		require.ErrorIs(t, err, yearcache.ErrNotFound)

		require.NoError(t, store.Purge(ctx))
		_, err = store.Get(ctx, other)
		require.ErrorIs(t, err, yearcache.ErrNotFound)
	})

	t.Run("closed store rejects writes", func(t *testing.T) {
		t.Parallel()
		store := yearcache.NewMemory(yearcache.WithCleanupInterval(0))
		require.NoError(t, store.Close())
		require.NoError(t, store.Close()) // idempotent

		err := store.Set(context.Background(), japan2015, []byte("x"), time.Minute)
		require.ErrorIs(t, err, yearcache.ErrClosed)
	})
}

func TestLoader(t *testing.T) {
	t.Parallel()

	t.Run("fills on miss and hits afterwards", func(t *testing.T) {
		t.Parallel()
		store := yearcache.NewMemory(yearcache.WithCleanupInterval(0))
		defer store.Close()
		loader := yearcache.NewLoader(store)

		var calls atomic.Int32
		fill := func(context.Context) ([]byte, time.Duration, error) {
			calls.Add(1)
			return []byte("payload"), time.Minute, nil
		}

		ctx := context.Background()
		payload, err := loader.Load(ctx, japan2015, fill)
		require.NoError(t, err)
		assert.Equal(t, []byte("payload"), payload)

		_, err = loader.Load(ctx, japan2015, fill)
		require.NoError(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("fill error is not cached", func(t *testing.T) {
		t.Parallel()
		store := yearcache.NewMemory(yearcache.WithCleanupInterval(0))
		defer store.Close()
		loader := yearcache.NewLoader(store)

		boom := errors.New("boom")
		_, err := loader.Load(context.Background(), japan2015,
			func(context.Context) ([]byte, time.Duration, error) {
				return nil, 0, boom
			})
		require.ErrorIs(t, err, boom)

		_, err = store.Get(context.Background(), japan2015)
		require.ErrorIs(t, err, yearcache.ErrNotFound)
	})

	t.Run("concurrent misses fill once", func(t *testing.T) {
		t.Parallel()
		store := yearcache.NewMemory(yearcache.WithCleanupInterval(0))
		defer store.Close()
		loader := yearcache.NewLoader(store)

		var calls atomic.Int32
		fill := func(context.Context) ([]byte, time.Duration, error) {
			calls.Add(1)
			time.Sleep(20 * time.Millisecond)
			return []byte("payload"), time.Minute, nil
		}

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				payload, err := loader.Load(context.Background(), japan2015, fill)
				assert.NoError(t, err)
				assert.Equal(t, []byte("payload"), payload)
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
	})
}
