package yearcache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a store backed by Redis. Payloads are stored as raw bytes under
// "{prefix}:{provider}:{year}:{locale}".
type Redis struct {
	client redis.UniversalClient
	opts   *redisOptions
}

// NewRedis creates a Redis-backed store. The client lifecycle is managed by
// the caller.
//
// Example:
//
//	opt, _ := redis.ParseURL(os.Getenv("REDIS_URL"))
//	store := yearcache.NewRedis(redis.NewClient(opt),
//	    yearcache.WithPrefix("holidays"),
//	    yearcache.WithRedisDefaultTTL(12 * time.Hour),
//	)
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	o := defaultRedisOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Redis{client: client, opts: o}
}

// Get implements Store.
func (r *Redis) Get(ctx context.Context, key Key) ([]byte, error) {
	payload, err := r.client.Get(ctx, r.redisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return payload, nil
}

// Set implements Store.
func (r *Redis) Set(ctx context.Context, key Key, payload []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = r.opts.defaultTTL
	}
	// Redis treats 0 as no expiration, which matches our negative-TTL
	// semantic.
	return r.client.Set(ctx, r.redisKey(key), payload, max(ttl, 0)).Err()
}

// Delete implements Store.
func (r *Redis) Delete(ctx context.Context, key Key) error {
	return r.client.Del(ctx, r.redisKey(key)).Err()
}

// Purge removes every payload under the configured prefix using SCAN, so it
// never touches foreign keys on a shared Redis.
func (r *Redis) Purge(ctx context.Context) error {
	pattern := r.opts.prefix + ":*"
	var cursor uint64

	for {
		keys, next, err := r.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// Close is a no-op; the Redis client is owned by the caller.
func (r *Redis) Close() error {
	return nil
}

func (r *Redis) redisKey(key Key) string {
	return r.opts.prefix + ":" + key.String()
}

var _ Store = (*Redis)(nil)
