package yearcache

import "time"

// RedisOption configures the Redis store.
type RedisOption func(*redisOptions)

type redisOptions struct {
	prefix     string
	defaultTTL time.Duration
}

func defaultRedisOptions() *redisOptions {
	return &redisOptions{
		prefix:     "holidays",
		defaultTTL: 12 * time.Hour,
	}
}

// WithRedisDefaultTTL sets the expiration applied when Set is called with a
// zero TTL.
// Default: 12 hours.
func WithRedisDefaultTTL(d time.Duration) RedisOption {
	return func(o *redisOptions) {
		o.defaultTTL = d
	}
}

// WithPrefix sets the key namespace. Keys are stored as
// "{prefix}:{provider}:{year}:{locale}".
// Default: "holidays".
func WithPrefix(prefix string) RedisOption {
	return func(o *redisOptions) {
		o.prefix = prefix
	}
}
