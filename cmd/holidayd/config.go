package main

import (
	"os"
	"time"
)

type config struct {
	Addr         string
	RedisURL     string
	CacheTTL     time.Duration
	WarmSchedule string
	WarmLocales  []string
}

// loadConfig reads configuration from the environment. Every variable has a
// working default so the binary runs with no setup.
func loadConfig() config {
	return config{
		Addr:         envOr("ADDR", ":8080"),
		RedisURL:     os.Getenv("REDIS_URL"),
		CacheTTL:     envDurationOr("CACHE_TTL", 12*time.Hour),
		WarmSchedule: envOr("WARM_SCHEDULE", "0 3 * * *"),
		WarmLocales:  []string{"en_US"},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
