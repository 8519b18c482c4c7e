package yearcache

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

// Key identifies one cached year payload: the rendered holiday set of one
// provider for one year in one locale.
type Key struct {
	Provider string
	Year     int
	Locale   string
}

// String renders the key as "provider:year:locale", the form used by every
// storage backend.
func (k Key) String() string {
	return k.Provider + ":" + strconv.Itoa(k.Year) + ":" + k.Locale
}

// ParseKey parses a "provider:year:locale" string back into a Key.
func ParseKey(s string) (Key, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	return Key{Provider: parts[0], Year: year, Locale: parts[2]}, nil
}

// Store holds rendered year payloads. Values are opaque bytes; callers
// render once and cache the serialized form.
//
// TTL semantics for Set:
//   - Positive duration: payload expires after this duration
//   - Zero: use the store's configured default TTL
//   - Negative: payload never expires
type Store interface {
	// Get retrieves a payload. Returns ErrNotFound when the key is absent
	// or expired.
	Get(ctx context.Context, key Key) ([]byte, error)

	// Set stores a payload with the given TTL.
	Set(ctx context.Context, key Key, payload []byte, ttl time.Duration) error

	// Delete removes one key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key Key) error

	// Purge removes every payload held by the store.
	Purge(ctx context.Context) error

	// Close releases resources (stops background goroutines, etc.).
	Close() error
}

// FillFunc computes a payload on a cache miss. It returns the payload and
// the TTL to cache it under.
type FillFunc func(ctx context.Context) ([]byte, time.Duration, error)

// Loader wraps a Store with stampede protection: concurrent Load calls for
// the same key compute the payload once.
type Loader struct {
	store Store
	sf    singleflight.Group
}

// NewLoader wraps the given store.
func NewLoader(store Store) *Loader {
	return &Loader{store: store}
}

// Load returns the cached payload for key, or calls fill to compute it on a
// miss. If fill fails, nothing is cached and the error is returned. Caching
// the computed payload is best-effort.
func (l *Loader) Load(ctx context.Context, key Key, fill FillFunc) ([]byte, error) {
	if payload, err := l.store.Get(ctx, key); err == nil {
		return payload, nil
	}

	v, err, _ := l.sf.Do(key.String(), func() (any, error) {
		payload, ttl, err := fill(ctx)
		if err != nil {
			return nil, err
		}
		_ = l.store.Set(ctx, key, payload, ttl)
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Store returns the underlying store, e.g. for warmers that write directly.
func (l *Loader) Store() Store {
	return l.store
}
