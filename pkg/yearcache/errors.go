package yearcache

import "errors"

// Sentinel errors for cache operations.
var (
	// ErrNotFound is returned when a key is absent from the store or expired.
	ErrNotFound = errors.New("yearcache: payload not found")

	// ErrClosed is returned when an operation is attempted on a closed store.
	ErrClosed = errors.New("yearcache: closed")

	// ErrInvalidKey is returned when a key string cannot be parsed.
	ErrInvalidKey = errors.New("yearcache: invalid key")
)
