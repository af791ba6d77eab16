package cache

import "errors"

// Sentinel errors for cache operations.
var (
	// ErrNotFound is returned when a key does not exist in the cache or has expired.
	ErrNotFound = errors.New("cache: entry not found")

	// ErrClosed is returned when an operation is attempted on a closed cache.
	ErrClosed = errors.New("cache: closed")

	// ErrInvalidPattern is returned when an invalidation pattern fails to compile.
	ErrInvalidPattern = errors.New("cache: invalid invalidation pattern")

	// ErrInvalidMaxSize is returned by New when the configured maximum size
	// is zero or negative.
	ErrInvalidMaxSize = errors.New("cache: max size must be positive")

	// ErrInvalidTTL is returned by New when the configured default TTL is
	// zero or negative, and by Set when a negative per-entry TTL is given.
	ErrInvalidTTL = errors.New("cache: ttl must be positive")

	// ErrInvalidInterval is returned by New when the cleanup interval is negative.
	ErrInvalidInterval = errors.New("cache: cleanup interval must not be negative")
)
