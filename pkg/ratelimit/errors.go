package ratelimit

import "errors"

// Sentinel errors for rate limiting.
var (
	// ErrUnknownKind is returned by Check for a kind with no configured window.
	ErrUnknownKind = errors.New("ratelimit: unknown limit kind")

	// ErrInvalidWindow is returned by New for a window with a non-positive
	// limit or period.
	ErrInvalidWindow = errors.New("ratelimit: window limit and period must be positive")

	// ErrNilStore is returned by New when no store is provided.
	ErrNilStore = errors.New("ratelimit: store is required")

	// ErrClosed is returned when an operation is attempted on a closed store.
	ErrClosed = errors.New("ratelimit: store closed")
)
