package cache

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
)

// Option configures the store.
type Option func(*options)

type options struct {
	clock           clock.Clock
	defaultTTL      time.Duration
	cleanupInterval time.Duration
	maxSize         int
}

func defaultOptions() *options {
	return &options{
		clock:           clock.New(),
		defaultTTL:      5 * time.Minute,
		cleanupInterval: time.Minute,
		maxSize:         1000,
	}
}

// validate rejects configurations that would either make the store useless
// (everything instantly expired or evicted) or break its size invariant.
// Misconfiguration is a startup error, never a silent runtime fallback.
func (o *options) validate() error {
	if o.maxSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxSize, o.maxSize)
	}
	if o.defaultTTL <= 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidTTL, o.defaultTTL)
	}
	if o.cleanupInterval < 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidInterval, o.cleanupInterval)
	}
	return nil
}

// WithDefaultTTL sets the expiration applied when Set is called with a zero TTL.
// Default: 5 minutes.
func WithDefaultTTL(d time.Duration) Option {
	return func(o *options) {
		o.defaultTTL = d
	}
}

// WithMaxSize sets the maximum number of entries the store may hold.
// When an insert would exceed it, the entry with the oldest storedAt
// timestamp is evicted first.
// Default: 1000.
func WithMaxSize(n int) Option {
	return func(o *options) {
		o.maxSize = n
	}
}

// WithCleanupInterval sets how often the background sweep removes expired
// entries. Zero disables the sweep; lazy expiry on read still applies.
// Default: 1 minute.
func WithCleanupInterval(d time.Duration) Option {
	return func(o *options) {
		o.cleanupInterval = d
	}
}

// WithClock sets the time source. Tests use clock.NewMock() to drive TTL
// expiry and the background sweep without sleeping.
// Default: the wall clock.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}
