package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Kind names a class of calls with its own limit window.
type Kind string

// Built-in kinds. Their windows can be overridden with WithWindow.
const (
	// KindLogin covers authentication attempts: 5 per 15 minutes by default.
	KindLogin Kind = "login"

	// KindAPI covers generic API calls: 100 per minute by default.
	KindAPI Kind = "api"
)

// Window is a sliding limit: at most Limit attempts within any span of Period.
type Window struct {
	Limit  int
	Period time.Duration
}

// Result is the outcome of a single rate-limit check.
type Result struct {
	// Allowed reports whether the attempt is within the limit.
	// The attempt is recorded either way: denied attempts count against
	// the window too, so a client hammering a limit never gets back in
	// early.
	Allowed bool

	// Remaining is how many further attempts the window still admits.
	Remaining int

	// ResetTime is when the oldest counted attempt leaves the window,
	// i.e. the earliest instant at which Remaining grows.
	ResetTime time.Time
}

// Store records attempts and reports how many fall within the current window.
// Implementations: Memory for single-process use, Redis for multi-instance
// deployments.
type Store interface {
	// Add records an attempt for key and returns the number of attempts
	// inside the window ending now, together with the timestamp of the
	// oldest attempt still counted.
	Add(ctx context.Context, key string, window time.Duration) (count int, oldest time.Time, err error)

	// Close releases store resources.
	Close() error
}

// Limiter applies per-kind sliding windows to keys (client identities).
type Limiter struct {
	store   Store
	windows map[Kind]Window
}

// Option configures a Limiter.
type Option func(map[Kind]Window)

// WithWindow sets or overrides the window for a kind. Passing a new Kind
// registers it.
func WithWindow(kind Kind, limit int, period time.Duration) Option {
	return func(windows map[Kind]Window) {
		windows[kind] = Window{Limit: limit, Period: period}
	}
}

// New creates a limiter over the given store with the built-in login and
// api windows, adjusted by options. Misconfigured windows are rejected
// here rather than surfacing as runtime behavior.
func New(store Store, opts ...Option) (*Limiter, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	windows := map[Kind]Window{
		KindLogin: {Limit: 5, Period: 15 * time.Minute},
		KindAPI:   {Limit: 100, Period: time.Minute},
	}
	for _, opt := range opts {
		opt(windows)
	}

	for kind, w := range windows {
		if w.Limit <= 0 || w.Period <= 0 {
			return nil, fmt.Errorf("%w: kind %q has limit %d period %s", ErrInvalidWindow, kind, w.Limit, w.Period)
		}
	}

	return &Limiter{store: store, windows: windows}, nil
}

// Check records an attempt for key under the given kind and reports whether
// it is allowed. Attempts for different kinds are tracked independently even
// for the same key.
func (l *Limiter) Check(ctx context.Context, key string, kind Kind) (Result, error) {
	w, ok := l.windows[kind]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	count, oldest, err := l.store.Add(ctx, string(kind)+":"+key, w.Period)
	if err != nil {
		return Result{}, err
	}

	remaining := w.Limit - count
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   count <= w.Limit,
		Remaining: remaining,
		ResetTime: oldest.Add(w.Period),
	}, nil
}

// Window returns the configured window for a kind, for callers that surface
// limits to clients (e.g. X-RateLimit-Limit headers).
func (l *Limiter) Window(kind Kind) (Window, bool) {
	w, ok := l.windows[kind]
	return w, ok
}
