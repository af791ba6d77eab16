package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// bucket holds the attempt timestamps for one key, oldest first, together
// with the window period they were recorded under so the background sweep
// knows when the whole bucket is dead.
type bucket struct {
	times  []time.Time
	period time.Duration
}

// Memory is an in-process sliding-window store. Attempts outside the window
// are pruned on every Add (expiry-on-read), and a background sweep drops
// buckets for keys that stopped making requests, so idle clients do not
// hold memory.
type Memory struct {
	buckets map[string]*bucket
	clock   clock.Clock
	done    chan struct{}
	mu      sync.Mutex
	closed  bool
}

// MemoryOption configures the in-memory store.
type MemoryOption func(*Memory)

// WithClock sets the time source; tests use clock.NewMock().
func WithClock(c clock.Clock) MemoryOption {
	return func(m *Memory) {
		if c != nil {
			m.clock = c
		}
	}
}

// defaultSweepInterval balances memory reclamation for idle keys against
// scan cost; buckets also shrink on every Add, so the sweep only matters
// for clients that went away.
const defaultSweepInterval = time.Minute

// NewMemory creates an in-memory store and starts its background sweep.
// Call Close to stop the sweep.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		buckets: make(map[string]*bucket),
		clock:   clock.New(),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}

	go m.sweep()

	return m
}

// Add records an attempt and returns the attempt count within the window
// and the oldest counted timestamp.
func (m *Memory) Add(_ context.Context, key string, window time.Duration) (int, time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return 0, time.Time{}, ErrClosed
	}

	now := m.clock.Now()

	b, ok := m.buckets[key]
	if !ok {
		b = &bucket{}
		m.buckets[key] = b
	}
	b.period = window
	b.prune(now)
	b.times = append(b.times, now)

	return len(b.times), b.times[0], nil
}

// Len returns the number of tracked keys; used by tests to observe the sweep.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.buckets)
}

// Close stops the background sweep. Idempotent.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	close(m.done)

	return nil
}

func (m *Memory) sweep() {
	ticker := m.clock.Ticker(defaultSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.mu.Lock()
			now := m.clock.Now()
			for key, b := range m.buckets {
				b.prune(now)
				if len(b.times) == 0 {
					delete(m.buckets, key)
				}
			}
			m.mu.Unlock()
		}
	}
}

// prune drops timestamps that have left the window. An attempt at exactly
// now-period is out: windows are half-open (now-period, now].
func (b *bucket) prune(now time.Time) {
	cutoff := now.Add(-b.period)
	i := 0
	for i < len(b.times) && !b.times[i].After(cutoff) {
		i++
	}
	if i > 0 {
		b.times = append(b.times[:0], b.times[i:]...)
	}
}

var _ Store = (*Memory)(nil)
