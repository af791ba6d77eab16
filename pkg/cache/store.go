package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// entry holds a cached value together with its write timestamp, TTL and
// caller-supplied advisory version.
type entry[V any] struct {
	storedAt time.Time
	value    V
	key      string
	ttl      time.Duration
	version  int64
}

// expired reports whether the entry's TTL has elapsed at the given instant.
// An entry written at t with TTL d is readable up to but not including t+d.
func (e *entry[V]) expired(now time.Time) bool {
	return !now.Before(e.storedAt.Add(e.ttl))
}

// Metadata exposes per-entry details alongside the value so callers can
// apply their own staleness policy on top of TTL.
type Metadata struct {
	// Version is the advisory version supplied at write time, zero if none.
	// The store records and returns it but never interprets it.
	Version int64

	// Age is how long ago the entry was written.
	Age time.Duration
}

// Store is a bounded in-memory cache with per-entry TTL expiration.
//
// Expired entries are removed lazily when touched by Get/Has and proactively
// by a background sweep, so memory is reclaimed even for keys that are never
// read again. When an insert would exceed the configured maximum size, the
// entry with the oldest write timestamp is evicted — insertion order, not
// recency of access.
//
// It uses a hash map for O(1) lookups and a doubly-linked list ordered by
// write time for O(1) oldest-first eviction. Reads do not reorder entries;
// overwriting a key refreshes its timestamp and moves it to the front.
type Store[V any] struct {
	items   map[string]*list.Element
	order   *list.List // Front = newest storedAt, Back = oldest
	opts    *options
	onEvict func(key string, value V)
	done    chan struct{}
	mu      sync.Mutex
	hits    uint64
	misses  uint64
	closed  bool
}

// New creates a store. Invalid configuration (non-positive max size or
// default TTL, negative cleanup interval) is rejected here rather than
// tolerated at call time.
//
// Example:
//
//	s, err := cache.New[Retailer](
//	    cache.WithDefaultTTL(5 * time.Minute),
//	    cache.WithMaxSize(1000),
//	    cache.WithCleanupInterval(time.Minute),
//	)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
func New[V any](opts ...Option) (*Store[V], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	s := &Store[V]{
		items: make(map[string]*list.Element),
		order: list.New(),
		opts:  o,
		done:  make(chan struct{}),
	}

	if o.cleanupInterval > 0 {
		go s.sweep()
	}

	return s, nil
}

// SetEvictCallback sets a callback invoked whenever an entry leaves the
// store: capacity eviction, expiry (lazy or sweep), deletion, invalidation
// and clearing.
func (s *Store[V]) SetEvictCallback(fn func(key string, value V)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEvict = fn
}

// Set inserts or fully replaces the entry for key with Metadata.Version zero.
// TTL semantics: positive = expires after the duration, zero = use the
// store's default TTL, negative = ErrInvalidTTL.
func (s *Store[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	return s.set(key, value, ttl, 0)
}

// SetVersioned is Set with a caller-supplied advisory version attached to
// the entry. The store returns the version from GetWithMetadata but never
// enforces any semantics on it.
func (s *Store[V]) SetVersioned(_ context.Context, key string, value V, ttl time.Duration, version int64) error {
	return s.set(key, value, ttl, version)
}

func (s *Store[V]) set(key string, value V, ttl time.Duration, version int64) error {
	if ttl < 0 {
		return ErrInvalidTTL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	if ttl == 0 {
		ttl = s.opts.defaultTTL
	}
	now := s.opts.clock.Now()

	// Full replacement: the new entry gets a fresh storedAt and therefore
	// becomes the newest in eviction order.
	if elem, ok := s.items[key]; ok {
		e := elem.Value.(*entry[V])
		e.value = value
		e.storedAt = now
		e.ttl = ttl
		e.version = version
		s.order.MoveToFront(elem)
		return nil
	}

	// Capacity is enforced by eviction, not rejection: drop the entry with
	// the oldest storedAt before inserting.
	if len(s.items) >= s.opts.maxSize {
		if oldest := s.order.Back(); oldest != nil {
			s.removeElement(oldest)
		}
	}

	e := &entry[V]{key: key, value: value, storedAt: now, ttl: ttl, version: version}
	s.items[key] = s.order.PushFront(e)

	return nil
}

// Get retrieves a live value by key.
// Returns ErrNotFound if the key is missing or expired; an expired entry is
// removed as a side effect, so stale data is never surfaced even if the
// background sweep has not run yet.
func (s *Store[V]) Get(_ context.Context, key string) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero V
	e, ok := s.lookup(key)
	if !ok {
		s.misses++
		return zero, ErrNotFound
	}

	s.hits++
	return e.value, nil
}

// GetWithMetadata is Get with the entry's advisory version and age attached,
// letting callers implement policies like "accept up to 30s old even though
// the TTL is 5 minutes".
func (s *Store[V]) GetWithMetadata(_ context.Context, key string) (V, Metadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero V
	e, ok := s.lookup(key)
	if !ok {
		s.misses++
		return zero, Metadata{}, ErrNotFound
	}

	s.hits++
	return e.value, Metadata{
		Version: e.version,
		Age:     s.opts.clock.Now().Sub(e.storedAt),
	}, nil
}

// Has reports whether a live entry exists for key, removing it if expired.
// Presence probes are not counted as hits or misses: statistics measure how
// often the cache actually served a value.
func (s *Store[V]) Has(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.lookup(key)
	return ok, nil
}

// Delete removes a key unconditionally and reports whether it was present.
// Deleting an absent key is not an error.
func (s *Store[V]) Delete(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false, ErrClosed
	}

	elem, ok := s.items[key]
	if !ok {
		return false, nil
	}
	s.removeElement(elem)

	return true, nil
}

// Clear removes all entries. Hit/miss statistics are lifetime-scoped and
// survive a Clear.
func (s *Store[V]) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	if s.onEvict != nil {
		for _, elem := range s.items {
			e := elem.Value.(*entry[V])
			s.onEvict(e.key, e.value)
		}
	}

	s.items = make(map[string]*list.Element)
	s.order.Init()

	return nil
}

// Close stops the background sweep and marks the store as closed.
// Close is idempotent.
func (s *Store[V]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	close(s.done)

	return nil
}

// lookup returns the live entry for key, deleting it when expired.
// Caller must hold the mutex.
func (s *Store[V]) lookup(key string) (*entry[V], bool) {
	elem, ok := s.items[key]
	if !ok {
		return nil, false
	}

	e := elem.Value.(*entry[V])
	if e.expired(s.opts.clock.Now()) {
		s.removeElement(elem)
		return nil, false
	}

	return e, true
}

// sweep periodically removes expired entries so that keys which are never
// read again still release their memory.
func (s *Store[V]) sweep() {
	ticker := s.opts.clock.Ticker(s.opts.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.deleteExpired()
		}
	}
}

// deleteExpired walks the list from the oldest end; entries are not sorted
// by deadline, so the whole list is scanned.
func (s *Store[V]) deleteExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.opts.clock.Now()
	for elem := s.order.Back(); elem != nil; {
		prev := elem.Prev()
		if elem.Value.(*entry[V]).expired(now) {
			s.removeElement(elem)
		}
		elem = prev
	}
}

// removeElement removes a specific element and triggers the eviction callback.
// Caller must hold the mutex.
func (s *Store[V]) removeElement(elem *list.Element) {
	s.order.Remove(elem)
	e := elem.Value.(*entry[V])
	delete(s.items, e.key)

	if s.onEvict != nil {
		s.onEvict(e.key, e.value)
	}
}

var _ Cache[any] = (*Store[any])(nil)
