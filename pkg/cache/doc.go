// Package cache provides a bounded in-memory key-value store with per-entry
// TTL expiration, oldest-first eviction, pattern-based invalidation and
// hit/miss statistics.
//
// It is the layer between request handlers and a remote data source in an
// admin-style application: callers compute a namespaced key (see
// pkg/cachekey), try the cache, fetch on a miss, store the result with a
// TTL, and invalidate by entity type or id when the underlying data is
// mutated.
//
// # Store
//
// [Store] is generic over the value type and constructed with functional
// options:
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
//
//	s.Set(ctx, "retailers:42", r, 0)        // default TTL
//	v, err := s.Get(ctx, "retailers:42")    // ErrNotFound on miss/expiry
//
// Invalid configuration — non-positive max size or default TTL, negative
// cleanup interval — fails at construction, not at call time.
//
// # Expiry and eviction
//
// An entry written at t with TTL d is readable until t+d. Expired entries
// are removed lazily when touched by Get/Has and proactively by a background
// sweep goroutine every cleanup interval, so cold keys do not hold memory
// forever. Close stops the sweep.
//
// When an insert would exceed the maximum size, the entry with the oldest
// write timestamp is evicted — insertion order, not recency of access.
// Reads never reorder entries; overwriting a key refreshes its timestamp.
//
// # Invalidation
//
// Keys follow the "<entityType>:<selector>" convention, which makes group
// removal a pattern match:
//
//	n, err := s.InvalidateEntity(ctx, "retailers")          // ^retailers:
//	n, err = s.InvalidateEntityByID(ctx, "retailers", "42") // ^retailers:42$
//	n, err = s.InvalidatePattern(ctx, "^search:")
//
// # Statistics
//
// [Store.Stats] reports size, capacity and lifetime hit/miss counters.
// Only Get and GetWithMetadata are counted; Has probes are not, and Clear
// does not reset the counters.
//
// # Versions and metadata
//
// [Store.SetVersioned] attaches a caller-supplied advisory version to an
// entry, and [Store.GetWithMetadata] returns it together with the entry's
// age. The store records these but never interprets them; they exist so
// callers can layer their own staleness policy on top of TTL.
//
// # Cache stampede prevention
//
// The standalone [GetOrSet] works against the [Cache] interface and uses
// singleflight so a missing value is computed by only one goroutine:
//
//	v, err := cache.GetOrSet(ctx, s, "retailers:42", func(ctx context.Context) (Retailer, time.Duration, error) {
//	    r, err := repo.FindRetailer(ctx, 42)
//	    return r, 5 * time.Minute, err
//	})
//
// # Time
//
// The store reads time from an injectable clock (github.com/benbjohnson/clock).
// Production uses the wall clock; tests pass clock.NewMock() via [WithClock]
// to drive expiry and the sweep deterministically.
package cache
