package cache

import (
	"context"
	"errors"
	"regexp"
)

// InvalidatePattern removes every entry whose key matches the regular
// expression and returns the number removed. Expired-but-not-yet-swept
// entries are matched and removed too: invalidation is a correctness
// operation and must not depend on sweep timing.
//
// Removal is atomic with respect to other store operations; no reader can
// observe a half-invalidated state.
func (s *Store[V]) InvalidatePattern(_ context.Context, pattern string) (int, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0, errors.Join(ErrInvalidPattern, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrClosed
	}

	removed := 0
	for key, elem := range s.items {
		if re.MatchString(key) {
			s.removeElement(elem)
			removed++
		}
	}

	return removed, nil
}

// InvalidateEntity removes every cached shape of an entity type — by-id,
// "all", search results — by matching the "<entityType>:" key prefix.
// Call it after any write against that entity type: coarse invalidation
// trades hit rate for correctness.
func (s *Store[V]) InvalidateEntity(ctx context.Context, entityType string) (int, error) {
	return s.InvalidatePattern(ctx, "^"+regexp.QuoteMeta(entityType)+":")
}

// InvalidateEntityByID removes only the exact "<entityType>:<id>" entry.
// List and search caches are intentionally left untouched; call
// InvalidateEntity as well when list views must also refresh.
func (s *Store[V]) InvalidateEntityByID(ctx context.Context, entityType, id string) (int, error) {
	return s.InvalidatePattern(ctx, "^"+regexp.QuoteMeta(entityType)+":"+regexp.QuoteMeta(id)+"$")
}
