package cache

// Stats is a point-in-time snapshot of cache effectiveness.
//
// Hits and misses are cumulative over the store's lifetime: they are
// attributed only to Get/GetWithMetadata calls, are not reset by Clear,
// and are unaffected by the background sweep.
type Stats struct {
	Size        int
	MaxSize     int
	HitRate     float64
	TotalHits   uint64
	TotalMisses uint64
}

// Stats returns a consistent snapshot taken under the store lock.
// HitRate is 0 when no reads have happened yet.
func (s *Store[V]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{
		Size:        len(s.items),
		MaxSize:     s.opts.maxSize,
		TotalHits:   s.hits,
		TotalMisses: s.misses,
	}
	if total := s.hits + s.misses; total > 0 {
		st.HitRate = float64(s.hits) / float64(total)
	}

	return st
}
