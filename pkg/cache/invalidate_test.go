package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/adminkit/pkg/cache"
)

func TestStore_InvalidatePattern(t *testing.T) {
	t.Parallel()

	t.Run("removes matching keys and returns count", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestStore[string](t)
		ctx := context.Background()

		for _, key := range []string{"retailers:1", "retailers:2", "retailers:all", "orders:1"} {
			require.NoError(t, s.Set(ctx, key, "v", time.Minute))
		}

		n, err := s.InvalidatePattern(ctx, "^retailers:")
		require.NoError(t, err)
		require.Equal(t, 3, n)
		require.Equal(t, 1, s.Stats().Size)
	})

	t.Run("returns zero on no match", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestStore[string](t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "orders:1", "v", time.Minute))

		n, err := s.InvalidatePattern(ctx, "^retailers:")
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("rejects malformed pattern", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestStore[string](t)

		_, err := s.InvalidatePattern(context.Background(), "^retailers:(")
		require.ErrorIs(t, err, cache.ErrInvalidPattern)
	})

	t.Run("matches expired but unswept entries", func(t *testing.T) {
		t.Parallel()

		s, mock := newTestStore[string](t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "retailers:1", "v", time.Second))
		mock.Add(time.Minute) // expired, sweep disabled, never read

		n, err := s.InvalidatePattern(ctx, "^retailers:")
		require.NoError(t, err)
		require.Equal(t, 1, n, "invalidation must not depend on sweep timing")
		require.Equal(t, 0, s.Stats().Size)
	})

	t.Run("rejects closed store", func(t *testing.T) {
		t.Parallel()

		s, err := cache.New[string]()
		require.NoError(t, err)
		require.NoError(t, s.Close())

		_, err = s.InvalidatePattern(context.Background(), "^retailers:")
		require.ErrorIs(t, err, cache.ErrClosed)
	})
}

func TestStore_InvalidateEntity(t *testing.T) {
	t.Parallel()

	t.Run("removes every cached shape of the entity", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestStore[string](t)
		ctx := context.Background()

		for _, key := range []string{"retailers:1", "retailers:2", "orders:1"} {
			require.NoError(t, s.Set(ctx, key, "v", time.Minute))
		}

		n, err := s.InvalidateEntity(ctx, "retailers")
		require.NoError(t, err)
		require.Equal(t, 2, n)

		has, err := s.Has(ctx, "retailers:1")
		require.NoError(t, err)
		require.False(t, has)

		has, err = s.Has(ctx, "orders:1")
		require.NoError(t, err)
		require.True(t, has)
	})

	t.Run("entity name is matched literally", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestStore[string](t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "ordersX:1", "v", time.Minute))
		require.NoError(t, s.Set(ctx, "orders.:1", "v", time.Minute))

		// "orders." must not act as a regexp wildcard.
		n, err := s.InvalidateEntity(ctx, "orders.")
		require.NoError(t, err)
		require.Equal(t, 1, n)

		has, err := s.Has(ctx, "ordersX:1")
		require.NoError(t, err)
		require.True(t, has)
	})
}

func TestStore_InvalidateEntityByID(t *testing.T) {
	t.Parallel()

	t.Run("removes only the exact entity entry", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestStore[string](t)
		ctx := context.Background()

		for _, key := range []string{"retailers:1", "retailers:12", "retailers:all", "retailers:1:details"} {
			require.NoError(t, s.Set(ctx, key, "v", time.Minute))
		}

		n, err := s.InvalidateEntityByID(ctx, "retailers", "1")
		require.NoError(t, err)
		require.Equal(t, 1, n)

		// List, search and composite caches stay untouched by design.
		for _, key := range []string{"retailers:12", "retailers:all", "retailers:1:details"} {
			has, err := s.Has(ctx, key)
			require.NoError(t, err)
			require.True(t, has, "key %q must survive", key)
		}
	})
}
