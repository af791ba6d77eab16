package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/adminkit/pkg/cache"
)

func TestGetOrSet(t *testing.T) {
	t.Parallel()

	t.Run("returns cached value without calling fn", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestStore[string](t)
		ctx := context.Background()

		require.NoError(t, s.Set(ctx, "key", "cached", time.Minute))

		val, err := cache.GetOrSet(ctx, s, "key", func(context.Context) (string, time.Duration, error) {
			t.Fatal("fn must not be called on a hit")
			return "", 0, nil
		})
		require.NoError(t, err)
		require.Equal(t, "cached", val)
	})

	t.Run("computes and caches on miss", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestStore[string](t)
		ctx := context.Background()

		val, err := cache.GetOrSet(ctx, s, "key", func(context.Context) (string, time.Duration, error) {
			return "computed", time.Minute, nil
		})
		require.NoError(t, err)
		require.Equal(t, "computed", val)

		got, err := s.Get(ctx, "key")
		require.NoError(t, err)
		require.Equal(t, "computed", got)
	})

	t.Run("does not cache on error", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestStore[string](t)
		ctx := context.Background()

		wantErr := errors.New("fetch failed")
		_, err := cache.GetOrSet(ctx, s, "key", func(context.Context) (string, time.Duration, error) {
			return "", 0, wantErr
		})
		require.ErrorIs(t, err, wantErr)

		has, err := s.Has(ctx, "key")
		require.NoError(t, err)
		require.False(t, has)
	})

	t.Run("deduplicates concurrent misses", func(t *testing.T) {
		t.Parallel()

		s, _ := newTestStore[int](t)
		ctx := context.Background()

		var calls atomic.Int32
		var wg sync.WaitGroup
		start := make(chan struct{})

		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				val, err := cache.GetOrSet(ctx, s, "stampede", func(ctx context.Context) (int, time.Duration, error) {
					calls.Add(1)
					time.Sleep(10 * time.Millisecond) // widen the race window
					return 42, time.Minute, nil
				})
				require.NoError(t, err)
				require.Equal(t, 42, val)
			}()
		}

		close(start)
		wg.Wait()

		require.Equal(t, int32(1), calls.Load(), "singleflight must collapse concurrent misses")
	})
}
