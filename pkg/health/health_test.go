package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/adminkit/pkg/health"
)

func TestHandler(t *testing.T) {
	t.Parallel()

	t.Run("healthy when all checks pass", func(t *testing.T) {
		t.Parallel()

		h := health.Handler(health.Checks{
			"ok": func(context.Context) error { return nil },
		})

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest("GET", "/health", nil))

		require.Equal(t, 200, rec.Code)

		var resp health.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, health.StatusHealthy, resp.Status)
		require.Equal(t, health.StatusHealthy, resp.Checks["ok"].Status)
	})

	t.Run("unhealthy when any check fails", func(t *testing.T) {
		t.Parallel()

		h := health.Handler(health.Checks{
			"ok":     func(context.Context) error { return nil },
			"broken": func(context.Context) error { return errors.New("connection refused") },
		})

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest("GET", "/health", nil))

		require.Equal(t, 503, rec.Code)

		var resp health.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, health.StatusUnhealthy, resp.Status)
		require.Equal(t, "connection refused", resp.Checks["broken"].Error)
		require.Equal(t, health.StatusHealthy, resp.Checks["ok"].Status)
	})

	t.Run("no checks means healthy", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		health.Handler(nil)(rec, httptest.NewRequest("GET", "/health", nil))
		require.Equal(t, 200, rec.Code)
	})

	t.Run("slow check hits the timeout", func(t *testing.T) {
		t.Parallel()

		h := health.Handler(health.Checks{
			"slow": func(ctx context.Context) error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(time.Second):
					return nil
				}
			},
		}, health.WithTimeout(20*time.Millisecond))

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest("GET", "/health", nil))
		require.Equal(t, 503, rec.Code)
	})
}
