package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/adminkit/middlewares"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates an ID and exposes it", func(t *testing.T) {
		t.Parallel()

		var seen string
		h := middlewares.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middlewares.RequestIDFromContext(r.Context())
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		require.NotEmpty(t, seen)
		require.Equal(t, seen, rec.Header().Get("X-Request-ID"))

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
	})

	t.Run("reuses upstream ID", func(t *testing.T) {
		t.Parallel()

		h := middlewares.RequestID()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Request-ID", "upstream-id")

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, "upstream-id", rec.Header().Get("X-Request-ID"))
	})

	t.Run("missing middleware yields empty ID", func(t *testing.T) {
		t.Parallel()

		require.Empty(t, middlewares.RequestIDFromContext(httptest.NewRequest("GET", "/", nil).Context()))
	})
}
