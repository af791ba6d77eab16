package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// requestIDKey is the context key for storing the request ID.
type requestIDKey struct{}

// requestIDHeader is checked for an existing ID and set on the response.
const requestIDHeader = "X-Request-ID"

// RequestID returns middleware that assigns a unique ID to each request.
// An ID supplied by a trusted upstream proxy in X-Request-ID is reused;
// otherwise a UUID is generated. The ID is stored in the context and echoed
// as a response header.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, id)
			ctx := context.WithValue(r.Context(), requestIDKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDFromContext returns the request ID, or "" when the middleware
// did not run.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
