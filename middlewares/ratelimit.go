package middlewares

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/adminkit/pkg/logger"
	"github.com/dmitrymomot/adminkit/pkg/ratelimit"
)

// KeyFunc extracts the client identity a limit window is keyed by.
type KeyFunc func(r *http.Request) string

// RateLimitConfig configures the rate-limit middleware.
type RateLimitConfig struct {
	KeyFunc KeyFunc
	Logger  *slog.Logger
}

// RateLimitOption configures RateLimitConfig.
type RateLimitOption func(*RateLimitConfig)

// WithKeyFunc sets how the client identity is derived.
// Default: client IP (first X-Forwarded-For hop, falling back to RemoteAddr).
func WithKeyFunc(fn KeyFunc) RateLimitOption {
	return func(cfg *RateLimitConfig) {
		if fn != nil {
			cfg.KeyFunc = fn
		}
	}
}

// WithRateLimitLogger sets the logger for store failures.
func WithRateLimitLogger(log *slog.Logger) RateLimitOption {
	return func(cfg *RateLimitConfig) {
		if log != nil {
			cfg.Logger = log
		}
	}
}

// RateLimit returns middleware enforcing the limiter's window for the given
// kind. Allowed responses carry X-RateLimit-Limit/-Remaining/-Reset headers;
// rejected requests get 429 with Retry-After.
//
// A store failure fails open: limiting protects capacity, and refusing all
// traffic because the limiter's backend is down would invert that.
func RateLimit(limiter *ratelimit.Limiter, kind ratelimit.Kind, opts ...RateLimitOption) func(http.Handler) http.Handler {
	cfg := &RateLimitConfig{
		KeyFunc: clientIP,
		Logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := limiter.Check(r.Context(), cfg.KeyFunc(r), kind)
			if err != nil {
				cfg.Logger.ErrorContext(r.Context(), "rate limit check failed",
					slog.String("kind", string(kind)),
					slog.String("error", err.Error()),
				)
				next.ServeHTTP(w, r)
				return
			}

			if window, ok := limiter.Window(kind); ok {
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(window.Limit))
			}
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetTime.Unix(), 10))

			if !res.Allowed {
				retryAfter := int64(time.Until(res.ResetTime).Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", strconv.FormatInt(retryAfter, 10))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP returns the originating client address: the first X-Forwarded-For
// hop when present, otherwise RemoteAddr without the port.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if i := strings.IndexByte(xff, ','); i >= 0 {
			return strings.TrimSpace(xff[:i])
		}
		return strings.TrimSpace(xff)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
