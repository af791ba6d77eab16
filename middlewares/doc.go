// Package middlewares provides net/http middleware compatible with chi and
// the standard library mux.
//
//	r := chi.NewRouter()
//	r.Use(middlewares.RequestID())
//	r.Use(middlewares.RateLimit(limiter, ratelimit.KindAPI))
//	r.Route("/login", func(r chi.Router) {
//	    r.Use(middlewares.RateLimit(limiter, ratelimit.KindLogin))
//	    ...
//	})
//
// RateLimit answers 429 with X-RateLimit-* and Retry-After headers when the
// client exceeds its window. RequestID assigns a UUID to each request,
// propagated via context and the X-Request-ID header.
package middlewares
