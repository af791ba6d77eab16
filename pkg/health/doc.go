// Package health aggregates named dependency checks into a single HTTP
// readout for load balancers and orchestrators.
//
//	mux.Get("/health", health.Handler(health.Checks{
//	    "postgres": db.Healthcheck(pool),
//	    "redis":    redis.Healthcheck(client),
//	}, health.WithTimeout(3*time.Second)))
//
// Checks run in parallel under a shared timeout; the handler answers 200
// with per-check JSON when everything passes and 503 otherwise.
package health
