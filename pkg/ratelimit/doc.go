// Package ratelimit provides a sliding-window rate limiter keyed by client
// identity, with independent windows per call kind.
//
// Two kinds are built in: "login" (5 attempts per 15 minutes) and "api"
// (100 calls per minute). Windows can be overridden or new kinds registered
// with [WithWindow].
//
//	store := ratelimit.NewMemory()
//	defer store.Close()
//
//	limiter, err := ratelimit.New(store,
//	    ratelimit.WithWindow(ratelimit.KindAPI, 60, time.Minute),
//	)
//	if err != nil {
//	    return err
//	}
//
//	res, err := limiter.Check(ctx, clientIP, ratelimit.KindLogin)
//	if err != nil {
//	    return err
//	}
//	if !res.Allowed {
//	    // reject; res.ResetTime says when capacity returns
//	}
//
// Every Check records the attempt, allowed or not. The window slides:
// capacity returns one attempt at a time as old attempts age out, not all
// at once on a fixed boundary.
//
// # Stores
//
// [Memory] keeps per-key attempt timestamps in process, pruned on every
// check and swept in the background for idle keys — the same
// expiry-on-read-or-sweep discipline as pkg/cache. It takes an injectable
// clock for tests.
//
// [Redis] shares limit state across instances using one sorted set per key,
// pruned, written and counted in a single transactional pipeline.
//
// For HTTP handlers, see the middleware in the middlewares package.
package ratelimit
