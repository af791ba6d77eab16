// Package cachekey builds collision-free cache keys following the
// "<entityType>:<selector>" naming convention that pkg/cache invalidation
// relies on.
//
// The selector is an id, the literal "all", or a composite query descriptor
// joined by ":":
//
//	cachekey.All("retailers")                        // "retailers:all"
//	cachekey.ByID("retailers", "42")                 // "retailers:42"
//	cachekey.Search("retailers", "acme", "active")   // "retailers:search:acme:active"
//	cachekey.Join("orders", "42", "items")           // "orders:42:items"
//
// Because pkg/cache invalidates by the "^<entityType>:" prefix, every key
// produced here for an entity type is removed by a single
// InvalidateEntity call.
//
// All functions are pure; the package holds no state.
package cachekey
