package cachekey

import "strings"

// Separator joins the entity type and selector segments of a key.
const Separator = ":"

// allSelector marks a "full collection" key.
const allSelector = "all"

// searchSelector prefixes query-shaped keys so they never collide with
// by-id keys of the same entity type.
const searchSelector = "search"

// All returns the key for the full cached collection of an entity type,
// e.g. All("retailers") == "retailers:all".
func All(entityType string) string {
	return Join(entityType, allSelector)
}

// ByID returns the key for a single entity,
// e.g. ByID("retailers", "42") == "retailers:42".
func ByID(entityType, id string) string {
	return Join(entityType, id)
}

// Search returns the key for a query-shaped result set. The query and any
// filter descriptors become part of the key, so distinct searches cache
// independently: Search("retailers", "acme", "active", "eu") ==
// "retailers:search:acme:active:eu".
func Search(entityType, query string, filters ...string) string {
	parts := make([]string, 0, len(filters)+3)
	parts = append(parts, entityType, searchSelector, query)
	parts = append(parts, filters...)
	return Join(parts...)
}

// Join composes an arbitrary key from segments using the standard separator.
// The first segment is the entity type; keys built any other way fall
// outside the invalidation convention.
func Join(parts ...string) string {
	return strings.Join(parts, Separator)
}
