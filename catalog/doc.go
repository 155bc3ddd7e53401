// Package catalog is the value store behind composition dimensions.
//
// A catalog holds named wildcard lists (tone: neutral, formal, ...) and one
// ordered list of theme fragments. Templates reference wildcards as
// __name__; Refs finds those references, Dimensions turns them into the
// ordered dimension list the odometer package indexes, and ReplaceRefs
// substitutes values during rendering.
//
// Ordering
//
// Dimensions is deterministic: the theme dimension (ThemeDim) first when
// any themes exist, then referenced wildcards sorted by name. Composition
// IDs are only meaningful against this order, so it never depends on map
// iteration or template position.
//
// Identity
//
// Values are identified by content, not position. IndexOfValue re-resolves
// a value string to its current index, which is how pinned values stay
// attached to "formal" rather than to "slot 1" while lists are edited.
//
// Concurrency
//
// Catalog is not goroutine-safe. It belongs to the single goroutine that
// owns the editing session.
//
// Errors
//
//   - ErrName: a wildcard name unusable inside __ delimiters.
//   - ErrYAML: unparseable catalog document.
//
// Match with errors.Is.
package catalog
