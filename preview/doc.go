// Package preview implements the navigation layer of the composition
// engine: bucket windows over large dimensions, pinned dimensions, stepwise
// and shuffled movement through composition space, and a shareable state
// snapshot.
//
// What it manages
//
//   - Window / ComputeWindow / WindowCount: a dimension with hundreds of
//     values is shown one fixed-size bucket at a time. The window holding
//     an index is pure arithmetic on (cardinality, index, size), never
//     stored state.
//   - Session: the mutable position of one editing surface, its window
//     size, and its pins.
//   - Advance: one navigation step (Next, Prev, Shuffle) that holds pinned
//     dimensions fixed and moves only the rest.
//   - State: the shareable subset of a session plus its URL query codec.
//
// Pins hold values, not indices
//
// A pin records the dimension's value string. The value lists backing the
// dimensions are editable, so a stored index would silently drift onto a
// different value after an insert or delete. Values are re-resolved to
// indices at each step; a value that disappeared makes the pin stale, which
// degrades that dimension to unpinned for the step and fires the OnStalePin
// hook. Navigation never fails because the data moved underneath it.
//
// Pins are scoped: ScopeGlobal applies everywhere, any other scope string
// names one editing context. Resolution is exact scope first, then global.
//
// Determinism
//
// Next and Prev are pure functions of (composition ID, dims, pins).
// Shuffle uses an injected *rand.Rand or a seed-derived generator; seed 0
// selects a fixed default stream, so even unconfigured shuffles replay.
//
// Concurrency
//
// A Session is not goroutine-safe and never locks. One goroutine owns one
// Session; cross-surface sharing goes through the immutable State snapshot.
//
// Errors
//
//   - ErrCardinality, ErrIndexRange: impossible window geometry.
//   - ErrWindowSize: negative window size.
//   - ErrDirection: unknown Direction value.
//   - ErrResolverNil: Advance called without a ValueResolver.
//   - ErrBadState: malformed comp / wc_max query parameter.
//
// All are sentinels; match with errors.Is.
//
// Usage
//
//	sess := preview.NewSession(8)
//	sess.Pin(preview.ScopeGlobal, "tone", "formal")
//	id, err := sess.Advance(preview.Next, dims, cat)
//	if err != nil { ... }
//	frame, err := sess.Frame(dims)
//	link := sess.State().Query().Encode()
package preview
