// Package odometer defines the dimension, vector, and error types shared by
// the composition-indexing functions.
package odometer

import "errors"

// Sentinel errors for composition-index math.
var (
	// ErrCardinality is returned when a dimension's cardinality is < 1.
	// A dimension with no values can never be indexed; suppliers must drop
	// such dimensions before calling in.
	ErrCardinality = errors.New("odometer: dimension cardinality must be >= 1")

	// ErrDuplicateDim is returned when two dimensions share the same ID.
	// Duplicate IDs would make the decoded Vector ambiguous.
	ErrDuplicateDim = errors.New("odometer: duplicate dimension id")

	// ErrOverflow is returned when the product of all cardinalities exceeds
	// the int64 range. 2^63-1 total combinations is the supported ceiling.
	ErrOverflow = errors.New("odometer: combination count exceeds int64")

	// ErrIndexRange is returned by Encode when a vector entry lies outside
	// [0, Card) for its dimension.
	ErrIndexRange = errors.New("odometer: index out of range for dimension")
)

// Dim is one independent axis of variation: a wildcard name (or any other
// stable identifier) plus the number of values it can take.
type Dim struct {
	// ID uniquely identifies the dimension within one Dims list.
	ID string

	// Card is the number of distinct values, always >= 1.
	Card int
}

// Dims is an ordered dimension list. Order is significant and must be
// identical between Encode and Decode calls: the first element is the
// most-significant wheel and the last element is the fastest-varying one,
// exactly like digits on a mechanical odometer.
type Dims []Dim

// Vector maps a dimension ID to a zero-based index into that dimension's
// value list. Vectors are produced by Decode and consumed by Encode; they
// carry no ordering of their own (Dims does).
type Vector map[string]int

// Clone returns an independent copy of v. A nil vector clones to an empty,
// non-nil vector so callers may mutate the result freely.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for id, idx := range v {
		out[id] = idx
	}
	return out
}
