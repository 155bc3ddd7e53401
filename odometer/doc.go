// Package odometer converts between a single integer "composition ID" and a
// per-dimension index vector over independently-sized dimensions: a
// mixed-radix counter, exactly like the wheels of a mechanical odometer.
//
// What
//
//   - A Dims list declares the active dimensions in a fixed order; each Dim
//     carries an ID and a cardinality (value count, >= 1).
//   - Decode(id, dims) resolves a composition ID to a Vector holding one
//     zero-based index per dimension.
//   - Encode(vec, dims) is the inverse, producing the canonical ID in
//     [0, Total(dims)).
//   - Normalize(id, dims) reduces any int64 onto that canonical range;
//     negative IDs and IDs beyond the total wrap by modulo.
//   - Total(dims) is the number of distinct combinations (1 for no dims).
//
// Why
//
//   - A single integer is trivially storable in a URL, a config field, or an
//     undo stack, yet addresses one exact combination out of a Cartesian
//     product of wildcard values.
//   - Stepping the integer steps the combination space odometer-style: the
//     last dimension in the list is the fastest wheel; when it wraps it
//     carries into the previous one.
//
// Determinism
//
//	The dimension order is the caller's contract. Two calls with the same
//	dims list always agree on which ID maps to which combination; reordering
//	the list changes the mapping. Suppliers should derive the list from a
//	stable rule (see the catalog package) and reuse it for the whole render
//	cycle.
//
// Dimensions of cardinality 1 are neutral: they always decode to index 0 and
// do not change the total or any other dimension's resolved index.
//
// Complexity (n = len(dims))
//
//   - Time:   O(n) for Total, Decode, Encode, Normalize.
//   - Memory: O(n) for the result vector and the duplicate-ID check.
//
// The combination total is tracked in int64; lists whose product would pass
// 2^63-1 are rejected with ErrOverflow rather than silently wrapping.
//
// Usage
//
//	dims := odometer.Dims{
//	    {ID: "tone", Card: 4},
//	    {ID: "size", Card: 3},
//	}
//	vec, err := odometer.Decode(5, dims)
//	if err != nil { ... }
//	// vec == Vector{"tone": 1, "size": 2}
//
//	id, err := odometer.Encode(vec, dims)
//	// id == 5
//
// Errors
//
//   - ErrCardinality  if any dimension has cardinality < 1.
//   - ErrDuplicateDim if two dimensions share an ID.
//   - ErrOverflow     if the combination count exceeds int64.
//   - ErrIndexRange   if Encode receives an index outside [0, Card).
//
// Decode has no out-of-range ID error: normalization absorbs every int64.
package odometer
