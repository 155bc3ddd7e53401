package odometer

import "fmt"

// Total returns the number of distinct combinations across dims: the product
// of all cardinalities, or 1 for an empty list (a single fixed combination).
// Returns ErrCardinality, ErrDuplicateDim, or ErrOverflow on invalid input.
//
// Complexity: O(n) time, O(n) space for the duplicate check.
func Total(dims Dims) (int64, error) {
	total := int64(1)
	seen := make(map[string]struct{}, len(dims))
	for _, d := range dims {
		if d.Card < 1 {
			return 0, fmt.Errorf("%w: %q has cardinality %d", ErrCardinality, d.ID, d.Card)
		}
		if _, dup := seen[d.ID]; dup {
			return 0, fmt.Errorf("%w: %q", ErrDuplicateDim, d.ID)
		}
		seen[d.ID] = struct{}{}
		card := int64(d.Card)
		if total > maxInt64/card {
			return 0, fmt.Errorf("%w: at dimension %q", ErrOverflow, d.ID)
		}
		total *= card
	}
	return total, nil
}

const maxInt64 = int64(^uint64(0) >> 1)

// Normalize maps any integer onto the canonical composition-ID range
// [0, total). Negative IDs and IDs beyond the total wrap around; two inputs
// are equivalent iff they are congruent modulo the total. There is no
// out-of-range error by design: every int64 is a legal composition ID.
func Normalize(id int64, dims Dims) (int64, error) {
	total, err := Total(dims)
	if err != nil {
		return 0, err
	}
	return normalize(id, total), nil
}

// normalize reduces id modulo total to a non-negative remainder.
// total must be >= 1 (callers obtain it from Total).
func normalize(id, total int64) int64 {
	r := id % total
	if r < 0 {
		r += total
	}
	return r
}

// Decode maps a composition ID to the index vector it identifies. The ID is
// normalized first, then indices are peeled off starting from the last
// (fastest-varying) dimension: index = n mod card, n = n div card.
//
// The returned vector has exactly one entry per dimension, each index in
// [0, Card). An empty dims list decodes every ID to an empty vector.
//
// Complexity: O(n) time, O(n) space.
func Decode(id int64, dims Dims) (Vector, error) {
	total, err := Total(dims)
	if err != nil {
		return nil, err
	}
	n := normalize(id, total)
	vec := make(Vector, len(dims))
	for i := len(dims) - 1; i >= 0; i-- {
		card := int64(dims[i].Card)
		vec[dims[i].ID] = int(n % card)
		n /= card
	}
	return vec, nil
}

// Encode maps an index vector back to its canonical composition ID,
// accumulating id = id*card + index from the first (most-significant)
// dimension to the last. It is the inverse of Decode:
//
//	Encode(Decode(x, dims), dims) == Normalize(x, dims)   for every int64 x.
//
// Entries missing from vec read as index 0; entries whose ID is not in dims
// are ignored, so a caller may hold indices for a wider dimension set than
// the one being encoded. A present entry outside [0, Card) is rejected with
// ErrIndexRange.
//
// Complexity: O(n) time, O(n) space (duplicate check inside Total).
func Encode(vec Vector, dims Dims) (int64, error) {
	if _, err := Total(dims); err != nil {
		return 0, err
	}
	var id int64
	for _, d := range dims {
		idx := vec[d.ID]
		if idx < 0 || idx >= d.Card {
			return 0, fmt.Errorf("%w: %q index %d, cardinality %d", ErrIndexRange, d.ID, idx, d.Card)
		}
		id = id*int64(d.Card) + int64(idx)
	}
	return id, nil
}
