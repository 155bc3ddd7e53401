package preview

import "fmt"

// Window is the contiguous slice of a dimension's indices that the preview
// surface shows at once. Bounds are inclusive.
type Window struct {
	// Bucket is the zero-based ordinal of this window among the
	// dimension's windows.
	Bucket int

	// Start is the first index inside the window.
	Start int

	// End is the last index inside the window, inclusive.
	End int
}

// Len returns the number of indices inside the window.
func (w Window) Len() int { return w.End - w.Start + 1 }

// Contains reports whether idx falls inside the window.
func (w Window) Contains(idx int) bool { return idx >= w.Start && idx <= w.End }

// Indices returns the indices inside the window in ascending order.
func (w Window) Indices() []int {
	out := make([]int, 0, w.Len())
	for i := w.Start; i <= w.End; i++ {
		out = append(out, i)
	}
	return out
}

// ComputeWindow returns the window of size at most max that contains the
// current index of a dimension with card values.
//
// A max of zero (or any max >= card) disables windowing: the whole
// dimension is one window with bucket 0. The final window of a dimension is
// clipped at card-1 and may be shorter than max.
func ComputeWindow(card, current, max int) (Window, error) {
	if card < 1 {
		return Window{}, fmt.Errorf("%w: got %d", ErrCardinality, card)
	}
	if current < 0 || current >= card {
		return Window{}, fmt.Errorf("%w: index %d, cardinality %d", ErrIndexRange, current, card)
	}
	if max <= 0 || max >= card {
		return Window{Bucket: 0, Start: 0, End: card - 1}, nil
	}
	bucket := current / max
	start := bucket * max
	end := start + max - 1
	if end > card-1 {
		end = card - 1
	}
	return Window{Bucket: bucket, Start: start, End: end}, nil
}

// WindowCount returns how many windows of size max the dimension splits
// into. Disabled windowing (max <= 0 or max >= card) counts as one window.
func WindowCount(card, max int) (int, error) {
	if card < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrCardinality, card)
	}
	if max <= 0 || max >= card {
		return 1, nil
	}
	return (card + max - 1) / max, nil
}
