package preview

import (
	"fmt"

	"github.com/promptcomb/promptcomb/odometer"
)

// Advance moves the session one navigation step through composition space
// while holding every pinned dimension in place, then stores and returns
// the new composition ID.
//
// The step works on the decoded index vector of the current ID:
//
//  1. Every dimension pinned in the selected scope (exact scope first,
//     global fallback) is forced to the index its pinned value resolves to.
//  2. The remaining unpinned dimensions form a sub-odometer of their own.
//     Next and Prev step that sub-odometer by +1/-1 with wraparound, so a
//     full cycle enumerates exactly the compositions that honor the pins.
//     Shuffle draws a uniformly random index for each unpinned dimension.
//  3. The full vector is re-encoded against dims.
//
// A pin whose value no longer resolves in vals is stale: the step reports
// it through the OnStalePin option and treats the dimension as unpinned.
// Stale pins never fail a step.
//
// With every dimension pinned, Next and Prev return the pinned composition
// unchanged (the sub-odometer is empty and has exactly one state).
//
// Complexity: O(d) time and allocations for d dimensions, plus resolver
// lookups for pinned dimensions.
func (s *Session) Advance(dir Direction, dims odometer.Dims, vals ValueResolver, opts ...Option) (int64, error) {
	if dir != Next && dir != Prev && dir != Shuffle {
		return 0, fmt.Errorf("%w: %d", ErrDirection, int(dir))
	}
	if vals == nil {
		return 0, ErrResolverNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cur, err := odometer.Decode(s.CompositionID, dims)
	if err != nil {
		return 0, err
	}

	next := cur.Clone()
	free := make(odometer.Dims, 0, len(dims))
	for _, d := range dims {
		value, scope, pinned := s.PinnedValue(o.Scope, d.ID)
		if !pinned {
			free = append(free, d)
			continue
		}
		idx, found := vals.IndexOfValue(d.ID, value)
		if !found || idx < 0 || idx >= d.Card {
			// The recorded value left the dimension since it was pinned.
			o.OnStalePin(scope, d.ID, value)
			free = append(free, d)
			continue
		}
		next[d.ID] = idx
	}

	switch dir {
	case Shuffle:
		rng := o.Rand
		if rng == nil {
			rng = rngFromSeed(o.Seed)
		}
		for _, d := range free {
			next[d.ID] = rng.Intn(d.Card)
		}
	default:
		subID, err := odometer.Encode(next, free)
		if err != nil {
			return 0, err
		}
		step := int64(1)
		if dir == Prev {
			step = -1
		}
		stepped, err := odometer.Normalize(subID+step, free)
		if err != nil {
			return 0, err
		}
		subVec, err := odometer.Decode(stepped, free)
		if err != nil {
			return 0, err
		}
		for id, idx := range subVec {
			next[id] = idx
		}
	}

	id, err := odometer.Encode(next, dims)
	if err != nil {
		return 0, err
	}
	s.CompositionID = id
	return id, nil
}
