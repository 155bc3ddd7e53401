package compose

import (
	"errors"
	"fmt"

	"github.com/promptcomb/promptcomb/catalog"
	"github.com/promptcomb/promptcomb/odometer"
)

// Walk renders compositions in ID order, calling fn for each one.
//
// Enumeration runs from the Offset option (default 0) to the end of the
// composition space, visiting at most Limit compositions when a limit is
// set. An offset at or beyond the end visits nothing. The context is
// checked before every iteration, so a canceled walk stops between
// compositions and returns the context's error.
//
// fn may return ErrStopWalk for an early, successful stop; any other error
// aborts the walk and is returned wrapped.
//
// Complexity: O(k*(d+t)) for k visited compositions, d dimensions and
// template length t.
func Walk(c *catalog.Catalog, tpl string, fn WalkFunc, opts ...Option) error {
	if c == nil {
		return ErrCatalogNil
	}
	if fn == nil {
		return ErrCallbackNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	dims := c.Dimensions(tpl)
	total, err := odometer.Total(dims)
	if err != nil {
		return err
	}

	end := total
	if o.Limit > 0 && o.Offset < end && o.Limit < end-o.Offset {
		end = o.Offset + o.Limit
	}
	for id := o.Offset; id < end; id++ {
		if err := o.Ctx.Err(); err != nil {
			return err
		}
		vec, err := odometer.Decode(id, dims)
		if err != nil {
			return err
		}
		text, err := Render(c, tpl, vec)
		if err != nil {
			return err
		}
		if err := fn(id, text); err != nil {
			if errors.Is(err, ErrStopWalk) {
				return nil
			}
			return fmt.Errorf("compose: walk callback: %w", err)
		}
	}
	return nil
}

// Sampled is one randomly drawn composition.
type Sampled struct {
	ID   int64
	Text string
}

// Sample draws n compositions uniformly at random, with replacement, and
// renders each one. Randomness follows the package policy: an injected
// generator via WithRand, otherwise a deterministic stream from WithSeed
// (seed 0 is the fixed default stream).
//
// n == 0 returns an empty slice; n < 0 is ErrSampleSize.
func Sample(c *catalog.Catalog, tpl string, n int, opts ...Option) ([]Sampled, error) {
	if c == nil {
		return nil, ErrCatalogNil
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrSampleSize, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	dims := c.Dimensions(tpl)
	total, err := odometer.Total(dims)
	if err != nil {
		return nil, err
	}
	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}

	out := make([]Sampled, 0, n)
	for i := 0; i < n; i++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		id := rng.Int63n(total)
		vec, err := odometer.Decode(id, dims)
		if err != nil {
			return nil, err
		}
		text, err := Render(c, tpl, vec)
		if err != nil {
			return nil, err
		}
		out = append(out, Sampled{ID: id, Text: text})
	}
	return out, nil
}
