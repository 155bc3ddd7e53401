// Package compose provides tunable options and error definitions for
// rendering and enumerating template compositions.
package compose

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for composition execution.
var (
	// ErrCatalogNil is returned if a nil catalog pointer is passed.
	ErrCatalogNil = errors.New("compose: catalog is nil")

	// ErrCallbackNil is returned when Walk is invoked without a callback.
	ErrCallbackNil = errors.New("compose: walk callback is nil")

	// ErrIndexRange is returned by Render when a supplied index lies
	// outside its dimension's value list.
	ErrIndexRange = errors.New("compose: index out of range for dimension")

	// ErrSampleSize is returned when a negative sample count is requested.
	ErrSampleSize = errors.New("compose: sample count must be >= 0")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("compose: invalid option supplied")

	// ErrStopWalk signals an early, successful stop when returned from a
	// walk callback. Walk swallows it and returns nil.
	ErrStopWalk = errors.New("compose: stop walk")
)

// WalkFunc receives one composition: its ID and its rendered text.
// Returning ErrStopWalk ends the walk cleanly; any other error aborts it.
type WalkFunc func(id int64, text string) error

// Option configures Walk and Sample via functional arguments.
// If an Option is invalid (e.g. negative limit), it is recorded internally
// and surfaced as ErrOptionViolation when the operation is invoked.
type Option func(*Options)

// Options holds parameters customizing enumeration and sampling.
type Options struct {
	// Ctx allows cancellation and deadlines during long walks.
	Ctx context.Context

	// Offset is the composition ID enumeration starts at.
	Offset int64

	// Limit, if > 0, caps how many compositions are visited.
	// A value of 0 explicitly disables the cap.
	Limit int64

	// Rand supplies randomness for Sample. When nil, a deterministic
	// generator derived from Seed is used instead.
	Rand *rand.Rand

	// Seed picks the deterministic stream used when Rand is nil.
	// Seed 0 selects a fixed default stream.
	Seed int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no offset, no limit
//   - deterministic default RNG stream (seed 0 policy)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Offset: 0,
		Limit:  0,
		Seed:   0,
		err:    nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOffset starts enumeration at the given composition ID.
//
//	n >= 0: start at n
//	n < 0: invalid option → ErrOptionViolation
func WithOffset(n int64) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Offset cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Offset = n
	}
}

// WithLimit caps the number of compositions visited.
//
//	n > 0: visit at most n
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithLimit(n int64) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}

// WithRand supplies the RNG used by Sample. A nil value keeps the
// deterministic default.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithSeed selects the deterministic stream used when no RNG is supplied.
// Seed 0 is the fixed default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}
