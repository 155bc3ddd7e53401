// Package preview defines the session, option, and error types for
// pin-aware composition navigation.
package preview

import (
	"errors"
	"fmt"
	"math/rand"
)

// ScopeGlobal is the pin scope that applies to every navigation context.
// Block-scoped pins use the block's path as their scope and apply only when
// that exact scope is selected for a step.
const ScopeGlobal = "*"

// Sentinel errors for session and window operations.
var (
	// ErrCardinality is returned when a window is requested for a
	// dimension with cardinality < 1.
	ErrCardinality = errors.New("preview: dimension cardinality must be >= 1")

	// ErrIndexRange is returned when a current index lies outside
	// [0, cardinality). Indices fed to window math come from decoding a
	// composition ID and are always in range; anything else is a caller bug.
	ErrIndexRange = errors.New("preview: index out of range for dimension")

	// ErrWindowSize is returned when a negative window size is configured.
	// Zero is legal and disables windowing.
	ErrWindowSize = errors.New("preview: window size must be >= 0")

	// ErrDirection is returned when Advance receives an unknown Direction.
	ErrDirection = errors.New("preview: unknown navigation direction")

	// ErrResolverNil is returned when Advance is called without a value
	// resolver. Pin resolution needs one even when no pin is currently set.
	ErrResolverNil = errors.New("preview: value resolver is nil")

	// ErrBadState is returned by ParseQuery for malformed query parameters.
	ErrBadState = errors.New("preview: malformed state parameter")
)

// Direction selects how Advance moves the unpinned dimensions.
type Direction int

const (
	// Next increments the unpinned sub-odometer by one step, wrapping.
	Next Direction = iota

	// Prev decrements the unpinned sub-odometer by one step, wrapping.
	Prev

	// Shuffle draws a uniformly random index for every unpinned dimension.
	Shuffle
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Prev:
		return "prev"
	case Shuffle:
		return "shuffle"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ValueResolver resolves a recorded pin value to its current index within a
// dimension's value list. The catalog package satisfies this; any store of
// wildcard values can.
type ValueResolver interface {
	// IndexOfValue reports the zero-based index of value within dim's
	// current value list, or false when the value is no longer present.
	IndexOfValue(dim, value string) (int, bool)
}

// Option configures a single Advance call via functional arguments.
type Option func(*Options)

// Options holds the per-step knobs for Advance.
type Options struct {
	// Scope selects which pin scope applies to this step. Pins recorded
	// under exactly this scope win; global pins apply as fallback.
	Scope string

	// Rand supplies randomness for Shuffle. When nil, a deterministic
	// generator derived from Seed is used instead.
	Rand *rand.Rand

	// Seed picks the deterministic stream used when Rand is nil.
	// Seed 0 selects a fixed default stream, so results are reproducible
	// even when callers configure nothing.
	Seed int64

	// OnStalePin fires once per pinned dimension whose recorded value no
	// longer resolves; the step then treats that dimension as unpinned.
	OnStalePin func(scope, dim, value string)
}

// DefaultOptions returns the Options used when no functional options are
// supplied: global scope, deterministic default RNG stream, no-op stale-pin
// hook.
func DefaultOptions() Options {
	return Options{
		Scope:      ScopeGlobal,
		OnStalePin: func(string, string, string) {},
	}
}

// WithScope selects the pin scope for this step. An empty scope means
// ScopeGlobal.
func WithScope(scope string) Option {
	return func(o *Options) {
		if scope != "" {
			o.Scope = scope
		}
	}
}

// WithRand supplies the RNG used by Shuffle. A nil value keeps the
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

// WithOnStalePin registers a callback for pins whose value disappeared from
// the dimension's value list. The step never fails for a stale pin; it
// degrades to unpinned behavior for that dimension and reports here.
func WithOnStalePin(fn func(scope, dim, value string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStalePin = fn
		}
	}
}
