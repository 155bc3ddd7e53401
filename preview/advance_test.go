package preview_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/promptcomb/promptcomb/odometer"
	"github.com/promptcomb/promptcomb/preview"
)

// stubResolver maps dimension ID to its ordered value list, standing in for
// the wildcard catalog.
type stubResolver map[string][]string

func (r stubResolver) IndexOfValue(dim, value string) (int, bool) {
	for i, v := range r[dim] {
		if v == value {
			return i, true
		}
	}
	return 0, false
}

// toneSizeDims is the running fixture: 4 tones x 3 sizes, 12 compositions,
// with size as the fastest-varying wheel.
func toneSizeDims() odometer.Dims {
	return odometer.Dims{
		{ID: "tone", Card: 4},
		{ID: "size", Card: 3},
	}
}

func toneSizeValues() stubResolver {
	return stubResolver{
		"tone": {"neutral", "formal", "casual", "stern"},
		"size": {"short", "medium", "long"},
	}
}

// AdvanceSuite exercises pinned, unpinned and shuffled navigation.
type AdvanceSuite struct {
	suite.Suite
}

// TestNextUnpinned steps straight through the space and wraps at the end.
func (s *AdvanceSuite) TestNextUnpinned() {
	sess := preview.NewSession(0)
	sess.CompositionID = 5

	id, err := sess.Advance(preview.Next, toneSizeDims(), toneSizeValues())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(6), id)
	require.Equal(s.T(), int64(6), sess.CompositionID)

	sess.CompositionID = 11
	id, err = sess.Advance(preview.Next, toneSizeDims(), toneSizeValues())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), id, "last composition wraps to the first")
}

// TestPrevUnpinned wraps backwards across zero.
func (s *AdvanceSuite) TestPrevUnpinned() {
	sess := preview.NewSession(0)

	id, err := sess.Advance(preview.Prev, toneSizeDims(), toneSizeValues())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(11), id, "first composition wraps to the last")
}

// TestNextWithPin reproduces the canonical pinned step: tone pinned to
// "formal" (index 1), composition 5 -> composition 3.
func (s *AdvanceSuite) TestNextWithPin() {
	sess := preview.NewSession(0)
	sess.CompositionID = 5
	sess.Pin(preview.ScopeGlobal, "tone", "formal")

	id, err := sess.Advance(preview.Next, toneSizeDims(), toneSizeValues())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(3), id)

	vec, err := odometer.Decode(id, toneSizeDims())
	require.NoError(s.T(), err)
	require.Equal(s.T(), odometer.Vector{"tone": 1, "size": 0}, vec)
}

// TestPinnedCycle checks that Next enumerates exactly the compositions that
// honor the pin, with period equal to the free sub-space.
func (s *AdvanceSuite) TestPinnedCycle() {
	sess := preview.NewSession(0)
	sess.CompositionID = 3 // tone=1, size=0
	sess.Pin(preview.ScopeGlobal, "tone", "formal")

	seen := make([]int64, 0, 4)
	for i := 0; i < 4; i++ {
		id, err := sess.Advance(preview.Next, toneSizeDims(), toneSizeValues())
		require.NoError(s.T(), err)
		seen = append(seen, id)

		vec, err := odometer.Decode(id, toneSizeDims())
		require.NoError(s.T(), err)
		require.Equal(s.T(), 1, vec["tone"], "pin must hold on every step")
	}
	require.Equal(s.T(), []int64{4, 5, 3, 4}, seen, "period 3 cycle over the free size wheel")
}

// TestPrevWithPin steps the free sub-odometer backwards under a pin.
func (s *AdvanceSuite) TestPrevWithPin() {
	sess := preview.NewSession(0)
	sess.CompositionID = 3 // tone=1, size=0
	sess.Pin(preview.ScopeGlobal, "tone", "formal")

	id, err := sess.Advance(preview.Prev, toneSizeDims(), toneSizeValues())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), id, "size wraps 0 -> 2 while tone holds")
}

// TestAllPinned verifies that a fully pinned space is a fixed point for
// Next and Prev.
func (s *AdvanceSuite) TestAllPinned() {
	sess := preview.NewSession(0)
	sess.CompositionID = 0
	sess.Pin(preview.ScopeGlobal, "tone", "casual") // index 2
	sess.Pin(preview.ScopeGlobal, "size", "long")   // index 2

	// The first step lands on the pinned composition.
	id, err := sess.Advance(preview.Next, toneSizeDims(), toneSizeValues())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(8), id) // 2*3 + 2

	// Every further step stays there.
	for _, dir := range []preview.Direction{preview.Next, preview.Prev} {
		id, err = sess.Advance(dir, toneSizeDims(), toneSizeValues())
		require.NoError(s.T(), err)
		require.Equal(s.T(), int64(8), id)
	}
}

// TestScopeSelection holds that block-scoped pins apply only when their
// scope is selected, while global pins apply everywhere.
func (s *AdvanceSuite) TestScopeSelection() {
	sess := preview.NewSession(0)
	sess.CompositionID = 5
	sess.Pin("blocks/3", "tone", "formal")

	// Default scope is global: the block pin is invisible.
	id, err := sess.Advance(preview.Next, toneSizeDims(), toneSizeValues())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(6), id)

	// Selecting the block's scope activates it.
	sess.CompositionID = 5
	id, err = sess.Advance(preview.Next, toneSizeDims(), toneSizeValues(),
		preview.WithScope("blocks/3"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(3), id)
}

// TestStalePin degrades to unpinned stepping and reports through the hook.
func (s *AdvanceSuite) TestStalePin() {
	sess := preview.NewSession(0)
	sess.CompositionID = 5
	sess.Pin(preview.ScopeGlobal, "tone", "baroque") // not in the value list

	var gotScope, gotDim, gotValue string
	calls := 0
	id, err := sess.Advance(preview.Next, toneSizeDims(), toneSizeValues(),
		preview.WithOnStalePin(func(scope, dim, value string) {
			calls++
			gotScope, gotDim, gotValue = scope, dim, value
		}))
	require.NoError(s.T(), err, "stale pins must never fail a step")
	require.Equal(s.T(), int64(6), id, "step proceeds as if unpinned")
	require.Equal(s.T(), 1, calls)
	require.Equal(s.T(), preview.ScopeGlobal, gotScope)
	require.Equal(s.T(), "tone", gotDim)
	require.Equal(s.T(), "baroque", gotValue)

	// The stale pin stays recorded; only the step ignored it.
	v, _, ok := sess.PinnedValue(preview.ScopeGlobal, "tone")
	require.True(s.T(), ok)
	require.Equal(s.T(), "baroque", v)
}

// TestShuffleHoldsPins draws random free dimensions but never moves a
// pinned one.
func (s *AdvanceSuite) TestShuffleHoldsPins() {
	sess := preview.NewSession(0)
	sess.CompositionID = 5
	sess.Pin(preview.ScopeGlobal, "tone", "formal")

	for seed := int64(1); seed <= 20; seed++ {
		id, err := sess.Advance(preview.Shuffle, toneSizeDims(), toneSizeValues(),
			preview.WithSeed(seed))
		require.NoError(s.T(), err)

		vec, err := odometer.Decode(id, toneSizeDims())
		require.NoError(s.T(), err)
		require.Equal(s.T(), 1, vec["tone"])
		require.GreaterOrEqual(s.T(), vec["size"], 0)
		require.Less(s.T(), vec["size"], 3)
	}
}

// TestShuffleDeterminism replays identically for equal seeds and for the
// implicit default stream.
func (s *AdvanceSuite) TestShuffleDeterminism() {
	run := func(opts ...preview.Option) int64 {
		sess := preview.NewSession(0)
		sess.CompositionID = 7
		id, err := sess.Advance(preview.Shuffle, toneSizeDims(), toneSizeValues(), opts...)
		require.NoError(s.T(), err)
		return id
	}

	require.Equal(s.T(), run(preview.WithSeed(42)), run(preview.WithSeed(42)))
	require.Equal(s.T(), run(), run(), "seedless shuffles use the fixed default stream")
	require.Equal(s.T(), run(), run(preview.WithSeed(0)), "seed 0 is the default stream")

	// An injected generator overrides the seed entirely.
	a := run(preview.WithRand(rand.New(rand.NewSource(99))), preview.WithSeed(1))
	b := run(preview.WithRand(rand.New(rand.NewSource(99))), preview.WithSeed(2))
	require.Equal(s.T(), a, b)
}

// TestEmptyDims keeps the single empty composition at ID zero.
func (s *AdvanceSuite) TestEmptyDims() {
	sess := preview.NewSession(0)
	sess.CompositionID = 40

	id, err := sess.Advance(preview.Next, odometer.Dims{}, toneSizeValues())
	require.NoError(s.T(), err)
	require.Zero(s.T(), id)
}

// TestErrors covers the fail-fast sentinels and odometer propagation.
func (s *AdvanceSuite) TestErrors() {
	sess := preview.NewSession(0)

	_, err := sess.Advance(preview.Direction(42), toneSizeDims(), toneSizeValues())
	require.ErrorIs(s.T(), err, preview.ErrDirection)

	_, err = sess.Advance(preview.Next, toneSizeDims(), nil)
	require.ErrorIs(s.T(), err, preview.ErrResolverNil)

	_, err = sess.Advance(preview.Next, odometer.Dims{{ID: "tone", Card: 0}}, toneSizeValues())
	require.ErrorIs(s.T(), err, odometer.ErrCardinality)

	dup := odometer.Dims{{ID: "tone", Card: 2}, {ID: "tone", Card: 3}}
	_, err = sess.Advance(preview.Next, dup, toneSizeValues())
	require.ErrorIs(s.T(), err, odometer.ErrDuplicateDim)
}

// TestDirectionString pins the labels used in logs and UIs.
func (s *AdvanceSuite) TestDirectionString() {
	require.Equal(s.T(), "next", preview.Next.String())
	require.Equal(s.T(), "prev", preview.Prev.String())
	require.Equal(s.T(), "shuffle", preview.Shuffle.String())
	require.Equal(s.T(), "direction(9)", preview.Direction(9).String())
}

func TestAdvanceSuite(t *testing.T) {
	suite.Run(t, new(AdvanceSuite))
}
