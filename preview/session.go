package preview

import (
	"fmt"

	"github.com/promptcomb/promptcomb/odometer"
)

// Session tracks one editing surface's position in composition space plus
// the pins and window size that shape navigation from it.
//
// Session is not safe for concurrent use. Each surface owns exactly one
// Session and drives it from a single goroutine; share snapshots via State.
type Session struct {
	// CompositionID is the current position in the composition space.
	// It is kept normalized into [0, Total) by Advance, but callers may
	// assign any int64; decoding normalizes.
	CompositionID int64

	// WildcardsMax is the per-dimension window size. Zero disables
	// windowing. Mutate via SetWindowSize so pins are invalidated.
	WildcardsMax int

	// pins maps scope -> dimension -> pinned value. Values, not indices:
	// the backing value lists are editable, so positions drift.
	pins map[string]map[string]string
}

// NewSession returns a session at composition 0 with the given window size.
func NewSession(wildcardsMax int) *Session {
	return &Session{WildcardsMax: wildcardsMax}
}

func normalizeScope(scope string) string {
	if scope == "" {
		return ScopeGlobal
	}
	return scope
}

// Pin records that dim must hold value within scope. An empty scope means
// ScopeGlobal. Pinning the same dim in the same scope overwrites.
func (s *Session) Pin(scope, dim, value string) {
	scope = normalizeScope(scope)
	if s.pins == nil {
		s.pins = make(map[string]map[string]string)
	}
	byDim := s.pins[scope]
	if byDim == nil {
		byDim = make(map[string]string)
		s.pins[scope] = byDim
	}
	byDim[dim] = value
}

// Unpin removes the pin for dim within scope, if any.
func (s *Session) Unpin(scope, dim string) {
	scope = normalizeScope(scope)
	byDim, ok := s.pins[scope]
	if !ok {
		return
	}
	delete(byDim, dim)
	if len(byDim) == 0 {
		delete(s.pins, scope)
	}
}

// ClearPins drops every pin in every scope.
func (s *Session) ClearPins() {
	s.pins = nil
}

// PinnedValue returns the value pinned for dim as seen from scope: an exact
// scope match wins, otherwise the global scope is consulted. The reported
// scope is the one the pin was found under.
func (s *Session) PinnedValue(scope, dim string) (value, foundScope string, ok bool) {
	scope = normalizeScope(scope)
	if byDim, exists := s.pins[scope]; exists {
		if v, has := byDim[dim]; has {
			return v, scope, true
		}
	}
	if scope != ScopeGlobal {
		if byDim, exists := s.pins[ScopeGlobal]; exists {
			if v, has := byDim[dim]; has {
				return v, ScopeGlobal, true
			}
		}
	}
	return "", "", false
}

// Pins returns a deep copy of every pin, keyed scope -> dimension -> value.
func (s *Session) Pins() map[string]map[string]string {
	out := make(map[string]map[string]string, len(s.pins))
	for scope, byDim := range s.pins {
		cp := make(map[string]string, len(byDim))
		for dim, v := range byDim {
			cp[dim] = v
		}
		out[scope] = cp
	}
	return out
}

// SetWindowSize changes the per-dimension window size and clears every pin,
// because pinned positions are only meaningful relative to the windows that
// produced them. It must be used for every window-size change, including
// re-setting the current value. Negative sizes are rejected with
// ErrWindowSize; zero disables windowing.
func (s *Session) SetWindowSize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: got %d", ErrWindowSize, n)
	}
	s.WildcardsMax = n
	s.ClearPins()
	return nil
}

// Frame is a decoded view of a session against a dimension list: the index
// each dimension currently holds, and the window each index falls in.
type Frame struct {
	// Indices maps dimension ID to its decoded index.
	Indices odometer.Vector

	// Windows maps dimension ID to the window containing its index,
	// computed with the session's WildcardsMax.
	Windows map[string]Window
}

// Frame decodes the session's composition ID against dims and computes the
// window for every dimension.
func (s *Session) Frame(dims odometer.Dims) (*Frame, error) {
	vec, err := odometer.Decode(s.CompositionID, dims)
	if err != nil {
		return nil, err
	}
	wins := make(map[string]Window, len(dims))
	for _, d := range dims {
		w, err := ComputeWindow(d.Card, vec[d.ID], s.WildcardsMax)
		if err != nil {
			return nil, err
		}
		wins[d.ID] = w
	}
	return &Frame{Indices: vec, Windows: wins}, nil
}
