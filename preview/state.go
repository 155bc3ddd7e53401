package preview

import (
	"fmt"
	"net/url"
	"strconv"
)

// Query parameter names for shareable session state.
const (
	queryComposition = "comp"
	queryWindowSize  = "wc_max"
)

// State is the shareable slice of a session: the composition ID and window
// size. Pins are deliberately excluded; they are local editing aids, not
// part of a shared link.
type State struct {
	CompositionID int64
	WildcardsMax  int
}

// State snapshots the shareable part of the session.
func (s *Session) State() State {
	return State{CompositionID: s.CompositionID, WildcardsMax: s.WildcardsMax}
}

// Apply writes the state onto a session. A window-size change goes through
// SetWindowSize, so pins are cleared exactly when the size actually differs.
func (st State) Apply(s *Session) error {
	if st.WildcardsMax != s.WildcardsMax {
		if err := s.SetWindowSize(st.WildcardsMax); err != nil {
			return err
		}
	}
	s.CompositionID = st.CompositionID
	return nil
}

// Query encodes the state as URL query values using the comp and wc_max
// parameters.
func (st State) Query() url.Values {
	q := url.Values{}
	q.Set(queryComposition, strconv.FormatInt(st.CompositionID, 10))
	q.Set(queryWindowSize, strconv.Itoa(st.WildcardsMax))
	return q
}

// ParseQuery reads session state back out of URL query values. Absent
// parameters default to zero. A negative composition ID is accepted as is;
// decoding normalizes it into range. Unparseable numbers and negative
// window sizes yield ErrBadState.
func ParseQuery(q url.Values) (State, error) {
	var st State
	if raw := q.Get(queryComposition); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return State{}, fmt.Errorf("%w: %s=%q", ErrBadState, queryComposition, raw)
		}
		st.CompositionID = id
	}
	if raw := q.Get(queryWindowSize); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return State{}, fmt.Errorf("%w: %s=%q", ErrBadState, queryWindowSize, raw)
		}
		st.WildcardsMax = n
	}
	return st, nil
}
