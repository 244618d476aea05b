package interp

// State is a live mapping from state key to its current value. Every
// live state during an interpretation pass is a complete record over the
// closure of the requested keys (SPEC_FULL.md §3).
type State map[string]Value

// Clone returns a shallow copy of the state, used to snapshot a new
// output row without aliasing the live map that later transitions will
// continue to mutate.
func (s State) Clone() State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// NewState initializes every key in keys to Unknown, then overlays
// seed (the optional state0 bootstrap value).
func NewState(keys []string, seed State) State {
	s := make(State, len(keys))
	for _, k := range keys {
		s[k] = Unknown
	}
	for k, v := range seed {
		if _, ok := s[k]; ok {
			s[k] = v
		}
	}
	return s
}
