package interp

// ActionContext is everything a function action receives: the date it
// fires at, the mutable transition list and cursor (for inserting new,
// strictly-later transitions), the live state (mutable in place), and
// the parameters bound at registration time.
type ActionContext struct {
	Date  string
	List  *List
	State State
	Index int
	Bound map[string]any
}

// AddTransition inserts a new transition strictly after the action's
// current cursor, per the add_transition contract (SPEC_FULL.md §4.3).
func (c *ActionContext) AddTransition(t Transition) error {
	return c.List.Insert(c.Index, t)
}

// Action is one callback a Dispatcher can run.
type Action func(ctx *ActionContext) error

// Dispatcher maps each ActionID to its implementation. interp never
// constructs one itself — package rules builds the dispatch table from
// its compound rule implementations, keeping domain logic (what a
// maneuver expansion does) out of this package (what an interpretation
// pass mechanically does).
type Dispatcher map[ActionID]Action

// Result is the output of a single interpreter pass: a contiguous table
// of state-interval rows.
type Result struct {
	Keys      []string
	Datestart []string
	Datestop  []string
	Rows      []State
}

// Run folds ts left-to-right over an initial state seeded from state0,
// dispatching function actions through d and emitting one row per
// distinct datestart (SPEC_FULL.md §4.3 steps 5-7). ts must already
// include every rule emission and any periodic sampling transitions the
// caller wants folded in (package rules assembles both before calling
// Run).
func Run(keys []string, ts []Transition, state0 State, d Dispatcher, futureSentinel string) (*Result, error) {
	if len(ts) == 0 {
		return nil, &NoTransitionsError{Keys: keys}
	}

	list := NewList(ts)
	state := NewState(keys, state0)

	res := &Result{Keys: keys}
	var datestarts []string

	for i := 0; i < list.Len(); i++ {
		t := list.At(i)
		if len(datestarts) == 0 || t.Date != datestarts[len(datestarts)-1] {
			state = state.Clone()
			res.Rows = append(res.Rows, state)
			datestarts = append(datestarts, t.Date)
		}

		for _, e := range t.Entries {
			if e.Action == nil {
				state[e.Key] = e.Value
				continue
			}
			fn, ok := d[e.Action.ID]
			if !ok {
				continue
			}
			ctx := &ActionContext{Date: t.Date, List: list, State: state, Index: i, Bound: e.Action.Bound}
			if err := fn(ctx); err != nil {
				return nil, err
			}
		}
	}

	res.Datestart = datestarts
	res.Datestop = make([]string, len(datestarts))
	for i := 0; i < len(datestarts)-1; i++ {
		res.Datestop[i] = datestarts[i+1]
	}
	if n := len(datestarts); n > 0 {
		res.Datestop[n-1] = futureSentinel
	}
	return res, nil
}
