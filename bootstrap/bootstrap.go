// Package bootstrap implements the state reducer (C7) and the
// get_state0 historical lookback procedure (SPEC_FULL.md §4.4, §4.5):
// the two operations that let a caller go from "any instant" to a
// usable starting state, without needing the full command history back
// to mission launch.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/chandraflight/kadistate/archive"
	"github.com/chandraflight/kadistate/chrono"
	"github.com/chandraflight/kadistate/interp"
	"github.com/chandraflight/kadistate/rules"
)

// DefaultLookbackDays is the canonical widening search window get_state0
// tries in order before giving up.
var DefaultLookbackDays = []int{7, 30, 180, 1000}

// LookbackExhausted is returned when get_state0 could not find a
// complete state (no Unknown values among the requested keys) within
// any of the attempted lookback windows.
type LookbackExhausted struct {
	Date      string
	Keys      []string
	Lookbacks []int
}

func (e *LookbackExhausted) Error() string {
	return fmt.Sprintf("bootstrap: did not find transitions for %v before %s within lookbacks %v", e.Keys, e.Date, e.Lookbacks)
}

// Reduce implements reduce_states: keep row 0 and every row that
// differs from its predecessor in at least one of keys, re-deriving
// datestop so consecutive kept rows remain contiguous (SPEC_FULL.md
// §4.4, invariant I4: idempotent under repeated reduction over the
// same key set).
func Reduce(res *interp.Result, keys []string) *interp.Result {
	if res == nil || len(res.Rows) == 0 {
		return res
	}
	out := &interp.Result{Keys: res.Keys}
	keptIdx := []int{0}
	for i := 1; i < len(res.Rows); i++ {
		if rowDiffers(res.Rows[i-1], res.Rows[i], keys) {
			keptIdx = append(keptIdx, i)
		}
	}
	for n, i := range keptIdx {
		out.Rows = append(out.Rows, res.Rows[i])
		out.Datestart = append(out.Datestart, res.Datestart[i])
		if n+1 < len(keptIdx) {
			out.Datestop = append(out.Datestop, res.Datestart[keptIdx[n+1]])
		} else {
			out.Datestop = append(out.Datestop, res.Datestop[len(res.Datestop)-1])
		}
	}
	return out
}

func rowDiffers(a, b interp.State, keys []string) bool {
	for _, k := range keys {
		if !a[k].Equal(b[k]) {
			return true
		}
	}
	return false
}

// GetState0 runs the full rule-closure interpretation over widening
// lookback windows ending at date, returning the final row of the first
// window whose result carries no Unknown value for any requested key
// (SPEC_FULL.md §4.5, P5).
func GetState0(ctx context.Context, reg *rules.Registry, finder archive.Finder, date string, requested []string, lookbackDays []int) (interp.State, error) {
	if len(lookbackDays) == 0 {
		lookbackDays = DefaultLookbackDays
	}
	stopSecs, err := chrono.DateToSecs(date)
	if err != nil {
		return nil, err
	}
	matched, keys := reg.Closure(requested)
	dispatcher := rules.Dispatcher()

	for _, days := range lookbackDays {
		startSecs := stopSecs - float64(days)*24*time.Hour.Seconds()
		start := chrono.SecsToDate(startSecs)
		cmds, err := finder.Find(ctx, start, date, archive.Filter{})
		if err != nil {
			return nil, err
		}
		if len(cmds) == 0 {
			continue
		}
		transitions, err := rules.Emit(matched, cmds)
		if err != nil {
			return nil, err
		}
		if len(transitions) == 0 {
			continue
		}
		res, err := interp.Run(keys, transitions, nil, dispatcher, chrono.FutureSentinel)
		if err != nil {
			if _, ok := err.(*interp.NoTransitionsError); ok {
				continue
			}
			return nil, err
		}
		final := res.Rows[len(res.Rows)-1]
		if complete(final, requested) {
			return final, nil
		}
	}
	return nil, &LookbackExhausted{Date: date, Keys: requested, Lookbacks: lookbackDays}
}

func complete(s interp.State, keys []string) bool {
	for _, k := range keys {
		if !s[k].IsKnown() {
			return false
		}
	}
	return true
}
