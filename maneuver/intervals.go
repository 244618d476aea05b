// Package maneuver implements the telemetry-driven event detector (C8):
// maneuver/dwell extraction, SIM-motion and momentum-dump/eclipse
// events, all built on contiguous state-interval extraction over
// sampled engineering telemetry (SPEC_FULL.md §4.6). It consumes
// telemetry, never commands, and is tolerant of malformed input: a
// detector call returns an empty event list rather than an error.
package maneuver

import (
	"fmt"

	"github.com/chandraflight/kadistate/chrono"
	"github.com/chandraflight/kadistate/telemetry"
)

// StateInterval is one contiguous run of an identical MSID value.
type StateInterval struct {
	Val                string
	Tstart, Tstop       float64
	Datestart, Datestop string
}

// StateIntervals collapses a value-change series into contiguous runs.
func StateIntervals(s telemetry.Series) []StateInterval {
	if len(s.Times) == 0 {
		return nil
	}
	var out []StateInterval
	cur := StateInterval{Val: fmt.Sprint(s.Values[0]), Tstart: s.Times[0]}
	for i := 1; i < len(s.Times); i++ {
		v := fmt.Sprint(s.Values[i])
		if v != cur.Val {
			cur.Tstop = s.Times[i]
			cur.Datestart = chrono.SecsToDate(cur.Tstart)
			cur.Datestop = chrono.SecsToDate(cur.Tstop)
			out = append(out, cur)
			cur = StateInterval{Val: v, Tstart: s.Times[i]}
		}
	}
	cur.Tstop = s.Times[len(s.Times)-1]
	cur.Datestart = chrono.SecsToDate(cur.Tstart)
	cur.Datestop = chrono.SecsToDate(cur.Tstop)
	out = append(out, cur)
	return out
}
