package maneuver

import (
	"context"

	"github.com/chandraflight/kadistate/chrono"
	"github.com/chandraflight/kadistate/telemetry"
)

// relatedMSIDs are fetched alongside aofattmd to build the merged
// change stream a maneuver's sequence is sliced from.
var relatedMSIDs = []string{"aopcadmd", "aoacaseq", "aopsacpr", "aounload"}

// Event is one detected maneuver, with its containing interval and the
// attributes/dwells extracted from the surrounding telemetry.
type Event struct {
	Tstart, Tstop       float64
	Datestart, Datestop string
	Attrs               Attrs
}

// DetectManeuvers implements the C8 maneuver algorithm (SPEC_FULL.md
// §4.6): fetch aofattmd and its related MSIDs over [start, stop],
// compute MNVR state intervals, drop the unflanked first/last interval,
// and extract attributes/dwells for each fully-bracketed maneuver.
// Tolerant per SPEC_FULL.md §7: a failed aofattmd fetch or a telemetry
// slice with fewer than 3 MNVR intervals yields an empty, non-error
// result; a related MSID whose fetch fails is skipped.
func DetectManeuvers(ctx context.Context, src telemetry.Source, start, stop string) []Event {
	fattmd, err := src.Fetch(ctx, "aofattmd", start, stop)
	if err != nil || len(fattmd.Times) == 0 {
		return nil
	}

	msids := map[string]telemetry.Series{"aofattmd": fattmd}
	for _, m := range relatedMSIDs {
		s, err := src.Fetch(ctx, m, start, stop)
		if err == nil {
			msids[m] = s
		}
	}

	states := StateIntervals(fattmd)
	states = flankAndClip(states, "MNVR", start, stop)
	if len(states) < 3 {
		return nil
	}

	changeStream := Changes(msids)

	var events []Event
	for i := 1; i+1 < len(states); i++ {
		prev, this, next := states[i-1], states[i], states[i+1]
		seq := sliceBetween(changeStream, prev.Tstop, next.Tstart, this.Tstop)
		events = append(events, Event{
			Tstart: this.Tstart, Tstop: this.Tstop,
			Datestart: this.Datestart, Datestop: this.Datestop,
			Attrs: ExtractAttrs(seq),
		})
	}
	return events
}

// flankAndClip drops a leading/trailing interval whose value already
// equals val (so both edges of the reported event were actually seen in
// telemetry) and keeps only intervals of val fully inside [start, stop]
// (SPEC_FULL.md §4.6 step 2).
func flankAndClip(states []StateInterval, val, start, stop string) []StateInterval {
	if len(states) == 0 {
		return nil
	}
	if states[0].Val == val {
		states = states[1:]
	}
	if len(states) > 0 && states[len(states)-1].Val == val {
		states = states[:len(states)-1]
	}
	startSecs, err1 := chrono.DateToSecs(start)
	stopSecs, err2 := chrono.DateToSecs(stop)
	if err1 != nil || err2 != nil {
		return nil
	}
	var out []StateInterval
	for _, s := range states {
		if s.Val == val && s.Tstart >= startSecs && s.Tstop <= stopSecs {
			out = append(out, s)
		}
	}
	return out
}
