package maneuver

import (
	"context"

	"github.com/chandraflight/kadistate/chrono"
	"github.com/chandraflight/kadistate/telemetry"
)

// SimpleEvent is a detected instance of one of the single-MSID event
// kinds (SIM translation/FA move, momentum dump, eclipse): a state
// interval on event_msid == event_val, annotated with nearby related
// MSID values sampled at reldt before/after the interval's edges.
type SimpleEvent struct {
	Tstart, Tstop       float64
	Datestart, Datestop string
	StartRelated        map[string]any
	StopRelated         map[string]any
}

// SimpleEventKind names one of the single-MSID event detectors.
type SimpleEventKind struct {
	Name       string
	EventMSID  string
	EventVal   string
	RelMSIDs   []string
	RelDtSecs  float64
}

// Built-in simple event kinds (SPEC_FULL.md §1, §4.6: SIM moves,
// momentum dumps, eclipses), grounded on the TlmEvent subclasses in the
// original command-state model's sibling events module.
var (
	TscMove      = SimpleEventKind{Name: "tsc_move", EventMSID: "3tscmove", EventVal: "T", RelMSIDs: []string{"3tscpos"}, RelDtSecs: 66}
	FaMove       = SimpleEventKind{Name: "fa_move", EventMSID: "3famove", EventVal: "T", RelMSIDs: []string{"3fapos"}, RelDtSecs: 16.4}
	MomentumDump = SimpleEventKind{Name: "momentum_dump", EventMSID: "aounload", EventVal: "GRND"}
	Eclipse      = SimpleEventKind{Name: "eclipse", EventMSID: "aoeclips", EventVal: "ECL "}
)

// DetectSimpleEvents fetches kind.EventMSID and its related MSIDs over
// [start, stop] and returns one SimpleEvent per fully-contained interval
// where EventMSID == EventVal (SPEC_FULL.md §4.6; mirrors TlmEvent.get_events).
// Tolerant: a failed EventMSID fetch yields an empty result, not an
// error; a related MSID whose fetch fails is skipped.
func DetectSimpleEvents(ctx context.Context, src telemetry.Source, kind SimpleEventKind, start, stop string) []SimpleEvent {
	eventSeries, err := src.Fetch(ctx, kind.EventMSID, start, stop)
	if err != nil || len(eventSeries.Times) == 0 {
		return nil
	}
	startSecs, err1 := chrono.DateToSecs(start)
	stopSecs, err2 := chrono.DateToSecs(stop)
	if err1 != nil || err2 != nil {
		return nil
	}

	related := make(map[string]telemetry.Series, len(kind.RelMSIDs))
	for _, m := range kind.RelMSIDs {
		if s, err := src.Fetch(ctx, m, start, stop); err == nil {
			related[m] = s
		}
	}

	states := StateIntervals(eventSeries)
	if len(states) > 0 && states[0].Val == kind.EventVal {
		states = states[1:]
	}
	if len(states) > 0 && states[len(states)-1].Val == kind.EventVal {
		states = states[:len(states)-1]
	}

	var out []SimpleEvent
	for _, s := range states {
		if s.Val != kind.EventVal || s.Tstart < startSecs || s.Tstop > stopSecs {
			continue
		}
		ev := SimpleEvent{
			Tstart: s.Tstart, Tstop: s.Tstop, Datestart: s.Datestart, Datestop: s.Datestop,
			StartRelated: map[string]any{}, StopRelated: map[string]any{},
		}
		for _, m := range kind.RelMSIDs {
			rs, ok := related[m]
			if !ok {
				continue
			}
			if v, ok := rs.At(s.Tstart - kind.RelDtSecs); ok {
				ev.StartRelated[m] = v
			}
			if v, ok := rs.At(s.Tstop + kind.RelDtSecs); ok {
				ev.StopRelated[m] = v
			}
		}
		out = append(out, ev)
	}
	return out
}

// SI reports the science instrument corresponding to a SIM translation
// position, per the fixed position ranges in the original command-state
// model's sibling events module.
func SI(simpos int) string {
	switch {
	case simpos >= 82109 && simpos <= 104839:
		return "ACIS-I"
	case simpos >= 70736 && simpos <= 82108:
		return "ACIS-S"
	case simpos >= -86147 && simpos <= -20000:
		return " HRC-I"
	case simpos >= -104362 && simpos <= -86148:
		return " HRC-S"
	default:
		return "  NONE"
	}
}
