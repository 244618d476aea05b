// Package telemetry specifies the engineering-telemetry collaborator
// the maneuver/event detector reads from (SPEC_FULL.md §6): a Source
// returning a time-ordered Series for one MSID over a date range. The
// real telemetry archive and its HTTP/database access are out of scope;
// Static is the in-memory fixture used by tests.
package telemetry

import (
	"context"
	"sort"

	"github.com/chandraflight/kadistate/chrono"
)

// Series is one MSID's sampled value-change stream: parallel Times
// (mission seconds) and Values, already sorted by time.
type Series struct {
	MSID   string
	Times  []float64
	Values []any
}

// Dates returns Times converted to canonical date strings.
func (s Series) Dates() []string {
	out := make([]string, len(s.Times))
	for i, t := range s.Times {
		out[i] = chrono.SecsToDate(t)
	}
	return out
}

// At returns the value in effect at the given mission-seconds time
// (the last sample at or before t), and whether the series has any
// sample at or before t at all.
func (s Series) At(t float64) (any, bool) {
	if len(s.Times) == 0 || t < s.Times[0] {
		return nil, false
	}
	i := sort.Search(len(s.Times), func(i int) bool { return s.Times[i] > t })
	return s.Values[i-1], true
}

// Source fetches the value-change stream for msid over [start, stop).
type Source interface {
	Fetch(ctx context.Context, msid string, start, stop string) (Series, error)
}

// Static is an in-memory Source over a fixed set of per-MSID series,
// for tests.
type Static struct {
	series map[string]Series
}

// NewStatic builds a Static telemetry source from a set of series,
// sorting each by time.
func NewStatic(series []Series) *Static {
	m := make(map[string]Series, len(series))
	for _, s := range series {
		cp := Series{MSID: s.MSID, Times: append([]float64(nil), s.Times...), Values: append([]any(nil), s.Values...)}
		sort.Sort(byTime(cp))
		m[s.MSID] = cp
	}
	return &Static{series: m}
}

// Fetch implements Source.
func (s *Static) Fetch(ctx context.Context, msid string, start, stop string) (Series, error) {
	full, ok := s.series[msid]
	if !ok {
		return Series{MSID: msid}, nil
	}
	startSecs, err := chrono.DateToSecs(start)
	if err != nil {
		return Series{}, err
	}
	stopSecs, err := chrono.DateToSecs(stop)
	if err != nil {
		return Series{}, err
	}
	out := Series{MSID: msid}
	for i, t := range full.Times {
		if t < startSecs || t >= stopSecs {
			continue
		}
		out.Times = append(out.Times, t)
		out.Values = append(out.Values, full.Values[i])
	}
	return out, nil
}

type byTime Series

func (b byTime) Len() int           { return len(b.Times) }
func (b byTime) Less(i, j int) bool { return b.Times[i] < b.Times[j] }
func (b byTime) Swap(i, j int) {
	b.Times[i], b.Times[j] = b.Times[j], b.Times[i]
	b.Values[i], b.Values[j] = b.Values[j], b.Values[i]
}
