package metrics

import "time"

// Domain groups every instrument the interpreter and event detector
// emit, constructed once from whatever Provider the caller configured
// (SPEC_FULL.md §4.9).
type Domain struct {
	InterpreterRuns     Counter // labels: outcome (ok|error)
	TransitionsApplied  Counter // labels: kind (set|action)
	RowsEmitted         Counter
	InterpreterDuration func() Timer
	ManeuversDetected   Counter // labels: template
	BootstrapLookbacks  Counter // labels: outcome (found|exhausted)
	ConfigReloads       Counter // labels: outcome (ok|error)
	ArchiveLookups      Counter // labels: source
}

// NewDomain builds every instrument against p. Pass metrics.NewNoopProvider()
// for a deployment with metrics disabled.
func NewDomain(p Provider) *Domain {
	ns := "chandra"
	return &Domain{
		InterpreterRuns: p.NewCounter(CounterOpts{CommonOpts{
			Namespace: ns, Subsystem: "interp", Name: "runs_total",
			Help: "Number of interpreter passes executed.", Labels: []string{"outcome"},
		}}),
		TransitionsApplied: p.NewCounter(CounterOpts{CommonOpts{
			Namespace: ns, Subsystem: "interp", Name: "transitions_applied_total",
			Help: "Number of transition entries applied across all passes.", Labels: []string{"kind"},
		}}),
		RowsEmitted: p.NewCounter(CounterOpts{CommonOpts{
			Namespace: ns, Subsystem: "interp", Name: "rows_emitted_total",
			Help: "Number of state-interval rows emitted.",
		}}),
		InterpreterDuration: p.NewTimer(HistogramOpts{CommonOpts: CommonOpts{
			Namespace: ns, Subsystem: "interp", Name: "run_duration_seconds",
			Help: "Wall-clock duration of a single interpreter pass.",
		}}),
		ManeuversDetected: p.NewCounter(CounterOpts{CommonOpts{
			Namespace: ns, Subsystem: "maneuver", Name: "events_detected_total",
			Help: "Number of maneuver/dwell events the detector emitted.", Labels: []string{"template"},
		}}),
		BootstrapLookbacks: p.NewCounter(CounterOpts{CommonOpts{
			Namespace: ns, Subsystem: "bootstrap", Name: "lookbacks_total",
			Help: "Number of historical lookback searches performed to seed state0.", Labels: []string{"outcome"},
		}}),
		ConfigReloads: p.NewCounter(CounterOpts{CommonOpts{
			Namespace: ns, Subsystem: "config", Name: "reloads_total",
			Help: "Number of configuration hot-reload attempts.", Labels: []string{"outcome"},
		}}),
		ArchiveLookups: p.NewCounter(CounterOpts{CommonOpts{
			Namespace: ns, Subsystem: "archive", Name: "lookups_total",
			Help: "Number of command-archive lookups issued.", Labels: []string{"source"},
		}}),
	}
}

// Since is a small helper so callers can write
// `defer d.InterpreterDuration()().ObserveDuration()`-free code; it
// returns the elapsed seconds since start, matching the Timer contract
// for call sites that already hold a time.Time rather than a factory.
func Since(start time.Time) float64 { return time.Since(start).Seconds() }
