// Package metrics defines the instrument abstraction used throughout
// this module (SPEC_FULL.md §4.9): counters, gauges, histograms and
// timers behind a backend-neutral Provider, so the interpreter and
// event detector never import Prometheus or OpenTelemetry directly.
// Adapted from the teacher's internal metrics provider abstraction.
package metrics

import "context"

// Provider is the minimal metrics provider contract every backend
// (noop, Prometheus, OpenTelemetry) implements.
type Provider interface {
	NewCounter(opts CounterOpts) Counter
	NewGauge(opts GaugeOpts) Gauge
	NewHistogram(opts HistogramOpts) Histogram
	NewTimer(h HistogramOpts) func() Timer
	Health(ctx context.Context) error
}

// Counter is a monotonically increasing instrument.
type Counter interface{ Inc(delta float64, labels ...string) }

// Gauge is a point-in-time instrument.
type Gauge interface {
	Set(v float64, labels ...string)
	Add(delta float64, labels ...string)
}

// Histogram records a distribution of observed values.
type Histogram interface{ Observe(v float64, labels ...string) }

// Timer observes the duration since it was created.
type Timer interface{ ObserveDuration(labels ...string) }

// CommonOpts names an instrument; Namespace/Subsystem compose into the
// backend's naming convention (Prometheus: underscore-joined FQ name;
// OTel: dot-joined).
type CommonOpts struct {
	Namespace, Subsystem, Name, Help string
	Labels                           []string
}

type CounterOpts struct{ CommonOpts }
type GaugeOpts struct{ CommonOpts }
type HistogramOpts struct {
	CommonOpts
	Buckets []float64
}

// noop backend ---------------------------------------------------------

type noopProvider struct{}
type noopCounter struct{}
type noopGauge struct{}
type noopHistogram struct{}
type noopTimer struct{}

// NewNoopProvider returns a Provider that discards every observation;
// the default when no metrics backend is configured.
func NewNoopProvider() Provider { return &noopProvider{} }

func (p *noopProvider) NewCounter(CounterOpts) Counter            { return noopCounter{} }
func (p *noopProvider) NewGauge(GaugeOpts) Gauge                  { return noopGauge{} }
func (p *noopProvider) NewHistogram(HistogramOpts) Histogram      { return noopHistogram{} }
func (p *noopProvider) NewTimer(HistogramOpts) func() Timer       { return func() Timer { return noopTimer{} } }
func (p *noopProvider) Health(context.Context) error              { return nil }
func (noopCounter) Inc(float64, ...string)                        {}
func (noopGauge) Set(float64, ...string)                          {}
func (noopGauge) Add(float64, ...string)                          {}
func (noopHistogram) Observe(float64, ...string)                  {}
func (noopTimer) ObserveDuration(...string)                       {}
