package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOTelProviderInstrumentsDoNotPanic(t *testing.T) {
	p := NewOTelProvider(OTelProviderOptions{ServiceName: "kadistate-test"})

	c := p.NewCounter(CounterOpts{CommonOpts{Namespace: "chandra", Subsystem: "interp", Name: "runs_total", Labels: []string{"outcome"}}})
	g := p.NewGauge(GaugeOpts{CommonOpts{Name: "pitch_deg"}})
	h := p.NewHistogram(HistogramOpts{CommonOpts: CommonOpts{Name: "run_duration_seconds"}})
	timer := p.NewTimer(HistogramOpts{CommonOpts: CommonOpts{Name: "other_duration_seconds"}})()

	assert.NotPanics(t, func() {
		c.Inc(1, "ok")
		g.Set(5)
		g.Add(-1)
		h.Observe(0.25)
		timer.ObserveDuration()
	})
	assert.NoError(t, p.Health(context.Background()))
}

func TestOTelProviderDefaultsServiceName(t *testing.T) {
	p := NewOTelProvider(OTelProviderOptions{})
	assert.NotNil(t, p)
}

func TestBuildOTelNameJoinsWithDots(t *testing.T) {
	assert.Equal(t, "chandra.interp.runs_total", buildOTelName(CommonOpts{Namespace: "chandra", Subsystem: "interp", Name: "runs_total"}))
	assert.Equal(t, "chandra.runs_total", buildOTelName(CommonOpts{Namespace: "chandra", Name: "runs_total"}))
	assert.Equal(t, "interp.runs_total", buildOTelName(CommonOpts{Subsystem: "interp", Name: "runs_total"}))
	assert.Equal(t, "runs_total", buildOTelName(CommonOpts{Name: "runs_total"}))
}
