package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopProviderDiscardsEverything(t *testing.T) {
	p := NewNoopProvider()
	c := p.NewCounter(CounterOpts{CommonOpts{Name: "x"}})
	g := p.NewGauge(GaugeOpts{CommonOpts{Name: "y"}})
	h := p.NewHistogram(HistogramOpts{CommonOpts: CommonOpts{Name: "z"}})
	timer := p.NewTimer(HistogramOpts{CommonOpts: CommonOpts{Name: "w"}})()

	assert.NotPanics(t, func() {
		c.Inc(1)
		g.Set(2)
		g.Add(1)
		h.Observe(3)
		timer.ObserveDuration()
	})
	assert.NoError(t, p.Health(context.Background()))
}
