package telemetry

import (
	"context"
	"testing"

	"github.com/chandraflight/kadistate/chrono"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesAtReturnsLastSampleAtOrBefore(t *testing.T) {
	s := Series{Times: []float64{0, 10, 20}, Values: []any{"A", "B", "C"}}
	v, ok := s.At(15)
	require.True(t, ok)
	assert.Equal(t, "B", v)

	v, ok = s.At(20)
	require.True(t, ok)
	assert.Equal(t, "C", v)

	_, ok = s.At(-1)
	assert.False(t, ok)
}

func TestSeriesDates(t *testing.T) {
	s := Series{Times: []float64{0}}
	dates := s.Dates()
	require.Len(t, dates, 1)
	assert.Equal(t, chrono.SecsToDate(0), dates[0])
}

func TestStaticFetchFiltersRangeAndSorts(t *testing.T) {
	unsorted := Series{
		MSID:   "aopcadmd",
		Times:  []float64{20, 0, 10},
		Values: []any{"NPNT", "NMAN", "MNVR"},
	}
	src := NewStatic([]Series{unsorted})

	start := chrono.SecsToDate(5)
	stop := chrono.SecsToDate(25)
	out, err := src.Fetch(context.Background(), "aopcadmd", start, stop)
	require.NoError(t, err)
	require.Equal(t, []float64{10, 20}, out.Times)
	assert.Equal(t, []any{"MNVR", "NPNT"}, out.Values)
}

func TestStaticFetchUnknownMSIDReturnsEmptySeries(t *testing.T) {
	src := NewStatic(nil)
	out, err := src.Fetch(context.Background(), "unknown", chrono.SecsToDate(0), chrono.SecsToDate(100))
	require.NoError(t, err)
	assert.Empty(t, out.Times)
}

func TestStaticFetchDoesNotMutateInput(t *testing.T) {
	orig := Series{MSID: "m", Times: []float64{5, 1}, Values: []any{"b", "a"}}
	NewStatic([]Series{orig})
	assert.Equal(t, []float64{5, 1}, orig.Times, "caller's slice must be untouched")
}
