package maneuver

import (
	"testing"

	"github.com/chandraflight/kadistate/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangesSortsByTimeThenRank(t *testing.T) {
	msids := map[string]telemetry.Series{
		"aopcadmd": {Times: []float64{0, 100}, Values: []any{"NMAN", "NPNT"}},
		"aofattmd": {Times: []float64{0, 100}, Values: []any{"STDY", "MNVR"}},
	}
	changes := Changes(msids)
	require.Len(t, changes, 2)
	assert.Equal(t, "aofattmd", changes[0].MSID, "same time0: aofattmd outranks aopcadmd")
	assert.Equal(t, "aopcadmd", changes[1].MSID)
}

func TestChangesSkipsNoOpSamples(t *testing.T) {
	msids := map[string]telemetry.Series{
		"aopcadmd": {Times: []float64{0, 10, 20}, Values: []any{"NMAN", "NMAN", "NPNT"}},
	}
	changes := Changes(msids)
	require.Len(t, changes, 1)
	assert.Equal(t, "NMAN", changes[0].Val0)
	assert.Equal(t, "NPNT", changes[0].Val)
}

func TestSliceBetweenFiltersToWindowAndAnnotatesDt(t *testing.T) {
	changes := []Change{
		{MSID: "aopcadmd", Time0: 0, Time: 1},
		{MSID: "aoacaseq", Time0: 50, Time: 51},
		{MSID: "aoacaseq", Time0: 500, Time: 501},
	}
	out := sliceBetween(changes, 0, 500, 100)
	require.Len(t, out, 2, "aopcadmd always kept; the before-manvr-end aoacaseq row is dropped")
	assert.Equal(t, "aopcadmd", out[0].MSID)
	assert.Equal(t, "aoacaseq", out[1].MSID)
	assert.Greater(t, out[1].Dt, 0.0)
}
