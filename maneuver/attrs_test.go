package maneuver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchBeforeAndAfterFiltering(t *testing.T) {
	changes := []Change{
		{MSID: "aopcadmd", Val: "NMAN", Date: "before1", Dt: -10},
		{MSID: "aopcadmd", Val: "NPNT", Date: "after1", Dt: 10},
	}
	before, ok := match(changes, "aopcadmd", "NMAN", -1, "before")
	require.True(t, ok)
	assert.Equal(t, "before1", before)

	after, ok := match(changes, "aopcadmd", "NPNT", 0, "after")
	require.True(t, ok)
	assert.Equal(t, "after1", after)

	_, ok = match(changes, "aopcadmd", "NPNT", 0, "before")
	assert.False(t, ok)
}

func TestMatchNegatedValue(t *testing.T) {
	changes := []Change{
		{MSID: "aofattmd", Val: "MNVR", Date: "d1", Dt: 1},
		{MSID: "aofattmd", Val: "STDY", Date: "d2", Dt: 2},
	}
	got, ok := match(changes, "aofattmd", "!MNVR", 0, "after")
	require.True(t, ok)
	assert.Equal(t, "d2", got)
}

func TestExtractAttrsNominalSequence(t *testing.T) {
	seq := []Change{
		{MSID: "aofattmd", Val0: "STDY", Val: "MNVR", Date: "manvr_start", Dt: -5},
		{MSID: "aofattmd", Val0: "MNVR", Val: "STDY", Date: "manvr_stop", Dt: 0},
		{MSID: "aopcadmd", Val0: "NMAN", Val: "NPNT", Date: "npnt_start", Dt: 1},
		{MSID: "aoacaseq", Val0: "STDY", Val: "AQXN", Date: "acq_start", Dt: 2},
		{MSID: "aoacaseq", Val0: "AQXN", Val: "GUID", Date: "guide_start", Dt: 3},
		{MSID: "aoacaseq", Val0: "GUID", Val: "KALM", Date: "kalman_start", Time: 400, Dt: 4},
		{MSID: "aopcadmd", Val0: "NPNT", Val: "NMAN", Date0: "next_nman", Time0: 5000, Dt: 5},
	}
	a := ExtractAttrs(seq)
	assert.Equal(t, "manvr_start", a.ManvrStart)
	assert.Equal(t, "manvr_stop", a.ManvrStop)
	assert.Equal(t, "npnt_start", a.NpntStart)
	assert.Equal(t, "acq_start", a.AcqStart)
	assert.Equal(t, "guide_start", a.GuideStart)
	assert.Equal(t, "kalman_start", a.KalmanStart)
	assert.False(t, a.Anomalous)
	assert.Equal(t, 1, a.NKalman)
	assert.Equal(t, 1, a.NDwell)
}

func TestExtractAttrsFlagsAnomalousValue(t *testing.T) {
	seq := []Change{
		{MSID: "aopcadmd", Val0: "NMAN", Val: "STBY", Date: "weird", Dt: 1},
	}
	a := ExtractAttrs(seq)
	assert.True(t, a.Anomalous)
}
