package maneuver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyMatchesNormalTemplate(t *testing.T) {
	seq := []Change{
		{MSID: "aofattmd", Val0: "MNVR", Val: "STDY", Dt: 0},
		{MSID: "aopcadmd", Val0: "NMAN", Val: "NPNT", Dt: 1},
		{MSID: "aoacaseq", Val0: "AQXN", Val: "GUID", Dt: 2},
		{MSID: "aoacaseq", Val0: "GUID", Val: "KALM", Dt: 3},
	}
	assert.Equal(t, "normal", classify(seq))
}

func TestClassifyIgnoresBeforeManeuverRows(t *testing.T) {
	seq := []Change{
		{MSID: "aopcadmd", Val0: "STBY", Val: "NMAN", Dt: -5},
		{MSID: "aofattmd", Val0: "MNVR", Val: "STDY", Dt: 0},
		{MSID: "aopcadmd", Val0: "NMAN", Val: "NPNT", Dt: 1},
		{MSID: "aoacaseq", Val0: "AQXN", Val: "GUID", Dt: 2},
		{MSID: "aoacaseq", Val0: "GUID", Val: "KALM", Dt: 3},
	}
	assert.Equal(t, "normal", classify(seq))
}

func TestClassifyUnrecognizedSequenceIsUnknown(t *testing.T) {
	seq := []Change{
		{MSID: "aofattmd", Val0: "MNVR", Val: "STDY", Dt: 0},
		{MSID: "aopcadmd", Val0: "NMAN", Val: "NPNT", Dt: 1},
		{MSID: "aoacaseq", Val0: "AQXN", Val: "GUID", Dt: 2},
	}
	assert.Equal(t, "unknown", classify(seq))
}
