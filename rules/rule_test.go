package rules

import (
	"testing"

	"github.com/chandraflight/kadistate/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistryClosurePullsInManvrGroup(t *testing.T) {
	reg := NewRegistry()
	_, keys := reg.Closure([]string{KeyPcadMode})
	assert.Contains(t, keys, KeyPitch)
	assert.Contains(t, keys, KeyQ1)
	assert.Contains(t, keys, KeyAutoNpnt)
}

func TestClosureIsStableAndDeduplicated(t *testing.T) {
	reg := NewRegistry()
	_, keys := reg.Closure([]string{KeyObsid, KeyObsid})
	seen := map[string]int{}
	for _, k := range keys {
		seen[k]++
	}
	for k, n := range seen {
		assert.Equal(t, 1, n, k)
	}
}

func TestClosureUnrelatedKeyDoesNotPullInManvrGroup(t *testing.T) {
	reg := NewRegistry()
	_, keys := reg.Closure([]string{KeyObsid})
	assert.NotContains(t, keys, KeyQ1)
}

func TestEmitRunsMatchedRulesOverCommands(t *testing.T) {
	reg := NewRegistry()
	matched, _ := reg.Closure([]string{KeyObsid})
	cmds := []command.Command{
		{Date: "2020:001:00:00:00.000", Type: command.TypeMPObsid, Params: command.Params{"id": 1}},
		{Date: "2020:002:00:00:00.000", Type: command.TypeMPObsid, Params: command.Params{"id": 2}},
	}
	ts, err := Emit(matched, cmds)
	require.NoError(t, err)
	require.Len(t, ts, 2)
	assert.Equal(t, 1, ts[0].Entries[0].Value.Interface())
	assert.Equal(t, 2, ts[1].Entries[0].Value.Interface())
}

func TestEmitPropagatesRuleError(t *testing.T) {
	reg := NewRegistry()
	matched, _ := reg.Closure([]string{KeyObsid})
	cmds := []command.Command{{Date: "2020:001:00:00:00.000", Type: command.TypeMPObsid}}
	_, err := Emit(matched, cmds)
	assert.Error(t, err)
}
