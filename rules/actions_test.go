package rules

import (
	"testing"

	"github.com/chandraflight/kadistate/interp"
	"github.com/stretchr/testify/assert"
)

func TestDispatcherRegistersAllActions(t *testing.T) {
	d := Dispatcher()
	assert.Contains(t, d, interp.ActionManeuverExpand)
	assert.Contains(t, d, interp.ActionNormalSunExpand)
	assert.Contains(t, d, interp.ActionPitchResample)
}
