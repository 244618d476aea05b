package rules

import (
	"github.com/chandraflight/kadistate/command"
	"github.com/chandraflight/kadistate/interp"
)

// ditherParamRule is a reconstruction: the retrieved original source
// exercises dither_ampl_pitch/yaw and dither_period/phase_pitch/yaw in
// its test suite, but no transition class defining them was present in
// the retrieved command-state model (see DESIGN.md, Open Question).
// It is modeled here on the R-Param pattern, as a single AODITPARM
// COMMAND_SW packet carrying all six dither parameters at once, which
// matches how the real spacecraft dither-parameter load command works.
func ditherParamRule() Rule {
	params := []struct {
		param string
		key   string
	}{
		{"ampl_pitch", KeyDitherAmplPitch},
		{"ampl_yaw", KeyDitherAmplYaw},
		{"period_pitch", KeyDitherPeriodPitch},
		{"period_yaw", KeyDitherPeriodYaw},
		{"phase_pitch", KeyDitherPhasePitch},
		{"phase_yaw", KeyDitherPhaseYaw},
	}
	return Rule{
		Name:      "dither_param",
		Match:     matchSW("AODITPARM"),
		StateKeys: DitherParamStateKeys,
		Emit: func(c command.Command) (interp.Transition, error) {
			t := interp.Transition{Date: c.Date}
			for _, p := range params {
				v, ok := c.Lookup(p.param)
				if !ok {
					continue
				}
				t.Set(p.key, interp.Known(v))
			}
			return t, nil
		},
	}
}
