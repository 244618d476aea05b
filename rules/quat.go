package rules

import (
	"github.com/chandraflight/kadistate/command"
	"github.com/chandraflight/kadistate/interp"
)

// quatRule is R-Quat: an MP_TARGQUAT command copies its four quaternion
// components into the target-attitude state keys. It never touches the
// live q1..q4 keys — only ActionManeuverExpand/ActionNormalSunExpand
// move the spacecraft's current attitude (SPEC_FULL.md §4.2).
func quatRule() Rule {
	return Rule{
		Name:      "targ_quat",
		Match:     matchType(command.TypeMPTargQuat),
		StateKeys: TargQCs,
		Emit: func(c command.Command) (interp.Transition, error) {
			q1, q2, q3, q4, ok := c.Quat()
			if !ok {
				return interp.Transition{}, &interp.BadParameter{Date: c.Date, Key: "q1..q4"}
			}
			t := interp.Transition{Date: c.Date}
			t.Set(KeyTargQ1, interp.Known(q1))
			t.Set(KeyTargQ2, interp.Known(q2))
			t.Set(KeyTargQ3, interp.Known(q3))
			t.Set(KeyTargQ4, interp.Known(q4))
			return t, nil
		},
	}
}
