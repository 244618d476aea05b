package rules

import "github.com/chandraflight/kadistate/interp"

// Dispatcher builds the function-action dispatch table the interpreter
// needs to run a transition list produced by this package's rules
// (SPEC_FULL.md §4.3). It is the only place ActionID values are bound
// to behavior, keeping package interp itself domain-agnostic.
func Dispatcher() interp.Dispatcher {
	return interp.Dispatcher{
		interp.ActionManeuverExpand:  maneuverExpandAction,
		interp.ActionNormalSunExpand: normalSunExpandAction,
		interp.ActionPitchResample:   pitchResampleAction,
	}
}
