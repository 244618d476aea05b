package rules

import (
	"github.com/chandraflight/kadistate/astro"
	"github.com/chandraflight/kadistate/chrono"
	"github.com/chandraflight/kadistate/command"
	"github.com/chandraflight/kadistate/interp"
)

// maneuverRule is R-Maneuver: an AOMANUVR command queues a function
// action that runs at the command's date and expands, from the current
// and target attitude in the live state, into an interpolated attitude
// profile (SPEC_FULL.md
// §4.2, grounded on the maneuver add_transitions/add_manvr_transitions
// logic in the original command-state model).
func maneuverRule() Rule {
	return Rule{
		Name:      "maneuver",
		Match:     matchSW("AOMANUVR"),
		StateKeys: ManvrStateKeys,
		Emit: func(c command.Command) (interp.Transition, error) {
			t := interp.Transition{Date: c.Date}
			t.Invoke(interp.ActionManeuverExpand, map[string]any{"date": c.Date})
			return t, nil
		},
	}
}

// normalSunRule is R-NormalSun: an AONSMSAF (normal sun mode safing)
// command sets pcad_mode=NSUN and queues the normal-sun variant of the
// maneuver expansion, which computes its own target attitude instead of
// reading targ_q1..q4 from the command stream.
func normalSunRule() Rule {
	return Rule{
		Name:      "normal_sun",
		Match:     matchSW("AONSMSAF"),
		StateKeys: ManvrStateKeys,
		Emit: func(c command.Command) (interp.Transition, error) {
			t := interp.Transition{Date: c.Date}
			t.Set(KeyPcadMode, interp.Known("NSUN"))
			t.Invoke(interp.ActionNormalSunExpand, map[string]any{"date": c.Date})
			return t, nil
		},
	}
}

// currentQuat and targetQuat read the live attitude state into an
// astro.Quat: an Unknown component reads as 0, and a quaternion with all
// components 0 becomes the identity attitude. expandManeuver starts the
// slew from the target when any current component is Unknown, so a
// maneuver expansion before the first attitude is known degrades to a
// zero-length slew rather than erroring.
func currentQuat(s interp.State) astro.Quat {
	return readQuat(s, QCs)
}

func targetQuat(s interp.State) astro.Quat {
	return readQuat(s, TargQCs)
}

func readQuat(s interp.State, keys []string) astro.Quat {
	var q astro.Quat
	for i, k := range keys {
		if v, ok := s[k].Float64(); ok {
			q[i] = v
		}
	}
	if q == (astro.Quat{}) {
		q[3] = 1 // identity quaternion
	}
	return q
}

// expandManeuver is shared by ActionManeuverExpand and
// ActionNormalSunExpand: it samples the slew from curr to targ starting
// at ctx's date and inserts one transition per sample, each carrying the
// sampled attitude, pitch and the derived ra/dec/roll/off_nom_roll keys
// (SPEC_FULL.md §3a).
func expandManeuver(ctx *interp.ActionContext, targ astro.Quat) error {
	tstart, err := chrono.DateToSecs(ctx.Date)
	if err != nil {
		return err
	}
	curr := currentQuat(ctx.State)
	for _, k := range QCs {
		if !ctx.State[k].IsKnown() {
			curr = targ
			break
		}
	}
	samples := astro.Attitudes(curr, targ, tstart)
	autoNPNT := ctx.State[KeyAutoNpnt].String() == "ENAB"
	var lastDate string
	for i, sample := range samples {
		// Pitch is forward-averaged between consecutive samples, the last
		// sample keeping its own raw value (states.py:280).
		pitch := sample.Pitch
		if i < len(samples)-1 {
			pitch = (sample.Pitch + samples[i+1].Pitch) / 2
		}
		date := chrono.SecsToDate(sample.Time)
		lastDate = date
		ra, dec, roll := astro.QuatToRADecRoll(sample.Q)
		nt := interp.Transition{Date: date}
		nt.Set(KeyQ1, interp.Known(sample.Q[0]))
		nt.Set(KeyQ2, interp.Known(sample.Q[1]))
		nt.Set(KeyQ3, interp.Known(sample.Q[2]))
		nt.Set(KeyQ4, interp.Known(sample.Q[3]))
		nt.Set(KeyPitch, interp.Known(pitch))
		nt.Set(KeyRA, interp.Known(ra))
		nt.Set(KeyDec, interp.Known(dec))
		nt.Set(KeyRoll, interp.Known(roll))
		nt.Set(KeyOffNomRoll, interp.Known(roll-astro.NominalRoll(ra, dec)))
		if err := ctx.AddTransition(nt); err != nil {
			return err
		}
	}
	// P7: a maneuver commanded with auto_npnt == ENAB automatically
	// transitions back to NPNT once the slew completes; with DISA the
	// spacecraft stays in whatever pcad_mode the attitude samples left
	// it in (SPEC_FULL.md §8, P7).
	if autoNPNT && lastDate != "" {
		coda := interp.Transition{Date: lastDate}
		coda.Set(KeyPcadMode, interp.Known("NPNT"))
		if err := ctx.AddTransition(coda); err != nil {
			return err
		}
	}
	return nil
}

// maneuverExpandAction implements ActionManeuverExpand: slew from the
// current attitude to the target attitude already written by a prior
// R-Quat transition.
func maneuverExpandAction(ctx *interp.ActionContext) error {
	return expandManeuver(ctx, targetQuat(ctx.State))
}

// normalSunExpandAction implements ActionNormalSunExpand: slew from the
// current attitude to the sun-pointed safing attitude computed by the
// astronomy kernel rather than a commanded target quaternion.
func normalSunExpandAction(ctx *interp.ActionContext) error {
	curr := currentQuat(ctx.State)
	targ := astro.NSMAttitude(curr, ctx.Date)
	return expandManeuver(ctx, targ)
}
