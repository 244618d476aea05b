package rules

import (
	"github.com/chandraflight/kadistate/astro"
	"github.com/chandraflight/kadistate/chrono"
	"github.com/chandraflight/kadistate/interp"
)

// PitchSampleStep is the alignment period for the periodic pitch
// sampler (C6): one recomputation every 10000s of mission time, aligned
// to a fixed epoch so overlapping interpreter invocations agree on
// sample boundaries (SPEC_FULL.md §4.6).
const PitchSampleStep = 10000.0

// PeriodicPitchSamples returns one ActionPitchResample transition at
// every PitchSampleStep-aligned time in [start, stop), for the
// interpreter to fold in alongside the rule-emitted transitions
// (SPEC_FULL.md §4.6, C6).
func PeriodicPitchSamples(start, stop float64) []interp.Transition {
	aligned := chrono.AlignedFloor(start, PitchSampleStep)
	var out []interp.Transition
	for _, secs := range chrono.SecsRange(aligned, stop, PitchSampleStep) {
		if secs < start {
			continue
		}
		t := interp.Transition{Date: chrono.SecsToDate(secs)}
		t.Invoke(interp.ActionPitchResample, nil)
		out = append(out, t)
	}
	return out
}

// pitchResampleAction implements ActionPitchResample: while the
// spacecraft is pointing (pcad_mode == NPNT), recompute pitch and the
// derived ra/dec/roll/off_nom_roll keys from the live attitude. Outside
// NPNT the sample is a no-op, since pitch is only meaningful relative to
// a held pointing (SPEC_FULL.md §4.6).
func pitchResampleAction(ctx *interp.ActionContext) error {
	if ctx.State[KeyPcadMode].String() != "NPNT" {
		return nil
	}
	q := currentQuat(ctx.State)
	ra, dec, roll := astro.QuatToRADecRoll(q)
	pitch := astro.SunPitch(ra, dec, ctx.Date)
	ctx.State[KeyPitch] = interp.Known(pitch)
	ctx.State[KeyRA] = interp.Known(ra)
	ctx.State[KeyDec] = interp.Known(dec)
	ctx.State[KeyRoll] = interp.Known(roll)
	ctx.State[KeyOffNomRoll] = interp.Known(roll - astro.NominalRoll(ra, dec))
	return nil
}
