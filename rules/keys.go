// Package rules implements the transition registry and rule kinds
// (C3/C4 in SPEC_FULL.md): the static table of command-shape ->
// state-key producers, rule closure computation, and the concrete
// R-Fixed / R-Param / R-Quat / R-Maneuver / R-NormalSun / R-ACIS rule
// kinds. Grounded on kadi/cmds/states.py's TransitionMeta registry,
// rewritten per SPEC_FULL.md §9 as a static list of rule descriptors
// with a single dispatch table instead of metaclass introspection.
package rules

// State key names. Keeping them as constants (rather than magic
// strings scattered through the rule table) mirrors how the teacher
// corpus names configuration keys in its policy tables.
const (
	KeyPcadMode   = "pcad_mode"
	KeyObsid      = "obsid"
	KeySimpos     = "simpos"
	KeySimFaPos   = "simfa_pos"
	KeyQ1         = "q1"
	KeyQ2         = "q2"
	KeyQ3         = "q3"
	KeyQ4         = "q4"
	KeyTargQ1     = "targ_q1"
	KeyTargQ2     = "targ_q2"
	KeyTargQ3     = "targ_q3"
	KeyTargQ4     = "targ_q4"
	KeyAutoNpnt   = "auto_npnt"
	KeyPitch      = "pitch"
	KeyRA         = "ra"
	KeyDec        = "dec"
	KeyRoll       = "roll"
	KeyOffNomRoll = "off_nom_roll"
	KeyDither     = "dither"
	KeyHetg       = "hetg"
	KeyLetg       = "letg"

	KeyClocking  = "clocking"
	KeyPowerCmd  = "power_cmd"
	KeyVidBoard  = "vid_board"
	KeyFepCount  = "fep_count"
	KeySiMode    = "si_mode"
	KeyCcdCount  = "ccd_count"

	KeyDitherAmplPitch  = "dither_ampl_pitch"
	KeyDitherAmplYaw    = "dither_ampl_yaw"
	KeyDitherPeriodPitch = "dither_period_pitch"
	KeyDitherPeriodYaw   = "dither_period_yaw"
	KeyDitherPhasePitch  = "dither_phase_pitch"
	KeyDitherPhaseYaw    = "dither_phase_yaw"
)

// QCs is the ordered list of current-attitude quaternion component keys.
var QCs = []string{KeyQ1, KeyQ2, KeyQ3, KeyQ4}

// TargQCs is the ordered list of target-attitude quaternion component keys.
var TargQCs = []string{KeyTargQ1, KeyTargQ2, KeyTargQ3, KeyTargQ4}

// ManvrStateKeys is the maneuver key group: any rule that writes one of
// these writes all of them, and requesting any one forces the whole
// group into the key closure (SPEC_FULL.md §4.1 point 2, §9 design
// note on maneuver key group coupling). Supplemented with ra/dec/roll/
// off_nom_roll per SPEC_FULL.md §3a.
var ManvrStateKeys = []string{
	KeyQ1, KeyQ2, KeyQ3, KeyQ4,
	KeyTargQ1, KeyTargQ2, KeyTargQ3, KeyTargQ4,
	KeyAutoNpnt, KeyPcadMode, KeyPitch,
	KeyRA, KeyDec, KeyRoll, KeyOffNomRoll,
}

// ACISStateKeys is the set of keys any ACISPKT sub-rule may write.
var ACISStateKeys = []string{KeyClocking, KeyPowerCmd, KeyVidBoard, KeyFepCount, KeySiMode, KeyCcdCount}

// DitherParamStateKeys is the set of keys the dither-parameter rule
// writes (Open Question: the dither amplitude/phase/
// period rule is not present in the retrieved original source; it is
// reconstructed from the R-Param pattern, see DESIGN.md).
var DitherParamStateKeys = []string{
	KeyDitherAmplPitch, KeyDitherAmplYaw,
	KeyDitherPeriodPitch, KeyDitherPeriodYaw,
	KeyDitherPhasePitch, KeyDitherPhaseYaw,
}
