// Package command defines the immutable command record (C2 in
// SPEC_FULL.md) consumed by the transition registry and the state
// interpreter, plus the opaque per-command parameter dictionary.
package command

// Type enumerates the command shapes the registry's rules match against.
// Unrecognized types are never an error — they simply match no rule
// (SPEC_FULL.md §7, UnknownCommand is never raised).
type Type string

const (
	TypeCommandSW  Type = "COMMAND_SW"
	TypeMPObsid    Type = "MP_OBSID"
	TypeSimtrans   Type = "SIMTRANS"
	TypeSimfocus   Type = "SIMFOCUS"
	TypeMPTargQuat Type = "MP_TARGQUAT"
	TypeACISPacket Type = "ACISPKT"
)

// Params is the opaque per-command parameter bag, addressable by name.
// A real deployment looks these up by a stable integer Idx into a
// process-wide REV_PARS_DICT-style table (archive.ParamStore); tests may
// construct one directly.
type Params map[string]any

// Command is one immutable row of a pre-sorted command batch.
type Command struct {
	Date    string // canonical 21-char date string; primary ordering key
	Time    float64
	Type    Type
	Tlmsid  string // opcode string; may be empty
	Idx     int    // stable index into the process-wide parameter store
	Params  Params // resolved parameters, populated by the archive adapter

	// Bookkeeping fields carried for completeness; the interpreter never
	// reads them.
	TimelineID string
	SCS        int
	Step       int
	VCDU       int64
}

// Lookup returns the named parameter for the command, and whether it was
// present. The interpreter calls this once per R-Param rule match.
func (c Command) Lookup(key string) (any, bool) {
	if c.Params == nil {
		return nil, false
	}
	v, ok := c.Params[key]
	return v, ok
}

// Quat returns the four MP_TARGQUAT quaternion components q1..q4, read
// from the command's Params; ok is false unless all four are present.
func (c Command) Quat() (q1, q2, q3, q4 float64, ok bool) {
	v1, ok1 := c.Lookup("q1")
	v2, ok2 := c.Lookup("q2")
	v3, ok3 := c.Lookup("q3")
	v4, ok4 := c.Lookup("q4")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return 0, 0, 0, 0, false
	}
	f := func(v any) float64 {
		switch x := v.(type) {
		case float64:
			return x
		case int:
			return float64(x)
		default:
			return 0
		}
	}
	return f(v1), f(v2), f(v3), f(v4), true
}
