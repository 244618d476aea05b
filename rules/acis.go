package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chandraflight/kadistate/command"
	"github.com/chandraflight/kadistate/interp"
)

// acisRule is R-ACIS: a single registry entry whose Emit sub-dispatches
// on the ACISPKT command's Tlmsid prefix, because the ACIS instrument
// packet encodes several logically distinct state changes (power,
// clocking, video board, science-instrument mode) behind one command
// type (SPEC_FULL.md §4.2, grounded on the ACISPKT sub-dispatch table
// in the original command-state model).
func acisRule() Rule {
	return Rule{
		Name:      "acis",
		Match:     matchType(command.TypeACISPacket),
		StateKeys: ACISStateKeys,
		Emit:      emitACIS,
	}
}

func emitACIS(c command.Command) (interp.Transition, error) {
	t := interp.Transition{Date: c.Date}
	switch {
	case strings.HasPrefix(c.Tlmsid, "WSPOW"):
		fep, ccd, err := decodeWSPOW(c.Tlmsid)
		if err != nil {
			return interp.Transition{}, &interp.BadParameter{Date: c.Date, Key: c.Tlmsid}
		}
		t.Set(KeyPowerCmd, interp.Known(c.Tlmsid))
		t.Set(KeyFepCount, interp.Known(fep))
		t.Set(KeyCcdCount, interp.Known(ccd))
	case c.Tlmsid == "WSVIDALLDN":
		t.Set(KeyVidBoard, interp.Known(0))
	case c.Tlmsid == "WSVIDALLUP":
		t.Set(KeyVidBoard, interp.Known(1))
	case strings.HasPrefix(c.Tlmsid, "XTZ"), strings.HasPrefix(c.Tlmsid, "XCZ"):
		t.Set(KeyClocking, interp.Known(1))
		t.Set(KeySiMode, interp.Known(c.Tlmsid))
	case strings.HasPrefix(c.Tlmsid, "RS_"):
		t.Set(KeyClocking, interp.Known(0))
	case c.Tlmsid == "AA00000000":
		t.Set(KeyClocking, interp.Known(0))
		t.Set(KeyPowerCmd, interp.Known(c.Tlmsid))
	default:
		// Unrecognized ACISPKT opcode: no state key is known to change.
		// Per SPEC_FULL.md §7 this is not an error, matching
		// UnknownCommand's "never raised" policy for R-Fixed/R-Param too.
	}
	return t, nil
}

// decodeWSPOW decodes a WSPOW<5 hex digits> power-up command: the 20-bit
// mask packs one bit per FEP (0-5) and one bit per CCD (0-9), counted
// here rather than tracked per-device since only the aggregate counts
// are modeled state keys.
func decodeWSPOW(tlmsid string) (fepCount, ccdCount int, err error) {
	const prefix = "WSPOW"
	if len(tlmsid) != len(prefix)+5 {
		return 0, 0, fmt.Errorf("rules: malformed WSPOW opcode %q", tlmsid)
	}
	mask, err := strconv.ParseUint(tlmsid[len(prefix):], 16, 32)
	if err != nil {
		return 0, 0, err
	}
	fepCount = popcount(mask & 0x3F)
	ccdCount = popcount((mask >> 6) & 0x3FF)
	return fepCount, ccdCount, nil
}

func popcount(mask uint64) int {
	n := 0
	for mask != 0 {
		n += int(mask & 1)
		mask >>= 1
	}
	return n
}
