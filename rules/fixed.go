package rules

import (
	"github.com/chandraflight/kadistate/command"
	"github.com/chandraflight/kadistate/interp"
)

// fixedSpec describes one R-Fixed rule: command shape -> a single
// constant-valued key write (SPEC_FULL.md §4.2).
type fixedSpec struct {
	name      string
	cmdType   command.Type
	tlmsid    string
	key       string
	val       any
	stateKeys []string
}

func matchSW(tlmsid string) func(command.Command) bool {
	return func(c command.Command) bool {
		return c.Type == command.TypeCommandSW && c.Tlmsid == tlmsid
	}
}

func (s fixedSpec) rule() Rule {
	keys := s.stateKeys
	if keys == nil {
		keys = []string{s.key}
	}
	return Rule{
		Name:      s.name,
		Match:     matchSW(s.tlmsid),
		StateKeys: keys,
		Emit: func(c command.Command) (interp.Transition, error) {
			t := interp.Transition{Date: c.Date}
			t.Set(s.key, interp.Known(s.val))
			return t, nil
		},
	}
}

// fixedRules returns every R-Fixed rule in the original table
// (SPEC_FULL.md §4.2).
func fixedRules() []Rule {
	specs := []fixedSpec{
		{name: "nmm", tlmsid: "AONMMODE", key: KeyPcadMode, val: "NMAN", stateKeys: ManvrStateKeys},
		{name: "npm", tlmsid: "AONPMODE", key: KeyPcadMode, val: "NPNT", stateKeys: ManvrStateKeys},
		{name: "hetg_insr", tlmsid: "4OHETGIN", key: KeyHetg, val: "INSR"},
		{name: "hetg_retr", tlmsid: "4OHETGRE", key: KeyHetg, val: "RETR"},
		{name: "letg_insr", tlmsid: "4OLETGIN", key: KeyLetg, val: "INSR"},
		{name: "letg_retr", tlmsid: "4OLETGRE", key: KeyLetg, val: "RETR"},
		{name: "dither_enable", tlmsid: "AOENDITH", key: KeyDither, val: "ENAB"},
		{name: "dither_disable", tlmsid: "AODSDITH", key: KeyDither, val: "DISA"},
		{name: "auto_npnt_enable", tlmsid: "AONM2NPE", key: KeyAutoNpnt, val: "ENAB", stateKeys: ManvrStateKeys},
		{name: "auto_npnt_disable", tlmsid: "AONM2NPD", key: KeyAutoNpnt, val: "DISA", stateKeys: ManvrStateKeys},
	}
	out := make([]Rule, 0, len(specs))
	for _, s := range specs {
		out = append(out, s.rule())
	}
	return out
}
