package rules

import (
	"github.com/chandraflight/kadistate/command"
	"github.com/chandraflight/kadistate/interp"
)

// paramSpec describes one R-Param rule: a command type plus the named
// parameter it copies verbatim into a single state key.
type paramSpec struct {
	name    string
	cmdType command.Type
	param   string
	key     string
}

func matchType(t command.Type) func(command.Command) bool {
	return func(c command.Command) bool { return c.Type == t }
}

func (s paramSpec) rule() Rule {
	return Rule{
		Name:      s.name,
		Match:     matchType(s.cmdType),
		StateKeys: []string{s.key},
		Emit: func(c command.Command) (interp.Transition, error) {
			v, ok := c.Lookup(s.param)
			if !ok {
				return interp.Transition{}, &interp.BadParameter{Date: c.Date, Key: s.param}
			}
			t := interp.Transition{Date: c.Date}
			t.Set(s.key, interp.Known(v))
			return t, nil
		},
	}
}

// paramRules returns every R-Param rule: obsid, sim translation position
// and sim focus-assembly position (SPEC_FULL.md §4.2).
func paramRules() []Rule {
	specs := []paramSpec{
		{name: "obsid", cmdType: command.TypeMPObsid, param: "id", key: KeyObsid},
		{name: "simpos", cmdType: command.TypeSimtrans, param: "pos", key: KeySimpos},
		{name: "simfa_pos", cmdType: command.TypeSimfocus, param: "pos", key: KeySimFaPos},
	}
	out := make([]Rule, 0, len(specs))
	for _, s := range specs {
		out = append(out, s.rule())
	}
	return out
}
