package rules

import (
	"github.com/chandraflight/kadistate/command"
	"github.com/chandraflight/kadistate/interp"
)

// Rule is one transition rule: a command-match predicate, the set of
// state keys it may write, and an emitter that turns one matching
// command into the single transition it contributes at that command's
// date (SPEC_FULL.md §4.1).
type Rule struct {
	Name      string
	Match     func(c command.Command) bool
	StateKeys []string
	Emit      func(c command.Command) (interp.Transition, error)
}

// Registry is the process-wide, read-only table of all known rules,
// built once at construction time from a static list of descriptors —
// no runtime class introspection (SPEC_FULL.md §9).
type Registry struct {
	rules []Rule
}

// NewRegistry builds the registry with every built-in rule kind
// registered (R-Fixed, R-Param, R-Quat, R-Maneuver, R-NormalSun,
// R-ACIS, plus the dither-parameter rule).
func NewRegistry() *Registry {
	r := &Registry{}
	r.rules = append(r.rules, fixedRules()...)
	r.rules = append(r.rules, paramRules()...)
	r.rules = append(r.rules, quatRule())
	r.rules = append(r.rules, maneuverRule(), normalSunRule())
	r.rules = append(r.rules, acisRule())
	r.rules = append(r.rules, ditherParamRule())
	return r
}

// Rules returns every registered rule, in registration order.
func (r *Registry) Rules() []Rule { return r.rules }

// Closure computes the rule closure R* and the key closure K* for a
// requested set of state keys, per SPEC_FULL.md §4.1 point 2: any rule
// that writes a requested key pulls in its whole StateKeys set, and
// that process repeats to a fixpoint (so a key newly pulled in by one
// rule can itself pull in more rules). Key order is stable: first-seen
// across the requested keys, then across rules in registration order.
func (r *Registry) Closure(requested []string) (matched []Rule, keys []string) {
	inClosure := make(map[string]bool, len(requested))
	var order []string
	addKey := func(k string) bool {
		if inClosure[k] {
			return false
		}
		inClosure[k] = true
		order = append(order, k)
		return true
	}
	for _, k := range requested {
		addKey(k)
	}

	for changed := true; changed; {
		changed = false
		for _, rule := range r.rules {
			if !intersects(rule.StateKeys, inClosure) {
				continue
			}
			for _, k := range rule.StateKeys {
				if addKey(k) {
					changed = true
				}
			}
		}
	}

	for _, rule := range r.rules {
		if intersects(rule.StateKeys, inClosure) {
			matched = append(matched, rule)
		}
	}
	return matched, order
}

func intersects(keys []string, set map[string]bool) bool {
	for _, k := range keys {
		if set[k] {
			return true
		}
	}
	return false
}

// Emit runs every rule in rules over cmds (pre-sorted by date) and
// returns the flat transition list in rule-then-command order. Because
// cmds is already date-sorted and the interpreter's final sort is
// stable, this ordering reproduces the "first-seen across rules wins
// ties" behavior SPEC_FULL.md §4.3 step 3 requires without needing a
// date-keyed map merge: transitions that land on the same date are
// simply consecutive entries the interpreter folds into the same
// output row (see interp.Run).
func Emit(matched []Rule, cmds []command.Command) ([]interp.Transition, error) {
	var out []interp.Transition
	for _, rule := range matched {
		for _, c := range cmds {
			if !rule.Match(c) {
				continue
			}
			t, err := rule.Emit(c)
			if err != nil {
				return nil, err
			}
			out = append(out, t)
		}
	}
	return out, nil
}
