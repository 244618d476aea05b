// Package interp implements the single-pass state interpreter (C5 in
// SPEC_FULL.md): it folds a sorted transition list over a live state
// record and emits a contiguous state-interval table. The package knows
// nothing about what any particular state key or action means — that
// domain knowledge lives in package rules. interp only knows the
// mechanics: ordering, snapshotting, and the function-action dispatch
// contract.
package interp

import "fmt"

// Value is Known(x) or Unknown — the sum type SPEC_FULL.md §3 requires
// so that "no value yet" is representable without relying on a nil/zero
// value that might collide with a legitimate state value.
type Value struct {
	ok bool
	v  any
}

// Unknown is the zero Value: absent, legal only before the first Known
// write for a given key.
var Unknown = Value{}

// Known wraps x as a present value.
func Known(x any) Value { return Value{ok: true, v: x} }

// IsKnown reports whether the value has been set.
func (v Value) IsKnown() bool { return v.ok }

// Interface returns the underlying value, or nil if Unknown.
func (v Value) Interface() any { return v.v }

// Float64 returns the value as a float64, or (0, false) if Unknown or
// not numeric.
func (v Value) Float64() (float64, bool) {
	if !v.ok {
		return 0, false
	}
	switch x := v.v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	default:
		return 0, false
	}
}

// String returns the value as a string: "" if Unknown, the string itself
// if it holds one, and otherwise the value formatted with %v.
func (v Value) String() string {
	if !v.ok {
		return ""
	}
	if s, ok := v.v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v.v)
}

// Equal reports whether two values carry the same presence and payload.
// Used by the reducer (C7) to detect state-key changes between rows.
func (v Value) Equal(o Value) bool {
	if v.ok != o.ok {
		return false
	}
	if !v.ok {
		return true
	}
	return v.v == o.v
}
