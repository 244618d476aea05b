package interp

import "sort"

// List is the mutable, index-addressable transition list the
// interpreter folds over. Function actions insert into it mid-pass, so
// it is modeled as an explicit slice behind an index-based cursor
// (SPEC_FULL.md §9 design note) rather than anything that could be
// invalidated by a ranging iterator.
type List struct {
	items []Transition
}

// NewList sorts ts by date (stable, so rule-registration order breaks
// ties) and wraps it.
func NewList(ts []Transition) *List {
	sort.SliceStable(ts, func(i, j int) bool { return ts[i].Date < ts[j].Date })
	return &List{items: ts}
}

// Len returns the number of transitions currently in the list.
func (l *List) Len() int { return len(l.items) }

// At returns the transition at position i.
func (l *List) At(i int) Transition { return l.items[i] }

// smallBufferScan bounds the linear-scan fast path before falling back
// to binary search, matching the observed locality of maneuver-sample
// insertions (SPEC_FULL.md §9).
const smallBufferScan = 16

// Insert implements the add_transition contract: given the caller's
// cursor idx, insert t at the first position j > idx with
// t.Date < items[j].Date, or append if none. It is an OrderingViolation
// to insert at a date strictly before items[idx].Date.
func (l *List) Insert(idx int, t Transition) error {
	if t.Date < l.items[idx].Date {
		return &OrderingViolation{At: l.items[idx].Date, New: t.Date}
	}

	limit := idx + 1 + smallBufferScan
	if limit > len(l.items) {
		limit = len(l.items)
	}
	for j := idx + 1; j < limit; j++ {
		if t.Date < l.items[j].Date {
			l.insertAt(j, t)
			return nil
		}
	}
	if limit == len(l.items) {
		l.items = append(l.items, t)
		return nil
	}

	// Binary search the remainder [limit, len) for the first index whose
	// date is strictly greater than t.Date.
	lo, hi := limit, len(l.items)
	for lo < hi {
		mid := (lo + hi) / 2
		if l.items[mid].Date <= t.Date {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	l.insertAt(lo, t)
	return nil
}

func (l *List) insertAt(j int, t Transition) {
	l.items = append(l.items, Transition{})
	copy(l.items[j+1:], l.items[j:])
	l.items[j] = t
}
