// Package archive specifies the command-archive collaborator (C10):
// the interpreter never reads a database directly, only a Finder
// returning a date-sorted command batch (SPEC_FULL.md §6). The
// persisted archive itself is out of scope; Static is the in-memory
// fixture implementation used by tests and the CLI driver.
package archive

import (
	"context"
	"sort"

	"github.com/chandraflight/kadistate/command"
)

// Filter narrows a Find call to a subset of command types; a nil or
// empty Types slice matches every type.
type Filter struct {
	Types []command.Type
}

func (f Filter) matches(c command.Command) bool {
	if len(f.Types) == 0 {
		return true
	}
	for _, t := range f.Types {
		if c.Type == t {
			return true
		}
	}
	return false
}

// Finder returns every command in [start, stop) matching filter,
// already sorted by date.
type Finder interface {
	Find(ctx context.Context, start, stop string, filter Filter) ([]command.Command, error)
}

// Static is an in-memory Finder over a fixed command batch, for tests
// and the CLI driver's file-backed mode.
type Static struct {
	cmds []command.Command
}

// NewStatic builds a Static archive from cmds, sorting a copy by date.
func NewStatic(cmds []command.Command) *Static {
	cp := make([]command.Command, len(cmds))
	copy(cp, cmds)
	sort.SliceStable(cp, func(i, j int) bool { return cp[i].Date < cp[j].Date })
	return &Static{cmds: cp}
}

// Find implements Finder.
func (s *Static) Find(ctx context.Context, start, stop string, filter Filter) ([]command.Command, error) {
	var out []command.Command
	for _, c := range s.cmds {
		if c.Date < start || c.Date >= stop {
			continue
		}
		if !filter.matches(c) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
