package archive

import "github.com/chandraflight/kadistate/command"

// ParamStore resolves a command's stable Idx into its parameter
// dictionary, standing in for the process-wide REV_PARS_DICT table a
// real deployment loads once from the archive (SPEC_FULL.md §6).
type ParamStore struct {
	byIdx map[int]command.Params
}

// NewParamStore builds a store from an idx -> params table.
func NewParamStore(table map[int]command.Params) *ParamStore {
	return &ParamStore{byIdx: table}
}

// Lookup returns the parameters registered for idx, and whether any
// were found.
func (s *ParamStore) Lookup(idx int) (command.Params, bool) {
	if s == nil {
		return nil, false
	}
	p, ok := s.byIdx[idx]
	return p, ok
}

// Resolve returns a copy of cmds with Params populated from the store
// wherever a command's Params field is empty, leaving commands that
// already carry inline parameters untouched.
func (s *ParamStore) Resolve(cmds []command.Command) []command.Command {
	out := make([]command.Command, len(cmds))
	for i, c := range cmds {
		if len(c.Params) == 0 {
			if p, ok := s.Lookup(c.Idx); ok {
				c.Params = p
			}
		}
		out[i] = c
	}
	return out
}
