package nion

import "maps"

// scope is a frame of the lexical environment. A value is a tower.Number, a
// string, a *word, or nil for a declared variable which is not set yet.
type scope struct {
	parent *scope
	values map[string]any
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, values: make(map[string]any)}
}

// lookup returns the nearest frame which contains the name.
func (s *scope) lookup(name string) *scope {
	for ; s != nil; s = s.parent {
		if _, ok := s.values[name]; ok {
			return s
		}
	}
	return nil
}

func (s *scope) get(name string) (any, bool) {
	if s = s.lookup(name); s == nil {
		return nil, false
	}
	return s.values[name], true
}

// bind stores the value into the nearest frame containing the name, or the
// root frame when the name is new.
func (s *scope) bind(name string, v any) {
	if t := s.lookup(name); t != nil {
		t.values[name] = v
		return
	}
	for s.parent != nil {
		s = s.parent
	}
	s.values[name] = v
}

// clone copies the values of the frame into a new frame under parent.
func (s *scope) clone(parent *scope) *scope {
	return &scope{parent: parent, values: maps.Clone(s.values)}
}

func (s *scope) snapshot() map[string]any {
	return maps.Clone(s.values)
}

func (s *scope) restore(values map[string]any) {
	s.values = values
}

// word is a user definition: the frame captured when it was defined and its
// own instruction buffer.
type word struct {
	name  string
	scope *scope
	codes []*code
}
