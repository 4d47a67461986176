package strscript

import "fortio.org/log"

type Variable struct {
	Name  string
	Value string
}

type frame map[string]*Variable

// ScopeStack holds one frame per open block. The bottom frame is the global
// scope and is never popped.
type ScopeStack struct {
	frames []frame
}

func NewScopeStack() *ScopeStack {
	return &ScopeStack{
		frames: []frame{make(frame)},
	}
}

func (s *ScopeStack) Depth() int {
	return len(s.frames)
}

func (s *ScopeStack) EnterScope() {
	s.frames = append(s.frames, make(frame))
	log.Debugf("enter scope, depth %d", len(s.frames))
}

func (s *ScopeStack) ExitScope(pos Pos) error {
	if len(s.frames) <= 1 {
		return NewError(pos, ScopeError, "attempted to close the global scope")
	}
	s.frames = s.frames[:len(s.frames)-1]
	log.Debugf("exit scope, depth %d", len(s.frames))
	return nil
}

func (s *ScopeStack) Declare(pos Pos, name, value string) error {
	top := s.frames[len(s.frames)-1]
	if _, ok := top[name]; ok {
		return NewError(pos, NameError, "variable '%s' already declared in this scope", name)
	}
	top[name] = &Variable{Name: name, Value: value}
	return nil
}

func (s *ScopeStack) Lookup(pos Pos, name string) (string, error) {
	v := s.find(name)
	if v == nil {
		return "", NewError(pos, NameError, "unknown variable '%s'", name)
	}
	return v.Value, nil
}

// Assign overwrites the value in the innermost frame that declares name,
// which is not necessarily the top frame.
func (s *ScopeStack) Assign(pos Pos, name, value string) error {
	v := s.find(name)
	if v == nil {
		return NewError(pos, NameError, "assignment to undeclared variable '%s'", name)
	}
	v.Value = value
	return nil
}

func (s *ScopeStack) find(name string) *Variable {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if v, ok := s.frames[i][name]; ok {
			return v
		}
	}
	return nil
}
