package prepare

import "github.com/mrlab-ai/groundcore/pkg/perrors"

// scope maps parameter names to their position within the current
// lifted entity being built, pushed on entering a parameterised scope
// (action, axiom, forall effect) and popped on exit. Positions are
// global to the whole entity (an action's own parameters occupy
// [0,n), a forall's extra parameters occupy [n, n+m)), matching how
// ConditionalEffect.NumExtraParameters is interpreted downstream.
type scope struct {
	names  []string       // position -> name, for diagnostics
	lookup map[string]int32
}

func newScope() *scope {
	return &scope{lookup: make(map[string]int32)}
}

// push appends new parameter names starting at the current length. The
// scope is mutated in place; callers pair each push with a deferred pop of
// the same count.
func (s *scope) push(names []string) {
	for _, n := range names {
		pos := int32(len(s.names))
		s.names = append(s.names, n)
		s.lookup[n] = pos
	}
}

// pop removes the most recently pushed n names.
func (s *scope) pop(n int) {
	for i := 0; i < n; i++ {
		last := s.names[len(s.names)-1]
		s.names = s.names[:len(s.names)-1]
		delete(s.lookup, last)
	}
}

// resolve looks up a parameter name, returning a TranslationError if
// unbound (per spec: unbound variables are a fatal TranslationError).
func (s *scope) resolve(name string, at perrors.Coordinate) (int32, error) {
	pos, ok := s.lookup[name]
	if !ok {
		return 0, &perrors.TranslationError{At: at, Message: "unbound parameter: " + name}
	}
	return pos, nil
}

// len returns the total number of parameters currently in scope.
func (s *scope) len() int32 { return int32(len(s.names)) }
