/*
File    : lea/scope/scope.go
*/

// Package scope implements lea's lexical scope chain: the name bindings a
// running program consults to resolve identifiers, and the mechanism by
// which closures keep access to variables from the environment where they
// were defined.
package scope

import "github.com/lea-lang/lea/objects"

// Scope holds the variable bindings visible at one point in a program.
// Scopes form a chain through Outer: a lookup that misses in the current
// scope continues in the enclosing one, all the way out to the global
// scope, whose Outer is nil.
type Scope struct {
	Bindings map[string]objects.Object
	Outer    *Scope
}

// New creates a scope with no enclosing scope — the global scope of a
// program or REPL session.
func New() *Scope {
	return &Scope{Bindings: make(map[string]objects.Object)}
}

// NewEnclosed creates a scope nested inside outer, used for function
// bodies and any other construct that needs its own bindings layered over
// the caller's.
func NewEnclosed(outer *Scope) *Scope {
	return &Scope{Bindings: make(map[string]objects.Object), Outer: outer}
}

// Get resolves name by walking outward through the scope chain, starting
// at the current scope. The returned bool is false if name is bound
// nowhere in the chain.
func (s *Scope) Get(name string) (objects.Object, bool) {
	obj, ok := s.Bindings[name]
	if !ok && s.Outer != nil {
		return s.Outer.Get(name)
	}
	return obj, ok
}

// Set binds name to val in this scope only, shadowing (rather than
// updating) any binding of the same name in an enclosing scope. This is
// the only mutation `var` performs: lea has no separate reassignment
// operator that walks outward to update an existing binding.
func (s *Scope) Set(name string, val objects.Object) objects.Object {
	s.Bindings[name] = val
	return val
}
