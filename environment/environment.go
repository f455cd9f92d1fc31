/*
File    : golox/environment/environment.go
*/

// Package environment implements the cactus-stack chain of name→value
// frames that gives golox its lexical scoping and closures. Grounded on
// the teacher's scope.Scope: a hierarchical chain searched top-down,
// writable via Bind/Assign. Two teacher behaviors are dropped rather than
// ported — see DESIGN.md: the Consts/LetVars/LetTypes bookkeeping (no
// const/let distinction exists in this language) and Scope.Copy() (it
// clones bindings into a new map, which breaks exactly the sharing a
// closure depends on — a captured function must keep observing writes
// made through any other path to the same frame). GetAt/AssignAt are new:
// the resolver attaches a scope depth to each variable occurrence so the
// interpreter can skip straight to the declaring frame instead of
// searching.
package environment

import (
	"fmt"

	"github.com/golox-lang/golox/value"
)

// Environment is one frame in the scope chain: a set of bindings plus an
// optional link to the enclosing frame. A nil Enclosing marks the global
// frame.
type Environment struct {
	Enclosing *Environment
	values    map[string]value.Value
}

// New creates a frame enclosed by parent, or a global frame if parent is
// nil.
func New(parent *Environment) *Environment {
	return &Environment{Enclosing: parent, values: make(map[string]value.Value)}
}

// Define binds name to v in this frame unconditionally. Redeclaring an
// existing name in the same frame is allowed and simply overwrites it —
// golox has no "already declared" error, matching `var a = 1; var a = 2;`
// being legal at both global and block scope.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get searches this frame and its enclosing chain for name.
func (e *Environment) Get(name string) (value.Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, undefinedErr(name)
}

// Assign searches the chain for an existing binding of name and updates it
// in place; it never creates a new binding.
func (e *Environment) Assign(name string, v value.Value) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = v
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, v)
	}
	return undefinedErr(name)
}

// ancestor walks exactly depth Enclosing links out from e.
func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.Enclosing
	}
	return env
}

// GetAt reads name from the frame exactly depth enclosings out, skipping
// the search Get would otherwise do. depth comes from the resolver, which
// guarantees name is bound there; a miss indicates a resolver/interpreter
// mismatch and is a defect, not a user-facing error.
func (e *Environment) GetAt(depth int, name string) value.Value {
	v, ok := e.ancestor(depth).values[name]
	if !ok {
		panic(fmt.Sprintf("environment: resolver recorded depth %d for undeclared %q", depth, name))
	}
	return v
}

// AssignAt writes name in the frame exactly depth enclosings out.
func (e *Environment) AssignAt(depth int, name string, v value.Value) {
	e.ancestor(depth).values[name] = v
}

func undefinedErr(name string) error {
	return fmt.Errorf("Undefined variable '%s'.", name)
}
