/*
File    : oxymix/env/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package env implements the evaluator's variable and class-definition
// store. Unlike a conventional lexically-scoped interpreter, an
// Environment here is flat: there is no parent chain and no closures.
// A function or method call does not extend the caller's environment -
// it swaps in a brand new one, pre-populated with a snapshot copy of
// the caller's bindings (see callUserFunction in the eval package). This is grounded on the
// reference language's Environment, which is a single
// variables-plus-classes map pair with no notion of nesting.
package env

import (
	"github.com/akashmaji946/oxymix/objects"
	"github.com/akashmaji946/oxymix/parser"
)

// Environment is a named-variable binding store plus a class-definition
// store. It has no parent - "flat" is the defining property.
type Environment struct {
	variables map[string]objects.Value
	classes   map[string]*parser.ClassDefinition
}

// New creates an empty environment.
func New() *Environment {
	return &Environment{
		variables: make(map[string]objects.Value),
		classes:   make(map[string]*parser.ClassDefinition),
	}
}

// Get looks up a variable binding by name.
func (e *Environment) Get(name string) (objects.Value, bool) {
	v, ok := e.variables[name]
	return v, ok
}

// Set inserts or overwrites a variable binding.
func (e *Environment) Set(name string, value objects.Value) {
	e.variables[name] = value
}

// All returns the full variable binding map. Callers that need a
// snapshot (see Snapshot) must not mutate the returned map directly.
func (e *Environment) All() map[string]objects.Value {
	return e.variables
}

// Snapshot returns a new Environment whose variable bindings are a
// shallow copy of this one's - the flat-snapshot calling convention
// used to build a function or method call frame. The class map is copied
// the same way: the frame gets its own map holding the same
// *ClassDefinition pointers, so a class registered during the call is
// not visible to the caller afterwards.
func (e *Environment) Snapshot() *Environment {
	vars := make(map[string]objects.Value, len(e.variables))
	for k, v := range e.variables {
		vars[k] = v
	}
	classes := make(map[string]*parser.ClassDefinition, len(e.classes))
	for k, v := range e.classes {
		classes[k] = v
	}
	return &Environment{variables: vars, classes: classes}
}

// SetClass registers a class definition by name.
func (e *Environment) SetClass(name string, def *parser.ClassDefinition) {
	e.classes[name] = def
}

// GetClass looks up a registered class definition by name.
func (e *Environment) GetClass(name string) (*parser.ClassDefinition, bool) {
	c, ok := e.classes[name]
	return c, ok
}

// HasClass reports whether a class of the given name is registered.
func (e *Environment) HasClass(name string) bool {
	_, ok := e.classes[name]
	return ok
}
