/*
File    : oxymix/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function holds the evaluator's user-defined-function registry
// entry type. Grounded on the reference runtime's UserFunction record
// (name, params, body, is_method) - note the deliberate absence of any
// captured-scope field: this language has no closures, so a function
// value carries nothing from its definition site besides its own
// parameter list and body.
package function

import "github.com/akashmaji946/oxymix/parser"

// UserFunction is a registered `fn` declaration or class method.
type UserFunction struct {
	Name     string
	Params   []parser.Parameter
	Body     *parser.Block
	IsMethod bool
}

// FromDeclaration adapts a parsed FunctionDeclaration into a registry
// entry. isMethod marks whether this came from a class's method section
// (its parameter list is expected to lead with `self`).
func FromDeclaration(decl *parser.FunctionDeclaration, isMethod bool) *UserFunction {
	return &UserFunction{Name: decl.Name, Params: decl.Params, Body: decl.Body, IsMethod: isMethod}
}

// NonSelfParams returns the parameter list with any `self` placeholder
// removed, for arity checking against call arguments.
func (f *UserFunction) NonSelfParams() []parser.Parameter {
	out := make([]parser.Parameter, 0, len(f.Params))
	for _, p := range f.Params {
		if !p.IsSelf {
			out = append(out, p)
		}
	}
	return out
}
