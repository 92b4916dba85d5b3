/*
File    : oxymix/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval is the stateful heart of the interpreter: it walks the
// AST the parser produced, maintaining the variable environment, the
// user-defined function and class registries, call/return control, and
// method dispatch. The lexer and parser are pure; this is the only
// stateful component (see the reference runtime's Runtime struct).
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/oxymix/builtin"
	"github.com/akashmaji946/oxymix/env"
	"github.com/akashmaji946/oxymix/function"
	"github.com/akashmaji946/oxymix/objects"
	"github.com/akashmaji946/oxymix/parser"
)

// Evaluator is the statement/expression execution engine.
type Evaluator struct {
	Environment *env.Environment
	Functions   map[string]*function.UserFunction
	Builtins    map[string]*builtin.Builtin

	// Returning and ReturnValue unwind statement execution across
	// nested blocks once a `return` is reached; Returning is never set
	// by a runtime failure, only by an explicit return.
	Returning   bool
	ReturnValue objects.Value

	// MethodContext holds the instance "self" resolves to while a
	// method body is executing; nil outside of method dispatch.
	MethodContext *objects.Instance

	Writer    io.Writer
	ErrWriter io.Writer
}

// NewEvaluator creates an evaluator with its own environment and its
// own copy of the built-in registry - no part of its state is
// process-wide or shared across evaluator instances, per the design
// note that the built-in registry belongs to the evaluator rather than
// a package-level global.
func NewEvaluator() *Evaluator {
	ev := &Evaluator{
		Environment: env.New(),
		Functions:   make(map[string]*function.UserFunction),
		Builtins:    make(map[string]*builtin.Builtin),
		Writer:      os.Stdout,
		ErrWriter:   os.Stderr,
	}
	for _, b := range builtin.Registry() {
		ev.Builtins[b.Name] = b
	}
	return ev
}

// SetWriter redirects built-in output (print/println) to w.
func (e *Evaluator) SetWriter(w io.Writer) { e.Writer = w }

// SetErrWriter redirects diagnostic output to w.
func (e *Evaluator) SetErrWriter(w io.Writer) { e.ErrWriter = w }

func (e *Evaluator) logf(format string, args ...interface{}) {
	fmt.Fprintf(e.ErrWriter, format, args...)
}

// Eval runs every statement in program in order and returns the value
// of the last ExpressionStatement executed (or nil if the program was
// empty or ended some other way) - a REPL convenience, not a language
// feature named by the grammar.
func (e *Evaluator) Eval(program *parser.Program) objects.Value {
	var last objects.Value
	for _, stmt := range program.Statements {
		if e.Returning {
			break
		}
		v := e.execStatement(stmt)
		if _, ok := stmt.(*parser.ExpressionStatement); ok {
			last = v
		}
	}
	return last
}
