/*
File    : oxymix/eval/eval_calls.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/oxymix/function"
	"github.com/akashmaji946/oxymix/objects"
	"github.com/akashmaji946/oxymix/parser"
)

// evalFunctionCall routes `NAME(args)` to a class construction, a
// user-defined function call, or a built-in, in that preference order -
// a class name always wins over a same-named function or built-in,
// matching the reference runtime's dispatch order.
func (e *Evaluator) evalFunctionCall(n *parser.FunctionCall) objects.Value {
	if class, ok := e.Environment.GetClass(n.Name); ok {
		return e.constructInstance(class, n.Args)
	}
	if fn, ok := e.Functions[n.Name]; ok {
		return e.callUserFunction(fn, n.Args, nil)
	}
	if b, ok := e.Builtins[n.Name]; ok {
		args, ok := e.evalArgs(n.Args)
		if !ok {
			return nil
		}
		return b.Fn(e.Writer, e.ErrWriter, args)
	}
	e.logf("[RUNTIME ERROR] unknown function %q\n", n.Name)
	return nil
}

// evalMethodCall resolves object.method(args) against the instance's
// declaring class. Methods are never stored on the instance itself -
// they are looked up on the class definition at call time.
func (e *Evaluator) evalMethodCall(n *parser.MethodCall) objects.Value {
	obj := e.evalExpr(n.Object)
	if obj == nil {
		return nil
	}
	instance, ok := obj.(*objects.Instance)
	if !ok {
		e.logf("[RUNTIME ERROR] %q is not a class instance\n", n.Object.Literal())
		return nil
	}
	class, ok := e.Environment.GetClass(instance.ClassName)
	if !ok {
		e.logf("[RUNTIME ERROR] unknown class %q\n", instance.ClassName)
		return nil
	}
	decl, ok := class.Method(n.Method)
	if !ok {
		e.logf("[RUNTIME ERROR] %s has no method %q\n", instance.ClassName, n.Method)
		return nil
	}
	fn := function.FromDeclaration(decl, true)
	// The receiver bound to `self` is a clone, never the caller's own
	// pointer: the method environment is a snapshot, and that snapshot
	// must own its instance too, or field mutations would leak back
	// through the shared Fields map regardless of how the rest of the
	// call frame is isolated.
	return e.callUserFunction(fn, n.Args, instance.Clone())
}

func (e *Evaluator) evalArgs(exprs []parser.Expression) ([]objects.Value, bool) {
	args := make([]objects.Value, 0, len(exprs))
	for _, a := range exprs {
		v := e.evalExpr(a)
		if v == nil {
			e.logf("[RUNTIME ERROR] could not evaluate call argument\n")
			return nil, false
		}
		args = append(args, v)
	}
	return args, true
}

// callUserFunction builds a call frame per the flat-snapshot calling
// convention: a brand new environment seeded with a copy of the
// caller's bindings (never the caller's live environment), the
// non-self parameters bound to the evaluated arguments, and - for a
// method call - receiver carries via MethodContext rather than through
// the environment. Control state (Returning/ReturnValue) is saved and
// restored around the call so a callee's return cannot leak into the
// caller. A callee that completes without an explicit return yields
// Int32{0}.
func (e *Evaluator) callUserFunction(fn *function.UserFunction, argExprs []parser.Expression, receiver *objects.Instance) objects.Value {
	params := fn.NonSelfParams()
	args, ok := e.evalArgs(argExprs)
	if !ok {
		return nil
	}
	if len(args) != len(params) {
		e.logf("[RUNTIME ERROR] %s() expects %d argument(s), got %d\n", fn.Name, len(params), len(args))
		return nil
	}

	callerEnv := e.Environment
	callerReturning, callerReturnValue := e.Returning, e.ReturnValue
	callerContext := e.MethodContext

	frame := callerEnv.Snapshot()
	for i, p := range params {
		frame.Set(p.Name, args[i])
	}
	e.Environment = frame
	e.Returning = false
	e.ReturnValue = nil
	if fn.IsMethod {
		e.MethodContext = receiver
	}

	e.execBlock(fn.Body)

	result := e.ReturnValue
	if !e.Returning || result == nil {
		result = objects.Int32{Value: 0}
	}

	e.Environment = callerEnv
	e.Returning = callerReturning
	e.ReturnValue = callerReturnValue
	e.MethodContext = callerContext

	return result
}

// constructInstance builds a class instance: every declared attribute
// gets its type's default value, then - if the class defines __init__ -
// that constructor runs against a clone of the freshly built instance,
// and the clone's mutations are discarded once it returns. The
// instance construction never observes __init__'s side effects; this
// mirrors the reference runtime's create_class_instance, which builds
// the instance, runs the constructor against a throwaway copy purely
// for its side effects on shared state, and returns the original.
func (e *Evaluator) constructInstance(class *parser.ClassDefinition, argExprs []parser.Expression) objects.Value {
	fields := make(map[string]objects.Value)
	for _, attr := range class.Attributes() {
		fields[attr.Name] = objects.DefaultForType(attr.Type)
	}
	instance := &objects.Instance{ClassName: class.Name, Fields: fields}

	if decl, ok := class.Method("__init__"); ok {
		fn := function.FromDeclaration(decl, true)
		scratch := instance.Clone()
		e.callUserFunction(fn, argExprs, scratch)
	}

	return instance
}
