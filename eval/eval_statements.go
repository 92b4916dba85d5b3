/*
File    : oxymix/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/oxymix/function"
	"github.com/akashmaji946/oxymix/objects"
	"github.com/akashmaji946/oxymix/parser"
)

// execStatement runs one statement and, for an ExpressionStatement
// only, returns its value (nil otherwise).
func (e *Evaluator) execStatement(stmt parser.Statement) objects.Value {
	switch s := stmt.(type) {
	case *parser.VariableDeclaration:
		e.execVariableDeclaration(s)
	case *parser.Assignment:
		e.execAssignment(s)
	case *parser.MemberAssignment:
		e.execMemberAssignment(s)
	case *parser.Conditional:
		e.execConditional(s)
	case *parser.ForLoop:
		e.execForLoop(s)
	case *parser.WhileLoop:
		e.execWhileLoop(s)
	case *parser.Block:
		e.execBlock(s)
	case *parser.ExpressionStatement:
		return e.evalExpr(s.Expr)
	case *parser.FunctionDeclaration:
		e.Functions[s.Name] = function.FromDeclaration(s, false)
	case *parser.ClassDefinition:
		e.Environment.SetClass(s.Name, s)
	case *parser.Return:
		e.execReturn(s)
	default:
		e.logf("[RUNTIME ERROR] unhandled statement type %T\n", stmt)
	}
	return nil
}

func (e *Evaluator) execVariableDeclaration(s *parser.VariableDeclaration) {
	v := e.evalExpr(s.Init)
	if v == nil {
		e.logf("[RUNTIME ERROR] could not evaluate initializer for %q\n", s.Name)
		return
	}
	e.Environment.Set(s.Name, v)
}

func (e *Evaluator) execAssignment(s *parser.Assignment) {
	v := e.evalExpr(s.Value)
	if v == nil {
		e.logf("[RUNTIME ERROR] could not evaluate value assigned to %q\n", s.Name)
		return
	}
	e.Environment.Set(s.Name, v)
}

// execMemberAssignment requires the object expression to resolve to a
// class instance - a bare variable or `self`, evaluated the same way
// evalVariable resolves a read of either. A non-instance receiver logs
// and the statement completes without effect. Because Instance is a
// pointer type, writing through Fields mutates whichever instance the
// expression resolved to directly; no write-back into the environment
// is needed.
func (e *Evaluator) execMemberAssignment(s *parser.MemberAssignment) {
	obj := e.evalExpr(s.Object)
	if obj == nil {
		return
	}
	instance, ok := obj.(*objects.Instance)
	if !ok {
		e.logf("[RUNTIME ERROR] %q is not a class instance\n", s.Object.Literal())
		return
	}
	v := e.evalExpr(s.Value)
	if v == nil {
		e.logf("[RUNTIME ERROR] could not evaluate value assigned to %s.%s\n", s.Object.Literal(), s.Member)
		return
	}
	instance.Fields[s.Member] = v
}

func (e *Evaluator) execConditional(s *parser.Conditional) {
	cond := e.evalExpr(s.Condition)
	if cond == nil {
		e.logf("[RUNTIME ERROR] could not evaluate if-condition\n")
		return
	}
	if objects.Truthy(cond) {
		e.execBlock(s.Then)
	} else if s.Else != nil {
		e.execBlock(s.Else)
	}
}

// execForLoop evaluates the literal `./[start, end, step]` range triple.
// Bounds must be same-width integers (both i32 or both i64); the loop
// runs while (step>0 && current<end) || (step<0 && current>end), so a
// zero step or a step pointed the wrong way yields zero iterations
// rather than an infinite loop.
func (e *Evaluator) execForLoop(s *parser.ForLoop) {
	start := e.evalExpr(s.Start)
	end := e.evalExpr(s.End)
	step := e.evalExpr(s.Step)
	if start == nil || end == nil || step == nil {
		e.logf("[RUNTIME ERROR] could not evaluate for-loop bounds\n")
		return
	}

	switch sv := start.(type) {
	case objects.Int32:
		ev, ok1 := end.(objects.Int32)
		pv, ok2 := step.(objects.Int32)
		if !ok1 || !ok2 {
			e.logf("[RUNTIME ERROR] for-loop bounds must share the same integer width\n")
			return
		}
		for cur := sv.Value; (pv.Value > 0 && cur < ev.Value) || (pv.Value < 0 && cur > ev.Value); cur += pv.Value {
			e.Environment.Set(s.Variable, objects.Int32{Value: cur})
			e.execBlock(s.Body)
			if e.Returning {
				return
			}
		}
	case objects.Int64:
		ev, ok1 := end.(objects.Int64)
		pv, ok2 := step.(objects.Int64)
		if !ok1 || !ok2 {
			e.logf("[RUNTIME ERROR] for-loop bounds must share the same integer width\n")
			return
		}
		for cur := sv.Value; (pv.Value > 0 && cur < ev.Value) || (pv.Value < 0 && cur > ev.Value); cur += pv.Value {
			e.Environment.Set(s.Variable, objects.Int64{Value: cur})
			e.execBlock(s.Body)
			if e.Returning {
				return
			}
		}
	default:
		e.logf("[RUNTIME ERROR] for-loop bounds must be i32 or i64\n")
	}
}

func (e *Evaluator) execWhileLoop(s *parser.WhileLoop) {
	for {
		cond := e.evalExpr(s.Condition)
		if cond == nil || !objects.Truthy(cond) {
			return
		}
		e.execBlock(s.Body)
		if e.Returning {
			return
		}
	}
}

func (e *Evaluator) execBlock(b *parser.Block) {
	for _, stmt := range b.Statements {
		if e.Returning {
			return
		}
		e.execStatement(stmt)
	}
}

func (e *Evaluator) execReturn(s *parser.Return) {
	if s.Value == nil {
		e.Returning = true
		e.ReturnValue = objects.Int32{Value: 0}
		return
	}
	v := e.evalExpr(s.Value)
	if v == nil {
		e.logf("[RUNTIME ERROR] could not evaluate return value\n")
		v = objects.Int32{Value: 0}
	}
	e.Returning = true
	e.ReturnValue = v
}
