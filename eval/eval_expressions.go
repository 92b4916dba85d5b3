/*
File    : oxymix/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/oxymix/objects"
	"github.com/akashmaji946/oxymix/parser"
)

// evalExpr is the expression evaluator's single entry point. It returns
// nil - the universal "no value" signal - on any runtime failure, after
// writing a diagnostic to ErrWriter.
func (e *Evaluator) evalExpr(expr parser.Expression) objects.Value {
	switch n := expr.(type) {
	case *parser.Literal:
		return n.Value
	case *parser.Variable:
		return e.evalVariable(n)
	case *parser.Grouping:
		return e.evalExpr(n.Inner)
	case *parser.BinaryOp:
		return e.evalBinaryOp(n)
	case *parser.UnaryOp:
		return e.evalUnaryOp(n)
	case *parser.Comparison:
		return e.evalComparison(n)
	case *parser.Logical:
		return e.evalLogical(n)
	case *parser.ListLiteral:
		return e.evalListLiteral(n)
	case *parser.MemberAccess:
		return e.evalMemberAccess(n)
	case *parser.FunctionCall:
		return e.evalFunctionCall(n)
	case *parser.MethodCall:
		return e.evalMethodCall(n)
	default:
		e.logf("[RUNTIME ERROR] unhandled expression type %T\n", expr)
		return nil
	}
}

// evalVariable resolves `self` against the active method receiver
// first, falling back to the current environment for every other name.
func (e *Evaluator) evalVariable(n *parser.Variable) objects.Value {
	if n.Name == "self" {
		if e.MethodContext == nil {
			e.logf("[RUNTIME ERROR] 'self' used outside of a method\n")
			return nil
		}
		return e.MethodContext
	}
	v, ok := e.Environment.Get(n.Name)
	if !ok {
		e.logf("[RUNTIME ERROR] unknown variable %q\n", n.Name)
		return nil
	}
	return v
}

func (e *Evaluator) evalListLiteral(n *parser.ListLiteral) objects.Value {
	elements := make([]objects.Value, 0, len(n.Elements))
	for _, el := range n.Elements {
		v := e.evalExpr(el)
		if v == nil {
			e.logf("[RUNTIME ERROR] could not evaluate list element\n")
			return nil
		}
		elements = append(elements, v)
	}
	return objects.List{Elements: elements}
}

func (e *Evaluator) evalMemberAccess(n *parser.MemberAccess) objects.Value {
	obj := e.evalExpr(n.Object)
	if obj == nil {
		return nil
	}
	instance, ok := obj.(*objects.Instance)
	if !ok {
		e.logf("[RUNTIME ERROR] %q is not a class instance\n", n.Object.Literal())
		return nil
	}
	v, ok := instance.Fields[n.Member]
	if !ok {
		e.logf("[RUNTIME ERROR] %s has no field %q\n", instance.ClassName, n.Member)
		return nil
	}
	return v
}

// evalLogical implements short-circuit and/or with the strict-boolean
// rule: once the short-circuit decision is made (or both operands have
// been forced), every operand inspected must be a Bool, or the result
// is no value.
func (e *Evaluator) evalLogical(n *parser.Logical) objects.Value {
	left := e.evalExpr(n.Left)
	if left == nil {
		return nil
	}
	leftBool, ok := left.(objects.Bool)
	if !ok {
		e.logf("[RUNTIME ERROR] %q operand must be bool\n", n.Operator)
		return nil
	}
	if n.Operator == "or" && leftBool.Value {
		return leftBool
	}
	if n.Operator == "and" && !leftBool.Value {
		return leftBool
	}
	right := e.evalExpr(n.Right)
	if right == nil {
		return nil
	}
	rightBool, ok := right.(objects.Bool)
	if !ok {
		e.logf("[RUNTIME ERROR] %q operand must be bool\n", n.Operator)
		return nil
	}
	return rightBool
}

// evalUnaryOp implements the three prefix operators: `-` negates a
// numeric, `+` is numeric identity, and `not` inverts a bool or
// zero-tests an integer. `not` is restricted to Bool/Int32/Int64, same
// as the reference runtime's perform_unary_operation - a float, string,
// list, or instance operand is a type mismatch, not a truthiness coercion.
func (e *Evaluator) evalUnaryOp(n *parser.UnaryOp) objects.Value {
	operand := e.evalExpr(n.Operand)
	if operand == nil {
		return nil
	}
	switch n.Operator {
	case "not":
		switch v := operand.(type) {
		case objects.Bool:
			return objects.Bool{Value: !v.Value}
		case objects.Int32:
			return objects.Bool{Value: v.Value == 0}
		case objects.Int64:
			return objects.Bool{Value: v.Value == 0}
		default:
			e.logf("[RUNTIME ERROR] unary 'not' requires a bool or integer operand\n")
			return nil
		}
	case "+":
		switch operand.(type) {
		case objects.Int32, objects.Int64, objects.Float32, objects.Float64:
			return operand
		default:
			e.logf("[RUNTIME ERROR] unary '+' requires a numeric operand\n")
			return nil
		}
	case "-":
		switch v := operand.(type) {
		case objects.Int32:
			return objects.Int32{Value: -v.Value}
		case objects.Int64:
			return objects.Int64{Value: -v.Value}
		case objects.Float32:
			return objects.Float32{Value: -v.Value}
		case objects.Float64:
			return objects.Float64{Value: -v.Value}
		default:
			e.logf("[RUNTIME ERROR] unary '-' requires a numeric operand\n")
			return nil
		}
	default:
		e.logf("[RUNTIME ERROR] unknown unary operator %q\n", n.Operator)
		return nil
	}
}
