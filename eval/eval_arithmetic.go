/*
File    : oxymix/eval/eval_arithmetic.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"math"

	"github.com/akashmaji946/oxymix/objects"
	"github.com/akashmaji946/oxymix/parser"
)

const (
	epsilon32 = 1e-6
	epsilon64 = 1e-9
)

// evalBinaryOp implements + - * / %. Both operands must carry the same
// numeric tag, except that `+` also accepts two strings (concatenation).
// Division and modulo by zero both yield no value; modulo is integer
// only.
func (e *Evaluator) evalBinaryOp(n *parser.BinaryOp) objects.Value {
	left := e.evalExpr(n.Left)
	if left == nil {
		return nil
	}
	right := e.evalExpr(n.Right)
	if right == nil {
		return nil
	}

	if n.Operator == "+" {
		if ls, ok := left.(objects.Str); ok {
			if rs, ok := right.(objects.Str); ok {
				return objects.Str{Value: ls.Value + rs.Value}
			}
		}
	}

	switch lv := left.(type) {
	case objects.Int32:
		rv, ok := right.(objects.Int32)
		if !ok {
			e.logf("[RUNTIME ERROR] %q requires matching numeric types\n", n.Operator)
			return nil
		}
		return e.arithInt32(n.Operator, lv.Value, rv.Value)
	case objects.Int64:
		rv, ok := right.(objects.Int64)
		if !ok {
			e.logf("[RUNTIME ERROR] %q requires matching numeric types\n", n.Operator)
			return nil
		}
		return e.arithInt64(n.Operator, lv.Value, rv.Value)
	case objects.Float32:
		rv, ok := right.(objects.Float32)
		if !ok {
			e.logf("[RUNTIME ERROR] %q requires matching numeric types\n", n.Operator)
			return nil
		}
		return e.arithFloat32(n.Operator, lv.Value, rv.Value)
	case objects.Float64:
		rv, ok := right.(objects.Float64)
		if !ok {
			e.logf("[RUNTIME ERROR] %q requires matching numeric types\n", n.Operator)
			return nil
		}
		return e.arithFloat64(n.Operator, lv.Value, rv.Value)
	default:
		e.logf("[RUNTIME ERROR] %q is not defined for %s\n", n.Operator, left.Type())
		return nil
	}
}

func (e *Evaluator) arithInt32(op string, l, r int32) objects.Value {
	switch op {
	case "+":
		return objects.Int32{Value: l + r}
	case "-":
		return objects.Int32{Value: l - r}
	case "*":
		return objects.Int32{Value: l * r}
	case "/":
		if r == 0 {
			e.logf("[RUNTIME ERROR] division by zero\n")
			return nil
		}
		return objects.Int32{Value: l / r}
	case "%":
		if r == 0 {
			e.logf("[RUNTIME ERROR] modulo by zero\n")
			return nil
		}
		return objects.Int32{Value: l % r}
	default:
		e.logf("[RUNTIME ERROR] unknown arithmetic operator %q\n", op)
		return nil
	}
}

func (e *Evaluator) arithInt64(op string, l, r int64) objects.Value {
	switch op {
	case "+":
		return objects.Int64{Value: l + r}
	case "-":
		return objects.Int64{Value: l - r}
	case "*":
		return objects.Int64{Value: l * r}
	case "/":
		if r == 0 {
			e.logf("[RUNTIME ERROR] division by zero\n")
			return nil
		}
		return objects.Int64{Value: l / r}
	case "%":
		if r == 0 {
			e.logf("[RUNTIME ERROR] modulo by zero\n")
			return nil
		}
		return objects.Int64{Value: l % r}
	default:
		e.logf("[RUNTIME ERROR] unknown arithmetic operator %q\n", op)
		return nil
	}
}

func (e *Evaluator) arithFloat32(op string, l, r float32) objects.Value {
	switch op {
	case "+":
		return objects.Float32{Value: l + r}
	case "-":
		return objects.Float32{Value: l - r}
	case "*":
		return objects.Float32{Value: l * r}
	case "/":
		if r == 0 {
			e.logf("[RUNTIME ERROR] division by zero\n")
			return nil
		}
		return objects.Float32{Value: l / r}
	case "%":
		e.logf("[RUNTIME ERROR] modulo is only defined for integers\n")
		return nil
	default:
		e.logf("[RUNTIME ERROR] unknown arithmetic operator %q\n", op)
		return nil
	}
}

func (e *Evaluator) arithFloat64(op string, l, r float64) objects.Value {
	switch op {
	case "+":
		return objects.Float64{Value: l + r}
	case "-":
		return objects.Float64{Value: l - r}
	case "*":
		return objects.Float64{Value: l * r}
	case "/":
		if r == 0 {
			e.logf("[RUNTIME ERROR] division by zero\n")
			return nil
		}
		return objects.Float64{Value: l / r}
	case "%":
		e.logf("[RUNTIME ERROR] modulo is only defined for integers\n")
		return nil
	default:
		e.logf("[RUNTIME ERROR] unknown arithmetic operator %q\n", op)
		return nil
	}
}

// evalComparison implements == != < > <= >=. Equality across mismatched
// types is false rather than no-value (so `1 == "1"` is a clean false);
// ordering across mismatched types is no value, since there is no
// sensible ordering to report. Float equality uses a per-width epsilon
// rather than bit-for-bit comparison.
func (e *Evaluator) evalComparison(n *parser.Comparison) objects.Value {
	left := e.evalExpr(n.Left)
	if left == nil {
		return nil
	}
	right := e.evalExpr(n.Right)
	if right == nil {
		return nil
	}

	switch n.Operator {
	case "==":
		return objects.Bool{Value: valuesEqual(left, right)}
	case "!=":
		return objects.Bool{Value: !valuesEqual(left, right)}
	}

	lt, ok := lessThan(left, right)
	if !ok {
		e.logf("[RUNTIME ERROR] %q requires matching comparable types\n", n.Operator)
		return nil
	}
	switch n.Operator {
	case "<":
		return objects.Bool{Value: lt}
	case ">":
		gt, _ := lessThan(right, left)
		return objects.Bool{Value: gt}
	case "<=":
		gt, _ := lessThan(right, left)
		return objects.Bool{Value: !gt}
	case ">=":
		return objects.Bool{Value: !lt}
	default:
		e.logf("[RUNTIME ERROR] unknown comparison operator %q\n", n.Operator)
		return nil
	}
}

func valuesEqual(l, r objects.Value) bool {
	switch lv := l.(type) {
	case objects.Int32:
		rv, ok := r.(objects.Int32)
		return ok && lv.Value == rv.Value
	case objects.Int64:
		rv, ok := r.(objects.Int64)
		return ok && lv.Value == rv.Value
	case objects.Float32:
		rv, ok := r.(objects.Float32)
		return ok && math.Abs(float64(lv.Value-rv.Value)) < epsilon32
	case objects.Float64:
		rv, ok := r.(objects.Float64)
		return ok && math.Abs(lv.Value-rv.Value) < epsilon64
	case objects.Bool:
		rv, ok := r.(objects.Bool)
		return ok && lv.Value == rv.Value
	case objects.Str:
		rv, ok := r.(objects.Str)
		return ok && lv.Value == rv.Value
	default:
		return false
	}
}

// lessThan reports l < r for two same-tagged numerics or strings; ok is
// false when the tags differ or neither side is ordered.
func lessThan(l, r objects.Value) (result bool, ok bool) {
	switch lv := l.(type) {
	case objects.Int32:
		rv, same := r.(objects.Int32)
		return same && lv.Value < rv.Value, same
	case objects.Int64:
		rv, same := r.(objects.Int64)
		return same && lv.Value < rv.Value, same
	case objects.Float32:
		rv, same := r.(objects.Float32)
		return same && lv.Value < rv.Value, same
	case objects.Float64:
		rv, same := r.(objects.Float64)
		return same && lv.Value < rv.Value, same
	case objects.Str:
		rv, same := r.(objects.Str)
		return same && lv.Value < rv.Value, same
	default:
		return false, false
	}
}
