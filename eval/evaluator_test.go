/*
File    : oxymix/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/oxymix/objects"
	"github.com/akashmaji946/oxymix/parser"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (string, string, *Evaluator) {
	t.Helper()
	p := parser.NewParser(src)
	program := p.Parse()
	require.False(t, p.HasErrors(), "parse errors: %v", p.GetErrors())

	var out, errOut bytes.Buffer
	ev := NewEvaluator()
	ev.SetWriter(&out)
	ev.SetErrWriter(&errOut)
	ev.Eval(program)
	return out.String(), errOut.String(), ev
}

func TestArithmeticPrecedence(t *testing.T) {
	out, errOut, _ := run(t, `let x: i32 = 2 + 3 * 4; println(x)`)
	assert.Equal(t, "14\n", out)
	assert.Empty(t, errOut)
}

func TestForLoopAscendingRange(t *testing.T) {
	out, _, _ := run(t, `
		for i in ./[0, 5, 1] {
			print(i)
		}
	`)
	assert.Equal(t, "01234", out)
}

func TestForLoopDescendingRange(t *testing.T) {
	out, _, _ := run(t, `
		for i in ./[5, 0, -1] {
			print(i)
		}
	`)
	assert.Equal(t, "54321", out)
}

func TestForLoopZeroStepRunsZeroTimes(t *testing.T) {
	out, _, _ := run(t, `
		for i in ./[0, 5, 0] {
			print(i)
		}
	`)
	assert.Equal(t, "", out)
}

func TestDivisionByZeroYieldsNoValue(t *testing.T) {
	_, errOut, _ := run(t, `let x: i32 = 1 / 0;`)
	assert.Contains(t, errOut, "division by zero")
}

func TestClassInstanceDefaultFields(t *testing.T) {
	out, _, _ := run(t, `
		class Point {
			public {
				x: i32
				y: i32
			}
			public {
			}
		}
		let p = Point();
		println(p.x)
		println(p.y)
	`)
	assert.Equal(t, "0\n0\n", out)
}

// Constructor mutations to self run against a throwaway clone: the
// instance returned by construction never observes them.
func TestInitMutationsDoNotPropagate(t *testing.T) {
	out, _, _ := run(t, `
		class Counter {
			public {
				n: i32
			}
			public {
				fn __init__(self) {
					self.n = 99
				}
			}
		}
		let c = Counter();
		println(c.n)
	`)
	assert.Equal(t, "0\n", out)
}

// Method bodies receive a snapshot of the environment; mutations to
// self inside a method never reach the caller's binding either.
func TestMethodSelfMutationDoesNotPropagate(t *testing.T) {
	out, _, _ := run(t, `
		class Counter {
			public {
				n: i32
			}
			public {
				fn bump(self) {
					self.n = self.n + 1
				}
			}
		}
		let c = Counter();
		c.bump()
		println(c.n)
	`)
	assert.Equal(t, "0\n", out)
}

func TestShortCircuitOrSkipsRightSideEffect(t *testing.T) {
	out, _, _ := run(t, `
		fn noisy() {
			println("evaluated")
			return true
		}
		let x = true or noisy();
	`)
	assert.Equal(t, "", out)
}

func TestShortCircuitAndSkipsRightSideEffect(t *testing.T) {
	out, _, _ := run(t, `
		fn noisy() {
			println("evaluated")
			return true
		}
		let x = false and noisy();
	`)
	assert.Equal(t, "", out)
}

func TestUserFunctionReturnValue(t *testing.T) {
	out, _, _ := run(t, `
		fn add(a: i32, b: i32) {
			return a + b
		}
		println(add(2, 3))
	`)
	assert.Equal(t, "5\n", out)
}

func TestFloatEqualityUsesEpsilon(t *testing.T) {
	out, _, _ := run(t, `
		let a: f64 = 0.1 + 0.2;
		let b: f64 = 0.3;
		println(a == b)
	`)
	assert.Equal(t, "true\n", out)
}

func TestWhileLoopAccumulates(t *testing.T) {
	out, _, ev := run(t, `
		let i: i32 = 0;
		let total: i32 = 0;
		while (i < 5) {
			total = total + i
			i = i + 1
		}
		println(total)
	`)
	// spew.Sdump renders the full final environment snapshot so a
	// failing assertion here shows every binding, not just "total".
	require.Equal(t, "10\n", out, "final environment:\n%s", spew.Sdump(ev.Environment.All()))
}

func TestUnaryNotZeroTestsIntegers(t *testing.T) {
	out, _, _ := run(t, `
		let a: i32 = 0;
		let b: i32 = 7;
		println(not a)
		println(not b)
	`)
	assert.Equal(t, "true\nfalse\n", out)
}

// `not` is restricted to bool/int32/int64 - a float operand is a type
// mismatch, not a truthiness coercion, unlike objects.Truthy's broader
// rules used for conditionals and loop guards.
func TestUnaryNotRejectsFloatOperand(t *testing.T) {
	_, errOut, _ := run(t, `let x: bool = not 3.14;`)
	assert.Contains(t, errOut, "'not' requires a bool or integer operand")
}

func TestNoValuePropagatesSilently(t *testing.T) {
	val := func() objects.Value { return nil }()
	assert.False(t, objects.Truthy(val))
}
