/*
File    : oxymix/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseExprStatement(t *testing.T, src string) Expression {
	t.Helper()
	p := NewParser(src)
	prog := p.Parse()
	require.False(t, p.HasErrors(), "parse errors: %v", p.GetErrors())
	require.Len(t, prog.Statements, 1)
	es, ok := prog.Statements[0].(*ExpressionStatement)
	require.True(t, ok, "expected an expression statement, got %T", prog.Statements[0])
	return es.Expr
}

func TestPrecedenceAdditiveOverMultiplicative(t *testing.T) {
	expr := parseExprStatement(t, "a + b * c")
	bin, ok := expr.(*BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Operator)
	assert.IsType(t, &Variable{}, bin.Left)
	rhs, ok := bin.Right.(*BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "*", rhs.Operator)
}

func TestPrecedenceMultiplicativeThenAdditive(t *testing.T) {
	expr := parseExprStatement(t, "a * b + c")
	bin, ok := expr.(*BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Operator)
	lhs, ok := bin.Left.(*BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "*", lhs.Operator)
}

func TestPrecedenceEqualityUnderLogicalAnd(t *testing.T) {
	expr := parseExprStatement(t, "a == b and c == d")
	logical, ok := expr.(*Logical)
	require.True(t, ok)
	assert.Equal(t, "and", logical.Operator)
	assert.IsType(t, &Comparison{}, logical.Left)
	assert.IsType(t, &Comparison{}, logical.Right)
}

func TestForLoopRangeSyntax(t *testing.T) {
	p := NewParser("for i in ./[0, 5, 1] { x = i }")
	prog := p.Parse()
	require.False(t, p.HasErrors(), "parse errors: %v", p.GetErrors())
	require.Len(t, prog.Statements, 1)
	loop, ok := prog.Statements[0].(*ForLoop)
	require.True(t, ok)
	assert.Equal(t, "i", loop.Variable)
	assert.NotNil(t, loop.Start)
	assert.NotNil(t, loop.End)
	assert.NotNil(t, loop.Step)
}

func TestClassDefinitionTwoPublicSections(t *testing.T) {
	src := `class Box { public { v: i32 } public { fn get(self) { return self.v } } }`
	p := NewParser(src)
	prog := p.Parse()
	require.False(t, p.HasErrors(), "parse errors: %v", p.GetErrors())
	require.Len(t, prog.Statements, 1)
	def, ok := prog.Statements[0].(*ClassDefinition)
	require.True(t, ok)
	assert.Equal(t, "Box", def.Name)
	attrs := def.Attributes()
	require.Len(t, attrs, 1)
	assert.Equal(t, "v", attrs[0].Name)
	method, ok := def.Method("get")
	require.True(t, ok)
	assert.Equal(t, "get", method.Name)
}

func TestAssignmentVsExpressionStatement(t *testing.T) {
	p := NewParser("x = 5")
	prog := p.Parse()
	require.False(t, p.HasErrors())
	require.Len(t, prog.Statements, 1)
	assign, ok := prog.Statements[0].(*Assignment)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name)
}

func TestMemberAssignment(t *testing.T) {
	p := NewParser("b.v = 9")
	prog := p.Parse()
	require.False(t, p.HasErrors())
	require.Len(t, prog.Statements, 1)
	ma, ok := prog.Statements[0].(*MemberAssignment)
	require.True(t, ok)
	assert.Equal(t, "v", ma.Member)
}

func TestReturnWithAbsentValue(t *testing.T) {
	p := NewParser("fn f() { return }")
	prog := p.Parse()
	require.False(t, p.HasErrors())
	fn := prog.Statements[0].(*FunctionDeclaration)
	ret := fn.Body.Statements[0].(*Return)
	assert.Nil(t, ret.Value)
}

// TestPrecedenceGoldenLiteral pins the Literal() rendering of a small
// program exercising every precedence level at once, so a regression
// in the precedence ladder shows up as a readable unified diff instead
// of an opaque string-mismatch assertion.
func TestPrecedenceGoldenLiteral(t *testing.T) {
	p := NewParser("let x: i32 = 1 + 2 * 3 == 7 and not false;")
	prog := p.Parse()
	require.False(t, p.HasErrors(), "parse errors: %v", p.GetErrors())

	want := "let x = (((1 + (2 * 3)) == 7) and (notfalse));"
	got := prog.Literal()

	if want != got {
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(want),
			B:        difflib.SplitLines(got),
			FromFile: "want",
			ToFile:   "got",
			Context:  2,
		})
		require.NoError(t, err)
		t.Fatalf("precedence literal mismatch:\n%s", diff)
	}
}

func TestMalformedStatementIsSkipped(t *testing.T) {
	p := NewParser(") let x = 1")
	prog := p.Parse()
	assert.True(t, p.HasErrors())
	require.Len(t, prog.Statements, 1)
	_, ok := prog.Statements[0].(*VariableDeclaration)
	assert.True(t, ok)
}
