/*
File    : oxymix/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser builds a typed abstract syntax tree from a lexer token
// stream using a recursive-descent strategy with Pratt-style operator
// precedence. The tree is built once and is read-only to the evaluator.
package parser

import "github.com/akashmaji946/oxymix/objects"

// Node is the base interface every statement and expression node
// implements. Literal returns a debug-oriented string form used by
// tests and in parser and evaluator diagnostic messages; it never
// affects evaluation results.
type Node interface {
	Literal() string
}

// Statement is the sum type of top-level and block-level constructs.
type Statement interface {
	Node
	statementNode()
}

// Expression is the sum type of value-producing constructs. An
// Expression is not itself a Statement; where an expression stands as
// a statement, ExpressionStatement wraps it.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of a parsed unit: an ordered statement list.
type Program struct {
	Statements []Statement
}

func (p *Program) Literal() string {
	out := ""
	for _, s := range p.Statements {
		out += s.Literal() + ";"
	}
	return out
}

// ---- Statements ----

// VariableDeclaration is `let NAME (: TYPE)? = expr`.
type VariableDeclaration struct {
	Name         string
	DeclaredType objects.TypeTag
	Init         Expression
}

func (n *VariableDeclaration) statementNode() {}
func (n *VariableDeclaration) Literal() string {
	return "let " + n.Name + " = " + n.Init.Literal()
}

// Assignment is `NAME = expr`, where NAME is an existing bare variable.
type Assignment struct {
	Name  string
	Value Expression
}

func (n *Assignment) statementNode() {}
func (n *Assignment) Literal() string {
	return n.Name + " = " + n.Value.Literal()
}

// MemberAssignment is `object.member = expr`.
type MemberAssignment struct {
	Object Expression
	Member string
	Value  Expression
}

func (n *MemberAssignment) statementNode() {}
func (n *MemberAssignment) Literal() string {
	return n.Object.Literal() + "." + n.Member + " = " + n.Value.Literal()
}

// Conditional is `if (cond) { then } (else { else })?`.
type Conditional struct {
	Condition Expression
	Then      *Block
	Else      *Block // nil if absent
}

func (n *Conditional) statementNode() {}
func (n *Conditional) Literal() string {
	out := "if (" + n.Condition.Literal() + ") " + n.Then.Literal()
	if n.Else != nil {
		out += " else " + n.Else.Literal()
	}
	return out
}

// ForLoop is the counted loop `for NAME in ./[start, end, step] { body }`.
type ForLoop struct {
	Variable string
	Start    Expression
	End      Expression
	Step     Expression
	Body     *Block
}

func (n *ForLoop) statementNode() {}
func (n *ForLoop) Literal() string {
	return "for " + n.Variable + " in ./[...] " + n.Body.Literal()
}

// WhileLoop is `while (cond) { body }`.
type WhileLoop struct {
	Condition Expression
	Body      *Block
}

func (n *WhileLoop) statementNode() {}
func (n *WhileLoop) Literal() string {
	return "while (" + n.Condition.Literal() + ") " + n.Body.Literal()
}

// Block is a pure statement grouping - it introduces no new scope.
type Block struct {
	Statements []Statement
}

func (n *Block) statementNode() {}
func (n *Block) Literal() string {
	out := "{ "
	for _, s := range n.Statements {
		out += s.Literal() + "; "
	}
	return out + "}"
}

// ExpressionStatement wraps a bare expression used as a statement.
type ExpressionStatement struct {
	Expr Expression
}

func (n *ExpressionStatement) statementNode() {}
func (n *ExpressionStatement) Literal() string {
	return n.Expr.Literal()
}

// Parameter is one entry in a function/method parameter list. `self`
// parameters carry IsSelf=true and no meaningful Type.
type Parameter struct {
	Name   string
	Type   objects.TypeTag
	IsSelf bool
}

// FunctionDeclaration is `fn NAME ( params ) { block }`.
type FunctionDeclaration struct {
	Name   string
	Params []Parameter
	Body   *Block
}

func (n *FunctionDeclaration) statementNode() {}
func (n *FunctionDeclaration) Literal() string {
	return "fn " + n.Name + "(...) " + n.Body.Literal()
}

// Return is `return expr?`.
type Return struct {
	Value Expression // nil if absent
}

func (n *Return) statementNode() {}
func (n *Return) Literal() string {
	if n.Value == nil {
		return "return"
	}
	return "return " + n.Value.Literal()
}

// ClassAttribute is a `field: TYPE` entry in a class's first public block.
type ClassAttribute struct {
	Name string
	Type objects.TypeTag
}

// ClassMember is one entry in a class's ordered member mapping: either
// an attribute or a method, never both.
type ClassMember struct {
	Name      string
	Attribute *ClassAttribute
	Method    *FunctionDeclaration
}

// ClassDefinition is `class NAME { public { attrs } public { methods } }`.
// Members preserve declaration order; a name collision overwrites the
// earlier entry in place.
type ClassDefinition struct {
	Name    string
	order   []string
	Members map[string]ClassMember
}

func NewClassDefinition(name string) *ClassDefinition {
	return &ClassDefinition{Name: name, Members: make(map[string]ClassMember)}
}

// Set inserts or overwrites a member, preserving first-seen order.
func (c *ClassDefinition) Set(m ClassMember) {
	if _, exists := c.Members[m.Name]; !exists {
		c.order = append(c.order, m.Name)
	}
	c.Members[m.Name] = m
}

// Attributes returns the class's declared attributes in declaration order.
func (c *ClassDefinition) Attributes() []ClassAttribute {
	attrs := make([]ClassAttribute, 0, len(c.order))
	for _, name := range c.order {
		if m := c.Members[name]; m.Attribute != nil {
			attrs = append(attrs, *m.Attribute)
		}
	}
	return attrs
}

// Method looks up a method by name.
func (c *ClassDefinition) Method(name string) (*FunctionDeclaration, bool) {
	m, ok := c.Members[name]
	if !ok || m.Method == nil {
		return nil, false
	}
	return m.Method, true
}

func (n *ClassDefinition) statementNode() {}
func (n *ClassDefinition) Literal() string {
	return "class " + n.Name
}

// ---- Expressions ----

// Literal is a constant value produced directly by the lexer.
type Literal struct {
	Value objects.Value
}

func (n *Literal) expressionNode() {}
func (n *Literal) Literal() string { return n.Value.String() }

// Variable is a bare name reference, including `self`.
type Variable struct {
	Name string
}

func (n *Variable) expressionNode() {}
func (n *Variable) Literal() string { return n.Name }

// Grouping is a parenthesized expression `( expr )`.
type Grouping struct {
	Inner Expression
}

func (n *Grouping) expressionNode() {}
func (n *Grouping) Literal() string { return "(" + n.Inner.Literal() + ")" }

// BinaryOp is one of the arithmetic operators: + - * / %.
type BinaryOp struct {
	Left     Expression
	Operator string
	Right    Expression
}

func (n *BinaryOp) expressionNode() {}
func (n *BinaryOp) Literal() string {
	return "(" + n.Left.Literal() + " " + n.Operator + " " + n.Right.Literal() + ")"
}

// UnaryOp is a prefix operator: - + not.
type UnaryOp struct {
	Operator string
	Operand  Expression
}

func (n *UnaryOp) expressionNode() {}
func (n *UnaryOp) Literal() string { return "(" + n.Operator + n.Operand.Literal() + ")" }

// Comparison is one of: == != < > <= >=.
type Comparison struct {
	Left     Expression
	Operator string
	Right    Expression
}

func (n *Comparison) expressionNode() {}
func (n *Comparison) Literal() string {
	return "(" + n.Left.Literal() + " " + n.Operator + " " + n.Right.Literal() + ")"
}

// Logical is a short-circuit `and`/`or` expression.
type Logical struct {
	Left     Expression
	Operator string
	Right    Expression
}

func (n *Logical) expressionNode() {}
func (n *Logical) Literal() string {
	return "(" + n.Left.Literal() + " " + n.Operator + " " + n.Right.Literal() + ")"
}

// ListLiteral is `[ e1, e2, ... ]`.
type ListLiteral struct {
	Elements []Expression
}

func (n *ListLiteral) expressionNode() {}
func (n *ListLiteral) Literal() string {
	out := "["
	for i, e := range n.Elements {
		if i > 0 {
			out += ", "
		}
		out += e.Literal()
	}
	return out + "]"
}

// FunctionCall is `NAME(args)`, where NAME names either a user function,
// a registered class (constructing an instance), or a built-in.
type FunctionCall struct {
	Name string
	Args []Expression
}

func (n *FunctionCall) expressionNode() {}
func (n *FunctionCall) Literal() string { return n.Name + "(...)" }

// MemberAccess is `object.member`.
type MemberAccess struct {
	Object Expression
	Member string
}

func (n *MemberAccess) expressionNode() {}
func (n *MemberAccess) Literal() string { return n.Object.Literal() + "." + n.Member }

// MethodCall is `object.method(args)`.
type MethodCall struct {
	Object Expression
	Method string
	Args   []Expression
}

func (n *MethodCall) expressionNode() {}
func (n *MethodCall) Literal() string { return n.Object.Literal() + "." + n.Method + "(...)" }
