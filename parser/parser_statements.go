/*
File    : oxymix/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/oxymix/lexer"
	"github.com/akashmaji946/oxymix/objects"
)

// parseStatement dispatches on the leading token to the matching
// statement production.
func (p *Parser) parseStatement() Statement {
	switch p.current().Type {
	case lexer.LET:
		return p.parseVariableDeclaration()
	case lexer.IF:
		return p.parseConditional()
	case lexer.FOR:
		return p.parseForLoop()
	case lexer.WHILE:
		return p.parseWhileLoop()
	case lexer.FN:
		return p.parseFunctionDeclaration()
	case lexer.RETURN:
		return p.parseReturn()
	case lexer.LBRACE:
		return p.parseBlock()
	case lexer.CLASS:
		return p.parseClassDefinition()
	case lexer.IDENT, lexer.SELF:
		return p.parseAssignmentOrExpression()
	default:
		p.addError("unexpected token %s %q at start of statement", p.current().Type, p.current().Literal)
		return nil
	}
}

// parseVariableDeclaration parses `let NAME (: TYPE)? = expr`. The
// declared type defaults to string when omitted.
func (p *Parser) parseVariableDeclaration() Statement {
	p.advance() // consume `let`

	nameTok, ok := p.expect(lexer.IDENT, "variable name")
	if !ok {
		return nil
	}

	declaredType := objects.StringType
	if p.match(lexer.COLON) {
		typeTok, ok := p.expect(lexer.TYPE, "after ':'")
		if !ok {
			return nil
		}
		declaredType = typeTagFromLiteral(typeTok.Literal)
	}

	if _, ok := p.expect(lexer.ASSIGN, "in variable declaration"); !ok {
		return nil
	}

	init := p.parseExpression()
	if init == nil {
		return nil
	}

	return &VariableDeclaration{Name: nameTok.Literal, DeclaredType: declaredType, Init: init}
}

func typeTagFromLiteral(literal string) objects.TypeTag {
	switch literal {
	case "i32":
		return objects.I32Type
	case "i64":
		return objects.I64Type
	case "f32":
		return objects.F32Type
	case "f64":
		return objects.F64Type
	case "bool":
		return objects.BoolType
	case "string":
		return objects.StringType
	case "list":
		return objects.ListType
	default:
		return objects.NoneType
	}
}

// parseConditional parses `if ( expr ) { block } (else { block })?`.
func (p *Parser) parseConditional() Statement {
	p.advance() // consume `if`
	if _, ok := p.expect(lexer.LPAREN, "after 'if'"); !ok {
		return nil
	}
	cond := p.parseExpression()
	if cond == nil {
		return nil
	}
	if _, ok := p.expect(lexer.RPAREN, "after if condition"); !ok {
		return nil
	}
	thenBlock := p.parseBlock()
	if thenBlock == nil {
		return nil
	}

	var elseBlock *Block
	if p.match(lexer.ELSE) {
		eb := p.parseBlock()
		if eb == nil {
			return nil
		}
		elseBlock = eb.(*Block)
	}

	return &Conditional{Condition: cond, Then: thenBlock.(*Block), Else: elseBlock}
}

// parseForLoop parses the counted loop:
// `for NAME in ./[ start , end , step ]{ block }`.
// The `in ./[...]` spelling is a deliberate, literal syntax for a range
// triple - not a general iterator protocol.
func (p *Parser) parseForLoop() Statement {
	p.advance() // consume `for`

	nameTok, ok := p.expect(lexer.IDENT, "loop variable")
	if !ok {
		return nil
	}
	if _, ok := p.expect(lexer.IN, "after loop variable"); !ok {
		return nil
	}
	if _, ok := p.expect(lexer.DOT, "in range syntax './['"); !ok {
		return nil
	}
	if _, ok := p.expect(lexer.SLASH, "in range syntax './['"); !ok {
		return nil
	}
	if _, ok := p.expect(lexer.LBRACKET, "in range syntax './['"); !ok {
		return nil
	}

	start := p.parseExpression()
	if start == nil {
		return nil
	}
	if _, ok := p.expect(lexer.COMMA, "between range bounds"); !ok {
		return nil
	}
	end := p.parseExpression()
	if end == nil {
		return nil
	}
	if _, ok := p.expect(lexer.COMMA, "between range bounds"); !ok {
		return nil
	}
	step := p.parseExpression()
	if step == nil {
		return nil
	}
	if _, ok := p.expect(lexer.RBRACKET, "closing range triple"); !ok {
		return nil
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}

	return &ForLoop{Variable: nameTok.Literal, Start: start, End: end, Step: step, Body: body.(*Block)}
}

// parseWhileLoop parses `while ( expr ) { block }`.
func (p *Parser) parseWhileLoop() Statement {
	p.advance() // consume `while`
	if _, ok := p.expect(lexer.LPAREN, "after 'while'"); !ok {
		return nil
	}
	cond := p.parseExpression()
	if cond == nil {
		return nil
	}
	if _, ok := p.expect(lexer.RPAREN, "after while condition"); !ok {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}
	return &WhileLoop{Condition: cond, Body: body.(*Block)}
}

// parseBlock parses `{ statement* }`. Returns a Statement so callers
// that need a *Block can type-assert; this keeps parseStatement's
// dispatch table uniform.
func (p *Parser) parseBlock() Statement {
	if _, ok := p.expect(lexer.LBRACE, "to open block"); !ok {
		return nil
	}
	block := &Block{Statements: make([]Statement, 0)}
	for !p.checkTag(lexer.RBRACE) && !p.isAtEnd() {
		before := p.pos
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		if p.pos == before {
			p.advance()
		}
	}
	if _, ok := p.expect(lexer.RBRACE, "to close block"); !ok {
		return nil
	}
	return block
}

// parseReturn parses `return expr?`. The value is absent if the next
// token is `}`, `let`, `if`, `for`, or end-of-input.
func (p *Parser) parseReturn() Statement {
	p.advance() // consume `return`

	switch p.current().Type {
	case lexer.RBRACE, lexer.LET, lexer.IF, lexer.FOR, lexer.EOF:
		return &Return{Value: nil}
	}

	value := p.parseExpression()
	return &Return{Value: value}
}

// parseFunctionDeclaration parses `fn NAME ( params ) { block }`.
func (p *Parser) parseFunctionDeclaration() Statement {
	p.advance() // consume `fn`
	nameTok, ok := p.expect(lexer.IDENT, "function name")
	if !ok {
		return nil
	}
	params, ok := p.parseParameterList()
	if !ok {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}
	return &FunctionDeclaration{Name: nameTok.Literal, Params: params, Body: body.(*Block)}
}

// parseParameterList parses a comma-separated, possibly empty,
// parenthesized parameter list. Each parameter is either `self` (no
// annotation) or `NAME : TYPE`.
func (p *Parser) parseParameterList() ([]Parameter, bool) {
	if _, ok := p.expect(lexer.LPAREN, "to open parameter list"); !ok {
		return nil, false
	}
	params := make([]Parameter, 0)
	for !p.checkTag(lexer.RPAREN) && !p.isAtEnd() {
		if p.checkTag(lexer.SELF) {
			p.advance()
			params = append(params, Parameter{Name: "self", IsSelf: true})
		} else {
			nameTok, ok := p.expect(lexer.IDENT, "parameter name")
			if !ok {
				return nil, false
			}
			if _, ok := p.expect(lexer.COLON, "after parameter name"); !ok {
				return nil, false
			}
			typeTok, ok := p.expect(lexer.TYPE, "as parameter type")
			if !ok {
				return nil, false
			}
			params = append(params, Parameter{Name: nameTok.Literal, Type: typeTagFromLiteral(typeTok.Literal)})
		}
		if !p.match(lexer.COMMA) {
			break
		}
	}
	if _, ok := p.expect(lexer.RPAREN, "to close parameter list"); !ok {
		return nil, false
	}
	return params, true
}

// parseAssignmentOrExpression parses a full expression starting from a
// leading identifier, then decides what statement it forms:
//   - expr '=' value, expr a bare Variable -> Assignment
//   - expr '=' value, expr a MemberAccess  -> MemberAssignment
//   - expr '='      , anything else        -> parse failure
//   - no '='                               -> ExpressionStatement
func (p *Parser) parseAssignmentOrExpression() Statement {
	expr := p.parseExpression()
	if expr == nil {
		return nil
	}

	if !p.match(lexer.ASSIGN) {
		return &ExpressionStatement{Expr: expr}
	}

	value := p.parseExpression()
	if value == nil {
		return nil
	}

	switch target := expr.(type) {
	case *Variable:
		return &Assignment{Name: target.Name, Value: value}
	case *MemberAccess:
		return &MemberAssignment{Object: target.Object, Member: target.Member, Value: value}
	default:
		p.addError("invalid assignment target %q", expr.Literal())
		return nil
	}
}
