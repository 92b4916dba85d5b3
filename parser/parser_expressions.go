/*
File    : oxymix/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/oxymix/lexer"

// parseExpression is the grammar's entry point: logical-or is the
// lowest-precedence production.
func (p *Parser) parseExpression() Expression {
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() Expression {
	left := p.parseLogicalAnd()
	if left == nil {
		return nil
	}
	for p.checkTag(lexer.OR) {
		p.advance()
		right := p.parseLogicalAnd()
		if right == nil {
			return nil
		}
		left = &Logical{Left: left, Operator: "or", Right: right}
	}
	return left
}

func (p *Parser) parseLogicalAnd() Expression {
	left := p.parseEquality()
	if left == nil {
		return nil
	}
	for p.checkTag(lexer.AND) {
		p.advance()
		right := p.parseEquality()
		if right == nil {
			return nil
		}
		left = &Logical{Left: left, Operator: "and", Right: right}
	}
	return left
}

// parseEquality handles == != < > <= >= all at one precedence level,
// left-associative with no chaining beyond a left-fold.
func (p *Parser) parseEquality() Expression {
	left := p.parseAdditive()
	if left == nil {
		return nil
	}
	for {
		op, ok := comparisonOperator(p.current().Type)
		if !ok {
			break
		}
		p.advance()
		right := p.parseAdditive()
		if right == nil {
			return nil
		}
		left = &Comparison{Left: left, Operator: op, Right: right}
	}
	return left
}

func comparisonOperator(tt lexer.TokenType) (string, bool) {
	switch tt {
	case lexer.EQ:
		return "==", true
	case lexer.NEQ:
		return "!=", true
	case lexer.LT:
		return "<", true
	case lexer.GT:
		return ">", true
	case lexer.LE:
		return "<=", true
	case lexer.GE:
		return ">=", true
	default:
		return "", false
	}
}

func (p *Parser) parseAdditive() Expression {
	left := p.parseMultiplicative()
	if left == nil {
		return nil
	}
	for p.checkTag(lexer.PLUS) || p.checkTag(lexer.MINUS) {
		op := "+"
		if p.current().Type == lexer.MINUS {
			op = "-"
		}
		p.advance()
		right := p.parseMultiplicative()
		if right == nil {
			return nil
		}
		left = &BinaryOp{Left: left, Operator: op, Right: right}
	}
	return left
}

func (p *Parser) parseMultiplicative() Expression {
	left := p.parseUnary()
	if left == nil {
		return nil
	}
	for p.checkTag(lexer.STAR) || p.checkTag(lexer.SLASH) || p.checkTag(lexer.PERCENT) {
		var op string
		switch p.current().Type {
		case lexer.STAR:
			op = "*"
		case lexer.SLASH:
			op = "/"
		case lexer.PERCENT:
			op = "%"
		}
		p.advance()
		right := p.parseUnary()
		if right == nil {
			return nil
		}
		left = &BinaryOp{Left: left, Operator: op, Right: right}
	}
	return left
}

// parseUnary handles prefix - + not, right-associative via recursion.
func (p *Parser) parseUnary() Expression {
	switch p.current().Type {
	case lexer.MINUS:
		p.advance()
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return &UnaryOp{Operator: "-", Operand: operand}
	case lexer.PLUS:
		p.advance()
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return &UnaryOp{Operator: "+", Operand: operand}
	case lexer.NOT:
		p.advance()
		operand := p.parseUnary()
		if operand == nil {
			return nil
		}
		return &UnaryOp{Operator: "not", Operand: operand}
	default:
		return p.parsePostfix()
	}
}

// parsePostfix parses a primary expression followed by a chain of
// `.member`, `.method(args)`, or `(args)` postfix operations.
func (p *Parser) parsePostfix() Expression {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}

	for {
		switch p.current().Type {
		case lexer.DOT:
			p.advance()
			nameTok, ok := p.expect(lexer.IDENT, "member name after '.'")
			if !ok {
				return nil
			}
			if p.checkTag(lexer.LPAREN) {
				args, ok := p.parseArgumentList()
				if !ok {
					return nil
				}
				expr = &MethodCall{Object: expr, Method: nameTok.Literal, Args: args}
			} else {
				expr = &MemberAccess{Object: expr, Member: nameTok.Literal}
			}
		case lexer.LPAREN:
			v, ok := expr.(*Variable)
			if !ok {
				p.addError("cannot call a non-variable expression %q", expr.Literal())
				return nil
			}
			args, ok := p.parseArgumentList()
			if !ok {
				return nil
			}
			expr = &FunctionCall{Name: v.Name, Args: args}
		default:
			return expr
		}
	}
}

func (p *Parser) parseArgumentList() ([]Expression, bool) {
	if _, ok := p.expect(lexer.LPAREN, "to open argument list"); !ok {
		return nil, false
	}
	args := make([]Expression, 0)
	for !p.checkTag(lexer.RPAREN) && !p.isAtEnd() {
		arg := p.parseExpression()
		if arg == nil {
			return nil, false
		}
		args = append(args, arg)
		if !p.match(lexer.COMMA) {
			break
		}
	}
	if _, ok := p.expect(lexer.RPAREN, "to close argument list"); !ok {
		return nil, false
	}
	return args, true
}

// parsePrimary handles literals, identifiers, self, parenthesized
// groupings and list literals.
func (p *Parser) parsePrimary() Expression {
	tok := p.current()
	switch tok.Type {
	case lexer.LITERAL:
		p.advance()
		return &Literal{Value: tok.Value}
	case lexer.SELF:
		p.advance()
		return &Variable{Name: "self"}
	case lexer.IDENT:
		p.advance()
		return &Variable{Name: tok.Literal}
	case lexer.LPAREN:
		p.advance()
		inner := p.parseExpression()
		if inner == nil {
			return nil
		}
		if _, ok := p.expect(lexer.RPAREN, "to close grouping"); !ok {
			return nil
		}
		return &Grouping{Inner: inner}
	case lexer.LBRACKET:
		p.advance()
		elements := make([]Expression, 0)
		for !p.checkTag(lexer.RBRACKET) && !p.isAtEnd() {
			el := p.parseExpression()
			if el == nil {
				return nil
			}
			elements = append(elements, el)
			if !p.match(lexer.COMMA) {
				break
			}
		}
		if _, ok := p.expect(lexer.RBRACKET, "to close list literal"); !ok {
			return nil
		}
		return &ListLiteral{Elements: elements}
	default:
		p.addError("unexpected token %s %q in expression", tok.Type, tok.Literal)
		return nil
	}
}
