/*
File    : oxymix/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/oxymix/lexer"
)

// Parser holds a token cursor and the error-accumulation state used by
// the recursive-descent productions. It never panics on malformed
// input: every production that cannot recognize its construct returns
// a nil node and appends a message to Errors, and the top-level Parse
// loop skips one token and retries.
type Parser struct {
	tokens []lexer.Token
	pos    int

	Errors []string
}

// NewParser tokenizes src and returns a parser positioned at the first
// token.
func NewParser(src string) *Parser {
	toks := lexer.NewLexer(src).Tokenize()
	return &Parser{tokens: toks, Errors: make([]string, 0)}
}

// HasErrors reports whether any production has logged a parse error.
func (p *Parser) HasErrors() bool { return len(p.Errors) > 0 }

// GetErrors returns the accumulated parse error messages.
func (p *Parser) GetErrors() []string { return p.Errors }

func (p *Parser) addError(format string, args ...interface{}) {
	p.Errors = append(p.Errors, fmt.Sprintf(format, args...))
}

// current returns the token under the cursor without consuming it.
func (p *Parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Type: lexer.EOF}
	}
	return p.tokens[p.pos]
}

// peek returns the token `offset` positions ahead of the cursor.
func (p *Parser) peek(offset int) lexer.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return lexer.Token{Type: lexer.EOF}
	}
	return p.tokens[idx]
}

// advance consumes and returns the current token.
func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// isAtEnd reports whether the cursor has reached the EOF token.
func (p *Parser) isAtEnd() bool {
	return p.current().Type == lexer.EOF
}

// match advances and returns true if the current token's tag equals
// tt; otherwise the cursor is left unmoved.
func (p *Parser) match(tt lexer.TokenType) bool {
	if p.current().Type == tt {
		p.advance()
		return true
	}
	return false
}

// checkTag reports whether the current token's tag equals tt, without
// consuming.
func (p *Parser) checkTag(tt lexer.TokenType) bool {
	return p.current().Type == tt
}

// expect consumes the current token if its tag equals tt; otherwise it
// logs an error and returns the zero Token plus false.
func (p *Parser) expect(tt lexer.TokenType, context string) (lexer.Token, bool) {
	if p.checkTag(tt) {
		return p.advance(), true
	}
	p.addError("expected %s %s, got %s %q", tt, context, p.current().Type, p.current().Literal)
	return lexer.Token{}, false
}

// Parse consumes the whole token stream, returning a Program. Any
// statement production that cannot recognize the current token yields
// no statement; the loop then skips one token and tries again, so a
// malformed program yields a shorter-than-intended statement list
// rather than failing outright.
func (p *Parser) Parse() *Program {
	program := &Program{Statements: make([]Statement, 0)}

	for !p.isAtEnd() {
		before := p.pos
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		if p.pos == before {
			// No production consumed anything: skip one token to make
			// forward progress and retry.
			p.advance()
		}
	}

	return program
}
