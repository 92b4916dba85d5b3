/*
File: oxymix/lexer/lexer_test.go
Author: Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/akashmaji946/oxymix/objects"
	"github.com/stretchr/testify/assert"
)

func tokenTypes(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, t := range tokens {
		out[i] = t.Type
	}
	return out
}

func TestKeywordRoundTrip(t *testing.T) {
	cases := map[string]TokenType{
		"let":    LET,
		"if":     IF,
		"else":   ELSE,
		"for":    FOR,
		"in":     IN,
		"while":  WHILE,
		"fn":     FN,
		"return": RETURN,
		"class":  CLASS,
		"public": PUBLIC,
		"self":   SELF,
		"and":    AND,
		"or":     OR,
		"not":    NOT,
	}
	for word, want := range cases {
		t.Run(word, func(t *testing.T) {
			toks := NewLexer(word).Tokenize()
			assert.Equal(t, []TokenType{want, EOF}, tokenTypes(toks))
		})
	}
}

func TestTypeKeywords(t *testing.T) {
	for _, word := range []string{"i32", "i64", "f32", "f64", "bool", "string", "list"} {
		toks := NewLexer(word).Tokenize()
		assert.Equal(t, TYPE, toks[0].Type)
		assert.Equal(t, word, toks[0].Literal)
	}
}

func TestOperatorFolding(t *testing.T) {
	toks := NewLexer("== != <= >= < > = !").Tokenize()
	// "> =" folds into >= because the fold rule looks at the previously
	// emitted token, not at adjacency (see TestOperatorFoldingAcrossWhitespace).
	want := []TokenType{EQ, NEQ, LE, GE, LT, GE, NOT, EOF}
	assert.Equal(t, want, tokenTypes(toks))
}

func TestOperatorFoldingAcrossWhitespace(t *testing.T) {
	// The fold rule checks the previously emitted token, not adjacency,
	// so whitespace between the two characters still folds.
	toks := NewLexer("! =").Tokenize()
	assert.Equal(t, []TokenType{NEQ, EOF}, tokenTypes(toks))
}

func TestNumericLiteralCascade(t *testing.T) {
	toks := NewLexer("42 3.14 9000000000").Tokenize()
	require := assert.New(t)
	require.Equal(objects.Int32{Value: 42}, toks[0].Value)
	require.Equal(objects.Float32{Value: 3.14}, toks[1].Value)
	require.Equal(objects.Int64{Value: 9000000000}, toks[2].Value)
}

func TestStringLiteralEscapes(t *testing.T) {
	toks := NewLexer(`"a\nb\tc\\d\"e\q"`).Tokenize()
	assert.Equal(t, "a\nb\tc\\d\"e\\q", toks[0].Value.(objects.Str).Value)
}

func TestBooleanLiterals(t *testing.T) {
	toks := NewLexer("true false").Tokenize()
	assert.Equal(t, objects.Bool{Value: true}, toks[0].Value)
	assert.Equal(t, objects.Bool{Value: false}, toks[1].Value)
}

func TestIdentifier(t *testing.T) {
	toks := NewLexer("x_1 counter").Tokenize()
	assert.Equal(t, []TokenType{IDENT, IDENT, EOF}, tokenTypes(toks))
	assert.Equal(t, "x_1", toks[0].Literal)
}
