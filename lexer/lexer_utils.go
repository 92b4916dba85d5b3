/*
File: oxymix/lexer/lexer_utils.go
Author: Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/oxymix/objects"
)

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphanumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// readIdentifier scans a maximal run of alphanumeric/underscore
// characters starting with a letter or underscore, and classifies it
// against the fixed keyword table.
func (lex *Lexer) readIdentifier() Token {
	start := lex.Position
	line, col := lex.Line, lex.Column
	for !lex.AtEnd() && isAlphanumeric(lex.Current) {
		lex.Advance()
	}
	text := lex.Src[start:lex.Position]
	tokType := lookupIdent(text)

	if tokType == TYPE {
		return Token{Type: TYPE, Literal: text, Line: line, Column: col}
	}
	if text == "true" {
		return Token{Type: LITERAL, Literal: text, Value: objects.Bool{Value: true}, Line: line, Column: col}
	}
	if text == "false" {
		return Token{Type: LITERAL, Literal: text, Value: objects.Bool{Value: false}, Line: line, Column: col}
	}
	return Token{Type: tokType, Literal: text, Line: line, Column: col}
}

// readNumber scans a maximal run of digits, optionally followed by a
// '.' and more digits, then tries to parse it as i32, then i64, then
// (only if it contains a decimal point) f32, then f64. First success
// wins.
func (lex *Lexer) readNumber() Token {
	start := lex.Position
	line, col := lex.Line, lex.Column
	for !lex.AtEnd() && isDigit(lex.Current) {
		lex.Advance()
	}
	if !lex.AtEnd() && lex.Current == '.' && isDigit(lex.Peek()) {
		lex.Advance()
		for !lex.AtEnd() && isDigit(lex.Current) {
			lex.Advance()
		}
	}
	text := lex.Src[start:lex.Position]
	return Token{Type: LITERAL, Literal: text, Value: parseNumericLiteral(text), Line: line, Column: col}
}

func parseNumericLiteral(text string) objects.Value {
	hasDot := strings.Contains(text, ".")

	if !hasDot {
		if i, err := strconv.ParseInt(text, 10, 32); err == nil {
			return objects.Int32{Value: int32(i)}
		}
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return objects.Int64{Value: i}
		}
	}
	if hasDot {
		if f, err := strconv.ParseFloat(text, 32); err == nil {
			if _, err64 := strconv.ParseFloat(text, 64); err64 == nil {
				return objects.Float32{Value: float32(f)}
			}
		}
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return objects.Float64{Value: f}
		}
	}
	return objects.Int32{Value: 0}
}

// readString scans a string literal opened and closed by quote (either
// '"' or '\''), handling the escapes \n \t \r \\ \" \'. An unrecognized
// escape preserves the backslash and the following character verbatim.
func (lex *Lexer) readString(quote byte) Token {
	line, col := lex.Line, lex.Column
	lex.Advance() // consume opening quote
	var sb strings.Builder

	for !lex.AtEnd() && lex.Current != quote {
		if lex.Current == '\\' {
			lex.Advance()
			if lex.AtEnd() {
				break
			}
			switch lex.Current {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			case '\'':
				sb.WriteByte('\'')
			default:
				sb.WriteByte('\\')
				sb.WriteByte(lex.Current)
			}
			lex.Advance()
			continue
		}
		sb.WriteByte(lex.Current)
		lex.Advance()
	}
	if !lex.AtEnd() {
		lex.Advance() // consume closing quote
	}

	text := sb.String()
	return Token{Type: LITERAL, Literal: text, Value: objects.Str{Value: text}, Line: line, Column: col}
}
