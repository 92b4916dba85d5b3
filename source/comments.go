/*
File    : oxymix/source/comments.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package source prepares raw program text for the lexer: stripping
// `//` line comments while respecting string literals, so a `//`
// appearing inside a quoted string is never mistaken for a comment.
package source

import "strings"

// StripComments removes every `//` line comment from content, preserving
// line structure (a stripped comment still ends in a newline, so line
// numbers reported by later stages are unaffected). Only double- and
// single-quoted string literals are honored; there is no block-comment
// syntax in this language.
func StripComments(content string) string {
	var result strings.Builder
	inString := false
	stringChar := rune('"')
	escaped := false

	runes := []rune(content)
	n := len(runes)
	i := 0
	for i < n {
		ch := runes[i]
		i++

		if escaped {
			result.WriteRune(ch)
			escaped = false
			continue
		}

		if inString {
			result.WriteRune(ch)
			if ch == '\\' {
				escaped = true
			} else if ch == stringChar {
				inString = false
			}
			continue
		}

		switch ch {
		case '"', '\'':
			inString = true
			stringChar = ch
			result.WriteRune(ch)
		case '/':
			if i < n && runes[i] == '/' {
				i++ // consume the second '/'
				for i < n {
					next := runes[i]
					i++
					if next == '\n' {
						result.WriteRune('\n')
						break
					}
				}
			} else {
				result.WriteRune(ch)
			}
		default:
			result.WriteRune(ch)
		}
	}

	return result.String()
}
