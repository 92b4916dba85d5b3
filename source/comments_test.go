/*
File    : oxymix/source/comments_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCommentsRemovesTrailingComment(t *testing.T) {
	got := StripComments("let x = 1 // set x\nlet y = 2\n")
	assert.Equal(t, "let x = 1 \nlet y = 2\n", got)
}

func TestStripCommentsIgnoresSlashInsideString(t *testing.T) {
	got := StripComments(`let path = "a // b"` + "\n")
	assert.Equal(t, `let path = "a // b"`+"\n", got)
}

func TestStripCommentsHandlesEscapedQuote(t *testing.T) {
	got := StripComments(`let s = "a \" b" // trailing` + "\n")
	assert.Equal(t, `let s = "a \" b" `+"\n", got)
}

func TestStripCommentsAtEndOfFileWithoutNewline(t *testing.T) {
	got := StripComments("let x = 1 // no trailing newline")
	assert.Equal(t, "let x = 1 ", got)
}
