/*
File    : oxymix/main/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestArgMode pins the CLI's flag-to-mode mapping, including the
// --test harness hook, which must exit cleanly rather than fall
// through to file mode and try to read a file named "--test".
func TestArgMode(t *testing.T) {
	assert.Equal(t, "help", argMode("--help"))
	assert.Equal(t, "help", argMode("-h"))
	assert.Equal(t, "version", argMode("--version"))
	assert.Equal(t, "version", argMode("-v"))
	assert.Equal(t, "test", argMode("--test"))
	assert.Equal(t, "server", argMode("server"))
	assert.Equal(t, "file", argMode("program.oxy"))
	assert.Equal(t, "file", argMode("--unknown-flag"))
}
