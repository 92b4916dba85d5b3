/*
File    : oxymix/builtin/builtin_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/oxymix/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func find(t *testing.T, name string) Func {
	t.Helper()
	for _, b := range Registry() {
		if b.Name == name {
			return b.Fn
		}
	}
	require.Failf(t, "builtin not found", "%s", name)
	return nil
}

func TestPrintlnListFormatting(t *testing.T) {
	var out, errOut bytes.Buffer
	fn := find(t, "println")
	list := objects.List{Elements: []objects.Value{objects.Int32{Value: 1}, objects.Str{Value: "a"}}}
	fn(&out, &errOut, []objects.Value{list})
	assert.Equal(t, "[1, \"a\"]\n", out.String())
}

func TestLenOnStringAndList(t *testing.T) {
	var out, errOut bytes.Buffer
	fn := find(t, "len")
	assert.Equal(t, objects.Int32{Value: 5}, fn(&out, &errOut, []objects.Value{objects.Str{Value: "hello"}}))
	assert.Equal(t, objects.Int32{Value: 2}, fn(&out, &errOut, []objects.Value{objects.List{Elements: []objects.Value{objects.Int32{Value: 1}, objects.Int32{Value: 2}}}}))
}

func TestToStringRejectsList(t *testing.T) {
	var out, errOut bytes.Buffer
	fn := find(t, "to_string")
	result := fn(&out, &errOut, []objects.Value{objects.List{}})
	assert.Nil(t, result)
}

func TestParseIntFromStringAndTruncation(t *testing.T) {
	var out, errOut bytes.Buffer
	fn := find(t, "parse_int")
	assert.Equal(t, objects.Int32{Value: 42}, fn(&out, &errOut, []objects.Value{objects.Str{Value: "42"}}))
	assert.Equal(t, objects.Int32{Value: 3}, fn(&out, &errOut, []objects.Value{objects.Float64{Value: 3.9}}))
}

func TestAbsAcrossNumericTypes(t *testing.T) {
	var out, errOut bytes.Buffer
	fn := find(t, "abs")
	assert.Equal(t, objects.Int32{Value: 5}, fn(&out, &errOut, []objects.Value{objects.Int32{Value: -5}}))
	assert.Equal(t, objects.Float64{Value: 5.5}, fn(&out, &errOut, []objects.Value{objects.Float64{Value: -5.5}}))
}
