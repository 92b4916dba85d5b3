/*
File    : oxymix/env/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package env

import (
	"testing"

	"github.com/akashmaji946/oxymix/objects"
	"github.com/stretchr/testify/assert"
)

func TestSnapshotIsIndependentOfOriginal(t *testing.T) {
	e := New()
	e.Set("x", objects.Int32{Value: 1})

	snap := e.Snapshot()
	snap.Set("x", objects.Int32{Value: 99})
	snap.Set("y", objects.Int32{Value: 2})

	original, _ := e.Get("x")
	assert.Equal(t, objects.Int32{Value: 1}, original)
	_, exists := e.Get("y")
	assert.False(t, exists, "mutation inside the snapshot must not reach the caller's environment")
}

func TestClassRegistry(t *testing.T) {
	e := New()
	_, ok := e.GetClass("Box")
	assert.False(t, ok)
	assert.False(t, e.HasClass("Box"))
}
