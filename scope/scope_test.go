package scope

import (
	"testing"

	"easylang/value"

	"github.com/stretchr/testify/assert"
)

func TestScope_AssignAndLookupInSameScope(t *testing.T) {
	g := NewGlobal()
	g.Assign("x", value.Number(1))
	v, ok := g.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, value.Number(1), v)
}

func TestScope_LookupMissingReturnsFalse(t *testing.T) {
	g := NewGlobal()
	_, ok := g.Lookup("nope")
	assert.False(t, ok)
}

func TestScope_LookupWalksToParent(t *testing.T) {
	g := NewGlobal()
	g.Assign("x", value.Number(10))
	child := NewChild(g)
	v, ok := child.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, value.Number(10), v)
}

func TestScope_AssignNeverWalksToParent(t *testing.T) {
	g := NewGlobal()
	g.Assign("x", value.Number(10))
	child := NewChild(g)
	child.Assign("x", value.Number(99))

	childVal, _ := child.Lookup("x")
	globalVal, _ := g.Lookup("x")
	assert.Equal(t, value.Number(99), childVal)
	assert.Equal(t, value.Number(10), globalVal, "child's assign must not overwrite the parent binding")
}

func TestScope_ChildOnlyBindingDoesNotLeakToGlobal(t *testing.T) {
	g := NewGlobal()
	child := NewChild(g)
	child.Assign("local", value.Number(5))
	_, okInChild := child.Lookup("local")
	_, okInGlobal := g.Lookup("local")
	assert.True(t, okInChild)
	assert.False(t, okInGlobal, "a binding created only in a child scope must not leak to Global")
}
