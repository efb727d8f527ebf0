package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironment_DefineAndGet(t *testing.T) {
	env := NewEnvironment()
	env.Define("a", 1.0)

	v, ok := env.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestEnvironment_GetWalksOuterScopes(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("a", "outer value")
	inner := NewEnclosedEnvironment(outer)

	v, ok := inner.Get("a")
	require.True(t, ok)
	assert.Equal(t, "outer value", v)
}

func TestEnvironment_AssignFailsForUndefinedName(t *testing.T) {
	env := NewEnvironment()
	err := env.Assign("missing", 1.0)
	assert.Error(t, err)
}

func TestEnvironment_AssignUpdatesOuterScope(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("a", 1.0)
	inner := NewEnclosedEnvironment(outer)

	require.NoError(t, inner.Assign("a", 2.0))

	v, _ := outer.Get("a")
	assert.Equal(t, 2.0, v)
}

func TestEnvironment_GetAtHopsExactDistance(t *testing.T) {
	global := NewEnvironment()
	global.Define("a", "global")
	middle := NewEnclosedEnvironment(global)
	middle.Define("a", "middle")
	inner := NewEnclosedEnvironment(middle)

	v, ok := inner.GetAt(1, "a")
	require.True(t, ok)
	assert.Equal(t, "middle", v)
}

func TestEnvironment_AssignAtHopsExactDistance(t *testing.T) {
	global := NewEnvironment()
	global.Define("a", "global")
	inner := NewEnclosedEnvironment(global)

	inner.AssignAt(1, "a", "changed")

	v, _ := global.Get("a")
	assert.Equal(t, "changed", v)
}
