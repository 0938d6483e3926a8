package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	var tab Table[int]

	_, err := tab.Lookup("nope")
	require.Error(t, err, "expected lookup on an empty table to fail")
	assert.True(t, errors.Is(err, UndefinedName))
	assert.EqualError(t, err, `undefined name "nope"`)
	assert.Equal(t, 0, tab.Len(), "expected lookup not to mutate")

	assert.False(t, tab.Define("b", 2))
	assert.False(t, tab.Define("a", 1))
	assert.False(t, tab.Define("c", 3))
	assert.True(t, tab.Define("b", 20), "expected overwrite to report replacement")

	val, err := tab.Lookup("b")
	require.NoError(t, err)
	assert.Equal(t, 20, val)
	assert.True(t, tab.Has("a"))
	assert.Equal(t, []string{"a", "b", "c"}, tab.Names())

	for i := 0; i < 3; i++ {
		_, err = tab.Lookup("missing")
		assert.Equal(t, UndefinedName, KindOf(err), "expected deterministic miss")
	}
	assert.Equal(t, 3, tab.Len(), "expected misses not to mutate")

	var seen []int
	tab.Ascend(func(name string, val int) bool {
		seen = append(seen, val)
		return name != "b"
	})
	assert.Equal(t, []int{1, 20}, seen, "expected ascend to stop early")

	assert.True(t, tab.Delete("a"))
	assert.False(t, tab.Delete("a"))
	assert.Equal(t, []string{"b", "c"}, tab.Names())

	tab.Clear()
	assert.Equal(t, 0, tab.Len())
	assert.Empty(t, tab.Names())
}

func TestBuiltins(t *testing.T) {
	assert.Equal(t, []string{"+", "-", "*", "/", "%", "@", "$", "fn"}, Builtins())
	for _, name := range Builtins() {
		op := lookupOp(name)
		assert.NotEqual(t, opNone, op, "expected %q to be built-in", name)
		assert.Equal(t, name, op.String())
	}
	assert.Equal(t, opNone, lookupOp("dup"))
	assert.Equal(t, "<none>", opNone.String())
}

func TestError(t *testing.T) {
	err := errorf(DivisionByZero, "/", "%v / 0", 3)
	assert.EqualError(t, err, `division by zero "/": 3 / 0`)
	assert.True(t, errors.Is(err, DivisionByZero))
	assert.False(t, errors.Is(err, ModuloByZero))
	assert.False(t, DivisionByZero.Structural())
	assert.True(t, UnbalancedClose.Structural())
	assert.Equal(t, "ErrorKind(99)", ErrorKind(99).String())

	var errs LineErrors
	assert.NoError(t, errs.err())
	errs = append(errs, errorf(UnbalancedClose, "]", ""), errorf(AlreadyInvalid, "", ""))
	assert.EqualError(t, errs.err(), `unbalanced close "]" (and 1 more errors)`)
	assert.True(t, errors.Is(errs, AlreadyInvalid))
	assert.Equal(t, UnbalancedClose, KindOf(errs))
}
