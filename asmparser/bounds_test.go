package asmparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctionBoundsLookup(t *testing.T) {
	bounds := NewFunctionBounds(
		Interval{Name: "foo", Start: 0, End: 2},
		Interval{Name: "bar", Start: 4, End: 5},
	)
	require.Equal(t, 2, bounds.Len())

	cases := map[int]string{0: "foo", 1: "foo", 4: "bar"}
	for index, name := range cases {
		iv, ok := bounds.Lookup(index)
		require.True(t, ok, index)
		assert.Equal(t, name, iv.Name)
	}
	for _, index := range []int{-1, 2, 3, 5, 100} {
		_, ok := bounds.Lookup(index)
		assert.False(t, ok, index)
	}

	iv, ok := bounds.Find("bar")
	require.True(t, ok)
	assert.Equal(t, 1, iv.Len())
	_, ok = bounds.Find("baz")
	assert.False(t, ok)
}

func TestFunctionBoundsCopy(t *testing.T) {
	bounds := NewFunctionBounds(Interval{Name: "foo", Start: 0, End: 1})
	intervals := bounds.Intervals()
	intervals[0].Name = "changed"
	assert.Equal(t, "foo", bounds.Intervals()[0].Name)
}

func TestFunctionBoundsInvalid(t *testing.T) {
	assert.Panics(t, func() { NewFunctionBounds(Interval{Name: "empty", Start: 1, End: 1}) })
	assert.Panics(t, func() { NewFunctionBounds(Interval{Name: "inverted", Start: 2, End: 1}) })
	assert.Panics(t, func() {
		NewFunctionBounds(
			Interval{Name: "a", Start: 0, End: 3},
			Interval{Name: "b", Start: 2, End: 4},
		)
	})
}

func TestNilFunctionBounds(t *testing.T) {
	var bounds *FunctionBounds
	assert.Equal(t, 0, bounds.Len())
	assert.Nil(t, bounds.Intervals())
	_, ok := bounds.Lookup(0)
	assert.False(t, ok)
	_, ok = bounds.Find("foo")
	assert.False(t, ok)
}
