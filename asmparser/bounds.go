package asmparser

import (
	"fmt"
	"sort"
)

// Interval is the range of emitted instruction indexes [Start, End) owned by
// one function-opening label.
type Interval struct {
	Name  string `json:"name" yaml:"name"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
}

// Len returns the number of instructions in the interval.
func (i Interval) Len() int {
	return i.End - i.Start
}

// Contains reports whether the instruction index lies in the interval.
func (i Interval) Contains(index int) bool {
	return i.Start <= index && index < i.End
}

// FunctionBounds is an ordered set of non-overlapping function intervals.
type FunctionBounds struct {
	intervals []Interval
}

// NewFunctionBounds constructs the bounds from intervals given in order.
// It panics if the intervals are empty, inverted, unordered or overlapping.
func NewFunctionBounds(intervals ...Interval) *FunctionBounds {
	for i, iv := range intervals {
		if iv.Start < 0 || iv.Start >= iv.End {
			panic(fmt.Sprintf("invalid function interval %s [%d,%d)", iv.Name, iv.Start, iv.End))
		}
		if i > 0 && intervals[i-1].End > iv.Start {
			panic(fmt.Sprintf("function interval %s overlaps %s", iv.Name, intervals[i-1].Name))
		}
	}
	return &FunctionBounds{intervals: append([]Interval{}, intervals...)}
}

// Intervals returns a copy of the intervals, ordered by start index.
func (b *FunctionBounds) Intervals() []Interval {
	if b == nil {
		return nil
	}
	return append([]Interval{}, b.intervals...)
}

// Len returns the number of functions.
func (b *FunctionBounds) Len() int {
	if b == nil {
		return 0
	}
	return len(b.intervals)
}

// Lookup finds the function containing the given instruction index.
func (b *FunctionBounds) Lookup(index int) (Interval, bool) {
	if b == nil {
		return Interval{}, false
	}
	i := sort.Search(len(b.intervals), func(i int) bool {
		return b.intervals[i].End > index
	})
	if i < len(b.intervals) && b.intervals[i].Contains(index) {
		return b.intervals[i], true
	}
	return Interval{}, false
}

// Find returns the first interval recorded under the given function name.
func (b *FunctionBounds) Find(name string) (Interval, bool) {
	if b == nil {
		return Interval{}, false
	}
	for _, iv := range b.intervals {
		if iv.Name == name {
			return iv, true
		}
	}
	return Interval{}, false
}
