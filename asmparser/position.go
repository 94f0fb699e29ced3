package asmparser

import (
	"fmt"
	"sort"
)

// Position is a 1-based line and column in a source text.
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// LineIndex maps byte offsets to positions.
type LineIndex struct {
	// Byte offset at which each line starts.
	starts []int
	size   int
}

// NewLineIndex scans src once for line starts.
func NewLineIndex(src []byte) *LineIndex {
	starts := []int{0}
	for i, c := range src {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{starts: starts, size: len(src)}
}

// Lines returns the number of lines.
func (l *LineIndex) Lines() int {
	return len(l.starts)
}

// Position returns the line and column of offset. Offsets past the end map to
// the end of the source.
func (l *LineIndex) Position(offset int) Position {
	offset = max(0, min(offset, l.size))
	line := sort.Search(len(l.starts), func(i int) bool {
		return l.starts[i] > offset
	}) - 1
	return Position{Line: line + 1, Column: offset - l.starts[line] + 1}
}
