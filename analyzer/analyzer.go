// Package analyzer provides an interface for checking parsed assembly units for issues.
package analyzer

import (
	"path/filepath"
	"sort"

	"github.com/ChainSafe/asm-lens/asmparser"
)

// Analyzer represents the interface for the analyzer.
type Analyzer interface {
	// Analyze inspects a parsed unit and returns any issues found.
	Analyze(unit *asmparser.Unit) ([]*Issue, error)
}

// IssueSeverity represents the severity level of an issue.
type IssueSeverity string

const (
	IssueSeverityCritical IssueSeverity = "CRITICAL"
	IssueSeverityWarning  IssueSeverity = "WARNING"
)

// Issue represents a single issue found by the analyzer.
type Issue struct {
	Source    *IssueSource  `json:"source" yaml:"source"`
	Message   string        `json:"message" yaml:"message"` // A description of the issue.
	Severity  IssueSeverity `json:"severity" yaml:"severity"`
	Impact    string        `json:"impact,omitempty" yaml:"impact,omitempty"`
	Reference string        `json:"reference,omitempty" yaml:"reference,omitempty"`
}

// IssueSource represents a location in the code where the issue originates.
type IssueSource struct {
	File     string `json:"file" yaml:"file"`
	Line     int    `json:"line" yaml:"line"`
	Column   int    `json:"column" yaml:"column"`
	Function string `json:"function,omitempty" yaml:"function,omitempty"` // Function owning the nearest instruction.
	AbsPath  string `json:"absPath" yaml:"absPath"`
}

// Locate builds the source of an issue found at a byte offset of the unit.
// The function is the one owning the first instruction ending after offset.
func Locate(unit *asmparser.Unit, offset int) *IssueSource {
	pos := unit.Position(offset)
	src := &IssueSource{
		File:    filepath.Base(unit.Name),
		Line:    pos.Line,
		Column:  pos.Column,
		AbsPath: unit.Name,
	}
	instrs := unit.Instructions()
	index := sort.Search(len(instrs), func(i int) bool {
		return instrs[i].Span().End() > offset
	})
	if iv, ok := unit.Bounds.Lookup(index); ok {
		src.Function = iv.Name
	}
	return src
}

// HasCritical reports whether any of the issues is critical.
func HasCritical(issues []*Issue) bool {
	for _, issue := range issues {
		if issue.Severity == IssueSeverityCritical {
			return true
		}
	}
	return false
}

// SortIssues orders issues by position, keeping the analyzer order for ties.
func SortIssues(issues []*Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i].Source, issues[j].Source
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}
