package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ChainSafe/asm-lens/asmparser"
)

func testUnit() *asmparser.Unit {
	src := []byte("foo:\n  nop\n  ret\nbar:\n  nop\n")
	instrs := []asmparser.Element{
		asmparser.NewLabel(asmparser.NewSpan(0, 4), "foo"),
		asmparser.NewInstruction(asmparser.NewSpan(7, 13), "nop", asmparser.Placeholder),
		asmparser.NewInstruction(asmparser.NewSpan(13, 17), "ret", asmparser.Placeholder),
		asmparser.NewLabel(asmparser.NewSpan(17, 21), "bar"),
		asmparser.NewInstruction(asmparser.NewSpan(24, 28), "nop", asmparser.Placeholder),
	}
	bounds := asmparser.NewFunctionBounds(
		asmparser.Interval{Name: "foo", Start: 0, End: 2},
		asmparser.Interval{Name: "bar", Start: 2, End: 3},
	)
	root := asmparser.NewRoot(asmparser.NewSpan(0, len(src)), instrs)
	return asmparser.NewUnit("/tmp/src/a.s", src, root, bounds, nil)
}

func TestLocate(t *testing.T) {
	unit := testUnit()

	assert.Equal(t, &IssueSource{
		File:     "a.s",
		Line:     1,
		Column:   1,
		Function: "foo",
		AbsPath:  "/tmp/src/a.s",
	}, Locate(unit, 0))

	src := Locate(unit, 17)
	assert.Equal(t, 4, src.Line)
	assert.Equal(t, "bar", src.Function)

	src = Locate(unit, 28)
	assert.Equal(t, "", src.Function)
}

func TestSortIssues(t *testing.T) {
	issues := []*Issue{
		{Message: "c", Source: &IssueSource{Line: 3, Column: 1}},
		{Message: "b", Source: &IssueSource{Line: 1, Column: 5}},
		{Message: "a", Source: &IssueSource{Line: 1, Column: 2}, Severity: IssueSeverityCritical},
	}
	SortIssues(issues)

	var order []string
	for _, issue := range issues {
		order = append(order, issue.Message)
	}
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.True(t, HasCritical(issues))
	assert.False(t, HasCritical(issues[1:]))
}
