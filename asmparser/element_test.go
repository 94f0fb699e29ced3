package asmparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRegister string

func (r testRegister) Name() string { return string(r) }
func (testRegister) Width() int { return 64 }

func TestSpan(t *testing.T) {
	s := NewSpan(2, 6)
	assert.Equal(t, 4, s.Length())
	assert.True(t, s.Contains(NewSpan(2, 6)))
	assert.True(t, s.Contains(NewSpan(3, 3)))
	assert.False(t, s.Contains(NewSpan(1, 3)))
	assert.True(t, s.Overlaps(NewSpan(5, 9)))
	assert.False(t, s.Overlaps(NewSpan(6, 9)))
	assert.Equal(t, "[2,6)", s.String())

	assert.Panics(t, func() { NewSpan(-1, 2) })
	assert.Panics(t, func() { NewSpan(3, 2) })
}

func TestUsage(t *testing.T) {
	assert.True(t, UsageReadWrite.Reads())
	assert.True(t, UsageReadWrite.Writes())
	assert.False(t, UsageRead.Writes())
	assert.False(t, UsageNone.Reads())
	assert.Equal(t, "read-write", UsageReadWrite.String())
}

func TestInstructionUsage(t *testing.T) {
	var (
		rax Register = testRegister("rax")
		rbx Register = testRegister("rbx")
	)
	ins := NewInstruction(NewSpan(0, 20), "addq", Placeholder)
	ins.AddUsage(NewRegisterUsage(NewSpan(5, 9), rax, UsageRead))
	ins.AddUsage(NewRegisterUsage(NewSpan(11, 15), rbx, UsageReadWrite))
	ins.AddUsage(NewRegisterUsage(NewSpan(16, 20), rax, UsageRead))

	assert.Len(t, ins.Operands, 3)
	assert.Equal(t, []Register{rax, rbx}, ins.Reads)
	assert.Equal(t, []Register{rbx}, ins.Writes)
	_, ok := ins.Target()
	assert.False(t, ok)
}

func TestWalk(t *testing.T) {
	ins := NewInstruction(NewSpan(4, 12), "", Placeholder)
	ins.Implicit = true
	ins.Operands = append(ins.Operands, NewBranchTarget(NewSpan(4, 7), "foo"))
	root := NewRoot(NewSpan(0, 12), []Element{NewLabel(NewSpan(0, 4), "foo"), ins})

	target, ok := ins.Target()
	require.True(t, ok)
	assert.Equal(t, "foo", target.Name)

	var visited []Span
	Walk(root, func(elem Element) bool {
		visited = append(visited, elem.Span())
		return true
	})
	assert.Equal(t, []Span{NewSpan(0, 12), NewSpan(0, 4), NewSpan(4, 12), NewSpan(4, 7)}, visited)

	visited = nil
	Walk(root, func(elem Element) bool {
		visited = append(visited, elem.Span())
		_, isRoot := elem.(*Root)
		return isRoot
	})
	assert.Len(t, visited, 3)
}

func TestUnit(t *testing.T) {
	src := []byte("main:\n  ret\n")
	ins := NewInstruction(NewSpan(8, 12), "ret", Placeholder)
	root := NewRoot(NewSpan(0, len(src)), []Element{NewLabel(NewSpan(0, 5), "main"), ins})
	unit := NewUnit("a.s", src, root, NewFunctionBounds(Interval{Name: "main", Start: 0, End: 1}), nil)

	assert.Equal(t, []*Instruction{ins}, unit.Instructions())
	assert.Equal(t, "ret\n", unit.Text(ins.Span()))
	assert.Equal(t, Position{Line: 2, Column: 3}, unit.Position(8))
}
