package asmparser

import "fmt"

// Span represents a contiguous range of bytes of the original source. The end
// is exclusive.
type Span struct {
	start int
	end   int
}

// NewSpan constructs a new span whilst checking the internal invariants are
// maintained.
func NewSpan(start int, end int) Span {
	if start < 0 || start > end {
		panic(fmt.Sprintf("invalid span [%d,%d)", start, end))
	}
	return Span{start, end}
}

// Start returns the first byte offset covered by this span.
func (s Span) Start() int {
	return s.start
}

// End returns one past the last byte offset covered by this span.
func (s Span) End() int {
	return s.end
}

// Length returns the number of bytes covered by this span.
func (s Span) Length() int {
	return s.end - s.start
}

// Contains reports whether other lies within this span.
func (s Span) Contains(other Span) bool {
	return s.start <= other.start && other.end <= s.end
}

// Overlaps reports whether the two spans share at least one byte.
func (s Span) Overlaps(other Span) bool {
	return s.start < other.end && other.start < s.end
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.start, s.end)
}

// Usage describes how an instruction uses a register operand.
type Usage uint8

const (
	UsageNone  Usage = 0
	UsageRead  Usage = 1
	UsageWrite Usage = 2

	UsageReadWrite = UsageRead | UsageWrite
)

// Reads reports whether the usage includes a read.
func (u Usage) Reads() bool {
	return u&UsageRead != 0
}

// Writes reports whether the usage includes a write.
func (u Usage) Writes() bool {
	return u&UsageWrite != 0
}

func (u Usage) String() string {
	switch u {
	case UsageRead:
		return "read"
	case UsageWrite:
		return "write"
	case UsageReadWrite:
		return "read-write"
	default:
		return "none"
	}
}

// Element is a node of the syntax tree. The set of implementations is closed:
// Root, Instruction, RegisterUsage, Label and BranchTarget.
type Element interface {
	Span() Span
	Children() []Element
	element()
}

// Root is the top of the tree for one compilation unit.
type Root struct {
	span     Span
	Elements []Element
}

// NewRoot wraps the top-level elements of a unit.
func NewRoot(span Span, elements []Element) *Root {
	return &Root{span: span, Elements: elements}
}

func (r *Root) Span() Span { return r.span }
func (r *Root) Children() []Element { return r.Elements }
func (*Root) element() {}

// Instruction is one statement headed by a mnemonic, or a synthetic branch
// instruction built from a bare symbol reference.
type Instruction struct {
	span     Span
	Mnemonic string
	Opcode   Opcode
	Size     OperandSize
	Implicit bool
	Reads    []Register
	Writes   []Register
	Operands []Element
}

// NewInstruction constructs an instruction element covering span.
func NewInstruction(span Span, mnemonic string, op Opcode) *Instruction {
	return &Instruction{span: span, Mnemonic: mnemonic, Opcode: op}
}

func (i *Instruction) Span() Span { return i.span }
func (i *Instruction) Children() []Element { return i.Operands }
func (*Instruction) element() {}

// Target returns the branch target of a synthetic branch instruction.
func (i *Instruction) Target() (*BranchTarget, bool) {
	if !i.Implicit || len(i.Operands) == 0 {
		return nil, false
	}
	target, ok := i.Operands[0].(*BranchTarget)
	return target, ok
}

// AddUsage appends a register usage leaf and records the register in the
// read and write lists. Lists keep first-seen order without duplicates.
func (i *Instruction) AddUsage(leaf *RegisterUsage) {
	i.Operands = append(i.Operands, leaf)
	if leaf.Usage.Reads() {
		i.Reads = appendRegister(i.Reads, leaf.Register)
	}
	if leaf.Usage.Writes() {
		i.Writes = appendRegister(i.Writes, leaf.Register)
	}
}

func appendRegister(regs []Register, reg Register) []Register {
	for _, r := range regs {
		if r == reg {
			return regs
		}
	}
	return append(regs, reg)
}

// RegisterUsage is a leaf recording one register operand.
type RegisterUsage struct {
	span     Span
	Register Register
	Usage    Usage
}

// NewRegisterUsage constructs a register usage leaf.
func NewRegisterUsage(span Span, reg Register, usage Usage) *RegisterUsage {
	return &RegisterUsage{span: span, Register: reg, Usage: usage}
}

func (r *RegisterUsage) Span() Span { return r.span }
func (*RegisterUsage) Children() []Element { return nil }
func (*RegisterUsage) element() {}

// Label is a symbol definition (`name:`), stored without its decoration.
type Label struct {
	span Span
	Name string
}

// NewLabel constructs a label element.
func NewLabel(span Span, name string) *Label {
	return &Label{span: span, Name: name}
}

func (l *Label) Span() Span { return l.span }
func (*Label) Children() []Element { return nil }
func (*Label) element() {}

// BranchTarget is a bare symbol reference.
type BranchTarget struct {
	span Span
	Name string
}

// NewBranchTarget constructs a branch target element.
func NewBranchTarget(span Span, name string) *BranchTarget {
	return &BranchTarget{span: span, Name: name}
}

func (b *BranchTarget) Span() Span { return b.span }
func (*BranchTarget) Children() []Element { return nil }
func (*BranchTarget) element() {}

// Walk visits elem and its descendants depth first, parents before children.
// Returning false from visit skips the children of that element.
func Walk(elem Element, visit func(Element) bool) {
	if !visit(elem) {
		return
	}
	for _, child := range elem.Children() {
		Walk(child, visit)
	}
}
