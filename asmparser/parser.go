// Package asmparser defines the domain types shared by the assembly parsers:
// the instruction-set model, the syntax tree and the function bounds.
package asmparser

// Parser holds interface for parsing assembly code
type Parser interface {
	Parse(src []byte) *Unit
	ParseFile(path string) (*Unit, error)
}

// InstructionSet is the model the parsers query for instruction and register
// semantics. Lookups are by exact name.
type InstructionSet interface {
	Opcode(mnemonic string) (Opcode, bool)
	Register(name string) (Register, bool)
}

// Opcode describes one instruction mnemonic. Argument indexes follow the
// model's operand order, where index 0 is the destination.
type Opcode interface {
	Mnemonic() string
	ReadsArg(index int) bool
	WritesArg(index int) bool
	// Forms lists the operand templates of the instruction, one slice of
	// operand kinds per form.
	Forms() [][]string
}

// Register is a handle interned by the InstructionSet; equal registers are
// the same value.
type Register interface {
	Name() string
	Width() int
}

// OperandSize is the operand width implied by an AT&T mnemonic suffix.
type OperandSize int

const (
	SizeNone OperandSize = iota
	SizeByte
	SizeWord
	SizeLong
	SizeQuad
)

func (s OperandSize) String() string {
	switch s {
	case SizeByte:
		return "byte"
	case SizeWord:
		return "word"
	case SizeLong:
		return "long"
	case SizeQuad:
		return "quad"
	default:
		return ""
	}
}

// Placeholder is the no-op opcode anchoring synthetic branch instructions.
var Placeholder Opcode = placeholder{}

type placeholder struct{}

func (placeholder) Mnemonic() string { return "" }
func (placeholder) ReadsArg(int) bool { return false }
func (placeholder) WritesArg(int) bool { return false }
func (placeholder) Forms() [][]string { return nil }

// Unit is the result of parsing one compilation unit.
type Unit struct {
	Name    string
	Source  []byte
	Root    *Root
	Bounds  *FunctionBounds
	Globals []string // sorted

	lines *LineIndex
}

// NewUnit wraps the output of a parse.
func NewUnit(name string, src []byte, root *Root, bounds *FunctionBounds, globals []string) *Unit {
	return &Unit{
		Name:    name,
		Source:  src,
		Root:    root,
		Bounds:  bounds,
		Globals: globals,
		lines:   NewLineIndex(src),
	}
}

// Position maps a byte offset in the unit's source to a line and column.
func (u *Unit) Position(offset int) Position {
	if u.lines == nil {
		u.lines = NewLineIndex(u.Source)
	}
	return u.lines.Position(offset)
}

// Text returns the source text covered by a span.
func (u *Unit) Text(span Span) string {
	start, end := min(span.Start(), len(u.Source)), min(span.End(), len(u.Source))
	return string(u.Source[start:end])
}

// Instructions returns the top-level instructions of the unit in emitted
// order, so that an index into the result is an instruction index of the
// function bounds.
func (u *Unit) Instructions() []*Instruction {
	instrs := make([]*Instruction, 0)
	for _, elem := range u.Root.Elements {
		if ins, ok := elem.(*Instruction); ok {
			instrs = append(instrs, ins)
		}
	}
	return instrs
}
