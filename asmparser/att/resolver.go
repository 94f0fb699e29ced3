package att

import (
	"strings"

	"github.com/ChainSafe/asm-lens/asmparser"
)

// Class is the classification of an identifier.
type Class int

const (
	ClassUnknown Class = iota
	ClassDirective
	ClassInstruction
)

func (c Class) String() string {
	switch c {
	case ClassDirective:
		return "directive"
	case ClassInstruction:
		return "instruction"
	default:
		return "unknown"
	}
}

var sizeSuffixes = map[byte]asmparser.OperandSize{
	'b': asmparser.SizeByte,
	'w': asmparser.SizeWord,
	'l': asmparser.SizeLong,
	'q': asmparser.SizeQuad,
}

// Resolver classifies identifiers against an instruction set.
type Resolver struct {
	set asmparser.InstructionSet
}

// NewResolver returns a resolver backed by set.
func NewResolver(set asmparser.InstructionSet) *Resolver {
	return &Resolver{set: set}
}

// Classify reports whether name is a directive, an instruction or unknown.
func (r *Resolver) Classify(name string) Class {
	if IsDirective(name) {
		return ClassDirective
	}
	if _, ok := r.ResolveInstruction(name); ok {
		return ClassInstruction
	}
	return ClassUnknown
}

// ResolveInstruction looks name up verbatim and, failing that, once more with
// a single AT&T size suffix removed.
func (r *Resolver) ResolveInstruction(name string) (asmparser.Opcode, bool) {
	op, _, ok := r.resolveMnemonic(name)
	return op, ok
}

// resolveMnemonic also returns the operand size of a stripped suffix.
func (r *Resolver) resolveMnemonic(name string) (asmparser.Opcode, asmparser.OperandSize, bool) {
	if r.set == nil {
		return nil, asmparser.SizeNone, false
	}
	if op, ok := r.set.Opcode(name); ok {
		return op, asmparser.SizeNone, true
	}
	if len(name) > 1 {
		if size, ok := sizeSuffixes[name[len(name)-1]]; ok {
			if op, ok := r.set.Opcode(name[:len(name)-1]); ok {
				return op, size, true
			}
		}
	}
	return nil, asmparser.SizeNone, false
}

// ResolveRegister strips a leading '%' and looks the register up.
func (r *Resolver) ResolveRegister(name string) (asmparser.Register, bool) {
	if r.set == nil {
		return nil, false
	}
	return r.set.Register(strings.TrimPrefix(name, "%"))
}
