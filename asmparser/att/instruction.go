package att

import (
	"fmt"

	"github.com/ChainSafe/asm-lens/asmparser"
)

// defaultOperands is assumed for opcodes declaring no operand forms.
const defaultOperands = 2

// readInstruction consumes the operands following head, up to the first token
// starting another statement, and builds the instruction element.
//
// Operand positions count down from the last one, so the first AT&T operand
// maps to the highest argument index of the opcode. Positions only move on
// commas outside memory operands; registers inside memory operands are
// always read.
func (p *Parser) readInstruction(ctx *parseContext, head Token, op asmparser.Opcode) *asmparser.Instruction {
	argc := defaultOperands
	if forms := op.Forms(); len(forms) > 0 {
		argc = len(forms[0])
	}
	var (
		position = argc - 1
		leaves   []*asmparser.RegisterUsage
	)
	for {
		tok := ctx.peek()
		switch tok.Kind {
		case KindEOF, KindInstruction, KindLabel, KindFunctionLabel, KindDirective, KindIdentifier:
			ins := asmparser.NewInstruction(
				asmparser.NewSpan(head.Span.Start(), tok.Span.Start()),
				head.Text,
				op,
			)
			for _, leaf := range leaves {
				ins.AddUsage(leaf)
			}
			return ins
		case KindRegister:
			if reg, ok := p.resolver.ResolveRegister(tok.Text); ok {
				usage := asmparser.UsageRead
				if ctx.depth == 0 {
					usage = usageAt(op, position)
				}
				leaves = append(leaves, asmparser.NewRegisterUsage(tok.Span, reg, usage))
			}
		case KindMark:
			switch tok.Text {
			case p.opts.memoryOpen:
				ctx.depth++
			case p.opts.memoryClose:
				ctx.depth = max(0, ctx.depth-1)
			case ",":
				if ctx.depth == 0 {
					position--
				}
			}
		case KindLiteral:
		default:
			panic(fmt.Sprintf("unhandled token %s", tok))
		}
		ctx.advance()
	}
}

func usageAt(op asmparser.Opcode, position int) asmparser.Usage {
	usage := asmparser.UsageNone
	if op.ReadsArg(position) {
		usage |= asmparser.UsageRead
	}
	if op.WritesArg(position) {
		usage |= asmparser.UsageWrite
	}
	return usage
}
