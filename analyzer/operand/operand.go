// Package operand implements analyzer.Analyzer for detecting unbalanced memory
// operand marks. An unclosed mark changes how every later register of the
// unit is classified, so it is reported as critical.
package operand

import (
	"fmt"

	"github.com/ChainSafe/asm-lens/analyzer"
	"github.com/ChainSafe/asm-lens/asmparser"
	"github.com/ChainSafe/asm-lens/asmparser/att"
	"github.com/ChainSafe/asm-lens/common/lifo"
)

// Tokenizer provides the classified tokens of a unit and the marks enclosing
// memory operands. *att.Parser implements it.
type Tokenizer interface {
	Tokenize(src []byte) []att.Token
	MemoryOperand() (openMark, closeMark string)
}

type operand struct {
	tokenizer Tokenizer
}

func NewAnalyser(tokenizer Tokenizer) analyzer.Analyzer {
	return &operand{tokenizer: tokenizer}
}

func (op *operand) Analyze(unit *asmparser.Unit) ([]*analyzer.Issue, error) {
	var (
		openMark, closeMark = op.tokenizer.MemoryOperand()
		issues              = make([]*analyzer.Issue, 0)
		open                lifo.Stack[att.Token]
		inInstruction       bool
	)
	flush := func() {
		for _, tok := range open.Drain() {
			issues = append(issues, &analyzer.Issue{
				Source:   analyzer.Locate(unit, tok.Span.Start()),
				Message:  fmt.Sprintf("Unclosed memory operand: missing %q", closeMark),
				Severity: analyzer.IssueSeverityCritical,
				Impact:   "registers of the following instructions are classified as nested reads",
			})
		}
	}
	for _, tok := range op.tokenizer.Tokenize(unit.Source) {
		if tok.StatementStart || tok.Kind == att.KindEOF {
			flush()
			inInstruction = false
		}
		switch tok.Kind {
		case att.KindInstruction, att.KindIdentifier:
			inInstruction = true
		case att.KindDirective:
			inInstruction = false
		case att.KindMark:
			if !inInstruction {
				continue
			}
			switch tok.Text {
			case openMark:
				open.Push(tok)
			case closeMark:
				if _, ok := open.Pop(); !ok {
					issues = append(issues, &analyzer.Issue{
						Source:   analyzer.Locate(unit, tok.Span.Start()),
						Message:  fmt.Sprintf("Unmatched memory operand mark %q", closeMark),
						Severity: analyzer.IssueSeverityWarning,
					})
				}
			}
		}
	}
	return issues, nil
}
