package att

import (
	"fmt"

	"github.com/ChainSafe/asm-lens/asmparser"
)

// Kind classifies a token for the tree builder.
type Kind int

const (
	KindEOF Kind = iota
	KindInstruction
	KindRegister
	KindLabel         // symbol definition, `name:`
	KindFunctionLabel // symbol definition declared as a function with .type
	KindDirective
	KindIdentifier // unknown identifier or bare symbol reference
	KindMark
	KindLiteral
)

var kindNames = [...]string{
	KindEOF:           "eof",
	KindInstruction:   "instruction",
	KindRegister:      "register",
	KindLabel:         "label",
	KindFunctionLabel: "function-label",
	KindDirective:     "directive",
	KindIdentifier:    "identifier",
	KindMark:          "mark",
	KindLiteral:       "literal",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Token is a classified lexical unit of the source.
type Token struct {
	Kind Kind
	Text string
	Span asmparser.Span
	// StatementStart is set on the first token after the start of input, a
	// newline or a ';' separator.
	StatementStart bool
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q %s", t.Kind, t.Text, t.Span)
}
