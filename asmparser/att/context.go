package att

import (
	"sort"

	"github.com/ChainSafe/asm-lens/asmparser"
)

// parseContext holds the state of one parse call.
type parseContext struct {
	tokens []Token
	index  int

	globals   map[string]struct{}
	elements  []asmparser.Element
	intervals []asmparser.Interval
	// Number of instructions emitted so far, which is also the index of the
	// next one.
	count int
	// Nesting of memory operand marks. It is not reset between instructions.
	depth int

	fnOpen  bool
	fnName  string
	fnStart int
}

func newParseContext(tokens []Token) *parseContext {
	return &parseContext{
		tokens:  tokens,
		globals: make(map[string]struct{}),
	}
}

// peek returns the current token. Tokens always end with an end of input
// token, which is returned once the cursor reaches it.
func (c *parseContext) peek() Token {
	return c.lookahead(0)
}

// lookahead returns the token n positions after the current one.
func (c *parseContext) lookahead(n int) Token {
	i := min(c.index+n, len(c.tokens)-1)
	return c.tokens[i]
}

func (c *parseContext) advance() {
	if c.index < len(c.tokens)-1 {
		c.index++
	}
}

func (c *parseContext) emit(ins *asmparser.Instruction) {
	c.elements = append(c.elements, ins)
	c.count++
}

// openFunction closes the current function, if it holds any instruction, and
// starts a new one at the next instruction index.
func (c *parseContext) openFunction(name string) {
	c.closeFunction()
	c.fnOpen, c.fnName, c.fnStart = true, name, c.count
}

func (c *parseContext) closeFunction() {
	if c.fnOpen && c.fnStart != c.count {
		c.intervals = append(c.intervals, asmparser.Interval{Name: c.fnName, Start: c.fnStart, End: c.count})
	}
	c.fnOpen = false
}

func (c *parseContext) sortedGlobals() []string {
	globals := make([]string, 0, len(c.globals))
	for name := range c.globals {
		globals = append(globals, name)
	}
	sort.Strings(globals)
	return globals
}
