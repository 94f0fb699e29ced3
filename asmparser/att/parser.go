// Package att implements the asmparser interfaces for AT&T syntax assembly as
// accepted by the GNU assembler.
package att

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/ChainSafe/asm-lens/asmparser"
	"github.com/ChainSafe/asm-lens/asmparser/lex"
)

var _ asmparser.Parser = (*Parser)(nil)

// Parser builds syntax trees and function bounds from AT&T assembly. Every
// call works on its own parse context, so a Parser may be shared.
type Parser struct {
	resolver *Resolver
	opts     options

	mu     sync.Mutex
	bounds *asmparser.FunctionBounds
}

// NewParser returns a parser resolving names against set.
func NewParser(set asmparser.InstructionSet, opts ...Option) *Parser {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Parser{resolver: NewResolver(set), opts: o}
}

// Resolver returns the identifier resolver used by the parser.
func (p *Parser) Resolver() *Resolver {
	return p.resolver
}

// MemoryOperand returns the marks enclosing a memory operand.
func (p *Parser) MemoryOperand() (openMark, closeMark string) {
	return p.opts.memoryOpen, p.opts.memoryClose
}

// FunctionBounds returns the function bounds of the most recent parse.
func (p *Parser) FunctionBounds() *asmparser.FunctionBounds {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bounds
}

// ParseFile reads and parses an assembly file.
func (p *Parser) ParseFile(path string) (*asmparser.Unit, error) {
	fpath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("error resolving absolute filepath: %w", err)
	}
	codefile, err := os.Open(fpath)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer func() {
		_ = codefile.Close()
	}()
	return p.ParseReader(fpath, codefile)
}

// ParseReader reads r to the end and parses its content as one unit.
func (p *Parser) ParseReader(name string, r io.Reader) (*asmparser.Unit, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", name, err)
	}
	return p.parse(name, src), nil
}

// Parse parses one unit. Malformed input never fails: lexing stops at the
// first error, which is logged, and the tokens read so far are parsed.
func (p *Parser) Parse(src []byte) *asmparser.Unit {
	return p.parse("", src)
}

// Tokenize returns the classified tokens of src, ending with an end of input
// token.
func (p *Parser) Tokenize(src []byte) []Token {
	return p.tokenize("", src)
}

func (p *Parser) tokenize(name string, src []byte) []Token {
	var (
		lexer          = p.opts.lexer(src)
		tokens         = make([]Token, 0)
		statementStart = true
		lastEnd        = 0
	)
	for {
		raw, err := lexer.Next()
		if err != nil {
			// The error offset is kept within [lastEnd, len(src)] whatever
			// the lexer reports.
			offset := lastEnd
			var lexErr *lex.Error
			if errors.As(err, &lexErr) {
				offset = lexErr.Offset
			}
			offset = max(lastEnd, min(offset, len(src)))
			p.opts.logger.WithFields(log.Fields{
				"unit":   name,
				"offset": offset,
			}).WithError(err).Error("lexer error, truncating token stream")
			tokens = append(tokens, Token{
				Kind:           KindEOF,
				Span:           asmparser.NewSpan(offset, offset),
				StatementStart: statementStart,
			})
			break
		}
		lastEnd = raw.End
		switch raw.Kind {
		case RawSpace:
			continue
		case RawNewline:
			statementStart = true
			continue
		case RawComment:
			if bytes.IndexByte(src[raw.Start:raw.End], '\n') >= 0 {
				statementStart = true
			}
			continue
		}
		tok := Token{
			Text:           string(src[raw.Start:raw.End]),
			Span:           asmparser.NewSpan(raw.Start, raw.End),
			StatementStart: statementStart,
		}
		tok.Kind = p.classify(raw.Kind, tok.Text)
		statementStart = false
		tokens = append(tokens, tok)
		if tok.Kind == KindEOF {
			break
		}
	}
	p.markFunctionLabels(tokens)
	return tokens
}

func (p *Parser) classify(raw uint, text string) Kind {
	switch raw {
	case RawEOF:
		return KindEOF
	case RawRegister:
		return KindRegister
	case RawLabel:
		return KindLabel
	case RawIdentifier:
		switch p.resolver.Classify(text) {
		case ClassDirective:
			return KindDirective
		case ClassInstruction:
			return KindInstruction
		default:
			return KindIdentifier
		}
	case RawMark:
		return KindMark
	default:
		return KindLiteral
	}
}

// markFunctionLabels reclassifies the labels of symbols declared with
// `.type name, @function`.
func (p *Parser) markFunctionLabels(tokens []Token) {
	functions := make(map[string]struct{})
	for i := 0; i < len(tokens); i++ {
		if tokens[i].Kind != KindDirective || tokens[i].Text != ".type" {
			continue
		}
		var (
			name       string
			isFunction bool
		)
		for j := i + 1; j < len(tokens) && !tokens[j].StatementStart && tokens[j].Kind != KindEOF; j++ {
			switch tokens[j].Kind {
			case KindIdentifier, KindInstruction, KindRegister:
				if _, ok := functionTypes[tokens[j].Text]; ok {
					isFunction = true
				} else if name == "" {
					name = tokens[j].Text
				}
			}
		}
		if isFunction && name != "" {
			functions[name] = struct{}{}
		}
	}
	if len(functions) == 0 {
		return
	}
	for i := range tokens {
		if tokens[i].Kind != KindLabel {
			continue
		}
		if _, ok := functions[p.opts.detector.Strip(tokens[i].Text)]; ok {
			tokens[i].Kind = KindFunctionLabel
		}
	}
}

func (p *Parser) parse(name string, src []byte) *asmparser.Unit {
	ctx := newParseContext(p.tokenize(name, src))
loop:
	for {
		tok := ctx.peek()
		switch tok.Kind {
		case KindEOF:
			break loop
		case KindInstruction:
			ctx.advance()
			op, size, ok := p.resolver.resolveMnemonic(tok.Text)
			if !ok {
				op = asmparser.Placeholder
			}
			ins := p.readInstruction(ctx, tok, op)
			ins.Size = size
			ctx.emit(ins)
		case KindDirective:
			ctx.advance()
			p.readDirective(ctx, tok)
		case KindIdentifier:
			ctx.advance()
			ins := p.readInstruction(ctx, tok, asmparser.Placeholder)
			ins.Mnemonic = ""
			ins.Implicit = true
			target := asmparser.NewBranchTarget(tok.Span, tok.Text)
			ins.Operands = append([]asmparser.Element{target}, ins.Operands...)
			ctx.emit(ins)
		case KindLabel, KindFunctionLabel:
			ctx.advance()
			p.readLabel(ctx, tok)
		case KindRegister, KindMark, KindLiteral:
			// Stray operand outside any statement.
			ctx.advance()
		default:
			panic(fmt.Sprintf("unhandled token %s", tok))
		}
	}
	ctx.closeFunction()

	root := asmparser.NewRoot(asmparser.NewSpan(0, len(src)), ctx.elements)
	bounds := asmparser.NewFunctionBounds(ctx.intervals...)
	p.mu.Lock()
	p.bounds = bounds
	p.mu.Unlock()

	p.opts.logger.WithFields(log.Fields{
		"unit":         name,
		"tokens":       len(ctx.tokens),
		"instructions": ctx.count,
		"functions":    bounds.Len(),
	}).Debug("parsed unit")
	return asmparser.NewUnit(name, src, root, bounds, ctx.sortedGlobals())
}

// readDirective consumes the operands of a directive statement, recording
// the symbols declared by .globl, .global and .local.
func (p *Parser) readDirective(ctx *parseContext, dir Token) {
	_, declares := globalDirectives[dir.Text]
	for {
		tok := ctx.peek()
		if tok.Kind == KindEOF || tok.StatementStart {
			return
		}
		if declares && (tok.Kind == KindIdentifier || tok.Kind == KindInstruction) {
			ctx.globals[tok.Text] = struct{}{}
		}
		ctx.advance()
	}
}

func (p *Parser) readLabel(ctx *parseContext, tok Token) {
	name := p.opts.detector.Strip(tok.Text)
	ctx.elements = append(ctx.elements, asmparser.NewLabel(tok.Span, name))

	_, global := ctx.globals[name]
	if tok.Kind == KindFunctionLabel || global || p.opts.detector.IsFunction(name) {
		ctx.openFunction(name)
	}
}
