// Package lex provides scanner combinators and a rule driven lexer producing
// byte-offset tokens.
package lex

import "fmt"

// Token associates a kind with a range of bytes of the scanned input.
type Token struct {
	Kind  uint
	Start int
	End   int
}

// Error is a lexing failure at a given byte offset.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

// Rule associates the matches of a scanner with a token kind. A rejecting
// rule turns its matches into errors instead.
type Rule struct {
	scanner Scanner[byte]
	kind    uint
	reject  string
}

// Accept constructs a rule mapping matches to the given kind.
func Accept(scanner Scanner[byte], kind uint) Rule {
	return Rule{scanner: scanner, kind: kind}
}

// Reject constructs a rule reporting matches as errors with the given message.
func Reject(scanner Scanner[byte], msg string) Rule {
	return Rule{scanner: scanner, reject: msg}
}

// Lexer tokenises an input using the first matching rule at each offset.
type Lexer struct {
	input []byte
	index int
	eof   uint
	rules []Rule
	done  bool
}

// NewLexer constructs a lexer which reports the end of input as a zero-length
// token of kind eof.
func NewLexer(input []byte, eof uint, rules ...Rule) *Lexer {
	return &Lexer{input: input, eof: eof, rules: rules}
}

// Offset returns the byte offset of the next token.
func (l *Lexer) Offset() int {
	return l.index
}

// Next returns the next token. After the end of input token has been returned,
// every further call returns it again.
func (l *Lexer) Next() (Token, error) {
	if l.index >= len(l.input) {
		l.done = true
		return Token{Kind: l.eof, Start: len(l.input), End: len(l.input)}, nil
	}
	rest := l.input[l.index:]
	for _, r := range l.rules {
		n := r.scanner(rest)
		if n == 0 {
			continue
		}
		if r.reject != "" {
			return Token{}, &Error{Offset: l.index, Msg: r.reject}
		}
		tok := Token{Kind: r.kind, Start: l.index, End: l.index + int(n)}
		l.index = tok.End
		return tok, nil
	}
	return Token{}, &Error{Offset: l.index, Msg: fmt.Sprintf("unexpected character %q", rest[0])}
}

// Collect lexes the whole input, stopping at the first error.
func (l *Lexer) Collect() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == l.eof && l.done {
			return tokens, nil
		}
	}
}
