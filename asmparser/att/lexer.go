package att

import (
	"github.com/ChainSafe/asm-lens/asmparser/lex"
)

// Kinds of the raw tokens produced by a Lexer.
const (
	RawEOF uint = iota
	RawSpace
	RawNewline // newline or ';'
	RawComment
	RawRegister
	RawLabel
	RawIdentifier
	RawLiteral
	RawMark
)

// Lexer produces raw tokens for one unit. It returns a *lex.Error, or any
// other error, when the input cannot be tokenised further.
type Lexer interface {
	Next() (lex.Token, error)
}

// LexerFactory creates a lexer over a source text.
type LexerFactory func(src []byte) Lexer

var (
	space   = lex.Many(lex.Or(lex.Unit[byte](' '), lex.Unit[byte]('\t'), lex.Unit[byte]('\r'), lex.Unit[byte]('\f')))
	newline = lex.Or(lex.Unit[byte]('\n'), lex.Unit[byte](';'))

	lineComment = lex.SequenceNullableLast(lex.Unit[byte]('#'), lex.Until[byte]('\n'))

	// A block comment runs to the first "*/".
	blockComment        = lex.Sequence(lex.String("/*"), lex.Through[byte]('*', '/'))
	unterminatedComment = lex.String("/*")

	letter    = lex.Or(lex.Within('a', 'z'), lex.Within('A', 'Z'), lex.Unit[byte]('_'))
	digit     = lex.Within('0', '9')
	hexDigit  = lex.Or(digit, lex.Within('a', 'f'), lex.Within('A', 'F'))
	identRest = lex.Many(lex.Or(letter, digit, lex.Unit[byte]('.'), lex.Unit[byte]('$')))

	symbol     = lex.SequenceNullableLast(lex.Or(letter, lex.Unit[byte]('.')), identRest)
	identifier = lex.Or(lex.Sequence(symbol, relocation), symbol)

	// Relocation suffixes such as "@PLT" and "@GOTPCREL" belong to the symbol.
	relocation = lex.SequenceNullableLast(lex.Unit[byte]('@'), letter, lex.Many(lex.Or(letter, digit)))

	decimal = lex.SequenceNullableLast(digit, lex.Many(digit))
	number  = lex.Or(
		lex.SequenceNullableLast(lex.Or(lex.String("0x"), lex.String("0X")), hexDigit, lex.Many(hexDigit)),
		lex.SequenceNullableLast(lex.Or(lex.String("0b"), lex.String("0B")), lex.Within('0', '1'), lex.Many(lex.Within('0', '1'))),
		decimal,
	)

	// Numeric local label references such as "1f" and "2b".
	localRef = lex.Unless(
		lex.Sequence(decimal, lex.Or(lex.Unit[byte]('f'), lex.Unit[byte]('b'))),
		lex.Or(letter, digit),
	)

	register = lex.SequenceNullableLast(lex.Unit[byte]('%'), lex.Or(letter, digit), identRest)
	label    = lex.Sequence(lex.Or(symbol, decimal), lex.Unit[byte](':'))

	escape       = lex.Sequence(lex.Unit[byte]('\\'), lex.Not[byte]('\n'))
	strBody      = lex.Many(lex.Or(escape, lex.Not[byte]('"', '\\', '\n')))
	str          = lex.Sequence(lex.Unit[byte]('"'), lex.Or(lex.Unit[byte]('"'), lex.Sequence(strBody, lex.Unit[byte]('"'))))
	unterminated = lex.Unit[byte]('"')
	char         = lex.Sequence(lex.Unit[byte]('\''), lex.Not[byte]('\n'))

	mark = lex.Or(
		lex.String("<<"), lex.String(">>"),
		lex.Unit[byte]('('), lex.Unit[byte](')'), lex.Unit[byte]('['), lex.Unit[byte](']'),
		lex.Unit[byte]('{'), lex.Unit[byte]('}'), lex.Unit[byte](','), lex.Unit[byte]('$'),
		lex.Unit[byte]('+'), lex.Unit[byte]('-'), lex.Unit[byte]('*'), lex.Unit[byte]('/'),
		lex.Unit[byte](':'), lex.Unit[byte]('<'), lex.Unit[byte]('>'), lex.Unit[byte]('='),
		lex.Unit[byte]('&'), lex.Unit[byte]('|'), lex.Unit[byte]('^'), lex.Unit[byte]('!'),
		lex.Unit[byte]('~'), lex.Unit[byte]('@'), lex.Unit[byte]('%'),
	)
)

// rules are tried in order; the first match wins.
var rules = []lex.Rule{
	lex.Accept(space, RawSpace),
	lex.Accept(newline, RawNewline),
	lex.Accept(lineComment, RawComment),
	lex.Accept(blockComment, RawComment),
	lex.Reject(unterminatedComment, "unterminated block comment"),
	lex.Accept(str, RawLiteral),
	lex.Reject(unterminated, "unterminated string literal"),
	lex.Accept(char, RawLiteral),
	lex.Accept(register, RawRegister),
	lex.Accept(label, RawLabel),
	lex.Accept(localRef, RawIdentifier),
	lex.Accept(number, RawLiteral),
	lex.Accept(identifier, RawIdentifier),
	lex.Accept(mark, RawMark),
}

// NewLexer returns the default GNU as lexer for AT&T syntax.
func NewLexer(src []byte) Lexer {
	return lex.NewLexer(src, RawEOF, rules...)
}
