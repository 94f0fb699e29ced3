package att

import (
	"strings"
	"unicode"

	log "github.com/sirupsen/logrus"
)

// FunctionDetector decides which labels open a function.
type FunctionDetector interface {
	// IsFunction reports whether a label name, stripped of decoration, opens
	// a function on its own merits.
	IsFunction(name string) bool
	// Strip removes the decoration from a label's text.
	Strip(label string) string
}

// DefaultDetector treats any label not starting with '.' or a digit as a
// function name.
type DefaultDetector struct{}

func (DefaultDetector) IsFunction(name string) bool {
	if name == "" {
		return false
	}
	c := rune(name[0])
	return c != '.' && !unicode.IsDigit(c)
}

func (DefaultDetector) Strip(label string) string {
	return strings.TrimSuffix(label, ":")
}

type options struct {
	memoryOpen  string
	memoryClose string
	detector    FunctionDetector
	lexer       LexerFactory
	logger      log.FieldLogger
}

func defaultOptions() options {
	return options{
		memoryOpen:  "(",
		memoryClose: ")",
		detector:    DefaultDetector{},
		lexer:       NewLexer,
		logger:      log.StandardLogger(),
	}
}

// Option configures a Parser at construction.
type Option func(*options)

// WithMemoryOperand sets the marks enclosing a memory operand.
func WithMemoryOperand(openMark, closeMark string) Option {
	return func(o *options) {
		o.memoryOpen, o.memoryClose = openMark, closeMark
	}
}

// WithFunctionDetector replaces the default function detector.
func WithFunctionDetector(d FunctionDetector) Option {
	return func(o *options) {
		o.detector = d
	}
}

// WithLexer replaces the default lexer.
func WithLexer(factory LexerFactory) Option {
	return func(o *options) {
		o.lexer = factory
	}
}

// WithLogger sets the logger receiving parse diagnostics.
func WithLogger(logger log.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
