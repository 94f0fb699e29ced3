// Package symbol implements analyzer.Analyzer for symbol definition issues:
// labels defined more than once and symbols declared global without a
// definition in the unit.
package symbol

import (
	"bytes"
	"fmt"
	"unicode"

	"github.com/ChainSafe/asm-lens/analyzer"
	"github.com/ChainSafe/asm-lens/asmparser"
)

type symbol struct{}

func NewAnalyser() analyzer.Analyzer {
	return &symbol{}
}

func (s *symbol) Analyze(unit *asmparser.Unit) ([]*analyzer.Issue, error) {
	issues := make([]*analyzer.Issue, 0)
	defined := make(map[string]*asmparser.Label)
	asmparser.Walk(unit.Root, func(elem asmparser.Element) bool {
		label, ok := elem.(*asmparser.Label)
		if !ok {
			return true
		}
		// Numeric local labels may be redefined.
		if isNumeric(label.Name) {
			return false
		}
		if first, exists := defined[label.Name]; exists {
			issues = append(issues, &analyzer.Issue{
				Source:   analyzer.Locate(unit, label.Span().Start()),
				Message:  fmt.Sprintf("Symbol %s is already defined at %s", label.Name, unit.Position(first.Span().Start())),
				Severity: analyzer.IssueSeverityCritical,
				Impact:   "the assembler rejects the unit",
			})
			return false
		}
		defined[label.Name] = label
		return false
	})

	for _, name := range unit.Globals {
		if _, ok := defined[name]; ok {
			continue
		}
		issues = append(issues, &analyzer.Issue{
			Source:   analyzer.Locate(unit, findSymbol(unit.Source, name)),
			Message:  fmt.Sprintf("Global symbol %s is never defined", name),
			Severity: analyzer.IssueSeverityWarning,
			Impact:   "the symbol is left for the linker to resolve",
		})
	}
	return issues, nil
}

func isNumeric(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		if !unicode.IsDigit(c) {
			return false
		}
	}
	return true
}

// findSymbol returns the offset of the first whole-word occurrence of name, or 0.
func findSymbol(src []byte, name string) int {
	offset := 0
	for {
		i := bytes.Index(src[offset:], []byte(name))
		if i < 0 {
			return 0
		}
		start, end := offset+i, offset+i+len(name)
		if (start == 0 || !isSymbolByte(src[start-1])) && (end == len(src) || !isSymbolByte(src[end])) {
			return start
		}
		offset = start + 1
	}
}

func isSymbolByte(c byte) bool {
	return c == '_' || c == '.' || c == '$' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
