// Package renderer provides a way to render parsed units and issues in different formats.
package renderer

import (
	"fmt"
	"io"

	"github.com/ChainSafe/asm-lens/analyzer"
	"github.com/ChainSafe/asm-lens/asmparser"
)

// Renderer defines the interface for rendering parse and lint results in different formats.
type Renderer interface {
	// RenderUnit outputs the syntax tree, globals and function bounds of a unit.
	RenderUnit(unit *asmparser.Unit, output io.Writer) error

	// RenderBounds outputs the function intervals of a unit.
	RenderBounds(unit *asmparser.Unit, output io.Writer) error

	// RenderFunction outputs the instructions of one function of a unit.
	RenderFunction(unit *asmparser.Unit, fn asmparser.Interval, output io.Writer) error

	// RenderIssues takes a list of issues and outputs them in the desired format to the provided writer.
	RenderIssues(issues []*analyzer.Issue, output io.Writer) error

	// Format returns the name of the output format (e.g., "json", "text", "yaml").
	Format() string
}

// New returns the renderer for a format name.
func New(format string) (Renderer, error) {
	switch format {
	case "", "text":
		return NewTextRenderer(), nil
	case "json":
		return NewJSONRenderer(), nil
	case "yaml":
		return NewYAMLRenderer(), nil
	default:
		return nil, fmt.Errorf("invalid format: %s", format)
	}
}
