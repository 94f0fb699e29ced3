package renderer

import (
	"encoding/json"
	"io"

	"github.com/ChainSafe/asm-lens/analyzer"
	"github.com/ChainSafe/asm-lens/asmparser"
)

// JSONRenderer renders units and issues in JSON format.
type JSONRenderer struct{}

func NewJSONRenderer() Renderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) RenderUnit(unit *asmparser.Unit, output io.Writer) error {
	return r.encode(newUnitView(unit), output)
}

func (r *JSONRenderer) RenderBounds(unit *asmparser.Unit, output io.Writer) error {
	intervals := unit.Bounds.Intervals()
	if intervals == nil {
		intervals = []asmparser.Interval{}
	}
	return r.encode(intervals, output)
}

func (r *JSONRenderer) RenderFunction(unit *asmparser.Unit, fn asmparser.Interval, output io.Writer) error {
	return r.encode(newFunctionView(unit, fn), output)
}

func (r *JSONRenderer) RenderIssues(issues []*analyzer.Issue, output io.Writer) error {
	if issues == nil {
		issues = []*analyzer.Issue{}
	}
	return r.encode(issues, output)
}

func (r *JSONRenderer) Format() string {
	return "json"
}

func (r *JSONRenderer) encode(v any, output io.Writer) error {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
