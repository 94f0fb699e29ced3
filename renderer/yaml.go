package renderer

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ChainSafe/asm-lens/analyzer"
	"github.com/ChainSafe/asm-lens/asmparser"
)

// YAMLRenderer renders units and issues in YAML format.
type YAMLRenderer struct{}

func NewYAMLRenderer() Renderer {
	return &YAMLRenderer{}
}

func (r *YAMLRenderer) RenderUnit(unit *asmparser.Unit, output io.Writer) error {
	return r.encode(newUnitView(unit), output)
}

func (r *YAMLRenderer) RenderBounds(unit *asmparser.Unit, output io.Writer) error {
	intervals := unit.Bounds.Intervals()
	if intervals == nil {
		intervals = []asmparser.Interval{}
	}
	return r.encode(intervals, output)
}

func (r *YAMLRenderer) RenderFunction(unit *asmparser.Unit, fn asmparser.Interval, output io.Writer) error {
	return r.encode(newFunctionView(unit, fn), output)
}

func (r *YAMLRenderer) RenderIssues(issues []*analyzer.Issue, output io.Writer) error {
	if issues == nil {
		issues = []*analyzer.Issue{}
	}
	return r.encode(issues, output)
}

func (r *YAMLRenderer) Format() string {
	return "yaml"
}

func (r *YAMLRenderer) encode(v any, output io.Writer) error {
	encoder := yaml.NewEncoder(output)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
