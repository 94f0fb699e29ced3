package renderer

import (
	"github.com/ChainSafe/asm-lens/asmparser"
)

// unitView is the serialized form of a unit shared by the JSON and YAML renderers.
type unitView struct {
	Name      string               `json:"name" yaml:"name"`
	Globals   []string             `json:"globals" yaml:"globals"`
	Functions []asmparser.Interval `json:"functions" yaml:"functions"`
	Elements  []*elementView       `json:"elements" yaml:"elements"`
}

type functionView struct {
	asmparser.Interval `yaml:",inline"`
	Instructions       []*elementView `json:"instructions" yaml:"instructions"`
}

type elementView struct {
	Type     string             `json:"type" yaml:"type"`
	Start    int                `json:"start" yaml:"start"`
	End      int                `json:"end" yaml:"end"`
	Position asmparser.Position `json:"position" yaml:"position"`

	// Instruction
	Index    *int     `json:"index,omitempty" yaml:"index,omitempty"`
	Mnemonic string   `json:"mnemonic,omitempty" yaml:"mnemonic,omitempty"`
	Opcode   string   `json:"opcode,omitempty" yaml:"opcode,omitempty"`
	Size     string   `json:"size,omitempty" yaml:"size,omitempty"`
	Implicit bool     `json:"implicit,omitempty" yaml:"implicit,omitempty"`
	Reads    []string `json:"reads,omitempty" yaml:"reads,omitempty"`
	Writes   []string `json:"writes,omitempty" yaml:"writes,omitempty"`

	// Label and BranchTarget
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// RegisterUsage
	Register string `json:"register,omitempty" yaml:"register,omitempty"`
	Usage    string `json:"usage,omitempty" yaml:"usage,omitempty"`

	Children []*elementView `json:"children,omitempty" yaml:"children,omitempty"`
}

func newUnitView(unit *asmparser.Unit) *unitView {
	view := &unitView{
		Name:      unit.Name,
		Globals:   unit.Globals,
		Functions: unit.Bounds.Intervals(),
		Elements:  make([]*elementView, 0, len(unit.Root.Elements)),
	}
	if view.Globals == nil {
		view.Globals = []string{}
	}
	if view.Functions == nil {
		view.Functions = []asmparser.Interval{}
	}
	index := 0
	for _, elem := range unit.Root.Elements {
		ev := newElementView(unit, elem)
		if _, ok := elem.(*asmparser.Instruction); ok {
			i := index
			ev.Index = &i
			index++
		}
		view.Elements = append(view.Elements, ev)
	}
	return view
}

func newFunctionView(unit *asmparser.Unit, fn asmparser.Interval) *functionView {
	instrs := unit.Instructions()
	view := &functionView{Interval: fn, Instructions: make([]*elementView, 0, fn.Len())}
	for i := fn.Start; i < fn.End && i < len(instrs); i++ {
		ev := newElementView(unit, instrs[i])
		index := i
		ev.Index = &index
		view.Instructions = append(view.Instructions, ev)
	}
	return view
}

func newElementView(unit *asmparser.Unit, elem asmparser.Element) *elementView {
	span := elem.Span()
	ev := &elementView{
		Start:    span.Start(),
		End:      span.End(),
		Position: unit.Position(span.Start()),
	}
	switch e := elem.(type) {
	case *asmparser.Instruction:
		ev.Type = "instruction"
		ev.Mnemonic = e.Mnemonic
		ev.Opcode = e.Opcode.Mnemonic()
		ev.Size = e.Size.String()
		ev.Implicit = e.Implicit
		ev.Reads = registerNames(e.Reads)
		ev.Writes = registerNames(e.Writes)
	case *asmparser.RegisterUsage:
		ev.Type = "register"
		ev.Register = e.Register.Name()
		ev.Usage = e.Usage.String()
	case *asmparser.Label:
		ev.Type = "label"
		ev.Name = e.Name
	case *asmparser.BranchTarget:
		ev.Type = "target"
		ev.Name = e.Name
	case *asmparser.Root:
		ev.Type = "root"
	}
	for _, child := range elem.Children() {
		ev.Children = append(ev.Children, newElementView(unit, child))
	}
	return ev
}

func registerNames(regs []asmparser.Register) []string {
	if len(regs) == 0 {
		return nil
	}
	names := make([]string, 0, len(regs))
	for _, r := range regs {
		names = append(names, r.Name())
	}
	return names
}
