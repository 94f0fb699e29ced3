package renderer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/ChainSafe/asm-lens/analyzer"
	"github.com/ChainSafe/asm-lens/asmparser"
	"github.com/ChainSafe/asm-lens/common/lifo"
)

// TextRenderer formats units and analysis reports in a structured text format.
type TextRenderer struct {
	now func() time.Time
}

// NewTextRenderer creates a new instance of TextRenderer.
func NewTextRenderer() Renderer {
	return &TextRenderer{now: time.Now}
}

type frame struct {
	elem  asmparser.Element
	depth int
}

// RenderUnit prints the globals, the function bounds and one line per element
// of the syntax tree, children indented under their parent.
func (r *TextRenderer) RenderUnit(unit *asmparser.Unit, output io.Writer) error {
	var report strings.Builder
	report.WriteString(fmt.Sprintf("unit: %s\n", displayName(unit)))
	report.WriteString(fmt.Sprintf("globals: %s\n", strings.Join(unit.Globals, ", ")))
	writeBounds(&report, unit)
	report.WriteString("elements:\n")

	index := 0
	var stack lifo.Stack[frame]
	pushChildren(&stack, unit.Root.Elements, 1)
	for !stack.IsEmpty() {
		f, _ := stack.Pop()
		report.WriteString(strings.Repeat("  ", f.depth))
		if _, ok := f.elem.(*asmparser.Instruction); ok && f.depth == 1 {
			report.WriteString(fmt.Sprintf("#%d ", index))
			index++
		}
		report.WriteString(describe(unit, f.elem))
		report.WriteString("\n")
		pushChildren(&stack, f.elem.Children(), f.depth+1)
	}

	_, err := output.Write([]byte(report.String()))
	return err
}

// RenderBounds prints one line per function interval.
func (r *TextRenderer) RenderBounds(unit *asmparser.Unit, output io.Writer) error {
	var report strings.Builder
	writeBounds(&report, unit)
	_, err := output.Write([]byte(report.String()))
	return err
}

// RenderFunction prints the source text of each instruction of a function.
func (r *TextRenderer) RenderFunction(unit *asmparser.Unit, fn asmparser.Interval, output io.Writer) error {
	var report strings.Builder
	report.WriteString(fmt.Sprintf("%s [%d,%d)\n", fn.Name, fn.Start, fn.End))
	instrs := unit.Instructions()
	for i := fn.Start; i < fn.End && i < len(instrs); i++ {
		ins := instrs[i]
		report.WriteString(fmt.Sprintf("  #%d %s %s\n", i, unit.Position(ins.Span().Start()), strings.TrimSpace(unit.Text(ins.Span()))))
	}
	_, err := output.Write([]byte(report.String()))
	return err
}

// RenderIssues formats and writes the lint report.
func (r *TextRenderer) RenderIssues(issues []*analyzer.Issue, output io.Writer) error {
	if len(issues) == 0 {
		return nil
	}

	timestamp := r.now().UTC().Format("2006-01-02 15:04:05 UTC")

	// Group issues by message
	groupedIssues := make(map[string][]*analyzer.Issue)
	for _, issue := range issues {
		groupedIssues[issue.Message] = append(groupedIssues[issue.Message], issue)
	}
	totalIssues := len(groupedIssues)

	// Sort issue messages for consistent output
	numOfCriticalIssues := 0
	var sortedMessages = make([]string, 0, len(groupedIssues))
	for msg, val := range groupedIssues {
		if val[0].Severity == analyzer.IssueSeverityCritical {
			numOfCriticalIssues++
		}
		sortedMessages = append(sortedMessages, msg)
	}
	sort.Strings(sortedMessages)

	var report strings.Builder

	report.WriteString("==============================\n")
	report.WriteString("🔍 Assembly Lint Report\n")
	report.WriteString("==============================\n\n")
	report.WriteString(fmt.Sprintf("📅 Timestamp: %s\n\n", timestamp))
	report.WriteString("------------------------------\n")
	report.WriteString("🚨 Summary of Issues\n")
	report.WriteString("------------------------------\n")
	report.WriteString(fmt.Sprintf(" ❗ Critical Issues: %d\n", numOfCriticalIssues))
	report.WriteString(fmt.Sprintf("⚠️ Warnings: %d\n", totalIssues-numOfCriticalIssues))
	report.WriteString(fmt.Sprintf("ℹ️ Total Issues: %d\n\n", totalIssues))
	report.WriteString("------------------------------\n")
	report.WriteString("📌 Detailed Issues\n")
	report.WriteString("------------------------------\n\n")

	for i, msg := range sortedMessages {
		groupedIssue := groupedIssues[msg]
		report.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, groupedIssue[0].Severity, msg))
		if len(groupedIssue[0].Impact) > 0 {
			report.WriteString(fmt.Sprintf("   - Impact: %s\n", groupedIssue[0].Impact))
		}
		if len(groupedIssue[0].Reference) > 0 {
			report.WriteString(fmt.Sprintf("   - Reference: %s\n", groupedIssue[0].Reference))
		}
		report.WriteString("   - Sources:\n")
		for _, issue := range groupedIssue {
			report.WriteString(fmt.Sprintf("       -> %s\n", formatSource(output, issue.Source)))
		}
	}

	report.WriteString("------------------------------\n")
	report.WriteString("🔚 End of Report\n")

	_, err := output.Write([]byte(report.String()))
	return err
}

// Format returns the format type.
func (r *TextRenderer) Format() string {
	return "text"
}

func writeBounds(report *strings.Builder, unit *asmparser.Unit) {
	report.WriteString("functions:\n")
	for _, iv := range unit.Bounds.Intervals() {
		report.WriteString(fmt.Sprintf("  %s [%d,%d)\n", iv.Name, iv.Start, iv.End))
	}
}

// pushChildren pushes elements in reverse so that they pop in source order.
func pushChildren(stack *lifo.Stack[frame], elems []asmparser.Element, depth int) {
	for i := len(elems) - 1; i >= 0; i-- {
		stack.Push(frame{elem: elems[i], depth: depth})
	}
}

func describe(unit *asmparser.Unit, elem asmparser.Element) string {
	pos := unit.Position(elem.Span().Start())
	switch e := elem.(type) {
	case *asmparser.Instruction:
		if e.Implicit {
			return fmt.Sprintf("%s branch", pos)
		}
		desc := fmt.Sprintf("%s instruction %s", pos, e.Mnemonic)
		if e.Opcode.Mnemonic() != e.Mnemonic {
			desc += fmt.Sprintf(" (%s)", e.Opcode.Mnemonic())
		}
		if e.Size != asmparser.SizeNone {
			desc += " " + e.Size.String()
		}
		return desc
	case *asmparser.RegisterUsage:
		return fmt.Sprintf("%s register %%%s %s", pos, e.Register.Name(), e.Usage)
	case *asmparser.Label:
		return fmt.Sprintf("%s label %s", pos, e.Name)
	case *asmparser.BranchTarget:
		return fmt.Sprintf("%s target %s", pos, e.Name)
	default:
		return fmt.Sprintf("%s %T", pos, elem)
	}
}

func displayName(unit *asmparser.Unit) string {
	if unit.Name == "" {
		return "<input>"
	}
	return unit.Name
}

func formatSource(output io.Writer, source *analyzer.IssueSource) string {
	location := fmt.Sprintf("%s:%d:%d", source.File, source.Line, source.Column)
	if output == os.Stdout {
		location = fmt.Sprintf(
			"\033[94m\033]8;;file://%s:%d\033\\%s\033]8;;\033\\\033[0m",
			source.AbsPath, source.Line, location,
		)
	}
	if source.Function == "" {
		return location
	}
	return fmt.Sprintf("%s (%s)", location, source.Function)
}
