package renderer

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ChainSafe/asm-lens/analyzer"
	"github.com/ChainSafe/asm-lens/asmparser"
	"github.com/ChainSafe/asm-lens/asmparser/att"
	"github.com/ChainSafe/asm-lens/profile"
)

const source = "main:\n  movl %eax, %ebx\n  ret\n"

func parse(t *testing.T, src string) *asmparser.Unit {
	t.Helper()
	logger, _ := test.NewNullLogger()
	return att.NewParser(profile.Default(), att.WithLogger(logger)).Parse([]byte(src))
}

func testIssues() []*analyzer.Issue {
	return []*analyzer.Issue{
		{
			Message:  "Unclosed memory operand",
			Severity: analyzer.IssueSeverityCritical,
			Impact:   "later registers are nested reads",
			Source:   &analyzer.IssueSource{File: "a.s", Line: 2, Column: 8, Function: "main", AbsPath: "/src/a.s"},
		},
		{
			Message:  "Global symbol missing is never defined",
			Severity: analyzer.IssueSeverityWarning,
			Source:   &analyzer.IssueSource{File: "a.s", Line: 1, Column: 10, AbsPath: "/src/a.s"},
		},
	}
}

func TestNew(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml"} {
		r, err := New(format)
		require.NoError(t, err)
		assert.Equal(t, format, r.Format())
	}
	r, err := New("")
	require.NoError(t, err)
	assert.Equal(t, "text", r.Format())

	_, err = New("html")
	assert.EqualError(t, err, "invalid format: html")
}

func TestTextRenderUnit(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewTextRenderer().RenderUnit(parse(t, source), &out))
	assert.Equal(t, `unit: <input>
globals: 
functions:
  main [0,2)
elements:
  1:1 label main
  #0 2:3 instruction movl (mov) long
    2:8 register %eax read
    2:14 register %ebx write
  #1 3:3 instruction ret
`, out.String())
}

func TestTextRenderFunction(t *testing.T) {
	unit := parse(t, "foo:\n  nop\nbar:\n  pushq %rbp # save\n  ret\n")
	fn, ok := unit.Bounds.Find("bar")
	require.True(t, ok)

	var out bytes.Buffer
	require.NoError(t, NewTextRenderer().RenderFunction(unit, fn, &out))
	assert.Equal(t, "bar [1,3)\n  #1 4:3 pushq %rbp # save\n  #2 5:3 ret\n", out.String())

	out.Reset()
	require.NoError(t, NewTextRenderer().RenderBounds(unit, &out))
	assert.Equal(t, "functions:\n  foo [0,1)\n  bar [1,3)\n", out.String())
}

func TestTextRenderIssues(t *testing.T) {
	r := &TextRenderer{now: func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }}

	var out bytes.Buffer
	require.NoError(t, r.RenderIssues(nil, &out))
	assert.Empty(t, out.String())

	require.NoError(t, r.RenderIssues(testIssues(), &out))
	report := out.String()
	assert.Contains(t, report, "📅 Timestamp: 2024-05-01 12:00:00 UTC")
	assert.Contains(t, report, " ❗ Critical Issues: 1\n")
	assert.Contains(t, report, "⚠️ Warnings: 1\n")
	assert.Contains(t, report, "1. [WARNING] Global symbol missing is never defined\n")
	assert.Contains(t, report, "2. [CRITICAL] Unclosed memory operand\n   - Impact: later registers are nested reads\n")
	assert.Contains(t, report, "       -> a.s:2:8 (main)\n")
	assert.Contains(t, report, "       -> a.s:1:10\n")
}

func TestJSONRenderUnit(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewJSONRenderer().RenderUnit(parse(t, source), &out))

	var view unitView
	require.NoError(t, json.Unmarshal(out.Bytes(), &view))
	assert.Equal(t, []asmparser.Interval{{Name: "main", Start: 0, End: 2}}, view.Functions)
	assert.Equal(t, []string{}, view.Globals)
	require.Len(t, view.Elements, 3)

	movl := view.Elements[1]
	assert.Equal(t, "instruction", movl.Type)
	require.NotNil(t, movl.Index)
	assert.Equal(t, 0, *movl.Index)
	assert.Equal(t, "mov", movl.Opcode)
	assert.Equal(t, "long", movl.Size)
	assert.Equal(t, []string{"eax"}, movl.Reads)
	assert.Equal(t, []string{"ebx"}, movl.Writes)
	require.Len(t, movl.Children, 2)
	assert.Equal(t, "write", movl.Children[1].Usage)
	assert.Equal(t, asmparser.Position{Line: 2, Column: 14}, movl.Children[1].Position)
}

func TestJSONRenderIssues(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewJSONRenderer().RenderIssues(nil, &out))
	assert.JSONEq(t, "[]", out.String())

	out.Reset()
	require.NoError(t, NewJSONRenderer().RenderIssues(testIssues(), &out))
	var issues []*analyzer.Issue
	require.NoError(t, json.Unmarshal(out.Bytes(), &issues))
	assert.Equal(t, testIssues(), issues)
}

func TestYAMLRender(t *testing.T) {
	unit := parse(t, "foo:\n  jmp .L1\n.L1:\n  ret\n")

	var out bytes.Buffer
	require.NoError(t, NewYAMLRenderer().RenderBounds(unit, &out))
	var intervals []asmparser.Interval
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &intervals))
	assert.Equal(t, []asmparser.Interval{{Name: "foo", Start: 0, End: 3}}, intervals)

	out.Reset()
	require.NoError(t, NewYAMLRenderer().RenderFunction(unit, intervals[0], &out))
	var fn functionView
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &fn))
	assert.Equal(t, "foo", fn.Name)
	require.Len(t, fn.Instructions, 3)
	assert.True(t, fn.Instructions[1].Implicit)
	require.Len(t, fn.Instructions[1].Children, 1)
	assert.Equal(t, "target", fn.Instructions[1].Children[0].Type)
	assert.Equal(t, ".L1", fn.Instructions[1].Children[0].Name)

	out.Reset()
	require.NoError(t, NewYAMLRenderer().RenderIssues(testIssues(), &out))
	var issues []*analyzer.Issue
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &issues))
	assert.Equal(t, testIssues(), issues)
}
