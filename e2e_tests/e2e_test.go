//go:build integration

package e2etest

import (
	"bytes"
	"encoding/json"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/asm-lens/analyzer"
	"github.com/ChainSafe/asm-lens/asmparser"
)

const (
	binary      = "../bin/asm-lens"
	testdataDir = "testdata"
)

func runCLI(t *testing.T, args ...string) ([]byte, int) {
	t.Helper()
	cmd := exec.Command(binary, args...)

	var out bytes.Buffer
	var errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	err := cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out.Bytes(), exitErr.ExitCode()
	}
	if err != nil {
		t.Fatalf("Failed to run CLI: %v. errorOutput: %s", err, errOut.String())
	}
	return out.Bytes(), 0
}

func TestBounds(t *testing.T) {
	cases := map[string]struct {
		path      string
		intervals []asmparser.Interval
	}{
		"hello": {
			path:      filepath.Join(testdataDir, "hello.s"),
			intervals: []asmparser.Interval{{Name: "main", Start: 0, End: 10}},
		},
		"loop": {
			path: filepath.Join(testdataDir, "loop.s"),
			intervals: []asmparser.Interval{
				{Name: "sum", Start: 0, End: 11},
				{Name: "helper", Start: 11, End: 14},
			},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			out, code := runCLI(t, "bounds", "--format", "json", tc.path)
			require.Equal(t, 0, code)

			var intervals []asmparser.Interval
			require.NoError(t, json.Unmarshal(out, &intervals))
			assert.Equal(t, tc.intervals, intervals)
		})
	}
}

func TestLint(t *testing.T) {
	cases := map[string]struct {
		path      string
		isPassing bool
	}{
		"hello":  {path: filepath.Join(testdataDir, "hello.s"), isPassing: true},
		"loop":   {path: filepath.Join(testdataDir, "loop.s"), isPassing: true},
		"broken": {path: filepath.Join(testdataDir, "broken.s")},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			out, code := runCLI(t, "lint", "--format", "json", tc.path)

			issues := []*analyzer.Issue{}
			require.NoError(t, json.Unmarshal(out, &issues))

			if tc.isPassing {
				assert.Equal(t, 0, code)
				for i := range issues {
					assert.NotEqual(t, analyzer.IssueSeverityCritical, issues[i].Severity, "Found Critical issue")
				}
			} else {
				assert.Equal(t, 1, code)
				assert.True(t, analyzer.HasCritical(issues), "No critical issues found")
			}
		})
	}
}

func TestParseText(t *testing.T) {
	out, code := runCLI(t, "parse", filepath.Join(testdataDir, "loop.s"))
	require.Equal(t, 0, code)
	assert.Contains(t, string(out), "  sum [0,11)\n")
	assert.Contains(t, string(out), "instruction addl (add) long\n")
	assert.Contains(t, string(out), "register %rdx read\n")
}
