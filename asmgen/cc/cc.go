package cc

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/ChainSafe/asm-lens/asmgen"
)

// CC generates assembly with a C compiler driver accepting -S.
type CC struct {
	Compiler string
	Flags    []string
}

func New(compiler string, flags ...string) *CC {
	if compiler == "" {
		compiler = "cc"
	}
	return &CC{
		Compiler: compiler,
		Flags:    flags,
	}
}

func (c *CC) Generate(mode asmgen.Source, target string, outputPath string) (string, error) {
	absPath, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path of target: %w", err)
	}

	switch mode {
	case asmgen.SourceAssembly:
		if outputPath == "" {
			return absPath, nil
		}
		return copyAssembly(absPath, outputPath)
	case asmgen.SourceC:
		return c.compile(absPath, outputPath)
	default:
		return "", fmt.Errorf("unsupported source mode: %d", mode)
	}
}

func (c *CC) compile(target string, outputPath string) (string, error) {
	if outputPath == "" {
		tmp, err := os.CreateTemp("", "asm-lens-*.s")
		if err != nil {
			return "", fmt.Errorf("failed to create output file: %w", err)
		}
		_ = tmp.Close()
		outputPath = tmp.Name()
	}
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path of output file: %w", err)
	}

	args := append([]string{"-S", "-o", absOutputPath}, c.Flags...)
	args = append(args, target)
	log.WithFields(log.Fields{"compiler": c.Compiler, "args": args}).Debug("generating assembly")

	//nolint:gosec
	cmd := exec.Command(c.Compiler, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("failed to generate assembly: %w\nOutput:\n%s", err, string(output))
	}
	return absOutputPath, nil
}

func copyAssembly(source string, outputPath string) (string, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("failed to read assembly: %w", err)
	}
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path of output file: %w", err)
	}
	if err = os.WriteFile(absOutputPath, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write to output file: %w", err)
	}
	return absOutputPath, nil
}
