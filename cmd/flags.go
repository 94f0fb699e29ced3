// Package cmd defines all the commands for the cli
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/ChainSafe/asm-lens/asmgen"
	"github.com/ChainSafe/asm-lens/asmgen/manager"
	"github.com/ChainSafe/asm-lens/asmparser"
	"github.com/ChainSafe/asm-lens/asmparser/att"
	"github.com/ChainSafe/asm-lens/profile"
)

var (
	ISAProfileFlag = &cli.PathFlag{
		Name:     "isa",
		Usage:    "Path to the instruction set profile. Default: built-in x86_64",
		Required: false,
	}
	FormatFlag = &cli.StringFlag{
		Name:     "format",
		Usage:    "format of the output. Options: text, json, yaml",
		Required: false,
		Value:    "text",
	}
	OutputPathFlag = &cli.PathFlag{
		Name:     "output",
		Usage:    "output file path. Default: stdout",
		Required: false,
	}
	MemoryOpenFlag = &cli.StringFlag{
		Name:     "memory-open",
		Usage:    "mark opening a memory operand. Default: taken from the profile",
		Required: false,
	}
	MemoryCloseFlag = &cli.StringFlag{
		Name:     "memory-close",
		Usage:    "mark closing a memory operand. Default: taken from the profile",
		Required: false,
	}
	SourceTypeFlag = &cli.StringFlag{
		Name:     "source-type",
		Usage:    "Parsing 'asm' code or compiling 'c' code first",
		Required: false,
		Value:    "asm",
	}
	CompilerFlag = &cli.StringFlag{
		Name:     "compiler",
		Usage:    "C compiler used for --source-type c",
		Required: false,
		Value:    "cc",
	}
	AssemblyOutputFlag = &cli.PathFlag{
		Name:     "assembly-output-path",
		Usage:    "File path to store the generated assembly code",
		Required: false,
	}
	LogLevelFlag = &cli.StringFlag{
		Name:     "log-level",
		Usage:    "log level. Options: panic, fatal, error, warn, info, debug, trace",
		Required: false,
		Value:    "warn",
	}
)

var inputFlags = []cli.Flag{
	ISAProfileFlag,
	MemoryOpenFlag,
	MemoryCloseFlag,
	SourceTypeFlag,
	CompilerFlag,
	AssemblyOutputFlag,
	FormatFlag,
	OutputPathFlag,
}

// SetupLogging applies the --log-level flag.
func SetupLogging(ctx *cli.Context) error {
	level, err := log.ParseLevel(ctx.String(LogLevelFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(level)
	return nil
}

// newParser builds the parser from the profile and memory operand flags.
func newParser(ctx *cli.Context) (*att.Parser, error) {
	prof := profile.Default()
	if path := ctx.Path(ISAProfileFlag.Name); path != "" {
		var err error
		if prof, err = profile.LoadProfile(path); err != nil {
			return nil, fmt.Errorf("error loading profile: %w", err)
		}
	}

	openMark, closeMark := prof.Syntax.MemoryOpen, prof.Syntax.MemoryClose
	if ctx.IsSet(MemoryOpenFlag.Name) {
		openMark = ctx.String(MemoryOpenFlag.Name)
	}
	if ctx.IsSet(MemoryCloseFlag.Name) {
		closeMark = ctx.String(MemoryCloseFlag.Name)
	}
	if openMark == "" || closeMark == "" || openMark == closeMark {
		return nil, fmt.Errorf("invalid memory operand marks %q and %q", openMark, closeMark)
	}
	return att.NewParser(prof, att.WithMemoryOperand(openMark, closeMark)), nil
}

// parseInput generates the assembly of the first argument and parses it.
func parseInput(ctx *cli.Context, parser *att.Parser) (*asmparser.Unit, error) {
	source := ctx.Args().First()
	if source == "" {
		return nil, errors.New("missing input file")
	}
	mode, ok := asmgen.ParseSource(ctx.String(SourceTypeFlag.Name))
	if !ok {
		return nil, fmt.Errorf("invalid source type: %s", ctx.String(SourceTypeFlag.Name))
	}
	gen, err := manager.NewGenerator(asmgen.TypeCC, ctx.String(CompilerFlag.Name))
	if err != nil {
		return nil, err
	}
	path, err := gen.Generate(mode, source, ctx.Path(AssemblyOutputFlag.Name))
	if err != nil {
		return nil, fmt.Errorf("error generating assembly: %w", err)
	}
	unit, err := parser.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("error parsing assembly file: %w", err)
	}
	return unit, nil
}

// withOutput calls write with stdout or the file named by --output.
func withOutput(ctx *cli.Context, write func(output io.Writer) error) error {
	outputPath := ctx.Path(OutputPathFlag.Name)
	if outputPath == "" {
		return write(os.Stdout)
	}
	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("unable to determine absolute path: %w", err)
	}
	output, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to open output file: %w", err)
	}
	defer func() {
		_ = output.Close()
	}()
	return write(output)
}
