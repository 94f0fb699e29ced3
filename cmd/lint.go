package cmd

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/ChainSafe/asm-lens/analyzer"
	"github.com/ChainSafe/asm-lens/analyzer/operand"
	"github.com/ChainSafe/asm-lens/analyzer/symbol"
	"github.com/ChainSafe/asm-lens/asmparser"
	"github.com/ChainSafe/asm-lens/asmparser/att"
	"github.com/ChainSafe/asm-lens/renderer"
)

var AnalysisTypeFlag = &cli.StringFlag{
	Name:     "analysis-type",
	Usage:    "Type of analysis to perform. Options: operand, symbol",
	Required: false,
}

func CreateLintCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "lint",
		Usage:       "Checks an assembly file for operand and symbol issues",
		Description: "Checks an assembly file for operand and symbol issues. Exits with status 1 when a critical issue is found",
		ArgsUsage:   "<file>",
		Action:      action,
		Flags:       append([]cli.Flag{AnalysisTypeFlag}, inputFlags...),
	}
}

var LintCommand = CreateLintCommand(LintAssembly)

func LintAssembly(ctx *cli.Context) error {
	r, err := renderer.New(ctx.String(FormatFlag.Name))
	if err != nil {
		return err
	}
	parser, err := newParser(ctx)
	if err != nil {
		return err
	}
	unit, err := parseInput(ctx, parser)
	if err != nil {
		return err
	}

	issues, err := analyze(parser, unit, ctx.String(AnalysisTypeFlag.Name))
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	err = withOutput(ctx, func(output io.Writer) error {
		return r.RenderIssues(issues, output)
	})
	if err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}
	if analyzer.HasCritical(issues) {
		return cli.Exit("critical issues found", 1)
	}
	return nil
}

// analyze runs the selected analyzer(s).
func analyze(parser *att.Parser, unit *asmparser.Unit, mode string) ([]*analyzer.Issue, error) {
	var analyzers []analyzer.Analyzer
	switch mode {
	case "operand":
		analyzers = append(analyzers, operand.NewAnalyser(parser))
	case "symbol":
		analyzers = append(analyzers, symbol.NewAnalyser())
	case "":
		// by default run all of them
		analyzers = append(analyzers, operand.NewAnalyser(parser), symbol.NewAnalyser())
	default:
		return nil, fmt.Errorf("invalid analysis type: %s", mode)
	}

	issues := make([]*analyzer.Issue, 0)
	for _, a := range analyzers {
		found, err := a.Analyze(unit)
		if err != nil {
			return nil, err
		}
		issues = append(issues, found...)
	}
	analyzer.SortIssues(issues)
	return issues, nil
}
