package cmd

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/ChainSafe/asm-lens/renderer"
)

func CreateParseCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "parse",
		Usage:       "Parses an assembly file and prints its syntax tree",
		Description: "Parses an assembly file and prints its syntax tree, global symbols and function bounds",
		ArgsUsage:   "<file>",
		Action:      action,
		Flags:       inputFlags,
	}
}

var ParseCommand = CreateParseCommand(ParseAssembly)

func ParseAssembly(ctx *cli.Context) error {
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
	return withOutput(ctx, func(output io.Writer) error {
		if err := r.RenderUnit(unit, output); err != nil {
			return fmt.Errorf("unable to write output: %w", err)
		}
		return nil
	})
}
