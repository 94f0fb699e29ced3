package cmd

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/ChainSafe/asm-lens/renderer"
)

var FunctionNameFlag = &cli.StringFlag{
	Name:     "function",
	Usage:    "Name of the function whose instructions are listed",
	Required: false,
}

func CreateBoundsCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "bounds",
		Usage:       "Prints the function bounds of an assembly file",
		Description: "Prints the instruction intervals of the functions of an assembly file",
		ArgsUsage:   "<file>",
		Action:      action,
		Flags:       append([]cli.Flag{FunctionNameFlag}, inputFlags...),
	}
}

var BoundsCommand = CreateBoundsCommand(FunctionBounds)

func FunctionBounds(ctx *cli.Context) error {
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

	function := ctx.String(FunctionNameFlag.Name)
	if function == "" {
		return withOutput(ctx, func(output io.Writer) error {
			return r.RenderBounds(unit, output)
		})
	}
	fn, ok := unit.Bounds.Find(function)
	if !ok {
		return fmt.Errorf("function %s not found", function)
	}
	return withOutput(ctx, func(output io.Writer) error {
		return r.RenderFunction(unit, fn, output)
	})
}
