package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/ChainSafe/asm-lens/cmd"
)

func main() {
	app := cli.NewApp()
	app.Name = os.Args[0]
	app.Usage = "AT&T Assembly Inspector"
	app.Description = "Parses AT&T assembly into syntax trees and function bounds, and lints it"
	app.Flags = []cli.Flag{cmd.LogLevelFlag}
	app.Before = cmd.SetupLogging
	app.Commands = []*cli.Command{
		cmd.ParseCommand,
		cmd.BoundsCommand,
		cmd.LintCommand,
	}
	err := app.RunContext(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
