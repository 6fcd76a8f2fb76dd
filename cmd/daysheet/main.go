package main

import (
	"os"
	"runtime/debug"

	"github.com/alecthomas/kong"

	"github.com/tbertus/daysheet/internal/cli"
	"github.com/tbertus/daysheet/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool   `help:"Enable debug logging."`
	LogFile string `help:"Log file path." type:"path" default:"daysheet.log"`

	Generate cli.GenerateCmd `cmd:"" help:"Generate a planner PDF from a TOML file." default:"withargs"`
	Init     cli.InitCmd     `cmd:"" help:"Write a starter planner TOML."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("daysheet"),
		kong.Description("Printable daily planner generator"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	logger.Init(logger.Config{Debug: CLI.Debug, File: CLI.LogFile})

	defer func() {
		if r := recover(); r != nil {
			logger.Error("unexpected error", "err", r)
			logger.Debug(string(debug.Stack()))
			os.Exit(1)
		}
	}()

	appCtx := &cli.Context{
		Out:    os.Stdout,
		Styles: cli.DefaultStyles(),
	}

	if err := kctx.Run(appCtx); err != nil {
		// Every failure path reports through the logger before returning.
		os.Exit(1)
	}
}
