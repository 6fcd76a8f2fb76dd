package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/tbertus/daysheet/internal/config"
	"github.com/tbertus/daysheet/internal/logger"
	"github.com/tbertus/daysheet/internal/planner"
	"github.com/tbertus/daysheet/internal/render"
)

type GenerateCmd struct {
	Config string `arg:"" help:"Planner TOML file." type:"path"`
	Out    string `help:"Output PDF path (defaults to the config path with its extension swapped to .pdf)." type:"path"`
}

func (c *GenerateCmd) Run(ctx *Context) error {
	logger.Info("reading configuration", "path", c.Config)
	f, err := config.Read(c.Config)
	if err != nil {
		reportReadError(c.Config, err)
		return err
	}

	params, err := f.Params()
	if err != nil {
		logger.Error("invalid data format", "path", c.Config, "err", err)
		logger.Error("check the schedule entries for correct start times")
		return err
	}

	out := c.Out
	if out == "" {
		out = config.OutputPath(c.Config)
	}

	logger.Info("generating pdf", "path", out)
	if err := render.WritePDF(planner.Build(params), out); err != nil {
		logger.Error("pdf generation failed", "path", out, "err", err)
		return err
	}

	logger.Info("planner generated", "path", out)
	fmt.Fprintf(ctx.Out, "%s %s\n", ctx.Styles.Success.Render("Created"), ctx.Styles.Path.Render(out))
	return nil
}

// reportReadError logs a read failure with its specific cause. Syntax
// errors also print the parser's positional diagnostic, which points at
// the offending line and column.
func reportReadError(path string, err error) {
	switch {
	case errors.Is(err, config.ErrNotFound):
		logger.Error("config file not found", "path", path)
		logger.Error("check that the file path is correct and try again")
	case errors.Is(err, config.ErrSyntax):
		logger.Error("invalid TOML syntax", "path", path)
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			logger.Error("parse failure", "line", row, "column", col, "err", derr.Error())
			fmt.Fprintln(os.Stderr, derr.String())
		} else {
			logger.Error("parse failure", "err", err)
		}
	default:
		logger.Error("reading config failed", "path", path, "err", err)
	}
}
