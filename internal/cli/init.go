package cli

import (
	"fmt"
	"os"

	"github.com/tbertus/daysheet/internal/logger"
)

// starterConfig is written by `daysheet init`: a worked example day that
// exercises every key the generator reads.
const starterConfig = `# daysheet planner file.
# Run "daysheet generate <this file>" to produce the matching PDF.

date_text = "Fri Oct 31"

# One entry per scheduled task: "start | span | task". Start times use the
# 24-hour clock, span counts half-hour blocks, and a leading * on the task
# also lists it under Top 3 Things.
schedule_texts = [
  "06:00 | 1 | Coffee & quiet",
  "08:30 | 1 | *Strawberry plan",
  "09:00 | 3 | Coaching",
  "10:30 | 2 | *Costume work",
  "12:00 | 2 | Lunch + walk",
  "14:00 | 2 | Nap",
  "15:00 | 2 | Nora time",
  "16:00 | 2 | Groceries",
  "17:00 | 2 | *Mockups",
  "18:00 | 1 | Dinner",
]

notes = [
  "Next Strawberry mtg: 11/12 @ 1 PM",
  "",
  "Grocery list: milk, eggs, berries",
]

habits = ["Walk", "Stretch", "Water", "10 min sweat"]
`

type InitCmd struct {
	Path  string `arg:"" optional:"" help:"Where to write the starter file." default:"day.toml" type:"path"`
	Force bool   `help:"Overwrite an existing file."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if !c.Force {
		if _, err := os.Stat(c.Path); err == nil {
			logger.Error("refusing to overwrite existing file", "path", c.Path)
			return fmt.Errorf("%s already exists (use --force to overwrite)", c.Path)
		}
	}

	if err := os.WriteFile(c.Path, []byte(starterConfig), 0o644); err != nil {
		logger.Error("writing starter config failed", "path", c.Path, "err", err)
		return err
	}

	logger.Info("starter config written", "path", c.Path)
	fmt.Fprintf(ctx.Out, "%s %s\n", ctx.Styles.Success.Render("Created"), ctx.Styles.Path.Render(c.Path))
	return nil
}
