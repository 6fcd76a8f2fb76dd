// Package config reads the TOML planner file and translates it into the
// parameter set the layout builder consumes. Every key in the file is
// optional; an empty file still yields a printable blank planner.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/tbertus/daysheet/internal/logger"
	"github.com/tbertus/daysheet/internal/planner"
)

// colorPalette cycles left-column block colors by raw schedule entry
// position. Skipped entries still consume their slot, so a given line
// keeps its color even when a neighbor is malformed.
var colorPalette = []string{
	"#FFF200",
	"#B5E61D",
	"#FFAEC9",
	"#FFC90E",
	"#ED1C24",
	"#99D9EA",
	"#FFD54F",
	"#90CAF9",
}

// File mirrors the on-disk TOML shape.
type File struct {
	DateText      string          `toml:"date_text"`
	ScheduleTexts []string        `toml:"schedule_texts"`
	Notes         []string        `toml:"notes"`
	Habits        []string        `toml:"habits"`
	Layout        LayoutOverrides `toml:"layout"`
}

// LayoutOverrides tunes the page geometry from the config file. Zero
// fields keep the stock value, so a file may override a single knob
// without restating the rest.
type LayoutOverrides struct {
	PageWidth  float64 `toml:"page_width"`
	PageHeight float64 `toml:"page_height"`
	Margin     float64 `toml:"margin"`
	Gap        float64 `toml:"gap"`
	TimeCol    float64 `toml:"time_col"`
	ColorCol   float64 `toml:"color_col"`
	TextCol    float64 `toml:"text_col"`
	SidebarCol float64 `toml:"sidebar_col"`
	RowHeight  float64 `toml:"row_height"`
}

// Read loads and decodes the TOML file at path. Decode failures carry the
// parser's positional diagnostic so the caller can surface line and column.
func Read(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return File{}, fmt.Errorf("reading config: %w", err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return f, nil
}

// scheduleEntry is one parsed mini-language line: "start | span | task".
type scheduleEntry struct {
	start string
	span  int
	task  string
}

// parseScheduleText splits a pipe-delimited schedule string into its three
// fields. The span must parse as an integer; the start time is kept
// verbatim and validated later against the clock.
func parseScheduleText(s string) (scheduleEntry, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 3 {
		return scheduleEntry{}, fmt.Errorf("expected 3 fields (start | span | task), got %d", len(parts))
	}

	span, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return scheduleEntry{}, fmt.Errorf("span must be an integer, got %q", strings.TrimSpace(parts[1]))
	}

	return scheduleEntry{
		start: strings.TrimSpace(parts[0]),
		span:  span,
		task:  strings.TrimSpace(parts[2]),
	}, nil
}

// Params translates the file into builder parameters. Malformed schedule
// entries are skipped with a warning; an entry whose start time does not
// parse as a clock time aborts with ErrInvalidData.
func (f File) Params() (planner.Params, error) {
	schedule := make(map[string]string)
	var topThree []string
	var blocks []planner.ColorBlock

	for i, raw := range f.ScheduleTexts {
		entry, err := parseScheduleText(raw)
		if err != nil {
			logger.Warn("skipping invalid schedule entry", "entry", raw, "err", err)
			continue
		}

		name := entry.task
		if strings.HasPrefix(name, "*") {
			name = strings.TrimSpace(strings.TrimPrefix(name, "*"))
			topThree = append(topThree, name)
		}
		schedule[entry.start] = name

		end, err := planner.EndTime(entry.start, entry.span)
		if err != nil {
			return planner.Params{}, fmt.Errorf("%w: schedule entry %q: %v", ErrInvalidData, raw, err)
		}

		blocks = append(blocks, planner.ColorBlock{
			Start:     entry.start,
			End:       end,
			LeftColor: colorPalette[i%len(colorPalette)],
		})
	}

	habits := make([]planner.Habit, 0, len(f.Habits))
	for _, name := range f.Habits {
		habits = append(habits, planner.Habit{Name: name})
	}

	return planner.Params{
		DateText: f.DateText,
		Schedule: schedule,
		Blocks:   blocks,
		TopThree: topThree,
		Notes:    f.Notes,
		Habits:   habits,
		Layout:   f.Layout.apply(planner.DefaultLayout()),
	}, nil
}

// apply lays the overrides over base, leaving zero fields untouched.
func (o LayoutOverrides) apply(base planner.Layout) planner.Layout {
	if o.PageWidth > 0 {
		base.PageWidth = o.PageWidth
	}
	if o.PageHeight > 0 {
		base.PageHeight = o.PageHeight
	}
	if o.Margin > 0 {
		base.MarginLeft = o.Margin
		base.MarginRight = o.Margin
		base.MarginTop = o.Margin
		base.MarginBottom = o.Margin
	}
	if o.Gap > 0 {
		base.Gap = o.Gap
	}
	if o.TimeCol > 0 {
		base.TimeColWidth = o.TimeCol
	}
	if o.ColorCol > 0 {
		base.ColorColWidth = o.ColorCol
	}
	if o.TextCol > 0 {
		base.TextColWidth = o.TextCol
	}
	if o.SidebarCol > 0 {
		base.SidebarWidth = o.SidebarCol
	}
	if o.RowHeight > 0 {
		base.RowHeight = o.RowHeight
	}
	return base
}

// OutputPath derives the PDF path from the config path: same directory,
// same stem, extension swapped to .pdf.
func OutputPath(configPath string) string {
	return strings.TrimSuffix(configPath, filepath.Ext(configPath)) + ".pdf"
}
