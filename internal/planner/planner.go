// Package planner builds the printable daily-planner page: a half-hour
// schedule grid with two slim color columns beside the times, and a sidebar
// with the top three priorities, a notes box, and habit checkboxes. Build is
// a pure transformation from Params to a layout tree; it performs no I/O.
package planner

import (
	"fmt"
	"strings"

	"github.com/tbertus/daysheet/internal/layout"
)

const (
	bodyFontSize    = 10
	headingFontSize = 12

	numberColWidth = 20 // rank column of the Top 3 table
	checkColWidth  = 40 // checkbox column of the habits table
	habitInset     = 20 // the habits table stops short of the sidebar edge
	noteLineCount  = 12 // the notes box always shows exactly this many rows
	sectionGap     = 12 // vertical space between sidebar sections
	dateGap        = 6  // vertical space below the date line
)

// ColorBlock shades the two slim color columns for every half-hour row in
// [Start, End): Start included, End excluded. Colors are hex strings such
// as "#FFD54F"; an empty or malformed color leaves that column unfilled.
type ColorBlock struct {
	Start      string
	End        string
	LeftColor  string
	RightColor string
}

// Habit pairs a habit name with its completion state. Habits render in slice
// order, so callers control the order users see.
type Habit struct {
	Name string
	Done bool
}

// Params carries everything Build needs for one planner page. Zero fields
// fall back to documented defaults; see Build.
type Params struct {
	DateText string
	Schedule map[string]string // canonical "HH:MM" key → row text
	Blocks   []ColorBlock
	TopThree []string
	Notes    []string
	Habits   []Habit
	Layout   Layout
}

// Layout holds page geometry and column widths, in points.
type Layout struct {
	PageWidth    float64
	PageHeight   float64
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
	Gap          float64 // space between the schedule grid and the sidebar

	TimeColWidth  float64
	ColorColWidth float64 // each of the two slim color columns
	TextColWidth  float64
	SidebarWidth  float64
	RowHeight     float64
}

// DefaultLayout returns the stock geometry: a letter page (612x792 pt) with
// quarter-inch margins, a 10 pt column gap, and 45/15/190/250 pt columns.
func DefaultLayout() Layout {
	return Layout{
		PageWidth:    612,
		PageHeight:   792,
		MarginLeft:   18,
		MarginRight:  18,
		MarginTop:    18,
		MarginBottom: 18,
		Gap:          10,

		TimeColWidth:  45,
		ColorColWidth: 15,
		TextColWidth:  190,
		SidebarWidth:  250,
		RowHeight:     17,
	}
}

// Build lays out one planner page from p. It is deterministic and never
// fails: malformed hex colors and color blocks with unparseable times
// degrade to "no fill", and dimensions are passed through unvalidated.
//
// Defaults: an empty DateText becomes a writable underscore line; a nil
// Habits slice becomes the stock four habits (an empty non-nil slice renders
// an empty habits table); Notes is padded or truncated to exactly 12 lines;
// only the first three TopThree entries are read; a zero Layout becomes
// DefaultLayout().
func Build(p Params) layout.Document {
	geo := p.Layout
	if geo == (Layout{}) {
		geo = DefaultLayout()
	}
	dateText := p.DateText
	if dateText == "" {
		dateText = defaultDateText
	}
	habits := p.Habits
	if habits == nil {
		habits = defaultHabits()
	}

	fills := expandRowFills(p.Blocks)
	gridWidth := geo.TimeColWidth + 2*geo.ColorColWidth + geo.TextColWidth

	return layout.Document{
		Page: layout.Page{
			Width:        geo.PageWidth,
			Height:       geo.PageHeight,
			MarginLeft:   geo.MarginLeft,
			MarginRight:  geo.MarginRight,
			MarginTop:    geo.MarginTop,
			MarginBottom: geo.MarginBottom,
		},
		Content: []layout.Flowable{
			dateLine(dateText),
			layout.Spacer{Height: dateGap},
			layout.Columns{
				Widths: []float64{gridWidth, geo.SidebarWidth},
				Gap:    geo.Gap,
				Stacks: [][]layout.Flowable{
					{scheduleTable(p.Schedule, fills, geo)},
					sidebarStack(p.TopThree, p.Notes, habits, geo),
				},
			},
		},
	}
}

// rowFill is the pair of column fills derived for one half-hour row.
type rowFill struct {
	left  *layout.Color
	right *layout.Color
}

// expandRowFills walks each block in half-hour steps from Start (inclusive)
// to End (exclusive) and records the fill pair under each step's canonical
// key. Later blocks overwrite earlier ones on overlap. A block whose End is
// not after its Start covers zero rows, and a block whose times do not parse
// is skipped entirely.
func expandRowFills(blocks []ColorBlock) map[string]rowFill {
	fills := make(map[string]rowFill)
	for _, blk := range blocks {
		start, err := parseKey(blk.Start)
		if err != nil {
			continue
		}
		end, err := parseKey(blk.End)
		if err != nil {
			continue
		}
		fill := rowFill{left: hexOrNil(blk.LeftColor), right: hexOrNil(blk.RightColor)}
		for m := start; m < end; m += slotStepMinutes {
			fills[keyFor(m)] = fill
		}
	}
	return fills
}

// hexOrNil decodes a hex color, mapping absent or malformed input to nil
// (no fill) rather than an error.
func hexOrNil(s string) *layout.Color {
	c, ok := layout.ParseHex(s)
	if !ok {
		return nil
	}
	return &c
}

// scheduleTable builds the 28-row grid: time label, the two slim color
// columns, and the task text looked up by canonical key.
func scheduleTable(texts map[string]string, fills map[string]rowFill, geo Layout) layout.Table {
	timeFill := layout.WhiteSmoke

	slots := Slots()
	rows := make([][]layout.Cell, 0, len(slots))
	for _, slot := range slots {
		key := slot.Key()
		fill := fills[key]
		rows = append(rows, []layout.Cell{
			{Text: slot.Label(), Fill: &timeFill},
			{Fill: fill.left},
			{Fill: fill.right},
			{Text: texts[key]},
		})
	}

	grid := layout.LineStyle{Width: 0.25, Color: layout.Grey}
	return layout.Table{
		ColWidths: []float64{geo.TimeColWidth, geo.ColorColWidth, geo.ColorColWidth, geo.TextColWidth},
		RowHeight: geo.RowHeight,
		Rows:      rows,
		Grid:      &grid,
	}
}

// sidebarStack builds the right-hand column: Top 3 Things, Notes, Habits,
// each a bordered grid under a bold heading.
func sidebarStack(topThree, notes []string, habits []Habit, geo Layout) []layout.Flowable {
	box := layout.LineStyle{Width: 1, Color: layout.Black}
	inner := layout.LineStyle{Width: 0.25, Color: layout.Grey}

	threeRows := make([][]layout.Cell, 3)
	for i := range threeRows {
		text := ""
		if i < len(topThree) {
			text = topThree[i]
		}
		threeRows[i] = []layout.Cell{{Text: fmt.Sprintf("%d.", i+1)}, {Text: text}}
	}

	noteRows := make([][]layout.Cell, noteLineCount)
	for i, line := range padNotes(notes) {
		noteRows[i] = []layout.Cell{{Text: line}}
	}

	nameFill := layout.LightBlue
	habitRows := make([][]layout.Cell, len(habits))
	for i, h := range habits {
		habitRows[i] = []layout.Cell{{Text: h.Name, Fill: &nameFill}, {Text: checkbox(h.Done)}}
	}

	return []layout.Flowable{
		heading("Top 3 Things"),
		layout.Table{
			ColWidths: []float64{numberColWidth, geo.SidebarWidth - numberColWidth},
			RowHeight: geo.RowHeight,
			Rows:      threeRows,
			Box:       &box,
			Inner:     &inner,
		},
		layout.Spacer{Height: sectionGap},
		heading("Notes"),
		layout.Table{
			ColWidths: []float64{geo.SidebarWidth},
			RowHeight: geo.RowHeight,
			Rows:      noteRows,
			Box:       &box,
			Inner:     &inner,
		},
		layout.Spacer{Height: sectionGap},
		heading("Habits"),
		layout.Table{
			ColWidths: []float64{geo.SidebarWidth - checkColWidth - habitInset, checkColWidth},
			RowHeight: geo.RowHeight,
			Rows:      habitRows,
			Box:       &box,
			Inner:     &inner,
		},
	}
}

// padNotes pads or truncates to exactly noteLineCount lines.
func padNotes(notes []string) []string {
	lines := make([]string, noteLineCount)
	copy(lines, notes)
	return lines
}

// checkbox renders the fixed two-state completion marker.
func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func dateLine(dateText string) layout.Paragraph {
	return layout.Paragraph{
		Spans: []layout.Span{{Text: "Date: ", Bold: true}, {Text: dateText}},
		Size:  bodyFontSize,
	}
}

func heading(text string) layout.Paragraph {
	return layout.Paragraph{
		Spans: []layout.Span{{Text: text, Bold: true}},
		Size:  headingFontSize,
	}
}

var defaultDateText = strings.Repeat("_", 20)

func defaultHabits() []Habit {
	return []Habit{
		{Name: "Walk"},
		{Name: "Stretch"},
		{Name: "Water"},
		{Name: "10 min sweat"},
	}
}
