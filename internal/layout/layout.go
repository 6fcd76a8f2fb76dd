// Package layout describes a renderable document as a tree of flowables:
// paragraphs, spacers, tables, and side-by-side column stacks. The tree is
// plain data with no rendering behavior; a backend walks it to produce the
// final paginated output. All types are value structs and are never mutated
// after construction.
package layout

// Page holds the physical page size and margins, in points.
type Page struct {
	Width        float64
	Height       float64
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
}

// Document is the root of a layout tree. Content flows top to bottom inside
// the page margins.
type Document struct {
	Page    Page
	Content []Flowable
}

// Flowable is a node in the layout tree. The set of implementations is fixed:
// Paragraph, Spacer, Table, and Columns.
type Flowable interface {
	flowable()
}

// Span is a run of text within a paragraph sharing one style.
type Span struct {
	Text string
	Bold bool
}

// Paragraph is a single line of styled text spans.
type Paragraph struct {
	Spans []Span
	Size  float64 // font size in points
}

// Spacer is fixed vertical whitespace.
type Spacer struct {
	Height float64
}

// Cell is one table cell. A nil Fill leaves the cell transparent.
type Cell struct {
	Text string
	Fill *Color
}

// LineStyle describes a rule weight and color.
type LineStyle struct {
	Width float64
	Color Color
}

// Table is a fixed grid of cells. Grid rules every cell boundary; Box rules
// only the outer border and Inner only the interior boundaries, so a table
// may combine a heavy Box with a light Inner. Nil styles draw nothing.
type Table struct {
	ColWidths []float64
	RowHeight float64
	Rows      [][]Cell
	Grid      *LineStyle
	Box       *LineStyle
	Inner     *LineStyle
}

// Columns lays out several flowable stacks side by side, top-aligned, with
// Gap points of whitespace between adjacent columns.
type Columns struct {
	Widths []float64
	Gap    float64
	Stacks [][]Flowable
}

func (Paragraph) flowable() {}
func (Spacer) flowable()    {}
func (Table) flowable()     {}
func (Columns) flowable()   {}
