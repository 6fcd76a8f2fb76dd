// Package render walks a layout tree and produces the final PDF. It is the
// only package that touches the PDF backend; everything upstream works on
// plain layout values.
package render

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/tbertus/daysheet/internal/layout"
)

const (
	fontFamily      = "Helvetica"
	defaultFontSize = 10  // table text and paragraphs that set no size
	cellPadding     = 4   // horizontal inset for table cell text
	leading         = 1.2 // paragraph line height multiplier
)

// WritePDF renders doc to a single-page PDF at path, creating or truncating
// the file.
func WritePDF(doc layout.Document, path string) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: doc.Page.Width, Ht: doc.Page.Height},
	})
	pdf.SetMargins(doc.Page.MarginLeft, doc.Page.MarginTop, doc.Page.MarginRight)
	pdf.SetAutoPageBreak(false, doc.Page.MarginBottom)
	pdf.SetCellMargin(cellPadding)
	pdf.AddPage()

	r := &renderer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	y := doc.Page.MarginTop
	for _, f := range doc.Content {
		y = r.draw(f, doc.Page.MarginLeft, y)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

type renderer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string // UTF-8 to the core-font code page
}

// draw renders one flowable with its top-left corner at (x, y) and returns
// the y coordinate just below it.
func (r *renderer) draw(f layout.Flowable, x, y float64) float64 {
	switch v := f.(type) {
	case layout.Paragraph:
		return r.paragraph(v, x, y)
	case layout.Spacer:
		return y + v.Height
	case layout.Table:
		return r.table(v, x, y)
	case layout.Columns:
		return r.columns(v, x, y)
	}
	return y
}

func (r *renderer) paragraph(p layout.Paragraph, x, y float64) float64 {
	size := p.Size
	if size == 0 {
		size = defaultFontSize
	}
	h := size * leading

	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.SetXY(x, y)
	for _, span := range p.Spans {
		style := ""
		if span.Bold {
			style = "B"
		}
		r.pdf.SetFont(fontFamily, style, size)
		r.pdf.Write(h, r.tr(span.Text))
	}
	return y + h
}

// table paints in three passes so rules sit on top of fills and text on top
// of rules: cell backgrounds first, then the grid, then the cell text.
func (r *renderer) table(t layout.Table, x, y float64) float64 {
	if len(t.Rows) == 0 {
		return y
	}

	width := 0.0
	for _, w := range t.ColWidths {
		width += w
	}
	height := float64(len(t.Rows)) * t.RowHeight

	for ri, row := range t.Rows {
		cx := x
		for ci, cell := range row {
			if cell.Fill != nil {
				r.pdf.SetFillColor(int(cell.Fill.R), int(cell.Fill.G), int(cell.Fill.B))
				r.pdf.Rect(cx, y+float64(ri)*t.RowHeight, t.ColWidths[ci], t.RowHeight, "F")
			}
			cx += t.ColWidths[ci]
		}
	}

	if t.Grid != nil {
		r.rules(*t.Grid, x, y, t.ColWidths, len(t.Rows), t.RowHeight, true)
	}
	if t.Inner != nil {
		r.rules(*t.Inner, x, y, t.ColWidths, len(t.Rows), t.RowHeight, false)
	}
	if t.Box != nil {
		r.pdf.SetDrawColor(int(t.Box.Color.R), int(t.Box.Color.G), int(t.Box.Color.B))
		r.pdf.SetLineWidth(t.Box.Width)
		r.pdf.Rect(x, y, width, height, "D")
	}

	r.pdf.SetFont(fontFamily, "", defaultFontSize)
	r.pdf.SetTextColor(0, 0, 0)
	for ri, row := range t.Rows {
		cx := x
		for ci, cell := range row {
			if cell.Text != "" {
				r.pdf.SetXY(cx, y+float64(ri)*t.RowHeight)
				r.pdf.CellFormat(t.ColWidths[ci], t.RowHeight, r.tr(cell.Text), "", 0, "LM", false, 0, "")
			}
			cx += t.ColWidths[ci]
		}
	}

	return y + height
}

// rules draws a table's grid lines. When edges is true the outermost lines
// are included (a full grid); otherwise only interior boundaries are ruled.
func (r *renderer) rules(style layout.LineStyle, x, y float64, colWidths []float64, rowCount int, rowHeight float64, edges bool) {
	width := 0.0
	for _, w := range colWidths {
		width += w
	}
	height := float64(rowCount) * rowHeight

	r.pdf.SetDrawColor(int(style.Color.R), int(style.Color.G), int(style.Color.B))
	r.pdf.SetLineWidth(style.Width)

	for i := 0; i <= rowCount; i++ {
		if !edges && (i == 0 || i == rowCount) {
			continue
		}
		ly := y + float64(i)*rowHeight
		r.pdf.Line(x, ly, x+width, ly)
	}

	cx := x
	for j := 0; j <= len(colWidths); j++ {
		if edges || (j != 0 && j != len(colWidths)) {
			r.pdf.Line(cx, y, cx, y+height)
		}
		if j < len(colWidths) {
			cx += colWidths[j]
		}
	}
}

// columns renders each stack top-aligned in its own column and returns the
// bottom of the tallest one.
func (r *renderer) columns(c layout.Columns, x, y float64) float64 {
	bottom := y
	cx := x
	for i, stack := range c.Stacks {
		cy := y
		for _, f := range stack {
			cy = r.draw(f, cx, cy)
		}
		if cy > bottom {
			bottom = cy
		}
		if i < len(c.Widths) {
			cx += c.Widths[i] + c.Gap
		}
	}
	return bottom
}
