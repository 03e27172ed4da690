package xlsx

import (
	"fmt"

	"github.com/unidoc/unioffice/spreadsheet/reference"
)

// Intermediate representation of the single output worksheet.

// Widths are in spreadsheet column units, heights in points.

// Horizontal alignment values.
const (
	AlignGeneral = "general"
	AlignLeft    = "left"
	AlignCenter  = "center"
	AlignRight   = "right"
	AlignJustify = "justify"
)

// CellStyle captures the limited set of Excel styles we currently support.
// It is comparable so that identical styles share one workbook style record.
type CellStyle struct {
	FontFamily      string  // e.g. "Calibri", empty means default
	FontSizePt      float64 // 0 means default
	FontColor       string  // "AARRGGBB"
	BackgroundColor string  // "AARRGGBB", solid fill
	Bold            bool
	Italic          bool
	Underline       bool
	Strike          bool
	HorizontalAlign string // general|left|center|right|justify
	VerticalAlign   string // top|center|bottom
	WrapText        bool
	Border          bool // thin black border on all four edges
}

func (s CellStyle) String() string {
	return fmt.Sprintf("FontFamily: %s, FontSizePt: %f, FontColor: %s, BackgroundColor: %s, Bold: %t, Italic: %t, Underline: %t, Strike: %t, HorizontalAlign: %s, VerticalAlign: %s, WrapText: %t, Border: %t",
		s.FontFamily, s.FontSizePt, s.FontColor, s.BackgroundColor, s.Bold, s.Italic, s.Underline, s.Strike, s.HorizontalAlign, s.VerticalAlign, s.WrapText, s.Border)
}

// Cell is a single output cell: a value-carrying anchor or a covered member
// of a merge.
type Cell struct {
	Ref     string    // e.g. "A1"
	Value   string    // empty for covered cells
	ColSpan int       // 1 if not merged
	Covered bool      // part of a merge but not its anchor
	Style   CellStyle // resolved style
}

func (c Cell) String() string {
	return fmt.Sprintf("Ref: %s, Value: %q, ColSpan: %d, Covered: %t, Style: [%s]", c.Ref, c.Value, c.ColSpan, c.Covered, c.Style.String())
}

// Row represents one worksheet row.
type Row struct {
	Height float64 // points, 0 means not set
	Cells  []*Cell // indexed by column; nil for blank cells
}

func (r Row) String() string {
	return fmt.Sprintf("Height: %f, Cells: %d", r.Height, len(r.Cells))
}

// Fallback tells why a sheet was not built from the table layout.
type Fallback int

const (
	FallbackNone     Fallback = iota // layout-preserving conversion
	FallbackNoTables                 // document has no tables
	FallbackNoLayout                 // tables exist but none declares column widths
)

func (f Fallback) String() string {
	switch f {
	case FallbackNone:
		return "none"
	case FallbackNoTables:
		return "no-tables"
	case FallbackNoLayout:
		return "no-layout"
	}
	return fmt.Sprintf("Fallback(%d)", int(f))
}

// MergeRange is an inclusive, zero-based rectangle of merged cells.
type MergeRange struct {
	FromRow, FromCol int
	ToRow, ToCol     int
}

// Ref returns the range in A1 notation, e.g. "A1:C1".
func (m MergeRange) Ref() string {
	return CellRef(m.FromRow, m.FromCol) + ":" + CellRef(m.ToRow, m.ToCol)
}

// Sheet is the intermediate representation of the output worksheet.
type Sheet struct {
	Name      string
	ColWidths []float64 // master grid widths in column units
	Rows      []Row     // in order
	Fallback  Fallback
}

func (s Sheet) String() string {
	return fmt.Sprintf("Name: %s, ColWidths: %v, Rows: %d, Fallback: %s", s.Name, s.ColWidths, len(s.Rows), s.Fallback)
}

// Cell returns the cell at the zero-based position, or nil.
func (s *Sheet) Cell(row, col int) *Cell {
	if row < 0 || row >= len(s.Rows) || col < 0 || col >= len(s.Rows[row].Cells) {
		return nil
	}
	return s.Rows[row].Cells[col]
}

// Merges lists the merge ranges of the sheet, row by row.
func (s *Sheet) Merges() []MergeRange {
	var out []MergeRange
	for r, row := range s.Rows {
		for c, cell := range row.Cells {
			if cell == nil || cell.Covered || cell.ColSpan <= 1 {
				continue
			}
			out = append(out, MergeRange{FromRow: r, FromCol: c, ToRow: r, ToCol: c + cell.ColSpan - 1})
		}
	}
	return out
}

// CellRef converts zero-based coordinates to an A1 reference.
func CellRef(row, col int) string {
	return fmt.Sprintf("%s%d", reference.IndexToColumn(uint32(col)), row+1)
}
