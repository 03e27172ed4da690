package xlsx

import (
	"errors"

	"github.com/aerissecure/htmlxlsx/htmldoc"
	"go.uber.org/zap"
)

// DefaultSheetName names the output worksheet unless WithSheetName is used.
const DefaultSheetName = "Sheet1"

// FallbackHeader is the header of the single-column fallback sheet.
const FallbackHeader = "Content"

// Converter turns parsed HTML into a Sheet. It holds no per-conversion state
// and can be shared.
type Converter struct {
	log       *zap.Logger
	sheetName string
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.log = l
		}
	}
}

// WithSheetName sets the worksheet name.
func WithSheetName(name string) Option {
	return func(c *Converter) {
		if name != "" {
			c.sheetName = name
		}
	}
}

// NewConverter returns a Converter configured by opts.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{log: zap.NewNop(), sheetName: DefaultSheetName}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Build converts doc into a Sheet in two passes: cells are placed and styled
// table by table, then row heights are computed over the finished grid.
// Documents without tables or without any column layout become a
// single-column text sheet; Sheet.Fallback records which case applied.
func (c *Converter) Build(doc htmldoc.Document) *Sheet {
	if len(doc.Tables) == 0 {
		c.log.Info("no tables found, writing text lines", zap.Int("lines", len(doc.Lines)))
		return c.textSheet(doc.Lines, FallbackNoTables)
	}

	master, err := ResolveMasterLayout(doc.Tables)
	if errors.Is(err, ErrLayoutUnavailable) {
		c.log.Warn("could not determine a master layout from <colgroup>, writing text lines",
			zap.Int("tables", len(doc.Tables)), zap.Int("lines", len(doc.Lines)))
		return c.textSheet(doc.Lines, FallbackNoLayout)
	}
	c.log.Debug("master layout resolved", zap.Float64s("px", master))

	s := &Sheet{Name: c.sheetName, ColWidths: make([]float64, len(master))}
	for i, px := range master {
		s.ColWidths[i] = PixelsToWidth(px)
	}

	row := 0
	for ti, t := range doc.Tables {
		for _, r := range t.Rows {
			s.ensureRow(row)
			cursor := 0
			// Local widths are indexed by the cell's position in the row,
			// not by the source columns preceding spans cover.
			for ci, cell := range r.Cells {
				p := Place(master, t.Layout, ci, cell.ColSpan, cursor)
				s.Stamp(row, p, cell.Text, ExtractStyle(cell, c.log))
				cursor += p.Span
			}
			row++
		}
		c.log.Debug("table placed", zap.Int("table", ti), zap.Int("rows", len(t.Rows)), zap.Int("next_row", row+1))
		// Blank separator row between tables.
		row++
	}

	s.ComputeRowHeights()
	return s
}

// textSheet lays out lines under a "Content" header, one per row.
func (c *Converter) textSheet(lines []string, reason Fallback) *Sheet {
	s := &Sheet{Name: c.sheetName, Fallback: reason}
	header := CellStyle{
		Bold:            true,
		HorizontalAlign: AlignCenter,
		VerticalAlign:   "top",
		Border:          true,
	}
	s.Stamp(0, Placement{Start: 0, Span: 1}, FallbackHeader, header)
	for i, l := range lines {
		r := s.ensureRow(i + 1)
		r.set(0, &Cell{Ref: CellRef(i+1, 0), Value: l, ColSpan: 1})
	}
	return s
}
