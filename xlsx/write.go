package xlsx

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/unidoc/unioffice"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"
)

// Font used when a cell does not declare one.
const (
	DefaultFontFamily = "Calibri"
	DefaultFontSizePt = 11.0
)

const borderColor = "FF000000"

// Workbook renders the sheet into a new unioffice workbook. Identical cell
// styles share a single style record.
func (s *Sheet) Workbook() *spreadsheet.Workbook {
	wb := spreadsheet.New()
	ws := wb.AddSheet()
	name := s.Name
	if name == "" {
		name = DefaultSheetName
	}
	ws.SetName(name)

	for i, w := range s.ColWidths {
		col := ws.Column(uint32(i + 1))
		col.X().WidthAttr = unioffice.Float64(w)
		col.X().CustomWidthAttr = unioffice.Bool(true)
	}

	styles := make(map[CellStyle]spreadsheet.CellStyle)
	for r, row := range s.Rows {
		xr := ws.Row(uint32(r + 1))
		if row.Height > 0 {
			xr.X().HtAttr = unioffice.Float64(row.Height)
			xr.X().CustomHeightAttr = unioffice.Bool(true)
		}
		for col, c := range row.Cells {
			if c == nil {
				continue
			}
			cell := xr.Cell(reference.IndexToColumn(uint32(col)))
			if !c.Covered {
				cell.SetString(c.Value)
			}
			if c.Style == (CellStyle{}) {
				continue
			}
			cs, ok := styles[c.Style]
			if !ok {
				cs = addCellStyle(wb, c.Style)
				styles[c.Style] = cs
			}
			cell.SetStyle(cs)
		}
	}

	for _, m := range s.Merges() {
		ws.AddMergedCells(CellRef(m.FromRow, m.FromCol), CellRef(m.ToRow, m.ToCol))
	}
	return wb
}

// Write serializes the sheet as an XLSX workbook to w.
func (s *Sheet) Write(w io.Writer) error {
	if err := s.Workbook().Save(w); err != nil {
		return fmt.Errorf("xlsx: save workbook: %w", err)
	}
	return nil
}

// WriteFile serializes the sheet to the named file. The file is only
// created once the workbook has been serialized, and removed again if
// writing it fails.
func (s *Sheet) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := s.Write(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		os.Remove(path)
		return fmt.Errorf("xlsx: write %s: %w", path, err)
	}
	return nil
}

func addCellStyle(wb *spreadsheet.Workbook, st CellStyle) spreadsheet.CellStyle {
	cs := wb.StyleSheet.AddCellStyle()

	font := wb.StyleSheet.AddFont()
	fx := font.X()
	family, size := st.FontFamily, st.FontSizePt
	if family == "" {
		family = DefaultFontFamily
	}
	if size <= 0 {
		size = DefaultFontSizePt
	}
	fx.Name = []*sml.CT_FontName{{ValAttr: family}}
	fx.Sz = []*sml.CT_FontSize{{ValAttr: size}}
	if st.Bold {
		fx.B = []*sml.CT_BooleanProperty{{ValAttr: unioffice.Bool(true)}}
	}
	if st.Italic {
		fx.I = []*sml.CT_BooleanProperty{{ValAttr: unioffice.Bool(true)}}
	}
	if st.Strike {
		fx.Strike = []*sml.CT_BooleanProperty{{ValAttr: unioffice.Bool(true)}}
	}
	if st.Underline {
		fx.U = []*sml.CT_UnderlineProperty{{ValAttr: sml.ST_UnderlineValuesSingle}}
	}
	if st.FontColor != "" {
		fx.Color = []*sml.CT_Color{{RgbAttr: unioffice.String(st.FontColor)}}
	}
	cs.SetFont(font)

	if st.BackgroundColor != "" {
		fill := wb.StyleSheet.Fills().AddFill()
		pf := fill.SetPatternFill().X()
		pf.PatternTypeAttr = sml.ST_PatternTypeSolid
		pf.FgColor = &sml.CT_Color{RgbAttr: unioffice.String(st.BackgroundColor)}
		pf.BgColor = &sml.CT_Color{RgbAttr: unioffice.String(st.BackgroundColor)}
		cs.SetFill(fill)
	}

	if st.Border {
		b := wb.StyleSheet.AddBorder()
		bx := b.X()
		bx.Left = thinEdge()
		bx.Right = thinEdge()
		bx.Top = thinEdge()
		bx.Bottom = thinEdge()
		cs.SetBorder(b)
	}

	if st.HorizontalAlign != "" {
		cs.SetHorizontalAlignment(horizontalAlignment(st.HorizontalAlign))
	}
	if st.VerticalAlign != "" {
		cs.SetVerticalAlignment(verticalAlignment(st.VerticalAlign))
	}
	if st.WrapText {
		cs.SetWrapped(true)
	}
	return cs
}

func thinEdge() *sml.CT_BorderPr {
	return &sml.CT_BorderPr{
		StyleAttr: sml.ST_BorderStyleThin,
		Color:     &sml.CT_Color{RgbAttr: unioffice.String(borderColor)},
	}
}

func horizontalAlignment(a string) sml.ST_HorizontalAlignment {
	switch a {
	case AlignLeft:
		return sml.ST_HorizontalAlignmentLeft
	case AlignCenter:
		return sml.ST_HorizontalAlignmentCenter
	case AlignRight:
		return sml.ST_HorizontalAlignmentRight
	case AlignJustify:
		return sml.ST_HorizontalAlignmentJustify
	}
	return sml.ST_HorizontalAlignmentGeneral
}

func verticalAlignment(a string) sml.ST_VerticalAlignment {
	switch a {
	case "top":
		return sml.ST_VerticalAlignmentTop
	case "center":
		return sml.ST_VerticalAlignmentCenter
	}
	return sml.ST_VerticalAlignmentBottom
}
