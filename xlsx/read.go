package xlsx

import (
	"errors"
	"io"

	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"
)

// ErrNoSheet is returned by ReadSheet for a workbook without worksheets.
var ErrNoSheet = errors.New("xlsx: workbook has no sheets")

// ReadSheet reads the first worksheet of the XLSX in r back into a Sheet:
// custom column widths, row heights, values, merges and the styles this
// package writes.
func ReadSheet(r io.ReaderAt, size int64) (*Sheet, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return nil, err
	}
	sheets := wb.Sheets()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}
	sheet := sheets[0]
	s := &Sheet{Name: sheet.Name()}

	for _, cols := range sheet.X().Cols {
		for _, col := range cols.Col {
			if col.WidthAttr == nil || col.CustomWidthAttr == nil || !*col.CustomWidthAttr {
				continue
			}
			for idx := col.MinAttr; idx <= col.MaxAttr && idx > 0; idx++ {
				for int(idx) > len(s.ColWidths) {
					s.ColWidths = append(s.ColWidths, DefaultColumnWidth)
				}
				s.ColWidths[idx-1] = *col.WidthAttr
			}
		}
	}

	// Merge anchors keyed by row/col, everything else in a range is covered.
	spans := make(map[[2]int]int)
	covered := make(map[[2]int]bool)
	if sheet.X().MergeCells != nil {
		for _, mc := range sheet.X().MergeCells.MergeCell {
			from, to, err := reference.ParseRangeReference(mc.RefAttr)
			if err != nil {
				continue
			}
			fromRow, fromCol := int(from.RowIdx-1), int(from.ColumnIdx)
			toRow, toCol := int(to.RowIdx-1), int(to.ColumnIdx)
			spans[[2]int{fromRow, fromCol}] = toCol - fromCol + 1
			for r := fromRow; r <= toRow; r++ {
				for c := fromCol; c <= toCol; c++ {
					if r != fromRow || c != fromCol {
						covered[[2]int{r, c}] = true
					}
				}
			}
		}
	}

	for _, row := range sheet.Rows() {
		rowIdx := int(row.RowNumber()) - 1
		if rowIdx < 0 {
			continue
		}
		rr := s.ensureRow(rowIdx)
		if row.X().CustomHeightAttr != nil && *row.X().CustomHeightAttr && row.X().HtAttr != nil {
			rr.Height = *row.X().HtAttr
		}
		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				continue
			}
			colIdx := int(reference.ColumnToIndex(colName))
			key := [2]int{rowIdx, colIdx}
			rc := &Cell{
				Ref:     CellRef(rowIdx, colIdx),
				ColSpan: 1,
				Covered: covered[key],
			}
			if !rc.Covered {
				rc.Value = cell.GetString()
			}
			if span, ok := spans[key]; ok {
				rc.ColSpan = span
			}
			if cell.X().SAttr != nil {
				rc.Style = readCellStyle(wb.StyleSheet, *cell.X().SAttr)
			}
			rr.set(colIdx, rc)
		}
	}
	return s, nil
}

func readCellStyle(ss spreadsheet.StyleSheet, styleID uint32) CellStyle {
	var st CellStyle
	xf := cellXf(ss, styleID)
	if xf == nil {
		return st
	}
	if font := fontProps(ss, xf); font != nil {
		if len(font.Name) > 0 && font.Name[0].ValAttr != DefaultFontFamily {
			st.FontFamily = font.Name[0].ValAttr
		}
		if len(font.Sz) > 0 && font.Sz[0].ValAttr != DefaultFontSizePt {
			st.FontSizePt = font.Sz[0].ValAttr
		}
		if len(font.Color) > 0 && font.Color[0].RgbAttr != nil {
			st.FontColor = *font.Color[0].RgbAttr
		}
		st.Bold = isSet(font.B)
		st.Italic = isSet(font.I)
		st.Strike = isSet(font.Strike)
		st.Underline = len(font.U) > 0 && font.U[0].ValAttr != sml.ST_UnderlineValuesNone
	}
	if fill := fillProps(ss, xf); fill != nil && fill.PatternFill != nil && fill.PatternFill.FgColor != nil {
		if fg := fill.PatternFill.FgColor; fg.RgbAttr != nil {
			st.BackgroundColor = *fg.RgbAttr
		}
	}
	if border := borderProps(ss, xf); border != nil && border.Left != nil {
		st.Border = border.Left.StyleAttr == sml.ST_BorderStyleThin
	}
	if xf.Alignment != nil {
		if h := xf.Alignment.HorizontalAttr; h != sml.ST_HorizontalAlignmentUnset {
			st.HorizontalAlign = h.String()
		}
		if v := xf.Alignment.VerticalAttr; v != sml.ST_VerticalAlignmentUnset {
			st.VerticalAlign = v.String()
		}
		if xf.Alignment.WrapTextAttr != nil {
			st.WrapText = *xf.Alignment.WrapTextAttr
		}
	}
	return st
}

func isSet(p []*sml.CT_BooleanProperty) bool {
	return len(p) > 0 && (p[0].ValAttr == nil || *p[0].ValAttr)
}
