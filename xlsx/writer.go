package xlsx

// ensureRow grows the sheet so that row exists.
func (s *Sheet) ensureRow(row int) *Row {
	if row >= len(s.Rows) {
		s.Rows = append(s.Rows, make([]Row, row-len(s.Rows)+1)...)
	}
	return &s.Rows[row]
}

func (r *Row) set(col int, c *Cell) {
	if col >= len(r.Cells) {
		r.Cells = append(r.Cells, make([]*Cell, col-len(r.Cells)+1)...)
	}
	r.Cells[col] = c
}

// Stamp writes a placed cell. Value and style live on the anchor column; with
// a span above one the remaining columns become covered cells that only
// carry the border.
func (s *Sheet) Stamp(row int, p Placement, value string, st CellStyle) *Cell {
	r := s.ensureRow(row)
	st.Border = true
	anchor := &Cell{
		Ref:     CellRef(row, p.Start),
		Value:   value,
		ColSpan: p.Span,
		Style:   st,
	}
	r.set(p.Start, anchor)
	for c := p.Start + 1; c < p.Start+p.Span; c++ {
		r.set(c, &Cell{
			Ref:     CellRef(row, c),
			ColSpan: 1,
			Covered: true,
			Style:   CellStyle{Border: true},
		})
	}
	return anchor
}

// ColumnWidth returns the width of a column in column units.
func (s *Sheet) ColumnWidth(col int) float64 {
	if col >= 0 && col < len(s.ColWidths) {
		return s.ColWidths[col]
	}
	return DefaultColumnWidth
}
