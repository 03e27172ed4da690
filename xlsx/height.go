package xlsx

import (
	"math"
	"strings"
	"unicode/utf8"
)

const (
	// PointsPerLine is the row height given to each estimated text line.
	PointsPerLine = 15.0
	// charWidthFactor is the column units one character takes.
	charWidthFactor = 1.1
)

// ComputeRowHeights sets every row's height from the estimated number of
// wrapped lines of its widest-demand cell. Empty rows get one line.
func (s *Sheet) ComputeRowHeights() {
	for i := range s.Rows {
		lines := 1
		for col, c := range s.Rows[i].Cells {
			if c == nil || c.Value == "" {
				continue
			}
			width := 0.0
			for k := 0; k < max(c.ColSpan, 1); k++ {
				width += s.ColumnWidth(col + k)
			}
			lines = max(lines, LineCount(c.Value, width))
		}
		s.Rows[i].Height = float64(lines) * PointsPerLine
	}
}

// LineCount estimates how many lines text needs in a cell width columns wide.
func LineCount(text string, width float64) int {
	lines := strings.Count(text, "\n") + 1
	if width > 0 {
		wrapped := int(math.Ceil(float64(utf8.RuneCountInString(text)) / (width / charWidthFactor)))
		lines = max(lines, wrapped)
	}
	return lines
}
