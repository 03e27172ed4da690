package xlsx

import "github.com/aerissecure/htmlxlsx/htmldoc"

const (
	// PixelsPerWidthUnit converts pixels to spreadsheet column units. The
	// ratio is empirical; existing output depends on it.
	PixelsPerWidthUnit = 8.43
	// DefaultColumnWidth is assumed for columns outside the master grid.
	DefaultColumnWidth = 13.0
	// coverageRatio is the share of a cell's own width its master columns
	// must reach before placement stops.
	coverageRatio = 0.9
)

// ResolveMasterLayout picks the column layout used for the whole sheet: the
// layout of the table with the most columns. A later table only wins with
// strictly more columns.
func ResolveMasterLayout(tables []htmldoc.Table) ([]float64, error) {
	var best []float64
	for _, t := range tables {
		if len(t.Layout) > len(best) {
			best = t.Layout
		}
	}
	if len(best) == 0 {
		return nil, ErrLayoutUnavailable
	}
	out := make([]float64, len(best))
	copy(out, best)
	return out, nil
}

// PixelsToWidth converts a pixel width to spreadsheet column units.
func PixelsToWidth(px float64) float64 {
	return px / PixelsPerWidthUnit
}

// Placement locates a cell on the master grid.
type Placement struct {
	Start int // zero-based master column
	Span  int // >= 1
}

// Place maps a source cell onto the master grid. localIdx is the cell's
// position in its row, colspan its declared span and cursor the next free
// master column of the row.
//
// The cell's own pixel width is the sum of its local columns. Master columns
// are taken from cursor on until they cover 90% of that width or the grid
// runs out. Without a usable local width the cell takes one column.
func Place(master, local []float64, localIdx, colspan, cursor int) Placement {
	var target float64
	if localIdx >= 0 && localIdx < len(local) {
		for i := 0; i < colspan; i++ {
			if localIdx+i < len(local) {
				target += local[localIdx+i]
			}
		}
	}

	span := 0
	if target > 0 && cursor >= 0 {
		var covered float64
		for covered < target*coverageRatio && cursor+span < len(master) {
			covered += master[cursor+span]
			span++
		}
	}
	if span < 1 {
		span = 1
	}
	return Placement{Start: cursor, Span: span}
}
