package xlsx

import "errors"

var (
	// ErrLayoutUnavailable is returned when no table declares column widths.
	// The converter falls back to a plain text sheet.
	ErrLayoutUnavailable = errors.New("xlsx: no table declares a column layout")
	// ErrUnparseableColor is returned for color tokens that are neither hex
	// nor a known color name.
	ErrUnparseableColor = errors.New("xlsx: unparseable color")
)
