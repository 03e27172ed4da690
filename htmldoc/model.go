package htmldoc

import (
	"fmt"
	"strings"
)

// Intermediate representation for HTML input.
//
// The types only carry what the spreadsheet converter looks at: table
// structure, column widths from <colgroup>, raw inline styles and a few
// markup flags. Widths are in pixels.

// Markup records formatting elements found inside a cell.
type Markup struct {
	Bold      bool // <b>, <strong>
	Italic    bool // <i>, <em>
	Underline bool // <u>
	Strike    bool // <s>, <strike>, <del>
}

// Cell is a single <td> or <th>.
type Cell struct {
	Text     string
	ColSpan  int    // >= 1
	Style    string // raw style attribute of the cell
	RowStyle string // raw style attribute of the enclosing <tr>
	BgColor  string // raw bgcolor attribute
	Header   bool   // true for <th>
	Markup   Markup
}

// CombinedStyle returns the cell style followed by the row style. Parsing the
// result with ParseStyle gives cell declarations precedence.
func (c Cell) CombinedStyle() string {
	switch {
	case c.Style == "":
		return c.RowStyle
	case c.RowStyle == "":
		return c.Style
	}
	return strings.TrimRight(c.Style, "; ") + ";" + c.RowStyle
}

func (c Cell) String() string {
	return fmt.Sprintf("Text: %q, ColSpan: %d, Style: %q, RowStyle: %q, BgColor: %q, Header: %t", c.Text, c.ColSpan, c.Style, c.RowStyle, c.BgColor, c.Header)
}

// Row is a <tr>.
type Row struct {
	Style string
	Cells []Cell
}

// Table is a top-level <table>.
type Table struct {
	Layout []float64 // <col> widths in px, empty if none declared
	Rows   []Row
}

func (t Table) String() string {
	return fmt.Sprintf("Layout: %v, Rows: %d", t.Layout, len(t.Rows))
}

// Document is the parsed input.
type Document struct {
	Tables []Table
	Lines  []string // non-blank text lines of the whole document
}

func (d Document) String() string {
	return fmt.Sprintf("Tables: %d, Lines: %d", len(d.Tables), len(d.Lines))
}
