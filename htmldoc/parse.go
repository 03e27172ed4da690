package htmldoc

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	tableMatcher       = cascadia.MustCompile("table")
	nestedTableMatcher = cascadia.MustCompile("table table")
	sectionMatcher     = cascadia.MustCompile("thead, tbody, tfoot")
	rowMatcher         = cascadia.MustCompile("tr")
	cellMatcher        = cascadia.MustCompile("td, th")
	colgroupMatcher    = cascadia.MustCompile("colgroup")
	colMatcher         = cascadia.MustCompile("col")

	boldMatcher      = cascadia.MustCompile("b, strong")
	italicMatcher    = cascadia.MustCompile("i, em")
	underlineMatcher = cascadia.MustCompile("u")
	strikeMatcher    = cascadia.MustCompile("s, strike, del")
)

// Parse reads an HTML document from r and builds a Document. Only top-level
// tables are collected; text of nested tables ends up in the enclosing cell.
func Parse(r io.Reader) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Document{}, err
	}

	var d Document
	doc.FindMatcher(tableMatcher).NotMatcher(nestedTableMatcher).Each(func(_ int, sel *goquery.Selection) {
		d.Tables = append(d.Tables, parseTable(sel))
	})
	for _, n := range doc.Nodes {
		d.Lines = append(d.Lines, TextLines(n)...)
	}
	return d, nil
}

// ParseString is Parse for an in-memory document.
func ParseString(s string) (Document, error) {
	return Parse(strings.NewReader(s))
}

func parseTable(tbl *goquery.Selection) Table {
	t := Table{Layout: parseLayout(tbl)}
	tbl.Children().Each(func(_ int, child *goquery.Selection) {
		n := child.Get(0)
		switch {
		case rowMatcher.Match(n):
			t.Rows = append(t.Rows, parseRow(child))
		case sectionMatcher.Match(n):
			child.ChildrenMatcher(rowMatcher).Each(func(_ int, tr *goquery.Selection) {
				t.Rows = append(t.Rows, parseRow(tr))
			})
		}
	})
	return t
}

// parseLayout collects <col> widths. The HTML parser always wraps <col> in a
// <colgroup>, bare <col> children are accepted anyway.
func parseLayout(tbl *goquery.Selection) []float64 {
	var layout []float64
	cols := tbl.ChildrenMatcher(colgroupMatcher).ChildrenMatcher(colMatcher).
		AddSelection(tbl.ChildrenMatcher(colMatcher))
	cols.Each(func(_ int, col *goquery.Selection) {
		px, ok := colWidth(col)
		if !ok {
			return
		}
		span, _ := ParseSpan(col.AttrOr("span", ""))
		for i := 0; i < span; i++ {
			layout = append(layout, px)
		}
	})
	return layout
}

func colWidth(col *goquery.Selection) (float64, bool) {
	if w, ok := ParseStyle(col.AttrOr("style", "")).Get("width"); ok {
		if px, err := ParsePixels(w); err == nil {
			return px, true
		}
	}
	if w, ok := col.Attr("width"); ok {
		if px, err := ParsePixels(w); err == nil {
			return px, true
		}
	}
	return 0, false
}

func parseRow(tr *goquery.Selection) Row {
	row := Row{Style: tr.AttrOr("style", "")}
	tr.ChildrenMatcher(cellMatcher).Each(func(_ int, td *goquery.Selection) {
		n := td.Get(0)
		span, _ := ParseSpan(td.AttrOr("colspan", ""))
		row.Cells = append(row.Cells, Cell{
			Text:     cellText(n),
			ColSpan:  span,
			Style:    td.AttrOr("style", ""),
			RowStyle: row.Style,
			BgColor:  strings.TrimSpace(td.AttrOr("bgcolor", "")),
			Header:   n.DataAtom == atom.Th,
			Markup:   cellMarkup(n),
		})
	})
	return row
}

// cellText concatenates the trimmed text segments below n. <br> becomes a
// newline.
func cellText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(strings.TrimSpace(n.Data))
			return
		case html.ElementNode:
			if n.DataAtom == atom.Br {
				b.WriteByte('\n')
				return
			}
			if skipText(n) {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return strings.Trim(b.String(), "\n")
}

func cellMarkup(n *html.Node) Markup {
	var m Markup
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			m.Bold = m.Bold || boldMatcher.Match(c)
			m.Italic = m.Italic || italicMatcher.Match(c)
			m.Underline = m.Underline || underlineMatcher.Match(c)
			m.Strike = m.Strike || strikeMatcher.Match(c)
			walk(c)
		}
	}
	walk(n)
	return m
}

// TextLines returns the non-blank, trimmed text lines below n in document
// order. Script and style contents are ignored.
func TextLines(n *html.Node) []string {
	var lines []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			for _, l := range strings.Split(n.Data, "\n") {
				if l = strings.TrimSpace(l); l != "" {
					lines = append(lines, l)
				}
			}
			return
		}
		if n.Type == html.ElementNode && skipText(n) {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return lines
}

func skipText(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Noscript, atom.Template:
		return true
	}
	return false
}
