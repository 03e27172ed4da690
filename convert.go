package convert

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/aerissecure/htmlxlsx/htmldoc"
	"github.com/aerissecure/htmlxlsx/xlsx"
)

// HTMLToXLSX converts the HTML document read from r into a one-sheet XLSX
// workbook written to w. Nothing is written to w unless the conversion
// succeeds. The returned sheet is the model that was serialized.
func HTMLToXLSX(r io.Reader, w io.Writer, opts ...xlsx.Option) (*xlsx.Sheet, error) {
	doc, err := htmldoc.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("convert: parse html: %w", err)
	}
	sheet := xlsx.NewConverter(opts...).Build(doc)

	var buf bytes.Buffer
	if err := sheet.Write(&buf); err != nil {
		return nil, err
	}
	if _, err := buf.WriteTo(w); err != nil {
		return nil, fmt.Errorf("convert: write output: %w", err)
	}
	return sheet, nil
}

// HTMLFileToXLSX converts the HTML file at in into the XLSX file at out.
func HTMLFileToXLSX(in, out string, opts ...xlsx.Option) (*xlsx.Sheet, error) {
	f, err := os.Open(in)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := htmldoc.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("convert: parse %s: %w", in, err)
	}
	sheet := xlsx.NewConverter(opts...).Build(doc)
	if err := sheet.WriteFile(out); err != nil {
		return nil, err
	}
	return sheet, nil
}
