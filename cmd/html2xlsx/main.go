package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/speedata/optionparser"
	"go.uber.org/zap"

	convert "github.com/aerissecure/htmlxlsx"
	"github.com/aerissecure/htmlxlsx/xlsx"
)

type options struct {
	output    string
	sheetName string
	verbose   bool
	dump      bool
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// outputName picks the output path when none is given: the input name with
// an .xlsx extension, or a unique name for stdin.
func outputName(input string) string {
	if input == "-" {
		return fmt.Sprintf("converted_%s.xlsx", strings.ReplaceAll(uuid.New().String(), "-", ""))
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".xlsx"
}

func dothings() error {
	var opts options
	op := optionparser.NewOptionParser()
	op.Banner = "html2xlsx - convert HTML tables into a spreadsheet\n\nUsage: html2xlsx [options] <input.html|->"
	op.On("-o", "--output FILE", "Write the workbook to FILE", &opts.output)
	op.On("--sheet NAME", "Name of the worksheet (default Sheet1)", &opts.sheetName)
	op.On("-v", "--verbose", "Log debug information", &opts.verbose)
	op.On("--dump", "Print the written sheet", &opts.dump)
	if err := op.Parse(); err != nil {
		return err
	}
	if len(op.Extra) != 1 {
		op.Help()
		return nil
	}
	input := op.Extra[0]
	if opts.output == "" {
		opts.output = outputName(input)
	}

	logger, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var r io.Reader = os.Stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	var buf bytes.Buffer
	sheet, err := convert.HTMLToXLSX(r, &buf,
		xlsx.WithLogger(logger.Named("xlsx")),
		xlsx.WithSheetName(opts.sheetName),
	)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil {
		return err
	}
	logger.Info("workbook written",
		zap.String("input", input),
		zap.String("output", opts.output),
		zap.Int("rows", len(sheet.Rows)),
		zap.Int("columns", len(sheet.ColWidths)),
		zap.Stringer("fallback", sheet.Fallback),
	)

	if opts.dump {
		written, err := xlsx.ReadSheet(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
		if err != nil {
			return err
		}
		dumpSheet(os.Stdout, written)
	}
	return nil
}

func dumpSheet(w io.Writer, s *xlsx.Sheet) {
	fmt.Fprintln(w, s)
	for _, m := range s.Merges() {
		fmt.Fprintf(w, "merge %s\n", m.Ref())
	}
	for i, row := range s.Rows {
		fmt.Fprintf(w, "row %d: %s\n", i+1, row)
		for _, c := range row.Cells {
			if c != nil && !c.Covered {
				fmt.Fprintf(w, "  %s\n", c)
			}
		}
	}
}

func main() {
	if err := dothings(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}
