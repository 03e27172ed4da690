package xlsx

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeAndRead(t *testing.T, s *Sheet) *Sheet {
	t.Helper()
	var buf bytes.Buffer
	if err := s.Write(&buf); err != nil {
		t.Fatalf("failed to write xlsx: %v", err)
	}
	got, err := ReadSheet(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("failed to read xlsx: %v", err)
	}
	return got
}

func TestWriteReadSheet(t *testing.T) {
	doc := mustParse(t, `<table>
<colgroup><col style="width:100px"><col style="width:100px"><col style="width:50px"></colgroup>
<tr><th colspan="2" style="text-align:center; font-family: Arial; font-size: 16px">Title</th><td bgcolor="navy" style="color:#fff">x</td></tr>
<tr><td style="font-style: italic; text-decoration: underline">i</td><td>plain</td><td><s>gone</s></td></tr>
</table>`)
	built := NewConverter(WithSheetName("Report")).Build(doc)
	got := writeAndRead(t, built)

	if got.Name != "Report" {
		t.Errorf("sheet name = %q", got.Name)
	}
	if len(got.ColWidths) != 3 {
		t.Fatalf("got %d column widths, want 3", len(got.ColWidths))
	}
	for i, w := range built.ColWidths {
		if math.Abs(got.ColWidths[i]-w) > 1e-6 {
			t.Errorf("column %d width = %v, want %v", i, got.ColWidths[i], w)
		}
	}
	for i := range built.Rows {
		if got.Rows[i].Height != built.Rows[i].Height {
			t.Errorf("row %d height = %v, want %v", i, got.Rows[i].Height, built.Rows[i].Height)
		}
	}

	if len(got.Merges()) != 1 || got.Merges()[0].Ref() != "A1:B1" {
		t.Errorf("merges = %v", got.Merges())
	}

	title := got.Cell(0, 0)
	if title == nil || title.Value != "Title" || title.ColSpan != 2 {
		t.Fatalf("title = %v", title)
	}
	if st := title.Style; !st.Bold || st.FontFamily != "Arial" || st.HorizontalAlign != AlignCenter || !st.Border || !st.WrapText {
		t.Errorf("title style = %s", st)
	}
	if math.Abs(title.Style.FontSizePt-16/1.33) > 1e-6 {
		t.Errorf("title size = %v", title.Style.FontSizePt)
	}
	if c := got.Cell(0, 1); c == nil || !c.Covered || !c.Style.Border {
		t.Errorf("covered cell = %v", c)
	}
	if st := got.Cell(0, 2).Style; st.BackgroundColor != "FF000080" || st.FontColor != "FFFFFFFF" {
		t.Errorf("filled cell style = %s", st)
	}
	if st := got.Cell(1, 0).Style; !st.Italic || !st.Underline || st.Bold {
		t.Errorf("italic cell style = %s", st)
	}
	if st := got.Cell(1, 2).Style; !st.Strike {
		t.Errorf("struck cell style = %s", st)
	}
	if c := got.Cell(1, 1); c.Value != "plain" || c.Style.HorizontalAlign != AlignGeneral || c.Style.VerticalAlign != "center" {
		t.Errorf("plain cell = %v", c)
	}
}

func TestWriteFallbackSheet(t *testing.T) {
	s := NewConverter().Build(mustParse(t, "<p>alpha</p><p>beta</p>"))
	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := s.WriteFile(path); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		t.Fatalf("failed to stat %s: %v", path, err)
	}
	got, err := ReadSheet(f, info.Size())
	if err != nil {
		t.Fatalf("failed to read xlsx: %v", err)
	}
	var values []string
	for r := range got.Rows {
		if c := got.Cell(r, 0); c != nil {
			values = append(values, c.Value)
		}
	}
	if len(values) != 3 || values[0] != FallbackHeader || values[1] != "alpha" || values[2] != "beta" {
		t.Errorf("values = %q", values)
	}
	if st := got.Cell(1, 0).Style; st != (CellStyle{}) {
		t.Errorf("body cell styled: %s", st)
	}
}

func TestWriteFileFailureLeavesNoFile(t *testing.T) {
	s := NewConverter().Build(mustParse(t, "<p>alpha</p>"))
	path := filepath.Join(t.TempDir(), "missing", "out.xlsx")
	if err := s.WriteFile(path); err == nil {
		t.Fatal("WriteFile into a missing directory succeeded")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("stat %s: %v, want not-exist", path, err)
	}
}
