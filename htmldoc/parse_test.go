package htmldoc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTables(t *testing.T) {
	src := `<html><body>
<table>
  <colgroup><col style="width: 100px"><col style="width:50px"><col width="25"></colgroup>
  <tr style="color: red"><th colspan="2">Head</th><td>x</td></tr>
  <tr><td style="font-weight: bold" bgcolor="#fff">A <b>bold</b></td><td colspan="zz">B</td><td colspan="0">C</td></tr>
</table>
<p>between</p>
<table><tr><td>only</td></tr></table>
</body></html>`

	doc, err := ParseString(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Tables) != 2 {
		t.Fatalf("got %d tables, want 2", len(doc.Tables))
	}

	first := doc.Tables[0]
	if diff := cmp.Diff([]float64{100, 50, 25}, first.Layout); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
	if len(first.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(first.Rows))
	}

	head := first.Rows[0].Cells[0]
	if !head.Header || head.ColSpan != 2 || head.Text != "Head" || head.RowStyle != "color: red" {
		t.Errorf("unexpected header cell: %s", head)
	}

	a := first.Rows[1].Cells[0]
	if a.Text != "Abold" {
		t.Errorf("text = %q, want %q", a.Text, "Abold")
	}
	if !a.Markup.Bold || a.Markup.Italic {
		t.Errorf("markup = %+v, want bold only", a.Markup)
	}
	if a.BgColor != "#fff" {
		t.Errorf("bgcolor = %q", a.BgColor)
	}
	for i, c := range first.Rows[1].Cells[1:] {
		if c.ColSpan != 1 {
			t.Errorf("cell %d colspan = %d, want 1", i+1, c.ColSpan)
		}
	}

	if len(doc.Tables[1].Layout) != 0 {
		t.Errorf("second table layout = %v, want none", doc.Tables[1].Layout)
	}
}

func TestParseNestedTables(t *testing.T) {
	src := `<table><colgroup><col style="width:80px"></colgroup>
<tr><td>outer<table><tr><td>inner</td></tr></table></td></tr></table>`

	doc, err := ParseString(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(doc.Tables))
	}
	rows := doc.Tables[0].Rows
	if len(rows) != 1 || len(rows[0].Cells) != 1 {
		t.Fatalf("unexpected shape: %v", rows)
	}
	if got := rows[0].Cells[0].Text; got != "outerinner" {
		t.Errorf("text = %q, want %q", got, "outerinner")
	}
}

func TestParseColSpanAttribute(t *testing.T) {
	src := `<table><colgroup><col span="3" style="width:40px"><col style="width: 10%"></colgroup><tr><td>x</td></tr></table>`
	doc, err := ParseString(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff([]float64{40, 40, 40}, doc.Tables[0].Layout); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestCellTextLineBreaks(t *testing.T) {
	doc, err := ParseString(`<table><tr><td> one <br> two <br/>three </td></tr></table>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := doc.Tables[0].Rows[0].Cells[0].Text; got != "one\ntwo\nthree" {
		t.Errorf("text = %q", got)
	}
}

func TestTextLines(t *testing.T) {
	src := `<html><head><title>T</title><style>p { color: red }</style></head>
<body><h1>First</h1>

<p>Second
   line</p><script>var x = 1;</script><div>   </div></body></html>`
	doc, err := ParseString(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []string{"T", "First", "Second", "line"}
	if diff := cmp.Diff(want, doc.Lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePixels(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"120px", 120, false},
		{" 12.5PX ", 12.5, false},
		{"80", 80, false},
		{"10%", 0, true},
		{"2em", 0, true},
		{"", 0, true},
		{"-4px", 0, true},
	}
	for _, tt := range tests {
		got, err := ParsePixels(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrMalformedNumericStyle) {
				t.Errorf("ParsePixels(%q) err = %v, want ErrMalformedNumericStyle", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParsePixels(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestParseUnterminatedInlineStyles(t *testing.T) {
	doc, err := ParseString(`<table>
<colgroup><col style="width:100px"><col style="width:40px;"></colgroup>
<tr style="text-align:right"><td style="color:red">a</td><td>b</td></tr>
</table>`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(doc.Tables))
	}
	tbl := doc.Tables[0]
	if diff := cmp.Diff([]float64{100, 40}, tbl.Layout); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
	st := ParseStyle(tbl.Rows[0].Cells[0].CombinedStyle())
	if got, _ := st.Get("color"); got != "red" {
		t.Errorf("color = %q, want red", got)
	}
	if got, _ := st.Get("text-align"); got != "right" {
		t.Errorf("text-align = %q, want right", got)
	}
}
