package xlsx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aerissecure/htmlxlsx/htmldoc"
	"go.uber.org/zap"
)

// PixelsPerPoint converts CSS pixel font sizes to points.
const PixelsPerPoint = 1.33

// ExtractStyle resolves the presentation attributes of a source cell. The
// style attribute is parsed once; cell declarations win over row
// declarations. Attributes that cannot be parsed are left unset.
func ExtractStyle(cell htmldoc.Cell, log *zap.Logger) CellStyle {
	if log == nil {
		log = zap.NewNop()
	}
	decl := htmldoc.ParseStyle(cell.CombinedStyle())

	st := CellStyle{
		HorizontalAlign: AlignGeneral,
		VerticalAlign:   "center",
		WrapText:        true,
		Border:          true,
	}

	// An explicit bgcolor attribute beats the inline property.
	bg := cell.BgColor
	if bg == "" {
		bg, _ = decl.Get("background-color")
	}
	if bg != "" {
		if c, err := ResolveColor(bg); err == nil {
			st.BackgroundColor = c
		} else {
			log.Debug("background color dropped", zap.Error(err))
		}
	}
	if fg, ok := decl.Get("color"); ok {
		if c, err := ResolveColor(fg); err == nil {
			st.FontColor = c
		} else {
			log.Debug("font color dropped", zap.Error(err))
		}
	}

	if v, ok := decl.Get("text-align"); ok {
		switch a := strings.ToLower(v); a {
		case AlignCenter, AlignLeft, AlignRight, AlignJustify:
			st.HorizontalAlign = a
		}
	}

	st.Bold = cell.Header || cell.Markup.Bold || isBold(decl["font-weight"])
	if v, ok := decl.Get("font-style"); ok {
		v = strings.ToLower(v)
		st.Italic = v == "italic" || v == "oblique"
	}
	st.Italic = st.Italic || cell.Markup.Italic

	deco := strings.ToLower(decl["text-decoration"] + " " + decl["text-decoration-line"])
	st.Underline = strings.Contains(deco, "underline") || cell.Markup.Underline
	st.Strike = strings.Contains(deco, "line-through") || cell.Markup.Strike

	if v, ok := decl.Get("font-family"); ok {
		family := strings.SplitN(v, ",", 2)[0]
		st.FontFamily = strings.Trim(strings.TrimSpace(family), `'"`)
	}
	if v, ok := decl.Get("font-size"); ok {
		if pt, err := fontSizePt(v); err == nil {
			st.FontSizePt = pt
		} else {
			log.Debug("font size dropped", zap.Error(err))
		}
	}
	return st
}

func isBold(weight string) bool {
	switch w := strings.ToLower(strings.TrimSpace(weight)); w {
	case "bold", "bolder":
		return true
	case "":
		return false
	default:
		n, err := strconv.Atoi(w)
		return err == nil && n >= 700
	}
}

// fontSizePt converts "16px" to points. Values already in points are kept.
func fontSizePt(v string) (float64, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if strings.HasSuffix(v, "pt") {
		return htmldoc.ParsePixels(strings.TrimSuffix(v, "pt"))
	}
	if !strings.HasSuffix(v, "px") {
		return 0, fmt.Errorf("%w: font-size %q", htmldoc.ErrMalformedNumericStyle, v)
	}
	px, err := htmldoc.ParsePixels(v)
	if err != nil {
		return 0, err
	}
	return px / PixelsPerPoint, nil
}
