package htmldoc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// Style is the parsed form of an inline style attribute. Keys are lower case
// property names.
type Style map[string]string

// Get returns the value of prop and whether it was declared.
func (s Style) Get(prop string) (string, bool) {
	v, ok := s[prop]
	return v, ok
}

// ParseStyle parses a style attribute into a Style. When a property is
// declared more than once the first declaration wins. Declarations that cannot
// be parsed are skipped.
func ParseStyle(text string) Style {
	st := make(Style)
	text = strings.TrimSpace(text)
	if text == "" {
		return st
	}
	// The declaration parser drops a final declaration that is not
	// terminated by a semicolon.
	if !strings.HasSuffix(text, ";") {
		text += ";"
	}
	if decls, err := parser.ParseDeclarations(text); err == nil {
		for _, d := range decls {
			if d == nil {
				continue
			}
			st.add(d.Property, d.Value)
		}
		return st
	}
	// The declaration parser gives up on the whole attribute at the first bad
	// token; retry one declaration at a time.
	for _, part := range strings.Split(text, ";") {
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			continue
		}
		value := strings.TrimSpace(kv[1])
		if strings.HasSuffix(strings.ToLower(value), "!important") {
			value = strings.TrimSpace(value[:len(value)-len("!important")])
		}
		st.add(kv[0], value)
	}
	return st
}

func (s Style) add(prop, value string) {
	prop = strings.ToLower(strings.TrimSpace(prop))
	value = strings.TrimSpace(value)
	if prop == "" || value == "" {
		return
	}
	if _, exists := s[prop]; exists {
		return
	}
	s[prop] = value
}

// ParsePixels parses a length such as "120px", "120" or "12.5px" and returns
// the value in pixels. Other units are rejected.
func ParsePixels(v string) (float64, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	v = strings.TrimSpace(strings.TrimSuffix(v, "px"))
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumericStyle, v)
	}
	return f, nil
}

// ParseSpan parses a colspan/span attribute. Missing, malformed or
// non-positive values yield 1.
func ParseSpan(v string) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 1, fmt.Errorf("%w: span %q", ErrMalformedNumericStyle, v)
	}
	if n < 1 {
		return 1, nil
	}
	return n, nil
}
