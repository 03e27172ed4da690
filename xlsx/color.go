package xlsx

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// ResolveColor converts an HTML color token ("#fff", "#AABBCC", "red") into
// an opaque ARGB code such as "FFFF0000". Tokens without a leading '#' are
// looked up in the CSS color name table.
func ResolveColor(token string) (string, error) {
	tok := strings.ToLower(strings.TrimSpace(token))
	if tok == "" {
		return "", fmt.Errorf("%w: empty", ErrUnparseableColor)
	}

	var hex string
	if strings.HasPrefix(tok, "#") {
		hex = tok[1:]
	} else {
		c, ok := colornames.Map[tok]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnparseableColor, token)
		}
		hex = fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	}

	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 || !isHex(hex) {
		return "", fmt.Errorf("%w: %q", ErrUnparseableColor, token)
	}
	return "FF" + strings.ToUpper(hex), nil
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f':
		default:
			return false
		}
	}
	return true
}
