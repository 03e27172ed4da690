package xlsx

import (
	"errors"
	"testing"
)

func TestResolveColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#fff", "FFFFFFFF"},
		{"red", "FFFF0000"},
		{"#aabbcc", "FFAABBCC"},
		{"#AABBCC", "FFAABBCC"},
		{"  Navy ", "FF000080"},
		{"lightgoldenrodyellow", "FFFAFAD2"},
		{"#000", "FF000000"},
	}
	for _, tt := range tests {
		got, err := ResolveColor(tt.in)
		if err != nil {
			t.Errorf("ResolveColor(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolveColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveColorUnparseable(t *testing.T) {
	for _, in := range []string{"notacolor", "", "#ff", "#ggg", "#1234567", "aabbcc", "rgb(1,2,3)"} {
		got, err := ResolveColor(in)
		if !errors.Is(err, ErrUnparseableColor) {
			t.Errorf("ResolveColor(%q) = %q, %v; want ErrUnparseableColor", in, got, err)
		}
		if got != "" {
			t.Errorf("ResolveColor(%q) returned code %q on error", in, got)
		}
	}
}
