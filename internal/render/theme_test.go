package render

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"yellow", color.RGBA{0xFF, 0xFF, 0x00, 0xFF}},
		{"Black", color.RGBA{0x00, 0x00, 0x00, 0xFF}},
		{"#9000ff", color.RGBA{0x90, 0x00, 0xFF, 0xFF}},
		{" #fff ", color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "notacolour", "#12", "#zzzzzz"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.RGBA{0x90, 0x00, 0xFF, 0xFF}); got != "#9000ff" {
		t.Errorf("expected #9000ff, got %s", got)
	}
}
