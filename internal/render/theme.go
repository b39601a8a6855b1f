package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Theme holds the colours of one drawing.
type Theme struct {
	Background color.RGBA
	Foreground color.RGBA
	Grid       color.RGBA
}

var (
	// NumericTheme is black text on white with a black grid.
	NumericTheme = Theme{Background: colornames.White, Foreground: colornames.Black, Grid: colornames.Black}
	// ModuloTheme paints non-divisible cells yellow on black.
	ModuloTheme = Theme{Background: colornames.Black, Foreground: colornames.Yellow, Grid: colornames.Black}
)

// ParseColor accepts "#rgb", "#rrggbb" or an SVG/X11 colour name such as
// "yellow" or "darkslategray".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, fmt.Errorf("empty colour")
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown colour %q", s)
}

// Hex formats c as #rrggbb.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
