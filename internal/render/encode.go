package render

import (
	"fmt"
	"image/color"
	"io"
)

// Encode draws onto a fresh square canvas of the given format and writes
// the result to w.
func Encode(w io.Writer, format Format, size int, background color.Color, draw func(Drawer)) error {
	switch format {
	case FormatPNG:
		canvas := NewImageCanvas(size, size, background)
		defer canvas.Close()
		draw(canvas)
		return canvas.EncodePNG(w)
	case FormatSVG:
		canvas := NewSVGCanvas(size, size, background)
		draw(canvas)
		_, err := canvas.WriteTo(w)
		return err
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
