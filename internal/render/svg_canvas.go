package render

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/rook-computer/pascalviz/internal/render/layout"
)

// SVGCanvas records drawing primitives into an SVG document.
type SVGCanvas struct {
	buf        bytes.Buffer
	doc        *svg.SVG
	width      int
	height     int
	background color.Color
	ended      bool
}

func NewSVGCanvas(width, height int, background color.Color) *SVGCanvas {
	c := &SVGCanvas{width: width, height: height, background: background}
	c.doc = svg.New(&c.buf)
	c.doc.Start(width, height)
	return c
}

func (c *SVGCanvas) Size() (int, int) { return c.width, c.height }

func (c *SVGCanvas) FillBackground() {
	c.doc.Rect(0, 0, c.width, c.height, "fill:"+Hex(c.background))
}

func (c *SVGCanvas) DrawGrid(step float64, col color.Color) {
	if step < 1 {
		return
	}
	style := "stroke-width:1;stroke:" + Hex(col)
	c.doc.Group(style)
	for v := 0.0; v < float64(c.width); v += step {
		c.doc.Line(int(v), 0, int(v), c.height)
	}
	for v := 0.0; v < float64(c.height); v += step {
		c.doc.Line(0, int(v), c.width, int(v))
	}
	c.doc.Gend()
}

func (c *SVGCanvas) DrawLabel(text string, cx, cy float64, style TextStyle) {
	fg := style.Color
	if fg == nil {
		fg = color.Black
	}
	size := style.Size
	if size <= 0 {
		size = 12
	}
	c.doc.Text(round(cx), round(cy), text, fmt.Sprintf(
		"fill:%s;font-family:sans-serif;font-size:%.0fpx;text-anchor:middle;dominant-baseline:central",
		Hex(fg), size))
}

func (c *SVGCanvas) FillRect(x0, y0, x1, y1 float64, fill, outline color.Color) {
	rect := layout.PixelRect(x0, y0, x1, y1)
	if rect.Empty() {
		return
	}
	if outline == nil {
		outline = fill
	}
	c.doc.Rect(rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy(),
		"fill:"+Hex(fill)+";stroke:"+Hex(outline))
}

// WriteTo closes the document on first use and copies it to w.
func (c *SVGCanvas) WriteTo(w io.Writer) (int64, error) {
	if !c.ended {
		c.doc.End()
		c.ended = true
	}
	return bytes.NewReader(c.buf.Bytes()).WriteTo(w)
}

func round(v float64) int { return int(math.Round(v)) }
