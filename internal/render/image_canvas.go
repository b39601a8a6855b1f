package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/rook-computer/pascalviz/internal/render/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ImageCanvas is an offscreen RGBA drawing surface.
type ImageCanvas struct {
	img        *image.RGBA
	background color.Color
	faces      faceCache
}

func NewImageCanvas(width, height int, background color.Color) *ImageCanvas {
	return &ImageCanvas{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: background,
	}
}

// Image exposes the backing image.
func (c *ImageCanvas) Image() *image.RGBA { return c.img }

func (c *ImageCanvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *ImageCanvas) FillBackground() {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: c.background}, image.Point{}, draw.Src)
}

func (c *ImageCanvas) DrawGrid(step float64, col color.Color) {
	if step < 1 {
		return
	}
	w, h := c.Size()
	src := &image.Uniform{C: col}
	for v := 0.0; v < float64(w); v += step {
		x := int(v)
		draw.Draw(c.img, image.Rect(x, 0, x+1, h), src, image.Point{}, draw.Src)
	}
	for v := 0.0; v < float64(h); v += step {
		y := int(v)
		draw.Draw(c.img, image.Rect(0, y, w, y+1), src, image.Point{}, draw.Src)
	}
}

func (c *ImageCanvas) DrawLabel(text string, cx, cy float64, style TextStyle) {
	face := c.faces.face(style.Size)
	fg := style.Color
	if fg == nil {
		fg = color.Black
	}
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  &image.Uniform{C: fg},
		Face: face,
	}
	metrics := face.Metrics()
	width := drawer.MeasureString(text)
	x := fixed.Int26_6(cx*64) - width/2
	y := fixed.Int26_6(cy*64) + (metrics.Ascent-metrics.Descent)/2
	drawer.Dot = fixed.Point26_6{X: x, Y: y}
	drawer.DrawString(text)
}

func (c *ImageCanvas) FillRect(x0, y0, x1, y1 float64, fill, outline color.Color) {
	rect := layout.PixelRect(x0, y0, x1, y1)
	if rect.Empty() {
		return
	}
	draw.Draw(c.img, rect, &image.Uniform{C: fill}, image.Point{}, draw.Src)
	if outline == nil || outline == fill {
		return
	}
	src := &image.Uniform{C: outline}
	edges := []image.Rectangle{
		image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+1),
		image.Rect(rect.Min.X, rect.Max.Y-1, rect.Max.X, rect.Max.Y),
		image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+1, rect.Max.Y),
		image.Rect(rect.Max.X-1, rect.Min.Y, rect.Max.X, rect.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(c.img, e.Intersect(rect), src, image.Point{}, draw.Src)
	}
}

// EncodePNG writes the canvas as PNG.
func (c *ImageCanvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// Close releases cached font faces.
func (c *ImageCanvas) Close() error {
	c.faces.Close()
	return nil
}
