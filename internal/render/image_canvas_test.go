package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

var (
	black  = color.RGBA{0, 0, 0, 0xFF}
	yellow = color.RGBA{0xFF, 0xFF, 0, 0xFF}
	white  = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
)

func TestImageCanvasFillRect(t *testing.T) {
	c := NewImageCanvas(40, 40, black)
	defer c.Close()
	c.FillBackground()

	// corners given top-right then bottom-left
	c.FillRect(20, 0, 10, 10, yellow, yellow)

	img := c.Image()
	if got := img.RGBAAt(15, 5); got != yellow {
		t.Errorf("inside cell: expected yellow, got %v", got)
	}
	if got := img.RGBAAt(25, 5); got != black {
		t.Errorf("outside cell: expected black, got %v", got)
	}
	if got := img.RGBAAt(15, 10); got != black {
		t.Errorf("max edge is exclusive: expected black, got %v", got)
	}
}

func TestImageCanvasOutline(t *testing.T) {
	c := NewImageCanvas(20, 20, black)
	defer c.Close()
	c.FillBackground()
	c.FillRect(0, 0, 10, 10, yellow, white)

	img := c.Image()
	if got := img.RGBAAt(0, 0); got != white {
		t.Errorf("corner: expected outline, got %v", got)
	}
	if got := img.RGBAAt(5, 5); got != yellow {
		t.Errorf("centre: expected fill, got %v", got)
	}
}

func TestImageCanvasGrid(t *testing.T) {
	c := NewImageCanvas(30, 30, white)
	defer c.Close()
	c.FillBackground()
	c.DrawGrid(10, black)

	img := c.Image()
	for _, p := range []image.Point{{0, 5}, {10, 5}, {20, 17}, {5, 10}} {
		if got := img.RGBAAt(p.X, p.Y); got != black {
			t.Errorf("%v: expected grid line, got %v", p, got)
		}
	}
	if got := img.RGBAAt(5, 5); got != white {
		t.Errorf("cell interior: expected background, got %v", got)
	}
}

func TestImageCanvasLabel(t *testing.T) {
	c := NewImageCanvas(60, 60, white)
	defer c.Close()
	c.FillBackground()
	c.DrawLabel("252", 30, 30, TextStyle{Color: black, Size: 20})

	inked := 0
	img := c.Image()
	for y := 0; y < 60; y++ {
		for x := 0; x < 60; x++ {
			if img.RGBAAt(x, y) != white {
				inked++
				if x < 5 || x > 55 {
					t.Fatalf("ink at %d,%d is far from the centre", x, y)
				}
			}
		}
	}
	if inked == 0 {
		t.Error("label drew nothing")
	}
}

func TestImageCanvasEncodePNG(t *testing.T) {
	c := NewImageCanvas(8, 8, yellow)
	defer c.Close()
	c.FillBackground()

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("expected width 8, got %d", img.Bounds().Dx())
	}
}

func TestLabelPoints(t *testing.T) {
	if got := LabelPoints(2); got != minLabelPoints {
		t.Errorf("tiny step: expected %v, got %v", float64(minLabelPoints), got)
	}
	if got := LabelPoints(40); got != 18 {
		t.Errorf("step 40: expected 18, got %v", got)
	}
	if got := LabelPoints(1000); got != maxLabelPoints {
		t.Errorf("huge step: expected %v, got %v", float64(maxLabelPoints), got)
	}
}

func TestBlitLetterboxed(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			src.SetRGBA(x, y, yellow)
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, 40, 20))
	blitLetterboxed(dst, src, black)

	if got := dst.RGBAAt(20, 10); got != yellow {
		t.Errorf("centre: expected yellow, got %v", got)
	}
	if got := dst.RGBAAt(2, 10); got != black {
		t.Errorf("margin: expected black, got %v", got)
	}
	if got := dst.RGBAAt(38, 10); got != black {
		t.Errorf("margin: expected black, got %v", got)
	}
}
