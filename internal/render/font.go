package render

import (
	"math"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	minLabelPoints = 4
	maxLabelPoints = 48
)

// faceCache hands out truetype faces keyed by rounded point size. Faces
// are not safe for concurrent use, so every canvas owns its own cache.
type faceCache struct {
	mu    sync.Mutex
	ttf   *truetype.Font
	err   error
	once  sync.Once
	faces map[int]font.Face
}

var parsedFont struct {
	once sync.Once
	font *truetype.Font
	err  error
}

func labelFont() (*truetype.Font, error) {
	parsedFont.once.Do(func() {
		parsedFont.font, parsedFont.err = truetype.Parse(goregular.TTF)
	})
	return parsedFont.font, parsedFont.err
}

// LabelPoints picks a font size that fits a decimal number in a cell of
// side step.
func LabelPoints(step float64) float64 {
	pts := math.Round(step * 0.45)
	if pts < minLabelPoints {
		pts = minLabelPoints
	}
	if pts > maxLabelPoints {
		pts = maxLabelPoints
	}
	return pts
}

func (fc *faceCache) face(points float64) font.Face {
	fc.once.Do(func() {
		fc.ttf, fc.err = labelFont()
		fc.faces = make(map[int]font.Face)
	})
	if fc.err != nil || points <= 0 {
		return basicfont.Face7x13
	}

	key := int(math.Round(points))
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if f, ok := fc.faces[key]; ok {
		return f
	}
	f := truetype.NewFace(fc.ttf, &truetype.Options{Size: float64(key), DPI: 72, Hinting: font.HintingFull})
	fc.faces[key] = f
	return f
}

func (fc *faceCache) Close() {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	for key, f := range fc.faces {
		_ = f.Close()
		delete(fc.faces, key)
	}
}
