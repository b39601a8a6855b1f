package layout

import (
	"image"
	"math"
)

// Step returns the side length of one triangle cell. It uses integer
// division so cells land on whole pixels; it is 0 when rowCount is not
// positive or exceeds canvasSize.
func Step(canvasSize, rowCount int) float64 {
	if rowCount <= 0 || canvasSize <= 0 {
		return 0
	}
	return float64(canvasSize / rowCount)
}

// LabelCenter returns the centre of the numeric label for column col of
// the row drawn at rowIndex.
func LabelCenter(rowIndex, col int, step float64) (x, y float64) {
	return float64(col)*step + step/2, float64(rowIndex-col)*step - step/2
}

// CellCorners returns the two opposite corners of the coloured cell for
// column col of the row drawn at rowIndex. The first corner is the
// top-right one, the second the bottom-left one.
func CellCorners(rowIndex, col int, step float64) (x0, y0, x1, y1 float64) {
	return float64(col+1) * step, float64(rowIndex-col-1) * step,
		float64(col) * step, float64(rowIndex-col) * step
}

// PixelRect rounds float corners given in any order to a pixel rectangle.
func PixelRect(x0, y0, x1, y1 float64) image.Rectangle {
	return Normalize(image.Rect(
		int(math.Round(x0)), int(math.Round(y0)),
		int(math.Round(x1)), int(math.Round(y1)),
	))
}

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// CenterSquare returns the largest square that fits into rect, centred on
// both axes. Used to letterbox the square canvas onto a wide screen.
func CenterSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	size := rect.Dx()
	if rect.Dy() < size {
		size = rect.Dy()
	}
	if size < 0 {
		size = 0
	}
	x := rect.Min.X + (rect.Dx()-size)/2
	y := rect.Min.Y + (rect.Dy()-size)/2
	return image.Rect(x, y, x+size, y+size)
}
