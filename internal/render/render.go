package render

import (
	"context"
	"image/color"

	"github.com/rook-computer/pascalviz/internal/state"
)

// Renderer owns a display sink: it draws the current screen and keeps the
// finished picture visible until the context ends.
type Renderer interface {
	Start(ctx context.Context) error
	Stop() error
	SetScreen(screen Screen)
	Redraw(snap state.State) error
	RunLoop(ctx context.Context, store *state.Store)
}

type Screen interface {
	Start(ctx context.Context) error
	Stop() error
	Draw(d Drawer, s state.State)
}

// Drawer is the drawing surface handed to screens. Coordinates are
// floating-point canvas pixels with the origin at the top-left corner.
type Drawer interface {
	// Size returns the logical canvas size (in pixels).
	Size() (width int, height int)

	FillBackground()

	// DrawGrid overlays horizontal and vertical lines every step pixels.
	DrawGrid(step float64, c color.Color)

	// DrawLabel draws text centred on (cx, cy).
	DrawLabel(text string, cx, cy float64, style TextStyle)

	// FillRect fills the rectangle spanned by two opposite corners, given in
	// any order, and outlines it with outline.
	FillRect(x0, y0, x1, y1 float64, fill, outline color.Color)
}

// TextStyle describes how to render a label.
type TextStyle struct {
	Color color.Color
	Size  float64 // font size in points; 0 means surface default
}
