package render

import (
	"context"
	"errors"
	"image/color"

	"github.com/rook-computer/pascalviz/internal/state"
)

// DiscardRenderer runs the screen against a surface that keeps nothing. It
// backs dry runs: the triangle is computed and timed, but no pixels are
// stored or written.
type DiscardRenderer struct {
	CanvasSize int
	Logger     Logger

	current Screen
	ops     int
}

func NewDiscardRenderer(canvasSize int) *DiscardRenderer {
	return &DiscardRenderer{CanvasSize: canvasSize}
}

func (r *DiscardRenderer) Start(ctx context.Context) error {
	if r.CanvasSize <= 0 {
		return errors.New("discard renderer: canvas size must be positive")
	}
	return nil
}

func (r *DiscardRenderer) Stop() error             { return nil }
func (r *DiscardRenderer) SetScreen(screen Screen) { r.current = screen }

func (r *DiscardRenderer) Redraw(snap state.State) error {
	if r.current == nil {
		return nil
	}
	d := &discardDrawer{size: r.CanvasSize}
	r.current.Draw(d, snap)
	r.ops = d.ops
	if r.Logger != nil {
		r.Logger.Debugf("discard", "dry run issued %d draw calls", d.ops)
	}
	return nil
}

// RunLoop returns at once; there is nothing to keep on screen.
func (r *DiscardRenderer) RunLoop(ctx context.Context, store *state.Store) {}

// Ops reports how many draw calls the last Redraw issued.
func (r *DiscardRenderer) Ops() int { return r.ops }

type discardDrawer struct {
	size int
	ops  int
}

func (d *discardDrawer) Size() (int, int)                              { return d.size, d.size }
func (d *discardDrawer) FillBackground()                               { d.ops++ }
func (d *discardDrawer) DrawGrid(float64, color.Color)                 { d.ops++ }
func (d *discardDrawer) DrawLabel(string, float64, float64, TextStyle) { d.ops++ }
func (d *discardDrawer) FillRect(_, _, _, _ float64, _, _ color.Color) { d.ops++ }
