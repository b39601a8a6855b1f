package screens

import (
	"context"
	"io"

	"github.com/rook-computer/pascalviz/internal/config"
	"github.com/rook-computer/pascalviz/internal/pascal"
	"github.com/rook-computer/pascalviz/internal/render"
	"github.com/rook-computer/pascalviz/internal/state"
)

// TriangleScreen paints the background, the optional grid and the
// triangle. Every Draw starts a fresh row renderer, so redrawing yields
// the same picture.
type TriangleScreen struct {
	Mode  config.Mode
	Rows  int
	Step  float64
	Theme render.Theme
	Grid  bool

	rendered int
}

// NewTriangleScreen builds a screen from a validated config.
func NewTriangleScreen(cfg *config.Config) (*TriangleScreen, error) {
	theme, err := cfg.Theme()
	if err != nil {
		return nil, err
	}
	return &TriangleScreen{
		Mode:  cfg.Mode,
		Rows:  cfg.Rows,
		Step:  cfg.Step(),
		Theme: theme,
		Grid:  cfg.Grid,
	}, nil
}

func (s *TriangleScreen) Start(ctx context.Context) error { return nil }
func (s *TriangleScreen) Stop() error                     { return nil }

func (s *TriangleScreen) Draw(d render.Drawer, st state.State) {
	d.FillBackground()
	if s.Grid {
		d.DrawGrid(s.Step, s.Theme.Grid)
	}
	s.rendered = pascal.Build(s.Rows, s.Step, s.RowRenderer(), d)
}

// RowRenderer returns a new renderer for the screen's mode.
func (s *TriangleScreen) RowRenderer() pascal.RowRenderer {
	if s.Mode == config.ModeNumeric {
		return pascal.NumericRowRenderer{Color: s.Theme.Foreground}
	}
	return pascal.NewModuloColorRowRenderer(pascal.Palette{
		Divisible: s.Theme.Background,
		Remainder: s.Theme.Foreground,
	})
}

// Rendered reports how many rows the last Draw rendered.
func (s *TriangleScreen) Rendered() int { return s.rendered }

// RenderImage draws the triangle described by cfg straight into w. Each
// call owns its screen and row renderer, so calls may run concurrently.
func RenderImage(w io.Writer, cfg *config.Config, format render.Format) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	screen, err := NewTriangleScreen(cfg)
	if err != nil {
		return 0, err
	}
	err = render.Encode(w, format, cfg.CanvasSize, screen.Theme.Background, func(d render.Drawer) {
		screen.Draw(d, state.State{})
	})
	return screen.Rendered(), err
}
