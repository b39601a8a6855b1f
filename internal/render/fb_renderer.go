package render

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"sync/atomic"
	"time"

	fb "github.com/gonutz/framebuffer"
	"github.com/rook-computer/pascalviz/internal/render/layout"
	"github.com/rook-computer/pascalviz/internal/state"
	xdraw "golang.org/x/image/draw"
)

const DefaultFramebuffer = "/dev/fb0"

// Logger is the subset of the app logger renderers use.
type Logger interface {
	Debugf(string, string, ...interface{})
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// FBRenderer shows the drawing on the Linux framebuffer. The screen is
// drawn once into an offscreen square canvas; the refresh loop only
// re-blits the finished picture.
type FBRenderer struct {
	Device     string
	CanvasSize int
	Background color.Color
	Refresh    time.Duration
	Logger     Logger

	fbDev   *fb.Device
	canvas  *ImageCanvas
	running atomic.Bool
	current Screen
	drawn   atomic.Bool
}

func NewFBRenderer(canvasSize int, background color.Color) *FBRenderer {
	return &FBRenderer{
		Device:     DefaultFramebuffer,
		CanvasSize: canvasSize,
		Background: background,
		Refresh:    time.Second,
	}
}

func (r *FBRenderer) Start(ctx context.Context) error {
	if r.CanvasSize <= 0 {
		return errors.New("framebuffer canvas size must be positive")
	}
	dev, err := fb.Open(r.Device)
	if err != nil {
		return err
	}
	r.fbDev = dev
	if r.Logger != nil {
		bounds := dev.Bounds()
		r.Logger.Infof("fb", "framebuffer %s open, bounds=%dx%d", r.Device, bounds.Dx(), bounds.Dy())
	}
	r.canvas = NewImageCanvas(r.CanvasSize, r.CanvasSize, r.Background)
	r.running.Store(true)
	return nil
}

func (r *FBRenderer) Stop() error {
	r.running.Store(false)
	if r.canvas != nil {
		_ = r.canvas.Close()
	}
	if r.fbDev != nil {
		r.fbDev.Close()
	}
	return nil
}

func (r *FBRenderer) SetScreen(screen Screen) {
	r.current = screen
	r.drawn.Store(false)
}

// Redraw draws the current screen into the canvas and shows it.
func (r *FBRenderer) Redraw(snap state.State) error {
	if !r.running.Load() || r.fbDev == nil {
		return errors.New("framebuffer renderer not started")
	}
	if r.current == nil {
		return nil
	}
	r.current.Draw(r.canvas, snap)
	r.drawn.Store(true)
	r.blit()
	if r.Logger != nil {
		r.Logger.Debugf("fb", "redraw done, phase=%s", snap.Phase)
	}
	return nil
}

// RunLoop keeps the finished drawing on screen until ctx is done. Console
// output can scribble over the framebuffer, hence the periodic blit.
func (r *FBRenderer) RunLoop(ctx context.Context, store *state.Store) {
	refresh := r.Refresh
	if refresh <= 0 {
		refresh = time.Second
	}
	ticker := time.NewTicker(refresh)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !r.drawn.Load() {
				if err := r.Redraw(store.Snapshot()); err != nil && r.Logger != nil {
					r.Logger.Errorf("fb", "redraw failed: %v", err)
				}
				continue
			}
			r.blit()
			if r.Logger != nil {
				r.Logger.Debugf("fb", "re-blit %s", r.Device)
			}
		}
	}
}

func (r *FBRenderer) blit() {
	if r.fbDev == nil || r.canvas == nil {
		return
	}
	blitLetterboxed(r.fbDev, r.canvas.Image(), r.Background)
}

// blitLetterboxed scales src into the largest centred square of dst and
// paints the margins with background.
func blitLetterboxed(dst draw.Image, src image.Image, background color.Color) {
	bounds := dst.Bounds()
	target := layout.CenterSquare(bounds)
	if background != nil {
		draw.Draw(dst, bounds, &image.Uniform{C: background}, image.Point{}, draw.Src)
	}
	xdraw.NearestNeighbor.Scale(dst, target, src, src.Bounds(), xdraw.Src, nil)
}
