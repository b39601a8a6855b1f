package render

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/rook-computer/pascalviz/internal/state"
)

type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// FormatFromPath picks the output format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".svg":
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("unsupported output extension %q (want .png or .svg)", filepath.Ext(path))
	}
}

// FileRenderer writes the screen to an image file on each Redraw.
type FileRenderer struct {
	Path       string
	CanvasSize int
	Background color.Color
	Logger     Logger

	format  Format
	current Screen
}

func NewFileRenderer(path string, canvasSize int, background color.Color) *FileRenderer {
	return &FileRenderer{Path: path, CanvasSize: canvasSize, Background: background}
}

func (r *FileRenderer) Start(ctx context.Context) error {
	if r.CanvasSize <= 0 {
		return errors.New("canvas size must be positive")
	}
	format, err := FormatFromPath(r.Path)
	if err != nil {
		return err
	}
	r.format = format
	return nil
}

func (r *FileRenderer) Stop() error             { return nil }
func (r *FileRenderer) SetScreen(screen Screen) { r.current = screen }

// RunLoop returns at once: a file needs no display loop.
func (r *FileRenderer) RunLoop(ctx context.Context, store *state.Store) {}

func (r *FileRenderer) Redraw(snap state.State) error {
	if r.format == "" {
		return errors.New("file renderer not started")
	}
	if r.current == nil {
		return nil
	}

	if dir := filepath.Dir(r.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(r.Path)
	if err != nil {
		return fmt.Errorf("create %s: %w", r.Path, err)
	}
	defer f.Close()

	if err := Encode(f, r.format, r.CanvasSize, r.Background, func(d Drawer) { r.current.Draw(d, snap) }); err != nil {
		return fmt.Errorf("write %s: %w", r.Path, err)
	}
	if r.Logger != nil {
		r.Logger.Infof("file", "wrote %s (%s, %dpx)", r.Path, r.format, r.CanvasSize)
	}
	return f.Close()
}
