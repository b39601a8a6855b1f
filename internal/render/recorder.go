package render

import "image/color"

type OpKind int

const (
	OpBackground OpKind = iota
	OpGrid
	OpLabel
	OpRect
)

// Op is one recorded drawing call.
type Op struct {
	Kind           OpKind
	Text           string
	X0, Y0, X1, Y1 float64
	Fill, Outline  color.Color
	Style          TextStyle
}

// Recorder is a headless Drawer that remembers every call.
type Recorder struct {
	Width, Height int
	Ops           []Op
}

func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

func (r *Recorder) FillBackground() { r.Ops = append(r.Ops, Op{Kind: OpBackground}) }

func (r *Recorder) DrawGrid(step float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpGrid, X0: step, Outline: c})
}

func (r *Recorder) DrawLabel(text string, cx, cy float64, style TextStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpLabel, Text: text, X0: cx, Y0: cy, Style: style})
}

func (r *Recorder) FillRect(x0, y0, x1, y1 float64, fill, outline color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, X0: x0, Y0: y0, X1: x1, Y1: y1, Fill: fill, Outline: outline})
}

// Count returns how many calls of kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls of kind in order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func (r *Recorder) Reset() { r.Ops = nil }
