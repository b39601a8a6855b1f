package render

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TermCanvas maps canvas pixels onto a grid of terminal cells, one cell
// per step pixels. Each cell is two columns wide so triangle cells stay
// roughly square.
type TermCanvas struct {
	width, height int
	unit          float64
	cols, rows    int
	background    color.Color
	cells         [][]termCell
}

type termCell struct {
	text string
	fg   color.Color
	bg   color.Color
	// grid is the colour of a grid line on the cell's left edge.
	grid color.Color
}

const (
	termCellWidth = 2
	termGridGlyph = "▏"
)

// NewTermCanvas creates a canvas of width x height pixels, shown at one
// terminal cell per unit pixels.
func NewTermCanvas(width, height int, unit float64, background color.Color) *TermCanvas {
	if unit < 1 {
		unit = 1
	}
	c := &TermCanvas{
		width:      width,
		height:     height,
		unit:       unit,
		cols:       int(math.Ceil(float64(width) / unit)),
		rows:       int(math.Ceil(float64(height) / unit)),
		background: background,
	}
	c.cells = make([][]termCell, c.rows)
	for i := range c.cells {
		c.cells[i] = make([]termCell, c.cols)
	}
	return c
}

func (c *TermCanvas) Size() (int, int) { return c.width, c.height }

// Grid returns the terminal dimensions in cells.
func (c *TermCanvas) Grid() (cols, rows int) { return c.cols, c.rows }

func (c *TermCanvas) FillBackground() {
	for _, row := range c.cells {
		for i := range row {
			row[i] = termCell{bg: c.background}
		}
	}
}

// DrawGrid marks the cells a vertical grid line passes through. Marked
// cells without text show a thin bar on their left edge.
func (c *TermCanvas) DrawGrid(step float64, col color.Color) {
	if step <= 0 {
		return
	}
	for x := 0.0; x < float64(c.width); x += step {
		gridCol := int(math.Floor(x / c.unit))
		if gridCol >= c.cols {
			break
		}
		for r := range c.cells {
			c.cells[r][gridCol].grid = col
		}
	}
}

func (c *TermCanvas) DrawLabel(text string, cx, cy float64, style TextStyle) {
	cell := c.at(cx, cy)
	if cell == nil {
		return
	}
	cell.text = text
	cell.fg = style.Color
}

func (c *TermCanvas) FillRect(x0, y0, x1, y1 float64, fill, outline color.Color) {
	cell := c.at((x0+x1)/2, (y0+y1)/2)
	if cell == nil {
		return
	}
	cell.bg = fill
	cell.text = ""
	cell.grid = nil
}

// Cell reports the text and background of the cell at (col, row).
func (c *TermCanvas) Cell(col, row int) (text string, bg color.Color) {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return "", nil
	}
	cell := c.cells[row][col]
	return cell.text, cell.bg
}

func (c *TermCanvas) at(x, y float64) *termCell {
	col := int(math.Floor(x / c.unit))
	row := int(math.Floor(y / c.unit))
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return nil
	}
	return &c.cells[row][col]
}

// String renders the grid with lipgloss colours.
func (c *TermCanvas) String() string {
	var sb strings.Builder
	for r, row := range c.cells {
		for _, cell := range row {
			style := lipgloss.NewStyle().Width(termCellWidth).MaxWidth(termCellWidth)
			if cell.bg != nil {
				style = style.Background(lipgloss.Color(Hex(cell.bg)))
			}
			if cell.fg != nil {
				style = style.Foreground(lipgloss.Color(Hex(cell.fg)))
			}
			text := cell.text
			if text == "" && cell.grid != nil {
				text = termGridGlyph
				style = style.Foreground(lipgloss.Color(Hex(cell.grid)))
			}
			if lipgloss.Width(text) > termCellWidth {
				text = string([]rune(text)[:termCellWidth-1]) + "…"
			}
			sb.WriteString(style.Render(text))
		}
		if r < len(c.cells)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
