package pascal

import (
	"image/color"
	"math/big"

	"github.com/rook-computer/pascalviz/internal/render"
	"github.com/rook-computer/pascalviz/internal/render/layout"
	"github.com/rook-computer/pascalviz/internal/triangle"
)

// RowRenderer draws one triangle row at rowIndex (1-based) with cells of
// side step.
type RowRenderer interface {
	RenderRow(row triangle.Row, rowIndex int, step float64, d render.Drawer)
}

// NumericRowRenderer writes each value as a centred text label.
type NumericRowRenderer struct {
	Color color.RGBA
	// Points overrides the label size; 0 derives it from step.
	Points float64
}

func (n NumericRowRenderer) RenderRow(row triangle.Row, rowIndex int, step float64, d render.Drawer) {
	style := render.TextStyle{Color: n.Color, Size: n.Points}
	if style.Size == 0 {
		style.Size = render.LabelPoints(step)
	}
	for col := 0; col < rowIndex && col < len(row); col++ {
		x, y := layout.LabelCenter(rowIndex, col, step)
		d.DrawLabel(row[col].String(), x, y, style)
	}
}

// ModuloColorRowRenderer paints every cell by the residue of its value
// modulo z, where z is 0 for the first row drawn and grows by one per row.
// Each renderer owns its counter; use a fresh one per drawing.
type ModuloColorRowRenderer struct {
	palette Palette
	z       int64
}

func NewModuloColorRowRenderer(palette Palette) *ModuloColorRowRenderer {
	return &ModuloColorRowRenderer{palette: palette}
}

// Modulus returns the current counter, i.e. the number of rows rendered.
func (m *ModuloColorRowRenderer) Modulus() int64 { return m.z }

func (m *ModuloColorRowRenderer) Palette() Palette { return m.palette }

func (m *ModuloColorRowRenderer) RenderRow(row triangle.Row, rowIndex int, step float64, d render.Drawer) {
	residues := BinaryRow(row, m.z)
	for col := 0; col < rowIndex; col++ {
		var residue int64
		if col < len(residues) {
			residue = residues[col]
		}
		fill := m.palette.Color(BucketOf(residue))
		x0, y0, x1, y1 := layout.CellCorners(rowIndex, col, step)
		d.FillRect(x0, y0, x1, y1, fill, fill)
	}
	m.z++
}

// BinaryRow reduces every value of row modulo z. For z == 0 the result is
// the single residue [0].
func BinaryRow(row triangle.Row, z int64) []int64 {
	if z == 0 {
		return []int64{0}
	}
	modulus := big.NewInt(z)
	residues := make([]int64, len(row))
	var r big.Int
	for i, v := range row {
		residues[i] = r.Mod(v, modulus).Int64()
	}
	return residues
}
