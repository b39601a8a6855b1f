package pascal

import (
	"github.com/rook-computer/pascalviz/internal/render"
	"github.com/rook-computer/pascalviz/internal/triangle"
)

// Build renders rows 1..rowCount: each row is drawn, then replaced by its
// successor. It returns the number of rows rendered; rowCount <= 0 draws
// nothing.
func Build(rowCount int, step float64, rr RowRenderer, d render.Drawer) int {
	rendered := 0
	for rowIndex, row := range triangle.Rows(rowCount) {
		rr.RenderRow(row, rowIndex, step, d)
		rendered++
	}
	return rendered
}
