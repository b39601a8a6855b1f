// Package pascal draws Pascal's triangle onto a render.Drawer.
//
// Row r (1-based) is drawn along the anti-diagonal of an r-by-r corner of
// the canvas: column c lands at cell (c, r-c-1), so row 1 occupies the
// top-left cell and every later row extends one cell further down and to
// the right. Two row renderers exist: NumericRowRenderer writes the values
// as text, ModuloColorRowRenderer paints each cell by the value's residue
// modulo a counter that grows by one per row.
package pascal
