package pascal

import "github.com/rook-computer/pascalviz/internal/triangle"

// DivisibleCounts returns, for each of the rowCount rows the modulo
// renderer would draw, how many of the drawn cells land in the Divisible
// bucket.
func DivisibleCounts(rowCount int) []int {
	counts := make([]int, 0, max(rowCount, 0))
	var z int64
	for rowIndex, row := range triangle.Rows(rowCount) {
		residues := BinaryRow(row, z)
		n := 0
		for col := 0; col < rowIndex; col++ {
			if col >= len(residues) || BucketOf(residues[col]) == Divisible {
				n++
			}
		}
		counts = append(counts, n)
		z++
	}
	return counts
}
