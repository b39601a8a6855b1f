package triangle

import (
	"iter"
	"math/big"
)

// Generator walks the triangle one row at a time. Only the current row is
// kept; it is safe to Reset and walk again.
type Generator struct {
	current Row
	index   int
}

func NewGenerator() *Generator {
	g := &Generator{}
	g.Reset()
	return g
}

// Reset rewinds the generator to the first row.
func (g *Generator) Reset() {
	g.current = FirstRow()
	g.index = 1
}

// Current returns the row at Index without advancing.
func (g *Generator) Current() Row { return g.current }

// Index is the 1-based position of Current, matching the row index the
// renderers draw it at.
func (g *Generator) Index() int { return g.index }

// Next advances to the following row and returns it.
func (g *Generator) Next() Row {
	g.current = NextRow(g.current)
	g.index++
	return g.current
}

// Rows yields (rowIndex, row) for rowIndex 1..n. Nothing is yielded when
// n <= 0.
func Rows(n int) iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		g := NewGenerator()
		for g.Index() <= n {
			if !yield(g.Index(), g.Current()) {
				return
			}
			g.Next()
		}
	}
}

// Binomial returns C(n, k), or 0 when k is outside [0, n].
func Binomial(n, k int) *big.Int {
	if n < 0 || k < 0 || k > n {
		return new(big.Int)
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}
