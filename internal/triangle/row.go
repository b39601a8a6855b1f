// Package triangle builds the rows of Pascal's triangle.
//
// Values are arbitrary precision; row 800 already holds numbers with
// hundreds of digits.
package triangle

import (
	"math/big"
	"strings"
)

// Row is one row of binomial coefficients C(n, 0..n).
type Row []*big.Int

// FirstRow returns [1].
func FirstRow() Row {
	return Row{big.NewInt(1)}
}

// NextRow returns the row following current. The result is always one
// element longer, starts and ends with 1, and every interior element is
// the sum of the two values above it. current is not modified.
func NextRow(current Row) Row {
	next := make(Row, len(current)+1)
	next[0] = big.NewInt(1)
	for i := 1; i < len(current); i++ {
		next[i] = new(big.Int).Add(current[i-1], current[i])
	}
	next[len(current)] = big.NewInt(1)
	return next
}

// Len returns the number of values in the row.
func (r Row) Len() int { return len(r) }

// Strings returns the decimal form of every value.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, v := range r {
		out[i] = v.String()
	}
	return out
}

func (r Row) String() string {
	return "[" + strings.Join(r.Strings(), " ") + "]"
}
