package pascal

import "image/color"

// Bucket classifies a cell by its residue.
type Bucket int

const (
	// Divisible marks a residue of 0.
	Divisible Bucket = iota
	// Remainder marks any non-zero residue.
	Remainder
)

func (b Bucket) String() string {
	if b == Divisible {
		return "divisible"
	}
	return "remainder"
}

// Palette maps buckets to colours. It is a plain value; copies never share
// state.
type Palette struct {
	Divisible color.RGBA
	Remainder color.RGBA
}

func (p Palette) Color(b Bucket) color.RGBA {
	if b == Divisible {
		return p.Divisible
	}
	return p.Remainder
}

// BucketOf classifies a residue.
func BucketOf(residue int64) Bucket {
	if residue == 0 {
		return Divisible
	}
	return Remainder
}
