package curve

import (
	"fmt"

	"github.com/jbeda/geom"
)

// PeanoMap — linear index to grid coordinates on a Peano curve.
//
// Description:
//
//	The Peano curve traverses a 3^order × 3^order grid in a serpentine
//	order: each square splits into 9 sub-squares visited bottom-left to
//	top-right, with alternating reflections keeping consecutive cells
//	adjacent. Order 1 visits (0,0), (0,1), (0,2), (1,2), (1,1), (1,0),
//	(2,0), (2,1), (2,2).
//
// Algorithm Outline (closed-form ternary decode):
//  1. Write index as 2·order base-3 digits d₁..d₂ₙ, most significant first.
//  2. The x coordinate takes the odd-position digits d₁, d₃, ...; the
//     y coordinate takes the even-position digits d₂, d₄, ...
//  3. Each digit is complemented (t → 2−t) when the sum of the other
//     axis's digits preceding it is odd; the complements realize the
//     serpentine reflections.
//
// Complexity: O(order) per index.
//
// Errors: ErrOrderTooSmall, ErrIndexRange.
func PeanoMap(order, index int) (geom.Coord, error) {
	if order < 1 {
		return geom.Coord{}, ErrOrderTooSmall
	}

	side := pow3(order)
	if index < 0 || index >= side*side {
		return geom.Coord{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexRange, index, side*side)
	}

	return peanoXY(order, index), nil
}

// NewPeano builds the full traversal table for an order-n curve over a
// 3^order × 3^order grid, with the same fixed-head layout as NewHilbert.
//
// Complexity: O(Side² · order) time, O(Side²) memory.
func NewPeano(order int) (*Table, error) {
	if order < 1 {
		return nil, ErrOrderTooSmall
	}

	side := pow3(order)
	points := make([]geom.Coord, 0, side*side+1)
	points = append(points, geom.Coord{})

	for i := 0; i < side*side; i++ {
		points = append(points, peanoXY(order, i))
	}

	return &Table{Kind: Peano, Order: order, Side: side, Points: points}, nil
}

// peanoXY decodes one index for an order-n curve.
func peanoXY(order, index int) geom.Coord {
	digitCount := 2 * order
	digits := make([]int, digitCount)
	for i := digitCount - 1; i >= 0; i-- {
		digits[i] = index % 3
		index /= 3
	}

	x, y := 0, 0
	sumX, sumY := 0, 0 // running sums of the original x- and y-digits

	for i := 0; i < order; i++ {
		dx := digits[2*i]
		dy := digits[2*i+1]

		xd := dx
		if sumY%2 == 1 {
			xd = 2 - dx
		}

		yd := dy
		if (sumX+dx)%2 == 1 {
			yd = 2 - dy
		}

		x = x*3 + xd
		y = y*3 + yd
		sumX += dx
		sumY += dy
	}

	return geom.Coord{X: float64(x), Y: float64(y)}
}

// pow3 returns 3^n for small non-negative n.
func pow3(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 3
	}

	return p
}
