package curve

import (
	"fmt"

	"github.com/jbeda/geom"
)

// HilbertMap — linear index to grid coordinates on a pseudo Hilbert curve.
//
// Description:
//
//	The Hilbert curve is built by subdividing a square into 4 quadrants,
//	copying the previous-order curve into each, rotating the bottom two
//	copies, and joining the ends. HilbertMap inverts that construction
//	directly: it decodes the index as a base-4 numeral, least-significant
//	digit first.
//
// Algorithm Outline:
//  1. The low 2 bits select among the 4 order-1 cells
//     (0,0), (0,1), (1,1), (1,0).
//  2. Consume the remaining bits two at a time. At sub-square size n
//     (4, 8, ..., doubling while n ≤ N), with half = n/2, the digit keys
//     one transform:
//     0: swap x and y            (transpose into the bottom-left)
//     1: y += half               (shift into the top-left)
//     2: x += half, y += half    (shift into the top-right)
//     3: (x,y) → (2·half−1−y, half−1−x)   (reflect into the bottom-right)
//  3. Terminate once n exceeds N = 2^order.
//
// The decoding is bit-exact with the recursive construction; golden values
// are pinned in tests for cross-implementation parity.
//
// Complexity: O(order) per index.
//
// Errors: ErrOrderTooSmall, ErrIndexRange.
func HilbertMap(order, index int) (geom.Coord, error) {
	if order < 1 {
		return geom.Coord{}, ErrOrderTooSmall
	}

	side := 1 << order
	if index < 0 || index >= side*side {
		return geom.Coord{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexRange, index, side*side)
	}

	return hilbertXY(side, index), nil
}

// NewHilbert builds the full traversal table for an order-n curve over a
// 2^order × 2^order grid: the fixed (0,0) head followed by all Side²
// computed points.
//
// Complexity: O(Side² · order) time, O(Side²) memory.
func NewHilbert(order int) (*Table, error) {
	if order < 1 {
		return nil, ErrOrderTooSmall
	}

	side := 1 << order
	points := make([]geom.Coord, 0, side*side+1)
	points = append(points, geom.Coord{})

	for i := 0; i < side*side; i++ {
		points = append(points, hilbertXY(side, i))
	}

	return &Table{Kind: Hilbert, Order: order, Side: side, Points: points}, nil
}

// hilbertBase holds the order-1 cell coordinates, indexed by the low
// 2 bits of the linear index.
var hilbertBase = [4][2]int{{0, 0}, {0, 1}, {1, 1}, {1, 0}}

// hilbertXY decodes one index; side must be the grid side 2^order.
func hilbertXY(side, index int) geom.Coord {
	base := hilbertBase[index&3]
	x, y := base[0], base[1]
	index >>= 2

	for n := 4; n <= side; n *= 2 {
		half := n / 2

		switch index & 3 {
		case 0:
			x, y = y, x
		case 1:
			y += half
		case 2:
			x += half
			y += half
		case 3:
			x, y = 2*half-1-y, half-1-x
		}

		index >>= 2
	}

	return geom.Coord{X: float64(x), Y: float64(y)}
}
