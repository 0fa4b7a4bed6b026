package dither

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fractal/curve"
)

// Sentinel errors for dithering input validation.
var (
	// ErrNilTable indicates no traversal table was supplied.
	ErrNilTable = errors.New("dither: curve table is nil")

	// ErrBadGrid indicates an empty or non-square input grid.
	ErrBadGrid = errors.New("dither: grid must be square and non-empty")

	// ErrGridMismatch indicates the grid side does not fit the traversal.
	ErrGridMismatch = errors.New("dither: grid side must match the curve table")
)

// threshold splits samples into black (0) and white (1).
const threshold = 0.5

// tables memoizes Hilbert traversals for QuantizeHilbert across calls;
// entries never expire — tables are small and immutable.
var tables = curve.NewCache(0)

// Quantize performs in-place 1-bit error-diffusion quantization of img,
// visiting cells in t's traversal order. img is indexed img[y][x] and must
// be square with side t.Side; every sample is expected in [0, 1].
//
// At each visited cell: out = 1 if value + error > 0.5 else 0, then
// error += value − out. The scalar error term rides the traversal, so each
// cell's residual lands on its curve-order successors.
//
// Complexity: O(Side²).
func Quantize(img [][]float64, t *curve.Table) error {
	if t == nil {
		return ErrNilTable
	}

	side := len(img)
	if side == 0 {
		return ErrBadGrid
	}
	for y, row := range img {
		if len(row) != side {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadGrid, y, len(row), side)
		}
	}
	if t.Side != side {
		return fmt.Errorf("%w: grid side %d, table side %d", ErrGridMismatch, side, t.Side)
	}

	e := 0.0
	for _, p := range t.Points[1:] {
		x, y := int(p.X), int(p.Y)
		v := img[y][x]

		out := 0.0
		if v+e > threshold {
			out = 1
		}

		e += v - out
		img[y][x] = out
	}

	return nil
}

// QuantizeHilbert quantizes img along the Hilbert traversal matching its
// side, which must be a power of two ≥ 2. Traversal tables are memoized
// package-wide, so repeated calls on same-sized grids rebuild nothing.
func QuantizeHilbert(img [][]float64) error {
	side := len(img)
	if side == 0 {
		return ErrBadGrid
	}

	order, ok := log2(side)
	if !ok || order < 1 {
		return fmt.Errorf("%w: grid side %d is not a power of two ≥ 2", ErrGridMismatch, side)
	}

	t, err := tables.Table(curve.Hilbert, order)
	if err != nil {
		return err
	}

	return Quantize(img, t)
}

// log2 returns the exponent for side == 2^order, or ok=false when side is
// not a power of two.
func log2(side int) (int, bool) {
	if side <= 0 || side&(side-1) != 0 {
		return 0, false
	}

	order := 0
	for s := side; s > 1; s >>= 1 {
		order++
	}

	return order, true
}
