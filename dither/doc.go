// Package dither performs 1-bit error-diffusion quantization of a square
// grayscale grid, visiting cells in space-filling-curve order.
//
// What:
//
//   - Quantize walks a grid along a curve.Table traversal, thresholds each
//     sample at 0.5, and carries the running quantization error forward to
//     the cells visited next.
//   - QuantizeHilbert derives the curve order from the grid side (a power
//     of two) and reuses memoized traversal tables.
//
// Why:
//
//   - Diffusing error along a Hilbert traversal instead of row-major scan
//     order hides the directional banding of classic raster dithering:
//     the curve keeps the error in the spatial neighborhood it came from.
//
// The traversal covers every cell exactly once: the table's fixed head is
// skipped, so only the Side² computed entries are visited.
//
// Complexity:
//
//   - Quantize: O(Side²) time, O(1) extra memory (in-place).
//
// Errors:
//
//   - ErrNilTable:     no traversal table supplied.
//   - ErrBadGrid:      empty or non-square grid.
//   - ErrGridMismatch: grid side differs from the table's side, or is not
//     a power of two in QuantizeHilbert.
package dither
