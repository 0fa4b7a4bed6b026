// Package curve maps linear indices to 2D grid coordinates along
// space-filling curves, linearizing 2D locality into a 1D traversal.
//
// What:
//
//   - HilbertMap / NewHilbert: pseudo Hilbert curve of order n over a
//     2^n × 2^n grid, via iterative bit-pair decoding with quadrant
//     rotation. Bit-exact with the recursive construction.
//   - PeanoMap / NewPeano: Peano curve of order n over a 3^n × 3^n grid,
//     via closed-form ternary digit decoding.
//   - Table.Steps: a finite, restartable generator of unit grid-step
//     directions along a traversal.
//   - Cache: memoized tables per (kind, order) with optional TTL.
//
// Why:
//
//   - Dithering: error diffusion along a curve order hides the raster
//     pattern of row-major scans.
//   - Plotting: color-graded polylines of the traversal order.
//   - Locality: nearby cells in 2D stay nearby in the 1D order.
//
// Complexity:
//
//   - Map: O(order) per index.
//   - Table construction: O(Side² · order) time, O(Side²) memory.
//
// Errors:
//
//   - ErrOrderTooSmall: order < 1.
//   - ErrIndexRange: index outside [0, Side²).
//   - ErrUnknownKind: kind outside {Hilbert, Peano}.
//
// Every mapping is deterministic; golden values are pinned in tests.
package curve
