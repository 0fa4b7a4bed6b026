// Package fractal generates geometric point sequences — chaos-game
// fractal clouds and space-filling curve traversals — for visualization
// and image-processing pipelines.
//
// 🚀 What is fractal?
//
//	A small, deterministic library that brings together:
//		• Regular polygons: unit-circle vertex generation with stable rounding
//		• The Chaos Game: iterated random contraction under five selection rules
//		• Space-filling curves: pseudo Hilbert & Peano index→coordinate mapping
//		• Curve walks: finite, restartable step generators over a traversal
//		• Dithering: 1-bit error diffusion along a curve order
//
// ✨ Why choose fractal?
//
//   - Reproducible – every random source is seedable, every mapping bit-exact
//   - Inspectable – choice hooks expose the engine's decisions for testing
//   - Pure computation – no rendering, no I/O, no hidden global state
//   - Extensible – tables feed any consumer that walks cells in curve order
//
// Everything is organized under four subpackages:
//
//	polygon/ — regular polygon vertices inscribed in the unit circle
//	chaos/   — the chaos-game engine: rules R0..R4, seeds, YAML config
//	curve/   — Hilbert & Peano tables, step walks, memoized table cache
//	dither/  — error-diffusion quantization along a curve traversal
//
// Quick ASCII example:
//
//	    2───3        an order-1 Hilbert curve visits the
//	    │   │        2×2 grid as (0,0)→(0,1)→(1,1)→(1,0),
//	    1   4        a single U-shaped stroke.
//
// Dive into each package's doc.go for the full contract, errors and
// complexity notes.
//
//	go get github.com/katalvlaran/fractal
package fractal
