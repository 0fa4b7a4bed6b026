// Package chaos implements the chaos game: an iterated random contraction
// toward the vertices of a regular polygon, producing fractal point clouds
// such as the Sierpinski triangle.
//
// What:
//
//   - Game owns a current point and an append-only visited sequence; each
//     Play iteration picks a vertex under the active rule's exclusion
//     constraint and contracts toward it.
//   - Five rules: R0 (free choice), R1 (no immediate repeat), R2/R3
//     (forbid the anti-clockwise / clockwise neighbor of the previous
//     vertex), R4 (forbid both neighbors after a repeated vertex).
//   - Excluded candidates are handled by rejection sampling from the full
//     index range, never by shrinking the candidate set.
//   - ParseConfig loads validated Options from a YAML document.
//
// Why:
//
//   - Fractal point clouds for scatter rendering.
//   - Reproducible stochastic sequences: every run is seedable, and the
//     OnChoose hook exposes the chosen indices for verification.
//
// Options:
//
//   - Options.VertexCount: boundary polygon size (≥ 3).
//   - Options.Rule: R0..R4 exclusion rule.
//   - Options.Ratio: contraction step, default 0.5 (the midpoint).
//   - Options.Interpolate: switch from the historical scaled-sum step to
//     true linear interpolation toward the vertex.
//   - Options.Seed / Options.Rand: deterministic randomness.
//   - Options.OnChoose: instrumentation hook for accepted indices.
//
// Errors:
//
//   - ErrTooFewVertices: vertex count below 3 (also the rejection-sampling
//     non-termination guard).
//   - ErrUnknownRule: rule outside the closed set R0..R4.
//   - ErrBadIterations: negative iteration count.
//   - ErrBadConfig: malformed YAML configuration.
//
// Complexity:
//
//   - Play(k): O(k) expected time, O(k) appended memory.
//
// Concurrency: a Game is single-threaded; its RNG is instance-owned and
// not goroutine-safe. Run one engine per goroutine.
package chaos
