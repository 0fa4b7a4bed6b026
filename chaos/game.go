package chaos

import (
	"math/rand"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/fractal/polygon"
)

// History sentinels: outside [0, VertexCount), so no exclusion rule can
// spuriously trigger before two real indices have been chosen.
const (
	prevSentinel  = -1
	prev2Sentinel = -2
)

// Game — the chaos-game engine.
//
// Description:
//
//	The chaos game, as termed by Michael F. Barnsley, starts from a random
//	point and repeatedly contracts toward a randomly chosen vertex of a
//	fixed polygon, recording every intermediate point. Constraining which
//	vertex may follow which (rules R1..R4) produces different fractals.
//
// Algorithm Outline (one iteration):
//  1. Sample a candidate vertex index uniformly from [0, n).
//  2. While the active rule excludes the candidate given the last one or
//     two accepted indices, resample uniformly from the same full range
//     (rejection sampling — never a reduced candidate set).
//  3. next = (current + vertex) · Ratio, or the interpolated step when
//     Options.Interpolate is set.
//  4. Append next to the visited sequence, advance current, shift history.
//
// The visited sequence is append-only and grows by exactly one point per
// iteration; Play is re-entrant and cumulative across calls.
//
// Errors:
//   - ErrTooFewVertices — VertexCount < 3 at construction.
//   - ErrUnknownRule    — Rule outside R0..R4 at construction.
//   - ErrBadIterations  — negative iteration count passed to Play.
type Game struct {
	opts     Options
	vertices []geom.Coord
	start    geom.Coord
	current  geom.Coord
	points   []geom.Coord
	prev     int
	prev2    int
	rng      *rand.Rand
}

// New validates opts, builds the boundary polygon, draws the start point,
// and returns a ready engine. A failed configuration produces no engine.
//
// The start point uses one uniform sample u ∈ [−0.5, 0.5) for BOTH
// coordinates, so every start lies on the square's diagonal rather than
// anywhere in the interior. This degenerate start is deliberate and kept
// for reproducible output; it does not affect the attractor.
func New(opts Options) (*Game, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	vertices, err := polygon.Generate(opts.VertexCount)
	if err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		rng = rngFromSeed(opts.Seed)
	}

	u := rng.Float64() - 0.5
	start := geom.Coord{X: u, Y: u}

	return &Game{
		opts:     opts,
		vertices: vertices,
		start:    start,
		current:  start,
		prev:     prevSentinel,
		prev2:    prev2Sentinel,
		rng:      rng,
	}, nil
}

// Play runs the game for the given number of iterations, appending one
// visited point per iteration. It may be called repeatedly; state
// (current point, rule history) carries over between calls.
//
// Complexity: O(iterations) expected; rejection sampling rejects at most
// 2 of n candidates per draw, so the expected resample count is ≤ 2.
func (g *Game) Play(iterations int) error {
	if iterations < 0 {
		return ErrBadIterations
	}

	n := g.opts.VertexCount
	def := ruleTable[g.opts.Rule]

	for i := 0; i < iterations; i++ {
		idx := g.rng.Intn(n)
		for def.excludes(idx, g.prev, g.prev2, n) {
			idx = g.rng.Intn(n)
		}

		v := g.vertices[idx]
		if g.opts.Interpolate {
			g.current = g.current.Plus(v.Minus(g.current).Times(g.opts.Ratio))
		} else {
			// Historical scaled-sum step: ratio multiplies the sum, not the
			// difference. Equals the midpoint only at Ratio=0.5.
			g.current = g.current.Plus(v).Times(g.opts.Ratio)
		}

		g.points = append(g.points, g.current)
		g.prev2, g.prev = g.prev, idx

		if g.opts.OnChoose != nil {
			g.opts.OnChoose(idx)
		}
	}

	return nil
}

// Points returns a copy of the visited points, in iteration order.
func (g *Game) Points() []geom.Coord {
	return append([]geom.Coord(nil), g.points...)
}

// Vertices returns a copy of the boundary polygon vertices.
func (g *Game) Vertices() []geom.Coord {
	return append([]geom.Coord(nil), g.vertices...)
}

// Start returns the initial point the game was seeded with.
func (g *Game) Start() geom.Coord {
	return g.start
}

// Len returns the number of iterations executed so far.
func (g *Game) Len() int {
	return len(g.points)
}
