package polygon

import (
	"errors"
	"math"

	"github.com/jbeda/geom"
)

// MinVertices is the smallest vertex count that forms a polygon.
const MinVertices = 3

// coordScale fixes vertex coordinates to 2 decimal places.
const coordScale = 100

// ErrTooFewVertices indicates the requested vertex count cannot form a polygon.
var ErrTooFewVertices = errors.New("polygon: vertex count must be at least 3")

// Generate returns the vertices of a regular vertexCount-gon inscribed in
// the unit circle, counter-clockwise, starting from the fixed vertex (0, 1).
//
// Vertex k is (0, 1) rotated counter-clockwise by k·2π/vertexCount, which
// reduces to (−sin(kθ), cos(kθ)). Rotated coordinates are rounded to
// 2 decimal places before storage; vertex 0 stays exact.
//
// Complexity: O(vertexCount).
func Generate(vertexCount int) ([]geom.Coord, error) {
	if vertexCount < MinVertices {
		return nil, ErrTooFewVertices
	}

	step := 2 * math.Pi / float64(vertexCount)

	vertices := make([]geom.Coord, 0, vertexCount)
	vertices = append(vertices, geom.Coord{X: 0, Y: 1})

	for k := 1; k < vertexCount; k++ {
		angle := float64(k) * step
		vertices = append(vertices, geom.Coord{
			X: round2(-math.Sin(angle)),
			Y: round2(math.Cos(angle)),
		})
	}

	return vertices, nil
}

// round2 rounds v to 2 decimal places, normalizing negative zero.
func round2(v float64) float64 {
	r := math.Round(v*coordScale) / coordScale
	if r == 0 {
		return 0
	}

	return r
}
