package polygon_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/fractal/polygon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate_TooFewVertices verifies that vertex counts below 3
// fail fast with ErrTooFewVertices.
func TestGenerate_TooFewVertices(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 2} {
		_, err := polygon.Generate(n)
		assert.ErrorIs(t, err, polygon.ErrTooFewVertices, "vertexCount=%d must error", n)
	}
}

// TestGenerate_TriangleGolden pins the rounded coordinates of the
// equilateral triangle: (0,1), (−0.87,−0.5), (0.87,−0.5).
func TestGenerate_TriangleGolden(t *testing.T) {
	vs, err := polygon.Generate(3)
	require.NoError(t, err)
	require.Len(t, vs, 3)

	assert.Equal(t, 0.0, vs[0].X, "vertex 0 is fixed at (0,1)")
	assert.Equal(t, 1.0, vs[0].Y, "vertex 0 is fixed at (0,1)")
	assert.InDelta(t, -0.87, vs[1].X, 1e-12)
	assert.InDelta(t, -0.50, vs[1].Y, 1e-12)
	assert.InDelta(t, 0.87, vs[2].X, 1e-12)
	assert.InDelta(t, -0.50, vs[2].Y, 1e-12)
}

// TestGenerate_SquareGolden pins the axis-aligned square in
// counter-clockwise order: (0,1), (−1,0), (0,−1), (1,0).
func TestGenerate_SquareGolden(t *testing.T) {
	vs, err := polygon.Generate(4)
	require.NoError(t, err)
	require.Len(t, vs, 4)

	want := [][2]float64{{0, 1}, {-1, 0}, {0, -1}, {1, 0}}
	for i, w := range want {
		assert.InDelta(t, w[0], vs[i].X, 1e-12, "vertex %d x", i)
		assert.InDelta(t, w[1], vs[i].Y, 1e-12, "vertex %d y", i)
	}
}

// TestGenerate_UnitRadiusAndDistinct checks, for a range of vertex
// counts, that every vertex lies on the unit circle within rounding
// tolerance and that all vertices are pairwise distinct.
func TestGenerate_UnitRadiusAndDistinct(t *testing.T) {
	for n := 3; n <= 12; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			vs, err := polygon.Generate(n)
			require.NoError(t, err)
			require.Len(t, vs, n)

			seen := make(map[[2]float64]bool, n)
			for i, v := range vs {
				r := math.Hypot(v.X, v.Y)
				assert.InDelta(t, 1.0, r, 0.01, "vertex %d radius", i)

				key := [2]float64{v.X, v.Y}
				assert.False(t, seen[key], "vertex %d duplicates an earlier vertex", i)
				seen[key] = true
			}
		})
	}
}

// TestGenerate_RoundedToTwoDecimals verifies that every rotated vertex
// coordinate carries at most 2 decimal places.
func TestGenerate_RoundedToTwoDecimals(t *testing.T) {
	vs, err := polygon.Generate(7)
	require.NoError(t, err)

	for i, v := range vs[1:] {
		assert.InDelta(t, v.X, math.Round(v.X*100)/100, 1e-12, "vertex %d x not rounded", i+1)
		assert.InDelta(t, v.Y, math.Round(v.Y*100)/100, 1e-12, "vertex %d y not rounded", i+1)
	}
}
