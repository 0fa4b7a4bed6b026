package chaos_test

import (
	"fmt"

	"github.com/katalvlaran/fractal/chaos"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleGame_Play
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The classic Sierpinski setup: triangle boundary, free vertex choice,
//	midpoint contraction. Two Play calls accumulate into one sequence.
//
// Options:
//   - VertexCount = 3 (triangle)
//   - Rule = R0        (no restriction)
//   - Ratio = 0.5      (midpoint)
//   - Seed = 0         (fixed default seed → reproducible run)
//
// Use case:
//
//	Scatter-plot the returned points to render the Sierpinski triangle.
//
// Complexity: O(iterations) time and memory.
func ExampleGame_Play() {
	g, err := chaos.New(chaos.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	_ = g.Play(1000)
	_ = g.Play(500)

	fmt.Println("vertices:", len(g.Vertices()))
	fmt.Println("visited:", g.Len())
	// Output:
	// vertices: 3
	// visited: 1500
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleParseConfig
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Load engine options from a YAML document, e.g. a experiment manifest
//	describing a restricted pentagon game.
//
// Use case:
//
//	Batch runs sweeping rules and ratios without recompiling.
func ExampleParseConfig() {
	doc := []byte("vertex_count: 5\nrule: r4\nseed: 7\n")

	opts, err := chaos.ParseConfig(doc)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("%d vertices, rule %s, ratio %.1f\n", opts.VertexCount, opts.Rule, opts.Ratio)
	// Output:
	// 5 vertices, rule r4, ratio 0.5
}
