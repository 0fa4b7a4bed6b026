package polygon_test

import (
	"testing"

	"github.com/katalvlaran/fractal/polygon"
)

// benchmarkGenerate runs Generate for a fixed vertex count.
func benchmarkGenerate(b *testing.B, n int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := polygon.Generate(n); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerate_Triangle benchmarks the smallest polygon.
func BenchmarkGenerate_Triangle(b *testing.B) { benchmarkGenerate(b, 3) }

// BenchmarkGenerate_Dodecagon benchmarks a 12-gon.
func BenchmarkGenerate_Dodecagon(b *testing.B) { benchmarkGenerate(b, 12) }

// BenchmarkGenerate_Large benchmarks a 1000-gon.
func BenchmarkGenerate_Large(b *testing.B) { benchmarkGenerate(b, 1000) }
