// Package chaos - RNG policy for the engine.
//
// Goals:
//   - Determinism: same seed ⇒ identical point sequences across platforms.
//   - Encapsulation: one RNG per engine; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each engine owns its RNG; share
//     nothing across goroutines, or inject externally synchronized sources.
package chaos

import "math/rand"

// defaultSeed is the fixed “zero” seed used when callers pass Seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}
