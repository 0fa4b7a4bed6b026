// Package chaos defines rules, options, and sentinel errors
// for the chaos-game engine.
package chaos

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fractal/polygon"
)

// Sentinel errors for engine configuration and execution.
var (
	// ErrTooFewVertices is returned when the vertex count cannot form a
	// polygon. It doubles as the non-termination guard: rejection sampling
	// under neighbor-exclusion rules needs at least 3 candidate vertices.
	ErrTooFewVertices = errors.New("chaos: vertex count must be at least 3")

	// ErrUnknownRule is returned for a rule outside R0..R4.
	ErrUnknownRule = errors.New("chaos: unknown rule")

	// ErrBadIterations is returned for a negative iteration count.
	ErrBadIterations = errors.New("chaos: iteration count must be non-negative")

	// ErrBadConfig is returned when a YAML configuration cannot be decoded.
	ErrBadConfig = errors.New("chaos: malformed configuration")
)

// Rule selects the vertex-exclusion constraint applied to each newly
// sampled vertex index. The set is closed; values outside R0..R4 are
// rejected at construction with ErrUnknownRule.
type Rule int

const (
	// R0 applies no restriction.
	R0 Rule = iota

	// R1 forbids choosing the same vertex as the previous iteration.
	R1

	// R2 forbids the anti-clockwise neighbor of the previous vertex,
	// i.e. (prev + n − 1) mod n.
	R2

	// R3 forbids the clockwise neighbor of the previous vertex,
	// i.e. (prev + 1) mod n.
	R3

	// R4 forbids both neighbors of the previous vertex, but only when the
	// two most recent chosen indices were equal to each other.
	R4
)

// ruleCount bounds the closed rule set.
const ruleCount = 5

// ruleNames maps each Rule to its canonical configuration name.
var ruleNames = [ruleCount]string{"r0", "r1", "r2", "r3", "r4"}

// String returns the canonical lowercase name ("r0".."r4").
func (r Rule) String() string {
	if !r.valid() {
		return fmt.Sprintf("Rule(%d)", int(r))
	}

	return ruleNames[r]
}

// valid reports whether r is inside the closed rule set.
func (r Rule) valid() bool {
	return r >= R0 && r < ruleCount
}

// HistoryDepth returns the trailing window of previously chosen indices
// the rule's constraint reads: 0 (R0), 1 (R1..R3), or 2 (R4).
// Out-of-range rules report 0.
func (r Rule) HistoryDepth() int {
	if !r.valid() {
		return 0
	}

	return ruleTable[r].arity
}

// ParseRule maps a rule name such as "r1" (case-insensitive) to its Rule.
// Unknown names yield ErrUnknownRule.
func ParseRule(s string) (Rule, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range ruleNames {
		if name == n {
			return Rule(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownRule, s)
}

// UnmarshalYAML decodes a rule from its configuration name.
func (r *Rule) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	parsed, err := ParseRule(name)
	if err != nil {
		return err
	}
	*r = parsed

	return nil
}

// MarshalYAML encodes the rule as its configuration name.
func (r Rule) MarshalYAML() (interface{}, error) {
	if !r.valid() {
		return nil, fmt.Errorf("%w: Rule(%d)", ErrUnknownRule, int(r))
	}

	return r.String(), nil
}

// ruleDef pairs an exclusion predicate with the history depth it reads.
// excludes reports whether candidate must be rejected and resampled, given
// the previous two accepted indices (negative sentinels before any choice).
type ruleDef struct {
	arity    int
	excludes func(candidate, prev, prev2, n int) bool
}

// ruleTable dispatches rules without string comparison; indexing by Rule
// keeps the set exhaustively covered at compile time.
var ruleTable = [ruleCount]ruleDef{
	R0: {arity: 0, excludes: excludeNone},
	R1: {arity: 1, excludes: excludeRepeat},
	R2: {arity: 1, excludes: excludeAntiClockwise},
	R3: {arity: 1, excludes: excludeClockwise},
	R4: {arity: 2, excludes: excludeNeighborsAfterRepeat},
}

func excludeNone(_, _, _, _ int) bool { return false }

func excludeRepeat(candidate, prev, _, _ int) bool {
	return candidate == prev
}

func excludeAntiClockwise(candidate, prev, _, n int) bool {
	if prev < 0 {
		return false
	}

	return candidate == (prev+n-1)%n
}

func excludeClockwise(candidate, prev, _, n int) bool {
	if prev < 0 {
		return false
	}

	return candidate == (prev+1)%n
}

func excludeNeighborsAfterRepeat(candidate, prev, prev2, n int) bool {
	if prev < 0 || prev != prev2 {
		return false
	}

	return candidate == (prev+n-1)%n || candidate == (prev+1)%n
}

// Default construction parameters.
const (
	// DefaultVertexCount is the smallest legal boundary, a triangle.
	DefaultVertexCount = 3

	// DefaultRatio reproduces the classic midpoint step.
	DefaultRatio = 0.5
)

// Options configures a chaos-game engine.
type Options struct {
	// VertexCount is the number of polygon vertices (≥ 3).
	VertexCount int

	// Rule selects the vertex-exclusion rule R0..R4.
	Rule Rule

	// Ratio controls the contraction step. With Interpolate=false the next
	// point is (current + vertex) · Ratio — the historical scaled-sum
	// formula, which equals the true midpoint only at Ratio=0.5.
	Ratio float64

	// Interpolate switches the step to a genuine linear interpolation
	// toward the chosen vertex: current + Ratio · (vertex − current).
	// Off by default to keep output parity with the scaled-sum formula.
	Interpolate bool

	// Seed seeds the engine-owned RNG. Seed==0 selects a fixed default
	// seed, so the zero value is still deterministic.
	Seed int64

	// Rand, if non-nil, overrides Seed as the randomness source.
	// math/rand.Rand is NOT goroutine-safe; do not share one across
	// concurrently running engines.
	Rand *rand.Rand

	// OnChoose, if non-nil, is called with each accepted vertex index,
	// after rejection sampling. Rejected candidates are not reported.
	OnChoose func(index int)
}

// DefaultOptions returns Options for the classic Sierpinski setup:
// triangle boundary, no restriction, midpoint ratio, deterministic seed.
func DefaultOptions() Options {
	return Options{
		VertexCount: DefaultVertexCount,
		Rule:        R0,
		Ratio:       DefaultRatio,
	}
}

// validate rejects configurations that cannot produce a working engine.
func (o *Options) validate() error {
	if o.VertexCount < polygon.MinVertices {
		return ErrTooFewVertices
	}
	if !o.Rule.valid() {
		return fmt.Errorf("%w: Rule(%d)", ErrUnknownRule, int(o.Rule))
	}

	return nil
}
