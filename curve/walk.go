package curve

import "github.com/jbeda/geom"

// Dir is a unit grid-step direction along a curve traversal.
type Dir int

const (
	// Up increments y.
	Up Dir = iota
	// Down decrements y.
	Down
	// Left decrements x.
	Left
	// Right increments x.
	Right
)

// dirNames maps each Dir to its display name.
var dirNames = [...]string{"up", "down", "left", "right"}

// String returns the lowercase direction name.
func (d Dir) String() string {
	if d < 0 || int(d) >= len(dirNames) {
		return "Dir(?)"
	}

	return dirNames[d]
}

// Walk is a finite, restartable generator of unit grid steps along a
// curve traversal. It yields exactly Side²−1 steps — one per pair of
// consecutive cells — and terminates when the traversal is complete.
// A Walk reads the table without copying it; it is not goroutine-safe.
type Walk struct {
	points []geom.Coord
	pos    int
}

// Steps returns a Walk over t's traversal, starting at the origin cell.
// The fixed table head is skipped: steps connect the Side² computed cells.
func (t *Table) Steps() *Walk {
	return &Walk{points: t.Points[1:]}
}

// Next returns the direction of the next unit step and true, or false
// once the final cell has been reached.
func (w *Walk) Next() (Dir, bool) {
	if w.pos+1 >= len(w.points) {
		return 0, false
	}

	a, b := w.points[w.pos], w.points[w.pos+1]
	w.pos++

	switch {
	case b.Y > a.Y:
		return Up, true
	case b.Y < a.Y:
		return Down, true
	case b.X < a.X:
		return Left, true
	default:
		return Right, true
	}
}

// Reset rewinds the walk to the start of the traversal.
func (w *Walk) Reset() {
	w.pos = 0
}

// Remaining returns the number of steps not yet yielded.
func (w *Walk) Remaining() int {
	return len(w.points) - 1 - w.pos
}
