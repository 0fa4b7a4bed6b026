package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fractal/curve"
)

// collectSteps drains a walk into a direction slice.
func collectSteps(w *curve.Walk) []curve.Dir {
	var dirs []curve.Dir
	for {
		d, ok := w.Next()
		if !ok {
			return dirs
		}
		dirs = append(dirs, d)
	}
}

// TestSteps_HilbertOrderOne pins the order-1 Hilbert stroke: up, right, down.
func TestSteps_HilbertOrderOne(t *testing.T) {
	tab, err := curve.NewHilbert(1)
	require.NoError(t, err)

	dirs := collectSteps(tab.Steps())
	assert.Equal(t, []curve.Dir{curve.Up, curve.Right, curve.Down}, dirs)
}

// TestSteps_PeanoOrderOne pins the order-1 Peano serpentine:
// up, up, right, down, down, right, up, up.
func TestSteps_PeanoOrderOne(t *testing.T) {
	tab, err := curve.NewPeano(1)
	require.NoError(t, err)

	want := []curve.Dir{
		curve.Up, curve.Up, curve.Right,
		curve.Down, curve.Down, curve.Right,
		curve.Up, curve.Up,
	}
	assert.Equal(t, want, collectSteps(tab.Steps()))
}

// TestSteps_TerminatesAtCompletion verifies the walk yields exactly
// Side²−1 steps and then stays exhausted.
func TestSteps_TerminatesAtCompletion(t *testing.T) {
	tab, err := curve.NewHilbert(3)
	require.NoError(t, err)

	w := tab.Steps()
	dirs := collectSteps(w)
	assert.Len(t, dirs, tab.Side*tab.Side-1)
	assert.Zero(t, w.Remaining())

	_, ok := w.Next()
	assert.False(t, ok, "an exhausted walk must stay exhausted")
}

// TestSteps_Reset verifies the walk is restartable and replays the same
// directions.
func TestSteps_Reset(t *testing.T) {
	tab, err := curve.NewHilbert(2)
	require.NoError(t, err)

	w := tab.Steps()
	first := collectSteps(w)

	w.Reset()
	assert.Equal(t, tab.Side*tab.Side-1, w.Remaining())
	assert.Equal(t, first, collectSteps(w), "a reset walk must replay identically")
}

// TestDir_String covers direction names.
func TestDir_String(t *testing.T) {
	assert.Equal(t, "up", curve.Up.String())
	assert.Equal(t, "down", curve.Down.String())
	assert.Equal(t, "left", curve.Left.String())
	assert.Equal(t, "right", curve.Right.String())
	assert.Equal(t, "Dir(?)", curve.Dir(9).String())
}
