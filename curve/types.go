// Package curve defines table types, curve kinds, and sentinel errors
// for space-filling curve generation.
package curve

import (
	"errors"
	"fmt"

	"github.com/jbeda/geom"
)

// Sentinel errors for curve construction and mapping.
var (
	// ErrOrderTooSmall indicates a curve order below 1.
	ErrOrderTooSmall = errors.New("curve: order must be at least 1")

	// ErrIndexRange indicates a linear index outside [0, Side²).
	ErrIndexRange = errors.New("curve: index outside the curve's range")

	// ErrUnknownKind indicates a Kind outside the closed set.
	ErrUnknownKind = errors.New("curve: unknown curve kind")
)

// Kind selects a space-filling curve family.
type Kind int

const (
	// Hilbert covers a 2^order × 2^order grid.
	Hilbert Kind = iota

	// Peano covers a 3^order × 3^order grid.
	Peano
)

// kindNames maps each Kind to its cache/display name.
var kindNames = [...]string{"hilbert", "peano"}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Table holds the full traversal order of an order-n curve over a
// Side × Side grid. Points has Side²+1 entries: index 0 is the fixed
// (0,0) head kept for parity with the reference layout, indices 1..Side²
// are the computed traversal (the entry at index 1 is the origin cell
// again). Immutable once constructed.
type Table struct {
	Kind   Kind
	Order  int
	Side   int
	Points []geom.Coord
}

// New builds the table for the given curve kind and order.
//
// Errors: ErrUnknownKind, ErrOrderTooSmall.
func New(kind Kind, order int) (*Table, error) {
	switch kind {
	case Hilbert:
		return NewHilbert(order)
	case Peano:
		return NewPeano(order)
	default:
		return nil, fmt.Errorf("%w: Kind(%d)", ErrUnknownKind, int(kind))
	}
}
