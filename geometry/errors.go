package geometry

import "errors"

var (
	// ErrAtomCount indicates the atoms slice is neither length 1 nor one per position.
	ErrAtomCount = errors.New("geometry: atoms must have length 1 or one entry per position")
	// ErrAtomIndex indicates an atom index outside [0, NA).
	ErrAtomIndex = errors.New("geometry: atom index out of range")
	// ErrBadReps indicates a non-positive repetition count.
	ErrBadReps = errors.New("geometry: repetitions must be >= 1")
	// ErrNilGeometry indicates a nil *Geometry operand.
	ErrNilGeometry = errors.New("geometry: nil geometry")
	// ErrGridShape indicates a non-positive grid dimension.
	ErrGridShape = errors.New("geometry: grid dimensions must be > 0")
	// ErrGridIndex indicates a grid index outside the grid shape.
	ErrGridIndex = errors.New("geometry: grid index out of range")
)
