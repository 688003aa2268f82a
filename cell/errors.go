// SPDX-License-Identifier: MIT
// Package cell: sentinel error set.
// All operations return these sentinels (optionally wrapped with call-site
// context via fmt.Errorf("...: %w", ErrX)); callers match with errors.Is.
// No operation panics on user-supplied input.

package cell

import (
	"errors"
	"fmt"
)

var (
	// ErrBadCellSpec is returned when a cell specification is neither
	// 1, 3 nor 6 scalars.
	ErrBadCellSpec = errors.New("cell: cell specification must have 1, 3 or 6 values")

	// ErrBadShape is returned when a matrix cell specification is not 3×3.
	ErrBadShape = errors.New("cell: cell matrix must be 3x3")

	// ErrEvenNsc signals an even supercell count along some axis.
	// The primary cell counts one, every image pair counts two.
	ErrEvenNsc = errors.New("cell: number of supercells must be odd")

	// ErrNegativeNsc signals a negative supercell count along some axis.
	ErrNegativeNsc = errors.New("cell: number of supercells must be non-negative")

	// ErrOffsetNotFound is returned by ScIndex when the queried offset lies
	// outside the configured nsc range.
	ErrOffsetNotFound = errors.New("cell: supercell offset not found, number of supercells not big enough")

	// ErrBadAxis indicates an axis index outside {0,1,2}.
	ErrBadAxis = errors.New("cell: axis must be 0, 1 or 2")

	// ErrBadSeps indicates a non-positive number of sections for Cut.
	ErrBadSeps = errors.New("cell: number of sections must be >= 1")

	// ErrBadReps indicates a non-positive repetition count for Tile.
	ErrBadReps = errors.New("cell: number of repetitions must be >= 1")

	// ErrNilSuperCell indicates a nil *SuperCell operand.
	ErrNilSuperCell = errors.New("cell: nil supercell")

	// ErrNaNInf signals a NaN or ±Inf cell component.
	ErrNaNInf = errors.New("cell: NaN or Inf in cell")
)

// scErrorf wraps an underlying error with SuperCell method context.
func scErrorf(method string, err error) error {
	return fmt.Errorf("SuperCell.%s: %w", method, err)
}
