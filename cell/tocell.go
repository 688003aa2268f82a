// SPDX-License-Identifier: MIT

package cell

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// ToCell decodes a scalar cell specification into lattice vectors.
//
// Accepted forms:
//   - 1 value  a:                  cubic cell diag(a, a, a).
//   - 3 values a, b, c:            orthogonal box diag(a, b, c).
//   - 6 values a, b, c, α, β, γ:   cell parameters, angles in degrees.
//
// Any other count returns ErrBadCellSpec.
// Complexity: O(1).
func ToCell(params ...float64) (Cell, error) {
	var c Cell
	switch len(params) {
	case 1:
		c = Diagonal(params[0], params[0], params[0])
	case 3:
		c = Diagonal(params[0], params[1], params[2])
	case 6:
		c = fromParameters(params[0], params[1], params[2], params[3], params[4], params[5])
	default:
		return Cell{}, fmt.Errorf("ToCell(%d values): %w", len(params), ErrBadCellSpec)
	}
	if !c.finite() {
		return Cell{}, fmt.Errorf("ToCell: %w", ErrNaNInf)
	}

	return c, nil
}

// fromParameters converts a, b, c, α, β, γ to vectors.
// Vector 1 lies along x, vector 2 in the xy-plane; vector 3 follows from
// d = (cos α − cos β·cos γ)/sin γ and z = c·sqrt(sin²β − d²).
func fromParameters(a, b, c, alpha, beta, gamma float64) Cell {
	const deg = math.Pi / 180

	cg, sg := math.Cos(gamma*deg), math.Sin(gamma*deg)
	cb, sb := math.Cos(beta*deg), math.Sin(beta*deg)
	ca := math.Cos(alpha * deg)
	d := (ca - cb*cg) / sg

	return Cell{
		{X: a},
		{X: b * cg, Y: b * sg},
		{X: c * cb, Y: c * d, Z: c * math.Sqrt(sb*sb-d*d)},
	}
}

// CellFromMatrix reads a 3×3 matrix (row i = vector i) into a Cell.
// Returns ErrBadShape for any other shape and ErrNaNInf for non-finite entries.
func CellFromMatrix(m mat.Matrix) (Cell, error) {
	if m == nil {
		return Cell{}, fmt.Errorf("CellFromMatrix: %w", ErrBadShape)
	}
	r, cols := m.Dims()
	if r != 3 || cols != 3 {
		return Cell{}, fmt.Errorf("CellFromMatrix(%dx%d): %w", r, cols, ErrBadShape)
	}
	var c Cell
	for i := 0; i < 3; i++ {
		c[i] = r3.Vec{X: m.At(i, 0), Y: m.At(i, 1), Z: m.At(i, 2)}
	}
	if !c.finite() {
		return Cell{}, fmt.Errorf("CellFromMatrix: %w", ErrNaNInf)
	}

	return c, nil
}
