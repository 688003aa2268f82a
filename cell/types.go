// SPDX-License-Identifier: MIT

// Package cell: value types shared by SuperCell and the Child capability.
package cell

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Cell holds three lattice vectors; row i is lattice vector i in Cartesian
// coordinates. Cell is a value type, so assignment copies it.
type Cell [3]r3.Vec

// Offset is an integer supercell image index along the three lattice vectors.
type Offset [3]int

// Nsc is the number of supercells along each lattice vector.
type Nsc [3]int

// Product returns nsc[0]*nsc[1]*nsc[2].
func (n Nsc) Product() int {
	return n[0] * n[1] * n[2]
}

// Diagonal builds an orthogonal cell with side lengths a, b, c.
func Diagonal(a, b, c float64) Cell {
	return Cell{{X: a}, {Y: b}, {Z: c}}
}

// Unit returns the 1×1×1 cubic cell.
func Unit() Cell {
	return Diagonal(1, 1, 1)
}

// Volume returns the unsigned triple product of the three vectors.
// Complexity: O(1).
func (c Cell) Volume() float64 {
	return math.Abs(r3.Dot(c[0], r3.Cross(c[1], c[2])))
}

// Scale returns the cell with every vector multiplied by f.
func (c Cell) Scale(f float64) Cell {
	for i := range c {
		c[i] = r3.Scale(f, c[i])
	}

	return c
}

// Flat returns the nine components in row-major order.
func (c Cell) Flat() []float64 {
	out := make([]float64, 0, 9)
	for _, v := range c {
		out = append(out, v.X, v.Y, v.Z)
	}

	return out
}

// Dense returns the cell as a 3×3 gonum matrix (row i = vector i).
func (c Cell) Dense() *mat.Dense {
	return mat.NewDense(3, 3, c.Flat())
}

// EqualApprox reports whether every component of a and b agrees within tol.
func (c Cell) EqualApprox(o Cell, tol float64) bool {
	return floats.EqualApprox(c.Flat(), o.Flat(), tol)
}

// String renders the cell one vector per row.
func (c Cell) String() string {
	var s string
	for _, v := range c {
		s += fmt.Sprintf("[%g, %g, %g]\n", v.X, v.Y, v.Z)
	}

	return s
}

// finite reports whether every component is a finite number.
func (c Cell) finite() bool {
	for _, x := range c.Flat() {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

func finiteVec(v r3.Vec) bool {
	return Cell{v}.finite()
}

// validateAxis returns ErrBadAxis unless 0 ≤ axis ≤ 2.
func validateAxis(axis int) error {
	if axis < 0 || axis > 2 {
		return ErrBadAxis
	}

	return nil
}
