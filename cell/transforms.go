// SPDX-License-Identifier: MIT

package cell

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lattice/quaternion"
)

// Every transform below leaves the receiver untouched and returns a new
// SuperCell carrying the receiver's nsc at call time.

// Rotate returns the cell rotated by angle about axis. If degree is true,
// angle is in degrees. The quaternion is renormalized before use.
// Returns quaternion.ErrZeroAxis / ErrNaNInf on a bad axis or angle.
func (sc *SuperCell) Rotate(angle float64, axis r3.Vec, degree bool) (*SuperCell, error) {
	q, err := quaternion.New(angle, axis, degree)
	if err != nil {
		return nil, scErrorf("Rotate", err)
	}
	q = q.Normalize()
	var c Cell
	for i, v := range sc.cell {
		c[i] = q.Rotate(v)
	}

	return derive(c, sc.Nsc(), sc.orthTol), nil
}

// Cut divides the lattice vector along axis by seps, i.e. the cell of one
// of seps equal slices.
func (sc *SuperCell) Cut(seps, axis int) (*SuperCell, error) {
	if err := validateAxis(axis); err != nil {
		return nil, scErrorf("Cut", err)
	}
	if seps < 1 {
		return nil, scErrorf("Cut", ErrBadSeps)
	}
	c := sc.cell
	c[axis] = r3.Scale(1/float64(seps), c[axis])

	return derive(c, sc.Nsc(), sc.orthTol), nil
}

// Tile repeats the cell reps times along axis: the axis vector is scaled
// by reps.
func (sc *SuperCell) Tile(reps, axis int) (*SuperCell, error) {
	if err := validateAxis(axis); err != nil {
		return nil, scErrorf("Tile", err)
	}
	if reps < 1 {
		return nil, scErrorf("Tile", ErrBadReps)
	}
	c := sc.cell
	c[axis] = r3.Scale(float64(reps), c[axis])

	return derive(c, sc.Nsc(), sc.orthTol), nil
}

// Append concatenates other along axis: the axis vector becomes the sum of
// both cells' axis vectors. The other two vectors and nsc come from sc.
func (sc *SuperCell) Append(other *SuperCell, axis int) (*SuperCell, error) {
	if other == nil {
		return nil, scErrorf("Append", ErrNilSuperCell)
	}
	if err := validateAxis(axis); err != nil {
		return nil, scErrorf("Append", err)
	}
	c := sc.cell
	c[axis] = r3.Add(c[axis], other.cell[axis])

	return derive(c, sc.Nsc(), sc.orthTol), nil
}

// Translate adds v to the lattice vector most nearly parallel to it,
// scored by |cell[i]·v| / |cell[i]|. Ties resolve to the lowest index.
// This is a best-effort heuristic, not a canonical choice.
// Returns ErrNaNInf when v has a NaN or infinite component.
func (sc *SuperCell) Translate(v r3.Vec) (*SuperCell, error) {
	if !finiteVec(v) {
		return nil, scErrorf("Translate", ErrNaNInf)
	}
	c := sc.cell
	p := make([]float64, 3)
	for i, ci := range c {
		p[i] = math.Abs(r3.Dot(ci, v)) / r3.Norm(ci)
		if math.IsNaN(p[i]) {
			p[i] = math.Inf(-1)
		}
	}
	i := floats.MaxIdx(p)
	c[i] = r3.Add(c[i], v)

	return derive(c, sc.Nsc(), sc.orthTol), nil
}

// SwapAxes exchanges lattice vectors a and b together with their nsc entries.
func (sc *SuperCell) SwapAxes(a, b int) (*SuperCell, error) {
	if err := validateAxis(a); err != nil {
		return nil, scErrorf("SwapAxes", err)
	}
	if err := validateAxis(b); err != nil {
		return nil, scErrorf("SwapAxes", err)
	}
	c, n := sc.cell, sc.Nsc()
	c[a], c[b] = c[b], c[a]
	n[a], n[b] = n[b], n[a]

	return derive(c, n, sc.orthTol), nil
}
