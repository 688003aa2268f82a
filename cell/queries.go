// SPDX-License-Identifier: MIT

package cell

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// RCell returns the reciprocal cell.
//
// Row i is the cross product of the other two direct vectors normalized by
// its dot product with direct vector i, so RCell()[i]·Cell()[i] == 1 and
// RCell()[i]·Cell()[j] == 0 for i != j. No 2π factor is applied.
// Complexity: O(1).
func (sc *SuperCell) RCell() Cell {
	c := sc.cell
	var rc Cell
	for i := 0; i < 3; i++ {
		v := r3.Cross(c[(i+1)%3], c[(i+2)%3])
		rc[i] = r3.Scale(1/r3.Dot(v, c[i]), v)
	}

	return rc
}

// Offset returns the Cartesian displacement of image isc:
// isc[0]*cell[0] + isc[1]*cell[1] + isc[2]*cell[2].
func (sc *SuperCell) Offset(isc Offset) r3.Vec {
	var out r3.Vec
	for i, n := range isc {
		out = r3.Add(out, r3.Scale(float64(n), sc.cell[i]))
	}

	return out
}

// ScIndex returns the row of ScOff() equal to off.
// Returns ErrOffsetNotFound when nsc is too small to contain off.
// Complexity: O(n_s); n_s is small (27 for a 3×3×3 supercell).
func (sc *SuperCell) ScIndex(off Offset) (int, error) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	for i, o := range sc.scOff {
		if o == off {
			return i, nil
		}
	}

	return 0, scErrorf("ScIndex", fmt.Errorf("%v with nsc %v: %w", off, sc.nsc, ErrOffsetNotFound))
}

// Center returns the centroid of the cell, half the sum of all vectors.
func (sc *SuperCell) Center() r3.Vec {
	c := sc.cell

	return r3.Scale(0.5, r3.Add(r3.Add(c[0], c[1]), c[2]))
}

// CenterAxis returns half of the lattice vector along axis.
func (sc *SuperCell) CenterAxis(axis int) (r3.Vec, error) {
	if err := validateAxis(axis); err != nil {
		return r3.Vec{}, scErrorf("CenterAxis", err)
	}

	return r3.Scale(0.5, sc.cell[axis]), nil
}

// IsOrthogonal reports whether every pair of lattice vectors is orthogonal,
// i.e. |cos θ| below the configured tolerance (DefaultOrthogonalTol).
// A zero-length vector has no direction and is never orthogonal.
func (sc *SuperCell) IsOrthogonal() bool {
	var u Cell
	for i, v := range sc.cell {
		u[i] = r3.Unit(v)
	}
	for _, p := range [3][2]int{{0, 1}, {0, 2}, {1, 2}} {
		if !(math.Abs(r3.Dot(u[p[0]], u[p[1]])) < sc.orthTol) {
			return false
		}
	}

	return true
}
