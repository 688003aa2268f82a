// SPDX-License-Identifier: MIT

package cell

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// SuperCell retains a unit cell and its enumerated periodic images.
//
// The lattice vectors (and thus the volume) never change after construction;
// every transform returns a new *SuperCell. The supercell counts (nsc) and the
// derived image offsets are mutable through SetNsc/SetNscAxes, and such a
// mutation is observed by every owner sharing the pointer. Version increments
// on each successful mutation so owners can notice it.
//
// SuperCell is safe for concurrent use; reads return copies.
type SuperCell struct {
	cell    Cell    // immutable lattice vectors
	vol     float64 // |cell[0]·(cell[1]×cell[2])|
	orthTol float64 // IsOrthogonal tolerance

	mu      sync.RWMutex
	nsc     Nsc
	nS      int      // nsc product
	scOff   []Offset // nS rows, row 0 = (0,0,0)
	version uint64
}

// New builds a SuperCell from explicit lattice vectors.
// Stage 1 (Validate): reject non-finite components.
// Stage 2 (Prepare): compute the volume.
// Stage 3 (Finalize): apply nsc from options (odd, 0 coerced to 1).
// Returns ErrNaNInf, ErrEvenNsc or ErrNegativeNsc, wrapped with context.
func New(c Cell, opts ...Option) (*SuperCell, error) {
	if !c.finite() {
		return nil, scErrorf("New", ErrNaNInf)
	}
	o := gatherOptions(opts...)
	n, err := normalizeNsc(o.nsc)
	if err != nil {
		return nil, scErrorf("New", err)
	}

	return derive(c, n, o.orthTol), nil
}

// NewFromParams builds a SuperCell from 1, 3 or 6 scalars (see ToCell).
func NewFromParams(params []float64, opts ...Option) (*SuperCell, error) {
	c, err := ToCell(params...)
	if err != nil {
		return nil, scErrorf("NewFromParams", err)
	}

	return New(c, opts...)
}

// NewFromMatrix builds a SuperCell from a 3×3 matrix whose rows are the
// lattice vectors.
func NewFromMatrix(m mat.Matrix, opts ...Option) (*SuperCell, error) {
	c, err := CellFromMatrix(m)
	if err != nil {
		return nil, scErrorf("NewFromMatrix", err)
	}

	return New(c, opts...)
}

// Default returns the 1×1×1 unit cell without periodic images.
func Default() *SuperCell {
	return derive(Unit(), Nsc{1, 1, 1}, DefaultOrthogonalTol)
}

// derive builds a SuperCell from already validated inputs.
func derive(c Cell, nsc Nsc, tol float64) *SuperCell {
	sc := &SuperCell{cell: c, vol: c.Volume(), orthTol: tol}
	sc.applyNsc(nsc)

	return sc
}

// normalizeNsc coerces zero counts to 1 and rejects negative or even counts.
func normalizeNsc(n Nsc) (Nsc, error) {
	for i := range n {
		switch {
		case n[i] < 0:
			return n, fmt.Errorf("axis %d = %d: %w", i, n[i], ErrNegativeNsc)
		case n[i] == 0:
			n[i] = 1
		case n[i]%2 == 0:
			return n, fmt.Errorf("axis %d = %d: %w", i, n[i], ErrEvenNsc)
		}
	}

	return n, nil
}

// SetNsc sets the number of supercells along each lattice vector and
// regenerates the image offsets. Zero counts become 1; negative or even
// counts return an error and leave the SuperCell unchanged.
func (sc *SuperCell) SetNsc(nsc Nsc) error {
	n, err := normalizeNsc(nsc)
	if err != nil {
		return scErrorf("SetNsc", err)
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.applyNsc(n)
	sc.version++

	return nil
}

// SetNscAxes overrides individual axes; a zero argument keeps that axis as is.
func (sc *SuperCell) SetNscAxes(a, b, c int) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	n := sc.nsc
	for i, v := range [3]int{a, b, c} {
		if v != 0 {
			n[i] = v
		}
	}
	n, err := normalizeNsc(n)
	if err != nil {
		return scErrorf("SetNscAxes", err)
	}
	sc.applyNsc(n)
	sc.version++

	return nil
}

// applyNsc stores n and enumerates offsets. Caller holds the write lock
// (or owns sc exclusively).
func (sc *SuperCell) applyNsc(n Nsc) {
	sc.nsc = n
	sc.nS = n.Product()
	sc.scOff = enumerateOffsets(n)
}

// enumerateOffsets lists every image in [-⌊n/2⌋, ⌊n/2⌋]³ with (0,0,0) first
// and the rest in z-outer, y-middle, x-inner order.
// Complexity: O(n_s).
func enumerateOffsets(n Nsc) []Offset {
	out := make([]Offset, 1, n.Product())
	hx, hy, hz := n[0]/2, n[1]/2, n[2]/2
	for iz := -hz; iz <= hz; iz++ {
		for iy := -hy; iy <= hy; iy++ {
			for ix := -hx; ix <= hx; ix++ {
				if ix == 0 && iy == 0 && iz == 0 {
					continue
				}
				out = append(out, Offset{ix, iy, iz})
			}
		}
	}

	return out
}

// Cell returns a copy of the lattice vectors.
func (sc *SuperCell) Cell() Cell {
	return sc.cell
}

// Vol returns the cell volume.
func (sc *SuperCell) Vol() float64 {
	return sc.vol
}

// Nsc returns the number of supercells along each lattice vector.
func (sc *SuperCell) Nsc() Nsc {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	return sc.nsc
}

// NS returns the total number of cells (primary plus images).
func (sc *SuperCell) NS() int {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	return sc.nS
}

// ScOff returns a copy of the image offsets.
func (sc *SuperCell) ScOff() []Offset {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	out := make([]Offset, len(sc.scOff))
	copy(out, sc.scOff)

	return out
}

// Version counts successful nsc mutations on this instance.
func (sc *SuperCell) Version() uint64 {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	return sc.version
}

// Dense returns the lattice vectors as a 3×3 gonum matrix.
func (sc *SuperCell) Dense() *mat.Dense {
	return sc.cell.Dense()
}

// Copy returns an independent clone with the same vectors and nsc.
// The clone starts at version 0.
func (sc *SuperCell) Copy() *SuperCell {
	return derive(sc.cell, sc.Nsc(), sc.orthTol)
}

// Equal reports whether both cells agree within tol and carry the same nsc.
func (sc *SuperCell) Equal(o *SuperCell, tol float64) bool {
	if sc == nil || o == nil {
		return sc == o
	}

	return sc.Nsc() == o.Nsc() && sc.cell.EqualApprox(o.cell, tol)
}

// String implements fmt.Stringer, e.g. "SuperCell[3 3 1]".
func (sc *SuperCell) String() string {
	n := sc.Nsc()

	return fmt.Sprintf("SuperCell[%d %d %d]", n[0], n[1], n[2])
}
