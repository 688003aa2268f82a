// SPDX-License-Identifier: MIT

package cell

import (
	"reflect"

	"gonum.org/v1/gonum/spatial/r3"
)

// HasSuperCell is implemented by every cell-bearing entity. Embedding Child
// provides both methods.
type HasSuperCell interface {
	// SuperCell returns the attached cell (never nil).
	SuperCell() *SuperCell
	// InstallSuperCell stores sc on this entity only, without recursion.
	InstallSuperCell(sc *SuperCell)
}

// Parent is a cell-bearing entity that owns nested cell-bearing entities.
// CellChildren lists them explicitly; Attach walks this list. Implementations
// leave unset children out of the list rather than returning typed nils.
type Parent interface {
	HasSuperCell
	CellChildren() []HasSuperCell
}

// Child gives an embedding type delegated access to a shared SuperCell.
//
// The zero value is ready to use and resolves to a default 1×1×1 cell on
// first access. Child holds a reference, not a copy: two entities attached
// to the same *SuperCell observe each other's SetNsc calls.
type Child struct {
	sc *SuperCell
}

// SuperCell returns the attached cell, installing Default() if none is set.
func (c *Child) SuperCell() *SuperCell {
	if c.sc == nil {
		c.sc = Default()
	}

	return c.sc
}

// InstallSuperCell stores sc; nil installs a fresh Default().
func (c *Child) InstallSuperCell(sc *SuperCell) {
	if sc == nil {
		sc = Default()
	}
	c.sc = sc
}

// Vol forwards to SuperCell().Vol.
func (c *Child) Vol() float64 { return c.SuperCell().Vol() }

// Cell forwards to SuperCell().Cell.
func (c *Child) Cell() Cell { return c.SuperCell().Cell() }

// RCell forwards to SuperCell().RCell.
func (c *Child) RCell() Cell { return c.SuperCell().RCell() }

// NS forwards to SuperCell().NS.
func (c *Child) NS() int { return c.SuperCell().NS() }

// Nsc forwards to SuperCell().Nsc.
func (c *Child) Nsc() Nsc { return c.SuperCell().Nsc() }

// ScOff forwards to SuperCell().ScOff.
func (c *Child) ScOff() []Offset { return c.SuperCell().ScOff() }

// SetNsc forwards to SuperCell().SetNsc; the change is visible to every
// other owner of the same SuperCell.
func (c *Child) SetNsc(nsc Nsc) error { return c.SuperCell().SetNsc(nsc) }

// ScIndex forwards to SuperCell().ScIndex.
func (c *Child) ScIndex(off Offset) (int, error) { return c.SuperCell().ScIndex(off) }

// IsOrthogonal forwards to SuperCell().IsOrthogonal.
func (c *Child) IsOrthogonal() bool { return c.SuperCell().IsOrthogonal() }

// ImageOffset forwards to SuperCell().Offset.
func (c *Child) ImageOffset(isc Offset) r3.Vec { return c.SuperCell().Offset(isc) }

// Attach installs sc on owner and, recursively, on every nested entity
// listed by owner's CellChildren (when owner is a Parent). A nil sc installs
// a fresh default cell which is then shared with the children. Nil children
// are skipped.
func Attach(owner HasSuperCell, sc *SuperCell) {
	if owner == nil {
		return
	}
	if sc == nil {
		sc = Default()
	}
	attach(owner, sc, make(map[HasSuperCell]struct{}))
}

// attach walks the child graph once per entity; seen guards against cycles.
// Owners that cannot be map keys (slice- or map-backed types) are not
// tracked, so a cycle through such an owner is the caller's problem.
func attach(owner HasSuperCell, sc *SuperCell, seen map[HasSuperCell]struct{}) {
	if reflect.ValueOf(owner).Comparable() {
		if _, ok := seen[owner]; ok {
			return
		}
		seen[owner] = struct{}{}
	}
	owner.InstallSuperCell(sc)
	p, ok := owner.(Parent)
	if !ok {
		return
	}
	for _, ch := range p.CellChildren() {
		if ch == nil {
			continue
		}
		attach(ch, sc, seen)
	}
}

// AttachCell wraps c in a new SuperCell (nsc 1×1×1) and attaches it.
func AttachCell(owner HasSuperCell, c Cell) error {
	sc, err := New(c)
	if err != nil {
		return err
	}
	Attach(owner, sc)

	return nil
}

// AttachParams decodes params with ToCell and attaches the result.
func AttachParams(owner HasSuperCell, params ...float64) error {
	sc, err := NewFromParams(params)
	if err != nil {
		return err
	}
	Attach(owner, sc)

	return nil
}
