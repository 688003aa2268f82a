package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lattice/atom"
	"github.com/katalvlaran/lattice/cell"
	"github.com/katalvlaran/lattice/quaternion"
)

// cutTol absorbs rounding when classifying atoms into slices in Cut.
const cutTol = 1e-8

// Geometry is a set of atoms placed in a periodic cell.
type Geometry struct {
	cell.Child
	xyz   []r3.Vec
	atoms []atom.Atom
}

// New builds a Geometry. atoms holds either one species shared by every
// position or exactly one species per position. A nil sc attaches the
// default 1×1×1 cell; otherwise sc is shared, not copied.
// Complexity: O(NA).
func New(xyz []r3.Vec, atoms []atom.Atom, sc *cell.SuperCell) (*Geometry, error) {
	na := len(xyz)
	var sp []atom.Atom
	switch {
	case len(atoms) == na:
		sp = make([]atom.Atom, na)
		copy(sp, atoms)
	case len(atoms) == 1:
		sp = make([]atom.Atom, na)
		for i := range sp {
			sp[i] = atoms[0]
		}
	default:
		return nil, fmt.Errorf("New(%d positions, %d atoms): %w", na, len(atoms), ErrAtomCount)
	}
	pos := make([]r3.Vec, na)
	copy(pos, xyz)
	g := &Geometry{xyz: pos, atoms: sp}
	cell.Attach(g, sc)

	return g, nil
}

// NA returns the number of atoms.
func (g *Geometry) NA() int {
	return len(g.xyz)
}

// XYZ returns a copy of the atomic positions in the primary cell.
func (g *Geometry) XYZ() []r3.Vec {
	out := make([]r3.Vec, len(g.xyz))
	copy(out, g.xyz)

	return out
}

// Atoms returns a copy of the per-atom species.
func (g *Geometry) Atoms() []atom.Atom {
	out := make([]atom.Atom, len(g.atoms))
	copy(out, g.atoms)

	return out
}

// Atom returns the species of atom ia.
func (g *Geometry) Atom(ia int) (atom.Atom, error) {
	if ia < 0 || ia >= len(g.atoms) {
		return atom.Atom{}, fmt.Errorf("Atom(%d): %w", ia, ErrAtomIndex)
	}

	return g.atoms[ia], nil
}

// Axyz returns the position of atom ia in periodic image isc.
func (g *Geometry) Axyz(ia int, isc cell.Offset) (r3.Vec, error) {
	if ia < 0 || ia >= len(g.xyz) {
		return r3.Vec{}, fmt.Errorf("Axyz(%d): %w", ia, ErrAtomIndex)
	}

	return r3.Add(g.xyz[ia], g.ImageOffset(isc)), nil
}

// Center returns the arithmetic mean of the atomic positions.
// An empty geometry returns the zero vector.
func (g *Geometry) Center() r3.Vec {
	var s r3.Vec
	if len(g.xyz) == 0 {
		return s
	}
	for _, v := range g.xyz {
		s = r3.Add(s, v)
	}

	return r3.Scale(1/float64(len(g.xyz)), s)
}

// Copy returns an independent geometry with its own SuperCell copy.
func (g *Geometry) Copy() *Geometry {
	return g.with(g.XYZ(), g.Atoms(), g.SuperCell().Copy())
}

// Move shifts every atom by v. The cell is untouched and stays shared.
func (g *Geometry) Move(v r3.Vec) *Geometry {
	xyz := g.XYZ()
	for i := range xyz {
		xyz[i] = r3.Add(xyz[i], v)
	}

	return g.with(xyz, g.Atoms(), g.SuperCell())
}

// Rotate rotates atoms and lattice vectors by angle about axis.
func (g *Geometry) Rotate(angle float64, axis r3.Vec, degree bool) (*Geometry, error) {
	sc, err := g.SuperCell().Rotate(angle, axis, degree)
	if err != nil {
		return nil, fmt.Errorf("Geometry.Rotate: %w", err)
	}
	q, err := quaternion.New(angle, axis, degree)
	if err != nil {
		return nil, fmt.Errorf("Geometry.Rotate: %w", err)
	}

	return g.with(q.Normalize().RotateAll(g.xyz), g.Atoms(), sc), nil
}

// Tile repeats the geometry reps times along axis; the axis lattice vector
// is multiplied by reps through SuperCell.Tile. Atoms of repetition r are
// shifted by r*cell[axis].
// Complexity: O(NA·reps).
func (g *Geometry) Tile(reps, axis int) (*Geometry, error) {
	if reps < 1 {
		return nil, fmt.Errorf("Geometry.Tile: %w", ErrBadReps)
	}
	sc, err := g.SuperCell().Tile(reps, axis)
	if err != nil {
		return nil, fmt.Errorf("Geometry.Tile: %w", err)
	}
	c := g.Cell()
	xyz := make([]r3.Vec, 0, reps*g.NA())
	sp := make([]atom.Atom, 0, reps*g.NA())
	for r := 0; r < reps; r++ {
		shift := r3.Scale(float64(r), c[axis])
		for i, v := range g.xyz {
			xyz = append(xyz, r3.Add(v, shift))
			sp = append(sp, g.atoms[i])
		}
	}

	return g.with(xyz, sp, sc), nil
}

// Cut keeps the atoms of the first of seps equal slices along axis and
// shrinks the cell accordingly. Atoms are classified by their fractional
// coordinate along axis, RCell()[axis]·xyz.
func (g *Geometry) Cut(seps, axis int) (*Geometry, error) {
	sc, err := g.SuperCell().Cut(seps, axis)
	if err != nil {
		return nil, fmt.Errorf("Geometry.Cut: %w", err)
	}
	rc := g.RCell()
	limit := 1/float64(seps) - cutTol
	var xyz []r3.Vec
	var sp []atom.Atom
	for i, v := range g.xyz {
		if r3.Dot(rc[axis], v) < limit {
			xyz = append(xyz, v)
			sp = append(sp, g.atoms[i])
		}
	}

	return g.with(xyz, sp, sc), nil
}

// Append concatenates other along axis. other's atoms are shifted by this
// geometry's axis vector and the cells are joined with SuperCell.Append.
func (g *Geometry) Append(other *Geometry, axis int) (*Geometry, error) {
	if other == nil {
		return nil, fmt.Errorf("Geometry.Append: %w", ErrNilGeometry)
	}
	sc, err := g.SuperCell().Append(other.SuperCell(), axis)
	if err != nil {
		return nil, fmt.Errorf("Geometry.Append: %w", err)
	}
	shift := g.Cell()[axis]
	xyz := g.XYZ()
	for _, v := range other.xyz {
		xyz = append(xyz, r3.Add(v, shift))
	}

	return g.with(xyz, append(g.Atoms(), other.atoms...), sc), nil
}

// with builds a Geometry without revalidating species counts.
func (g *Geometry) with(xyz []r3.Vec, sp []atom.Atom, sc *cell.SuperCell) *Geometry {
	out := &Geometry{xyz: xyz, atoms: sp}
	cell.Attach(out, sc)

	return out
}

// String implements fmt.Stringer.
func (g *Geometry) String() string {
	return fmt.Sprintf("Geometry{na: %d, %s}", g.NA(), g.SuperCell())
}
