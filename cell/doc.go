// Package cell models a periodic unit cell together with its replicated
// neighbor images (a "supercell").
//
// What:
//
//   - SuperCell holds three lattice vectors, the cell volume, the number of
//     supercells along each vector (nsc, always odd) and the enumerated
//     image offsets (sc_off, primary cell first).
//   - Cells are built from explicit vectors (New), 1/3/6 scalars (ToCell,
//     NewFromParams: cube, box, or a,b,c,α,β,γ) or a 3×3 gonum matrix.
//   - Queries: RCell (reciprocal vectors, rcell[i]·cell[i] == 1, no 2π),
//     Offset, ScIndex, Center, IsOrthogonal.
//   - Transforms: Rotate, Cut, Tile, Append, Translate, SwapAxes, Copy. Each
//     returns a new SuperCell; the receiver is never modified.
//   - Child is a small embeddable capability. Entities that embed it
//     (geometries, grids) forward cell queries to one shared SuperCell, and
//     Attach distributes that same pointer to nested entities declared via
//     the Parent interface.
//
// Shared mutation:
//
//	SetNsc/SetNscAxes mutate nsc and sc_off in place. Every owner holding
//	the same *SuperCell sees the change; Version() increments on each
//	successful mutation. Call Copy for an independent cell.
//
// Complexity:
//
//   - All vector operations: O(1).
//   - SetNsc: O(n_s); ScIndex: O(n_s) linear scan (n_s is small, 27 for 3×3×3).
//
// Errors:
//
//   - ErrBadCellSpec: scalar specification not of length 1, 3 or 6.
//   - ErrBadShape: matrix specification not 3×3.
//   - ErrEvenNsc, ErrNegativeNsc: invalid supercell count.
//   - ErrOffsetNotFound: ScIndex offset outside the nsc range.
//   - ErrBadAxis, ErrBadSeps, ErrNilSuperCell, ErrNaNInf: invalid arguments.
package cell
