// Package geometry provides the cell-bearing entities built on package cell:
//
//   - Geometry: atomic positions, per-atom species and a shared SuperCell.
//   - Grid:     a 3-D scalar grid spanning a SuperCell, optionally carrying
//     the Geometry it was sampled from.
//
// Both embed cell.Child, so Vol, Cell, RCell, Nsc, ScOff, ScIndex and
// IsOrthogonal are available directly. Grid implements cell.Parent: calling
// cell.Attach on a Grid installs the same SuperCell on its Geometry too.
//
// Transforms (Rotate, Tile, Append, Cut, Copy) return new entities with new
// SuperCells; Move only shifts atoms and keeps sharing the cell.
package geometry
