// Package lattice is the geometric foundation for atomic structures in
// periodic boundary conditions: unit cells, their supercell images and the
// entities that live in them.
//
// What is in the module?
//
//   - Cells: build a SuperCell from vectors, box lengths or a,b,c,α,β,γ;
//     query volume, reciprocal vectors and image offsets.
//   - Transforms: rotate, cut, append, translate and swap cell axes; every
//     transform returns a new cell.
//   - Sharing: entities embed cell.Child and receive one shared SuperCell
//     through cell.Attach, which also reaches nested entities.
//   - Structures: atoms, geometries, grids and the diamond reference cell.
//
// Packages:
//
//	cell/          SuperCell, Child capability, Attach
//	quaternion/    rotation primitive (gonum num/quat)
//	atom/          species value type and element registry
//	geometry/      Geometry and Grid, cell-bearing entities
//	special/       reference structures (Diamond)
//	cmd/supercell/ command line front end
//
// Quick ASCII example, a 3×3×1 supercell seen from above:
//
//	+---+---+---+
//	| 6 | 7 | 8 |
//	+---+---+---+
//	| 4 | 0 | 5 |
//	+---+---+---+
//	| 1 | 2 | 3 |
//	+---+---+---+
//
// The primary cell is image 0; the remaining images follow in z, y, x order.
//
//	go get github.com/katalvlaran/lattice
package lattice
