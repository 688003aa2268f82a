package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lattice/cell"
)

// Grid is a real-valued 3-D grid spanning its SuperCell. Values are stored
// with the first axis varying slowest.
type Grid struct {
	cell.Child
	shape  [3]int
	values []float64
	geom   *Geometry
}

// NewGrid allocates a zero grid of the given shape on sc (shared, nil means
// the default cell).
// Complexity: O(shape[0]·shape[1]·shape[2]).
func NewGrid(shape [3]int, sc *cell.SuperCell) (*Grid, error) {
	for _, n := range shape {
		if n <= 0 {
			return nil, fmt.Errorf("NewGrid(%v): %w", shape, ErrGridShape)
		}
	}
	g := &Grid{
		shape:  shape,
		values: make([]float64, shape[0]*shape[1]*shape[2]),
	}
	cell.Attach(g, sc)

	return g, nil
}

// CellChildren lists the nested cell-bearing entities: the attached
// Geometry, when present.
func (g *Grid) CellChildren() []cell.HasSuperCell {
	if g.geom == nil {
		return nil
	}

	return []cell.HasSuperCell{g.geom}
}

// SetGeometry attaches geom and adopts its SuperCell for the whole grid,
// so grid and geometry share one cell afterwards.
func (g *Grid) SetGeometry(geom *Geometry) {
	g.geom = geom
	if geom == nil {
		return
	}
	cell.Attach(g, geom.SuperCell())
}

// Geometry returns the attached geometry, or nil.
func (g *Grid) Geometry() *Geometry {
	return g.geom
}

// Shape returns the number of grid points along each lattice vector.
func (g *Grid) Shape() [3]int {
	return g.shape
}

// DCell returns the voxel vectors, cell[i]/shape[i].
func (g *Grid) DCell() cell.Cell {
	c := g.Cell()
	for i := range c {
		c[i] = r3.Scale(1/float64(g.shape[i]), c[i])
	}

	return c
}

// DVol returns the voxel volume.
func (g *Grid) DVol() float64 {
	return g.Vol() / float64(len(g.values))
}

// Index maps (i, j, k) to the flat storage index.
func (g *Grid) Index(i, j, k int) (int, error) {
	if i < 0 || i >= g.shape[0] || j < 0 || j >= g.shape[1] || k < 0 || k >= g.shape[2] {
		return 0, fmt.Errorf("Grid.Index(%d,%d,%d): %w", i, j, k, ErrGridIndex)
	}

	return (i*g.shape[1]+j)*g.shape[2] + k, nil
}

// At returns the value at (i, j, k).
func (g *Grid) At(i, j, k int) (float64, error) {
	idx, err := g.Index(i, j, k)
	if err != nil {
		return 0, err
	}

	return g.values[idx], nil
}

// Set stores v at (i, j, k).
func (g *Grid) Set(i, j, k int, v float64) error {
	idx, err := g.Index(i, j, k)
	if err != nil {
		return err
	}
	g.values[idx] = v

	return nil
}

// Point returns the Cartesian position of grid point (i, j, k).
func (g *Grid) Point(i, j, k int) r3.Vec {
	d := g.DCell()

	return r3.Add(r3.Add(r3.Scale(float64(i), d[0]), r3.Scale(float64(j), d[1])), r3.Scale(float64(k), d[2]))
}

// Sum returns the sum of all grid values.
func (g *Grid) Sum() float64 {
	var s float64
	for _, v := range g.values {
		s += v
	}

	return s
}
