// Package special builds frequently used reference geometries.
package special

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lattice/atom"
	"github.com/katalvlaran/lattice/cell"
	"github.com/katalvlaran/lattice/geometry"
)

// DefaultDiamondAlat is the carbon-diamond lattice constant in Ångström.
const DefaultDiamondAlat = 3.57

// ErrBadAlat indicates a non-positive or non-finite lattice constant.
var ErrBadAlat = errors.New("special: lattice constant must be finite and > 0")

// Diamond returns the two-atom diamond primitive cell with lattice constant
// alat: FCC vectors alat/2·[[0,1,1],[1,0,1],[1,1,0]], nsc 3×3×3, atoms at
// (0,0,0) and alat/4·(1,1,1). The cell volume is alat³/4.
//
// species defaults to carbon with radius 1.01 × nearest-neighbor distance.
func Diamond(alat float64, species ...atom.Atom) (*geometry.Geometry, error) {
	if !(alat > 0) || math.IsInf(alat, 0) {
		return nil, fmt.Errorf("Diamond(%g): %w", alat, ErrBadAlat)
	}
	dist := alat * math.Sqrt(3) / 4
	if len(species) == 0 {
		c, err := atom.New("C", atom.WithR(dist*1.01))
		if err != nil {
			return nil, err
		}
		species = []atom.Atom{c}
	}
	h := alat / 2
	sc, err := cell.New(cell.Cell{
		{Y: h, Z: h},
		{X: h, Z: h},
		{X: h, Y: h},
	}, cell.WithNsc(3, 3, 3))
	if err != nil {
		return nil, err
	}
	q := alat / 4
	xyz := []r3.Vec{{}, {X: q, Y: q, Z: q}}

	return geometry.New(xyz, species, sc)
}
