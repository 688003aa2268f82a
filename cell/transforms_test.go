package cell_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lattice/cell"
	"github.com/katalvlaran/lattice/quaternion"
)

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

func TestRCell_Duality(t *testing.T) {
	for _, params := range [][]float64{
		{1, 1, 1},
		{2, 3, 4},
		{3, 4, 5, 80, 95, 110},
		{1, 1, 2, 90, 90, 120},
	} {
		c, err := cell.ToCell(params...)
		require.NoError(t, err)
		sc := mustNew(t, c)
		rc := sc.RCell()
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				want := 0.0
				if i == j {
					want = 1
				}
				require.InDelta(t, want, r3.Dot(rc[i], c[j]), 1e-12, "params=%v i=%d j=%d", params, i, j)
			}
		}
	}
}

func TestRCell_NoTwoPi(t *testing.T) {
	sc := mustNew(t, cell.Diagonal(2, 4, 5))
	require.True(t, sc.RCell().EqualApprox(cell.Diagonal(0.5, 0.25, 0.2), tol))
}

func TestOffset(t *testing.T) {
	sc := mustNew(t, cell.Cell{{X: 1}, {X: 1, Y: 1}, {Z: 2}})
	require.Equal(t, r3.Vec{}, sc.Offset(cell.Offset{}))
	require.Equal(t, r3.Vec{X: 0, Y: -1, Z: 4}, sc.Offset(cell.Offset{1, -1, 2}))
}

func TestScIndex(t *testing.T) {
	sc := mustNew(t, cell.Unit(), cell.WithNsc(3, 3, 3))
	i, err := sc.ScIndex(cell.Offset{})
	require.NoError(t, err)
	require.Equal(t, 0, i)

	for want, off := range sc.ScOff() {
		got, err := sc.ScIndex(off)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err = sc.ScIndex(cell.Offset{2, 0, 0})
	require.ErrorIs(t, err, cell.ErrOffsetNotFound)
}

func TestScIndex_PrimaryOnly(t *testing.T) {
	sc := mustNew(t, cell.Unit())
	i, err := sc.ScIndex(cell.Offset{0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, 0, i)
	_, err = sc.ScIndex(cell.Offset{0, 0, 1})
	require.ErrorIs(t, err, cell.ErrOffsetNotFound)
}

func TestCenter(t *testing.T) {
	sc := mustNew(t, cell.Diagonal(2, 4, 6))
	require.Equal(t, r3.Vec{X: 1, Y: 2, Z: 3}, sc.Center())
	v, err := sc.CenterAxis(1)
	require.NoError(t, err)
	require.Equal(t, r3.Vec{Y: 2}, v)
	_, err = sc.CenterAxis(3)
	require.ErrorIs(t, err, cell.ErrBadAxis)
}

func TestIsOrthogonal(t *testing.T) {
	require.True(t, mustNew(t, cell.Unit()).IsOrthogonal())
	require.True(t, mustNew(t, cell.Diagonal(1, 5, 0.2)).IsOrthogonal())

	// 45° between the first two vectors.
	skew := mustNew(t, cell.Cell{{X: 1}, {X: 1, Y: 1}, {Z: 1}})
	require.False(t, skew.IsOrthogonal())

	// Obtuse angles are not orthogonal either.
	obtuse := mustNew(t, cell.Cell{{X: 1}, {X: -1, Y: 1}, {Z: 1}})
	require.False(t, obtuse.IsOrthogonal())

	nearly := cell.Cell{{X: 1}, {X: 1e-4, Y: 1}, {Z: 1}}
	require.True(t, mustNew(t, nearly).IsOrthogonal())
	require.False(t, mustNew(t, nearly, cell.WithOrthogonalTol(1e-6)).IsOrthogonal())

	// A zero-length vector has no direction.
	require.False(t, mustNew(t, cell.Diagonal(1, 1, 0)).IsOrthogonal())
	require.False(t, mustNew(t, cell.Cell{}).IsOrthogonal())
}

//----------------------------------------------------------------------------//
// Transforms
//----------------------------------------------------------------------------//

func TestRotate_ZeroAngle(t *testing.T) {
	c, err := cell.ToCell(3, 4, 5, 80, 95, 110)
	require.NoError(t, err)
	sc := mustNew(t, c, cell.WithNsc(3, 1, 1))
	rot, err := sc.Rotate(0, r3.Vec{X: 1}, true)
	require.NoError(t, err)
	require.True(t, rot.Equal(sc, 1e-12))
	require.NotSame(t, sc, rot)
}

func TestRotate_QuarterTurn(t *testing.T) {
	sc := mustNew(t, cell.Diagonal(1, 2, 3), cell.WithNsc(3, 5, 1))
	rot, err := sc.Rotate(90, r3.Vec{Z: 2}, true)
	require.NoError(t, err)
	want := cell.Cell{{Y: 1}, {X: -2}, {Z: 3}}
	require.True(t, rot.Cell().EqualApprox(want, 1e-12), "got\n%s", rot.Cell())
	require.Equal(t, sc.Nsc(), rot.Nsc())
	require.InDelta(t, sc.Vol(), rot.Vol(), 1e-12)

	rad, err := sc.Rotate(math.Pi/2, r3.Vec{Z: 1}, false)
	require.NoError(t, err)
	require.True(t, rad.Equal(rot, 1e-12))

	// Receiver untouched.
	require.Equal(t, cell.Diagonal(1, 2, 3), sc.Cell())
}

func TestRotate_ZeroAxis(t *testing.T) {
	_, err := mustNew(t, cell.Unit()).Rotate(10, r3.Vec{}, true)
	require.ErrorIs(t, err, quaternion.ErrZeroAxis)
}

func TestCutAppend_RoundTrip(t *testing.T) {
	c, err := cell.ToCell(3, 4, 5, 80, 95, 110)
	require.NoError(t, err)
	sc := mustNew(t, c, cell.WithNsc(3, 3, 3))
	half, err := sc.Cut(2, 0)
	require.NoError(t, err)
	require.True(t, half.Cell()[0] == r3.Scale(0.5, c[0]))
	require.Equal(t, c[1], half.Cell()[1])
	require.InDelta(t, sc.Vol()/2, half.Vol(), 1e-9)

	whole, err := half.Append(half, 0)
	require.NoError(t, err)
	require.True(t, whole.Equal(sc, 1e-12))
}

func TestCut_Errors(t *testing.T) {
	sc := mustNew(t, cell.Unit())
	_, err := sc.Cut(0, 0)
	require.ErrorIs(t, err, cell.ErrBadSeps)
	_, err = sc.Cut(2, -1)
	require.ErrorIs(t, err, cell.ErrBadAxis)
}

func TestAppend_Errors(t *testing.T) {
	sc := mustNew(t, cell.Unit())
	_, err := sc.Append(nil, 0)
	require.ErrorIs(t, err, cell.ErrNilSuperCell)
	_, err = sc.Append(sc, 3)
	require.ErrorIs(t, err, cell.ErrBadAxis)
}

func TestTranslate(t *testing.T) {
	sc := mustNew(t, cell.Diagonal(1, 2, 3), cell.WithNsc(1, 3, 1))
	out, err := sc.Translate(r3.Vec{Y: 0.5})
	require.NoError(t, err)
	require.Equal(t, cell.Diagonal(1, 2.5, 3), out.Cell())
	require.Equal(t, sc.Nsc(), out.Nsc())

	// Mostly along z with a small x component: z vector takes it all.
	out, err = sc.Translate(r3.Vec{X: 0.1, Z: 1})
	require.NoError(t, err)
	require.Equal(t, cell.Cell{{X: 1}, {Y: 2}, {X: 0.1, Z: 4}}, out.Cell())

	// Equal projections resolve to the lowest index.
	out, err = mustNew(t, cell.Unit()).Translate(r3.Vec{X: 1, Y: 1, Z: 1})
	require.NoError(t, err)
	require.Equal(t, r3.Vec{X: 2, Y: 1, Z: 1}, out.Cell()[0])
}

func TestTranslate_NonFinite(t *testing.T) {
	sc := mustNew(t, cell.Diagonal(1, 2, 3))
	for _, v := range []r3.Vec{
		{X: math.NaN()},
		{Y: math.Inf(1)},
		{Z: math.Inf(-1)},
	} {
		_, err := sc.Translate(v)
		require.ErrorIs(t, err, cell.ErrNaNInf, "v=%v", v)
	}
	require.Equal(t, cell.Diagonal(1, 2, 3), sc.Cell())
}

func TestTile(t *testing.T) {
	nearly := cell.Cell{{X: 1}, {X: 1e-4, Y: 1}, {Z: 1}}
	sc := mustNew(t, nearly, cell.WithNsc(3, 1, 1), cell.WithOrthogonalTol(1e-6))
	out, err := sc.Tile(3, 2)
	require.NoError(t, err)
	require.Equal(t, cell.Cell{{X: 1}, {X: 1e-4, Y: 1}, {Z: 3}}, out.Cell())
	require.Equal(t, sc.Nsc(), out.Nsc())
	require.InDelta(t, 3*sc.Vol(), out.Vol(), 1e-12)
	// The tolerance travels with the cell.
	require.False(t, out.IsOrthogonal())

	_, err = sc.Tile(0, 0)
	require.ErrorIs(t, err, cell.ErrBadReps)
	_, err = sc.Tile(2, 3)
	require.ErrorIs(t, err, cell.ErrBadAxis)
}

func TestSwapAxes(t *testing.T) {
	sc := mustNew(t, cell.Diagonal(1, 2, 3), cell.WithNsc(3, 1, 5))
	sw, err := sc.SwapAxes(0, 2)
	require.NoError(t, err)
	require.Equal(t, cell.Cell{{Z: 3}, {Y: 2}, {X: 1}}, sw.Cell())
	require.Equal(t, cell.Nsc{5, 1, 3}, sw.Nsc())

	same, err := sc.SwapAxes(1, 1)
	require.NoError(t, err)
	require.True(t, same.Equal(sc, 0))

	_, err = sc.SwapAxes(0, 3)
	require.ErrorIs(t, err, cell.ErrBadAxis)
}

func TestTransforms_DoNotShareNsc(t *testing.T) {
	sc := mustNew(t, cell.Unit(), cell.WithNsc(3, 3, 3))
	out, err := sc.Translate(r3.Vec{X: 1})
	require.NoError(t, err)
	require.NoError(t, out.SetNsc(cell.Nsc{1, 1, 1}))
	require.Equal(t, 27, sc.NS())
}
