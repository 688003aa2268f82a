package cell_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lattice/cell"
)

// leaf is a minimal cell-bearing entity.
type leaf struct {
	cell.Child
}

// node owns nested cell-bearing entities, some possibly unset.
type node struct {
	cell.Child
	left, right *leaf
	sub         *node
}

func (n *node) CellChildren() []cell.HasSuperCell {
	var out []cell.HasSuperCell
	if n.left != nil {
		out = append(out, n.left)
	}
	if n.right != nil {
		out = append(out, n.right)
	}
	if n.sub != nil {
		out = append(out, n.sub)
	}

	return out
}

// group is a slice-backed owner; it cannot be used as a map key.
type group []*leaf

func (g group) SuperCell() *cell.SuperCell          { return g[0].SuperCell() }
func (g group) InstallSuperCell(sc *cell.SuperCell) {}

func (g group) CellChildren() []cell.HasSuperCell {
	out := make([]cell.HasSuperCell, len(g))
	for i, l := range g {
		out[i] = l
	}

	return out
}

func TestChild_ZeroValueIsUnitCell(t *testing.T) {
	var l leaf
	require.Equal(t, cell.Unit(), l.Cell())
	require.InDelta(t, 1.0, l.Vol(), tol)
	require.Equal(t, 1, l.NS())
	require.Equal(t, cell.Nsc{1, 1, 1}, l.Nsc())
	require.True(t, l.IsOrthogonal())
	require.Same(t, l.SuperCell(), l.SuperCell())
}

func TestChild_Delegation(t *testing.T) {
	sc := mustNew(t, cell.Diagonal(2, 3, 4), cell.WithNsc(3, 1, 1))
	var l leaf
	cell.Attach(&l, sc)

	require.Same(t, sc, l.SuperCell())
	require.Equal(t, sc.Cell(), l.Cell())
	require.Equal(t, sc.RCell(), l.RCell())
	require.Equal(t, sc.Vol(), l.Vol())
	require.Equal(t, sc.ScOff(), l.ScOff())
	require.Equal(t, r3.Vec{X: -2}, l.ImageOffset(cell.Offset{-1, 0, 0}))

	i, err := l.ScIndex(cell.Offset{1, 0, 0})
	require.NoError(t, err)
	require.Equal(t, 2, i)
	_, err = l.ScIndex(cell.Offset{0, 1, 0})
	require.ErrorIs(t, err, cell.ErrOffsetNotFound)

	require.ErrorIs(t, l.SetNsc(cell.Nsc{2, 1, 1}), cell.ErrEvenNsc)
}

func TestAttach_SharedMutationIsBroadcast(t *testing.T) {
	sc := mustNew(t, cell.Unit())
	var a, b leaf
	cell.Attach(&a, sc)
	cell.Attach(&b, sc)

	require.NoError(t, a.SetNsc(cell.Nsc{3, 3, 3}))
	require.Equal(t, 27, b.NS())
	require.Equal(t, cell.Nsc{3, 3, 3}, b.Nsc())
	require.Equal(t, uint64(1), b.SuperCell().Version())
}

func TestAttach_Recursive(t *testing.T) {
	root := &node{
		left: &leaf{},
		sub:  &node{right: &leaf{}},
	}
	sc := mustNew(t, cell.Diagonal(5, 5, 5))
	cell.Attach(root, sc)

	require.Same(t, sc, root.SuperCell())
	require.Same(t, sc, root.left.SuperCell())
	require.Same(t, sc, root.sub.SuperCell())
	require.Same(t, sc, root.sub.right.SuperCell())
}

func TestAttach_NilInstallsSharedDefault(t *testing.T) {
	root := &node{left: &leaf{}, right: &leaf{}}
	cell.Attach(root, nil)
	require.Equal(t, cell.Unit(), root.Cell())
	require.Same(t, root.SuperCell(), root.left.SuperCell())
	require.Same(t, root.SuperCell(), root.right.SuperCell())
}

func TestAttach_Cycle(t *testing.T) {
	a := &node{}
	b := &node{sub: a}
	a.sub = b
	sc := mustNew(t, cell.Unit())
	cell.Attach(a, sc)
	require.Same(t, sc, b.SuperCell())
}

func TestAttach_UnhashableOwner(t *testing.T) {
	g := group{&leaf{}, &leaf{}}
	sc := mustNew(t, cell.Diagonal(2, 2, 2))
	require.NotPanics(t, func() { cell.Attach(g, sc) })
	require.Same(t, sc, g[0].SuperCell())
	require.Same(t, sc, g[1].SuperCell())
	require.Same(t, sc, g.SuperCell())
}

func TestAttachParams(t *testing.T) {
	root := &node{left: &leaf{}}
	require.NoError(t, cell.AttachParams(root, 1, 2, 3))
	require.Equal(t, cell.Diagonal(1, 2, 3), root.left.Cell())

	require.ErrorIs(t, cell.AttachParams(root, 1, 2), cell.ErrBadCellSpec)
	require.Equal(t, cell.Diagonal(1, 2, 3), root.Cell())

	require.NoError(t, cell.AttachCell(root, cell.Diagonal(7, 7, 7)))
	require.InDelta(t, 343.0, root.left.Vol(), 1e-9)
}
