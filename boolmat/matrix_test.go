package boolmat_test

import (
	"testing"

	"github.com/katalvlaran/pathql/boolmat"
	"github.com/stretchr/testify/require"
)

func TestMatrix_SetAt(t *testing.T) {
	m, err := boolmat.New(3, 3)
	require.NoError(t, err)

	require.False(t, m.At(0, 1))
	require.NoError(t, m.Set(0, 1, true))
	require.True(t, m.At(0, 1))
	require.NoError(t, m.Set(0, 1, false))
	require.False(t, m.At(0, 1))
}

func TestMatrix_SetOutOfRange(t *testing.T) {
	m, err := boolmat.New(2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(5, 0, true), boolmat.ErrOutOfRange)
}

func TestNew_BadShape(t *testing.T) {
	_, err := boolmat.New(0, 3)
	require.ErrorIs(t, err, boolmat.ErrBadShape)
}

func TestIdentity(t *testing.T) {
	id := boolmat.Identity(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, i == j, id.At(i, j))
		}
	}
}

func TestMatrix_Or(t *testing.T) {
	a := boolmat.MustNew(2, 2)
	_ = a.Set(0, 0, true)
	b := boolmat.MustNew(2, 2)
	_ = b.Set(1, 1, true)

	c, err := a.Or(b)
	require.NoError(t, err)
	require.True(t, c.At(0, 0))
	require.True(t, c.At(1, 1))
	require.False(t, c.At(0, 1))
}

func TestMatrix_Or_DimensionMismatch(t *testing.T) {
	a := boolmat.MustNew(2, 2)
	b := boolmat.MustNew(3, 3)
	_, err := a.Or(b)
	require.ErrorIs(t, err, boolmat.ErrDimensionMismatch)
}

func TestMatrix_Mul(t *testing.T) {
	// A: 0->1, B: 1->2 ; A*B should have 0->2
	a := boolmat.MustNew(3, 3)
	_ = a.Set(0, 1, true)
	b := boolmat.MustNew(3, 3)
	_ = b.Set(1, 2, true)

	c, err := a.Mul(b)
	require.NoError(t, err)
	require.True(t, c.At(0, 2))
	require.Equal(t, 1, c.NNZ())
}

func TestMatrix_Clone_Independence(t *testing.T) {
	a := boolmat.MustNew(2, 2)
	_ = a.Set(0, 0, true)
	b := a.Clone()
	_ = b.Set(1, 1, true)

	require.False(t, a.At(1, 1))
	require.True(t, b.At(1, 1))
}

func TestMatrix_Equal(t *testing.T) {
	a := boolmat.MustNew(2, 2)
	_ = a.Set(0, 1, true)
	b := boolmat.MustNew(2, 2)
	_ = b.Set(0, 1, true)
	require.True(t, a.Equal(b))

	_ = b.Set(1, 0, true)
	require.False(t, a.Equal(b))
}

func TestKron(t *testing.T) {
	// A (1x1) with single true entry, B (2x2) identity: A⊗B == B.
	a := boolmat.MustNew(1, 1)
	_ = a.Set(0, 0, true)
	b := boolmat.Identity(2)

	k, err := boolmat.Kron(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, k.Rows())
	require.Equal(t, 2, k.Cols())
	require.True(t, k.Equal(b))
}

func TestKron_Selective(t *testing.T) {
	// A: 2x2 with only A[0,1]=true. B: 2x2 with only B[1,0]=true.
	// Kron(A,B)[0*2+1, 1*2+0] = A[0,1] && B[1,0] = true; everything else false.
	a := boolmat.MustNew(2, 2)
	_ = a.Set(0, 1, true)
	b := boolmat.MustNew(2, 2)
	_ = b.Set(1, 0, true)

	k, err := boolmat.Kron(a, b)
	require.NoError(t, err)
	require.Equal(t, 1, k.NNZ())
	require.True(t, k.At(1, 2))
}

func TestBlockDiag(t *testing.T) {
	a := boolmat.MustNew(2, 2)
	_ = a.Set(0, 1, true)
	b := boolmat.MustNew(3, 3)
	_ = b.Set(2, 0, true)

	bd, err := boolmat.BlockDiag(a, b)
	require.NoError(t, err)
	require.Equal(t, 5, bd.Rows())
	require.True(t, bd.At(0, 1))   // from a
	require.True(t, bd.At(2+2, 0+2)) // from b, offset by a's size
	require.False(t, bd.At(0, 2))  // cross-block must stay zero
}

func TestBlockDiag_RequiresSquare(t *testing.T) {
	a := boolmat.MustNew(2, 3)
	_, err := boolmat.BlockDiag(a)
	require.ErrorIs(t, err, boolmat.ErrDimensionMismatch)
}

func TestRowIndices_SortedAndFresh(t *testing.T) {
	m := boolmat.MustNew(1, 5)
	_ = m.Set(0, 3, true)
	_ = m.Set(0, 1, true)

	idx := m.RowIndices(0)
	require.Equal(t, []int{1, 3}, idx)

	idx[0] = 99
	require.Equal(t, []int{1, 3}, m.RowIndices(0), "RowIndices must return a copy")
}
