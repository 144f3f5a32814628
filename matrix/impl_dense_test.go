// Package matrix_test contains unit tests for the Dense row-handle storage.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive sizes.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[scalar.Float](0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense[scalar.Fixed](-3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromRows[scalar.Float](nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromFloat64s[scalar.Float]([][]float64{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestFromRowsNonSquare ensures ragged or rectangular input is rejected.
func TestFromRowsNonSquare(t *testing.T) {
	_, err := matrix.FromRows([][]scalar.Float{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.FromFloat64s[scalar.Fixed]([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestAtSetOutOfRange ensures indexers return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m := MustDense[scalar.Float](t, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SwapRows(0, 2), matrix.ErrOutOfRange)

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set followed by At, and the size accessors.
func TestSetGet(t *testing.T) {
	m := MustDense[scalar.Fixed](t, 3)
	require.Equal(t, 3, m.Size())
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, scalar.FixedFromFloat64(7.5)))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.5, v.Float64())
}

// TestSwapRowsExchangesHandles verifies that a swap moves row handles, not elements.
func TestSwapRowsExchangesHandles(t *testing.T) {
	m := MustFromFloat64s[scalar.Float](t, [][]float64{{1, 2}, {3, 4}})

	r0, err := m.Row(0)
	require.NoError(t, err)
	r1, err := m.Row(1)
	require.NoError(t, err)

	require.NoError(t, m.SwapRows(0, 1))

	n0, _ := m.Row(0)
	n1, _ := m.Row(1)
	require.Same(t, &r1[0], &n0[0], "row 0 must now be the old row-1 handle")
	require.Same(t, &r0[0], &n1[0], "row 1 must now be the old row-0 handle")
	require.Equal(t, "[3, 4]\n[1, 2]\n", m.String())
}

// TestFromRowsAdoptsStorage verifies FromRows does not copy the caller's rows.
func TestFromRowsAdoptsStorage(t *testing.T) {
	rows := [][]scalar.Float{{1, 2}, {3, 4}}
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	rows[0][1] = 9
	require.Equal(t, 9.0, MustAt(t, m, 0, 1), "writes through caller storage are visible")

	require.NoError(t, m.SwapRows(0, 1))
	require.Equal(t, scalar.Float(1), rows[0][0], "swapping handles does not reorder the caller's outer slice")
}

// TestCloneIndependence ensures Clone returns a deep copy with its own storage.
func TestCloneIndependence(t *testing.T) {
	m := MustFromFloat64s[scalar.Float](t, [][]float64{{1, 0}, {0, 2}})
	c := m.Clone()

	require.NoError(t, c.Set(0, 0, 3))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, c, 0, 0))
}

// TestResetAndIdentity verifies Reset writes I in place and NewIdentity builds it.
func TestResetAndIdentity(t *testing.T) {
	m := MustFromFloat64s[scalar.Fixed](t, [][]float64{{5, 6}, {7, 8}})
	m.Reset()
	ok, err := matrix.IsIdentity(m, 0)
	require.NoError(t, err)
	require.True(t, ok)

	id, err := matrix.NewIdentity[scalar.Float](3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id.Float64s())
}

// TestStringOutput checks that String formats one bracketed row per line.
func TestStringOutput(t *testing.T) {
	m := MustFromFloat64s[scalar.Fixed](t, [][]float64{{1, 0.5}, {-2.25, 0}})
	require.Equal(t, "[1, 0.5]\n[-2.25, 0]\n", m.String())
}
