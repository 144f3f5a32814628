package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedRow(vals ...float64) []scalar.Fixed {
	row := make([]scalar.Fixed, len(vals))
	for i, v := range vals {
		row[i] = scalar.FixedFromFloat64(v)
	}
	return row
}

// TestScaleRow_IdentityIsNoop verifies scaleRow(row, 1) leaves the row bit-identical.
func TestScaleRow_IdentityIsNoop(t *testing.T) {
	row := fixedRow(1.5, 0, -3.25, 1e-3)
	before := append([]scalar.Fixed(nil), row...)

	require.NoError(t, matrix.ScaleRow(row, scalar.One[scalar.Fixed]()))
	assert.Equal(t, before, row)

	frow := []scalar.Float{0.1, 0, -7}
	require.NoError(t, matrix.ScaleRow(frow, 1))
	assert.Equal(t, []scalar.Float{0.1, 0, -7}, frow)
}

// TestScaleRow_Divides verifies in-place division and that zeros stay zero.
func TestScaleRow_Divides(t *testing.T) {
	row := fixedRow(3, 0, -1, 0.5)
	require.NoError(t, matrix.ScaleRow(row, scalar.FixedFromFloat64(2)))

	got := make([]float64, len(row))
	for i, v := range row {
		got[i] = v.Float64()
	}
	assert.Equal(t, []float64{1.5, 0, -0.5, 0.25}, got)
	assert.Equal(t, 0, row[1].Scale(), "zero entries keep scale 0")
}

// TestScaleRow_DivisionByZero verifies the fixed-point error surfaces through ScaleRow.
func TestScaleRow_DivisionByZero(t *testing.T) {
	row := fixedRow(0, 2)
	err := matrix.ScaleRow(row, scalar.Fixed{})
	require.ErrorIs(t, err, scalar.ErrDivisionByZero)

	// an all-zero row never divides, so nothing fails
	require.NoError(t, matrix.ScaleRow(fixedRow(0, 0), scalar.Fixed{}))
}

// TestEliminateRow_ZeroFactorIsNoop verifies eliminateRow(target, source, 0) leaves target unchanged.
func TestEliminateRow_ZeroFactorIsNoop(t *testing.T) {
	target := fixedRow(1, 2, 3)
	source := fixedRow(4, 5, 6)
	before := append([]scalar.Fixed(nil), target...)

	require.NoError(t, matrix.EliminateRow(target, source, scalar.Fixed{}))
	assert.Equal(t, before, target)
}

// TestEliminateRow_Subtracts verifies target -= factor*source, skipping zero sources.
func TestEliminateRow_Subtracts(t *testing.T) {
	target := []scalar.Float{1, 2, 3}
	source := []scalar.Float{4, 0, -1}
	require.NoError(t, matrix.EliminateRow(target, source, 0.5))
	assert.Equal(t, []scalar.Float{-1, 2, 3.5}, target)

	ft := fixedRow(1, 2, 3)
	fs := fixedRow(4, 0, -1)
	require.NoError(t, matrix.EliminateRow(ft, fs, scalar.FixedFromFloat64(0.5)))
	assert.Equal(t, fixedRow(-1, 2, 3.5), ft)
}

// TestEliminateRow_LengthMismatch verifies operand validation.
func TestEliminateRow_LengthMismatch(t *testing.T) {
	err := matrix.EliminateRow([]scalar.Float{1, 2}, []scalar.Float{1}, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestRowOps_FixedOverflow verifies out-of-range updates report scalar.ErrOverflow
// and never store a saturated value.
func TestRowOps_FixedOverflow(t *testing.T) {
	target := fixedRow(1, 3)
	source := fixedRow(0, 1<<40)
	err := matrix.EliminateRow(target, source, scalar.FixedFromInt(1<<40))
	require.ErrorIs(t, err, scalar.ErrOverflow)
	assert.Contains(t, err.Error(), "col 1")
	assert.Equal(t, fixedRow(1, 3), target)

	row := []scalar.Fixed{scalar.NewFixed(1<<62, scalar.BaseScale)}
	require.ErrorIs(t, matrix.ScaleRow(row, scalar.FixedFromFloat64(0.5)), scalar.ErrOverflow)
}
