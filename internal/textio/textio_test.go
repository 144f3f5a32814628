package textio_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gaussjordan/internal/textio"
	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
)

func TestRead_Float(t *testing.T) {
	in := "3\n1 0 2\n0\t-1.5 0\n\n4 0 1e-1\n\n"
	m, err := textio.Read[scalar.Float](strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0, 2}, {0, -1.5, 0}, {4, 0, 0.1}}, m.Float64s())
}

func TestRead_FixedTruncates(t *testing.T) {
	m, err := textio.Read[scalar.Fixed](strings.NewReader("1\n0.3\n"))
	require.NoError(t, err)
	v, err := m.At(0, 0)
	require.NoError(t, err)
	// 0.3 * 2048 = 614.4, truncated to 614.
	assert.Equal(t, int64(614), v.Mantissa())
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", textio.ErrShape},
		{"blank only", "\n  \n", textio.ErrShape},
		{"size not int", "two\n", textio.ErrSyntax},
		{"size float", "2.0\n1 0\n0 1\n", textio.ErrSyntax},
		{"size zero", "0\n", textio.ErrShape},
		{"size negative", "-3\n", textio.ErrShape},
		{"size line extra", "2 2\n1 0\n0 1\n", textio.ErrShape},
		{"short row", "2\n1\n0 1\n", textio.ErrShape},
		{"long row", "2\n1 0 9\n0 1\n", textio.ErrShape},
		{"missing row", "2\n1 0\n", textio.ErrShape},
		{"bad value", "2\n1 x\n0 1\n", textio.ErrSyntax},
		{"trailing row", "2\n1 0\n0 1\n5 5\n", textio.ErrShape},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := textio.Read[scalar.Float](strings.NewReader(tc.in))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestRead_ErrorCarriesLine(t *testing.T) {
	_, err := textio.Read[scalar.Float](strings.NewReader("2\n1 0\n0 oops\n"))
	require.ErrorIs(t, err, textio.ErrSyntax)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), `"oops"`)
}

func TestWrite(t *testing.T) {
	m, err := matrix.FromFloat64s[scalar.Fixed]([][]float64{{0.5, -1}, {0, 2.25}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, textio.Write(&buf, m, 6))
	assert.Equal(t, "0.500000 -1.000000\n0.000000 2.250000\n", buf.String())

	buf.Reset()
	require.NoError(t, textio.Write(&buf, m, 0))
	assert.Equal(t, "0 -1\n0 2\n", buf.String())

	require.ErrorIs(t, textio.Write[scalar.Fixed](&buf, nil, 2), matrix.ErrNilMatrix)
}

func TestReadWrite_Roundtrip(t *testing.T) {
	src := "2\n1.250000 -3.000000\n0.000000 7.500000\n"
	m, err := textio.Read[scalar.Float](strings.NewReader(src))
	require.NoError(t, err)

	var buf bytes.Buffer
	buf.WriteString("2\n")
	require.NoError(t, textio.Write(&buf, m, 6))
	assert.Equal(t, src, buf.String())
}
