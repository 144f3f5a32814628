// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the inversion kernels.
//   • Keep all data finite and well-formed so failures point at the kernel, not the fixture.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/scalar"
	"github.com/stretchr/testify/require"
)

// Tolerances per representation: Float is checked near machine precision,
// Fixed at a few units of 2^-BaseScale amplified by elimination.
const (
	tolFloat = 1e-12
	tolFixed = 2e-2
)

// FixedResidualBound RETURNS the ‖A·X − I‖∞ budget for a Fixed inverse of an n×n
// matrix with ‖A‖∞ = norm: every entry of X may be off by O(n) truncations of one ulp,
// and the residual row sum multiplies that by at most n·‖A‖∞.
func FixedResidualBound(n int, norm float64) float64 {
	return 4 * float64(n*n) * math.Ldexp(1, -scalar.BaseScale) * norm
}

// MustFromFloat64s BUILDS a Dense[T] from a float grid or fails the test.
func MustFromFloat64s[T scalar.Scalar[T]](t *testing.T, vals [][]float64) *matrix.Dense[T] {
	t.Helper()
	d, err := matrix.FromFloat64s[T](vals)
	require.NoError(t, err, "FromFloat64s")

	return d
}

// MustDense ALLOCATES an n×n zero Dense[T] or fails the test.
func MustDense[T scalar.Scalar[T]](t *testing.T, n int) *matrix.Dense[T] {
	t.Helper()
	d, err := matrix.NewDense[T](n)
	require.NoError(t, err, "NewDense(%d)", n)

	return d
}

// MustAt READS (i,j) as float64 or fails the test.
func MustAt[T scalar.Scalar[T]](t *testing.T, d *matrix.Dense[T], i, j int) float64 {
	t.Helper()
	v, err := d.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v.Float64()
}

// RequireClose COMPARES every entry of d against want within tol.
func RequireClose[T scalar.Scalar[T]](t *testing.T, d *matrix.Dense[T], want [][]float64, tol float64) {
	t.Helper()
	require.Equal(t, len(want), d.Size(), "size")
	for i := range want {
		for j := range want[i] {
			require.InDelta(t, want[i][j], MustAt(t, d, i, j), tol, "entry [%d,%d]", i, j)
		}
	}
}

// DiagDominant RETURNS a deterministic, strictly diagonally dominant n×n grid
// (hence non-singular) with off-diagonal entries in [-1, 1).
// The diagonal magnitude n+1 keeps ‖A‖∞ < 2n+2.
func DiagDominant(n int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	vals := make([][]float64, n)
	for i := range vals {
		vals[i] = make([]float64, n)
		for j := range vals[i] {
			vals[i][j] = rng.Float64()*2 - 1
		}
		vals[i][i] = float64(n + 1)
		if rng.Intn(2) == 0 {
			vals[i][i] = -vals[i][i]
		}
	}

	return vals
}

// ZeroDiagonal RETURNS a non-singular n×n grid whose diagonal is exactly zero, so
// every column goes through the pivot search.
// Implementation:
//   - Stage 1: A = DiagDominant(n, seed) with the entries that Stage 2 will place on
//     the diagonal set to zero (A stays strictly diagonally dominant).
//   - Stage 2: move row i of A to row (i+shift) mod n (a permutation keeps it invertible).
//
// shift must not be a multiple of n.
func ZeroDiagonal(n int, seed int64, shift int) [][]float64 {
	a := DiagDominant(n, seed)
	out := make([][]float64, n)
	for i := range a {
		r := (i + shift) % n
		a[i][r] = 0
		out[r] = a[i]
	}

	return out
}

// CollectTrace RETURNS an Option recording every Step into *steps.
func CollectTrace(steps *[]matrix.Step) matrix.Option {
	return matrix.WithTrace(func(s matrix.Step) { *steps = append(*steps, s) })
}

// Bidiagonal RETURNS the n×n upper-bidiagonal grid with eps on the diagonal and 1
// above it. ‖A‖∞ = 1+eps, yet |A⁻¹[0][n-1]| = eps^-n, so it passes the gate while
// its inverse grows geometrically with n.
func Bidiagonal(n int, eps float64) [][]float64 {
	g := make([][]float64, n)
	for i := range g {
		g[i] = make([]float64, n)
		g[i][i] = eps
		if i+1 < n {
			g[i][i+1] = 1
		}
	}

	return g
}
