// SPDX-License-Identifier: MIT
// Package matrix provides the Gauss-Jordan inversion kernel and its building blocks
// (condition estimate, pivot selection, row operations) over any scalar.Scalar
// representation. All functions perform strict fail-fast validation and return
// sentinel errors wrapped with an operation tag.
//
// Purpose:
//   - Define operation tags and the shared error wrapper for every kernel file.
//   - Host the generic matrix product used to check inverses.
//
// Notes:
//   - Kernels live in dedicated files (impl_norm.go, impl_pivot.go, impl_rowops.go,
//     impl_gauss_jordan.go) to keep roles clean.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/gaussjordan/scalar"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opInvert        = "Invert"
	opInverse       = "Inverse"
	opNormInf       = "NormInf"
	opCheck         = "CheckConditioned"
	opCondition     = "ConditionEstimate"
	opFindPivotRow  = "FindPivotRow"
	opScaleRow      = "ScaleRow"
	opEliminateRow  = "EliminateRow"
	opMul           = "Mul"
	opVerifyInverse = "VerifyInverse"
	opAllClose      = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// checkRow returns scalar.ErrOverflow, tagged with the position, for the first
// saturated entry of row i. Saturation is sticky, so checking the final value of
// an accumulation is enough.
func checkRow[T scalar.Scalar[T]](row []T, i int) error {
	for j, v := range row {
		if v.Overflowed() {
			return fmt.Errorf("entry (%d,%d): %w", i, j, scalar.ErrOverflow)
		}
	}

	return nil
}

// Mul computes the product a × b in T arithmetic into a fresh Dense.
// Inputs are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinary(a, b). Allocate result Dense(n).
//   - Stage 2: i→k→j loop; zero a[i][k] terms are skipped (exact no-op).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//   - scalar.ErrOverflow when an entry of the product saturates (Fixed).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - For Fixed the product accumulates truncation per term; use it to sanity-check,
//     and VerifyInverse for a float64 residual.
func Mul[T scalar.Scalar[T]](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	n := a.n
	c, err := NewDense[T](n)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k int
	var aik T
	for i = 0; i < n; i++ {
		ci := c.rows[i]
		for k = 0; k < n; k++ {
			aik = a.rows[i][k]
			if aik.IsZero() {
				continue
			}
			bk := b.rows[k]
			for j = 0; j < n; j++ {
				ci[j] = ci[j].Add(aik.Mul(bk[j]))
			}
		}
		if err = checkRow(ci, i); err != nil {
			return nil, matrixErrorf(opMul, err)
		}
	}

	return c, nil
}
