// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.

package matrix

import (
	"math"

	"github.com/katalvlaran/gaussjordan/scalar"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized n×n matrix.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros[T scalar.Scalar[T]](n int) (*Dense[T], error) { return NewDense[T](n) }

// ZerosLike returns a new zero matrix with the same size as d.
// Handy to preallocate the output of Invert.
func ZerosLike[T scalar.Scalar[T]](d *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(d); err != nil {
		return nil, err
	}
	return NewDense[T](d.n)
}

// IdentityLike returns I with the same size as d.
func IdentityLike[T scalar.Scalar[T]](d *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(d); err != nil {
		return nil, err
	}
	return NewIdentity[T](d.n)
}

// ---------- Inversion ----------

// InverseOf is an alias for Inverse: returns a⁻¹ without mutating a.
// Complexity: O(n³).
func InverseOf[T scalar.Scalar[T]](a *Dense[T], opts ...Option) (*Dense[T], error) {
	return Inverse(a, opts...)
}

// Norm is an alias for NormInf (the condition-gate estimate).
func Norm[T scalar.Scalar[T]](d *Dense[T]) (float64, error) { return NormInf(d) }

// Product is an alias for Mul.
func Product[T scalar.Scalar[T]](a, b *Dense[T]) (*Dense[T], error) { return Mul(a, b) }

// ---------- Comparison ----------

// IsIdentity reports whether d equals I within tol (|d_ij − δ_ij| ≤ tol), compared in float64.
func IsIdentity[T scalar.Scalar[T]](d *Dense[T], tol float64) (bool, error) {
	if err := ValidateNotNil(d); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for i := 0; i < d.n; i++ {
		for j, v := range d.rows[i] {
			want := 0.0
			if i == j {
				want = 1
			}
			if !(math.Abs(v.Float64()-want) <= tol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// AllClose reports whether |a_ij − b_ij| ≤ tol for every entry, compared in float64.
// NaN never compares close.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func AllClose[T scalar.Scalar[T]](a, b *Dense[T], tol float64) (bool, error) {
	if err := ValidateBinary(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for i := 0; i < a.n; i++ {
		for j, v := range a.rows[i] {
			if !(math.Abs(v.Float64()-b.rows[i][j].Float64()) <= tol) {
				return false, nil
			}
		}
	}

	return true, nil
}
