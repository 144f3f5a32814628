// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the element-wise companions of Mul (Add, Sub, Scale, Transpose) in T
//     arithmetic, so residuals like A·X − I can be formed without leaving the
//     representation under test.
//
// Determinism & Performance:
//   - Fixed loop order i→j; one fresh Dense per call; inputs are never mutated.
//   - The private ew kernel walks row handles directly; validation happens once.
//
// AI-Hints:
//   - For Fixed, Add/Sub are exact while Scale truncates like any Mul; any
//     saturated entry fails the call with scalar.ErrOverflow.
//   - Compare in float64 (AllClose, VerifyInverse) when judging a Fixed result.

package matrix

import (
	"github.com/katalvlaran/gaussjordan/scalar"
)

const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opTranspose = "Transpose"
)

// ewBinary computes out[i][j] = f(a[i][j], b[i][j]). Assumes a and b are validated.
// A saturated entry fails the whole call with scalar.ErrOverflow.
func ewBinary[T scalar.Scalar[T]](a, b *Dense[T], f func(x, y T) T) (*Dense[T], error) {
	out, _ := NewDense[T](a.n) // a.n > 0 by construction
	for i := 0; i < a.n; i++ {
		ra, rb, ro := a.rows[i], b.rows[i], out.rows[i]
		for j := range ro {
			ro[j] = f(ra[j], rb[j])
		}
		if err := checkRow(ro, i); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Add returns a + b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, scalar.ErrOverflow.
//
// Complexity: O(n²).
func Add[T scalar.Scalar[T]](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	out, err := ewBinary(a, b, func(x, y T) T { return x.Add(y) })
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return out, nil
}

// Sub returns a − b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, scalar.ErrOverflow.
//
// Complexity: O(n²).
func Sub[T scalar.Scalar[T]](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	out, err := ewBinary(a, b, func(x, y T) T { return x.Sub(y) })
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return out, nil
}

// Scale returns alpha·d. Zero entries stay zero without a multiply.
//
// Errors:
//   - ErrNilMatrix, scalar.ErrOverflow.
//
// Complexity: O(n²).
func Scale[T scalar.Scalar[T]](d *Dense[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(d); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out, _ := NewDense[T](d.n)
	for i := 0; i < d.n; i++ {
		for j, v := range d.rows[i] {
			if !v.IsZero() {
				out.rows[i][j] = v.Mul(alpha)
			}
		}
		if err := checkRow(out.rows[i], i); err != nil {
			return nil, matrixErrorf(opScale, err)
		}
	}

	return out, nil
}

// Transpose returns dᵀ.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity: O(n²).
func Transpose[T scalar.Scalar[T]](d *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(d); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, _ := NewDense[T](d.n)
	for i := 0; i < d.n; i++ {
		for j, v := range d.rows[i] {
			out.rows[j][i] = v
		}
	}

	return out, nil
}

// Residual returns A·X − I in T arithmetic; for an exact inverse every entry is zero.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(n³).
func Residual[T scalar.Scalar[T]](a, x *Dense[T]) (*Dense[T], error) {
	p, err := Mul(a, x)
	if err != nil {
		return nil, err
	}
	id, _ := NewIdentity[T](a.n)

	return Sub(p, id)
}
