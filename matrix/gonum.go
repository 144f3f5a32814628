// SPDX-License-Identifier: MIT

// Package matrix - bridge to gonum for float64 verification.
//
// Verification runs in float64 regardless of T, so a Fixed inverse is judged by
// its true error against the input, not by fixed-point arithmetic that shares its
// truncation.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gaussjordan/scalar"
)

// ToGonum copies d into a new *mat.Dense (values via Float64()).
// Complexity: O(n²).
func ToGonum[T scalar.Scalar[T]](d *Dense[T]) *mat.Dense {
	g := mat.NewDense(d.n, d.n, nil)
	for i := 0; i < d.n; i++ {
		for j, v := range d.rows[i] {
			g.Set(i, j, v.Float64())
		}
	}

	return g
}

// VerifyInverse returns the residual ‖a·inv − I‖∞ computed in float64 with gonum.
// a must be the ORIGINAL matrix (Invert reduces its input to the identity, so
// verify against a clone taken before inverting).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func VerifyInverse[T scalar.Scalar[T]](a, inv *Dense[T]) (float64, error) {
	if err := ValidateBinary(a, inv); err != nil {
		return 0, matrixErrorf(opVerifyInverse, err)
	}
	var p mat.Dense
	p.Mul(ToGonum(a), ToGonum(inv))
	for i := 0; i < a.n; i++ {
		p.Set(i, i, p.At(i, i)-1)
	}

	return mat.Norm(&p, math.Inf(1)), nil
}
