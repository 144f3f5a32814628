// SPDX-License-Identifier: MIT

// Package matrix - condition estimator and the caller-level conditioning gate.
//
// The gate compares ‖A‖∞ (max row sum of |a_ij|) against a threshold before
// inversion. It is a heuristic proxy: ‖A‖∞ alone bounds neither the condition
// number κ∞(A) = ‖A‖∞·‖A⁻¹‖∞ nor the achievable accuracy. A small-norm matrix can
// still be nearly singular. ConditionEstimate reports the real κ∞ once an inverse
// exists, so callers can see how far the gate was from the true value.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gaussjordan/scalar"
)

// NormInf returns ‖d‖∞: the maximum over rows of Σ_j |d[i][j]|, evaluated in float64.
// Pure; does not mutate d. A NaN entry makes the result NaN.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(n²), Space O(1).
func NormInf[T scalar.Scalar[T]](d *Dense[T]) (float64, error) {
	if err := ValidateNotNil(d); err != nil {
		return 0, matrixErrorf(opNormInf, err)
	}

	var norm, sum float64
	for i := 0; i < d.n; i++ {
		sum = 0
		for _, v := range d.rows[i] {
			sum += math.Abs(v.Float64())
		}
		if math.IsNaN(sum) {
			return math.NaN(), nil
		}
		if sum > norm {
			norm = sum
		}
	}

	return norm, nil
}

// CheckConditioned is the caller-level gate: it returns the norm and
// ErrIllConditioned when norm >= threshold (or the norm is NaN).
// Invert never calls it; callers decide whether to invert at all.
//
// Errors:
//   - ErrNilMatrix, ErrIllConditioned (wrapped with the observed norm).
func CheckConditioned[T scalar.Scalar[T]](d *Dense[T], threshold float64) (float64, error) {
	norm, err := NormInf(d)
	if err != nil {
		return 0, matrixErrorf(opCheck, err)
	}
	if !(norm < threshold) {
		return norm, matrixErrorf(opCheck, fmt.Errorf("norm %g >= threshold %g: %w", norm, threshold, ErrIllConditioned))
	}

	return norm, nil
}

// ConditionEstimate returns κ∞ = ‖a‖∞ · ‖inv‖∞ for a matrix and its computed inverse.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func ConditionEstimate[T scalar.Scalar[T]](a, inv *Dense[T]) (float64, error) {
	if err := ValidateBinary(a, inv); err != nil {
		return 0, matrixErrorf(opCondition, err)
	}
	na, _ := NormInf(a)
	ni, _ := NormInf(inv)

	return na * ni, nil
}
