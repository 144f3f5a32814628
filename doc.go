// Package gaussjordan inverts small square matrices by Gauss-Jordan
// elimination with partial pivoting, in floating point or in fixed point.
//
// 🚀 What is inside?
//
//	• scalar/ - the numeric values: Float (float64) and Fixed (int64 mantissa,
//	             11 fractional bits), both behind one generic constraint
//	• matrix/ - Dense[T] row-handle storage, the infinity-norm gate, the pivot
//	             search, row operations and the Invert orchestrator
//	• cmd/matinv - a CLI that reads a matrix file, gates it, inverts it and prints
//	             the result
//
// ✨ Why two representations?
//
//   - Fixed reproduces integer-only targets bit for bit (no FPU needed).
//   - Float is the reference; gonum checks both through a float64 residual.
//   - One kernel serves both: Invert[T] never branches on the representation.
//
// Quick start:
//
//	a, _ := matrix.FromFloat64s[scalar.Fixed]([][]float64{{4, 7}, {2, 6}})
//	if _, err := matrix.CheckConditioned(a, matrix.DefaultConditionThreshold); err != nil {
//		return err // errors.Is(err, matrix.ErrIllConditioned)
//	}
//	inv, err := matrix.Inverse(a) // scalar.ErrOverflow if a Fixed entry leaves the range
//
// The gate is a heuristic: it bounds the input's infinity-norm, not its true
// condition number, so it says nothing about the size of the inverse. A nearly
// singular Fixed input can pass it and still fail with scalar.ErrOverflow.
// matrix.ConditionEstimate reports κ∞ after a successful inversion.
package gaussjordan
