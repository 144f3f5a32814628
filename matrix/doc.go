// Package matrix inverts square matrices by Gauss-Jordan elimination with partial
// pivoting, over any representation satisfying scalar.Scalar.
//
// The matrix package provides:
//
//   - Dense[T], an n×n matrix whose rows are independently owned handles, so a
//     pivot swap is an O(1) handle exchange rather than an element copy.
//   - NormInf and CheckConditioned, the infinity-norm conditioning gate a caller
//     applies before deciding to invert (threshold DefaultConditionThreshold = 25).
//   - FindPivotRow, ScaleRow and EliminateRow, the building blocks of the sweep.
//   - Invert, which reduces its input to the identity in place while turning the
//     output into the inverse, and Inverse, which preserves its input.
//   - VerifyInverse and ToGonum, a float64 residual check backed by gonum.
//   - Mul, Add, Sub, Scale, Transpose and Residual in T arithmetic, for checking a
//     result without leaving its representation.
//
// Typical use:
//
//	a, _ := matrix.FromFloat64s[scalar.Fixed](rows)
//	if _, err := matrix.CheckConditioned(a, matrix.DefaultConditionThreshold); err != nil {
//		return err // errors.Is(err, matrix.ErrIllConditioned)
//	}
//	inv, _ := matrix.NewDense[scalar.Fixed](a.Size())
//	if err := matrix.Invert(a, inv); err != nil {
//		return err // matrix.ErrSingular, or scalar.ErrOverflow for Fixed
//	}
//
// Dense values are not safe for concurrent mutation. Invert is synchronous;
// WithParallelElimination only fans out the independent row updates of one column.
package matrix
