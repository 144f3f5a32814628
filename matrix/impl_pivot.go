// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/gaussjordan/scalar"

// FindPivotRow selects the partial-pivoting row for column col among rows start..n-1.
// The row with the largest |d[r][col]| wins; ties keep the earliest row (strictly
// greater comparisons only). ok is false when the best value is exactly zero, i.e.
// the column segment has no usable pivot.
//
// The outcome is decided on the pivot VALUE, never on the returned index: row 0 (or
// row start) is a legitimate answer and does not mean "not found".
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (col or start outside [0, n)).
//
// Complexity:
//   - Time O(n-start), Space O(1).
func FindPivotRow[T scalar.Scalar[T]](d *Dense[T], col, start int) (row int, ok bool, err error) {
	if err = ValidateNotNil(d); err != nil {
		return 0, false, matrixErrorf(opFindPivotRow, err)
	}
	if err = ValidateIndex(d, col); err != nil {
		return 0, false, matrixErrorf(opFindPivotRow, err)
	}
	if err = ValidateIndex(d, start); err != nil {
		return 0, false, matrixErrorf(opFindPivotRow, err)
	}
	row, ok = findPivotRow(d, col, start)

	return row, ok, nil
}

// findPivotRow is the unchecked scan used by Invert.
func findPivotRow[T scalar.Scalar[T]](d *Dense[T], col, start int) (int, bool) {
	best := start
	bestVal := d.rows[start][col]
	for r := start + 1; r < d.n; r++ {
		if v := d.rows[r][col]; v.AbsCmp(bestVal) > 0 {
			best, bestVal = r, v
		}
	}

	return best, !bestVal.IsZero()
}
