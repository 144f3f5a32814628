// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations shared by both matrices of an inversion.
//
// Both operations work on row handles in place and skip work that cannot change a
// value (zero elements, unit divisor, zero factor). The skips are exact no-ops, not
// approximations; for Fixed they also avoid needless truncation.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/gaussjordan/scalar"
)

// ScaleRow divides every entry of row by divisor in place.
//
// Behavior highlights:
//   - Returns immediately when divisor is exactly the multiplicative identity.
//   - Zero entries are left untouched.
//   - Float: division by zero follows IEEE. Fixed: a zero divisor yields
//     scalar.ErrDivisionByZero, and a quotient out of range scalar.ErrOverflow, on
//     the first offending entry; entries before it are already scaled (no rollback).
//
// Complexity: Time O(len(row)), Space O(1).
func ScaleRow[T scalar.Scalar[T]](row []T, divisor T) error {
	if divisor.IsOne() {
		return nil
	}
	for j := range row {
		if row[j].IsZero() {
			continue
		}
		q, err := row[j].Div(divisor)
		if err != nil {
			return matrixErrorf(opScaleRow, fmt.Errorf("col %d: %w", j, err))
		}
		row[j] = q
	}

	return nil
}

// EliminateRow performs target[j] -= factor * source[j] for every column j, in place.
//
// Behavior highlights:
//   - Returns immediately when factor is zero.
//   - Columns where source[j] is zero are skipped.
//   - An update that saturates is not stored; columns before it are already
//     updated (no rollback).
//
// Errors:
//   - ErrDimensionMismatch when len(target) != len(source).
//   - scalar.ErrOverflow when an updated entry leaves the representable range.
//
// Complexity: Time O(len(row)), Space O(1).
func EliminateRow[T scalar.Scalar[T]](target, source []T, factor T) error {
	if err := ValidateRowPair(target, source); err != nil {
		return matrixErrorf(opEliminateRow, err)
	}
	if err := eliminateRow(target, source, factor); err != nil {
		return matrixErrorf(opEliminateRow, err)
	}

	return nil
}

// eliminateRow is the body of EliminateRow used by Invert; lengths are not checked.
func eliminateRow[T scalar.Scalar[T]](target, source []T, factor T) error {
	if factor.IsZero() {
		return nil
	}
	for j, s := range source {
		if s.IsZero() {
			continue
		}
		v := target[j].Sub(factor.Mul(s))
		if v.Overflowed() {
			return fmt.Errorf("col %d: %w", j, scalar.ErrOverflow)
		}
		target[j] = v
	}

	return nil
}
