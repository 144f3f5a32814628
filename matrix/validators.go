// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/size/alias/index checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - The alias check is O(n²) pointer comparisons; it runs once per Invert call.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Size → Alias).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/gaussjordan/scalar"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix pointer is non-nil.
//
// Returns ErrNilMatrix if d == nil.
// Complexity: O(1).
func ValidateNotNil[T scalar.Scalar[T]](d *Dense[T]) error {
	if d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameSize ensures a and b have the same n. Assumes both are non-nil.
// Complexity: O(1).
func ValidateSameSize[T scalar.Scalar[T]](a, b *Dense[T]) error {
	if a.n != b.n {
		return validatorErrorf("ValidateSameSize", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinary – Composite: NotNil(a) → NotNil(b) → SameSize.
// Complexity: O(1).
func ValidateBinary[T scalar.Scalar[T]](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	if err := ValidateSameSize(a, b); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}

	return nil
}

// ValidateInversionPair – Composite: Binary(in, out) → not aliased.
// Rejects in == out and any shared row handle between the two.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrAliased.
// Complexity: O(n²).
func ValidateInversionPair[T scalar.Scalar[T]](in, out *Dense[T]) error {
	if err := ValidateBinary(in, out); err != nil {
		return validatorErrorf("ValidateInversionPair", err)
	}
	if in == out || sharesRows(in, out) {
		return validatorErrorf("ValidateInversionPair", ErrAliased)
	}

	return nil
}

// ValidateIndex ensures 0 ≤ i < d.Size(). Assumes d is non-nil.
// Complexity: O(1).
func ValidateIndex[T scalar.Scalar[T]](d *Dense[T], i int) error {
	if !d.inRange(i) {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d)", i), ErrOutOfRange)
	}

	return nil
}

// ValidateRowPair ensures two rows have the same length (row-operation operands).
// Complexity: O(1).
func ValidateRowPair[T scalar.Scalar[T]](target, source []T) error {
	if len(target) != len(source) {
		return validatorErrorf("ValidateRowPair", ErrDimensionMismatch)
	}

	return nil
}
