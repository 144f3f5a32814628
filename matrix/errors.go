// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag via matrixErrorf) and tests MUST check them via errors.Is.
// No kernel panics on user-triggered error conditions; panics are reserved for
// programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Arithmetic failures raised by the scalar
// representation (scalar.ErrDivisionByZero) are passed through unchanged
// under the operation tag so errors.Is keeps matching them.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/size -> aliasing -> index -> numeric (singular, division).

var (
	// ErrInvalidDimensions indicates that a requested size is non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	// Public indexers (At/Set/Row/SwapRows) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of different sizes, or a row
	// whose length differs from its partner in a row operation.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that rows supplied to FromRows/FromFloat64s do not
	// form an n×n grid (ragged or rectangular input).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrAliased is returned by Invert when input and output share storage
	// (same matrix, or any shared row handle). Lock-step elimination would
	// otherwise read values it has just overwritten.
	ErrAliased = errors.New("matrix: input and output share storage")

	// ErrSingular is returned when, for some column, every remaining candidate
	// pivot is exactly zero. Fatal for the inversion attempt; never retried.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrIllConditioned is the caller-level gate outcome: the infinity-norm of
	// the input reached the configured threshold, so inversion is not attempted.
	// Invert never returns it.
	ErrIllConditioned = errors.New("matrix: matrix is not well-conditioned")
)
