// SPDX-License-Identifier: MIT
// Package scalar: sentinel error set.
// Callers match with errors.Is; arithmetic never panics on user data.

package scalar

import "errors"

var (
	// ErrDivisionByZero is returned by Fixed.Div when the divisor mantissa is zero.
	// Float division follows IEEE (±Inf/NaN) and never returns it.
	ErrDivisionByZero = errors.New("scalar: division by zero")

	// ErrOverflow signals a Fixed result outside the int64 mantissa range.
	// Fixed.Div returns it; kernels return it when an update saturates.
	ErrOverflow = errors.New("scalar: fixed-point overflow")
)
