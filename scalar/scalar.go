// SPDX-License-Identifier: MIT

// Package scalar - arithmetic contract shared by every numeric representation.
//
// Purpose:
//   - Declare the Scalar constraint that kernels in package matrix are written against.
//   - Provide tiny generic helpers (Zero, One, FromFloat64) so callers never switch on
//     the concrete representation.
//
// Determinism:
//   - All implementations are value types; operations return new values and never
//     mutate the receiver.
package scalar

// Scalar is the arithmetic contract satisfied by Float and Fixed.
// T is the implementing type itself (F-bounded), so kernels can be written once:
//
//	func ScaleRow[T scalar.Scalar[T]](row []T, d T) error
//
// Contract:
//   - The zero value of T is the additive identity.
//   - Div returns ErrDivisionByZero only where the representation has no
//     encoding for the quotient (Fixed). Float follows IEEE and never errors.
//   - Add, Sub and Mul never fail; a representation with a bounded range saturates
//     and reports it through Overflowed, and kernels turn that into ErrOverflow.
//   - FromFloat64 ignores the receiver; it is a constructor reachable from a
//     zero value of T.
type Scalar[T any] interface {
	// Add returns receiver + b.
	Add(b T) T
	// Sub returns receiver - b.
	Sub(b T) T
	// Mul returns receiver * b.
	Mul(b T) T
	// Div returns receiver / b.
	Div(b T) (T, error)
	// Abs returns |receiver|.
	Abs() T
	// AbsCmp compares |receiver| with |b| and returns -1, 0 or +1.
	AbsCmp(b T) int
	// IsZero reports whether the value is exactly the additive identity.
	IsZero() bool
	// IsOne reports whether the value is exactly the multiplicative identity.
	IsOne() bool
	// Overflowed reports whether the value is a saturated out-of-range result.
	// Representations without saturation (Float) always report false.
	Overflowed() bool
	// Float64 converts the value to float64.
	Float64() float64
	// FromFloat64 builds a T from f.
	FromFloat64(f float64) T
	// String renders the value in decimal.
	String() string
}

// Zero returns the additive identity of T.
func Zero[T Scalar[T]]() T {
	var z T
	return z
}

// One returns the multiplicative identity of T.
func One[T Scalar[T]]() T {
	var z T
	return z.FromFloat64(1)
}

// FromFloat64 converts f into T.
func FromFloat64[T Scalar[T]](f float64) T {
	var z T
	return z.FromFloat64(f)
}
