// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"strconv"
)

// Float is the native IEEE-754 double representation.
// NaN and ±Inf propagate unchanged through every operation.
type Float float64

// Compile-time assertion: Float satisfies the arithmetic contract.
var _ Scalar[Float] = Float(0)

// Add returns a + b.
func (a Float) Add(b Float) Float { return a + b }

// Sub returns a - b.
func (a Float) Sub(b Float) Float { return a - b }

// Mul returns a * b.
func (a Float) Mul(b Float) Float { return a * b }

// Div returns a / b. Division by zero yields ±Inf or NaN per IEEE; the error is always nil.
func (a Float) Div(b Float) (Float, error) { return a / b, nil }

// Abs returns |a|.
func (a Float) Abs() Float { return Float(math.Abs(float64(a))) }

// AbsCmp compares |a| and |b|.
// NaN compares as smaller than any number so it is never chosen as a pivot.
func (a Float) AbsCmp(b Float) int {
	x, y := math.Abs(float64(a)), math.Abs(float64(b))
	switch {
	case x > y:
		return 1
	case x < y:
		return -1
	case x == y:
		return 0
	case math.IsNaN(x) && !math.IsNaN(y):
		return -1
	case !math.IsNaN(x) && math.IsNaN(y):
		return 1
	default:
		return 0
	}
}

// IsZero reports a == 0 (true for both +0 and -0).
func (a Float) IsZero() bool { return a == 0 }

// IsOne reports a == 1 exactly.
func (a Float) IsOne() bool { return a == 1 }

// Overflowed is always false: IEEE overflow yields ±Inf, which propagates instead.
func (Float) Overflowed() bool { return false }

// Float64 returns a as float64.
func (a Float) Float64() float64 { return float64(a) }

// FromFloat64 returns Float(f); the receiver is ignored.
func (Float) FromFloat64(f float64) Float { return Float(f) }

// String formats with the shortest representation that round-trips.
func (a Float) String() string { return strconv.FormatFloat(float64(a), 'g', -1, 64) }
