// SPDX-License-Identifier: MIT

// Package scalar - fixed-point emulation (integer mantissa + explicit binary scale).
//
// Representation:
//   - A Fixed holds (mant, scale) and denotes mant / 2^scale.
//   - Invariant: mant != 0 ⇒ scale == BaseScale; mant == 0 ⇒ scale == 0.
//     Every constructor and operation renormalizes, so the number of fractional
//     bits stays constant and the scale never grows without bound.
//
// Rounding:
//   - Right shifts drop the lowest bits (arithmetic shift, i.e. floor for negatives).
//   - Division truncates toward zero (Go integer division).
//   - No rounding is ever applied; results are reproducible bit-for-bit.
//
// Range:
//   - mant is int64. Mul and Div form their intermediates in 128 bits, so a
//     result is exact (up to the truncation above) whenever it fits in int64.
//   - A result that does not fit saturates to ±MaxInt64 and reports Overflowed;
//     saturation is sticky through Add, Sub and Mul, and Div returns ErrOverflow.
//     The two extreme mantissas are reserved for this, so MinInt64 never occurs
//     and Abs is always exact.
//   - The condition gate bounds ‖A‖∞ only. A nearly singular matrix can pass it
//     and still have an inverse beyond 2^(63-BaseScale); elimination then stops
//     with ErrOverflow instead of returning wrapped values.
package scalar

import (
	"math"
	"math/bits"
	"strconv"
)

// BaseScale is the number of fractional bits every nonzero Fixed carries.
const BaseScale = 11

// fixedOne is the mantissa of 1.0 at BaseScale.
const fixedOne int64 = 1 << BaseScale

// mantLimit is 2^63 as float64; conversions at or beyond it saturate.
const mantLimit = float64(1 << 63)

// satMant is the saturated mantissa magnitude; ±satMant marks an overflowed value.
const satMant int64 = math.MaxInt64

// fracMask selects the bits dropped by the post-multiply shift.
const fracMask uint64 = 1<<BaseScale - 1

// Fixed is a fixed-point number mant / 2^scale. The zero value is 0.
type Fixed struct {
	mant  int64 // signed integer mantissa
	scale int   // binary exponent; BaseScale for nonzero values, 0 for zero
}

// Compile-time assertion: Fixed satisfies the arithmetic contract.
var _ Scalar[Fixed] = Fixed{}

// NewFixed builds mant / 2^scale and renormalizes it to BaseScale.
// Scales above BaseScale lose their lowest bits.
func NewFixed(mant int64, scale int) Fixed { return normalize(mant, scale) }

// FixedFromInt returns the integer i as a Fixed.
func FixedFromInt(i int64) Fixed { return normalize(i, 0) }

// FixedFromFloat64 converts f, truncating toward zero at BaseScale precision.
// NaN maps to zero; ±Inf and out-of-range values saturate (Overflowed reports true).
func FixedFromFloat64(f float64) Fixed {
	v := math.Trunc(math.Ldexp(f, BaseScale))
	switch {
	case v == 0 || math.IsNaN(v):
		return Fixed{}
	case v >= mantLimit:
		return saturated(false)
	case v <= -mantLimit:
		return saturated(true)
	}

	return normalize(int64(v), BaseScale)
}

// Epsilon returns the smallest positive Fixed (one unit in the last place).
func Epsilon() Fixed { return Fixed{mant: 1, scale: BaseScale} }

// saturated returns the overflow marker with the given sign.
func saturated(neg bool) Fixed {
	if neg {
		return Fixed{mant: -satMant, scale: BaseScale}
	}
	return Fixed{mant: satMant, scale: BaseScale}
}

// normalize restores the representation invariant.
// Left shifts that would lose high bits saturate; MinInt64 is clamped to -MaxInt64.
func normalize(mant int64, scale int) Fixed {
	if mant == 0 {
		return Fixed{}
	}
	switch {
	case scale > BaseScale:
		mant >>= uint(scale - BaseScale) // drops low bits
	case scale < BaseScale:
		sh := uint(BaseScale - scale)
		if magnitude(mant) > uint64(satMant)>>sh {
			return saturated(mant < 0)
		}
		mant <<= sh
	}
	switch mant {
	case 0:
		return Fixed{}
	case math.MinInt64:
		mant = -satMant
	}

	return Fixed{mant: mant, scale: BaseScale}
}

// align brings a and b to the larger of their scales by left-shifting the other mantissa.
func align(a, b Fixed) (am, bm int64, scale int) {
	switch {
	case a.scale > b.scale:
		return a.mant, b.mant << uint(a.scale-b.scale), a.scale
	case a.scale < b.scale:
		return a.mant << uint(b.scale-a.scale), b.mant, b.scale
	}

	return a.mant, b.mant, a.scale
}

// Mantissa returns the raw integer mantissa.
func (a Fixed) Mantissa() int64 { return a.mant }

// Scale returns the binary scale (BaseScale, or 0 for zero).
func (a Fixed) Scale() int { return a.scale }

// Add returns a + b. A sum beyond the int64 range, or any overflowed operand,
// yields a saturated result.
func (a Fixed) Add(b Fixed) Fixed {
	if a.Overflowed() || b.Overflowed() {
		return saturated(a.Float64()+b.Float64() < 0)
	}
	am, bm, s := align(a, b)
	sum := am + bm
	if (am > 0 && bm > 0 && sum < 0) || (am < 0 && bm < 0 && sum >= 0) {
		return saturated(am < 0)
	}

	return normalize(sum, s)
}

// Sub returns a - b, saturating like Add.
func (a Fixed) Sub(b Fixed) Fixed {
	if b.mant == 0 {
		return a
	}

	return a.Add(Fixed{mant: -b.mant, scale: b.scale})
}

// Mul returns a * b: (a.mant*b.mant) >> BaseScale at scale a.scale+b.scale-BaseScale.
// The product is formed in 128 bits and the shift floors, exactly as an arithmetic
// right shift of the full signed product would. A result beyond the int64 range,
// or any overflowed operand, yields a saturated result.
func (a Fixed) Mul(b Fixed) Fixed {
	if a.mant == 0 || b.mant == 0 {
		return Fixed{}
	}
	neg := (a.mant < 0) != (b.mant < 0)
	if a.Overflowed() || b.Overflowed() {
		return saturated(neg)
	}

	hi, lo := bits.Mul64(magnitude(a.mant), magnitude(b.mant))
	if hi>>BaseScale != 0 {
		return saturated(neg)
	}
	q := hi<<(64-BaseScale) | lo>>BaseScale
	if neg && lo&fracMask != 0 {
		q++ // floor toward -Inf
	}
	if q >= uint64(satMant) {
		return saturated(neg)
	}
	m := int64(q)
	if neg {
		m = -m
	}

	return normalize(m, a.scale+b.scale-BaseScale)
}

// Div returns a / b: (a.mant << BaseScale) / b.mant at scale a.scale+BaseScale-b.scale.
// The dividend is shifted in 128 bits so the quotient keeps BaseScale fractional
// bits; the quotient truncates toward zero.
//
// Errors:
//   - ErrDivisionByZero when b has a zero mantissa.
//   - ErrOverflow when either operand is overflowed or the quotient does not fit.
func (a Fixed) Div(b Fixed) (Fixed, error) {
	if b.mant == 0 {
		return Fixed{}, ErrDivisionByZero
	}
	if a.Overflowed() || b.Overflowed() {
		return Fixed{}, ErrOverflow
	}
	if a.mant == 0 {
		return Fixed{}, nil
	}

	ua, ub := magnitude(a.mant), magnitude(b.mant)
	hi, lo := ua>>(64-BaseScale), ua<<BaseScale
	if hi >= ub {
		return Fixed{}, ErrOverflow
	}
	q, _ := bits.Div64(hi, lo, ub)
	if q >= uint64(satMant) {
		return Fixed{}, ErrOverflow
	}
	m := int64(q)
	if (a.mant < 0) != (b.mant < 0) {
		m = -m
	}

	return normalize(m, a.scale+BaseScale-b.scale), nil
}

// Abs returns |a|. Exact for every value: MinInt64 is never a mantissa.
func (a Fixed) Abs() Fixed {
	if a.mant < 0 {
		return Fixed{mant: -a.mant, scale: a.scale}
	}
	return a
}

// AbsCmp compares |a| with |b| exactly (no float conversion on the common path).
func (a Fixed) AbsCmp(b Fixed) int {
	if a.scale != b.scale && a.mant != 0 && b.mant != 0 {
		// unreachable for normalized values; fall back to float magnitudes
		return Float(a.Float64()).AbsCmp(Float(b.Float64()))
	}
	x, y := magnitude(a.mant), magnitude(b.mant)
	switch {
	case x > y:
		return 1
	case x < y:
		return -1
	}

	return 0
}

// Overflowed reports whether a is the saturated result of an out-of-range
// conversion or operation.
func (a Fixed) Overflowed() bool { return a.mant == satMant || a.mant == -satMant }

// magnitude returns |m| as uint64; MinInt64 maps to 2^63.
func magnitude(m int64) uint64 {
	if m < 0 {
		return uint64(-m)
	}
	return uint64(m)
}

// IsZero reports a zero mantissa.
func (a Fixed) IsZero() bool { return a.mant == 0 }

// IsOne reports the exact multiplicative identity (mant == 2^BaseScale at BaseScale).
func (a Fixed) IsOne() bool { return a.mant == fixedOne && a.scale == BaseScale }

// Float64 returns mant / 2^scale.
func (a Fixed) Float64() float64 { return math.Ldexp(float64(a.mant), -a.scale) }

// FromFloat64 is FixedFromFloat64; the receiver is ignored.
func (Fixed) FromFloat64(f float64) Fixed { return FixedFromFloat64(f) }

// String formats the exact decimal value of a.
func (a Fixed) String() string { return strconv.FormatFloat(a.Float64(), 'f', -1, 64) }
