// Package scalar provides the two interchangeable numeric representations used by
// the elimination kernels in package matrix:
//
//   - Float: native IEEE-754 double arithmetic.
//   - Fixed: fixed-point emulation with an int64 mantissa and an explicit binary
//     scale, for targets where floating-point hardware is unavailable or undesirable.
//
// Both satisfy Scalar[T], so kernels are written once and instantiated per
// representation:
//
//	in, _ := matrix.FromFloat64s[scalar.Fixed]([][]float64{{2, 0}, {0, 2}})
//	out, _ := matrix.NewDense[scalar.Fixed](2)
//	err := matrix.Invert(in, out)
//
// Fixed keeps exactly BaseScale fractional bits after every operation; see fixed.go
// for the rounding rules.
package scalar
