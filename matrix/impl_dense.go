// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row handles over a row-major buffer) & safe accessors.
//
// Purpose:
//   - Keep rows independently addressable: rows[i] is a handle (slice header) and
//     SwapRows exchanges handles in O(1) without copying elements.
//   - Carry the size on the value itself; there is no package-level state.
//   - Guarantee safety at the public surface: At/Set/Row/SwapRows return errors instead of panicking.
//
// AI-Hints:
//   - Kernels in this package index d.rows directly after validating once.
//   - FromRows adopts caller-owned rows (no copy); NewDense allocates one flat buffer
//     and slices it into rows for cache-friendly sweeps.
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; At/Set/Row/SwapRows: O(1); Clone: O(n²); Reset: O(n²).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gaussjordan/scalar"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxSwapRows = "SwapRows" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable via %w; messages look like "Dense.At(3,1): matrix: index out of range".
func denseErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, i, j, err)
}

// Dense is a square n×n matrix of T stored as n row handles.
//   - n is the size (rows == cols == n, n > 0).
//   - rows[i] has length n at all times; handles may be exchanged, never resized.
type Dense[T scalar.Scalar[T]] struct {
	n    int   // size; never global
	rows [][]T // row handles
}

// NewDense creates an n×n zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict size validation.
//
// Implementation:
//   - Stage 1: validate n > 0; else ErrInvalidDimensions.
//   - Stage 2: allocate one zero-filled buffer of n*n and slice it into n row handles.
//
// Behavior highlights:
//   - The zero value of T is the additive identity, so no explicit fill is needed.
//   - Row handles use full-slice expressions (cap == n), so an append on a handle
//     can never spill into the next row.
//
// Errors:
//   - ErrInvalidDimensions (n <= 0).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewDense[T scalar.Scalar[T]](n int) (*Dense[T], error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]T, n*n)
	rows := make([][]T, n)
	for i := 0; i < n; i++ {
		rows[i] = buf[i*n : (i+1)*n : (i+1)*n]
	}

	return &Dense[T]{n: n, rows: rows}, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²).
func NewIdentity[T scalar.Scalar[T]](n int) (*Dense[T], error) {
	d, err := NewDense[T](n)
	if err != nil {
		return nil, err
	}
	d.Reset()

	return d, nil
}

// FromRows adopts caller-owned rows as a matrix without copying.
// The caller keeps ownership of the backing storage; Invert only reads, writes,
// and exchanges the handles held by the returned Dense.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty.
//   - ErrNonSquare when any row length differs from len(rows).
func FromRows[T scalar.Scalar[T]](rows [][]T) (*Dense[T], error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}
	for i := range rows {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(rows[i]), n, ErrNonSquare)
		}
	}
	handles := make([][]T, n)
	copy(handles, rows)

	return &Dense[T]{n: n, rows: handles}, nil
}

// FromFloat64s converts a float64 grid into a freshly allocated Dense[T].
// Each value goes through T.FromFloat64 (truncation rules of the representation apply).
//
// Errors:
//   - ErrInvalidDimensions, ErrNonSquare (same contract as FromRows).
func FromFloat64s[T scalar.Scalar[T]](vals [][]float64) (*Dense[T], error) {
	n := len(vals)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}
	d, err := NewDense[T](n)
	if err != nil {
		return nil, err
	}
	var conv T
	for i := range vals {
		if len(vals[i]) != n {
			return nil, fmt.Errorf("FromFloat64s: row %d has %d entries, want %d: %w", i, len(vals[i]), n, ErrNonSquare)
		}
		for j, v := range vals[i] {
			d.rows[i][j] = conv.FromFloat64(v)
		}
	}

	return d, nil
}

// Size returns n. Complexity: O(1).
func (d *Dense[T]) Size() int { return d.n }

// Rows returns n (row count). Complexity: O(1).
func (d *Dense[T]) Rows() int { return d.n }

// Cols returns n (column count). Complexity: O(1).
func (d *Dense[T]) Cols() int { return d.n }

// inRange reports 0 ≤ i < n.
func (d *Dense[T]) inRange(i int) bool { return i >= 0 && i < d.n }

// At returns the value at (i, j) or ErrOutOfRange.
// Complexity: O(1).
func (d *Dense[T]) At(i, j int) (T, error) {
	if !d.inRange(i) || !d.inRange(j) {
		var zero T
		return zero, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return d.rows[i][j], nil
}

// Set stores v at (i, j) or returns ErrOutOfRange.
// Complexity: O(1).
func (d *Dense[T]) Set(i, j int, v T) error {
	if !d.inRange(i) || !d.inRange(j) {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	d.rows[i][j] = v

	return nil
}

// Row returns the handle of row i (no copy); writes through it mutate the matrix.
// Complexity: O(1).
func (d *Dense[T]) Row(i int) ([]T, error) {
	if !d.inRange(i) {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return d.rows[i], nil
}

// SwapRows exchanges the handles of rows i and j. No element is copied.
// Complexity: O(1).
func (d *Dense[T]) SwapRows(i, j int) error {
	if !d.inRange(i) || !d.inRange(j) {
		return denseErrorf(ctxSwapRows, i, j, ErrOutOfRange)
	}
	d.rows[i], d.rows[j] = d.rows[j], d.rows[i]

	return nil
}

// Reset overwrites d with the identity in place (no allocation).
// Complexity: O(n²).
func (d *Dense[T]) Reset() {
	one := scalar.One[T]()
	var zero T
	for i := 0; i < d.n; i++ {
		row := d.rows[i]
		for j := range row {
			row[j] = zero
		}
		row[i] = one
	}
}

// Clone returns a deep copy backed by fresh storage, preserving the current row order.
// Complexity: O(n²).
func (d *Dense[T]) Clone() *Dense[T] {
	c, _ := NewDense[T](d.n) // d.n > 0 by construction
	for i := 0; i < d.n; i++ {
		copy(c.rows[i], d.rows[i])
	}

	return c
}

// Float64s exports the values as a freshly allocated [][]float64.
// Complexity: O(n²).
func (d *Dense[T]) Float64s() [][]float64 {
	out := make([][]float64, d.n)
	for i := 0; i < d.n; i++ {
		out[i] = make([]float64, d.n)
		for j, v := range d.rows[i] {
			out[i][j] = v.Float64()
		}
	}

	return out
}

// String renders one bracketed row per line: "[1, 0]\n[0, 1]\n".
func (d *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < d.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j, v := range d.rows[i] {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(v.String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// sharesRows reports whether a and b hold any common row handle.
// Pointer comparison on the first element only; rows never have length 0.
func sharesRows[T scalar.Scalar[T]](a, b *Dense[T]) bool {
	for i := 0; i < a.n; i++ {
		pa := &a.rows[i][0]
		for j := 0; j < b.n; j++ {
			if pa == &b.rows[j][0] {
				return true
			}
		}
	}

	return false
}
