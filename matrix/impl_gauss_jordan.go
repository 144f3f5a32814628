// SPDX-License-Identifier: MIT

// Package matrix - Gauss-Jordan inversion with partial pivoting.
//
// Purpose:
//   - Reduce `in` to the identity while applying the same row operations to `out`
//     (initialized to the identity), so `out` ends up as in⁻¹.
//
// Determinism & Policy:
//   - Column order k = 0..n-1; rows i = 0..n-1 (i ≠ k) inside Eliminate(k).
//   - Pivoting happens only when the diagonal is exactly zero; the diagonal is used
//     as-is otherwise.
//   - The pivot row is read-only during Eliminate(k), which makes the parallel
//     variant produce the same bits as the sequential one.
//
// AI-Hints:
//   - Callers that need the original matrix should Clone it first, or use Inverse.
//   - Gate with CheckConditioned before calling Invert; Invert itself never rejects
//     on conditioning.

package matrix

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gaussjordan/scalar"
)

// Invert computes in⁻¹ into out by Gauss-Jordan elimination with partial pivoting.
// MAIN DESCRIPTION:
//   - in is mutated into the identity (explicit contract, not a side effect to rely on
//     being preserved); out is overwritten, starting from the identity.
//
// Implementation, per column k:
//   - SelectPivot(k): pivot = in[k][k]; if zero, FindPivotRow(k, k). No nonzero candidate ⇒ ErrSingular.
//   - Pivot(k):      exchange row handles k ↔ p in both matrices (same indices).
//   - Normalize(k):  ScaleRow(in[k], pivot), ScaleRow(out[k], pivot).
//   - Eliminate(k):  for i ≠ k, f = in[i][k]; EliminateRow(in[i], in[k], f) and
//     EliminateRow(out[i], out[k], f).
//
// Inputs:
//   - in, out: non-nil, same size, not sharing any row handle.
//   - opts: WithParallelElimination, WithTrace.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAliased (validation; nothing mutated).
//   - ErrSingular (wrapped with the column).
//   - scalar.ErrDivisionByZero (only reachable through a broken representation;
//     the zero-pivot guard fails first).
//   - scalar.ErrOverflow (Fixed only, wrapped with column and row): an entry of
//     the inverse, or an intermediate, left the int64 mantissa range.
//
// On error, both matrices are left exactly as the last completed step left them;
// the caller must discard them.
//
// Complexity:
//   - Time O(n³), Space O(1) for the sequential sweep (no allocation).
func Invert[T scalar.Scalar[T]](in, out *Dense[T], opts ...Option) error {
	if err := ValidateInversionPair(in, out); err != nil {
		return matrixErrorf(opInvert, err)
	}
	o := gatherOptions(opts...)
	out.Reset()

	n := in.n
	var (
		k, p  int
		pivot T
		found bool
		err   error
	)
	for k = 0; k < n; k++ {
		o.emit(Step{Col: k, State: StateSelectPivot, PivotRow: k})
		pivot, p = in.rows[k][k], k
		if pivot.IsZero() {
			p, found = findPivotRow(in, k, k)
			if !found {
				o.emit(Step{Col: k, State: StateSingular, PivotRow: k})
				return matrixErrorf(opInvert, fmt.Errorf("column %d: %w", k, ErrSingular))
			}
			in.rows[k], in.rows[p] = in.rows[p], in.rows[k]
			out.rows[k], out.rows[p] = out.rows[p], out.rows[k]
			pivot = in.rows[k][k]
		}
		o.emit(Step{Col: k, State: StatePivot, PivotRow: p, Swapped: p != k})

		o.emit(Step{Col: k, State: StateNormalize, PivotRow: p, Swapped: p != k})
		if err = ScaleRow(in.rows[k], pivot); err != nil {
			return matrixErrorf(opInvert, fmt.Errorf("column %d: %w", k, err))
		}
		if err = ScaleRow(out.rows[k], pivot); err != nil {
			return matrixErrorf(opInvert, fmt.Errorf("column %d: %w", k, err))
		}

		o.emit(Step{Col: k, State: StateEliminate, PivotRow: p, Swapped: p != k})
		if o.workers > 1 {
			err = eliminateColumnParallel(in, out, k, o.workers)
		} else {
			err = eliminateColumn(in, out, k)
		}
		if err != nil {
			return matrixErrorf(opInvert, fmt.Errorf("column %d: %w", k, err))
		}
	}
	o.emit(Step{Col: n, State: StateDone, PivotRow: n})

	return nil
}

// eliminateColumn clears column k in every row but k, in both matrices.
// It stops at the first row whose update overflows.
func eliminateColumn[T scalar.Scalar[T]](in, out *Dense[T], k int) error {
	pin, pout := in.rows[k], out.rows[k]
	for i := 0; i < in.n; i++ {
		if i == k {
			continue
		}
		if err := eliminatePair(in.rows[i], out.rows[i], pin, pout, k); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}

	return nil
}

// eliminateColumnParallel is eliminateColumn with rows fanned out over an errgroup.
// Each goroutine owns row i of both matrices and only reads row k. The first
// failing row is reported; other rows may already be updated.
func eliminateColumnParallel[T scalar.Scalar[T]](in, out *Dense[T], k, workers int) error {
	var g errgroup.Group
	g.SetLimit(workers)
	pin, pout := in.rows[k], out.rows[k]
	for i := 0; i < in.n; i++ {
		if i == k {
			continue
		}
		i := i // per-iteration copy; the closure below reports it (go 1.21 loop semantics)
		rin, rout := in.rows[i], out.rows[i]
		g.Go(func() error {
			if err := eliminatePair(rin, rout, pin, pout, k); err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			return nil
		})
	}

	return g.Wait()
}

// eliminatePair applies the same row update to row i of both matrices.
// The factor is read before the input row is rewritten.
func eliminatePair[T scalar.Scalar[T]](rin, rout, pin, pout []T, k int) error {
	f := rin[k]
	if err := eliminateRow(rin, pin, f); err != nil {
		return err
	}

	return eliminateRow(rout, pout, f)
}

// Inverse returns a⁻¹ as a fresh matrix, leaving a untouched (works on a clone).
//
// Errors:
//   - Same as Invert.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse[T scalar.Scalar[T]](a *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	work := a.Clone()
	inv, err := NewDense[T](a.n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err = Invert(work, inv, opts...); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
