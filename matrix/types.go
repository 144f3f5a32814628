// SPDX-License-Identifier: MIT

// Package matrix: domain types describing the elimination state machine.
// This file intentionally contains ONLY the observable state types reported
// through WithTrace; storage lives in impl_dense.go and kernels in impl_*.go.
package matrix

// State names a phase of the Gauss-Jordan sweep for one column.
//
//	SelectPivot(k) → Pivot(k) → Normalize(k) → Eliminate(k) → SelectPivot(k+1)
//	SelectPivot(k) → Singular            (no nonzero candidate in column k)
//	SelectPivot(N) → Done
type State int

const (
	// StateSelectPivot reads the diagonal and, if it is zero, searches below it.
	StateSelectPivot State = iota
	// StatePivot exchanges row handles in both matrices when a swap is required.
	StatePivot
	// StateNormalize scales the pivot row of both matrices by the pivot value.
	StateNormalize
	// StateEliminate clears column k in every other row of both matrices.
	StateEliminate
	// StateDone is terminal: the input is the identity, the output is the inverse.
	StateDone
	// StateSingular is terminal: column k has no nonzero pivot candidate.
	StateSingular
)

// stateNames is indexed by State.
var stateNames = [...]string{
	StateSelectPivot: "SelectPivot",
	StatePivot:       "Pivot",
	StateNormalize:   "Normalize",
	StateEliminate:   "Eliminate",
	StateDone:        "Done",
	StateSingular:    "Singular",
}

// String returns the state name, or "State(?)" for unknown values.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "State(?)"
	}
	return stateNames[s]
}

// Step is one observed transition of the elimination state machine.
//   - Col is the column being processed (N for StateDone).
//   - PivotRow is the row whose handle ends up at Col (meaningful from StatePivot on).
//   - Swapped reports whether a row exchange happened for this column.
type Step struct {
	Col      int
	State    State
	PivotRow int
	Swapped  bool
}
