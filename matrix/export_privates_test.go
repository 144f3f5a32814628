// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels.
//
// Purpose:
//   - Expose UNEXPORTED helpers to matrix_test ONLY; the _test.go suffix keeps
//     them out of production builds.
//
// Maintenance:
//   - If a private helper changes signature, mirror the change here once, not across many tests.

import "github.com/katalvlaran/gaussjordan/scalar"

var (
	// ExportedSharesRowsFloat exposes sharesRows (row-handle alias detection).
	ExportedSharesRowsFloat = sharesRows[scalar.Float]
	// ExportedFindPivotRowFixed exposes the unchecked pivot scan used by Invert.
	ExportedFindPivotRowFixed = findPivotRow[scalar.Fixed]
	// ExportedEwBinaryFloat exposes the element-wise kernel behind Add/Sub.
	ExportedEwBinaryFloat = ewBinary[scalar.Float]
)
