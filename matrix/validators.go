// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single translation point between the public 1-based (row, column)
//     notation and the 0-based backing arrays. No other file subtracts 1.
//
// Determinism & Performance:
//   - Two comparisons and two subtractions; no allocation on the valid path.

package matrix

// ValidateIndex reports whether (row, col) is a valid 1-based position in an
// n×n matrix. Returns a wrapped ErrOutOfRange or nil.
// Complexity: O(1).
func ValidateIndex(n, row, col int) error {
	if row < 1 || row > n || col < 1 || col > n {
		return matrixErrorf("ValidateIndex", row, col, ErrOutOfRange)
	}

	return nil
}

// cell maps a 1-based (row, col) to 0-based indices, panicking with a
// wrapped ErrOutOfRange tagged with method when either is outside [1, n].
func cell(method string, n, row, col int) (int, int) {
	if row < 1 || row > n || col < 1 || col > n {
		panic(matrixErrorf(method, row, col, ErrOutOfRange))
	}

	return row - 1, col - 1
}
