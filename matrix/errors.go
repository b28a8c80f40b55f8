// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// No matrix operation returns an error. An out-of-range 1-based index is a
// programmer error and panics with a value wrapping ErrOutOfRange, so
// errors.Is still works for callers that recover. ValidateIndex exposes the
// same check as a plain error for code that wants to test indices up front.

package matrix

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates that a 1-based row or column is outside [1, N].
var ErrOutOfRange = errors.New("matrix: index out of range")

// matrixErrorf wraps an underlying error with method and index context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", method, row, col, err)
}
