// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// No vector operation returns an error. Sentinels describe precondition
// violations; they are wrapped into the panic value so a caller that recovers
// can still match them via errors.Is.

package vector

import (
	"errors"
	"fmt"
)

// ErrZeroLength is the panic cause when a zero-length vector is normalized.
var ErrZeroLength = errors.New("vector: zero-length vector cannot be normalized")

// zeroLengthPanic aborts op with a wrapped ErrZeroLength.
func zeroLengthPanic(op string) {
	panic(fmt.Errorf("%s: %w", op, ErrZeroLength))
}
