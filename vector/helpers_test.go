// SPDX-License-Identifier: MIT
// Package vector_test contains shared test helpers.

package vector_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequirePanicsIs runs fn and fails the test unless it panics with an error
// matching target via errors.Is.
func RequirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()

	require.NotNil(t, recovered, "expected panic wrapping %v", target)
	err, ok := recovered.(error)
	require.Truef(t, ok, "panic value %T is not an error", recovered)
	require.Truef(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
}
