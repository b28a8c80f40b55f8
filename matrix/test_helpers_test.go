// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the matrix tests.
//   • Keep all data finite so exact-equality assertions stay meaningful.

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmath/matrix"
)

// testAngles covers all quadrants, both signs and the exact quarter turns.
var testAngles = []float64{
	0, math.Pi / 6, math.Pi / 4, math.Pi / 2, 2.0, math.Pi, -math.Pi / 3, -2.5, 4.0, 2 * math.Pi,
}

// Seq3 returns a 3×3 with distinct, exactly representable entries.
func Seq3() matrix.Matrix3x3[float64] {
	return matrix.NewMatrix3x3FromValues(
		1.0, 2.0, 3.0,
		4.0, 5.0, 6.0,
		7.0, 8.0, 9.5,
	)
}

// Seq4 returns a 4×4 with distinct, exactly representable entries.
func Seq4() matrix.Matrix4x4[float64] {
	return matrix.NewMatrix4x4FromValues(
		1.0, 2.0, 3.0, 4.0,
		5.0, 6.0, 7.0, 8.0,
		9.0, 10.0, 11.0, 12.0,
		13.0, 14.0, 15.0, 16.5,
	)
}

// Dense3 copies m into a gonum *mat.Dense (0-based) for oracle comparisons.
func Dense3(m matrix.Matrix3x3[float64]) *mat.Dense {
	d := mat.NewDense(3, 3, nil)
	for i := 1; i <= 3; i++ {
		for j := 1; j <= 3; j++ {
			d.Set(i-1, j-1, m.At(i, j))
		}
	}

	return d
}

// Dense4 copies m into a gonum *mat.Dense.
func Dense4(m matrix.Matrix4x4[float64]) *mat.Dense {
	d := mat.NewDense(4, 4, nil)
	for i := 1; i <= 4; i++ {
		for j := 1; j <= 4; j++ {
			d.Set(i-1, j-1, m.At(i, j))
		}
	}

	return d
}

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
