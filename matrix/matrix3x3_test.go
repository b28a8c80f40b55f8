// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

func TestMatrix3x3_DefaultIsIdentity(t *testing.T) {
	t.Parallel()

	m := matrix.NewMatrix3x3[float32]()
	for i := 1; i <= 3; i++ {
		for j := 1; j <= 3; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			require.Equalf(t, want, m.At(i, j), "(%d,%d)", i, j)
		}
	}

	var zero matrix.Matrix3x3[float32]
	assert.False(t, zero.Equal(m), "the Go zero value is not the identity")
}

func TestMatrix3x3_FromValuesIsRowMajor(t *testing.T) {
	t.Parallel()

	m := matrix.NewMatrix3x3FromValues(11, 12, 13, 21, 22, 23, 31, 32, 33)
	for i := 1; i <= 3; i++ {
		for j := 1; j <= 3; j++ {
			require.Equal(t, 10*i+j, m.At(i, j))
		}
	}
	assert.Equal(t, vector.NewVector3(21, 22, 23), m.Row(2))
	assert.Equal(t, vector.NewVector3(13, 23, 33), m.Column(3))
	assert.Equal(t, m, matrix.NewMatrix3x3FromRows(m.Row(1), m.Row(2), m.Row(3)))
}

func TestMatrix3x3_SetRefAndCopy(t *testing.T) {
	t.Parallel()

	m := matrix.NewMatrix3x3[int]()
	cp := m // copy construction is value copy
	m.Set(1, 3, 7)
	*m.Ref(3, 1) += 5
	*m.Ref(2, 2) *= 4

	assert.Equal(t, 7, m.At(1, 3))
	assert.Equal(t, 5, m.At(3, 1))
	assert.Equal(t, 4, m.At(2, 2))
	assert.True(t, cp.Equal(matrix.NewMatrix3x3[int]()), "copies are independent")

	var assigned matrix.Matrix3x3[int]
	assigned = m
	assert.True(t, assigned.Equal(m))
	assert.True(t, assigned == m)
}

func TestMatrix3x3_OutOfRangePanics(t *testing.T) {
	t.Parallel()

	m := matrix.NewMatrix3x3[float64]()
	for _, rc := range [][2]int{{0, 1}, {1, 0}, {4, 1}, {1, 4}, {-1, 2}, {3, 99}} {
		rc := rc
		t.Run(fmt.Sprintf("%d_%d", rc[0], rc[1]), func(t *testing.T) {
			RequirePanicsIs(t, matrix.ErrOutOfRange, func() { _ = m.At(rc[0], rc[1]) })
			RequirePanicsIs(t, matrix.ErrOutOfRange, func() { m.Set(rc[0], rc[1], 1) })
			RequirePanicsIs(t, matrix.ErrOutOfRange, func() { _ = m.Ref(rc[0], rc[1]) })
		})
	}
	RequirePanicsIs(t, matrix.ErrOutOfRange, func() { _ = m.Row(4) })
	RequirePanicsIs(t, matrix.ErrOutOfRange, func() { _ = m.Column(0) })
	assert.True(t, m.Equal(matrix.NewMatrix3x3[float64]()), "failed Set leaves m untouched")
}

func TestValidateIndex(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateIndex(3, 1, 1))
	require.NoError(t, matrix.ValidateIndex(3, 3, 3))
	require.NoError(t, matrix.ValidateIndex(4, 4, 4))
	require.ErrorIs(t, matrix.ValidateIndex(3, 4, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateIndex(4, 0, 4), matrix.ErrOutOfRange)
}

func TestMatrix3x3_Transpose(t *testing.T) {
	t.Parallel()

	m := Seq3()
	tr := matrix.Transpose3x3(m)
	for i := 1; i <= 3; i++ {
		for j := 1; j <= 3; j++ {
			require.Equal(t, m.At(i, j), tr.At(j, i))
		}
	}
	assert.True(t, matrix.Transpose3x3(tr).Equal(m), "transpose is an involution")
	assert.Equal(t, tr, m.Transposed())
}

func TestMatrix3x3_Equal(t *testing.T) {
	t.Parallel()

	a, b := Seq3(), Seq3()
	require.True(t, a.Equal(b))
	*b.Ref(3, 3) += 1e-12
	assert.False(t, a.Equal(b), "Equal has no tolerance")
	assert.True(t, a.ApproxEqual(b))
}

func TestMatrix3x3_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[1, 0, 0]\n[0, 1, 0]\n[0, 0, 1]\n", matrix.NewMatrix3x3[int]().String())
}
