// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmath/matrix"
)

func TestF32_IsRowMajor(t *testing.T) {
	t.Parallel()

	m := matrix.NewMatrix3x3FromValues[float32](1, 2, 3, 4, 5, 6, 7, 8, 9)
	a := matrix.ToF32Mat3(m)
	require.Equal(t, f32.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}, a)
	require.True(t, matrix.FromF32Mat3[float32](a).Equal(m))

	m4 := matrix.RotationAroundY4x4[float32](0.3)
	a4 := matrix.ToF32Mat4(m4)
	// m[4*r + c] is the element in the r'th row and c'th column.
	assert.Equal(t, m4.At(1, 3), a4[4*0+2])
	assert.Equal(t, m4.At(3, 1), a4[4*2+0])
	assert.True(t, matrix.FromF32Mat4[float32](a4).Equal(m4))
}

func TestR3Mat_RoundTrip(t *testing.T) {
	t.Parallel()

	m := Seq3()
	rm := matrix.ToR3Mat(m)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, m.At(i+1, j+1), rm.At(i, j))
		}
	}
	assert.True(t, matrix.FromR3Mat[float64](rm).Equal(m))
	assert.True(t, matrix.FromR3Mat[float64](nil).Equal(matrix.Matrix3x3[float64]{}))

	var nilMat *r3.Mat
	assert.True(t, matrix.FromR3Mat[int](nilMat).Equal(matrix.Matrix3x3[int]{}))
}
