// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/vector"
)

func TestVector4_Basics(t *testing.T) {
	t.Parallel()

	v := vector.NewVector4(1.0, 2.0, 2.0, 4.0)
	require.Equal(t, 25.0, v.LengthSqr())
	require.Equal(t, 5.0, v.Length())
	assert.Equal(t, vector.NewVector3(1.0, 2.0, 2.0), v.XYZ())

	o := vector.NewVector4(-1.0, 0.5, 0.0, 2.0)
	assert.Equal(t, v.Dot(o), o.Dot(v))
	assert.Equal(t, 8.0, v.Dot(o))
	assert.Equal(t, vector.NewVector4(0.0, 2.5, 2.0, 6.0), v.Add(o))
	assert.Equal(t, vector.NewVector4(2.0, 1.5, 2.0, 2.0), v.Sub(o))
	assert.Equal(t, vector.NewVector4(0.5, 1.0, 1.0, 2.0), v.Div(2))
	assert.Equal(t, vector.NewVector4(-2.0, -4.0, -4.0, -8.0), v.Scale(-2))
	assert.Equal(t, vector.NewVector4(1.5, 2.5, 2.5, 4.5), v.AddScalar(0.5))
	assert.Equal(t, vector.NewVector4(-1.0, -2.0, -2.0, -4.0), v.Negate())
}

func TestVector4_Normalize(t *testing.T) {
	t.Parallel()

	v := vector.NewVector4(1.0, 2.0, 2.0, 4.0)
	n := v.Normalized()
	assert.InDelta(t, 1.0, n.Length(), 1e-12)
	assert.True(t, n.ApproxEqual(vector.NewVector4(0.2, 0.4, 0.4, 0.8)))
	v.Normalize()
	assert.Equal(t, n, v)

	var zero vector.Vector4[float64]
	RequirePanicsIs(t, vector.ErrZeroLength, func() { zero.Normalize() })
	RequirePanicsIs(t, vector.ErrZeroLength, func() { _ = zero.Normalized() })
}

func TestVector4_NormalizeExtremeMagnitudes(t *testing.T) {
	t.Parallel()

	big := vector.NewVector4(0.0, 0.0, 0.0, -1e250).Normalized()
	assert.Equal(t, vector.NewVector4(0.0, 0.0, 0.0, -1.0), big)

	small := vector.NewVector4[float32](1e-25, 0, 0, 0)
	small.Normalize()
	assert.InDelta(t, 1.0, float64(small.X), 1e-6)
}

func TestVector4_CompoundAssign(t *testing.T) {
	t.Parallel()

	v := vector.NewVector4(1, 2, 3, 4)
	v.AddAssign(vector.NewVector4(1, 1, 1, 1)).
		SubAssign(vector.NewVector4(0, 0, 0, 1)).
		ScaleAssign(2).
		DivAssign(2).
		AddScalarAssign(10)
	assert.Equal(t, vector.NewVector4(12, 13, 14, 14), v)
	assert.Equal(t, "(12, 13, 14, 14)", v.String())
}
