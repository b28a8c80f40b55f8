// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/lvmath/scalar"
)

// Vector4 is a 4-component vector. The zero value is (0, 0, 0, 0).
// W takes part in every operation like any other component; no homogeneous
// divide is ever applied implicitly.
type Vector4[T scalar.Number] struct {
	X, Y, Z, W T
}

// NewVector4 builds a vector from explicit components.
func NewVector4[T scalar.Number](x, y, z, w T) Vector4[T] {
	return Vector4[T]{X: x, Y: y, Z: z, W: w}
}

// LengthSqr returns x² + y² + z² + w².
func (v Vector4[T]) LengthSqr() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Length returns the Euclidean length over all four components.
// Float kinds are scaled by the largest component first, so Length stays
// finite and non-zero wherever the true length is.
func (v Vector4[T]) Length() T {
	return scalar.Hypot(v.X, v.Y, v.Z, v.W)
}

// Normalized returns v scaled to unit length.
// Panics with ErrZeroLength if every component is zero.
func (v Vector4[T]) Normalized() Vector4[T] {
	l := v.Length()
	if l == 0 {
		zeroLengthPanic("Vector4.Normalized")
	}

	return v.Div(l)
}

// Normalize scales v in place to unit length.
// Panics with ErrZeroLength if every component is zero.
func (v *Vector4[T]) Normalize() {
	l := v.Length()
	if l == 0 {
		zeroLengthPanic("Vector4.Normalize")
	}
	v.X /= l
	v.Y /= l
	v.Z /= l
	v.W /= l
}

// Dot returns the sum of pairwise component products.
func (v Vector4[T]) Dot(o Vector4[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// XYZ drops W.
func (v Vector4[T]) XYZ() Vector3[T] {
	return Vector3[T]{v.X, v.Y, v.Z}
}

// Add returns v + o component-wise.
func (v Vector4[T]) Add(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns v - o component-wise.
func (v Vector4[T]) Sub(o Vector4[T]) Vector4[T] {
	return Vector4[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// AddScalar adds s to every component, W included.
func (v Vector4[T]) AddScalar(s T) Vector4[T] {
	return Vector4[T]{v.X + s, v.Y + s, v.Z + s, v.W + s}
}

// Scale returns v * s (equivalently s * v).
func (v Vector4[T]) Scale(s T) Vector4[T] {
	return Vector4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div returns v / s.
func (v Vector4[T]) Div(s T) Vector4[T] {
	return Vector4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Negate returns -v.
func (v Vector4[T]) Negate() Vector4[T] {
	return Vector4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

// AddAssign sets v = v + o and returns v.
func (v *Vector4[T]) AddAssign(o Vector4[T]) *Vector4[T] {
	*v = v.Add(o)
	return v
}

// SubAssign sets v = v - o and returns v.
func (v *Vector4[T]) SubAssign(o Vector4[T]) *Vector4[T] {
	*v = v.Sub(o)
	return v
}

// AddScalarAssign sets v = v + s (broadcast) and returns v.
func (v *Vector4[T]) AddScalarAssign(s T) *Vector4[T] {
	*v = v.AddScalar(s)
	return v
}

// ScaleAssign sets v = v * s and returns v.
func (v *Vector4[T]) ScaleAssign(s T) *Vector4[T] {
	*v = v.Scale(s)
	return v
}

// DivAssign sets v = v / s and returns v.
func (v *Vector4[T]) DivAssign(s T) *Vector4[T] {
	*v = v.Div(s)
	return v
}

// ApproxEqual reports whether every component is within tolerance.
func (v Vector4[T]) ApproxEqual(o Vector4[T], opts ...scalar.Option) bool {
	p := scalar.NewOptions(opts...)

	return scalar.Within(v.X, o.X, p) && scalar.Within(v.Y, o.Y, p) &&
		scalar.Within(v.Z, o.Z, p) && scalar.Within(v.W, o.W, p)
}

// String implements fmt.Stringer.
func (v Vector4[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}
