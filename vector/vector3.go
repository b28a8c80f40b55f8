// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/lvmath/scalar"
)

// Vector3 is a 3-component vector. The zero value is (0, 0, 0).
type Vector3[T scalar.Number] struct {
	X, Y, Z T
}

// NewVector3 builds a vector from explicit components.
func NewVector3[T scalar.Number](x, y, z T) Vector3[T] {
	return Vector3[T]{X: x, Y: y, Z: z}
}

// LengthSqr returns x² + y² + z². Exact under T's arithmetic.
func (v Vector3[T]) LengthSqr() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the Euclidean length; 0 for the zero vector.
// Float kinds are scaled by the largest component first, so Length stays
// finite and non-zero wherever the true length is.
func (v Vector3[T]) Length() T {
	return scalar.Hypot(v.X, v.Y, v.Z)
}

// Normalized returns v scaled to unit length.
// Panics with ErrZeroLength if every component is zero.
func (v Vector3[T]) Normalized() Vector3[T] {
	l := v.Length()
	if l == 0 {
		zeroLengthPanic("Vector3.Normalized")
	}

	return v.Div(l)
}

// Normalize scales v in place to unit length.
// Panics with ErrZeroLength if every component is zero.
func (v *Vector3[T]) Normalize() {
	l := v.Length()
	if l == 0 {
		zeroLengthPanic("Vector3.Normalize")
	}
	v.X /= l
	v.Y /= l
	v.Z /= l
}

// Dot returns the sum of pairwise component products.
func (v Vector3[T]) Dot(o Vector3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the right-handed cross product v × o.
func (v Vector3[T]) Cross(o Vector3[T]) Vector3[T] {
	return Vector3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Add returns v + o component-wise.
func (v Vector3[T]) Add(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o component-wise.
func (v Vector3[T]) Sub(o Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// AddScalar adds s to every component.
func (v Vector3[T]) AddScalar(s T) Vector3[T] {
	return Vector3[T]{v.X + s, v.Y + s, v.Z + s}
}

// Scale returns v * s (equivalently s * v).
func (v Vector3[T]) Scale(s T) Vector3[T] {
	return Vector3[T]{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v / s. Division by zero follows T's semantics
// (±Inf/NaN for floats, a runtime panic for integers).
func (v Vector3[T]) Div(s T) Vector3[T] {
	return Vector3[T]{v.X / s, v.Y / s, v.Z / s}
}

// Negate returns -v.
func (v Vector3[T]) Negate() Vector3[T] {
	return Vector3[T]{-v.X, -v.Y, -v.Z}
}

// AddAssign sets v = v + o and returns v.
func (v *Vector3[T]) AddAssign(o Vector3[T]) *Vector3[T] {
	*v = v.Add(o)
	return v
}

// SubAssign sets v = v - o and returns v.
func (v *Vector3[T]) SubAssign(o Vector3[T]) *Vector3[T] {
	*v = v.Sub(o)
	return v
}

// AddScalarAssign sets v = v + s (broadcast) and returns v.
func (v *Vector3[T]) AddScalarAssign(s T) *Vector3[T] {
	*v = v.AddScalar(s)
	return v
}

// ScaleAssign sets v = v * s and returns v.
func (v *Vector3[T]) ScaleAssign(s T) *Vector3[T] {
	*v = v.Scale(s)
	return v
}

// DivAssign sets v = v / s and returns v.
func (v *Vector3[T]) DivAssign(s T) *Vector3[T] {
	*v = v.Div(s)
	return v
}

// ApproxEqual reports whether every component of v and o is within the
// tolerance resolved from opts (scalar.DefaultEpsilon by default).
func (v Vector3[T]) ApproxEqual(o Vector3[T], opts ...scalar.Option) bool {
	p := scalar.NewOptions(opts...)

	return scalar.Within(v.X, o.X, p) && scalar.Within(v.Y, o.Y, p) && scalar.Within(v.Z, o.Z, p)
}

// String implements fmt.Stringer.
func (v Vector3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}
