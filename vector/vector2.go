// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/lvmath/scalar"
)

// Vector2 is a 2-component vector. The zero value is (0, 0).
type Vector2[T scalar.Number] struct {
	X, Y T
}

// NewVector2 builds a vector from explicit components.
func NewVector2[T scalar.Number](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

// LengthSqr returns x² + y².
func (v Vector2[T]) LengthSqr() T {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the Euclidean length; 0 for the zero vector.
// Float kinds are scaled by the largest component first, so Length stays
// finite and non-zero wherever the true length is.
func (v Vector2[T]) Length() T {
	return scalar.Hypot(v.X, v.Y)
}

// Normalized returns v scaled to unit length.
// Panics with ErrZeroLength if every component is zero.
func (v Vector2[T]) Normalized() Vector2[T] {
	l := v.Length()
	if l == 0 {
		zeroLengthPanic("Vector2.Normalized")
	}

	return v.Div(l)
}

// Normalize scales v in place to unit length.
// Panics with ErrZeroLength if every component is zero.
func (v *Vector2[T]) Normalize() {
	l := v.Length()
	if l == 0 {
		zeroLengthPanic("Vector2.Normalize")
	}
	v.X /= l
	v.Y /= l
}

// Dot returns x·ox + y·oy.
func (v Vector2[T]) Dot(o Vector2[T]) T {
	return v.X*o.X + v.Y*o.Y
}

// Add returns v + o component-wise.
func (v Vector2[T]) Add(o Vector2[T]) Vector2[T] { return Vector2[T]{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o component-wise.
func (v Vector2[T]) Sub(o Vector2[T]) Vector2[T] { return Vector2[T]{v.X - o.X, v.Y - o.Y} }

// AddScalar adds s to both components.
func (v Vector2[T]) AddScalar(s T) Vector2[T] { return Vector2[T]{v.X + s, v.Y + s} }

// Scale returns v * s (equivalently s * v).
func (v Vector2[T]) Scale(s T) Vector2[T] { return Vector2[T]{v.X * s, v.Y * s} }

// Div returns v / s.
func (v Vector2[T]) Div(s T) Vector2[T] { return Vector2[T]{v.X / s, v.Y / s} }

// Negate returns -v.
func (v Vector2[T]) Negate() Vector2[T] { return Vector2[T]{-v.X, -v.Y} }

// AddAssign sets v = v + o and returns v.
func (v *Vector2[T]) AddAssign(o Vector2[T]) *Vector2[T] {
	*v = v.Add(o)
	return v
}

// SubAssign sets v = v - o and returns v.
func (v *Vector2[T]) SubAssign(o Vector2[T]) *Vector2[T] {
	*v = v.Sub(o)
	return v
}

// AddScalarAssign sets v = v + s (broadcast) and returns v.
func (v *Vector2[T]) AddScalarAssign(s T) *Vector2[T] {
	*v = v.AddScalar(s)
	return v
}

// ScaleAssign sets v = v * s and returns v.
func (v *Vector2[T]) ScaleAssign(s T) *Vector2[T] {
	*v = v.Scale(s)
	return v
}

// DivAssign sets v = v / s and returns v.
func (v *Vector2[T]) DivAssign(s T) *Vector2[T] {
	*v = v.Div(s)
	return v
}

// ApproxEqual reports whether both components are within tolerance.
func (v Vector2[T]) ApproxEqual(o Vector2[T], opts ...scalar.Option) bool {
	p := scalar.NewOptions(opts...)

	return scalar.Within(v.X, o.X, p) && scalar.Within(v.Y, o.Y, p)
}

// String implements fmt.Stringer.
func (v Vector2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}
