// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Move vectors across library boundaries without hand-written copies:
//     golang.org/x/image/math/f32 (float32 arrays used by rendering code) and
//     gonum spatial/r3 (float64 geometry).
//
// Conversions go through float32/float64 regardless of T; integer T
// truncates on the way back.

package vector

import (
	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmath/scalar"
)

// ToF32Vec2 converts v to an f32.Vec2.
func ToF32Vec2[T scalar.Number](v Vector2[T]) f32.Vec2 {
	return f32.Vec2{float32(v.X), float32(v.Y)}
}

// FromF32Vec2 converts an f32.Vec2 to a Vector2[T].
func FromF32Vec2[T scalar.Number](a f32.Vec2) Vector2[T] {
	return Vector2[T]{T(a[0]), T(a[1])}
}

// ToF32Vec3 converts v to an f32.Vec3.
func ToF32Vec3[T scalar.Number](v Vector3[T]) f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// FromF32Vec3 converts an f32.Vec3 to a Vector3[T].
func FromF32Vec3[T scalar.Number](a f32.Vec3) Vector3[T] {
	return Vector3[T]{T(a[0]), T(a[1]), T(a[2])}
}

// ToF32Vec4 converts v to an f32.Vec4.
func ToF32Vec4[T scalar.Number](v Vector4[T]) f32.Vec4 {
	return f32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

// FromF32Vec4 converts an f32.Vec4 to a Vector4[T].
func FromF32Vec4[T scalar.Number](a f32.Vec4) Vector4[T] {
	return Vector4[T]{T(a[0]), T(a[1]), T(a[2]), T(a[3])}
}

// ToR3 converts v to a gonum r3.Vec.
func ToR3[T scalar.Number](v Vector3[T]) r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// FromR3 converts a gonum r3.Vec to a Vector3[T].
func FromR3[T scalar.Number](p r3.Vec) Vector3[T] {
	return Vector3[T]{T(p.X), T(p.Y), T(p.Z)}
}
