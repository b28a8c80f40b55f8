// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Axis rotation factories for both sizes, right-handed, row-vector
//     convention (v' = v · R).
//
// Sign pattern (c = cos θ, s = sin θ):
//
//	X: [1 0 0; 0 c s; 0 -s c]   (0,1,0) → (0,c,s)
//	Y: [c 0 -s; 0 1 0; s 0 c]   (0,0,1) → (s,0,c)
//	Z: [c s 0; -s c 0; 0 0 1]   (1,0,0) → (c,s,0)
//
// Each row is the image of the matching basis vector. The 4×4 factories embed
// the 3×3 result with an identity row and column 4, so the two sizes can
// never disagree.

package matrix

import "github.com/katalvlaran/lvmath/scalar"

// RotationAroundX3x3 returns the rotation by angle radians about +X.
func RotationAroundX3x3[T scalar.Number](angle T) Matrix3x3[T] {
	c, s := scalar.Cos(angle), scalar.Sin(angle)

	return NewMatrix3x3FromValues(
		1, 0, 0,
		0, c, s,
		0, -s, c,
	)
}

// RotationAroundY3x3 returns the rotation by angle radians about +Y.
func RotationAroundY3x3[T scalar.Number](angle T) Matrix3x3[T] {
	c, s := scalar.Cos(angle), scalar.Sin(angle)

	return NewMatrix3x3FromValues(
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	)
}

// RotationAroundZ3x3 returns the rotation by angle radians about +Z.
func RotationAroundZ3x3[T scalar.Number](angle T) Matrix3x3[T] {
	c, s := scalar.Cos(angle), scalar.Sin(angle)

	return NewMatrix3x3FromValues(
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	)
}

// RotationAroundX4x4 is RotationAroundX3x3 embedded in a homogeneous 4×4.
func RotationAroundX4x4[T scalar.Number](angle T) Matrix4x4[T] {
	return NewMatrix4x4Homogeneous(RotationAroundX3x3(angle))
}

// RotationAroundY4x4 is RotationAroundY3x3 embedded in a homogeneous 4×4.
func RotationAroundY4x4[T scalar.Number](angle T) Matrix4x4[T] {
	return NewMatrix4x4Homogeneous(RotationAroundY3x3(angle))
}

// RotationAroundZ4x4 is RotationAroundZ3x3 embedded in a homogeneous 4×4.
func RotationAroundZ4x4[T scalar.Number](angle T) Matrix4x4[T] {
	return NewMatrix4x4Homogeneous(RotationAroundZ3x3(angle))
}
