// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Cross-size conversion between Matrix3x3 and Matrix4x4. The 3×3 block
//     always sits at rows/columns 1..3 of the 4×4.
//
// Behavior highlights:
//   - NewMatrix4x4From3x3 leaves (4,4) = 0: a plain block embed. This is the
//     long-standing behavior and is pinned by tests; it is NOT the identity
//     extension. NewMatrix4x4Homogeneous is the explicit (4,4) = 1 variant.
//   - NewMatrix3x3From4x4 drops row 4 and column 4 entirely.

package matrix

import "github.com/katalvlaran/lvmath/scalar"

// embed3 copies m into the top-left 3×3 block of dst.
func embed3[T scalar.Number](dst *Matrix4x4[T], m Matrix3x3[T]) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			dst.cells[i][j] = m.cells[i][j]
		}
	}
}

// NewMatrix4x4From3x3 embeds m in the top-left block of an all-zero 4×4.
// Row 4 and column 4 are zero, including (4,4).
func NewMatrix4x4From3x3[T scalar.Number](m Matrix3x3[T]) Matrix4x4[T] {
	var out Matrix4x4[T]
	embed3(&out, m)

	return out
}

// NewMatrix4x4Homogeneous embeds m in the top-left block of the 4×4
// identity, so row 4 and column 4 are (0, 0, 0, 1).
func NewMatrix4x4Homogeneous[T scalar.Number](m Matrix3x3[T]) Matrix4x4[T] {
	out := NewMatrix4x4[T]()
	embed3(&out, m)

	return out
}

// NewMatrix3x3From4x4 returns the top-left 3×3 block of m.
func NewMatrix3x3From4x4[T scalar.Number](m Matrix4x4[T]) Matrix3x3[T] {
	var out Matrix3x3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.cells[i][j] = m.cells[i][j]
		}
	}

	return out
}
