// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Matrix·matrix products and row-vector·matrix products.
//
// Convention:
//   - MulVector3/MulVector4 compute v' = v · M with v as a row vector:
//     v'_j = Σ_k v_k · M(k, j). This is the product the rotation factories are
//     built for.
//
// Complexity:
//   - Mul is O(N³) with N fixed (27 / 64 multiply-adds); vector products are
//     O(N²). No allocation.

package matrix

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Mul returns the matrix product m · o: out(i,j) = Σ_k m(i,k) · o(k,j).
func (m Matrix3x3[T]) Mul(o Matrix3x3[T]) Matrix3x3[T] {
	var out Matrix3x3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum T
			for k := 0; k < 3; k++ {
				sum += m.cells[i][k] * o.cells[k][j]
			}
			out.cells[i][j] = sum
		}
	}

	return out
}

// MulAssign sets m = m · o and returns m.
func (m *Matrix3x3[T]) MulAssign(o Matrix3x3[T]) *Matrix3x3[T] {
	*m = m.Mul(o)
	return m
}

// Mul returns the matrix product m · o.
func (m Matrix4x4[T]) Mul(o Matrix4x4[T]) Matrix4x4[T] {
	var out Matrix4x4[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum T
			for k := 0; k < 4; k++ {
				sum += m.cells[i][k] * o.cells[k][j]
			}
			out.cells[i][j] = sum
		}
	}

	return out
}

// MulAssign sets m = m · o and returns m.
func (m *Matrix4x4[T]) MulAssign(o Matrix4x4[T]) *Matrix4x4[T] {
	*m = m.Mul(o)
	return m
}

// MulVector3 returns the row-vector product v · m.
func MulVector3[T scalar.Number](v vector.Vector3[T], m Matrix3x3[T]) vector.Vector3[T] {
	c := &m.cells
	return vector.Vector3[T]{
		X: v.X*c[0][0] + v.Y*c[1][0] + v.Z*c[2][0],
		Y: v.X*c[0][1] + v.Y*c[1][1] + v.Z*c[2][1],
		Z: v.X*c[0][2] + v.Y*c[1][2] + v.Z*c[2][2],
	}
}

// MulVector3Assign sets *v = *v · m and returns v.
func MulVector3Assign[T scalar.Number](v *vector.Vector3[T], m Matrix3x3[T]) *vector.Vector3[T] {
	*v = MulVector3(*v, m)
	return v
}

// MulVector4 returns the row-vector product v · m.
func MulVector4[T scalar.Number](v vector.Vector4[T], m Matrix4x4[T]) vector.Vector4[T] {
	c := &m.cells
	return vector.Vector4[T]{
		X: v.X*c[0][0] + v.Y*c[1][0] + v.Z*c[2][0] + v.W*c[3][0],
		Y: v.X*c[0][1] + v.Y*c[1][1] + v.Z*c[2][1] + v.W*c[3][1],
		Z: v.X*c[0][2] + v.Y*c[1][2] + v.Z*c[2][2] + v.W*c[3][2],
		W: v.X*c[0][3] + v.Y*c[1][3] + v.Z*c[2][3] + v.W*c[3][3],
	}
}

// MulVector4Assign sets *v = *v · m and returns v.
func MulVector4Assign[T scalar.Number](v *vector.Vector4[T], m Matrix4x4[T]) *vector.Vector4[T] {
	*v = MulVector4(*v, m)
	return v
}
