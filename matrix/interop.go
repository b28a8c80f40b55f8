// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Hand matrices to and from golang.org/x/image/math/f32 (float32,
//     row-major m[N*r+c]) and gonum spatial/r3 (*r3.Mat, float64).
//
// Layout:
//   - All three representations are row-major, so element (r,c) 1-based here
//     is index (r-1)*N + (c-1) there. No transpose is applied; the row-vector
//     convention travels with the data.

package matrix

import (
	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmath/scalar"
)

// ToF32Mat3 converts m to an f32.Mat3.
func ToF32Mat3[T scalar.Number](m Matrix3x3[T]) f32.Mat3 {
	var out f32.Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[3*i+j] = float32(m.cells[i][j])
		}
	}

	return out
}

// FromF32Mat3 converts an f32.Mat3 to a Matrix3x3[T].
func FromF32Mat3[T scalar.Number](a f32.Mat3) Matrix3x3[T] {
	var out Matrix3x3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.cells[i][j] = T(a[3*i+j])
		}
	}

	return out
}

// ToF32Mat4 converts m to an f32.Mat4.
func ToF32Mat4[T scalar.Number](m Matrix4x4[T]) f32.Mat4 {
	var out f32.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[4*i+j] = float32(m.cells[i][j])
		}
	}

	return out
}

// FromF32Mat4 converts an f32.Mat4 to a Matrix4x4[T].
func FromF32Mat4[T scalar.Number](a f32.Mat4) Matrix4x4[T] {
	var out Matrix4x4[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.cells[i][j] = T(a[4*i+j])
		}
	}

	return out
}

// ToR3Mat converts m to a newly allocated gonum *r3.Mat.
func ToR3Mat[T scalar.Number](m Matrix3x3[T]) *r3.Mat {
	data := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			data = append(data, float64(m.cells[i][j]))
		}
	}

	return r3.NewMat(data)
}

// FromR3Mat converts a gonum *r3.Mat to a Matrix3x3[T].
// A nil *r3.Mat converts to the zero matrix.
func FromR3Mat[T scalar.Number](a *r3.Mat) Matrix3x3[T] {
	var out Matrix3x3[T]
	if a == nil {
		return out
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.cells[i][j] = T(a.At(i, j))
		}
	}

	return out
}
