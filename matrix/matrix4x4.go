// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Matrix4x4 is a 4×4 matrix stored row-major.
// Elements are addressed 1-based through At, Set and Ref.
type Matrix4x4[T scalar.Number] struct {
	cells [4][4]T
}

// NewMatrix4x4 returns the 4×4 identity.
func NewMatrix4x4[T scalar.Number]() Matrix4x4[T] {
	var m Matrix4x4[T]
	for i := 0; i < 4; i++ {
		m.cells[i][i] = 1
	}

	return m
}

// NewMatrix4x4FromValues builds a matrix from sixteen scalars in row-major
// order.
func NewMatrix4x4FromValues[T scalar.Number](
	xx, xy, xz, xw,
	yx, yy, yz, yw,
	zx, zy, zz, zw,
	wx, wy, wz, ww T,
) Matrix4x4[T] {
	return Matrix4x4[T]{cells: [4][4]T{
		{xx, xy, xz, xw},
		{yx, yy, yz, yw},
		{zx, zy, zz, zw},
		{wx, wy, wz, ww},
	}}
}

// NewMatrix4x4FromRows builds a matrix whose rows are r1..r4.
func NewMatrix4x4FromRows[T scalar.Number](r1, r2, r3, r4 vector.Vector4[T]) Matrix4x4[T] {
	return NewMatrix4x4FromValues(
		r1.X, r1.Y, r1.Z, r1.W,
		r2.X, r2.Y, r2.Z, r2.W,
		r3.X, r3.Y, r3.Z, r3.W,
		r4.X, r4.Y, r4.Z, r4.W,
	)
}

// At returns the element at 1-based (row, col).
// Panics with ErrOutOfRange outside [1,4].
func (m Matrix4x4[T]) At(row, col int) T {
	i, j := cell("Matrix4x4.At", 4, row, col)

	return m.cells[i][j]
}

// Set writes v at 1-based (row, col).
// Panics with ErrOutOfRange outside [1,4].
func (m *Matrix4x4[T]) Set(row, col int, v T) {
	i, j := cell("Matrix4x4.Set", 4, row, col)
	m.cells[i][j] = v
}

// Ref returns a pointer to the element at 1-based (row, col).
// The pointer aliases m. Panics with ErrOutOfRange outside [1,4].
func (m *Matrix4x4[T]) Ref(row, col int) *T {
	i, j := cell("Matrix4x4.Ref", 4, row, col)

	return &m.cells[i][j]
}

// Row returns 1-based row r as a vector.
func (m Matrix4x4[T]) Row(r int) vector.Vector4[T] {
	i, _ := cell("Matrix4x4.Row", 4, r, 1)
	row := m.cells[i]

	return vector.NewVector4(row[0], row[1], row[2], row[3])
}

// Column returns 1-based column c as a vector.
func (m Matrix4x4[T]) Column(c int) vector.Vector4[T] {
	_, j := cell("Matrix4x4.Column", 4, 1, c)

	return vector.NewVector4(m.cells[0][j], m.cells[1][j], m.cells[2][j], m.cells[3][j])
}

// Transposed returns a new matrix with (i,j) and (j,i) swapped.
func (m Matrix4x4[T]) Transposed() Matrix4x4[T] {
	var t Matrix4x4[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			t.cells[i][j] = m.cells[j][i]
		}
	}

	return t
}

// Transpose4x4 returns the transpose of m.
func Transpose4x4[T scalar.Number](m Matrix4x4[T]) Matrix4x4[T] {
	return m.Transposed()
}

// Equal reports exact element-wise equality, with no tolerance.
func (m Matrix4x4[T]) Equal(o Matrix4x4[T]) bool {
	return m.cells == o.cells
}

// ApproxEqual reports whether every element pair is within tolerance.
func (m Matrix4x4[T]) ApproxEqual(o Matrix4x4[T], opts ...scalar.Option) bool {
	p := scalar.NewOptions(opts...)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !scalar.Within(m.cells[i][j], o.cells[i][j], p) {
				return false
			}
		}
	}

	return true
}

func (m Matrix4x4[T]) String() string {
	return formatGrid(4, func(i, j int) T { return m.cells[i][j] })
}
