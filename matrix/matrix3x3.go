// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Matrix3x3 is a 3×3 matrix stored row-major.
// Elements are addressed 1-based through At, Set and Ref.
type Matrix3x3[T scalar.Number] struct {
	cells [3][3]T
}

// NewMatrix3x3 returns the 3×3 identity.
func NewMatrix3x3[T scalar.Number]() Matrix3x3[T] {
	var m Matrix3x3[T]
	for i := 0; i < 3; i++ {
		m.cells[i][i] = 1
	}

	return m
}

// NewMatrix3x3FromValues builds a matrix from nine scalars in row-major
// order: the first three are row 1, and so on.
func NewMatrix3x3FromValues[T scalar.Number](
	xx, xy, xz,
	yx, yy, yz,
	zx, zy, zz T,
) Matrix3x3[T] {
	return Matrix3x3[T]{cells: [3][3]T{
		{xx, xy, xz},
		{yx, yy, yz},
		{zx, zy, zz},
	}}
}

// NewMatrix3x3FromRows builds a matrix whose rows are r1, r2 and r3.
func NewMatrix3x3FromRows[T scalar.Number](r1, r2, r3 vector.Vector3[T]) Matrix3x3[T] {
	return NewMatrix3x3FromValues(
		r1.X, r1.Y, r1.Z,
		r2.X, r2.Y, r2.Z,
		r3.X, r3.Y, r3.Z,
	)
}

// At returns the element at 1-based (row, col).
// Panics with ErrOutOfRange outside [1,3].
func (m Matrix3x3[T]) At(row, col int) T {
	i, j := cell("Matrix3x3.At", 3, row, col)

	return m.cells[i][j]
}

// Set writes v at 1-based (row, col).
// Panics with ErrOutOfRange outside [1,3].
func (m *Matrix3x3[T]) Set(row, col int, v T) {
	i, j := cell("Matrix3x3.Set", 3, row, col)
	m.cells[i][j] = v
}

// Ref returns a pointer to the element at 1-based (row, col) for in-place
// updates such as `*m.Ref(2, 3) += dt`. The pointer aliases m.
// Panics with ErrOutOfRange outside [1,3].
func (m *Matrix3x3[T]) Ref(row, col int) *T {
	i, j := cell("Matrix3x3.Ref", 3, row, col)

	return &m.cells[i][j]
}

// Row returns 1-based row r as a vector.
func (m Matrix3x3[T]) Row(r int) vector.Vector3[T] {
	i, _ := cell("Matrix3x3.Row", 3, r, 1)
	row := m.cells[i]

	return vector.NewVector3(row[0], row[1], row[2])
}

// Column returns 1-based column c as a vector.
func (m Matrix3x3[T]) Column(c int) vector.Vector3[T] {
	_, j := cell("Matrix3x3.Column", 3, 1, c)

	return vector.NewVector3(m.cells[0][j], m.cells[1][j], m.cells[2][j])
}

// Transposed returns a new matrix with (i,j) and (j,i) swapped.
func (m Matrix3x3[T]) Transposed() Matrix3x3[T] {
	var t Matrix3x3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t.cells[i][j] = m.cells[j][i]
		}
	}

	return t
}

// Transpose3x3 returns the transpose of m.
func Transpose3x3[T scalar.Number](m Matrix3x3[T]) Matrix3x3[T] {
	return m.Transposed()
}

// Equal reports exact element-wise equality, with no tolerance.
// NaN elements never compare equal.
func (m Matrix3x3[T]) Equal(o Matrix3x3[T]) bool {
	return m.cells == o.cells
}

// ApproxEqual reports whether every element pair is within the tolerance
// resolved from opts (scalar.DefaultEpsilon by default).
func (m Matrix3x3[T]) ApproxEqual(o Matrix3x3[T], opts ...scalar.Option) bool {
	p := scalar.NewOptions(opts...)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !scalar.Within(m.cells[i][j], o.cells[i][j], p) {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer, one bracketed row per line.
func (m Matrix3x3[T]) String() string {
	return formatGrid(3, func(i, j int) T { return m.cells[i][j] })
}

// formatGrid renders an n×n grid as "[a, b, c]\n" lines.
func formatGrid[T scalar.Number](n int, at func(i, j int) T) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte('[')
		for j := 0; j < n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", at(i, j))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
