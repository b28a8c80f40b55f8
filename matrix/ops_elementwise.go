// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise Add/Sub and scalar Scale for both sizes, plus the compound
//     forms. Each compound form is the binary op followed by assignment, and
//     returns the mutated receiver so calls can be chained.
//
// Determinism & Performance:
//   - Fixed i→j loop order over the backing arrays; no allocation.

package matrix

// Add returns m + o element-wise.
func (m Matrix3x3[T]) Add(o Matrix3x3[T]) Matrix3x3[T] {
	var out Matrix3x3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.cells[i][j] = m.cells[i][j] + o.cells[i][j]
		}
	}

	return out
}

// Sub returns m - o element-wise.
func (m Matrix3x3[T]) Sub(o Matrix3x3[T]) Matrix3x3[T] {
	var out Matrix3x3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.cells[i][j] = m.cells[i][j] - o.cells[i][j]
		}
	}

	return out
}

// Scale returns s · m (every element multiplied by s).
func (m Matrix3x3[T]) Scale(s T) Matrix3x3[T] {
	var out Matrix3x3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.cells[i][j] = s * m.cells[i][j]
		}
	}

	return out
}

// AddAssign sets m = m + o and returns m.
func (m *Matrix3x3[T]) AddAssign(o Matrix3x3[T]) *Matrix3x3[T] {
	*m = m.Add(o)
	return m
}

// SubAssign sets m = m - o and returns m.
func (m *Matrix3x3[T]) SubAssign(o Matrix3x3[T]) *Matrix3x3[T] {
	*m = m.Sub(o)
	return m
}

// ScaleAssign sets m = s · m and returns m.
func (m *Matrix3x3[T]) ScaleAssign(s T) *Matrix3x3[T] {
	*m = m.Scale(s)
	return m
}

// Add returns m + o element-wise.
func (m Matrix4x4[T]) Add(o Matrix4x4[T]) Matrix4x4[T] {
	var out Matrix4x4[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.cells[i][j] = m.cells[i][j] + o.cells[i][j]
		}
	}

	return out
}

// Sub returns m - o element-wise.
func (m Matrix4x4[T]) Sub(o Matrix4x4[T]) Matrix4x4[T] {
	var out Matrix4x4[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.cells[i][j] = m.cells[i][j] - o.cells[i][j]
		}
	}

	return out
}

// Scale returns s · m.
func (m Matrix4x4[T]) Scale(s T) Matrix4x4[T] {
	var out Matrix4x4[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.cells[i][j] = s * m.cells[i][j]
		}
	}

	return out
}

// AddAssign sets m = m + o and returns m.
func (m *Matrix4x4[T]) AddAssign(o Matrix4x4[T]) *Matrix4x4[T] {
	*m = m.Add(o)
	return m
}

// SubAssign sets m = m - o and returns m.
func (m *Matrix4x4[T]) SubAssign(o Matrix4x4[T]) *Matrix4x4[T] {
	*m = m.Sub(o)
	return m
}

// ScaleAssign sets m = s · m and returns m.
func (m *Matrix4x4[T]) ScaleAssign(s T) *Matrix4x4[T] {
	*m = m.Scale(s)
	return m
}
