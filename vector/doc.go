// Package vector provides fixed-arity numeric tuples: Vector2, Vector3 and
// Vector4, generic over scalar.Number.
//
// 🚀 What you get:
//
//   - Value types with exported components (X, Y, Z, W); the zero value is
//     the zero vector, so `var v vector.Vector3[float32]` is ready to use.
//   - LengthSqr, Length, Normalize/Normalized, Dot (and Cross on Vector3).
//   - Operators as methods: Add, Sub, Scale, Div, AddScalar, plus the
//     compound forms (AddAssign, ...) that mutate the receiver and return it.
//   - Interop with golang.org/x/image/math/f32 and gonum spatial/r3.
//
// ⚠️ Preconditions:
//
//	Normalizing a zero-length vector is a programmer error. Normalize and
//	Normalized panic with an error wrapping ErrZeroLength instead of
//	producing NaN/Inf components. Check LengthSqr() != 0 first when the
//	input may be degenerate.
//
// Usage:
//
//	a := vector.NewVector3(3.0, 4.0, 0.0)
//	fmt.Println(a.Length())          // 5
//	n := a.Normalized()              // (0.6, 0.8, 0)
//	up := a.Cross(vector.NewVector3(0.0, 0.0, 1.0))
//
// All methods are pure value computations and safe for concurrent use on
// distinct values.
package vector
