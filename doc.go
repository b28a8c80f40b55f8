// Package lvmath is a small, dense linear-algebra toolkit for real-time code
// (games, graphics, physics): fixed-size vectors and square matrices with
// value semantics and no allocation.
//
// 🚀 What is lvmath?
//
//	A generic (any Go integer or float kind), zero-allocation library:
//		• Vectors: Vector2, Vector3, Vector4 — length, normalize, dot, cross
//		• Matrices: Matrix3x3, Matrix4x4 — 1-based access, transpose, products
//		• Rotations: per-axis factories in the row-vector convention (v · M)
//		• Conversions: 3×3 ⇄ 4×4, plus f32 (x/image) and gonum r3 interop
//		• Geometry: 2D half-plane lines
//
// ✨ Why choose lvmath?
//
//   - Value types only – copy with =, compare with ==, share across goroutines
//   - Fail-fast contracts – bad indices and zero-length normalization panic
//     with matchable sentinel errors instead of returning NaN
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under four subpackages:
//
//	scalar/   — Number constraint, sqrt/sin/cos, tolerance options
//	vector/   — Vector2/3/4
//	matrix/   — Matrix3x3/4x4, rotations, conversions
//	geometry/ — Line
//
// Quick example:
//
//	r := matrix.RotationAroundZ3x3(math.Pi / 2)
//	v := matrix.MulVector3(vector.NewVector3(1.0, 0.0, 0.0), r) // ≈ (0, 1, 0)
//
//	go get github.com/katalvlaran/lvmath
package lvmath
