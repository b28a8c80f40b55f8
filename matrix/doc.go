// Package matrix provides the fixed-size square matrices of lvmath:
// Matrix3x3 and Matrix4x4, generic over scalar.Number.
//
// The matrix package provides:
//
//   - Value types backed by a fixed [N][N]T array (row-major, 0-based),
//     copied by plain assignment and comparable with ==.
//   - A 1-based accessor (At, Set, Ref): At(1, 1) is the top-left element.
//     Row/column arguments outside [1, N] panic with ErrOutOfRange.
//   - Rotation factories, Transpose, element-wise Add/Sub/Scale, the matrix
//     product Mul, and vector×matrix products (MulVector3, MulVector4).
//   - Conversions between the two sizes (embed / truncate) and interop with
//     golang.org/x/image/math/f32 and gonum spatial/r3.
//
// ⚠️ Row-vector convention
//
// Every transform in this package is applied as v' = v · M: the vector is a
// row on the LEFT of the matrix. The rotation factories are built for that
// convention, so RotationAroundZ3x3(π/2) maps (1,0,0) to (0,1,0). Composing
// transforms therefore reads left to right: v · A · B applies A first, then
// B. Feeding these matrices to code that expects M · v silently applies the
// inverse rotation.
//
// ⚠️ Default construction
//
// NewMatrix3x3 / NewMatrix4x4 return the identity. The Go zero value of the
// struct is the all-zero matrix, not the identity.
//
// ⚠️ 3x3 → 4x4 conversion
//
// NewMatrix4x4From3x3 copies the 3x3 block into an all-zero 4x4 grid and
// leaves (4,4) at 0. It is a plain block embed, not a homogeneous one; use
// NewMatrix4x4Homogeneous when (4,4) must be 1.
//
// No inversion, determinant or solving is offered.
package matrix
