// Package scalar holds the element-type layer shared by every vector and
// matrix in lvmath.
//
// What lives here:
//
//   - Number, the constraint every generic type is instantiated with
//     (all Go integer and floating-point kinds).
//   - Sqrt, Sin, Cos and Abs generic over Number. float32 goes through
//     github.com/chewxy/math32 so single-precision hosts never round-trip
//     through float64; float64 goes through the standard math package;
//     integers are computed in float64 and truncated back.
//   - The numeric tolerance policy: functional options (WithEpsilon) and
//     ApproxEqual, used by the vector and matrix ApproxEqual methods.
//
// Exact comparison stays exact: Equal methods and the == operator on vector
// and matrix values never consult the tolerance.
package scalar
