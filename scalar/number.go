// SPDX-License-Identifier: MIT
// Package: scalar
//
// Purpose:
//   - Define the Number constraint for every generic vector/matrix type.
//   - Provide the few transcendental helpers the core needs (sqrt for lengths,
//     sin/cos for rotation factories) without forcing callers onto float64.
//
// Determinism:
//   - Pure functions, no allocation.

package scalar

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Number is the element type of every vector and matrix: any integer or
// floating-point kind, including named types built on them.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sqrt returns the square root of x in T's arithmetic.
// Integer results are truncated toward zero.
// Complexity: O(1).
func Sqrt[T Number](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sqrt(v))
	case float64:
		return T(math.Sqrt(v))
	}

	return T(math.Sqrt(float64(x)))
}

// Sin returns the sine of the radian argument x.
// Complexity: O(1).
func Sin[T Number](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sin(v))
	case float64:
		return T(math.Sin(v))
	}

	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
// Complexity: O(1).
func Cos[T Number](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Cos(v))
	case float64:
		return T(math.Cos(v))
	}

	return T(math.Cos(float64(x)))
}

// Abs returns |x|. For unsigned kinds it is the identity.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// IsFloat reports whether T is a floating-point kind (named kinds included).
func IsFloat[T Number]() bool {
	half := 0.5

	return T(half) != 0
}

// Hypot returns sqrt(Σ x²) over xs.
//
// Float kinds divide every term by the largest magnitude before squaring, so
// the result neither overflows for huge components nor underflows to 0 for
// tiny ones. Any ±Inf gives +Inf; otherwise any NaN gives NaN. Integer kinds
// sum squares directly and truncate the root.
//
// Complexity: O(len(xs)).
func Hypot[T Number](xs ...T) T {
	if !IsFloat[T]() {
		var sum T
		for _, x := range xs {
			sum += x * x
		}

		return Sqrt(sum)
	}

	var m T
	nan := false
	for _, x := range xs {
		f := float64(x)
		if math.IsInf(f, 0) {
			return T(math.Inf(1))
		}
		if math.IsNaN(f) {
			nan = true
			continue
		}
		if a := Abs(x); a > m {
			m = a
		}
	}
	if nan {
		return T(math.NaN())
	}
	if m == 0 {
		return 0
	}

	var sum T
	for _, x := range xs {
		r := x / m
		sum += r * r
	}

	return m * Sqrt(sum)
}
