// SPDX-License-Identifier: MIT

package scalar

import "math"

// ApproxEqual reports whether |a-b| <= eps, where eps comes from opts
// (DefaultEpsilon if none). The difference is taken in float64 so unsigned
// kinds never wrap.
// Complexity: O(1).
func ApproxEqual[T Number](a, b T, opts ...Option) bool {
	return Within(a, b, NewOptions(opts...))
}

// Within is ApproxEqual with already-resolved options, for loops that compare
// many elements under one policy.
func Within[T Number](a, b T, o Options) bool {
	return math.Abs(float64(a)-float64(b)) <= o.eps
}
