// SPDX-License-Identifier: MIT
// Package: scalar
//
// Functional configuration for tolerance-based comparison. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithEpsilon (panics on nonsensical values),
//   - NewOptions, the resolver every ApproxEqual entry point goes through.
//
// Design goals:
//   - No global state: every call resolves its own Options.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package scalar

import "math"

// DefaultEpsilon is the absolute tolerance used by ApproxEqual when no
// WithEpsilon option is given. It is loose enough for float32 rotation
// round-trips and tight enough to catch sign errors.
const DefaultEpsilon = 1e-5

const panicEpsilonInvalid = "scalar: WithEpsilon: eps must be finite, non-negative"

// Option mutates Options. Safe to apply repeatedly; the last write wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// Epsilon returns the resolved absolute tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// WithEpsilon sets the absolute tolerance used by ApproxEqual.
//
// Errors:
//   - Panics with a stable message when eps is NaN, ±Inf or negative.
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// NewOptions resolves opts on top of the defaults. Nil options are skipped.
func NewOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
