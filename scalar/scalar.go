// SPDX-License-Identifier: MIT

package scalar

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Epsilon tiers shared by all packages. Callers pick the tier matching the
// magnitude of the values they compare.
const (
	// SmallEpsilon is used for unit-length checks and near-parallel tests.
	SmallEpsilon = 1e-6

	// DefaultEpsilon is the tolerance used when a caller has no better choice.
	DefaultEpsilon = 1e-5

	// LargeEpsilon tolerates accumulated error of a few chained operations.
	LargeEpsilon = 1e-3

	// HugeEpsilon is meant for visual comparisons only.
	HugeEpsilon = 1e-2
)

// Float is the set of types the float helpers accept.
type Float interface {
	constraints.Float
}

// IsZero reports whether |v| <= eps.
func IsZero[T Float](v, eps T) bool {
	return v >= -eps && v <= eps
}

// IsEqual reports whether a and b differ by at most eps.
//
// Complexity: O(1).
func IsEqual[T Float](a, b, eps T) bool {
	d := a - b
	return d >= -eps && d <= eps
}

// Clamp limits v to the closed range [lo, hi].
// The result is undefined when lo > hi.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Saturate clamps v to [0, 1].
func Saturate[T Float](v T) T {
	return Clamp(v, 0, 1)
}

// Lerp interpolates linearly from a (t=0) to b (t=1). t is not clamped.
func Lerp[T Float](a, b, t T) T {
	return a + (b-a)*t
}

// Square returns v*v.
func Square[T constraints.Integer | constraints.Float](v T) T {
	return v * v
}

// Sign returns -1, 0 or 1 depending on the sign of v.
func Sign[T constraints.Signed | constraints.Float](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite[T Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
