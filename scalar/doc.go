// SPDX-License-Identifier: MIT

// Package scalar holds the epsilon-based float helpers every other lvmath
// package builds on.
//
// What is here:
//
//   - Epsilon constants: SmallEpsilon, DefaultEpsilon, LargeEpsilon, HugeEpsilon.
//   - Comparisons: IsZero, IsEqual (bounded absolute difference, never exact ==).
//   - Range helpers: Clamp, Saturate.
//   - Interpolation: Lerp.
//   - Misc: Square, Sign, IsFinite.
//
// All helpers are generic over golang.org/x/exp/constraints so they serve
// float32 callers (GPU upload paths) as well as the float64 value types of
// vector, matrix, quat, transform and color.
//
// Determinism:
//
//	Every function is pure, allocates nothing and never panics.
package scalar
