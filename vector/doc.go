// SPDX-License-Identifier: MIT

// Package vector provides the Vec2 and Vec3 value types.
//
// Both are plain structs of float64 components. Copying is a deep copy;
// there is no identity and no shared state.
//
// API shape:
//
//   - Arithmetic returns new values: a.Add(b), v.Mul(2), a.Cross(b), ...
//   - In-place mutators use pointer receivers and mirror the arithmetic:
//     v.Normalize(), v.NormalizeIfNotZero(fallback, eps), v.SetLength(l, eps).
//   - Comparisons never fail: IsIdentical (exact), IsEqual (per component ≤ eps).
//
// Fast path vs safe path:
//
//	Normalize trusts the caller. Normalizing a zero vector produces NaN
//	components. NormalizeIfNotZero and SetLength are the checked variants.
//
// Random sampling:
//
//	RandomPointInSphere / RandomDirection (Vec3) and RandomPointInCircle /
//	RandomDirection2 (Vec2) draw from an explicit Source. Use NewSource(seed)
//	for a deterministic PCG stream; *math/rand.Rand satisfies Source as well.
//	Rejection sampling inside the unit cube keeps the distribution uniform
//	over the ball instead of biased toward the cube corners.
package vector
