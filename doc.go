// SPDX-License-Identifier: MIT

// Package lvmath is a spatial math toolkit for engine and tooling code:
// vectors, matrices, quaternions, transforms and colors as plain values with
// explicit epsilon rules.
//
// What is inside:
//
//	scalar/      epsilon constants, IsZero/IsEqual, Clamp, Saturate, Lerp
//	angle/       degree/radian conversion, shortest angular distance
//	vector/      Vec2, Vec3, seedable PCG source, random points and directions
//	matrix/      Mat3, Mat4 (column-major), inversion, array layouts
//	quat/        rotations: axis-angle, matrix, slerp, shortest arc, Euler
//	transform/   position + rotation + non-uniform scale, local/global hierarchy
//	color/       linear RGBA, sRGB bytes, HDR exposure, HSV, CSS names
//	glconv/      mgl64 and x/image/math/f32 interchange
//
// Conventions:
//
//   - Values, not handles: copying a value is a full, independent duplicate.
//   - Column-major matrices; SetMul(lhs, rhs) applies rhs first.
//   - Every fuzzy comparison takes an explicit epsilon.
//   - Degenerate input returns a package sentinel error (errors.Is) and
//     leaves the receiver untouched. Fast paths (Normalize, unit-axis
//     rotations) trust the caller.
//   - No logging and no global state in the library packages.
//
// The lvmath command (cmd/lvmath) resolves a YAML scene description into
// world-space transforms and colors and doubles as an end-to-end exercise
// of the packages.
//
// Quick example:
//
//	q := quat.FromAxisAndAngle(vector.UnitX(), math.Pi/2)
//	v := q.RotateVec3(vector.UnitY()) // (0, 0, 1)
//
//	go get github.com/katalvlaran/lvmath
package lvmath
