// SPDX-License-Identifier: MIT

// Package matrix provides the fixed-size Mat3 and Mat4 value types used for
// rotations, scaling and affine transforms.
//
// Storage convention:
//
//	Both types store their elements column-major. Element(column, row)
//	addresses M[column*N + row]. NewMat3/NewMat4 take their arguments in
//	row-major *reading* order so literals look like the matrix on paper:
//
//	  NewMat3(c1r1, c2r1, c3r1,
//	          c1r2, c2r2, c3r2,
//	          c1r3, c2r3, c3r3)
//
// Mat4 keeps the linear part in the upper-left 3x3 block and the translation
// in column 3 (rows 0..2). The bottom row is (0, 0, 0, 1) by convention and is
// never validated.
//
// Multiplication order:
//
//	m.SetMul(lhs, rhs) computes m = lhs·rhs. Applied to a vector the rightmost
//	operand acts first, so SetMul(rotation, scaling) scales before rotating.
//
// Failure policy:
//
//   - Invert / Inverse return ErrSingular when |det| <= eps; the receiver is
//     left untouched.
//   - SetScalingFactors returns ErrDegenerateColumn when a basis column has no
//     length to rescale; the receiver is left untouched.
//   - SetFromArray returns ErrBadLength / ErrBadLayout for malformed input.
//
// Nothing in this package panics on user data, logs, or allocates except
// AsArray, whose slice is the result.
package matrix
