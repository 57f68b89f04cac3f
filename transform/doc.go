// SPDX-License-Identifier: MIT

// Package transform composes position, rotation and non-uniform scale into
// a rigid-plus-scale Transform.
//
// A Transform applies scale first, then rotation, then translation:
//
//	p' = Position + Rotation·(Scale ⊙ p)
//
// The zero value is not the identity (its scale and rotation are zero);
// use Identity or SetIdentity.
//
// Hierarchies:
//
//	global = parent ⊗ local          (SetGlobalTransform)
//	local  = parent⁻¹ ⊗ global       (SetLocalTransform)
//
// Both directions are exact inverses of each other for any non-zero scale.
//
// Limitations:
//   - A Transform cannot express shear. Composing a non-uniformly scaled
//     parent with a rotated child discards the shear a matrix product would
//     carry, and so does Inverse for non-uniform scale: T·T⁻¹ is the identity
//     for any non-zero scale, while T⁻¹·T and (T⁻¹)⁻¹ = T hold only for
//     uniform scale.
//   - SetFromMat4 recovers scale as column lengths, so negative scale comes
//     back as a positive scale with a flipped rotation when representable,
//     and shear is lost.
package transform
