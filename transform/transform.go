// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/quat"
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Transform is position, rotation and per-axis scale.
type Transform struct {
	Position vector.Vec3
	Rotation quat.Quat
	Scale    vector.Vec3
}

// Identity returns zero position, identity rotation and unit scale.
func Identity() Transform {
	return Transform{Rotation: quat.Identity(), Scale: vector.One3()}
}

// New returns a Transform from its parts. rot should be normalized.
func New(pos vector.Vec3, rot quat.Quat, scale vector.Vec3) Transform {
	return Transform{Position: pos, Rotation: rot, Scale: scale}
}

// SetIdentity resets t to Identity.
func (t *Transform) SetIdentity() { *t = Identity() }

// IsIdentical reports exact equality of every component.
func (t Transform) IsIdentical(rhs Transform) bool { return t == rhs }

// IsEqual compares position, rotation and scale component-wise within eps.
// Rotations q and -q compare as equal.
func (t Transform) IsEqual(rhs Transform, eps float64) bool {
	return t.Position.IsEqual(rhs.Position, eps) &&
		t.Rotation.IsEqualRotation(rhs.Rotation, eps) &&
		t.Scale.IsEqual(rhs.Scale, eps)
}

// SetMulTransform sets t = lhs⊗rhs, the transform that applies rhs first
// and lhs second:
//
//	pos   = lhs.Position + lhs.Rotation·(lhs.Scale ⊙ rhs.Position)
//	rot   = lhs.Rotation ⊗ rhs.Rotation
//	scale = lhs.Scale ⊙ rhs.Scale
func (t *Transform) SetMulTransform(lhs, rhs Transform) {
	pos := lhs.Position.Add(lhs.Rotation.RotateVec3(lhs.Scale.CompMul(rhs.Position)))
	rot := lhs.Rotation.Mul(rhs.Rotation)
	scale := lhs.Scale.CompMul(rhs.Scale)
	*t = Transform{Position: pos, Rotation: rot, Scale: scale}
}

// Mul returns t⊗rhs.
func (t Transform) Mul(rhs Transform) Transform {
	var r Transform
	r.SetMulTransform(t, rhs)
	return r
}

// SetGlobalTransform sets t to the world transform of a child with the
// given local transform under parent.
func (t *Transform) SetGlobalTransform(parent, local Transform) {
	t.SetMulTransform(parent, local)
}

// SetLocalTransform sets t to the local transform that yields global when
// placed under parent. It undoes SetGlobalTransform step by step:
// un-translate, inverse-rotate, un-scale. parent.Scale must be non-zero.
func (t *Transform) SetLocalTransform(parent, global Transform) {
	invRot := parent.Rotation.Inverse()
	invScale := reciprocal(parent.Scale)

	pos := invRot.RotateVec3(global.Position.Sub(parent.Position)).CompMul(invScale)
	rot := invRot.Mul(global.Rotation)
	scale := invScale.CompMul(global.Scale)
	*t = Transform{Position: pos, Rotation: rot, Scale: scale}
}

// Invert turns t into its inverse in place. Scale must be non-zero.
func (t *Transform) Invert() {
	invRot := t.Rotation.Inverse()
	invScale := reciprocal(t.Scale)
	t.Position = invScale.CompMul(invRot.RotateVec3(t.Position.Negated()))
	t.Rotation = invRot
	t.Scale = invScale
}

// Inverse returns the inverse of t. t.Mul(t.Inverse()) is the identity for
// any non-zero scale; see the package documentation for the other order.
func (t Transform) Inverse() Transform {
	t.Invert()
	return t
}

// TransformPosition maps a point: scale, rotate, translate.
func (t Transform) TransformPosition(p vector.Vec3) vector.Vec3 {
	return t.Position.Add(t.Rotation.RotateVec3(t.Scale.CompMul(p)))
}

// TransformDirection maps a direction: scale and rotate, no translation.
func (t Transform) TransformDirection(d vector.Vec3) vector.Vec3 {
	return t.Rotation.RotateVec3(t.Scale.CompMul(d))
}

// AsMat4 returns the affine matrix translation·rotation·scale.
func (t Transform) AsMat4() matrix.Mat4 {
	rot := t.Rotation.AsMat3()
	var scale matrix.Mat3
	scale.SetScalingMatrix(t.Scale)

	var m matrix.Mat4
	m.SetTransformationMatrix(rot.Mul(scale), t.Position)
	return m
}

// SetFromMat4 decomposes an affine matrix.
// Implementation:
//
//	Stage 1: scale = length of each basis column.
//	Stage 2: normalize the columns; any column of length ≤ SmallEpsilon
//	         fails with matrix.ErrDegenerateColumn.
//	Stage 3: rotation from the normalized 3x3, translation from column 3.
//
// On error t is left unchanged. Shear and negative scale are not
// represented faithfully.
func (t *Transform) SetFromMat4(m matrix.Mat4) error {
	linear := m.RotationalPart()
	scale := linear.ScalingFactors()
	if err := linear.SetScalingFactors(vector.One3(), scalar.SmallEpsilon); err != nil {
		return fmt.Errorf("Transform.SetFromMat4: %w", err)
	}

	var rot quat.Quat
	rot.SetFromMat3(linear)
	*t = Transform{Position: m.Translation(), Rotation: rot, Scale: scale}
	return nil
}

// ContainsNegativeScale reports whether an odd number of scale components
// are negative, i.e. whether t mirrors space.
func (t Transform) ContainsNegativeScale() bool {
	return t.Scale.X*t.Scale.Y*t.Scale.Z < 0
}

// ContainsUniformScale reports whether all scale components agree within eps.
func (t Transform) ContainsUniformScale(eps float64) bool {
	return scalar.IsEqual(t.Scale.X, t.Scale.Y, eps) && scalar.IsEqual(t.Scale.X, t.Scale.Z, eps)
}

// MaxAppliedScale returns the largest absolute scale component.
func (t Transform) MaxAppliedScale() float64 {
	s := t.Scale.Abs()
	return math.Max(s.X, math.Max(s.Y, s.Z))
}

// IsValid reports whether every component is finite.
func (t Transform) IsValid() bool {
	return t.Position.IsValid() && t.Rotation.IsValid() && t.Scale.IsValid()
}

// String implements fmt.Stringer.
func (t Transform) String() string {
	return fmt.Sprintf("{pos %v rot %v scale %v}", t.Position, t.Rotation, t.Scale)
}

func reciprocal(v vector.Vec3) vector.Vec3 {
	return vector.Vec3{X: 1 / v.X, Y: 1 / v.Y, Z: 1 / v.Z}
}
