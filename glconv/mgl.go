// SPDX-License-Identifier: MIT

package glconv

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/quat"
	"github.com/katalvlaran/lvmath/transform"
	"github.com/katalvlaran/lvmath/vector"
)

// Vec2ToMgl converts v to an mgl64.Vec2.
func Vec2ToMgl(v vector.Vec2) mgl64.Vec2 { return mgl64.Vec2{v.X, v.Y} }

// Vec2FromMgl converts v to a vector.Vec2.
func Vec2FromMgl(v mgl64.Vec2) vector.Vec2 { return vector.Vec2{X: v[0], Y: v[1]} }

// Vec3ToMgl converts v to an mgl64.Vec3.
func Vec3ToMgl(v vector.Vec3) mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }

// Vec3FromMgl converts v to a vector.Vec3.
func Vec3FromMgl(v mgl64.Vec3) vector.Vec3 { return vector.Vec3{X: v[0], Y: v[1], Z: v[2]} }

// QuatToMgl moves the scalar part to mgl64's W field.
func QuatToMgl(q quat.Quat) mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

// QuatFromMgl is the inverse of QuatToMgl.
func QuatFromMgl(q mgl64.Quat) quat.Quat {
	return quat.Quat{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}

// Mat3ToMgl copies the column-major elements.
func Mat3ToMgl(m matrix.Mat3) mgl64.Mat3 { return mgl64.Mat3(m.M) }

// Mat3FromMgl is the inverse of Mat3ToMgl.
func Mat3FromMgl(m mgl64.Mat3) matrix.Mat3 { return matrix.Mat3{M: m} }

// Mat4ToMgl copies the column-major elements.
func Mat4ToMgl(m matrix.Mat4) mgl64.Mat4 { return mgl64.Mat4(m.M) }

// Mat4FromMgl is the inverse of Mat4ToMgl.
func Mat4FromMgl(m mgl64.Mat4) matrix.Mat4 { return matrix.Mat4{M: m} }

// TransformToMgl returns the affine matrix of t.
func TransformToMgl(t transform.Transform) mgl64.Mat4 { return Mat4ToMgl(t.AsMat4()) }

// TransformFromMgl decomposes an affine mgl64 matrix. See
// transform.Transform.SetFromMat4 for the failure mode.
func TransformFromMgl(m mgl64.Mat4) (transform.Transform, error) {
	var t transform.Transform
	if err := t.SetFromMat4(Mat4FromMgl(m)); err != nil {
		return transform.Transform{}, err
	}
	return t, nil
}
