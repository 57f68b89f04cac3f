// SPDX-License-Identifier: MIT

package quat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// slerpLinearThreshold: when cosθ ≥ 1 − slerpLinearThreshold SetSlerp
// interpolates linearly.
const slerpLinearThreshold = 0.009

// parallelEpsilon bounds the dot product of unit vectors that count as
// parallel or anti-parallel in SetShortestRotation.
const parallelEpsilon = 1e-7

// Quat is a rotation quaternion (X, Y, Z vector part, W scalar part).
type Quat struct {
	X, Y, Z, W float64
}

// New returns (x, y, z, w) as is, without normalizing.
func New(x, y, z, w float64) Quat { return Quat{X: x, Y: y, Z: z, W: w} }

// Identity returns the rotation that does nothing.
func Identity() Quat { return Quat{W: 1} }

// FromAxisAndAngle is the value form of SetFromAxisAndAngle.
func FromAxisAndAngle(axis vector.Vec3, rad float64) Quat {
	var q Quat
	q.SetFromAxisAndAngle(axis, rad)
	return q
}

// SetIdentity resets q to the identity rotation.
func (q *Quat) SetIdentity() { *q = Identity() }

// Vector returns the vector part (X, Y, Z).
func (q Quat) Vector() vector.Vec3 { return vector.Vec3{X: q.X, Y: q.Y, Z: q.Z} }

// Dot returns the 4D dot product.
func (q Quat) Dot(rhs Quat) float64 {
	return q.X*rhs.X + q.Y*rhs.Y + q.Z*rhs.Z + q.W*rhs.W
}

// Length returns the 4D length of q.
func (q Quat) Length() float64 { return math.Sqrt(q.Dot(q)) }

// Normalize scales q to unit length. q must not be zero.
func (q *Quat) Normalize() {
	inv := 1 / q.Length()
	q.X *= inv
	q.Y *= inv
	q.Z *= inv
	q.W *= inv
}

// Normalized returns a unit-length copy of q.
func (q Quat) Normalized() Quat {
	q.Normalize()
	return q
}

// IsNormalized reports whether the length of q is within eps of one.
func (q Quat) IsNormalized(eps float64) bool {
	return scalar.IsEqual(q.Dot(q), 1, eps)
}

// Invert turns q into its inverse rotation (conjugate) in place.
func (q *Quat) Invert() { q.X, q.Y, q.Z = -q.X, -q.Y, -q.Z }

// Conjugate returns q with the vector part negated.
func (q Quat) Conjugate() Quat { return Quat{-q.X, -q.Y, -q.Z, q.W} }

// Inverse returns the inverse of a unit quaternion, which is its conjugate.
func (q Quat) Inverse() Quat { return q.Conjugate() }

// SetFromAxisAndAngle sets q to a rotation of rad radians around axis.
// axis must be normalized; this is not checked.
func (q *Quat) SetFromAxisAndAngle(axis vector.Vec3, rad float64) {
	s, c := math.Sincos(rad * 0.5)
	*q = Quat{axis.X * s, axis.Y * s, axis.Z * s, c}
}

// AxisAndAngle returns the rotation axis and the angle in [0, 2π].
// For a rotation within eps of identity the axis is arbitrary: UnitX, 0.
func (q Quat) AxisAndAngle(eps float64) (vector.Vec3, float64) {
	w := scalar.Clamp(q.W, -1, 1)
	rad := 2 * math.Acos(w)
	s := math.Sqrt(1 - w*w)
	if scalar.IsZero(s, eps) {
		return vector.UnitX(), 0
	}
	return q.Vector().Div(s), rad
}

// AsMat3 returns the rotation matrix of q.
func (q Quat) AsMat3() matrix.Mat3 {
	tx, ty, tz := 2*q.X, 2*q.Y, 2*q.Z
	twx, twy, twz := tx*q.W, ty*q.W, tz*q.W
	txx, txy, txz := tx*q.X, ty*q.X, tz*q.X
	tyy, tyz, tzz := ty*q.Y, tz*q.Y, tz*q.Z

	return matrix.NewMat3(
		1-(tyy+tzz), txy-twz, txz+twy,
		txy+twz, 1-(txx+tzz), tyz-twx,
		txz-twy, tyz+twx, 1-(txx+tyy),
	)
}

// AsMat4 returns the rotation of q as a Mat4 without translation.
func (q Quat) AsMat4() matrix.Mat4 {
	var m matrix.Mat4
	m.SetTransformationMatrix(q.AsMat3(), vector.Vec3{})
	return m
}

// SetFromMat3 extracts the rotation of a pure rotation matrix.
// Implementation:
//
//	Stage 1: trace > 0 ⇒ take w from the trace directly.
//	Stage 2: otherwise take the component of the largest diagonal element,
//	         so the square root never approaches zero.
//	Stage 3: normalize.
func (q *Quat) SetFromMat3(m matrix.Mat3) {
	m00, m01, m02 := m.Element(0, 0), m.Element(1, 0), m.Element(2, 0)
	m10, m11, m12 := m.Element(0, 1), m.Element(1, 1), m.Element(2, 1)
	m20, m21, m22 := m.Element(0, 2), m.Element(1, 2), m.Element(2, 2)

	trace := m00 + m11 + m22
	var r Quat
	switch {
	case trace > 0:
		s := math.Sqrt(trace+1) * 2
		r = Quat{(m21 - m12) / s, (m02 - m20) / s, (m10 - m01) / s, 0.25 * s}
	case m00 > m11 && m00 > m22:
		s := math.Sqrt(1+m00-m11-m22) * 2
		r = Quat{0.25 * s, (m01 + m10) / s, (m02 + m20) / s, (m21 - m12) / s}
	case m11 > m22:
		s := math.Sqrt(1+m11-m00-m22) * 2
		r = Quat{(m01 + m10) / s, 0.25 * s, (m12 + m21) / s, (m02 - m20) / s}
	default:
		s := math.Sqrt(1+m22-m00-m11) * 2
		r = Quat{(m02 + m20) / s, (m12 + m21) / s, 0.25 * s, (m10 - m01) / s}
	}
	r.Normalize()
	*q = r
}

// RotateVec3 rotates v by q using t = 2·(q×v), v' = v + w·t + q×t.
func (q Quat) RotateVec3(v vector.Vec3) vector.Vec3 {
	qv := q.Vector()
	t := qv.Cross(v).Mul(2)
	return v.Add(t.Mul(q.W)).Add(qv.Cross(t))
}

// InvRotateVec3 rotates v by the inverse of q.
func (q Quat) InvRotateVec3(v vector.Vec3) vector.Vec3 {
	qv := q.Vector().Negated()
	t := qv.Cross(v).Mul(2)
	return v.Add(t.Mul(q.W)).Add(qv.Cross(t))
}

// Mul returns the Hamilton product q⊗rhs: rhs is applied first, then q.
func (q Quat) Mul(rhs Quat) Quat {
	return Quat{
		X: q.W*rhs.X + q.X*rhs.W + q.Y*rhs.Z - q.Z*rhs.Y,
		Y: q.W*rhs.Y - q.X*rhs.Z + q.Y*rhs.W + q.Z*rhs.X,
		Z: q.W*rhs.Z + q.X*rhs.Y - q.Y*rhs.X + q.Z*rhs.W,
		W: q.W*rhs.W - q.X*rhs.X - q.Y*rhs.Y - q.Z*rhs.Z,
	}
}

// ConcatenateRotations sets q = q⊗rhs.
func (q *Quat) ConcatenateRotations(rhs Quat) { *q = q.Mul(rhs) }

// SetConcatenatedRotations sets q = first⊗second.
func (q *Quat) SetConcatenatedRotations(first, second Quat) { *q = first.Mul(second) }

// SetSlerp sets q to the spherical interpolation from (t=0) to to (t=1)
// along the shortest arc. from and to must be normalized and are not modified.
//
// Implementation:
//
//	Stage 1: cosθ = from·to; cosθ < 0 ⇒ flip the sign applied to `to`.
//	Stage 2: cosθ ≥ 1 − 0.009 ⇒ linear interpolation.
//	Stage 3: otherwise weights sin((1−t)θ)/sinθ and sin(tθ)/sinθ.
//	Stage 4: normalize.
func (q *Quat) SetSlerp(from, to Quat, t float64) {
	cosTheta := from.Dot(to)
	sign := 1.0
	if cosTheta < 0 {
		cosTheta = -cosTheta
		sign = -1
	}

	var w0, w1 float64
	if cosTheta >= 1-slerpLinearThreshold {
		w0 = 1 - t
		w1 = t * sign
	} else {
		theta := math.Acos(cosTheta)
		invSin := 1 / math.Sin(theta)
		w0 = math.Sin((1-t)*theta) * invSin
		w1 = math.Sin(t*theta) * invSin * sign
	}

	r := Quat{
		X: from.X*w0 + to.X*w1,
		Y: from.Y*w0 + to.Y*w1,
		Z: from.Z*w0 + to.Z*w1,
		W: from.W*w0 + to.W*w1,
	}
	r.Normalize()
	*q = r
}

// Slerp is the value form of SetSlerp.
func Slerp(from, to Quat, t float64) Quat {
	var q Quat
	q.SetSlerp(from, to, t)
	return q
}

// SetShortestRotation sets q to the smallest rotation that turns direction
// from into direction to. Neither input has to be normalized but both must
// be non-zero.
//
// Cases:
//   - parallel: identity.
//   - anti-parallel: 180° around an axis perpendicular to from, built from
//     whichever of X or Y is less parallel to from.
//   - otherwise: half-angle construction (from×to, 1+from·to), normalized.
func (q *Quat) SetShortestRotation(from, to vector.Vec3) {
	v0 := from.Normalized()
	v1 := to.Normalized()
	d := v0.Dot(v1)

	switch {
	case scalar.IsEqual(d, 1, parallelEpsilon):
		q.SetIdentity()
	case scalar.IsEqual(d, -1, parallelEpsilon):
		helper := vector.UnitX()
		if math.Abs(v0.X) > math.Abs(v0.Y) {
			helper = vector.UnitY()
		}
		q.SetFromAxisAndAngle(v0.Cross(helper).Normalized(), math.Pi)
	default:
		s := math.Sqrt((1 + d) * 2)
		c := v0.Cross(v1).Div(s)
		r := Quat{c.X, c.Y, c.Z, s * 0.5}
		r.Normalize()
		*q = r
	}
}

// SetFromEulerAngles sets q from roll x, pitch y and yaw z in radians,
// applied in the order roll, pitch, yaw (q = yaw⊗pitch⊗roll).
func (q *Quat) SetFromEulerAngles(x, y, z float64) {
	sr, cr := math.Sincos(x * 0.5)
	sp, cp := math.Sincos(y * 0.5)
	sy, cy := math.Sincos(z * 0.5)

	r := Quat{
		X: sr*cp*cy - cr*sp*sy,
		Y: cr*sp*cy + sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
		W: cr*cp*cy + sr*sp*sy,
	}
	r.Normalize()
	*q = r
}

// EulerAngles returns roll x, pitch y and yaw z in radians. Pitch is clamped
// to ±π/2 at gimbal lock.
func (q Quat) EulerAngles() (x, y, z float64) {
	sinrCosp := 2 * (q.W*q.X + q.Y*q.Z)
	cosrCosp := 1 - 2*(q.X*q.X+q.Y*q.Y)
	x = math.Atan2(sinrCosp, cosrCosp)

	sinp := 2 * (q.W*q.Y - q.Z*q.X)
	if math.Abs(sinp) >= 1 {
		y = math.Copysign(math.Pi/2, sinp)
	} else {
		y = math.Asin(sinp)
	}

	sinyCosp := 2 * (q.W*q.Z + q.X*q.Y)
	cosyCosp := 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	z = math.Atan2(sinyCosp, cosyCosp)
	return x, y, z
}

// IsIdentical reports exact component equality.
func (q Quat) IsIdentical(rhs Quat) bool { return q == rhs }

// IsEqual reports whether every component differs from rhs by at most eps.
// q and -q describe the same rotation but are not equal here; see
// IsEqualRotation.
func (q Quat) IsEqual(rhs Quat, eps float64) bool {
	return scalar.IsEqual(q.X, rhs.X, eps) &&
		scalar.IsEqual(q.Y, rhs.Y, eps) &&
		scalar.IsEqual(q.Z, rhs.Z, eps) &&
		scalar.IsEqual(q.W, rhs.W, eps)
}

// IsEqualRotation reports whether q and rhs describe the same rotation
// within eps, treating q and -q as equal.
func (q Quat) IsEqualRotation(rhs Quat, eps float64) bool {
	return q.IsEqual(rhs, eps) || q.IsEqual(Quat{-rhs.X, -rhs.Y, -rhs.Z, -rhs.W}, eps)
}

// IsValid reports whether every component is finite.
func (q Quat) IsValid() bool {
	return scalar.IsFinite(q.X) && scalar.IsFinite(q.Y) && scalar.IsFinite(q.Z) && scalar.IsFinite(q.W)
}

// String implements fmt.Stringer.
func (q Quat) String() string {
	return fmt.Sprintf("(%g, %g, %g; %g)", q.X, q.Y, q.Z, q.W)
}
