// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/scalar"
)

// Vec3 is a three component vector.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 returns (x, y, z).
func NewVec3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Splat3 returns (v, v, v).
func Splat3(v float64) Vec3 { return Vec3{v, v, v} }

// Zero3 returns (0, 0, 0).
func Zero3() Vec3 { return Vec3{} }

// One3 returns (1, 1, 1).
func One3() Vec3 { return Vec3{1, 1, 1} }

// UnitX returns (1, 0, 0).
func UnitX() Vec3 { return Vec3{1, 0, 0} }

// UnitY returns (0, 1, 0).
func UnitY() Vec3 { return Vec3{0, 1, 0} }

// UnitZ returns (0, 0, 1).
func UnitZ() Vec3 { return Vec3{0, 0, 1} }

// Set assigns all three components.
func (v *Vec3) Set(x, y, z float64) { v.X, v.Y, v.Z = x, y, z }

// SetAll assigns f to every component.
func (v *Vec3) SetAll(f float64) { v.X, v.Y, v.Z = f, f, f }

// SetZero resets v to the origin.
func (v *Vec3) SetZero() { *v = Vec3{} }

// XY drops the z component.
func (v Vec3) XY() Vec2 { return Vec2{v.X, v.Y} }

// LengthSquared returns v·v.
func (v Vec3) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// Normalize scales v to unit length in place.
// v must not be zero; a zero vector ends up with NaN components.
func (v *Vec3) Normalize() {
	inv := 1 / v.Length()
	v.X *= inv
	v.Y *= inv
	v.Z *= inv
}

// Normalized returns a unit-length copy of v. Same precondition as Normalize.
func (v Vec3) Normalized() Vec3 {
	v.Normalize()
	return v
}

// NormalizeIfNotZero normalizes v unless every component is within eps of
// zero, in which case v is set to fallback. The test is per component, not
// on length. It reports whether normalization happened.
func (v *Vec3) NormalizeIfNotZero(fallback Vec3, eps float64) bool {
	if v.IsZero(eps) {
		*v = fallback
		return false
	}
	v.Normalize()
	return true
}

// SetLength rescales v to the given length. If v is (near) zero it cannot
// carry a direction: v is set to zero and ErrZeroLength is returned.
func (v *Vec3) SetLength(length, eps float64) error {
	if !v.NormalizeIfNotZero(Vec3{}, eps) {
		return ErrZeroLength
	}
	*v = v.Mul(length)
	return nil
}

// Negate flips the sign of every component in place.
func (v *Vec3) Negate() { v.X, v.Y, v.Z = -v.X, -v.Y, -v.Z }

// Negated returns -v.
func (v Vec3) Negated() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// IsZero reports whether every component lies within eps of zero.
func (v Vec3) IsZero(eps float64) bool {
	return scalar.IsZero(v.X, eps) && scalar.IsZero(v.Y, eps) && scalar.IsZero(v.Z, eps)
}

// IsNormalized reports whether the length of v is within eps of one.
func (v Vec3) IsNormalized(eps float64) bool {
	return scalar.IsEqual(v.LengthSquared(), 1, eps)
}

// IsIdentical reports exact component equality.
func (v Vec3) IsIdentical(rhs Vec3) bool { return v == rhs }

// IsEqual reports whether every component differs from rhs by at most eps.
func (v Vec3) IsEqual(rhs Vec3, eps float64) bool {
	return scalar.IsEqual(v.X, rhs.X, eps) &&
		scalar.IsEqual(v.Y, rhs.Y, eps) &&
		scalar.IsEqual(v.Z, rhs.Z, eps)
}

// IsNaN reports whether any component is NaN.
func (v Vec3) IsNaN() bool { return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) }

// IsValid reports whether every component is finite.
func (v Vec3) IsValid() bool {
	return scalar.IsFinite(v.X) && scalar.IsFinite(v.Y) && scalar.IsFinite(v.Z)
}

// Add returns v + rhs.
func (v Vec3) Add(rhs Vec3) Vec3 { return Vec3{v.X + rhs.X, v.Y + rhs.Y, v.Z + rhs.Z} }

// Sub returns v - rhs.
func (v Vec3) Sub(rhs Vec3) Vec3 { return Vec3{v.X - rhs.X, v.Y - rhs.Y, v.Z - rhs.Z} }

// Mul returns v scaled by f.
func (v Vec3) Mul(f float64) Vec3 { return Vec3{v.X * f, v.Y * f, v.Z * f} }

// Div returns v divided by f.
func (v Vec3) Div(f float64) Vec3 {
	inv := 1 / f
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// CompMul multiplies component-wise.
func (v Vec3) CompMul(rhs Vec3) Vec3 { return Vec3{v.X * rhs.X, v.Y * rhs.Y, v.Z * rhs.Z} }

// CompDiv divides component-wise.
func (v Vec3) CompDiv(rhs Vec3) Vec3 { return Vec3{v.X / rhs.X, v.Y / rhs.Y, v.Z / rhs.Z} }

// CompMin returns the component-wise minimum.
func (v Vec3) CompMin(rhs Vec3) Vec3 {
	return Vec3{min(v.X, rhs.X), min(v.Y, rhs.Y), min(v.Z, rhs.Z)}
}

// CompMax returns the component-wise maximum.
func (v Vec3) CompMax(rhs Vec3) Vec3 {
	return Vec3{max(v.X, rhs.X), max(v.Y, rhs.Y), max(v.Z, rhs.Z)}
}

// CompClamp clamps every component into [lo, hi] of the matching component.
func (v Vec3) CompClamp(lo, hi Vec3) Vec3 {
	return Vec3{
		scalar.Clamp(v.X, lo.X, hi.X),
		scalar.Clamp(v.Y, lo.Y, hi.Y),
		scalar.Clamp(v.Z, lo.Z, hi.Z),
	}
}

// Abs returns the component-wise absolute value.
func (v Vec3) Abs() Vec3 { return Vec3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)} }

// Dot returns v·rhs.
func (v Vec3) Dot(rhs Vec3) float64 { return v.X*rhs.X + v.Y*rhs.Y + v.Z*rhs.Z }

// Cross returns the right-handed cross product v × rhs.
func (v Vec3) Cross(rhs Vec3) Vec3 {
	return Vec3{
		X: v.Y*rhs.Z - v.Z*rhs.Y,
		Y: v.Z*rhs.X - v.X*rhs.Z,
		Z: v.X*rhs.Y - v.Y*rhs.X,
	}
}

// Distance returns |v - rhs|.
func (v Vec3) Distance(rhs Vec3) float64 { return v.Sub(rhs).Length() }

// DistanceSquared returns |v - rhs|².
func (v Vec3) DistanceSquared(rhs Vec3) float64 { return v.Sub(rhs).LengthSquared() }

// AngleBetween returns the angle in radians between two normalized vectors.
func (v Vec3) AngleBetween(rhs Vec3) float64 {
	return math.Acos(scalar.Clamp(v.Dot(rhs), -1, 1))
}

// Lerp interpolates from v (t=0) to to (t=1).
func (v Vec3) Lerp(to Vec3, t float64) Vec3 {
	return Vec3{
		scalar.Lerp(v.X, to.X, t),
		scalar.Lerp(v.Y, to.Y, t),
		scalar.Lerp(v.Z, to.Z, t),
	}
}

// Reflected mirrors v on the plane with the given unit normal.
func (v Vec3) Reflected(normal Vec3) Vec3 {
	return v.Sub(normal.Mul(2 * v.Dot(normal)))
}

// Refracted bends v (unit incident direction) through a surface with unit
// normal, going from refraction index n1 into n2. On total internal
// reflection v is returned unchanged.
func (v Vec3) Refracted(normal Vec3, n1, n2 float64) Vec3 {
	n := n1 / n2
	cosI := -v.Dot(normal)
	sinT2 := n * n * (1 - cosI*cosI)
	if sinT2 > 1 {
		return v
	}
	return v.Mul(n).Add(normal.Mul(n*cosI - math.Sqrt(1-sinT2)))
}

// Orthogonal returns some vector perpendicular to v (not normalized).
func (v Vec3) Orthogonal() Vec3 {
	if math.Abs(v.Y) < 0.99 {
		return Vec3{-v.Z, 0, v.X}
	}
	return Vec3{0, v.Z, -v.Y}
}

// MakeOrthogonalTo removes the part of v that is parallel to the unit normal.
func (v *Vec3) MakeOrthogonalTo(normal Vec3) {
	*v = normal.Cross(*v).Cross(normal)
}

// CalculateNormal returns the unit normal of the counter-clockwise triangle
// (a, b, c). Degenerate triangles yield ErrZeroLength.
func CalculateNormal(a, b, c Vec3) (Vec3, error) {
	n := c.Sub(b).Cross(a.Sub(b))
	if !n.NormalizeIfNotZero(Vec3{}, scalar.SmallEpsilon) {
		return Vec3{}, ErrZeroLength
	}
	return n, nil
}

// String implements fmt.Stringer.
func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
