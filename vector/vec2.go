// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/scalar"
)

// Vec2 is a two component vector.
type Vec2 struct {
	X, Y float64
}

// NewVec2 returns (x, y).
func NewVec2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Zero2 returns (0, 0).
func Zero2() Vec2 { return Vec2{} }

// One2 returns (1, 1).
func One2() Vec2 { return Vec2{1, 1} }

// UnitX2 returns (1, 0).
func UnitX2() Vec2 { return Vec2{1, 0} }

// UnitY2 returns (0, 1).
func UnitY2() Vec2 { return Vec2{0, 1} }

// AsVec3 extends v with the given z.
func (v Vec2) AsVec3(z float64) Vec3 { return Vec3{v.X, v.Y, z} }

// Set assigns both components.
func (v *Vec2) Set(x, y float64) { v.X, v.Y = x, y }

// SetAll assigns f to both components.
func (v *Vec2) SetAll(f float64) { v.X, v.Y = f, f }

// SetZero resets v to the origin.
func (v *Vec2) SetZero() { *v = Vec2{} }

// LengthSquared returns v·v.
func (v Vec2) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// Normalize scales v to unit length in place. v must not be zero.
func (v *Vec2) Normalize() {
	inv := 1 / v.Length()
	v.X *= inv
	v.Y *= inv
}

// Normalized returns a unit-length copy of v.
func (v Vec2) Normalized() Vec2 {
	v.Normalize()
	return v
}

// NormalizeIfNotZero normalizes v unless every component is within eps of
// zero, in which case v is set to fallback. It reports whether normalization
// happened.
func (v *Vec2) NormalizeIfNotZero(fallback Vec2, eps float64) bool {
	if v.IsZero(eps) {
		*v = fallback
		return false
	}
	v.Normalize()
	return true
}

// SetLength rescales v to length, see Vec3.SetLength.
func (v *Vec2) SetLength(length, eps float64) error {
	if !v.NormalizeIfNotZero(Vec2{}, eps) {
		return ErrZeroLength
	}
	*v = v.Mul(length)
	return nil
}

// Negate flips both components in place.
func (v *Vec2) Negate() { v.X, v.Y = -v.X, -v.Y }

// Negated returns -v.
func (v Vec2) Negated() Vec2 { return Vec2{-v.X, -v.Y} }

// IsZero reports whether both components lie within eps of zero.
func (v Vec2) IsZero(eps float64) bool {
	return scalar.IsZero(v.X, eps) && scalar.IsZero(v.Y, eps)
}

// IsNormalized reports whether the length of v is within eps of one.
func (v Vec2) IsNormalized(eps float64) bool {
	return scalar.IsEqual(v.LengthSquared(), 1, eps)
}

// IsIdentical reports exact component equality.
func (v Vec2) IsIdentical(rhs Vec2) bool { return v == rhs }

// IsEqual reports whether both components differ from rhs by at most eps.
func (v Vec2) IsEqual(rhs Vec2, eps float64) bool {
	return scalar.IsEqual(v.X, rhs.X, eps) && scalar.IsEqual(v.Y, rhs.Y, eps)
}

// IsValid reports whether both components are finite.
func (v Vec2) IsValid() bool { return scalar.IsFinite(v.X) && scalar.IsFinite(v.Y) }

// Add returns v+rhs.
func (v Vec2) Add(rhs Vec2) Vec2 { return Vec2{v.X + rhs.X, v.Y + rhs.Y} }

// Sub returns v-rhs.
func (v Vec2) Sub(rhs Vec2) Vec2 { return Vec2{v.X - rhs.X, v.Y - rhs.Y} }

// Mul scales v by f.
func (v Vec2) Mul(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Div divides v by f.
func (v Vec2) Div(f float64) Vec2 { return Vec2{v.X / f, v.Y / f} }

// CompMul multiplies component-wise.
func (v Vec2) CompMul(rhs Vec2) Vec2 { return Vec2{v.X * rhs.X, v.Y * rhs.Y} }

// CompDiv divides component-wise.
func (v Vec2) CompDiv(rhs Vec2) Vec2 { return Vec2{v.X / rhs.X, v.Y / rhs.Y} }

// CompMin returns the component-wise minimum.
func (v Vec2) CompMin(rhs Vec2) Vec2 { return Vec2{min(v.X, rhs.X), min(v.Y, rhs.Y)} }

// CompMax returns the component-wise maximum.
func (v Vec2) CompMax(rhs Vec2) Vec2 { return Vec2{max(v.X, rhs.X), max(v.Y, rhs.Y)} }

// Abs returns the component-wise absolute value.
func (v Vec2) Abs() Vec2 { return Vec2{math.Abs(v.X), math.Abs(v.Y)} }

// Dot returns the dot product.
func (v Vec2) Dot(rhs Vec2) float64 { return v.X*rhs.X + v.Y*rhs.Y }

// CompClamp clamps every component into [lo, hi] of the matching component.
func (v Vec2) CompClamp(lo, hi Vec2) Vec2 {
	return Vec2{scalar.Clamp(v.X, lo.X, hi.X), scalar.Clamp(v.Y, lo.Y, hi.Y)}
}

// Distance returns |v - rhs|.
func (v Vec2) Distance(rhs Vec2) float64 { return v.Sub(rhs).Length() }

// Lerp interpolates from v (t=0) to to (t=1).
func (v Vec2) Lerp(to Vec2, t float64) Vec2 {
	return Vec2{scalar.Lerp(v.X, to.X, t), scalar.Lerp(v.Y, to.Y, t)}
}

// Reflected mirrors v on the line with the given unit normal.
func (v Vec2) Reflected(normal Vec2) Vec2 {
	return v.Sub(normal.Mul(2 * v.Dot(normal)))
}

// AngleBetween returns the angle in radians between two normalized vectors.
func (v Vec2) AngleBetween(rhs Vec2) float64 {
	return math.Acos(scalar.Clamp(v.Dot(rhs), -1, 1))
}

// String formats v as (x, y).
func (v Vec2) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }
