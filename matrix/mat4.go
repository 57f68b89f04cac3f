// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Mat4 is a 4x4 matrix stored column-major. The upper-left 3x3 block is the
// linear part and column 3 holds the translation.
type Mat4 struct {
	M [16]float64
}

// NewMat4 builds a Mat4 from elements given in row-major reading order.
func NewMat4(
	c1r1, c2r1, c3r1, c4r1,
	c1r2, c2r2, c3r2, c4r2,
	c1r3, c2r3, c3r3, c4r3,
	c1r4, c2r4, c3r4, c4r4 float64,
) Mat4 {
	return Mat4{M: [16]float64{
		c1r1, c1r2, c1r3, c1r4,
		c2r1, c2r2, c2r3, c2r4,
		c3r1, c3r2, c3r3, c3r4,
		c4r1, c4r2, c4r3, c4r4,
	}}
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4{M: [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// Zero4 returns the 4x4 zero matrix.
func Zero4() Mat4 { return Mat4{} }

// Element returns the value at (column, row).
func (m Mat4) Element(column, row int) float64 { return m.M[column*4+row] }

// SetElement writes v at (column, row).
func (m *Mat4) SetElement(column, row int, v float64) { m.M[column*4+row] = v }

// SetFromArray loads 16 elements stored in the given layout.
// On error m is unchanged.
func (m *Mat4) SetFromArray(data []float64, layout Layout) error {
	if err := ValidateArray(data, 16, layout); err != nil {
		return fmt.Errorf("Mat4.SetFromArray: %w", err)
	}
	fromArray(m.M[:], data, 4, layout)
	return nil
}

// AsArray returns the 16 elements in the requested layout. Unknown layouts
// are treated as ColumnMajor.
func (m Mat4) AsArray(layout Layout) []float64 { return toArray(m.M[:], 4, layout) }

// SetIdentity turns m into the identity matrix.
func (m *Mat4) SetIdentity() { *m = Identity4() }

// SetZero sets every element to zero.
func (m *Mat4) SetZero() { *m = Mat4{} }

// SetTranslationMatrix turns m into a pure translation by t.
func (m *Mat4) SetTranslationMatrix(t vector.Vec3) {
	*m = Identity4()
	m.SetTranslation(t)
}

// SetScalingMatrix turns m into a pure scaling by s.
func (m *Mat4) SetScalingMatrix(s vector.Vec3) {
	var r Mat3
	r.SetScalingMatrix(s)
	m.SetTransformationMatrix(r, vector.Vec3{})
}

// SetRotationMatrixX turns m into a rotation of rad radians around +X.
func (m *Mat4) SetRotationMatrixX(rad float64) {
	var r Mat3
	r.SetRotationMatrixX(rad)
	m.SetTransformationMatrix(r, vector.Vec3{})
}

// SetRotationMatrixY turns m into a rotation of rad radians around +Y.
func (m *Mat4) SetRotationMatrixY(rad float64) {
	var r Mat3
	r.SetRotationMatrixY(rad)
	m.SetTransformationMatrix(r, vector.Vec3{})
}

// SetRotationMatrixZ turns m into a rotation of rad radians around +Z.
func (m *Mat4) SetRotationMatrixZ(rad float64) {
	var r Mat3
	r.SetRotationMatrixZ(rad)
	m.SetTransformationMatrix(r, vector.Vec3{})
}

// SetRotationMatrix turns m into a rotation around the normalized axis.
func (m *Mat4) SetRotationMatrix(axis vector.Vec3, rad float64) {
	var r Mat3
	r.SetRotationMatrix(axis, rad)
	m.SetTransformationMatrix(r, vector.Vec3{})
}

// SetTransformationMatrix builds m from a linear part and a translation.
func (m *Mat4) SetTransformationMatrix(linear Mat3, t vector.Vec3) {
	*m = Identity4()
	m.SetRotationalPart(linear)
	m.SetTranslation(t)
}

// RotationalPart returns the upper-left 3x3 block.
func (m Mat4) RotationalPart() Mat3 {
	return Mat3{M: [9]float64{
		m.M[0], m.M[1], m.M[2],
		m.M[4], m.M[5], m.M[6],
		m.M[8], m.M[9], m.M[10],
	}}
}

// SetRotationalPart overwrites the upper-left 3x3 block.
func (m *Mat4) SetRotationalPart(r Mat3) {
	for c := 0; c < 3; c++ {
		for row := 0; row < 3; row++ {
			m.M[c*4+row] = r.M[c*3+row]
		}
	}
}

// Translation returns column 3, rows 0..2.
func (m Mat4) Translation() vector.Vec3 {
	return vector.Vec3{X: m.M[12], Y: m.M[13], Z: m.M[14]}
}

// SetTranslation overwrites column 3, rows 0..2.
func (m *Mat4) SetTranslation(t vector.Vec3) {
	m.M[12], m.M[13], m.M[14] = t.X, t.Y, t.Z
}

// Transpose mirrors m on its diagonal in place.
func (m *Mat4) Transpose() {
	for c := 0; c < 4; c++ {
		for r := c + 1; r < 4; r++ {
			m.M[c*4+r], m.M[r*4+c] = m.M[r*4+c], m.M[c*4+r]
		}
	}
}

// Transposed returns the transpose of m.
func (m Mat4) Transposed() Mat4 {
	m.Transpose()
	return m
}

// minor returns the determinant of the 3x3 matrix left after removing the
// given row and column.
func (m *Mat4) minor(row, column int) float64 {
	var sub [9]float64
	i := 0
	for c := 0; c < 4; c++ {
		if c == column {
			continue
		}
		for r := 0; r < 4; r++ {
			if r == row {
				continue
			}
			sub[i] = m.M[c*4+r]
			i++
		}
	}
	return Mat3{M: sub}.Determinant()
}

// cofactor returns (−1)^(row+column) · minor(row, column).
func (m *Mat4) cofactor(row, column int) float64 {
	d := m.minor(row, column)
	if (row+column)&1 == 1 {
		return -d
	}
	return d
}

// Determinant expands along the first row: four 3x3 minors with
// alternating sign.
func (m Mat4) Determinant() float64 {
	var det float64
	for c := 0; c < 4; c++ {
		det += m.M[c*4] * m.cofactor(0, c)
	}
	return det
}

// Invert replaces m with its inverse via cofactor expansion.
// Implementation:
//
//	Stage 1: det from the first-row expansion; |det| <= eps ⇒ ErrSingular,
//	         m untouched.
//	Stage 2: inverse(row r, column c) = cofactor(c, r) / det (adjugate).
//
// Complexity: O(1), 16 3x3 minors.
func (m *Mat4) Invert(eps float64) error {
	det := m.Determinant()
	if scalar.IsZero(det, eps) {
		return ErrSingular
	}
	inv := 1 / det

	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.M[c*4+r] = m.cofactor(c, r) * inv
		}
	}
	*m = out
	return nil
}

// Inverse returns the inverse of m, or ErrSingular.
func (m Mat4) Inverse(eps float64) (Mat4, error) {
	if err := m.Invert(eps); err != nil {
		return Mat4{}, err
	}
	return m, nil
}

// Row returns row r (0..3) as (x, y, z, w).
func (m Mat4) Row(r int) [4]float64 {
	return [4]float64{m.M[r], m.M[4+r], m.M[8+r], m.M[12+r]}
}

// SetRow overwrites row r.
func (m *Mat4) SetRow(r int, v [4]float64) {
	m.M[r], m.M[4+r], m.M[8+r], m.M[12+r] = v[0], v[1], v[2], v[3]
}

// Column returns column c (0..3).
func (m Mat4) Column(c int) [4]float64 {
	return [4]float64{m.M[c*4], m.M[c*4+1], m.M[c*4+2], m.M[c*4+3]}
}

// SetColumn overwrites column c.
func (m *Mat4) SetColumn(c int, v [4]float64) {
	copy(m.M[c*4:c*4+4], v[:])
}

// Diagonal returns the four diagonal elements.
func (m Mat4) Diagonal() [4]float64 {
	return [4]float64{m.M[0], m.M[5], m.M[10], m.M[15]}
}

// SetDiagonal overwrites the four diagonal elements.
func (m *Mat4) SetDiagonal(d [4]float64) {
	m.M[0], m.M[5], m.M[10], m.M[15] = d[0], d[1], d[2], d[3]
}

// ScalingFactors returns the length of each basis column of the linear part.
func (m Mat4) ScalingFactors() vector.Vec3 { return m.RotationalPart().ScalingFactors() }

// SetScalingFactors rescales the three basis columns of the linear part.
// See Mat3.SetScalingFactors.
func (m *Mat4) SetScalingFactors(s vector.Vec3, eps float64) error {
	r := m.RotationalPart()
	if err := r.SetScalingFactors(s, eps); err != nil {
		return err
	}
	m.SetRotationalPart(r)
	return nil
}

// SetMul sets m = lhs·rhs.
func (m *Mat4) SetMul(lhs, rhs Mat4) {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out.M[c*4+r] = lhs.M[r]*rhs.M[c*4] +
				lhs.M[4+r]*rhs.M[c*4+1] +
				lhs.M[8+r]*rhs.M[c*4+2] +
				lhs.M[12+r]*rhs.M[c*4+3]
		}
	}
	*m = out
}

// Mul returns m·rhs.
func (m Mat4) Mul(rhs Mat4) Mat4 {
	var out Mat4
	out.SetMul(m, rhs)
	return out
}

// MulScalar returns m with every element multiplied by f.
func (m Mat4) MulScalar(f float64) Mat4 {
	for i := range m.M {
		m.M[i] *= f
	}
	return m
}

// Add returns m + rhs.
func (m Mat4) Add(rhs Mat4) Mat4 {
	for i := range m.M {
		m.M[i] += rhs.M[i]
	}
	return m
}

// Sub returns m - rhs.
func (m Mat4) Sub(rhs Mat4) Mat4 {
	for i := range m.M {
		m.M[i] -= rhs.M[i]
	}
	return m
}

// TransformPosition applies the linear part and the translation to p.
func (m Mat4) TransformPosition(p vector.Vec3) vector.Vec3 {
	return m.TransformDirection(p).Add(m.Translation())
}

// TransformDirection applies only the linear part to d.
func (m Mat4) TransformDirection(d vector.Vec3) vector.Vec3 {
	return vector.Vec3{
		X: m.M[0]*d.X + m.M[4]*d.Y + m.M[8]*d.Z,
		Y: m.M[1]*d.X + m.M[5]*d.Y + m.M[9]*d.Z,
		Z: m.M[2]*d.X + m.M[6]*d.Y + m.M[10]*d.Z,
	}
}

// TransformVec4 multiplies m with the homogeneous vector (v, w).
func (m Mat4) TransformVec4(v vector.Vec3, w float64) (vector.Vec3, float64) {
	out := vector.Vec3{
		X: m.M[0]*v.X + m.M[4]*v.Y + m.M[8]*v.Z + m.M[12]*w,
		Y: m.M[1]*v.X + m.M[5]*v.Y + m.M[9]*v.Z + m.M[13]*w,
		Z: m.M[2]*v.X + m.M[6]*v.Y + m.M[10]*v.Z + m.M[14]*w,
	}
	return out, m.M[3]*v.X + m.M[7]*v.Y + m.M[11]*v.Z + m.M[15]*w
}

// IsIdentical reports exact element equality.
func (m Mat4) IsIdentical(rhs Mat4) bool { return m.M == rhs.M }

// IsEqual reports whether every element differs from rhs by at most eps.
func (m Mat4) IsEqual(rhs Mat4, eps float64) bool { return allClose(m.M[:], rhs.M[:], eps) }

// IsIdentity reports whether m is within eps of the identity.
func (m Mat4) IsIdentity(eps float64) bool { return m.IsEqual(Identity4(), eps) }

// IsZero reports whether every element is within eps of zero.
func (m Mat4) IsZero(eps float64) bool { return m.IsEqual(Mat4{}, eps) }

// IsValid reports whether every element is finite.
func (m Mat4) IsValid() bool { return allFinite(m.M[:]) }

// String prints m row by row.
func (m Mat4) String() string {
	return fmt.Sprintf("[%g %g %g %g; %g %g %g %g; %g %g %g %g; %g %g %g %g]",
		m.M[0], m.M[4], m.M[8], m.M[12],
		m.M[1], m.M[5], m.M[9], m.M[13],
		m.M[2], m.M[6], m.M[10], m.M[14],
		m.M[3], m.M[7], m.M[11], m.M[15])
}
