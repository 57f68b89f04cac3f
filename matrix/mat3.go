// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vector"
)

// Mat3 is a 3x3 matrix stored column-major. See the package doc.
type Mat3 struct {
	M [9]float64
}

// NewMat3 builds a Mat3 from elements given in row-major reading order.
func NewMat3(
	c1r1, c2r1, c3r1,
	c1r2, c2r2, c3r2,
	c1r3, c2r3, c3r3 float64,
) Mat3 {
	return Mat3{M: [9]float64{
		c1r1, c1r2, c1r3,
		c2r1, c2r2, c2r3,
		c3r1, c3r2, c3r3,
	}}
}

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{M: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}
}

// Zero3 returns the 3x3 zero matrix.
func Zero3() Mat3 { return Mat3{} }

// Element returns the value at (column, row).
func (m Mat3) Element(column, row int) float64 { return m.M[column*3+row] }

// SetElement writes v at (column, row).
func (m *Mat3) SetElement(column, row int, v float64) { m.M[column*3+row] = v }

// SetFromArray loads 9 elements stored in the given layout.
// On error m is unchanged.
func (m *Mat3) SetFromArray(data []float64, layout Layout) error {
	if err := ValidateArray(data, 9, layout); err != nil {
		return fmt.Errorf("Mat3.SetFromArray: %w", err)
	}
	fromArray(m.M[:], data, 3, layout)
	return nil
}

// AsArray returns the 9 elements in the requested layout. Unknown layouts
// are treated as ColumnMajor.
func (m Mat3) AsArray(layout Layout) []float64 { return toArray(m.M[:], 3, layout) }

// SetIdentity turns m into the identity matrix.
func (m *Mat3) SetIdentity() { *m = Identity3() }

// SetZero sets every element to zero.
func (m *Mat3) SetZero() { *m = Mat3{} }

// SetScalingMatrix turns m into a diagonal scaling matrix.
func (m *Mat3) SetScalingMatrix(s vector.Vec3) {
	*m = NewMat3(
		s.X, 0, 0,
		0, s.Y, 0,
		0, 0, s.Z,
	)
}

// SetRotationMatrixX turns m into a rotation of rad radians around +X.
func (m *Mat3) SetRotationMatrixX(rad float64) {
	s, c := math.Sincos(rad)
	*m = NewMat3(
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

// SetRotationMatrixY turns m into a rotation of rad radians around +Y.
func (m *Mat3) SetRotationMatrixY(rad float64) {
	s, c := math.Sincos(rad)
	*m = NewMat3(
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}

// SetRotationMatrixZ turns m into a rotation of rad radians around +Z.
func (m *Mat3) SetRotationMatrixZ(rad float64) {
	s, c := math.Sincos(rad)
	*m = NewMat3(
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

// SetRotationMatrix turns m into a rotation of rad radians around axis using
// Rodrigues' formula R = cos·I + sin·[a]× + (1−cos)·a⊗a.
// axis must be normalized; this is not checked.
func (m *Mat3) SetRotationMatrix(axis vector.Vec3, rad float64) {
	s, c := math.Sincos(rad)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	*m = NewMat3(
		c+x*x*t, x*y*t-z*s, x*z*t+y*s,
		x*y*t+z*s, c+y*y*t, y*z*t-x*s,
		x*z*t-y*s, y*z*t+x*s, c+z*z*t,
	)
}

// Transpose mirrors m on its diagonal in place.
func (m *Mat3) Transpose() {
	m.M[1], m.M[3] = m.M[3], m.M[1]
	m.M[2], m.M[6] = m.M[6], m.M[2]
	m.M[5], m.M[7] = m.M[7], m.M[5]
}

// Transposed returns the transpose of m.
func (m Mat3) Transposed() Mat3 {
	m.Transpose()
	return m
}

// Determinant returns det(m) by cofactor expansion along the first row.
func (m Mat3) Determinant() float64 {
	a00, a01, a02 := m.M[0], m.M[3], m.M[6]
	a10, a11, a12 := m.M[1], m.M[4], m.M[7]
	a20, a21, a22 := m.M[2], m.M[5], m.M[8]

	return a00*(a11*a22-a12*a21) -
		a01*(a10*a22-a12*a20) +
		a02*(a10*a21-a11*a20)
}

// Invert replaces m with its inverse using the adjugate (cofactor) method.
// Implementation:
//
//	Stage 1: compute det; |det| <= eps ⇒ ErrSingular, m untouched.
//	Stage 2: build the transposed cofactor matrix scaled by 1/det.
//
// Complexity: O(1), 9 cofactors.
func (m *Mat3) Invert(eps float64) error {
	det := m.Determinant()
	if scalar.IsZero(det, eps) {
		return ErrSingular
	}
	inv := 1 / det

	a00, a01, a02 := m.M[0], m.M[3], m.M[6]
	a10, a11, a12 := m.M[1], m.M[4], m.M[7]
	a20, a21, a22 := m.M[2], m.M[5], m.M[8]

	*m = NewMat3(
		(a11*a22-a12*a21)*inv, (a02*a21-a01*a22)*inv, (a01*a12-a02*a11)*inv,
		(a12*a20-a10*a22)*inv, (a00*a22-a02*a20)*inv, (a02*a10-a00*a12)*inv,
		(a10*a21-a11*a20)*inv, (a01*a20-a00*a21)*inv, (a00*a11-a01*a10)*inv,
	)
	return nil
}

// Inverse returns the inverse of m, or ErrSingular.
func (m Mat3) Inverse(eps float64) (Mat3, error) {
	if err := m.Invert(eps); err != nil {
		return Mat3{}, err
	}
	return m, nil
}

// Row returns row r (0..2).
func (m Mat3) Row(r int) vector.Vec3 {
	return vector.Vec3{X: m.M[r], Y: m.M[3+r], Z: m.M[6+r]}
}

// SetRow overwrites row r.
func (m *Mat3) SetRow(r int, v vector.Vec3) {
	m.M[r], m.M[3+r], m.M[6+r] = v.X, v.Y, v.Z
}

// Column returns column c (0..2).
func (m Mat3) Column(c int) vector.Vec3 {
	return vector.Vec3{X: m.M[c*3], Y: m.M[c*3+1], Z: m.M[c*3+2]}
}

// SetColumn overwrites column c.
func (m *Mat3) SetColumn(c int, v vector.Vec3) {
	m.M[c*3], m.M[c*3+1], m.M[c*3+2] = v.X, v.Y, v.Z
}

// Diagonal returns (m00, m11, m22).
func (m Mat3) Diagonal() vector.Vec3 { return vector.Vec3{X: m.M[0], Y: m.M[4], Z: m.M[8]} }

// SetDiagonal overwrites the diagonal.
func (m *Mat3) SetDiagonal(d vector.Vec3) { m.M[0], m.M[4], m.M[8] = d.X, d.Y, d.Z }

// ScalingFactors returns the length of each basis column, i.e. the per-axis
// scale of a rotation+scale matrix.
func (m Mat3) ScalingFactors() vector.Vec3 {
	return vector.Vec3{X: m.Column(0).Length(), Y: m.Column(1).Length(), Z: m.Column(2).Length()}
}

// SetScalingFactors rescales each basis column to the matching component of s.
// If any column is within eps of zero, m is left unchanged and
// ErrDegenerateColumn is returned.
func (m *Mat3) SetScalingFactors(s vector.Vec3, eps float64) error {
	cols, err := rescaleColumns([3]vector.Vec3{m.Column(0), m.Column(1), m.Column(2)}, s, eps)
	if err != nil {
		return err
	}
	for i := range cols {
		m.SetColumn(i, cols[i])
	}
	return nil
}

// rescaleColumns returns the three columns re-lengthed to s, or
// ErrDegenerateColumn without touching anything.
func rescaleColumns(cols [3]vector.Vec3, s vector.Vec3, eps float64) ([3]vector.Vec3, error) {
	target := [3]float64{s.X, s.Y, s.Z}
	for i := range cols {
		if err := cols[i].SetLength(target[i], eps); err != nil {
			return cols, ErrDegenerateColumn
		}
	}
	return cols, nil
}

// SetMul sets m = lhs·rhs.
func (m *Mat3) SetMul(lhs, rhs Mat3) {
	var out Mat3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out.M[c*3+r] = lhs.M[r]*rhs.M[c*3] +
				lhs.M[3+r]*rhs.M[c*3+1] +
				lhs.M[6+r]*rhs.M[c*3+2]
		}
	}
	*m = out
}

// Mul returns m·rhs.
func (m Mat3) Mul(rhs Mat3) Mat3 {
	var out Mat3
	out.SetMul(m, rhs)
	return out
}

// MulScalar returns m with every element multiplied by f.
func (m Mat3) MulScalar(f float64) Mat3 {
	for i := range m.M {
		m.M[i] *= f
	}
	return m
}

// Add returns m + rhs.
func (m Mat3) Add(rhs Mat3) Mat3 {
	for i := range m.M {
		m.M[i] += rhs.M[i]
	}
	return m
}

// Sub returns m - rhs.
func (m Mat3) Sub(rhs Mat3) Mat3 {
	for i := range m.M {
		m.M[i] -= rhs.M[i]
	}
	return m
}

// TransformDirection returns m·v.
func (m Mat3) TransformDirection(v vector.Vec3) vector.Vec3 {
	return vector.Vec3{
		X: m.M[0]*v.X + m.M[3]*v.Y + m.M[6]*v.Z,
		Y: m.M[1]*v.X + m.M[4]*v.Y + m.M[7]*v.Z,
		Z: m.M[2]*v.X + m.M[5]*v.Y + m.M[8]*v.Z,
	}
}

// IsIdentical reports exact element equality.
func (m Mat3) IsIdentical(rhs Mat3) bool { return m.M == rhs.M }

// IsEqual reports whether every element differs from rhs by at most eps.
func (m Mat3) IsEqual(rhs Mat3, eps float64) bool { return allClose(m.M[:], rhs.M[:], eps) }

// IsIdentity reports whether m is within eps of the identity.
func (m Mat3) IsIdentity(eps float64) bool { return m.IsEqual(Identity3(), eps) }

// IsZero reports whether every element is within eps of zero.
func (m Mat3) IsZero(eps float64) bool { return m.IsEqual(Mat3{}, eps) }

// IsValid reports whether every element is finite.
func (m Mat3) IsValid() bool { return allFinite(m.M[:]) }

// String prints m row by row.
func (m Mat3) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g; %g %g %g]",
		m.M[0], m.M[3], m.M[6],
		m.M[1], m.M[4], m.M[7],
		m.M[2], m.M[5], m.M[8])
}

func allClose(a, b []float64, eps float64) bool {
	for i := range a {
		if !scalar.IsEqual(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func allFinite(a []float64) bool {
	for _, v := range a {
		if !scalar.IsFinite(v) {
			return false
		}
	}
	return true
}
