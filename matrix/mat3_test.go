// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/angle"
	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

func TestMat3_LayoutConvention(t *testing.T) {
	m := matrix.NewMat3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	require.Equal(t, [9]float64{1, 4, 7, 2, 5, 8, 3, 6, 9}, m.M)
	require.Equal(t, 2.0, m.Element(1, 0))
	require.Equal(t, 4.0, m.Element(0, 1))

	m.SetElement(2, 1, 60)
	require.Equal(t, 60.0, m.M[7])

	require.Equal(t, vector.NewVec3(4, 5, 60), m.Row(1))
	require.Equal(t, vector.NewVec3(3, 60, 9), m.Column(2))
	require.Equal(t, vector.NewVec3(1, 5, 9), m.Diagonal())
}

func TestMat3_ArrayRoundTrip(t *testing.T) {
	rowMajor := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}

	var m matrix.Mat3
	require.NoError(t, m.SetFromArray(rowMajor, matrix.RowMajor))
	require.Equal(t, matrix.NewMat3(1, 2, 3, 4, 5, 6, 7, 8, 9), m)
	require.Equal(t, rowMajor, m.AsArray(matrix.RowMajor))
	require.Equal(t, []float64{1, 4, 7, 2, 5, 8, 3, 6, 9}, m.AsArray(matrix.ColumnMajor))

	var c matrix.Mat3
	require.NoError(t, c.SetFromArray(m.AsArray(matrix.ColumnMajor), matrix.ColumnMajor))
	require.True(t, c.IsIdentical(m))

	// Mutating the exported slice must not reach back into the matrix.
	out := m.AsArray(matrix.ColumnMajor)
	out[0] = 99
	require.Equal(t, 1.0, m.M[0])
}

func TestMat3_SetFromArray_Errors(t *testing.T) {
	m := matrix.Identity3()
	require.ErrorIs(t, m.SetFromArray([]float64{1, 2, 3}, matrix.RowMajor), matrix.ErrBadLength)
	require.ErrorIs(t, m.SetFromArray(make([]float64, 9), matrix.Layout(9)), matrix.ErrBadLayout)
	require.True(t, m.IsIdentity(0), "receiver must be unchanged on error")
}

func TestMat3_AxisRotations(t *testing.T) {
	quarter := angle.DegreeToRadian(90)
	var m matrix.Mat3

	m.SetRotationMatrixX(quarter)
	requireVec3Equal(t, vector.UnitZ(), m.TransformDirection(vector.UnitY()), 1e-12)

	m.SetRotationMatrixY(quarter)
	requireVec3Equal(t, vector.UnitX(), m.TransformDirection(vector.UnitZ()), 1e-12)

	m.SetRotationMatrixZ(quarter)
	requireVec3Equal(t, vector.UnitY(), m.TransformDirection(vector.UnitX()), 1e-12)
}

func TestMat3_RodriguesMatchesAxisRotations(t *testing.T) {
	for _, deg := range []float64{-170, -45, 0, 19, 83, 180} {
		rad := angle.DegreeToRadian(deg)
		var axisRot, fixed matrix.Mat3

		axisRot.SetRotationMatrix(vector.UnitX(), rad)
		fixed.SetRotationMatrixX(rad)
		requireMat3Equal(t, fixed, axisRot, 1e-12)

		axisRot.SetRotationMatrix(vector.UnitY(), rad)
		fixed.SetRotationMatrixY(rad)
		requireMat3Equal(t, fixed, axisRot, 1e-12)

		axisRot.SetRotationMatrix(vector.UnitZ(), rad)
		fixed.SetRotationMatrixZ(rad)
		requireMat3Equal(t, fixed, axisRot, 1e-12)
	}
}

func TestMat3_RotationKeepsAxisAndLength(t *testing.T) {
	sweepAxes(func(axis vector.Vec3) {
		var m matrix.Mat3
		m.SetRotationMatrix(axis, angle.DegreeToRadian(83))
		requireVec3Equal(t, axis, m.TransformDirection(axis), 1e-9)
		require.InDelta(t, 1, m.Determinant(), 1e-9)

		v := vector.NewVec3(3, -1, 2)
		require.InDelta(t, v.Length(), m.TransformDirection(v).Length(), 1e-9)
	})
}

func TestMat3_Invert_ConcreteExample(t *testing.T) {
	var m matrix.Mat3
	m.SetRotationMatrix(vector.NewVec3(1, 2, 3).Normalized(), angle.DegreeToRadian(19))

	inv := m
	require.NoError(t, inv.Invert(epsDet))

	v := vector.NewVec3(1, 1, 1)
	requireVec3Equal(t, v, inv.TransformDirection(m.TransformDirection(v)), epsTest)
}

func TestMat3_InverseLaws(t *testing.T) {
	var scale matrix.Mat3
	scale.SetScalingMatrix(vector.NewVec3(2, 0.5, 3))

	sweepAxes(func(axis vector.Vec3) {
		var rot matrix.Mat3
		rot.SetRotationMatrix(axis, angle.DegreeToRadian(19))
		m := rot.Mul(scale)

		inv, err := m.Inverse(epsDet)
		require.NoError(t, err)
		requireMat3Equal(t, matrix.Identity3(), m.Mul(inv), epsTest)
		requireMat3Equal(t, matrix.Identity3(), inv.Mul(m), epsTest)

		back, err := inv.Inverse(epsDet)
		require.NoError(t, err)
		requireMat3Equal(t, m, back, epsTest)

		// For a pure rotation the inverse is the transpose.
		rotInv, err := rot.Inverse(epsDet)
		require.NoError(t, err)
		requireMat3Equal(t, rot.Transposed(), rotInv, 1e-9)
	})
}

func TestMat3_Invert_Singular(t *testing.T) {
	singular := matrix.NewMat3(
		1, 2, 3,
		2, 4, 6,
		0, 1, 1,
	)
	before := singular
	require.ErrorIs(t, singular.Invert(epsDet), matrix.ErrSingular)
	require.True(t, singular.IsIdentical(before))

	_, err := matrix.Zero3().Inverse(epsDet)
	require.ErrorIs(t, err, matrix.ErrSingular)

	// The threshold is the caller's: a tiny but regular matrix fails a coarse eps.
	var tiny matrix.Mat3
	tiny.SetScalingMatrix(vector.Splat3(0.01))
	require.ErrorIs(t, tiny.Invert(1e-3), matrix.ErrSingular)
	require.NoError(t, tiny.Invert(1e-9))
}

func TestMat3_Determinant(t *testing.T) {
	var s matrix.Mat3
	s.SetScalingMatrix(vector.NewVec3(2, 3, 4))
	require.Equal(t, 24.0, s.Determinant())
	require.Equal(t, 1.0, matrix.Identity3().Determinant())
	require.Equal(t, 0.0, matrix.Zero3().Determinant())
}

func TestMat3_ScalingFactors(t *testing.T) {
	var rot, scale matrix.Mat3
	rot.SetRotationMatrix(vector.NewVec3(-1, 4, 2).Normalized(), 1.3)
	scale.SetScalingMatrix(vector.NewVec3(2, 0.5, 3))
	m := rot.Mul(scale)

	requireVec3Equal(t, vector.NewVec3(2, 0.5, 3), m.ScalingFactors(), 1e-9)

	require.NoError(t, m.SetScalingFactors(vector.One3(), 1e-9))
	requireMat3Equal(t, rot, m, 1e-9)

	require.NoError(t, m.SetScalingFactors(vector.NewVec3(5, 6, 7), 1e-9))
	requireVec3Equal(t, vector.NewVec3(5, 6, 7), m.ScalingFactors(), 1e-9)
}

func TestMat3_SetScalingFactors_Degenerate(t *testing.T) {
	m := matrix.Identity3()
	m.SetColumn(1, vector.Zero3())
	before := m

	err := m.SetScalingFactors(vector.NewVec3(2, 2, 2), 1e-9)
	require.ErrorIs(t, err, matrix.ErrDegenerateColumn)
	require.True(t, m.IsIdentical(before))
}

func TestMat3_MulOrder(t *testing.T) {
	var rot, scale matrix.Mat3
	rot.SetRotationMatrixZ(angle.DegreeToRadian(90))
	scale.SetScalingMatrix(vector.NewVec3(2, 1, 1))

	var rs matrix.Mat3
	rs.SetMul(rot, scale)

	// Rightmost operand acts first: scale x, then rotate onto y.
	v := vector.UnitX()
	requireVec3Equal(t, vector.NewVec3(0, 2, 0), rs.TransformDirection(v), 1e-12)
	requireVec3Equal(t, rot.TransformDirection(scale.TransformDirection(v)), rs.TransformDirection(v), 1e-12)

	sr := scale.Mul(rot)
	requireVec3Equal(t, vector.NewVec3(0, 1, 0), sr.TransformDirection(v), 1e-12)
}

func TestMat3_Transpose(t *testing.T) {
	m := matrix.NewMat3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	tr := m.Transposed()
	require.Equal(t, matrix.NewMat3(1, 4, 7, 2, 5, 8, 3, 6, 9), tr)
	require.Equal(t, matrix.NewMat3(1, 2, 3, 4, 5, 6, 7, 8, 9), m)

	tr.Transpose()
	require.True(t, tr.IsIdentical(m))
}

func TestMat3_ElementwiseAndSetters(t *testing.T) {
	a := matrix.Identity3()
	b := matrix.Identity3().MulScalar(2)
	require.Equal(t, matrix.Identity3().MulScalar(3), a.Add(b))
	require.Equal(t, matrix.Identity3().MulScalar(-1), a.Sub(b))

	var m matrix.Mat3
	m.SetRow(0, vector.NewVec3(1, 2, 3))
	m.SetDiagonal(vector.NewVec3(7, 8, 9))
	require.Equal(t, matrix.NewMat3(7, 2, 3, 0, 8, 0, 0, 0, 9), m)

	m.SetZero()
	require.True(t, m.IsZero(0))
	m.SetIdentity()
	require.True(t, m.IsIdentity(0))
	require.True(t, m.IsValid())

	m.SetElement(0, 0, math.Inf(1))
	require.False(t, m.IsValid())
	require.Equal(t, "[1 0 0; 0 1 0; 0 0 1]", matrix.Identity3().String())
}
