// SPDX-License-Identifier: MIT
package quat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/angle"
	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/quat"
	"github.com/katalvlaran/lvmath/vector"
)

const (
	epsTest = 1e-3
	epsFine = 1e-9
)

// sweepAxes calls fn for axes swept over [1,360]³ in 40 unit steps, normalized.
func sweepAxes(fn func(axis vector.Vec3)) {
	for x := 1.0; x < 360; x += 40 {
		for y := 1.0; y < 360; y += 40 {
			for z := 1.0; z < 360; z += 40 {
				fn(vector.NewVec3(x, y, z).Normalized())
			}
		}
	}
}

func requireVec3Equal(t *testing.T, want, got vector.Vec3, eps float64) {
	t.Helper()
	require.Truef(t, want.IsEqual(got, eps), "want %v got %v", want, got)
}

func TestIdentity(t *testing.T) {
	q := quat.Identity()
	require.Equal(t, quat.New(0, 0, 0, 1), q)
	require.True(t, q.IsNormalized(epsFine))

	v := vector.NewVec3(1, -2, 3)
	require.Equal(t, v, q.RotateVec3(v))
	require.True(t, q.AsMat3().IsIdentity(epsFine))
	require.True(t, q.AsMat4().IsIdentity(epsFine))

	q = quat.New(1, 2, 3, 4)
	q.SetIdentity()
	require.True(t, q.IsIdentical(quat.Identity()))
}

func TestRotateVec3_QuarterTurnAroundX(t *testing.T) {
	q := quat.FromAxisAndAngle(vector.UnitX(), angle.DegreeToRadian(90))

	requireVec3Equal(t, vector.UnitZ(), q.RotateVec3(vector.UnitY()), 1e-4)
	requireVec3Equal(t, vector.NewVec3(0, 0, -1), q.InvRotateVec3(vector.UnitY()), 1e-4)
	requireVec3Equal(t, vector.NewVec3(0, 0, -1), q.Inverse().RotateVec3(vector.UnitY()), 1e-4)
}

func TestNormalize(t *testing.T) {
	q := quat.New(0, 3, 0, 4)
	require.InDelta(t, 5.0, q.Length(), epsFine)
	require.False(t, q.IsNormalized(epsFine))

	n := q.Normalized()
	require.True(t, n.IsEqual(quat.New(0, 0.6, 0, 0.8), epsFine))
	require.Equal(t, quat.New(0, 3, 0, 4), q, "Normalized must not touch the receiver")

	q.Normalize()
	require.True(t, q.IsNormalized(epsFine))
}

func TestInvert(t *testing.T) {
	q := quat.New(0.1, 0.2, 0.3, 0.9)
	require.Equal(t, quat.New(-0.1, -0.2, -0.3, 0.9), q.Conjugate())
	require.Equal(t, q.Conjugate(), q.Inverse())

	q.Invert()
	require.Equal(t, quat.New(-0.1, -0.2, -0.3, 0.9), q)
}

func TestAxisAndAngle(t *testing.T) {
	axis := vector.NewVec3(1, 2, 3).Normalized()
	rad := angle.DegreeToRadian(83)
	q := quat.FromAxisAndAngle(axis, rad)

	gotAxis, gotRad := q.AxisAndAngle(epsFine)
	requireVec3Equal(t, axis, gotAxis, 1e-9)
	require.InDelta(t, rad, gotRad, 1e-9)

	gotAxis, gotRad = quat.Identity().AxisAndAngle(epsFine)
	require.Equal(t, vector.UnitX(), gotAxis)
	require.Zero(t, gotRad)
}

func TestAsMat3_AgreesWithRotationMatrix(t *testing.T) {
	for _, deg := range []float64{19, 83} {
		rad := angle.DegreeToRadian(deg)
		sweepAxes(func(axis vector.Vec3) {
			var want matrix.Mat3
			want.SetRotationMatrix(axis, rad)
			got := quat.FromAxisAndAngle(axis, rad).AsMat3()
			require.Truef(t, want.IsEqual(got, epsTest), "axis %v deg %v", axis, deg)
		})
	}
}

func TestSetFromMat3_RoundTrip(t *testing.T) {
	for _, deg := range []float64{19, 83} {
		rad := angle.DegreeToRadian(deg)
		sweepAxes(func(axis vector.Vec3) {
			q := quat.FromAxisAndAngle(axis, rad)

			var back quat.Quat
			back.SetFromMat3(q.AsMat3())
			require.True(t, back.IsNormalized(epsTest))
			require.Truef(t, q.IsEqualRotation(back, epsTest), "axis %v deg %v: %v vs %v", axis, deg, q, back)

			m := q.AsMat3()
			require.True(t, back.AsMat3().IsEqual(m, epsTest))
		})
	}
}

func TestSetFromMat3_Branches(t *testing.T) {
	// Half turns drive the trace to -1 so each dominant-diagonal branch runs.
	for _, axis := range []vector.Vec3{vector.UnitX(), vector.UnitY(), vector.UnitZ()} {
		var m matrix.Mat3
		m.SetRotationMatrix(axis, math.Pi)

		var q quat.Quat
		q.SetFromMat3(m)
		require.True(t, q.IsEqualRotation(quat.FromAxisAndAngle(axis, math.Pi), 1e-9), "axis %v got %v", axis, q)
	}
}

func TestRotateVec3_AgreesWithMatrix(t *testing.T) {
	v := vector.NewVec3(0.3, -1.2, 2.5)
	sweepAxes(func(axis vector.Vec3) {
		q := quat.FromAxisAndAngle(axis, angle.DegreeToRadian(83))
		requireVec3Equal(t, q.AsMat3().TransformDirection(v), q.RotateVec3(v), 1e-9)
		requireVec3Equal(t, v, q.InvRotateVec3(q.RotateVec3(v)), 1e-9)
	})
}

func TestMul_MatchesMatrixProduct(t *testing.T) {
	a := quat.FromAxisAndAngle(vector.NewVec3(1, 2, 3).Normalized(), 0.7)
	b := quat.FromAxisAndAngle(vector.NewVec3(-2, 0, 1).Normalized(), 1.9)

	ab := a.Mul(b)
	require.True(t, ab.AsMat3().IsEqual(a.AsMat3().Mul(b.AsMat3()), 1e-9))

	// b applies first.
	v := vector.NewVec3(4, 5, 6)
	requireVec3Equal(t, a.RotateVec3(b.RotateVec3(v)), ab.RotateVec3(v), 1e-9)

	c := a
	c.ConcatenateRotations(b)
	require.Equal(t, ab, c)

	var d quat.Quat
	d.SetConcatenatedRotations(a, b)
	require.Equal(t, ab, d)

	require.True(t, a.Mul(a.Inverse()).IsEqual(quat.Identity(), 1e-12))
}

func TestSlerp_Boundaries(t *testing.T) {
	from := quat.FromAxisAndAngle(vector.UnitZ(), 0.2)
	to := quat.FromAxisAndAngle(vector.NewVec3(1, 1, 0).Normalized(), 1.1)
	require.Greater(t, from.Dot(to), 0.0)

	require.True(t, quat.Slerp(from, to, 0).IsEqual(from, 1e-9))
	require.True(t, quat.Slerp(from, to, 1).IsEqual(to, 1e-9))

	fromCopy, toCopy := from, to
	var q quat.Quat
	q.SetSlerp(from, to, 0.37)
	require.Equal(t, fromCopy, from)
	require.Equal(t, toCopy, to)
	require.True(t, q.IsNormalized(1e-9))
}

func TestSlerp_Midpoint(t *testing.T) {
	from := quat.Identity()
	to := quat.FromAxisAndAngle(vector.UnitZ(), math.Pi/2)
	want := quat.FromAxisAndAngle(vector.UnitZ(), math.Pi/4)

	require.True(t, quat.Slerp(from, to, 0.5).IsEqual(want, 1e-9))
}

func TestSlerp_ShortestPath(t *testing.T) {
	from := quat.Identity()
	to := quat.FromAxisAndAngle(vector.UnitZ(), math.Pi/2)
	negTo := quat.New(-to.X, -to.Y, -to.Z, -to.W)
	want := quat.FromAxisAndAngle(vector.UnitZ(), math.Pi/4)

	got := quat.Slerp(from, negTo, 0.5)
	require.True(t, got.IsEqualRotation(want, 1e-9), "got %v", got)
	require.True(t, quat.Slerp(from, negTo, 1).IsEqualRotation(to, 1e-9))
}

func TestSlerp_NearlyParallel(t *testing.T) {
	from := quat.FromAxisAndAngle(vector.UnitY(), 0.5)
	to := quat.FromAxisAndAngle(vector.UnitY(), 0.5001)

	got := quat.Slerp(from, to, 0.5)
	require.True(t, got.IsNormalized(1e-12))
	require.True(t, got.IsEqual(quat.FromAxisAndAngle(vector.UnitY(), 0.50005), 1e-6))
}

func TestSetShortestRotation(t *testing.T) {
	tests := []struct {
		name     string
		from, to vector.Vec3
	}{
		{"general", vector.UnitX(), vector.UnitY()},
		{"unnormalized", vector.NewVec3(2, 0, 0), vector.NewVec3(0, 0, 5)},
		{"oblique", vector.NewVec3(1, 2, 3), vector.NewVec3(-3, 1, 0.5)},
		{"parallel", vector.NewVec3(1, 1, 0), vector.NewVec3(3, 3, 0)},
		{"anti-parallel x", vector.UnitX(), vector.NewVec3(-1, 0, 0)},
		{"anti-parallel y", vector.UnitY(), vector.NewVec3(0, -2, 0)},
		{"anti-parallel oblique", vector.NewVec3(1, 2, 3), vector.NewVec3(-1, -2, -3)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var q quat.Quat
			q.SetShortestRotation(tc.from, tc.to)
			require.True(t, q.IsNormalized(1e-9))
			requireVec3Equal(t, tc.to.Normalized(), q.RotateVec3(tc.from.Normalized()), 1e-6)
		})
	}

	var q quat.Quat
	q.SetShortestRotation(vector.UnitZ(), vector.NewVec3(0, 0, 4))
	require.True(t, q.IsIdentical(quat.Identity()))
}

func TestEulerAngles_RoundTrip(t *testing.T) {
	x, y, z := 0.3, -0.4, 1.1
	var q quat.Quat
	q.SetFromEulerAngles(x, y, z)
	require.True(t, q.IsNormalized(1e-12))

	roll := quat.FromAxisAndAngle(vector.UnitX(), x)
	pitch := quat.FromAxisAndAngle(vector.UnitY(), y)
	yaw := quat.FromAxisAndAngle(vector.UnitZ(), z)
	require.True(t, q.IsEqual(yaw.Mul(pitch).Mul(roll), 1e-12))

	gx, gy, gz := q.EulerAngles()
	require.InDelta(t, x, gx, 1e-9)
	require.InDelta(t, y, gy, 1e-9)
	require.InDelta(t, z, gz, 1e-9)
}

func TestEulerAngles_GimbalLock(t *testing.T) {
	var q quat.Quat
	q.SetFromEulerAngles(0, math.Pi/2, 0)
	_, pitch, _ := q.EulerAngles()
	require.InDelta(t, math.Pi/2, pitch, 1e-6)

	q.SetFromEulerAngles(0, -math.Pi/2, 0)
	_, pitch, _ = q.EulerAngles()
	require.InDelta(t, -math.Pi/2, pitch, 1e-6)
}

func TestEquality(t *testing.T) {
	q := quat.FromAxisAndAngle(vector.UnitY(), 1)
	neg := quat.New(-q.X, -q.Y, -q.Z, -q.W)

	require.True(t, q.IsEqual(q, 0))
	require.False(t, q.IsEqual(neg, 1e-3))
	require.True(t, q.IsEqualRotation(neg, 1e-12))
	require.False(t, q.IsEqualRotation(quat.Identity(), 1e-3))

	require.True(t, q.IsValid())
	require.False(t, quat.New(math.NaN(), 0, 0, 1).IsValid())
	require.False(t, quat.New(0, math.Inf(1), 0, 1).IsValid())
}

func TestString(t *testing.T) {
	require.Equal(t, "(0, 0, 0; 1)", quat.Identity().String())
}

func TestSlerp_SameInput(t *testing.T) {
	q := quat.FromAxisAndAngle(vector.NewVec3(1, -1, 2).Normalized(), 2.2)
	for _, tt := range []float64{0, 0.1, 0.5, 0.9, 1} {
		require.True(t, quat.Slerp(q, q, tt).IsEqual(q, 1e-12))
	}
}
