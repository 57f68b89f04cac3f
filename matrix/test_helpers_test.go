// SPDX-License-Identifier: MIT
// Package matrix_test contains shared test helpers.
//
// Purpose:
//   • Small deterministic fixtures for the Mat3/Mat4 kernels.
//   • Epsilon assertions that print both operands on failure.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/angle"
	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

// epsTest is the tolerance of the round-trip properties.
const epsTest = 1e-3

// epsDet is the singularity threshold handed to Invert.
const epsDet = 1e-9

// requireMat3Equal fails the test when want and got differ by more than eps.
func requireMat3Equal(t *testing.T, want, got matrix.Mat3, eps float64) {
	t.Helper()
	require.Truef(t, want.IsEqual(got, eps), "want %v\n got %v", want, got)
}

// requireMat4Equal fails the test when want and got differ by more than eps.
func requireMat4Equal(t *testing.T, want, got matrix.Mat4, eps float64) {
	t.Helper()
	require.Truef(t, want.IsEqual(got, eps), "want %v\n got %v", want, got)
}

// requireVec3Equal fails the test when want and got differ by more than eps.
func requireVec3Equal(t *testing.T, want, got vector.Vec3, eps float64) {
	t.Helper()
	require.Truef(t, want.IsEqual(got, eps), "want %v got %v", want, got)
}

// sweepAxes calls fn for axes swept over [1,360]³ in 40 unit steps,
// normalized. The sweep matches the quaternion round-trip fixtures.
func sweepAxes(fn func(axis vector.Vec3)) {
	for x := 1.0; x < 360; x += 40 {
		for y := 1.0; y < 360; y += 40 {
			for z := 1.0; z < 360; z += 40 {
				fn(vector.NewVec3(x, y, z).Normalized())
			}
		}
	}
}

// rotationScaleTranslation builds a well-conditioned affine Mat4.
func rotationScaleTranslation() matrix.Mat4 {
	var rot, scale matrix.Mat3
	rot.SetRotationMatrix(vector.NewVec3(1, 2, 3).Normalized(), angle.DegreeToRadian(19))
	scale.SetScalingMatrix(vector.NewVec3(2, 0.5, 3))

	var m matrix.Mat4
	m.SetTransformationMatrix(rot.Mul(scale), vector.NewVec3(4, -5, 6))
	return m
}
