// SPDX-License-Identifier: MIT

// Package quat implements unit quaternions for 3D rotations.
//
// A Quat is (X, Y, Z, W) with the vector part first. Identity is (0,0,0,1).
// Callers keep quaternions normalized; the constructors that derive a
// rotation (SetFromAxisAndAngle, SetFromMat3, SetSlerp, SetShortestRotation,
// SetFromEulerAngles) normalize on their own, plain assignment does not.
//
// Composition:
//
//	a.Mul(b) and a.ConcatenateRotations(b) compute the Hamilton product a⊗b,
//	which applies b first, then a.
//
// Numerics:
//
//   - SetFromMat3 picks the numerically dominant branch of the trace
//     extraction instead of dividing by a near-zero root.
//   - SetSlerp falls back to normalized linear interpolation when the inputs
//     are nearly parallel, avoiding the 1/sinθ singularity.
//   - SetShortestRotation handles parallel and anti-parallel inputs
//     explicitly.
//
// Euler angles follow a yaw(Z)-pitch(Y)-roll(X) convention; EulerAngles
// clamps pitch to ±π/2 at gimbal lock.
package quat
