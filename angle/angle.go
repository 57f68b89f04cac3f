// SPDX-License-Identifier: MIT

// Package angle converts between degrees and radians and measures the
// shortest unsigned distance between two angles.
//
// All angles handled by lvmath are radians; degrees only appear at the
// boundaries (authoring data, CLI input) and are converted immediately.
package angle

import "math"

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// DegreeToRadian converts d degrees to radians.
func DegreeToRadian(d float64) float64 { return d * degToRad }

// RadianToDegree converts r radians to degrees.
func RadianToDegree(r float64) float64 { return r * radToDeg }

// AngleBetween returns the unsigned shortest angular distance between a and
// b in radians, in [0, π].
//
// The formula π − ||a−b| − π| handles a single wraparound only: inputs whose
// difference exceeds 2π produce values outside [0, π]. Callers that may pass
// arbitrary accumulated angles should run them through NormalizeRadian first.
func AngleBetween(a, b float64) float64 {
	return math.Pi - math.Abs(math.Abs(a-b)-math.Pi)
}

// IsEqualSimple reports whether a and b are within eps radians of each other
// as measured by AngleBetween. It shares AngleBetween's single-wraparound limit.
func IsEqualSimple(a, b, eps float64) bool {
	return AngleBetween(a, b) <= eps
}

// NormalizeRadian maps r into [0, 2π).
func NormalizeRadian(r float64) float64 {
	r = math.Mod(r, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return r
}
