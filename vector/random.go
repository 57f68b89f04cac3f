// SPDX-License-Identifier: MIT

package vector

// minSampleLengthSquared keeps rejection samples away from the origin so the
// direction variants never normalize a (near) zero vector.
const minSampleLengthSquared = 1e-12

// signed maps a [0, 1) sample to [-1, 1).
func signed(src Source) float64 {
	return src.Float64()*2 - 1
}

// RandomPointInSphere returns a point uniformly distributed inside the unit
// ball. Samples are drawn in the unit cube and rejected until they fall inside.
//
// Complexity: expected 6/π ≈ 1.9 draws of three floats.
func RandomPointInSphere(src Source) Vec3 {
	for {
		p := Vec3{signed(src), signed(src), signed(src)}
		l := p.LengthSquared()
		if l > minSampleLengthSquared && l <= 1 {
			return p
		}
	}
}

// RandomDirection returns a uniformly distributed unit vector.
func RandomDirection(src Source) Vec3 {
	return RandomPointInSphere(src).Normalized()
}

// RandomPointInCircle returns a point uniformly distributed inside the unit disc.
func RandomPointInCircle(src Source) Vec2 {
	for {
		p := Vec2{signed(src), signed(src)}
		l := p.LengthSquared()
		if l > minSampleLengthSquared && l <= 1 {
			return p
		}
	}
}

// RandomDirection2 returns a uniformly distributed 2D unit vector.
func RandomDirection2(src Source) Vec2 {
	return RandomPointInCircle(src).Normalized()
}
