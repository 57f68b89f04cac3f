// SPDX-License-Identifier: MIT

package glconv

import (
	stdcolor "image/color"

	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/lvmath/color"
	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

// Vec2ToF32 narrows v to float32.
func Vec2ToF32(v vector.Vec2) f32.Vec2 { return f32.Vec2{float32(v.X), float32(v.Y)} }

// Vec3ToF32 narrows v to float32.
func Vec3ToF32(v vector.Vec3) f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Vec3FromF32 widens v to float64.
func Vec3FromF32(v f32.Vec3) vector.Vec3 {
	return vector.Vec3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

// Mat3ToF32 narrows m to float32 in row-major order.
func Mat3ToF32(m matrix.Mat3) f32.Mat3 {
	var out f32.Mat3
	for i, v := range m.AsArray(matrix.RowMajor) {
		out[i] = float32(v)
	}
	return out
}

// Mat3FromF32 widens a row-major float32 matrix.
func Mat3FromF32(a f32.Mat3) matrix.Mat3 {
	var m matrix.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m.SetElement(c, r, float64(a[r*3+c]))
		}
	}
	return m
}

// Mat4ToF32 narrows m to float32 in row-major order.
func Mat4ToF32(m matrix.Mat4) f32.Mat4 {
	var out f32.Mat4
	for i, v := range m.AsArray(matrix.RowMajor) {
		out[i] = float32(v)
	}
	return out
}

// Mat4FromF32 widens a row-major float32 matrix.
func Mat4FromF32(a f32.Mat4) matrix.Mat4 {
	var m matrix.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.SetElement(c, r, float64(a[r*4+c]))
		}
	}
	return m
}

// ColorToF32 returns linear RGBA as a float32 vector.
func ColorToF32(c color.Color) f32.Vec4 {
	return f32.Vec4{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

// ColorToNRGBA encodes c as non-premultiplied sRGB bytes.
func ColorToNRGBA(c color.Color) stdcolor.NRGBA {
	r, g, b, a := c.GammaByteRGBA()
	return stdcolor.NRGBA{R: r, G: g, B: b, A: a}
}
