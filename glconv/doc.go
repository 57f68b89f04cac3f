// SPDX-License-Identifier: MIT

// Package glconv converts lvmath values to and from the layouts other Go
// graphics code consumes.
//
//   - github.com/go-gl/mathgl/mgl64: column-major float64, the same storage
//     order as matrix.Mat3/Mat4, so matrices copy element for element.
//     Quaternions map (X, Y, Z, W) ⇄ {W, V}.
//   - golang.org/x/image/math/f32: row-major float32 upload format.
//   - image/color: NRGBA bytes in sRGB.
//
// All conversions are pure functions on values.
package glconv
