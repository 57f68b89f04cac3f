// SPDX-License-Identifier: MIT

// Package color provides a linear-space RGBA color with sRGB interchange.
//
// Color components are float64 in linear space and are not clamped:
// values above 1 are HDR. Alpha is always linear.
//
// Conversions:
//   - GammaToLinear / LinearToGamma implement the piecewise sRGB transfer
//     curve (thresholds 0.04045 and 0.0031308).
//   - FromGammaBytes, SetGammaByteRGBA and GammaByteRGBA move between linear
//     floats and 8-bit sRGB bytes, with round-to-nearest quantization.
//   - SetHSV / HSV work in gamma space with hue in degrees.
//   - RGBA lets a Color act as an image/color.Color.
//
// HDR helpers scale colors into and out of the [0,1] range via a multiplier
// max(1, R, G, B) or an exposure value log2(multiplier).
//
// The CSS named colors are plain functions returning fresh values; Named
// looks them up by name.
package color
