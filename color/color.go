// SPDX-License-Identifier: MIT

package color

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvmath/scalar"
)

// Color is a linear-space RGBA color.
type Color struct {
	R, G, B, A float64
}

// New returns (r, g, b, a) as is.
func New(r, g, b, a float64) Color { return Color{R: r, G: g, B: b, A: a} }

// RGB returns an opaque color.
func RGB(r, g, b float64) Color { return Color{R: r, G: g, B: b, A: 1} }

// FromGammaBytes decodes opaque sRGB bytes into linear space.
func FromGammaBytes(r, g, b uint8) Color { return FromGammaBytesA(r, g, b, 255) }

// FromGammaBytesA decodes sRGB bytes into linear space; alpha is linear.
func FromGammaBytesA(r, g, b, a uint8) Color {
	var c Color
	c.SetGammaByteRGBA(r, g, b, a)
	return c
}

// GammaToLinear maps an sRGB encoded value to linear space.
func GammaToLinear(x float64) float64 {
	if x <= 0.04045 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}

// LinearToGamma maps a linear value to sRGB encoding.
func LinearToGamma(x float64) float64 {
	if x <= 0.0031308 {
		return 12.92 * x
	}
	return 1.055*math.Pow(x, 1/2.4) - 0.055
}

// ColorFloatToByte quantizes f to a byte, saturating and rounding to nearest.
func ColorFloatToByte(f float64) uint8 {
	return uint8(math.Floor(scalar.Saturate(f)*255 + 0.5))
}

// ColorByteToFloat maps a byte to [0,1].
func ColorByteToFloat(b uint8) float64 { return float64(b) / 255 }

// SetGammaByteRGBA sets c from sRGB bytes. RGB go through the sRGB curve,
// alpha does not.
func (c *Color) SetGammaByteRGBA(r, g, b, a uint8) {
	c.R = GammaToLinear(ColorByteToFloat(r))
	c.G = GammaToLinear(ColorByteToFloat(g))
	c.B = GammaToLinear(ColorByteToFloat(b))
	c.A = ColorByteToFloat(a)
}

// GammaByteRGBA encodes c as sRGB bytes. HDR components saturate.
func (c Color) GammaByteRGBA() (r, g, b, a uint8) {
	return ColorFloatToByte(LinearToGamma(c.R)),
		ColorFloatToByte(LinearToGamma(c.G)),
		ColorFloatToByte(LinearToGamma(c.B)),
		ColorFloatToByte(c.A)
}

// LinearToGammaColor returns c with RGB encoded to sRGB floats.
func (c Color) LinearToGammaColor() Color {
	return Color{LinearToGamma(c.R), LinearToGamma(c.G), LinearToGamma(c.B), c.A}
}

// SetFromGamma sets c from sRGB encoded floats.
func (c *Color) SetFromGamma(gamma Color) {
	*c = Color{GammaToLinear(gamma.R), GammaToLinear(gamma.G), GammaToLinear(gamma.B), gamma.A}
}

// ParseHex decodes "#rgb", "#rrggbb" or "#rrggbbaa" sRGB notation.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if hex == "" || strings.Trim(hex, "0123456789abcdefABCDEF") != "" {
		return Color{}, fmt.Errorf("%w: %q", ErrBadHex, s)
	}

	var r, g, b, a uint8
	a = 255

	var n int
	var err error
	switch len(hex) {
	case 3:
		n, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r, g, b = r*17, g*17, b*17
		n++
	case 6:
		n, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
		n++
	case 8:
		n, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	}
	if err != nil || n != 4 {
		return Color{}, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
	return FromGammaBytesA(r, g, b, a), nil
}

// ComputeHdrMultiplier returns max(1, R, G, B).
func (c Color) ComputeHdrMultiplier() float64 {
	return math.Max(1, math.Max(c.R, math.Max(c.G, c.B)))
}

// ComputeHdrExposureValue returns log2 of the HDR multiplier; 0 for LDR colors.
func (c Color) ComputeHdrExposureValue() float64 {
	return math.Log2(c.ComputeHdrMultiplier())
}

// ApplyHdrExposureValue scales RGB by 2^ev. Alpha is untouched.
func (c *Color) ApplyHdrExposureValue(ev float64) {
	f := math.Exp2(ev)
	c.R *= f
	c.G *= f
	c.B *= f
}

// NormalizeToLdrRange divides RGB by the HDR multiplier so the largest
// component is at most 1. LDR colors are unchanged.
func (c *Color) NormalizeToLdrRange() {
	f := 1 / c.ComputeHdrMultiplier()
	c.R *= f
	c.G *= f
	c.B *= f
}

// Luminance returns the relative luminance (Rec. 709 weights) of linear RGB.
func (c Color) Luminance() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// Inverted returns 1-RGB with alpha kept.
func (c Color) Inverted() Color { return Color{1 - c.R, 1 - c.G, 1 - c.B, c.A} }

// ScaleRGB multiplies RGB by f, alpha kept.
func (c Color) ScaleRGB(f float64) Color { return Color{c.R * f, c.G * f, c.B * f, c.A} }

// WithAlpha returns c with alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Add sums all four components.
func (c Color) Add(rhs Color) Color {
	return Color{c.R + rhs.R, c.G + rhs.G, c.B + rhs.B, c.A + rhs.A}
}

// Sub subtracts all four components.
func (c Color) Sub(rhs Color) Color {
	return Color{c.R - rhs.R, c.G - rhs.G, c.B - rhs.B, c.A - rhs.A}
}

// Mul scales all four components.
func (c Color) Mul(f float64) Color { return Color{c.R * f, c.G * f, c.B * f, c.A * f} }

// CompMul multiplies component-wise (modulation).
func (c Color) CompMul(rhs Color) Color {
	return Color{c.R * rhs.R, c.G * rhs.G, c.B * rhs.B, c.A * rhs.A}
}

// Lerp interpolates all four components in linear space.
func (c Color) Lerp(to Color, t float64) Color {
	return Color{
		scalar.Lerp(c.R, to.R, t),
		scalar.Lerp(c.G, to.G, t),
		scalar.Lerp(c.B, to.B, t),
		scalar.Lerp(c.A, to.A, t),
	}
}

// IsNormalized reports whether every component lies in [0,1].
func (c Color) IsNormalized() bool {
	for _, v := range [4]float64{c.R, c.G, c.B, c.A} {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// IsIdentical reports exact equality.
func (c Color) IsIdentical(rhs Color) bool { return c == rhs }

// IsEqualRGB compares RGB within eps, ignoring alpha.
func (c Color) IsEqualRGB(rhs Color, eps float64) bool {
	return scalar.IsEqual(c.R, rhs.R, eps) && scalar.IsEqual(c.G, rhs.G, eps) && scalar.IsEqual(c.B, rhs.B, eps)
}

// IsEqualRGBA compares all four components within eps.
func (c Color) IsEqualRGBA(rhs Color, eps float64) bool {
	return c.IsEqualRGB(rhs, eps) && scalar.IsEqual(c.A, rhs.A, eps)
}

// IsValid reports whether every component is finite.
func (c Color) IsValid() bool {
	return scalar.IsFinite(c.R) && scalar.IsFinite(c.G) && scalar.IsFinite(c.B) && scalar.IsFinite(c.A)
}

// SetHSV sets c from gamma-space hue (degrees, any range), saturation and
// value in [0,1]. Alpha becomes 1.
func (c *Color) SetHSV(h, s, v float64) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	hi := int(h/60) % 6
	f := h/60 - math.Floor(h/60)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch hi {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	c.SetFromGamma(Color{r, g, b, 1})
}

// HSV returns the gamma-space hue in degrees [0,360), saturation and value.
func (c Color) HSV() (h, s, v float64) {
	g := c.LinearToGammaColor()
	hi := math.Max(g.R, math.Max(g.G, g.B))
	lo := math.Min(g.R, math.Min(g.G, g.B))

	v = hi
	if hi == 0 || hi == lo {
		return 0, 0, v
	}
	s = (hi - lo) / hi

	switch hi {
	case g.R:
		h = 60 * (g.G - g.B) / (hi - lo)
	case g.G:
		h = 60*(g.B-g.R)/(hi-lo) + 120
	default:
		h = 60*(g.R-g.G)/(hi-lo) + 240
	}
	if h < 0 {
		h += 360
	}
	return h, s, v
}

// RGBA implements image/color.Color: sRGB encoded, alpha-premultiplied,
// 16 bits per channel.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := scalar.Saturate(c.A)
	quant := func(x float64) uint32 {
		return uint32(math.Floor(scalar.Saturate(LinearToGamma(x))*alpha*0xffff + 0.5))
	}
	return quant(c.R), quant(c.G), quant(c.B), uint32(math.Floor(alpha*0xffff + 0.5))
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}
