// SPDX-License-Identifier: MIT
package color_test

import (
	"errors"
	stdcolor "image/color"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/color"
)

var _ stdcolor.Color = color.Color{}

func TestColorFloatToByte(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0.4, 102},
		{0, 0},
		{1, 255},
		{0.5, 128},
		{-3, 0},
		{7, 255},
	}
	for _, tc := range tests {
		require.Equalf(t, tc.want, color.ColorFloatToByte(tc.in), "in %v", tc.in)
	}
	require.Equal(t, 1.0, color.ColorByteToFloat(255))
	require.Equal(t, 0.0, color.ColorByteToFloat(0))
}

func TestGammaCurve_RoundTrip(t *testing.T) {
	for i := 0; i <= 100; i++ {
		x := float64(i) / 100
		require.InDeltaf(t, x, color.LinearToGamma(color.GammaToLinear(x)), 1e-4, "x %v", x)
		require.InDeltaf(t, x, color.GammaToLinear(color.LinearToGamma(x)), 1e-4, "x %v", x)
	}
	// Linear segment below the thresholds.
	require.InDelta(t, 0.01/12.92, color.GammaToLinear(0.01), 1e-15)
	require.InDelta(t, 0.001*12.92, color.LinearToGamma(0.001), 1e-15)
	require.InDelta(t, 0.2140, color.GammaToLinear(0.5), 1e-4)
}

func TestGammaBytes_RoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := uint8(i)
		c := color.FromGammaBytesA(b, b, b, b)
		r, g, bb, a := c.GammaByteRGBA()
		require.Equal(t, [4]uint8{b, b, b, b}, [4]uint8{r, g, bb, a})
	}

	white := color.FromGammaBytes(255, 255, 255)
	require.True(t, white.IsEqualRGBA(color.RGB(1, 1, 1), 1e-12))

	var c color.Color
	c.SetGammaByteRGBA(0, 0, 0, 51)
	require.InDelta(t, 0.2, c.A, 1e-12, "alpha stays linear")
}

func TestGammaColor(t *testing.T) {
	c := color.New(0.2, 0.5, 0.9, 0.3)
	g := c.LinearToGammaColor()
	require.Equal(t, 0.3, g.A)

	var back color.Color
	back.SetFromGamma(g)
	require.True(t, back.IsEqualRGBA(c, 1e-12))
}

func TestHdr(t *testing.T) {
	c := color.New(4, 2, 0.5, 0.7)
	require.Equal(t, 4.0, c.ComputeHdrMultiplier())
	require.InDelta(t, 2.0, c.ComputeHdrExposureValue(), 1e-12)

	n := c
	n.NormalizeToLdrRange()
	require.True(t, n.IsEqualRGBA(color.New(1, 0.5, 0.125, 0.7), 1e-12))
	require.True(t, n.IsNormalized())

	again := n
	again.NormalizeToLdrRange()
	require.Equal(t, n, again, "idempotent on LDR colors")

	n.ApplyHdrExposureValue(c.ComputeHdrExposureValue())
	require.True(t, n.IsEqualRGBA(c, 1e-12))

	ldr := color.RGB(0.2, 0.3, 0.4)
	require.Equal(t, 1.0, ldr.ComputeHdrMultiplier())
	require.Zero(t, ldr.ComputeHdrExposureValue())
}

func TestArithmetic(t *testing.T) {
	a := color.New(0.2, 0.4, 0.6, 1)
	b := color.New(0.1, 0.1, 0.2, 0.5)

	require.True(t, a.Add(b).IsEqualRGBA(color.New(0.3, 0.5, 0.8, 1.5), 1e-12))
	require.True(t, a.Sub(b).IsEqualRGBA(color.New(0.1, 0.3, 0.4, 0.5), 1e-12))
	require.True(t, a.Mul(2).IsEqualRGBA(color.New(0.4, 0.8, 1.2, 2), 1e-12))
	require.True(t, a.ScaleRGB(2).IsEqualRGBA(color.New(0.4, 0.8, 1.2, 1), 1e-12))
	require.True(t, a.CompMul(b).IsEqualRGBA(color.New(0.02, 0.04, 0.12, 0.5), 1e-12))
	require.True(t, a.Lerp(b, 0.5).IsEqualRGBA(color.New(0.15, 0.25, 0.4, 0.75), 1e-12))
	require.True(t, a.Inverted().IsEqualRGBA(color.New(0.8, 0.6, 0.4, 1), 1e-12))
	require.Equal(t, 0.25, a.WithAlpha(0.25).A)

	require.InDelta(t, 1.0, color.White().Luminance(), 1e-12)
	require.Zero(t, color.Black().Luminance())
}

func TestPredicates(t *testing.T) {
	c := color.New(0.2, 0.4, 0.6, 1)
	require.True(t, c.IsNormalized())
	require.False(t, color.RGB(1.5, 0, 0).IsNormalized())
	require.False(t, color.New(0, 0, 0, -0.1).IsNormalized())

	d := c.WithAlpha(0)
	require.True(t, c.IsEqualRGB(d, 0))
	require.False(t, c.IsEqualRGBA(d, 0.5))
	require.True(t, c.IsIdentical(c))
	require.False(t, c.IsIdentical(d))

	require.True(t, c.IsValid())
	require.False(t, color.RGB(math.Inf(1), 0, 0).IsValid())
}

func TestHSV(t *testing.T) {
	var c color.Color
	c.SetHSV(0, 1, 1)
	require.True(t, c.IsEqualRGBA(color.Red(), 1e-12))

	c.SetHSV(120, 1, 1)
	require.True(t, c.IsEqualRGBA(color.Lime(), 1e-12))

	c.SetHSV(-120, 1, 1)
	require.True(t, c.IsEqualRGBA(color.Blue(), 1e-12))

	h, s, v := color.Red().HSV()
	require.InDelta(t, 0.0, h, 1e-12)
	require.InDelta(t, 1.0, s, 1e-12)
	require.InDelta(t, 1.0, v, 1e-12)

	h, s, v = color.Gray().HSV()
	require.Zero(t, h)
	require.Zero(t, s)
	require.InDelta(t, 128.0/255, v, 1e-9)

	c.SetHSV(200, 0.5, 0.8)
	h, s, v = c.HSV()
	require.InDelta(t, 200.0, h, 1e-9)
	require.InDelta(t, 0.5, s, 1e-9)
	require.InDelta(t, 0.8, v, 1e-9)
}

func TestRGBA(t *testing.T) {
	r, g, b, a := color.White().RGBA()
	require.Equal(t, [4]uint32{0xffff, 0xffff, 0xffff, 0xffff}, [4]uint32{r, g, b, a})

	r, g, b, a = color.Red().WithAlpha(0).RGBA()
	require.Equal(t, [4]uint32{0, 0, 0, 0}, [4]uint32{r, g, b, a})

	// Conversion through the standard model lands on the sRGB bytes.
	n := stdcolor.NRGBAModel.Convert(color.CornflowerBlue()).(stdcolor.NRGBA)
	require.Equal(t, stdcolor.NRGBA{R: 100, G: 149, B: 237, A: 255}, n)
}

func TestNamed(t *testing.T) {
	c, ok := color.Named("CornflowerBlue")
	require.True(t, ok)
	require.Equal(t, color.CornflowerBlue(), c)

	c, ok = color.Named("REBECCAPURPLE")
	require.True(t, ok)
	r, g, b, a := c.GammaByteRGBA()
	require.Equal(t, [4]uint8{0x66, 0x33, 0x99, 0xff}, [4]uint8{r, g, b, a})

	_, ok = color.Named("no-such-color")
	require.False(t, ok)

	names := color.Names()
	require.Len(t, names, 148)
	require.True(t, sort.StringsAreSorted(names))
	for _, n := range names {
		c, ok := color.Named(n)
		require.Truef(t, ok, "name %q", n)
		require.Truef(t, c.IsNormalized(), "name %q", n)
	}

	// Factories return independent values.
	w := color.White()
	w.R = 0
	require.Equal(t, 1.0, color.White().R)
}

func TestParseHex(t *testing.T) {
	c, err := color.ParseHex("#6495ED")
	require.NoError(t, err)
	require.Equal(t, color.CornflowerBlue(), c)

	c, err = color.ParseHex("fff")
	require.NoError(t, err)
	require.Equal(t, color.White(), c)

	c, err = color.ParseHex("#ff000033")
	require.NoError(t, err)
	require.InDelta(t, 0.2, c.A, 1e-12)
	require.Equal(t, 1.0, c.R)

	for _, bad := range []string{"", "#", "#12345", "#ggg", "#1234567", "#12 456"} {
		_, err := color.ParseHex(bad)
		require.Truef(t, errors.Is(err, color.ErrBadHex), "input %q: %v", bad, err)
	}
}
