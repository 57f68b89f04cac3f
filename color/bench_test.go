// SPDX-License-Identifier: MIT
package color_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/color"
)

var sinkByte uint8

func BenchmarkGammaByteRGBA(b *testing.B) {
	c := color.New(0.2, 0.5, 0.9, 1)
	for i := 0; i < b.N; i++ {
		sinkByte, _, _, _ = c.GammaByteRGBA()
	}
}

func BenchmarkNamed(b *testing.B) {
	for i := 0; i < b.N; i++ {
		c, _ := color.Named("YellowGreen")
		sinkByte = uint8(c.A)
	}
}
