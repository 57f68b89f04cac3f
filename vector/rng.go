// SPDX-License-Identifier: MIT

// Deterministic random sources for the sampling helpers.
//
// Goals:
//   - Determinism: same seed ⇒ identical samples across platforms.
//   - No hidden global or time-based source anywhere in lvmath.
//
// Concurrency:
//   - PCGSource is NOT goroutine-safe. Give every goroutine its own source.

package vector

import "github.com/MichaelTJones/pcg"

// defaultSeed is used when callers pass seed == 0.
const defaultSeed uint64 = 1

// pcgStream selects the PCG increment sequence. Any odd-producing constant
// works; it is fixed so that a seed alone identifies the stream.
const pcgStream uint64 = 0xda3e39cb94b95bdb

// Source yields uniformly distributed floats in [0, 1).
// *math/rand.Rand and *PCGSource both satisfy it.
type Source interface {
	Float64() float64
}

// PCGSource is a deterministic Source backed by a PCG32 generator.
type PCGSource struct {
	r *pcg.PCG32
}

// NewSource returns a PCGSource seeded with seed.
// Policy: seed == 0 ⇒ defaultSeed; otherwise seed is used verbatim.
func NewSource(seed uint64) *PCGSource {
	if seed == 0 {
		seed = defaultSeed
	}
	r := pcg.NewPCG32()
	r.Seed(seed, pcgStream)
	return &PCGSource{r: r}
}

// Float64 returns a float in [0, 1) built from 53 random bits.
func (s *PCGSource) Float64() float64 {
	hi := uint64(s.r.Random())
	lo := uint64(s.r.Random())
	return float64((hi<<32|lo)>>11) / (1 << 53)
}

// Uint32n returns a value in [0, n) without modulo bias.
func (s *PCGSource) Uint32n(n uint32) uint32 {
	return s.r.Bounded(n)
}
