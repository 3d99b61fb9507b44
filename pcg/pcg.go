// This file implements the 128-bit LCG engine, DXSM output permutation,
// and seeding.
package pcg

import (
	"math/bits"

	"github.com/katalvlaran/randgen/seed"
	"github.com/katalvlaran/randgen/splitmix"
)

// 128-bit LCG constants: state ← state·mul + inc (mod 2^128).
const (
	mulHi = 0x2360ed051fc65da4
	mulLo = 0x4385df649fccf645
	incHi = 0x5851f42d4c957f2d
	incLo = 0x14057b7ef767814f
)

// dxsmMul is the "cheap multiplier" of the DXSM output permutation.
const dxsmMul = 0xda942042e4dd58b5

// PCG64 is one PCG64 DXSM generator instance holding the 128-bit LCG
// state as two 64-bit words.
//
// Instances are not safe for concurrent use.
type PCG64 struct {
	hi, lo uint64
}

// New returns an instance bootstrapped from the process-wide seed source:
// one atomic read-and-advance yields a 64-bit value expanded into the two
// state words. Instances constructed concurrently never overlap on the
// source.
func New() *PCG64 {
	return NewSeeded(seed.Next(splitmix.SeedStride))
}

// NewSeeded returns an instance whose 128-bit state is the given 64-bit
// seed expanded through the splitmix.Mix64 finalizer. Instances created
// with the same seed generate identical sequences of values.
func NewSeeded(s uint64) *PCG64 {
	return &PCG64{
		hi: splitmix.Mix64(s),
		lo: splitmix.Mix64(s + splitmix.GoldenGamma),
	}
}

// next advances the LCG: state ← state·mul + inc (mod 2^128), returning
// the new state words.
func (p *PCG64) next() (uint64, uint64) {
	hi, lo := bits.Mul64(p.lo, mulLo)
	hi += p.hi*mulLo + p.lo*mulHi
	lo, carry := bits.Add64(lo, incLo, 0)
	hi, _ = bits.Add64(hi, incHi, carry)
	p.hi, p.lo = hi, lo

	return hi, lo
}

// Uint64 returns the next pseudorandom 64-bit value: the DXSM permutation
// of the advanced state.
func (p *PCG64) Uint64() uint64 {
	hi, lo := p.next()

	hi ^= hi >> 32
	hi *= dxsmMul
	hi ^= hi >> 48
	hi *= lo | 1

	return hi
}

// Int64 returns the next pseudorandom 64-bit value.
func (p *PCG64) Int64() int64 {
	return int64(p.Uint64())
}

// Int32 returns the next pseudorandom 32-bit value, taken from the high
// half of the next 64-bit output.
func (p *PCG64) Int32() int32 {
	return int32(p.Uint64() >> 32)
}
