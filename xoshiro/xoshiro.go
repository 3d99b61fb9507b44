// This file implements the xoshiro256** engine, seeding, and draws.
package xoshiro

import (
	"encoding/binary"
	"math/bits"

	"github.com/katalvlaran/randgen/seed"
	"github.com/katalvlaran/randgen/splitmix"
)

// stateWords and stateBytes size the xoshiro256 state: four 64-bit words.
const (
	stateWords = 4
	stateBytes = 8 * stateWords
)

// Xoshiro256 is one xoshiro256** generator instance.
//
// Instances are not safe for concurrent use.
type Xoshiro256 struct {
	s [stateWords]uint64
}

// New returns an instance bootstrapped from the process-wide seed source:
// one atomic read-and-advance yields a 64-bit value that is expanded into
// the 256-bit state. Instances constructed concurrently never overlap on
// the source.
func New() *Xoshiro256 {
	return NewSeeded(seed.Next(splitmix.SeedStride))
}

// NewSeeded returns an instance whose state is the given 64-bit seed
// expanded through the splitmix.Mix64 finalizer, per the reference
// implementation's seeding recommendation. Instances created with the
// same seed generate identical sequences of values.
func NewSeeded(s uint64) *Xoshiro256 {
	var x Xoshiro256
	for i := range x.s {
		s += splitmix.GoldenGamma
		x.s[i] = splitmix.Mix64(s)
	}
	x.repairZeroState()

	return &x
}

// NewFromBytes returns an instance seeded from a byte slice. Inputs of 32
// bytes or more are read directly as the four little-endian state words;
// shorter inputs are folded through the splitmix.Mix64 finalizer and then
// expanded as in NewSeeded.
func NewFromBytes(seedBytes []byte) *Xoshiro256 {
	if len(seedBytes) < stateBytes {
		var acc uint64
		for _, b := range seedBytes {
			acc = splitmix.Mix64(acc + splitmix.GoldenGamma + uint64(b))
		}

		return NewSeeded(acc)
	}

	var x Xoshiro256
	for i := range x.s {
		x.s[i] = binary.LittleEndian.Uint64(seedBytes[8*i:])
	}
	x.repairZeroState()

	return &x
}

// repairZeroState nudges the all-zero state, which is the engine's sole
// fixed point, onto a valid orbit.
func (x *Xoshiro256) repairZeroState() {
	if x.s == [stateWords]uint64{} {
		x.s[0] = splitmix.GoldenGamma
	}
}

// Uint64 returns the next pseudorandom 64-bit value: the ** scrambler
// over state word 1, followed by the linear engine update.
func (x *Xoshiro256) Uint64() uint64 {
	result := bits.RotateLeft64(x.s[1]*5, 7) * 9

	t := x.s[1] << 17

	x.s[2] ^= x.s[0]
	x.s[3] ^= x.s[1]
	x.s[1] ^= x.s[2]
	x.s[0] ^= x.s[3]

	x.s[2] ^= t

	x.s[3] = bits.RotateLeft64(x.s[3], 45)

	return result
}

// Int64 returns the next pseudorandom 64-bit value.
func (x *Xoshiro256) Int64() int64 {
	return int64(x.Uint64())
}

// Int32 returns the next pseudorandom 32-bit value, taken from the high
// half of the next 64-bit output.
func (x *Xoshiro256) Int32() int32 {
	return int32(x.Uint64() >> 32)
}
