// This file implements the jump and leap operations and the copy-and-jump
// generator stream.
package xoshiro

import (
	"iter"

	"github.com/katalvlaran/randgen/rng"
)

// jumpTable encodes the polynomial for Jump: equivalent to 2^128 calls of
// Uint64. From the reference implementation.
var jumpTable = [stateWords]uint64{
	0x180ec6d33cfd0aba, 0xd5a61266f0c9392c, 0xa9582618e03fc9aa, 0x39abdc4529b1661c,
}

// leapTable encodes the polynomial for Leap (the reference "long jump"):
// equivalent to 2^192 calls of Uint64.
var leapTable = [stateWords]uint64{
	0x76e15d3efefdcbbf, 0xc5004e441c522fb3, 0x77710069854ee241, 0x39109bb02acbe635,
}

// Jump advances the receiver 2^128 steps in its sequence. Repeated jumps
// partition the period into up to 2^128 non-overlapping subsequences.
func (x *Xoshiro256) Jump() {
	x.jumpBy(jumpTable)
}

// Leap advances the receiver 2^192 steps in its sequence, a far coarser
// partition than Jump.
func (x *Xoshiro256) Leap() {
	x.jumpBy(leapTable)
}

// jumpBy applies a jump polynomial: for every set bit of the polynomial it
// accumulates the current state, stepping the engine once per bit.
func (x *Xoshiro256) jumpBy(table [stateWords]uint64) {
	var s [stateWords]uint64
	for _, word := range table {
		for b := 0; b < 64; b++ {
			if word&(1<<uint(b)) != 0 {
				for i := range s {
					s[i] ^= x.s[i]
				}
			}
			x.Uint64()
		}
	}

	x.s = s
}

// Copy returns a new instance with state identical to the receiver's. The
// two instances subsequently advance independently.
func (x *Xoshiro256) Copy() rng.JumpableGenerator {
	clone := *x

	return &clone
}

// Rngs yields a lazy, effectively unbounded sequence of new generators:
// each element is a copy of the receiver's current state, after which the
// receiver jumps 2^128 steps. Elements therefore draw from pairwise
// non-overlapping subsequences.
func (x *Xoshiro256) Rngs() iter.Seq[rng.Generator] {
	return func(yield func(rng.Generator) bool) {
		for {
			out := x.Copy()
			x.Jump()
			if !yield(out) {
				return
			}
		}
	}
}
