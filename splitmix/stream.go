// This file implements the lazy generator streams produced by splitting.
package splitmix

import (
	"iter"

	"github.com/katalvlaran/randgen/rng"
)

// Rngs yields a lazy, effectively unbounded sequence of new generators,
// each split off the receiver. Producing an element advances the
// receiver's state by two steps; the caller bounds the sequence by
// breaking out of the range loop.
func (g *SplitMix64) Rngs() iter.Seq[rng.Generator] {
	return func(yield func(rng.Generator) bool) {
		for yield(g.Split()) {
		}
	}
}

// Splits is the typed variant of Rngs: it yields SplittableGenerator
// children, so consumers can split the elements further without type
// assertions.
func (g *SplitMix64) Splits() iter.Seq[rng.SplittableGenerator] {
	return func(yield func(rng.SplittableGenerator) bool) {
		for yield(g.Split()) {
		}
	}
}
