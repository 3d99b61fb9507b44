// This file implements the SplitMix64 state, the bit-mix functions, and
// the draw and split operations.
package splitmix

import (
	"math/bits"

	"github.com/katalvlaran/randgen/rng"
	"github.com/katalvlaran/randgen/seed"
)

// GoldenGamma is the golden ratio scaled to 64 bits: the gamma of every
// seeded (unsplit) instance and the basis of the default seed stride.
const GoldenGamma = 0x9e3779b97f4a7c15

// SeedStride is the amount a default construction advances the shared
// seed source: two gammas, wrapped to 64 bits.
const SeedStride = (2 * GoldenGamma) & (1<<64 - 1)

// minGammaTransitions is the minimum number of 0↔1 bit transitions MixGamma
// requires of a candidate gamma before repairing it.
const minGammaTransitions = 24

// gammaRepairMask is XORed into a candidate gamma with too few bit
// transitions; the alternating pattern guarantees a well-mixed result.
const gammaRepairMask = 0xaaaaaaaaaaaaaaaa

// SplitMix64 is one splittable generator instance: a seed advanced on
// every draw and an odd increment fixed at construction.
//
// Instances are not safe for concurrent use; split, don't share.
type SplitMix64 struct {
	// seed is updated only via nextSeed.
	seed uint64

	// gamma is the step value, always odd, fixed for the instance's life.
	gamma uint64
}

// New returns an instance bootstrapped from the process-wide seed source.
// It emulates splitting off a shared default generator: one atomic
// read-and-advance of the source yields two raw values (s and
// s+GoldenGamma), mixed into the new instance's seed and gamma. Instances
// constructed concurrently from many goroutines never overlap on the
// source.
func New() *SplitMix64 {
	s := seed.Next(SeedStride)

	return &SplitMix64{seed: Mix64(s), gamma: MixGamma(s + GoldenGamma)}
}

// NewSeeded returns an instance with the given seed and the golden-ratio
// gamma. Instances created with the same seed generate identical
// sequences of values.
func NewSeeded(s uint64) *SplitMix64 {
	return &SplitMix64{seed: s, gamma: GoldenGamma}
}

// Mix64 is David Stafford's variant-13 64-bit finalizer, the avalanche
// applied to raw sequence values for 64-bit output. Same input, same
// output; flipping one input bit flips about half the output bits.
func Mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return z ^ (z >> 31)
}

// Mix32 returns the 32 high bits of David Stafford's variant-4 finalizer,
// a cheaper avalanche for 32-bit output than truncating Mix64.
func Mix32(z uint64) int32 {
	z = (z ^ (z >> 33)) * 0x62a9d9ed799705f5

	return int32(uint32(((z ^ (z >> 28)) * 0xcb24d0a5c88c35b3) >> 32))
}

// MixGamma derives the odd increment for a new split instance from a raw
// sequence value. It uses the MurmurHash3 fmix64 constants (distinct from
// Mix64's, so increment selection does not correlate with output
// generation), forces the result odd, and requires at least
// minGammaTransitions 0↔1 bit transitions, repairing (never rejecting)
// candidates that fall short by flipping alternate bits. Always
// terminates in one pass and always returns an odd value.
func MixGamma(z uint64) uint64 {
	z = (z ^ (z >> 33)) * 0xff51afd7ed558ccd // MurmurHash3 fmix64 constants
	z = (z ^ (z >> 33)) * 0xc4ceb9fe1a85ec53
	z = (z ^ (z >> 33)) | 1 // force odd

	if bits.OnesCount64(z^(z>>1)) < minGammaTransitions {
		z ^= gammaRepairMask
	}

	return z
}

// nextSeed advances the raw sequence: seed ← seed + gamma (mod 2^64).
// This is the only mutator of the seed.
func (g *SplitMix64) nextSeed() uint64 {
	g.seed += g.gamma

	return g.seed
}

// Uint64 returns the next pseudorandom 64-bit value.
func (g *SplitMix64) Uint64() uint64 {
	return Mix64(g.nextSeed())
}

// Int64 returns the next pseudorandom 64-bit value.
func (g *SplitMix64) Int64() int64 {
	return int64(Mix64(g.nextSeed()))
}

// Int32 returns the next pseudorandom 32-bit value.
func (g *SplitMix64) Int32() int32 {
	return Mix32(g.nextSeed())
}

// Split returns a new instance that shares no mutable state with the
// receiver. The child's seed is the receiver's next 64-bit output and its
// gamma is MixGamma of the receiver's next raw sequence value; the
// receiver's state advances by two steps. Parent and child subsequently
// produce independent sequences, and either may be split further.
func (g *SplitMix64) Split() rng.SplittableGenerator {
	childSeed := Mix64(g.nextSeed())

	return &SplitMix64{seed: childSeed, gamma: MixGamma(g.nextSeed())}
}

// SplitFrom returns a new instance whose seed and gamma are derived from
// two 64-bit values drawn from src. The receiver's own state is left
// untouched.
func (g *SplitMix64) SplitFrom(src rng.SplittableGenerator) rng.SplittableGenerator {
	childSeed := src.Uint64()

	return &SplitMix64{seed: childSeed, gamma: MixGamma(src.Uint64())}
}
