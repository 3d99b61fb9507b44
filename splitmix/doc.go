// Package splitmix implements SplitMix64, a high-performance splittable
// pseudorandom number generator designed for parallel use without shared
// mutable state.
//
// The algorithm keeps two 64-bit words: a seed, advanced on every draw,
// and an odd increment ("gamma") fixed for the life of the instance. The
// raw sequence seed, seed+γ, seed+2γ, ... is never returned directly;
// each draw passes the new seed through a fixed avalanching bit-mix
// (Mix64 for 64-bit output, Mix32 for 32-bit output), producing sequences
// with no exploitable linear structure. The period is 2^64.
//
// Splitting:
//
//	child := parent.Split()
//
// derives a child whose seed and gamma are both drawn from the parent's
// sequence (the gamma through the distinct MixGamma function, so increment
// selection does not correlate with output generation). Parent and child
// share no state afterward; with very high probability their combined
// output has the same statistical properties as one instance drawing the
// same quantity of values.
//
// Seeding:
//
//   - NewSeeded(s) is byte-for-byte reproducible: the seed is taken as
//     given and the gamma is the golden-ratio constant.
//   - New() bootstraps from the process-wide seed source (package seed)
//     with one atomic fetch-and-add, so concurrently constructed
//     instances receive mutually independent streams.
//
// Concurrency: one instance is NOT safe for concurrent use; the seed is
// mutated on every draw with no synchronization. Do not share an instance
// across goroutines; give each goroutine its own instance via Split.
//
// SplitMix64 is not cryptographically secure.
package splitmix
