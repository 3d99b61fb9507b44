// Package randgen is your toolbox for pseudorandom number generation in
// parallel programs: a capability-typed catalog of PRNG algorithms and a
// splittable generator built for sharing-free concurrency.
//
// 🚀 What is randgen?
//
//	A small, thread-aware library that brings together:
//		• Core contracts: Generator + the capability hierarchy (split/jump/leap/stream)
//		• A process-wide registry: discover algorithms by name or by required capability
//		• Per-algorithm factories: metadata queries (period, state bits, equidistribution)
//		  and unseeded / 64-bit-seed / byte-seed construction
//		• SplitMix64: the splittable workhorse; give every goroutine its own generator
//		• xoshiro256**: jumpable & leapable subsequence partitioning
//		• PCG64 DXSM: a compact, fast plain generator
//
// ✨ Why choose randgen?
//
//   - Split, don't share – no locks on the hot path, no contended state
//   - Reproducible when you want it – seeded construction is byte-for-byte deterministic
//   - Discoverable – one query surface over every registered algorithm
//   - Extensible – register your own algorithm before first use and it joins the catalog
//
// Everything is organized under six subpackages:
//
//	rng/      — Generator, capability interfaces, Descriptor, Algorithm record
//	registry/ — build-once catalog, capability queries, per-algorithm Factory
//	seed/     — process-wide default seed source (atomic, never-overlapping)
//	splitmix/ — SplitMix64 splittable generator and its bit-mix functions
//	xoshiro/  — xoshiro256** with Jump (2^128) and Leap (2^192)
//	pcg/      — PCG64 DXSM
//
// Quick taste:
//
//	f, err := registry.FactoryOf("SplitMix64", rng.Splittable)
//	if err != nil {
//		log.Fatal(err)
//	}
//	parent := f.NewSeeded(42).(rng.SplittableGenerator)
//	child := parent.Split() // hand child to another goroutine
//
// None of the generators here are cryptographically secure; reach for
// crypto/rand when an adversary is part of your threat model.
//
//	go get github.com/katalvlaran/randgen
package randgen
