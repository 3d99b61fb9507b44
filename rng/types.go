// This file declares the Generator interface, the capability interface
// hierarchy, and the Algorithm registration record.
package rng

import "iter"

// Generator is the minimal surface every pseudorandom algorithm exposes:
// drawing 32- and 64-bit values from its sequence.
//
// A Generator instance owns its state exclusively and mutates it on every
// draw with no internal synchronization. Do not share one instance across
// goroutines; give each goroutine its own instance instead.
type Generator interface {
	// Int32 returns the next pseudorandom 32-bit value.
	Int32() int32

	// Int64 returns the next pseudorandom 64-bit value.
	Int64() int64

	// Uint64 returns the next pseudorandom 64-bit value as an unsigned word.
	Uint64() uint64
}

// StreamableGenerator is a Generator that can manufacture a lazy stream of
// new generator instances, each intended for a separate task or goroutine.
//
// The returned sequence is effectively unbounded; the caller bounds it by
// breaking out of the range loop. Producing elements advances the state of
// the receiver, so the stream is subject to the same single-goroutine
// discipline as every other instance operation.
type StreamableGenerator interface {
	Generator

	// Rngs yields a lazy, effectively unbounded sequence of new generators.
	Rngs() iter.Seq[Generator]
}

// SplittableGenerator is a StreamableGenerator that can split off a child
// generator sharing no mutable state with its parent. After Split returns,
// parent and child advance independently: drawing from one never affects
// what the other will produce.
type SplittableGenerator interface {
	StreamableGenerator

	// Split returns a new generator that shares no mutable state with the
	// receiver. The receiver's own state advances as part of the split.
	Split() SplittableGenerator

	// SplitFrom returns a new generator whose initial state is drawn from
	// src instead of from the receiver. The receiver is left untouched.
	SplitFrom(src SplittableGenerator) SplittableGenerator
}

// JumpableGenerator is a StreamableGenerator that can jump forward a fixed,
// very large distance in its own sequence, partitioning the period into
// non-overlapping subsequences.
type JumpableGenerator interface {
	StreamableGenerator

	// Jump advances the receiver a fixed large distance in its sequence.
	Jump()

	// Copy returns a new generator with state identical to the receiver's.
	// The two instances subsequently advance independently.
	Copy() JumpableGenerator
}

// LeapableGenerator is a JumpableGenerator that additionally supports a
// much larger fixed jump ("leap"), partitioning the period coarser than
// Jump does.
type LeapableGenerator interface {
	JumpableGenerator

	// Leap advances the receiver a fixed, very large distance in its
	// sequence, far larger than Jump's.
	Leap()
}

// ArbitrarilyJumpableGenerator is a LeapableGenerator that can jump ahead
// by any caller-chosen power-of-two distance.
type ArbitrarilyJumpableGenerator interface {
	LeapableGenerator

	// JumpPowerOfTwo advances the receiver 2^exp steps in its sequence.
	JumpPowerOfTwo(exp int)
}

// Algorithm is the registration record one concrete algorithm hands to the
// registry: its static metadata, a probe value for capability
// classification, and its construction entry points.
type Algorithm struct {
	// Descriptor holds the algorithm's static statistical metadata.
	Descriptor Descriptor

	// Probe is a typed zero value of the algorithm's concrete generator
	// type (for example (*SplitMix64)(nil)). It exists solely so the
	// registry can classify capabilities by interface satisfaction; it is
	// never drawn from.
	Probe Generator

	// Ctors lists the algorithm's construction entry points. The factory
	// classifies each entry by parameter kind into the zero-argument,
	// uint64-seed, and byte-seed slots; recognized shapes are
	//
	//	func() Generator
	//	func(seed uint64) Generator
	//	func(seed []byte) Generator
	//
	// Entries of any other shape are ignored. A zero-argument entry is
	// mandatory for a well-formed registration.
	Ctors []any
}
