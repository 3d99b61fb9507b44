// This file implements the per-algorithm Factory: cached metadata
// accessors, resolve-once constructor classification, and instantiation.
package registry

import (
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/randgen/rng"
)

// Factory is the per-algorithm handle obtained from the catalog. It
// caches the algorithm's descriptor and capability set, and resolves the
// construction strategies exactly once, on first instantiation.
//
// A Factory may be cached by callers and shared across goroutines without
// limit: the one-time constructor resolution is serialized internally and
// all reads after resolution are lock-free.
type Factory struct {
	alg  rng.Algorithm
	caps rng.CapabilitySet

	// resolved publishes the constructor slots below: once it loads true,
	// the slots are immutable and readable without the mutex.
	resolved atomic.Bool
	mu       sync.Mutex

	ctorZero  func() rng.Generator
	ctorSeed  func(uint64) rng.Generator
	ctorBytes func([]byte) rng.Generator
}

// newFactory wraps one concrete algorithm record, classifying its
// capabilities once. Constructors are resolved lazily on first use.
func newFactory(alg rng.Algorithm) *Factory {
	return &Factory{
		alg:  alg,
		caps: rng.CapabilitiesOf(alg.Probe),
	}
}

// Name returns the algorithm name used for catalog lookup.
func (f *Factory) Name() string { return f.alg.Descriptor.Name }

// Group returns the algorithm's family name.
func (f *Factory) Group() string { return f.alg.Descriptor.Group }

// StateBits returns the number of bits of seed state the algorithm
// maintains, or rng.MaxStateBits for effectively unbounded periods.
func (f *Factory) StateBits() int { return f.alg.Descriptor.StateBits() }

// Equidistribution returns the algorithm's equidistribution.
func (f *Factory) Equidistribution() int { return f.alg.Descriptor.Equidistribution }

// Period returns the algorithm's period as an arbitrary-precision
// integer; see rng.Descriptor.Period for the formula and sentinel.
func (f *Factory) Period() *big.Int { return f.alg.Descriptor.Period() }

// IsStatistical reports whether output is a deterministic function of
// state (the negation of IsStochastic).
func (f *Factory) IsStatistical() bool { return !f.alg.Descriptor.Stochastic }

// IsStochastic reports whether output includes nondeterministic input.
func (f *Factory) IsStochastic() bool { return f.alg.Descriptor.Stochastic }

// IsHardware reports whether the algorithm is backed by a hardware
// entropy device.
func (f *Factory) IsHardware() bool { return f.alg.Descriptor.Hardware }

// IsSplittable reports whether instances satisfy rng.SplittableGenerator.
func (f *Factory) IsSplittable() bool { return f.caps.Has(rng.Splittable) }

// IsJumpable reports whether instances satisfy rng.JumpableGenerator.
func (f *Factory) IsJumpable() bool { return f.caps.Has(rng.Jumpable) }

// IsLeapable reports whether instances satisfy rng.LeapableGenerator.
func (f *Factory) IsLeapable() bool { return f.caps.Has(rng.Leapable) }

// IsArbitrarilyJumpable reports whether instances satisfy
// rng.ArbitrarilyJumpableGenerator.
func (f *Factory) IsArbitrarilyJumpable() bool { return f.caps.Has(rng.ArbitrarilyJumpable) }

// IsStreamable reports whether instances satisfy rng.StreamableGenerator.
func (f *Factory) IsStreamable() bool { return f.caps.Has(rng.Streamable) }

// Capabilities returns the algorithm's full capability set.
func (f *Factory) Capabilities() rng.CapabilitySet { return f.caps }

// New constructs an unseeded instance via the algorithm's zero-argument
// strategy.
//
// A registered algorithm without a zero-argument strategy is malformed;
// New panics on it. This is a registration defect, not a caller mistake,
// and cannot occur for the builtin algorithms.
func (f *Factory) New() rng.Generator {
	f.ensureConstructors()

	return f.ctorZero()
}

// NewSeeded constructs an instance from a 64-bit seed via the algorithm's
// seed strategy.
//
// If the algorithm has no 64-bit-seed strategy, NewSeeded SILENTLY falls
// back to New and the seed is ignored. No error is reported; callers that
// must know whether the seed was honored should use the algorithm
// package's own typed constructor.
func (f *Factory) NewSeeded(s uint64) rng.Generator {
	f.ensureConstructors()

	if f.ctorSeed == nil {
		return f.ctorZero()
	}

	return f.ctorSeed(s)
}

// NewFromBytes constructs an instance from a byte-sequence seed via the
// algorithm's byte-seed strategy. A nil seed is rejected with
// ErrNilByteSeed.
//
// If the algorithm has no byte-seed strategy, NewFromBytes SILENTLY falls
// back to New and the seed is ignored, with no error reported, the same
// trade-off as NewSeeded.
func (f *Factory) NewFromBytes(seedBytes []byte) (rng.Generator, error) {
	if seedBytes == nil {
		return nil, ErrNilByteSeed
	}

	f.ensureConstructors()

	if f.ctorBytes == nil {
		return f.ctorZero(), nil
	}

	return f.ctorBytes(seedBytes), nil
}

// ensureConstructors resolves the construction strategies exactly once:
// it classifies each of the algorithm's construction entry points by
// parameter kind into the zero-argument, uint64-seed, and byte-seed
// slots, then publishes the slots through the resolved flag.
//
// Safe under concurrent first use: racing goroutines serialize on the
// mutex, the discovery work runs at most once, and every later call reads
// the published slots without locking.
func (f *Factory) ensureConstructors() {
	if f.resolved.Load() {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.resolved.Load() {
		return
	}

	var (
		ctorZero  func() rng.Generator
		ctorSeed  func(uint64) rng.Generator
		ctorBytes func([]byte) rng.Generator
	)
	for _, entry := range f.alg.Ctors {
		switch ctor := entry.(type) {
		case func() rng.Generator:
			ctorZero = ctor
		case func(uint64) rng.Generator:
			ctorSeed = ctor
		case func([]byte) rng.Generator:
			ctorBytes = ctor
		}
	}

	if ctorZero == nil {
		panic(fmt.Sprintf("registry: algorithm %q is missing a zero-argument constructor", f.Name()))
	}

	// Fill the optional slots first; the resolved flag publishes them all.
	f.ctorBytes = ctorBytes
	f.ctorSeed = ctorSeed
	f.ctorZero = ctorZero
	f.resolved.Store(true)
}
