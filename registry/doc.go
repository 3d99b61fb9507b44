// Package registry is the process-wide catalog of random number generator
// algorithms and the per-algorithm factory for constructing instances and
// querying their statistical properties.
//
// The catalog is populated from a compile-time table of the built-in
// algorithms (SplitMix64, Xoshiro256StarStar, PCG64) plus any external
// algorithms passed to Register, and is built exactly once, lazily, on
// first lookup. Concurrent first-callers observe a single fully-built
// catalog, never a partial view. Once built, the catalog is frozen:
// queries reflect that one snapshot, and later Register calls fail with
// ErrRegistryFrozen.
//
// Lookup and query:
//
//	f, err := registry.FactoryOf("SplitMix64", rng.Splittable)
//	for f := range registry.All(rng.Jumpable) { ... }
//
// FactoryOf is exact-string, case-sensitive on the algorithm name. All
// returns a lazy, restartable, finite sequence over a snapshot of the
// catalog, in ascending name order, containing exactly the factories
// whose capability set is a superset of the requested tags.
//
// Construction:
//
//	g := f.New()                    // unseeded
//	g := f.NewSeeded(42)            // 64-bit seed
//	g, err := f.NewFromBytes(b)     // byte-sequence seed
//
// When an algorithm does not support the requested seed kind, NewSeeded
// and NewFromBytes SILENTLY FALL BACK to unseeded construction: the seed
// is ignored and no error is reported. This is a deliberate usability
// trade-off inherited from the construction contract; callers that must
// know whether their seed was honored should consult the algorithm's own
// package, whose typed constructors never fall back.
//
// Errors:
//
//	ErrUnknownAlgorithm   - no algorithm registered under the given name.
//	ErrCapabilityMismatch - the algorithm exists but lacks a requested capability.
//	ErrNilByteSeed        - NewFromBytes called with a nil seed.
//	ErrRegistryFrozen     - Register called after the catalog was built.
//	ErrDuplicateAlgorithm - Register called with an already-taken name.
//	ErrNotConcrete        - Register called with a record lacking a name or probe.
//
// A registered algorithm without a zero-argument construction entry point
// is a defect in that algorithm's registration, not a caller mistake;
// factory construction panics on it rather than returning an error.
//
// Thread-safety: the catalog build and each factory's one-time
// constructor resolution are serialized internally; after resolution a
// factory may be shared and used concurrently without limit. Generator
// instances produced by a factory are NOT safe for concurrent use.
package registry
