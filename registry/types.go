// This file declares the sentinel errors of the registry layer.
package registry

import "errors"

// Sentinel errors for catalog lookup, registration, and construction.
var (
	// ErrUnknownAlgorithm indicates that no algorithm is registered under
	// the requested name. Lookup is exact-string and case-sensitive.
	ErrUnknownAlgorithm = errors.New("registry: unknown random number generator algorithm")

	// ErrCapabilityMismatch indicates that the requested algorithm exists
	// but does not satisfy every requested capability.
	ErrCapabilityMismatch = errors.New("registry: algorithm does not satisfy the requested capabilities")

	// ErrNilByteSeed indicates that NewFromBytes was called with a nil seed.
	ErrNilByteSeed = errors.New("registry: byte seed is nil")

	// ErrRegistryFrozen indicates a Register call after the catalog was
	// already built; the catalog is a one-time snapshot.
	ErrRegistryFrozen = errors.New("registry: catalog already built, registration window closed")

	// ErrDuplicateAlgorithm indicates a Register call reusing the name of
	// an already-registered algorithm.
	ErrDuplicateAlgorithm = errors.New("registry: algorithm name already registered")

	// ErrNotConcrete indicates a Register call whose record lacks a name
	// or a probe value, so it cannot describe a concrete algorithm.
	ErrNotConcrete = errors.New("registry: registration record is not a concrete algorithm")
)
