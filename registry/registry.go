// This file implements the build-once catalog: the builtin algorithm
// table, external registration, name lookup, and the capability query.
package registry

import (
	"fmt"
	"iter"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/randgen/pcg"
	"github.com/katalvlaran/randgen/rng"
	"github.com/katalvlaran/randgen/splitmix"
	"github.com/katalvlaran/randgen/xoshiro"
)

var (
	// regMu serializes Register against the one-time catalog build.
	regMu sync.Mutex

	// pending collects external registrations made before the build.
	pending []rng.Algorithm

	// buildOnce guards the catalog build; concurrent first-callers all
	// observe the single fully-built catalog.
	buildOnce sync.Once

	// built flips under regMu inside the build; Register checks it to
	// reject late registrations.
	built atomic.Bool

	// catalog and sortedNames are written once inside buildOnce and
	// read-only afterward.
	catalog     map[string]*Factory
	sortedNames []string
)

// builtins is the compile-time table of algorithms shipped with randgen.
func builtins() []rng.Algorithm {
	return []rng.Algorithm{
		splitmix.Algorithm(),
		xoshiro.Algorithm(),
		pcg.Algorithm(),
	}
}

// Register adds an external algorithm to the catalog. It must be called
// before the first lookup or query; once the catalog is built it is
// frozen and Register returns ErrRegistryFrozen.
//
// The record must be concrete: a non-empty name and a non-nil probe
// (ErrNotConcrete otherwise). Names must be unique across builtins and
// prior registrations (ErrDuplicateAlgorithm).
func Register(alg rng.Algorithm) error {
	regMu.Lock()
	defer regMu.Unlock()

	if built.Load() {
		return ErrRegistryFrozen
	}
	if !concrete(alg) {
		return ErrNotConcrete
	}
	for _, existing := range builtins() {
		if existing.Descriptor.Name == alg.Descriptor.Name {
			return fmt.Errorf("%w: %q", ErrDuplicateAlgorithm, alg.Descriptor.Name)
		}
	}
	for _, existing := range pending {
		if existing.Descriptor.Name == alg.Descriptor.Name {
			return fmt.Errorf("%w: %q", ErrDuplicateAlgorithm, alg.Descriptor.Name)
		}
	}

	pending = append(pending, alg)

	return nil
}

// FactoryOf returns the factory for the named algorithm, verifying that
// it satisfies every requested capability.
//
// Returns ErrUnknownAlgorithm if no algorithm is registered under name,
// and ErrCapabilityMismatch if the algorithm exists but its capability
// set is not a superset of the requested tags.
func FactoryOf(name string, caps ...rng.Capability) (*Factory, error) {
	f, ok := snapshot()[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	want := rng.NewCapabilitySet(caps...)
	if !f.caps.HasAll(want) {
		return nil, fmt.Errorf("%w: %q does not provide %s", ErrCapabilityMismatch, name, want)
	}

	return f, nil
}

// All returns a lazy, restartable, finite sequence of the factories whose
// capability set is a superset of the requested tags, in ascending name
// order. The sequence reflects the one-time catalog snapshot, never live
// updates.
func All(caps ...rng.Capability) iter.Seq[*Factory] {
	cat := snapshot()
	order := sortedNames
	want := rng.NewCapabilitySet(caps...)

	return func(yield func(*Factory) bool) {
		for _, name := range order {
			f := cat[name]
			if f.caps.HasAll(want) && !yield(f) {
				return
			}
		}
	}
}

// snapshot returns the catalog, building it on first use.
func snapshot() map[string]*Factory {
	buildOnce.Do(build)

	return catalog
}

// build populates the catalog from the builtin table plus pending
// registrations, skipping any record that is not a concrete algorithm,
// and freezes registration.
func build() {
	regMu.Lock()
	defer regMu.Unlock()

	cat := make(map[string]*Factory, len(pending)+3)
	for _, alg := range append(builtins(), pending...) {
		if !concrete(alg) {
			continue
		}
		cat[alg.Descriptor.Name] = newFactory(alg)
	}

	names := make([]string, 0, len(cat))
	for name := range cat {
		names = append(names, name)
	}
	sort.Strings(names)

	catalog = cat
	sortedNames = names
	built.Store(true)
}

// concrete reports whether a registration record describes a concrete
// algorithm rather than an abstract capability marker.
func concrete(alg rng.Algorithm) bool {
	return alg.Descriptor.Name != "" && alg.Probe != nil
}
