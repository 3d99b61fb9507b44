// Package registry_test verifies name lookup, capability queries, and the
// frozen-catalog registration window.
package registry_test

import (
	"testing"

	"github.com/katalvlaran/randgen/registry"
	"github.com/katalvlaran/randgen/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Lookup by name.
// ------------------------------------------------------------------------

func TestFactoryOf_UnknownName(t *testing.T) {
	f, err := registry.FactoryOf("NoSuchAlgorithm")
	assert.Nil(t, f)
	assert.ErrorIs(t, err, registry.ErrUnknownAlgorithm)
}

func TestFactoryOf_CaseSensitive(t *testing.T) {
	_, err := registry.FactoryOf("splitmix64")
	assert.ErrorIs(t, err, registry.ErrUnknownAlgorithm)
}

func TestFactoryOf_CapabilityMismatch(t *testing.T) {
	// PCG64 exists but cannot split.
	f, err := registry.FactoryOf("PCG64", rng.Splittable)
	assert.Nil(t, f)
	assert.ErrorIs(t, err, registry.ErrCapabilityMismatch)

	// SplitMix64 splits but cannot jump.
	_, err = registry.FactoryOf("SplitMix64", rng.Splittable, rng.Jumpable)
	assert.ErrorIs(t, err, registry.ErrCapabilityMismatch)
}

func TestFactoryOf_SameHandleForSameName(t *testing.T) {
	// Factories come from the one-time snapshot: repeated lookups return
	// the same handle, so resolved constructors are shared.
	a, err := registry.FactoryOf("SplitMix64")
	require.NoError(t, err)
	b, err := registry.FactoryOf("SplitMix64")
	require.NoError(t, err)

	assert.Same(t, a, b)
}

// ------------------------------------------------------------------------
// 2. Capability queries.
// ------------------------------------------------------------------------

func TestAll_UnfilteredSortedByName(t *testing.T) {
	var names []string
	for f := range registry.All() {
		names = append(names, f.Name())
	}

	// Builtins plus the two algorithms registered by this package's tests.
	assert.Equal(t,
		[]string{"PCG64", "SeededOnly64", "SplitMix64", "Stepper64", "Xoshiro256StarStar"},
		names)
}

func TestAll_FilterSplittable(t *testing.T) {
	var names []string
	for f := range registry.All(rng.Splittable) {
		names = append(names, f.Name())
	}

	assert.Equal(t, []string{"SplitMix64"}, names)
}

func TestAll_FilterJumpable(t *testing.T) {
	var names []string
	for f := range registry.All(rng.Jumpable, rng.Leapable) {
		names = append(names, f.Name())
	}

	assert.Equal(t, []string{"Xoshiro256StarStar"}, names)
}

func TestAll_FilterUnsatisfiable(t *testing.T) {
	count := 0
	for range registry.All(rng.ArbitrarilyJumpable) {
		count++
	}

	assert.Zero(t, count)
}

func TestAll_RestartableAndInterruptible(t *testing.T) {
	seq := registry.All()

	// Early break must not poison later iterations.
	for range seq {
		break
	}

	first := make([]string, 0, 8)
	for f := range seq {
		first = append(first, f.Name())
	}
	second := make([]string, 0, 8)
	for f := range seq {
		second = append(second, f.Name())
	}

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

// ------------------------------------------------------------------------
// 3. Frozen catalog.
// ------------------------------------------------------------------------

func TestRegister_AfterBuildIsFrozen(t *testing.T) {
	// Earlier tests performed lookups, so the catalog is built by now.
	alg := stepperAlgorithm()
	alg.Descriptor.Name = "Latecomer64"

	assert.ErrorIs(t, registry.Register(alg), registry.ErrRegistryFrozen)
}
