// This file implements the capability tags and the structural classifier
// mapping a concrete generator type to the set of tags it satisfies.
package rng

import "strings"

// Capability tags a structural ability of a generator algorithm.
type Capability uint8

// Capability tags. An algorithm carries a tag exactly when its concrete
// type satisfies the corresponding interface from this package.
const (
	// Splittable marks algorithms satisfying SplittableGenerator.
	Splittable Capability = 1 << iota

	// Jumpable marks algorithms satisfying JumpableGenerator.
	Jumpable

	// Leapable marks algorithms satisfying LeapableGenerator.
	Leapable

	// ArbitrarilyJumpable marks algorithms satisfying ArbitrarilyJumpableGenerator.
	ArbitrarilyJumpable

	// Streamable marks algorithms satisfying StreamableGenerator.
	Streamable
)

// capabilityNames maps each tag to its display name, in declaration order.
var capabilityNames = []struct {
	cap  Capability
	name string
}{
	{Splittable, "Splittable"},
	{Jumpable, "Jumpable"},
	{Leapable, "Leapable"},
	{ArbitrarilyJumpable, "ArbitrarilyJumpable"},
	{Streamable, "Streamable"},
}

// String returns the display name of a single capability tag.
func (c Capability) String() string {
	for _, entry := range capabilityNames {
		if entry.cap == c {
			return entry.name
		}
	}

	return "Unknown"
}

// CapabilitySet is an immutable set of capability tags.
type CapabilitySet uint8

// NewCapabilitySet builds a set from individual tags.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	var set CapabilitySet
	for _, c := range caps {
		set |= CapabilitySet(c)
	}

	return set
}

// Has reports whether the set contains the given tag.
func (s CapabilitySet) Has(c Capability) bool {
	return s&CapabilitySet(c) != 0
}

// HasAll reports whether the set is a superset of want.
func (s CapabilitySet) HasAll(want CapabilitySet) bool {
	return s&want == want
}

// String returns the contained tags in declaration order, comma-separated,
// or "None" for the empty set.
func (s CapabilitySet) String() string {
	if s == 0 {
		return "None"
	}

	var names []string
	for _, entry := range capabilityNames {
		if s.Has(entry.cap) {
			names = append(names, entry.name)
		}
	}

	return strings.Join(names, ",")
}

// CapabilitiesOf classifies a generator by which capability interfaces its
// concrete type satisfies. The probe is only type-asserted, never drawn
// from, so a typed nil pointer is a valid argument. A nil interface
// classifies as the empty set.
//
// The classification is purely structural: it inspects the type, not the
// Descriptor, so an algorithm cannot claim a capability its implementation
// does not expose.
func CapabilitiesOf(probe Generator) CapabilitySet {
	if probe == nil {
		return 0
	}

	var set CapabilitySet
	if _, ok := probe.(StreamableGenerator); ok {
		set |= CapabilitySet(Streamable)
	}
	if _, ok := probe.(SplittableGenerator); ok {
		set |= CapabilitySet(Splittable)
	}
	if _, ok := probe.(JumpableGenerator); ok {
		set |= CapabilitySet(Jumpable)
	}
	if _, ok := probe.(LeapableGenerator); ok {
		set |= CapabilitySet(Leapable)
	}
	if _, ok := probe.(ArbitrarilyJumpableGenerator); ok {
		set |= CapabilitySet(ArbitrarilyJumpable)
	}

	return set
}
