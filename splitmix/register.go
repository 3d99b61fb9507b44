// This file exposes the registration record consumed by the registry.
package splitmix

import "github.com/katalvlaran/randgen/rng"

// Algorithm returns the registration record for SplitMix64: a 2^64 period
// (I=64, J=0, K=0), 64 bits of state, equidistribution 1, and the
// zero-argument and uint64-seed construction entry points. There is no
// byte-seed entry point; byte-seed requests through a factory fall back
// to unseeded construction.
func Algorithm() rng.Algorithm {
	return rng.Algorithm{
		Descriptor: rng.Descriptor{
			Name:             "SplitMix64",
			Group:            "Splittable",
			I:                64,
			Equidistribution: 1,
		},
		Probe: (*SplitMix64)(nil),
		Ctors: []any{
			func() rng.Generator { return New() },
			func(s uint64) rng.Generator { return NewSeeded(s) },
		},
	}
}
