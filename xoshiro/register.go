// This file exposes the registration record consumed by the registry.
package xoshiro

import "github.com/katalvlaran/randgen/rng"

// Algorithm returns the registration record for xoshiro256**: a 2^256 − 1
// period (I=256, J=1, K=0), 256 bits of state, equidistribution 3, and
// all three construction entry points (zero-argument, uint64 seed, byte
// seed).
func Algorithm() rng.Algorithm {
	return rng.Algorithm{
		Descriptor: rng.Descriptor{
			Name:             "Xoshiro256StarStar",
			Group:            "Xoshiro",
			I:                256,
			J:                1,
			Equidistribution: 3,
		},
		Probe: (*Xoshiro256)(nil),
		Ctors: []any{
			func() rng.Generator { return New() },
			func(s uint64) rng.Generator { return NewSeeded(s) },
			func(b []byte) rng.Generator { return NewFromBytes(b) },
		},
	}
}
