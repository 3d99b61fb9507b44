// This file exposes the registration record consumed by the registry.
package pcg

import "github.com/katalvlaran/randgen/rng"

// Algorithm returns the registration record for PCG64 DXSM: a 2^128
// period (I=128, J=0, K=0), 128 bits of state, equidistribution 1, and
// the zero-argument and uint64-seed construction entry points. There is
// no byte-seed entry point; byte-seed requests through a factory fall
// back to unseeded construction.
func Algorithm() rng.Algorithm {
	return rng.Algorithm{
		Descriptor: rng.Descriptor{
			Name:             "PCG64",
			Group:            "PCG",
			I:                128,
			Equidistribution: 1,
		},
		Probe: (*PCG64)(nil),
		Ctors: []any{
			func() rng.Generator { return New() },
			func(s uint64) rng.Generator { return NewSeeded(s) },
		},
	}
}
