// Package pcg implements PCG64 DXSM, Melissa O'Neill's permuted
// congruential generator with a 128-bit linear congruential engine and
// the DXSM ("double xorshift multiply") output permutation.
//
// The period is 2^128 and the state is 128 bits held as two 64-bit words.
// PCG64 exposes only the plain draw surface (no split, jump, or stream
// operations), which makes it the minimal-capability citizen of the
// randgen catalog: capability-filtered registry queries exclude it.
//
// Concurrency: one instance is not safe for concurrent use; construct one
// instance per goroutine instead.
//
// PCG64 is not cryptographically secure.
package pcg
