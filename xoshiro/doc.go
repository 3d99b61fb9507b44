// Package xoshiro implements xoshiro256**, Blackman and Vigna's
// all-purpose 256-bit generator with the ** scrambler, translated from
// the public domain reference implementation at
// https://xoshiro.di.unimi.it/xoshiro256starstar.c.
//
// The period is 2^256 − 1 and the generator is 3-dimensionally
// equidistributed. Beyond drawing values it supports:
//
//   - Jump():  advance 2^128 steps, yielding up to 2^128 non-overlapping
//     subsequences for parallel pipelines.
//   - Leap():  advance 2^192 steps (the "long jump"), for coarser
//     partitioning across distributed computations.
//   - Copy():  duplicate the current state; copy-then-jump is the idiom
//     for handing each worker its own subsequence.
//
// Seeding: the 256-bit state must never be everywhere zero, so 64-bit
// seeds are expanded through the splitmix.Mix64 finalizer as recommended
// by the reference implementation. NewFromBytes accepts a 32-byte state
// image directly (shorter inputs are folded through the same finalizer).
//
// Concurrency: one instance is not safe for concurrent use. Partition
// work with Copy and Jump/Leap instead of sharing.
//
// xoshiro256** is not cryptographically secure.
package xoshiro
