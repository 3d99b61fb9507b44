// This file declares the Descriptor metadata record and its derived
// period and state-size accessors.
package rng

import (
	"math"
	"math/big"
)

// MaxStateBits is the sentinel returned by Descriptor.StateBits for
// algorithms whose period is effectively unbounded.
const MaxStateBits = math.MaxInt32

// hugePeriodBits sizes the HugePeriod sentinel: 2^1024 exceeds any draw
// count physically reachable by a running process.
const hugePeriodBits = 1024

// HugePeriod returns the sentinel period (2^1024) reported for algorithms
// whose period is effectively unbounded. A fresh value is returned on each
// call so callers can never corrupt the sentinel through *big.Int
// mutation.
func HugePeriod() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), hugePeriodBits)
}

// Descriptor is the static metadata record of one algorithm. It is pure
// data, populated by the algorithm's own registration code, and immutable
// once attached to an Algorithm.
//
// The period parameters encode period = (2^I − J) · 2^K. The triple
// I==J==K==0 is a sentinel meaning "effectively unbounded period".
type Descriptor struct {
	// Name identifies the algorithm; registry lookup is exact-string and
	// case-sensitive on this field.
	Name string

	// Group names the algorithm family (for example "Xoshiro").
	Group string

	// I is the period exponent.
	I int

	// J is the period subtrahend.
	J int

	// K is the period shift.
	K int

	// Equidistribution is the k for which every k-tuple of output chunks
	// occurs with equal frequency over the period.
	Equidistribution int

	// Stochastic marks algorithms whose output is not a deterministic
	// function of their state (for example entropy-mixing generators).
	Stochastic bool

	// Hardware marks algorithms backed by a hardware entropy device.
	Hardware bool
}

// StateBits returns the number of bits of seed state the algorithm
// maintains: I + K, or MaxStateBits when both I and K carry the unbounded
// sentinel.
func (d Descriptor) StateBits() int {
	if d.I == 0 && d.K == 0 {
		return MaxStateBits
	}

	return d.I + d.K
}

// Period returns the algorithm's period (2^I − J) · 2^K as an
// arbitrary-precision integer, or HugePeriod when the descriptor carries
// the unbounded sentinel I==J==K==0. The result is freshly allocated on
// every call.
func (d Descriptor) Period() *big.Int {
	if d.I == 0 && d.J == 0 && d.K == 0 {
		return HugePeriod()
	}

	// (2^I − J) · 2^K
	period := new(big.Int).Lsh(big.NewInt(1), uint(d.I))
	period.Sub(period, big.NewInt(int64(d.J)))

	return period.Lsh(period, uint(d.K))
}
