// Package rng defines the core contracts shared by every random number
// generator algorithm in randgen: the Generator interface, the capability
// interface hierarchy, the Descriptor metadata record, and the Algorithm
// registration record consumed by the registry.
//
// The capability hierarchy classifies what an algorithm can do beyond
// drawing values:
//
//	Generator                       — draw 32- and 64-bit values
//	└─ StreamableGenerator          — also produce a lazy stream of new generators
//	   ├─ SplittableGenerator       — split off statistically independent children
//	   └─ JumpableGenerator         — jump far ahead in its own sequence
//	      └─ LeapableGenerator      — jump very far ahead ("leap")
//	         └─ ArbitrarilyJumpableGenerator — jump ahead by any power of two
//
// Capabilities are derived structurally: an algorithm has a capability
// exactly when its concrete type satisfies the corresponding interface.
// CapabilitiesOf performs that classification once, over a typed probe
// value supplied at registration time, and the result is cached by the
// registry. No generator instance is ever constructed to answer a
// capability query.
//
// Descriptor carries the static statistical metadata of one algorithm
// (period parameters, equidistribution, stochastic/hardware flags). It is
// pure data, immutable once attached to an algorithm, and the period and
// state-bit figures are derived from it:
//
//	period    = (2^I − J) · 2^K        (HugePeriod when I==J==K==0)
//	stateBits = I + K                  (MaxStateBits when I==0 && K==0)
//
// Thread-safety: everything in this package is either immutable data or a
// pure function. Generator *instances* produced by the algorithms are not
// safe for concurrent use; see the package documentation of each
// algorithm for the split-don't-share discipline.
package rng
