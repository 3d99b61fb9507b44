package seed

import (
	crand "crypto/rand"
	"encoding/binary"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// counter is the process-wide seed counter. Read-and-advanced only by
	// Next, initialized only inside initOnce.
	counter atomic.Uint64

	initOnce sync.Once
)

// Init initializes the default seed source with an explicit master seed,
// making every subsequent default construction in the process
// deterministic. MUST be called before any generator is constructed
// without a seed.
//
// Panics if the source was already initialized, either by an earlier
// Init call or by a default construction that ran first.
func Init(master uint64) {
	initialized := false
	initOnce.Do(func() {
		counter.Store(master)
		initialized = true
	})

	if !initialized {
		panic("seed: Init called after the default seed source was already initialized")
	}
}

// Next atomically advances the counter by stride and returns its
// pre-advance value. The counter wraps modulo 2^64.
//
// Each caller receives a disjoint [value, value+stride) slice of the
// counter, so concurrent callers never observe overlapping ranges.
func Next(stride uint64) uint64 {
	initOnce.Do(func() {
		counter.Store(initialSeed())
	})

	return counter.Add(stride) - stride
}

// initialSeed produces the entropy-based bootstrap value: 8 bytes from the
// OS entropy source, or a finalizer-mixed wall/monotonic-clock sample if
// entropy is unavailable.
func initialSeed() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err == nil {
		return binary.LittleEndian.Uint64(buf[:])
	}

	now := time.Now()

	return stafford13(uint64(now.UnixNano())) ^ stafford13(uint64(now.UnixMilli()))
}

// stafford13 is David Stafford's variant-13 64-bit finalizer, the same mix
// splitmix applies to raw sequence values.
func stafford13(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return z ^ (z >> 31)
}
