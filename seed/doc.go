// Package seed provides the process-wide default seed source used to
// bootstrap no-argument generator construction with mutually independent
// streams across goroutines.
//
// The source is a single 64-bit counter. Every no-seed construction
// performs exactly one atomic fetch-and-add on it (Next), so no two
// concurrently-constructing goroutines ever observe overlapping slices of
// the counter. That fetch-and-add is the sole synchronization point
// between them.
//
// Lifecycle:
//
//   - The counter is initialized exactly once, at first use, from the
//     operating system's entropy source (falling back to a time-based mix
//     if entropy is unavailable). It is never reset.
//   - For strictly reproducible runs, call Init with an explicit master
//     seed before any generator is default-constructed:
//
//	seed.Init(12345)
//
// Errors:
//
//	Init panics if the source was already initialized, either by an
//	earlier Init call or by a default construction that raced ahead of
//	it. Initialize first, construct after.
package seed
