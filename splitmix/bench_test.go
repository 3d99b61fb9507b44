// Package splitmix_test benchmarks the draw and split hot paths.
package splitmix_test

import (
	"testing"

	"github.com/katalvlaran/randgen/splitmix"
)

func BenchmarkUint64(b *testing.B) {
	g := splitmix.NewSeeded(42)
	b.ReportAllocs()
	b.ResetTimer()

	var sink uint64
	for i := 0; i < b.N; i++ {
		sink = g.Uint64()
	}
	_ = sink
}

func BenchmarkInt32(b *testing.B) {
	g := splitmix.NewSeeded(42)
	b.ReportAllocs()
	b.ResetTimer()

	var sink int32
	for i := 0; i < b.N; i++ {
		sink = g.Int32()
	}
	_ = sink
}

func BenchmarkSplit(b *testing.B) {
	g := splitmix.NewSeeded(42)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = g.Split()
	}
}

func BenchmarkMix64(b *testing.B) {
	b.ReportAllocs()

	var sink uint64
	for i := 0; i < b.N; i++ {
		sink = splitmix.Mix64(uint64(i))
	}
	_ = sink
}
