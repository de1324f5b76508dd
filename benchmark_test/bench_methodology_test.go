package benchmark_test

import (
	"runtime"
	"testing"
)

// WarmupIterations is the number of warmup iterations before measurement.
const WarmupIterations = 10

// BenchLoop runs a benchmark with proper methodology:
// 1. Warmup phase (WarmupIterations)
// 2. GC to clear allocation pressure
// 3. Reset timer
// 4. Run b.N iterations
//
// The inputCount parameter is used to cycle through inputs (i % inputCount).
func BenchLoop(b *testing.B, inputCount int, fn func(i int)) {
	b.Helper()

	// Phase 1: Warmup
	for i := 0; i < WarmupIterations; i++ {
		fn(i % inputCount)
	}

	// Phase 2: GC to clear setup allocations
	runtime.GC()

	// Phase 3: Reset and run
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fn(i % inputCount)
	}
}
