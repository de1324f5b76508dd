// Package testutil provides testing utilities for intern.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic generators for the value streams an interner
// typically sees: many repetitions of a small vocabulary.
//
// # Random Value Generation
//
//	rng := testutil.NewRNG(seed)
//	words := rng.DistinctStrings(1000, 8)   // unique tokens
//	stream := rng.ZipfStream(words, 1e5, 1.2) // skewed repetitions
package testutil
