package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistinctStrings(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.DistinctStrings(500, 3)

	assert.Len(t, v, 500)
	seen := map[string]bool{}
	for _, s := range v {
		assert.Len(t, s, 3)
		assert.False(t, seen[s], "duplicate %q", s)
		seen[s] = true
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	first := rng.String(16)

	rng.Reset()
	assert.Equal(t, first, rng.String(16))
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestZipf(t *testing.T) {
	rng := NewRNG(4711)

	counts := make([]int, 10)
	for i := 0; i < 5000; i++ {
		k := rng.Zipf(10, 1.5)
		assert.GreaterOrEqual(t, k, 0)
		assert.Less(t, k, 10)
		counts[k]++
	}
	assert.Greater(t, counts[0], counts[9])

	assert.Equal(t, 0, rng.Zipf(1, 1.5))
}

func TestZipfStream(t *testing.T) {
	rng := NewRNG(4711)
	vocab := rng.DistinctStrings(50, 6)

	stream := rng.ZipfStream(vocab, 2000, 1.2)
	assert.Len(t, stream, 2000)

	inVocab := map[string]bool{}
	for _, w := range vocab {
		inVocab[w] = true
	}
	unique := map[string]bool{}
	for _, w := range stream {
		assert.True(t, inVocab[w])
		unique[w] = true
	}
	assert.Less(t, len(unique), len(stream))
}

func TestSpecialFloats(t *testing.T) {
	fs := SpecialFloats()
	bits := map[uint64]bool{}
	for _, f := range fs {
		bits[math.Float64bits(f)] = true
	}
	assert.Len(t, bits, len(fs), "special floats must have distinct bit patterns")
}
