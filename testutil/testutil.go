package testutil

import (
	"math"
	"math/rand"
	"sync"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// String returns a random lowercase alphanumeric string of length n.
func (r *RNG) String(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stringLocked(n)
}

func (r *RNG) stringLocked(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.rand.Intn(len(alphabet))]
	}
	return string(b)
}

// DistinctStrings returns count pairwise distinct random strings of length n.
// n must be large enough for count distinct strings to exist.
func (r *RNG) DistinctStrings(count, n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, count)
	out := make([]string, 0, count)
	for len(out) < count {
		s := r.stringLocked(n)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
// s=1.0 gives standard Zipf, s=1.5 gives heavy-tail (80/20 rule).
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s, harmonic(n, s))
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s, hns float64) int {
	if n <= 1 {
		return 0
	}

	// Sample from uniform and use inverse transform
	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// harmonic is the normalization constant of a Zipf distribution over n ranks.
func harmonic(n int, s float64) float64 {
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}
	return hns
}

// ZipfStream draws length values from vocab with Zipfian skew s, so that a
// few values repeat very often. This is the access pattern interning is for.
func (r *RNG) ZipfStream(vocab []string, length int, s float64) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	hns := harmonic(len(vocab), s)
	out := make([]string, length)
	for i := range out {
		out[i] = vocab[r.zipfLocked(len(vocab), s, hns)]
	}
	return out
}

// SpecialFloats returns float64 values whose equality is easy to get wrong:
// both zeros, infinities, and NaNs with different payloads.
func SpecialFloats() []float64 {
	return []float64{
		0,
		math.Copysign(0, -1),
		math.Inf(1),
		math.Inf(-1),
		math.NaN(),
		math.Float64frombits(0x7ff8000000000002),
		math.Float64frombits(0xfff8000000000000),
		math.SmallestNonzeroFloat64,
		math.MaxFloat64,
	}
}
