package intern

import (
	"hash/maphash"

	"github.com/hupe1980/intern/internal/hash"
)

// Hasher accumulates the bytes of a value into a 64-bit hash.
type Hasher = hash.Hasher

// HasherBuilder creates the Hasher an interner uses for its whole lifetime.
type HasherBuilder = hash.Builder

// HasherBuilderFunc adapts a function to HasherBuilder.
type HasherBuilderFunc = hash.BuilderFunc

// SeededHasher returns a hash/maphash strategy with a random seed. Hash values
// are unpredictable across processes.
func SeededHasher() HasherBuilder { return hash.Seeded() }

// SeededHasherWith returns a hash/maphash strategy with a fixed seed.
func SeededHasherWith(seed maphash.Seed) HasherBuilder { return hash.SeededWith(seed) }

// XXHasher returns the xxhash strategy. It is faster than SeededHasher but
// deterministic, so only use it when values are not attacker controlled.
func XXHasher() HasherBuilder { return hash.XXHash() }

// XXHasherWithSeed returns the xxhash strategy with a fixed seed.
func XXHasherWithSeed(seed uint64) HasherBuilder { return hash.XXHashWithSeed(seed) }
