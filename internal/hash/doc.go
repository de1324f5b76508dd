// Package hash provides the pluggable hashing strategies used by the value store.
//
// # Strategies
//
// Two strategies are available:
//
//   - Seeded: hash/maphash with a random per-builder seed. Hash values are not
//     predictable across processes, which makes flooding a table with crafted
//     collisions impractical. This is the default.
//   - XXHash: github.com/cespare/xxhash/v2. Faster and deterministic, but an
//     adversary who controls the values can construct collisions.
//
// # Usage
//
// A Builder is asked for one Hasher per store. The store reuses it for every
// lookup by calling Reset first:
//
//	h := hash.Seeded().Build()
//	h.Reset()
//	h.WriteString("hello")
//	sum := h.Sum64()
//
// Hasher instances are not safe for concurrent use.
package hash
