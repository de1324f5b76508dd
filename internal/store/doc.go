// Package store implements the ordered, bijective value store behind an interner.
//
// Values live in a dense slice in insertion order; a value's position in that
// slice is its identity. A separate open-addressing table (linear probing,
// power-of-two size, load factor at most 7/8) maps hashes to positions so that
// lookups cost O(1) expected time.
//
// # Removal
//
// Removing position p shifts every later value down by one slot, keeping
// positions dense. The index is repaired in the same pass: the slot holding p
// is deleted with backward-shift deletion (no tombstones), then the slot of
// every value after p is decremented. The cost is O(len-p).
//
// # Hashing
//
// The store does not know how to hash values. Callers compute the hash with
// the store's Hasher and pass it in together with an equality predicate, which
// lets a lookup key have a different shape than the stored values.
//
// A Store is not safe for concurrent use. Even Find mutates the shared Hasher
// when callers hash through it.
package store
