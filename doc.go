// Package intern provides a generic value interner for Go.
//
// An Interner stores each unique value once and hands out a small integer
// handle for it. Handles are cheap to copy, compare and store, so they can
// replace the values in downstream data structures.
//
// # Quick Start
//
//	in, _ := intern.New[string, uint32](intern.Strings[string]())
//	hello, _ := in.InternOwned("hello")
//	world, _ := in.InternOwned("world")
//	again, _ := in.InternOwned("hello") // again == hello
//
//	v, _ := in.Resolve(world) // "world"
//
// # Handles
//
// A handle is the value's position in insertion order, encoded as the
// caller-chosen integer type H. Interning more unique values than H can
// represent fails with ErrOverflow and leaves the Interner unchanged:
//
//	in, _ := intern.New[string, uint8](intern.Strings[string]())
//	// the 257th unique value returns an *OverflowError
//
// # Borrowed Lookups
//
// A value can be looked up by a borrowed shape B that differs from the owned
// type T. A Relation tells the Interner how to hash and compare B against
// stored values and how to build a T on a miss:
//
//	buf := []byte("hello")
//	h, _ := intern.InternRef(in, buf, intern.StringFromBytes[string, []byte]())
//
// On a hit nothing is allocated and FromRef is never called.
//
// # Removal
//
// Remove deletes a value and shifts every later value down one position.
// Handles greater than the removed one must be repaired by the caller:
//
//	v, _ := in.Remove(h)
//	stale := intern.RepairHandles(myHandles, h)
//
// # Hashing Strategies
//
// The default strategy is hash/maphash with a random seed. XXHasher is faster
// but deterministic; use it when values are not attacker controlled:
//
//	in, _ := intern.New[string, uint32](intern.Strings[string](), intern.WithHasher(intern.XXHasher()))
//
// Builds tagged intern_embedded carry no default strategy and require
// WithHasher.
//
// # Concurrency
//
// An Interner is single-owner. Wrap it in a mutex, or use package locked, when
// sharing it between goroutines.
package intern
