package intern

import (
	"math"
	"slices"
)

// FromRef constructs an owned T from a borrowed shape B.
//
// It is invoked only when a lookup by B misses, exactly once per newly
// admitted value. Implementations must be pure and must not retain b: the
// caller may reuse the memory behind b after the call returns.
type FromRef[T, B any] interface {
	FromRef(b B) T
}

// Borrow lets values of type T be looked up by a borrowed shape B.
//
// For any b and stored v where EqualBorrowed(v, b) is true, HashBorrowed(b)
// must write the same bytes as the interner's Equivalence writes for v.
type Borrow[T, B any] interface {
	HashBorrowed(h Hasher, b B)
	EqualBorrowed(stored T, b B) bool
}

// Relation is a Borrow that can also build the owned value on a miss.
type Relation[T, B any] interface {
	Borrow[T, B]
	FromRef[T, B]
}

// StringFromBytes relates string values to byte slice lookups. On a hit no
// string is allocated.
func StringFromBytes[T ~string, B ~[]byte]() Relation[T, B] { return stringFromBytes[T, B]{} }

type stringFromBytes[T ~string, B ~[]byte] struct{}

func (stringFromBytes[T, B]) HashBorrowed(h Hasher, b B)       { _, _ = h.Write(b) }
func (stringFromBytes[T, B]) EqualBorrowed(stored T, b B) bool { return string(stored) == string(b) }
func (stringFromBytes[T, B]) FromRef(b B) T                    { return T(b) }

// BytesFromString relates byte slice values to string lookups.
func BytesFromString[T ~[]byte, B ~string]() Relation[T, B] { return bytesFromString[T, B]{} }

type bytesFromString[T ~[]byte, B ~string] struct{}

func (bytesFromString[T, B]) HashBorrowed(h Hasher, b B)       { _, _ = h.WriteString(string(b)) }
func (bytesFromString[T, B]) EqualBorrowed(stored T, b B) bool { return string(stored) == string(b) }
func (bytesFromString[T, B]) FromRef(b B) T                    { return T(b) }

// Identity relates T to itself. FromRef returns its argument unchanged, which
// is only a copy for value types; use SliceClone for slices.
func Identity[T any](eq Equivalence[T]) Relation[T, T] { return identity[T]{eq: eq} }

type identity[T any] struct {
	eq Equivalence[T]
}

func (r identity[T]) HashBorrowed(h Hasher, b T)       { r.eq.Hash(h, b) }
func (r identity[T]) EqualBorrowed(stored T, b T) bool { return r.eq.Equal(stored, b) }
func (identity[T]) FromRef(b T) T                      { return b }

// SliceClone relates a slice type to itself and clones on a miss, so the
// caller keeps ownership of the slice it passed in.
func SliceClone[S ~[]E, E comparable]() Relation[S, S] { return sliceClone[S, E]{} }

type sliceClone[S ~[]E, E comparable] struct {
	eq sliceEq[S, E]
}

func (r sliceClone[S, E]) HashBorrowed(h Hasher, b S)       { r.eq.Hash(h, b) }
func (r sliceClone[S, E]) EqualBorrowed(stored S, b S) bool { return r.eq.Equal(stored, b) }
func (sliceClone[S, E]) FromRef(b S) S                      { return slices.Clone(b) }

// Float64FromNative relates Float64 values to native float64 lookups.
func Float64FromNative() Relation[Float64, float64] { return float64Native{} }

type float64Native struct{}

func (float64Native) HashBorrowed(h Hasher, b float64) { h.WriteUint64(math.Float64bits(b)) }
func (float64Native) EqualBorrowed(stored Float64, b float64) bool {
	return stored.bits == math.Float64bits(b)
}
func (float64Native) FromRef(b float64) Float64 { return NewFloat64(b) }

// Float32FromNative relates Float32 values to native float32 lookups.
func Float32FromNative() Relation[Float32, float32] { return float32Native{} }

type float32Native struct{}

func (float32Native) HashBorrowed(h Hasher, b float32) { h.WriteUint64(uint64(math.Float32bits(b))) }
func (float32Native) EqualBorrowed(stored Float32, b float32) bool {
	return stored.bits == math.Float32bits(b)
}
func (float32Native) FromRef(b float32) Float32 { return NewFloat32(b) }

// BorrowFunc builds a Borrow from two functions.
func BorrowFunc[T, B any](hash func(h Hasher, b B), equal func(stored T, b B) bool) Borrow[T, B] {
	return funcBorrow[T, B]{hash: hash, equal: equal}
}

type funcBorrow[T, B any] struct {
	hash  func(Hasher, B)
	equal func(T, B) bool
}

func (f funcBorrow[T, B]) HashBorrowed(h Hasher, b B)       { f.hash(h, b) }
func (f funcBorrow[T, B]) EqualBorrowed(stored T, b B) bool { return f.equal(stored, b) }

// Relate pairs a Borrow with a construction function. This is how a borrowed
// shape that differs structurally from T is wired in, e.g. raw bytes that are
// parsed into a record only when the record is not yet interned.
func Relate[T, B any](borrow Borrow[T, B], from func(b B) T) Relation[T, B] {
	return related[T, B]{Borrow: borrow, from: from}
}

type related[T, B any] struct {
	Borrow[T, B]
	from func(B) T
}

func (r related[T, B]) FromRef(b B) T { return r.from(b) }
