package intern

import (
	"bytes"
	"hash/maphash"
	"slices"
)

// Equivalence defines equality and hashing for owned values of type T.
//
// Equal values must hash equally: Hash must write the same bytes for any two
// values for which Equal reports true.
type Equivalence[T any] interface {
	Hash(h Hasher, v T)
	Equal(a, b T) bool
}

// comparableSeed keys maphash.Comparable for the lifetime of the process.
var comparableSeed = maphash.MakeSeed()

// Strings returns the Equivalence for string kinds.
func Strings[T ~string]() Equivalence[T] { return stringEq[T]{} }

type stringEq[T ~string] struct{}

func (stringEq[T]) Hash(h Hasher, v T) { _, _ = h.WriteString(string(v)) }
func (stringEq[T]) Equal(a, b T) bool  { return a == b }

// Bytes returns the Equivalence for byte slices, comparing contents.
func Bytes[T ~[]byte]() Equivalence[T] { return bytesEq[T]{} }

type bytesEq[T ~[]byte] struct{}

func (bytesEq[T]) Hash(h Hasher, v T) { _, _ = h.Write(v) }
func (bytesEq[T]) Equal(a, b T) bool  { return bytes.Equal(a, b) }

// Integers returns the Equivalence for integer kinds.
func Integers[T Handle]() Equivalence[T] { return intEq[T]{} }

type intEq[T Handle] struct{}

func (intEq[T]) Hash(h Hasher, v T) { h.WriteUint64(uint64(v)) }
func (intEq[T]) Equal(a, b T) bool  { return a == b }

// Comparable returns an Equivalence using Go's == and maphash.Comparable.
//
// Values containing native floats inherit Go's semantics: NaN is never equal
// to itself. Wrap floats in Float64 or Float32 instead.
func Comparable[T comparable]() Equivalence[T] { return comparableEq[T]{} }

type comparableEq[T comparable] struct{}

func (comparableEq[T]) Hash(h Hasher, v T) { h.WriteUint64(maphash.Comparable(comparableSeed, v)) }
func (comparableEq[T]) Equal(a, b T) bool  { return a == b }

// Slices returns the Equivalence for slices of comparable elements.
func Slices[S ~[]E, E comparable]() Equivalence[S] { return sliceEq[S, E]{} }

type sliceEq[S ~[]E, E comparable] struct{}

func (sliceEq[S, E]) Hash(h Hasher, v S) {
	h.WriteUint64(uint64(len(v)))
	for _, e := range v {
		h.WriteUint64(maphash.Comparable(comparableSeed, e))
	}
}

func (sliceEq[S, E]) Equal(a, b S) bool { return slices.Equal(a, b) }

// Equate builds an Equivalence from two functions.
func Equate[T any](hash func(h Hasher, v T), equal func(a, b T) bool) Equivalence[T] {
	return funcEq[T]{hash: hash, equal: equal}
}

type funcEq[T any] struct {
	hash  func(Hasher, T)
	equal func(T, T) bool
}

func (f funcEq[T]) Hash(h Hasher, v T) { f.hash(h, v) }
func (f funcEq[T]) Equal(a, b T) bool  { return f.equal(a, b) }
