package store

import (
	"iter"
	"slices"

	"github.com/hupe1980/intern/internal/hash"
)

const (
	emptySlot = -1
	minSlots  = 8
)

type entry[T any] struct {
	hash  uint64
	value T
}

// Store is an insertion-ordered set of values addressed by dense positions.
type Store[T any] struct {
	entries []entry[T]
	slots   []int
	mask    uint64
	hasher  hash.Hasher
}

// New creates an empty Store that hashes with a Hasher built by b.
func New[T any](b hash.Builder, capacity int) *Store[T] {
	s := &Store[T]{hasher: b.Build()}
	if capacity > 0 {
		s.Reserve(capacity)
	}
	return s
}

// Hasher returns the store's reusable hasher, already Reset.
func (s *Store[T]) Hasher() hash.Hasher {
	s.hasher.Reset()
	return s.hasher
}

// Len returns the number of stored values.
func (s *Store[T]) Len() int { return len(s.entries) }

// Cap returns how many values fit before the backing storage grows.
func (s *Store[T]) Cap() int {
	return min(cap(s.entries), slotCapacity(len(s.slots)))
}

// Find returns the position of the value with the given hash for which match
// reports true.
func (s *Store[T]) Find(h uint64, match func(T) bool) (int, bool) {
	if len(s.slots) == 0 {
		return 0, false
	}
	for i := h & s.mask; ; i = (i + 1) & s.mask {
		p := s.slots[i]
		if p == emptySlot {
			return 0, false
		}
		if e := &s.entries[p]; e.hash == h && match(e.value) {
			return p, true
		}
	}
}

// Insert appends v at position Len() and returns that position. The caller
// must have checked that no equal value is present.
func (s *Store[T]) Insert(h uint64, v T) int {
	pos := len(s.entries)
	if pos+1 > slotCapacity(len(s.slots)) {
		s.rehash(growSlots(pos + 1))
	}
	s.entries = append(s.entries, entry[T]{hash: h, value: v})
	s.place(h, pos)
	return pos
}

// Get returns the value at pos.
func (s *Store[T]) Get(pos int) (T, bool) {
	if pos < 0 || pos >= len(s.entries) {
		var zero T
		return zero, false
	}
	return s.entries[pos].value, true
}

// Remove deletes the value at pos and shifts every later value down by one.
func (s *Store[T]) Remove(pos int) (T, bool) {
	if pos < 0 || pos >= len(s.entries) {
		var zero T
		return zero, false
	}
	removed := s.entries[pos].value

	s.deleteSlot(s.slotOf(pos))
	for q := pos + 1; q < len(s.entries); q++ {
		s.slots[s.slotOf(q)] = q - 1
	}

	last := len(s.entries) - 1
	copy(s.entries[pos:], s.entries[pos+1:])
	s.entries[last] = entry[T]{}
	s.entries = s.entries[:last]
	return removed, true
}

// All yields positions and values in ascending position order.
func (s *Store[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range s.entries {
			if !yield(i, s.entries[i].value) {
				return
			}
		}
	}
}

// Drain moves every value out in position order and leaves the store empty
// with no backing storage.
func (s *Store[T]) Drain() []T {
	out := make([]T, len(s.entries))
	for i := range s.entries {
		out[i] = s.entries[i].value
	}
	s.entries = nil
	s.slots = nil
	s.mask = 0
	return out
}

// Reserve makes room for at least additional more values.
func (s *Store[T]) Reserve(additional int) {
	if additional <= 0 {
		return
	}
	want := len(s.entries) + additional
	s.entries = slices.Grow(s.entries, additional)
	if want > slotCapacity(len(s.slots)) {
		s.rehash(growSlots(want))
	}
}

// ShrinkToFit releases spare capacity.
func (s *Store[T]) ShrinkToFit() {
	if len(s.entries) == 0 {
		s.entries = nil
		s.slots = nil
		s.mask = 0
		return
	}
	s.entries = slices.Clip(slices.Clone(s.entries))
	if n := growSlots(len(s.entries)); n < len(s.slots) {
		s.rehash(n)
	}
}

// Clear removes every value but keeps the allocated storage.
func (s *Store[T]) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
	for i := range s.slots {
		s.slots[i] = emptySlot
	}
}

func (s *Store[T]) place(h uint64, pos int) {
	i := h & s.mask
	for s.slots[i] != emptySlot {
		i = (i + 1) & s.mask
	}
	s.slots[i] = pos
}

// slotOf returns the table slot holding pos. pos must be present.
func (s *Store[T]) slotOf(pos int) uint64 {
	i := s.entries[pos].hash & s.mask
	for s.slots[i] != pos {
		i = (i + 1) & s.mask
	}
	return i
}

// deleteSlot empties slot i and pulls later probe-chain members back so that
// every remaining position stays reachable from its home slot.
func (s *Store[T]) deleteSlot(i uint64) {
	s.slots[i] = emptySlot
	j := i
	for {
		j = (j + 1) & s.mask
		p := s.slots[j]
		if p == emptySlot {
			return
		}
		home := s.entries[p].hash & s.mask
		// Distance from home to j versus from i to j, modulo table size.
		if (j-home)&s.mask >= (j-i)&s.mask {
			s.slots[i] = p
			s.slots[j] = emptySlot
			i = j
		}
	}
}

func (s *Store[T]) rehash(n int) {
	s.slots = make([]int, n)
	for i := range s.slots {
		s.slots[i] = emptySlot
	}
	s.mask = uint64(n - 1)
	for pos := range s.entries {
		s.place(s.entries[pos].hash, pos)
	}
}

// slotCapacity is the number of values a table of n slots accepts.
func slotCapacity(n int) int {
	return n - n/8
}

// growSlots returns the smallest power-of-two table size holding want values.
func growSlots(want int) int {
	n := minSlots
	for slotCapacity(n) < want {
		n <<= 1
	}
	return n
}
