package intern

import (
	"errors"
	"fmt"
	"iter"
	"math/bits"

	"github.com/hupe1980/intern/internal/conv"
	"github.com/hupe1980/intern/internal/store"
)

// ErrNoEquivalence is returned by New when eq is nil.
var ErrNoEquivalence = errors.New("nil equivalence")

// Interner deduplicates values of type T and issues a handle of type H for
// each unique value.
//
// A handle is the value's position in insertion order. It is valid only for
// the Interner that issued it, and only until a Remove at a lower or equal
// position or a Clear. Remove shifts later positions down by one; callers that
// keep handles across removals repair them with RepairHandles.
//
// An Interner is not safe for concurrent use. Even read-only calls that hash
// (Lookup, Contains, LookupHandle) share internal scratch state. Guard the whole
// Interner with a mutex, or use package locked.
type Interner[T any, H Handle] struct {
	store   *store.Store[T]
	eq      Equivalence[T]
	width   int
	maxPos  int
	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty Interner that compares values with eq.
//
// New fails with ErrHandleWidth if H is wider than int on this platform, and
// with ErrNoHasher in intern_embedded builds without WithHasher.
func New[T any, H Handle](eq Equivalence[T], optFns ...Option) (*Interner[T, H], error) {
	if eq == nil {
		return nil, ErrNoEquivalence
	}

	if !conv.Fits[H]() {
		return nil, &HandleWidthError{Width: conv.Width[H](), Native: bits.UintSize}
	}

	opts := options{
		hasher:           defaultHasher(),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.hasher == nil {
		opts.hasher = defaultHasher()
	}
	if opts.hasher == nil {
		return nil, ErrNoHasher
	}
	if opts.metricsCollector == nil {
		opts.metricsCollector = NoopMetricsCollector{}
	}
	if opts.logger == nil {
		opts.logger = NoopLogger()
	}

	return &Interner[T, H]{
		store:   store.New[T](opts.hasher, opts.capacity),
		eq:      eq,
		width:   conv.Width[H](),
		maxPos:  conv.MaxPosition[H](),
		logger:  opts.logger,
		metrics: opts.metricsCollector,
	}, nil
}

// NewComparable creates an Interner for a comparable T using Comparable.
func NewComparable[T comparable, H Handle](optFns ...Option) (*Interner[T, H], error) {
	return New[T, H](Comparable[T](), optFns...)
}

// InternOwned interns v, taking ownership of it.
//
// If an equal value is present its handle is returned and v is discarded.
// Otherwise v is stored at the next position. InternOwned fails with an
// *OverflowError when that position does not fit H; the Interner is then
// unchanged.
func (in *Interner[T, H]) InternOwned(v T) (H, error) {
	sum := in.hash(v)
	if pos, ok := in.find(sum, v); ok {
		in.metrics.RecordIntern(true, nil)
		return H(pos), nil
	}
	return in.insert(sum, v)
}

func (in *Interner[T, H]) insert(sum uint64, v T) (H, error) {
	pos := in.store.Len()
	h, ok := conv.ToHandle[H](pos)
	if !ok {
		in.logger.LogOverflow(pos, in.width, in.maxPos)
		err := &OverflowError{Position: pos, Width: in.width, Max: in.maxPos}
		in.metrics.RecordIntern(false, err)
		return 0, err
	}
	in.store.Insert(sum, v)
	in.metrics.RecordIntern(false, nil)
	return h, nil
}

func (in *Interner[T, H]) hash(v T) uint64 {
	h := in.store.Hasher()
	in.eq.Hash(h, v)
	return h.Sum64()
}

func (in *Interner[T, H]) find(sum uint64, v T) (int, bool) {
	return in.store.Find(sum, func(stored T) bool { return in.eq.Equal(stored, v) })
}

// Resolve returns the value for h. It reports false if h is out of bounds,
// which includes handles made stale by Remove or Clear at a position that no
// longer exists.
func (in *Interner[T, H]) Resolve(h H) (T, bool) {
	pos, ok := conv.FromHandle(h)
	if !ok {
		var zero T
		return zero, false
	}
	return in.store.Get(pos)
}

// Lookup returns the handle of a value equal to v without inserting it.
func (in *Interner[T, H]) Lookup(v T) (H, bool) {
	pos, ok := in.find(in.hash(v), v)
	if !ok {
		return 0, false
	}
	return H(pos), true
}

// Contains reports whether a value equal to v is present.
func (in *Interner[T, H]) Contains(v T) bool {
	_, ok := in.find(in.hash(v), v)
	return ok
}

// Remove deletes the value for h and returns it.
//
// Every value after h moves down one position, so handles greater than h now
// resolve to the value that followed theirs; fix them with RepairHandles. A
// handle equal to h is not invalidated: it resolves to whatever moved into its
// slot, or to nothing if h was the last position.
func (in *Interner[T, H]) Remove(h H) (T, bool) {
	pos, ok := conv.FromHandle(h)
	if !ok {
		in.metrics.RecordRemove(false)
		var zero T
		return zero, false
	}
	v, ok := in.store.Remove(pos)
	in.metrics.RecordRemove(ok)
	if ok {
		in.logger.LogRemove(pos, in.store.Len()-pos)
	}
	return v, ok
}

// RemoveHandle is Remove by another name, for call sites that also remove by
// value and want the handle variant spelled out.
func (in *Interner[T, H]) RemoveHandle(h H) (T, bool) {
	return in.Remove(h)
}

// RemoveValue deletes the value equal to v and returns the handle it had,
// which is the removed position to pass to RepairHandles.
func (in *Interner[T, H]) RemoveValue(v T) (H, bool) {
	h, ok := in.Lookup(v)
	if !ok {
		in.metrics.RecordRemove(false)
		return 0, false
	}
	_, ok = in.Remove(h)
	return h, ok
}

// RepairHandles calls RepairHandles for handles issued by this Interner.
func (in *Interner[T, H]) RepairHandles(handles []H, removed H) []int {
	return RepairHandles(handles, removed)
}

// Len returns the number of unique values.
func (in *Interner[T, H]) Len() int { return in.store.Len() }

// IsEmpty reports whether the Interner holds no values.
func (in *Interner[T, H]) IsEmpty() bool { return in.store.Len() == 0 }

// Cap returns the number of values the Interner holds before it grows.
func (in *Interner[T, H]) Cap() int { return in.store.Cap() }

// Reserve makes room for at least additional more values.
func (in *Interner[T, H]) Reserve(additional int) { in.store.Reserve(additional) }

// ShrinkToFit releases spare capacity.
func (in *Interner[T, H]) ShrinkToFit() { in.store.ShrinkToFit() }

// Clear removes every value. All previously issued handles become invalid.
// The hasher and handle type are kept, and so is the allocated storage.
func (in *Interner[T, H]) Clear() {
	n := in.store.Len()
	in.store.Clear()
	in.metrics.RecordClear(n)
	in.logger.LogClear(n)
}

// HandleWidth returns the bit width of H.
func (in *Interner[T, H]) HandleWidth() int { return in.width }

// All yields handles and values in ascending handle order, which is
// first-insertion order among present values. Each call starts over.
// The Interner must not be modified during iteration.
func (in *Interner[T, H]) All() iter.Seq2[H, T] {
	return func(yield func(H, T) bool) {
		for pos, v := range in.store.All() {
			if !yield(H(pos), v) {
				return
			}
		}
	}
}

// Values yields the values in ascending handle order.
func (in *Interner[T, H]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range in.store.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Export moves all values out in handle order: the value for handle h is at
// index h. The Interner is left empty with its storage released, so every
// previously issued handle becomes invalid.
//
// The Interner itself stays usable after Export. It behaves like a new
// Interner with the same options: the next unique value gets handle 0, so
// handles issued before and after Export must not be mixed.
func (in *Interner[T, H]) Export() []T {
	out := in.store.Drain()
	in.logger.LogExport(len(out))
	return out
}

func (in *Interner[T, H]) String() string {
	return fmt.Sprintf("Interner{len: %d, cap: %d}", in.Len(), in.Cap())
}
