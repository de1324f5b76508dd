// Package locked provides an Interner that is safe for concurrent use.
//
// The core intern.Interner is single-threaded, including its lookups, which
// share a scratch hasher. Interner here serializes every operation behind one
// mutex. Batch callers should prefer InternAll, which takes the lock once.
package locked

import (
	"sync"

	"github.com/hupe1980/intern"
)

// Interner wraps an intern.Interner with a mutex.
type Interner[T any, H intern.Handle] struct {
	mu sync.Mutex
	in *intern.Interner[T, H]
}

// New creates a concurrency-safe Interner. It accepts the same options as
// intern.New.
func New[T any, H intern.Handle](eq intern.Equivalence[T], optFns ...intern.Option) (*Interner[T, H], error) {
	in, err := intern.New[T, H](eq, optFns...)
	if err != nil {
		return nil, err
	}
	return &Interner[T, H]{in: in}, nil
}

// Wrap takes ownership of in. The caller must not use in directly afterwards.
func Wrap[T any, H intern.Handle](in *intern.Interner[T, H]) *Interner[T, H] {
	return &Interner[T, H]{in: in}
}

// InternOwned interns v. See intern.Interner.InternOwned.
func (l *Interner[T, H]) InternOwned(v T) (H, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.in.InternOwned(v)
}

// InternAll interns values in order under a single lock acquisition and
// returns their handles. On overflow it stops and returns the handles issued
// so far together with the error.
func (l *Interner[T, H]) InternAll(values []T) ([]H, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	handles := make([]H, 0, len(values))
	for _, v := range values {
		h, err := l.in.InternOwned(v)
		if err != nil {
			return handles, err
		}
		handles = append(handles, h)
	}
	return handles, nil
}

// Resolve returns the value for h.
func (l *Interner[T, H]) Resolve(h H) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.in.Resolve(h)
}

// Lookup returns the handle of v without inserting it.
func (l *Interner[T, H]) Lookup(v T) (H, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.in.Lookup(v)
}

// Contains reports whether v is present.
func (l *Interner[T, H]) Contains(v T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.in.Contains(v)
}

// Remove deletes the value for h. See intern.Interner.Remove for how later
// handles shift.
func (l *Interner[T, H]) Remove(h H) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.in.Remove(h)
}

// RemoveValue deletes v and returns the handle it had.
func (l *Interner[T, H]) RemoveValue(v T) (H, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.in.RemoveValue(v)
}

// Len returns the number of unique values.
func (l *Interner[T, H]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.in.Len()
}

// Cap returns the current capacity.
func (l *Interner[T, H]) Cap() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.in.Cap()
}

// Reserve makes room for at least additional more values.
func (l *Interner[T, H]) Reserve(additional int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.in.Reserve(additional)
}

// ShrinkToFit releases spare capacity.
func (l *Interner[T, H]) ShrinkToFit() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.in.ShrinkToFit()
}

// Clear removes every value.
func (l *Interner[T, H]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.in.Clear()
}

// Snapshot returns a copy of the values in handle order.
func (l *Interner[T, H]) Snapshot() []T {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]T, 0, l.in.Len())
	for v := range l.in.Values() {
		out = append(out, v)
	}
	return out
}

// Export moves all values out. See intern.Interner.Export.
func (l *Interner[T, H]) Export() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.in.Export()
}

// Do runs fn with exclusive access to the underlying Interner, for sequences
// of operations that must be atomic, such as Remove followed by RepairHandles.
// fn must not retain in.
func (l *Interner[T, H]) Do(fn func(in *intern.Interner[T, H])) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.in)
}

func (l *Interner[T, H]) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.in.String()
}

// InternRef interns the value b borrows. See intern.InternRef.
func InternRef[T any, H intern.Handle, B any](l *Interner[T, H], b B, rel intern.Relation[T, B]) (H, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return intern.InternRef(l.in, b, rel)
}

// LookupHandle returns the handle of the value b borrows. See intern.LookupHandle.
func LookupHandle[T any, H intern.Handle, B any](l *Interner[T, H], b B, borrow intern.Borrow[T, B]) (H, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return intern.LookupHandle(l.in, b, borrow)
}
