package intern

// InternRef interns the value that b borrows.
//
// On a hit the existing handle is returned without calling rel.FromRef and
// without allocating. On a miss rel.FromRef builds the owned value exactly
// once and it is stored as with InternOwned.
func InternRef[T any, H Handle, B any](in *Interner[T, H], b B, rel Relation[T, B]) (H, error) {
	if pos, ok := findBorrowed(in, b, rel); ok {
		in.metrics.RecordIntern(true, nil)
		return H(pos), nil
	}
	// Re-checked by owned hash: a Borrow whose hash disagrees with the
	// Equivalence must not create a duplicate.
	return in.InternOwned(rel.FromRef(b))
}

// InternCow interns an owned or borrowed value. An owned value is moved in
// without calling rel.FromRef.
func InternCow[T any, H Handle, B any](in *Interner[T, H], c Cow[T, B], rel Relation[T, B]) (H, error) {
	if c.isOwned {
		return in.InternOwned(c.owned)
	}
	return InternRef(in, c.borrowed, rel)
}

// InternRefOrInsertWith returns the handle of the value b borrows, or stores
// the value returned by construct. construct is called only on a miss.
func InternRefOrInsertWith[T any, H Handle, B any](in *Interner[T, H], b B, borrow Borrow[T, B], construct func() T) (H, error) {
	if pos, ok := findBorrowed(in, b, borrow); ok {
		in.metrics.RecordIntern(true, nil)
		return H(pos), nil
	}
	return in.InternOwned(construct())
}

// LookupHandle returns the handle of the value b borrows without inserting.
func LookupHandle[T any, H Handle, B any](in *Interner[T, H], b B, borrow Borrow[T, B]) (H, bool) {
	pos, ok := findBorrowed(in, b, borrow)
	if !ok {
		return 0, false
	}
	return H(pos), true
}

// ContainsRef reports whether the value b borrows is present.
func ContainsRef[T any, H Handle, B any](in *Interner[T, H], b B, borrow Borrow[T, B]) bool {
	_, ok := findBorrowed(in, b, borrow)
	return ok
}

// RemoveRef deletes the value b borrows and returns it with the handle it had.
func RemoveRef[T any, H Handle, B any](in *Interner[T, H], b B, borrow Borrow[T, B]) (T, H, bool) {
	h, ok := LookupHandle(in, b, borrow)
	if !ok {
		in.metrics.RecordRemove(false)
		var zero T
		return zero, 0, false
	}
	v, ok := in.Remove(h)
	return v, h, ok
}

func findBorrowed[T any, H Handle, B any](in *Interner[T, H], b B, borrow Borrow[T, B]) (int, bool) {
	h := in.store.Hasher()
	borrow.HashBorrowed(h, b)
	return in.store.Find(h.Sum64(), func(stored T) bool { return borrow.EqualBorrowed(stored, b) })
}
