package intern

// Cow holds either an owned T or a borrowed B.
//
// Interning an owned Cow moves the value in without calling FromRef; a
// borrowed Cow constructs the owned value only on a miss.
type Cow[T, B any] struct {
	owned    T
	borrowed B
	isOwned  bool
}

// Owned returns a Cow holding v.
func Owned[T, B any](v T) Cow[T, B] {
	return Cow[T, B]{owned: v, isOwned: true}
}

// Borrowed returns a Cow holding b.
func Borrowed[T, B any](b B) Cow[T, B] {
	return Cow[T, B]{borrowed: b}
}

// IsOwned reports whether c holds an owned value.
func (c Cow[T, B]) IsOwned() bool { return c.isOwned }

// IntoOwned returns the owned value, constructing it with f if c is borrowed.
func (c Cow[T, B]) IntoOwned(f FromRef[T, B]) T {
	if c.isOwned {
		return c.owned
	}
	return f.FromRef(c.borrowed)
}
