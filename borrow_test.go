package intern

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// record is parsed from "key=value" bytes.
type record struct {
	Key   string
	Value string
}

var recordEq = Equate(
	func(h Hasher, r record) {
		_, _ = h.WriteString(r.Key)
		_, _ = h.WriteString("=")
		_, _ = h.WriteString(r.Value)
	},
	func(a, b record) bool { return a == b },
)

// recordBorrow hashes the raw bytes, which are exactly what recordEq writes.
var recordBorrow = BorrowFunc(
	func(h Hasher, b []byte) { _, _ = h.Write(b) },
	func(stored record, b []byte) bool {
		i := bytes.IndexByte(b, '=')
		if i < 0 {
			return false
		}
		return stored.Key == string(b[:i]) && stored.Value == string(b[i+1:])
	},
)

// countingParse is a FromRef that counts its invocations.
type countingParse struct {
	calls int
}

func (c *countingParse) parse(b []byte) record {
	c.calls++
	k, v, _ := bytes.Cut(b, []byte("="))
	return record{Key: string(k), Value: string(v)}
}

func newRecords(t *testing.T) *Interner[record, uint32] {
	t.Helper()
	in, err := New[record, uint32](recordEq, testOptions()...)
	require.NoError(t, err)
	return in
}

func TestInternRef_HitSkipsFromRef(t *testing.T) {
	in := newRecords(t)
	parser := &countingParse{}
	rel := Relate(recordBorrow, parser.parse)

	h1, err := InternRef(in, []byte("lang=go"), rel)
	require.NoError(t, err)
	assert.Equal(t, 1, parser.calls)

	for i := 0; i < 100; i++ {
		h, err := InternRef(in, []byte("lang=go"), rel)
		require.NoError(t, err)
		require.Equal(t, h1, h)
	}
	assert.Equal(t, 1, parser.calls, "FromRef must not run on a hit")

	h2, err := InternRef(in, []byte("lang=rust"), rel)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
	assert.Equal(t, 2, parser.calls)

	v, ok := in.Resolve(h1)
	require.True(t, ok)
	assert.Equal(t, record{Key: "lang", Value: "go"}, v)

	// Owned and borrowed paths agree.
	h3, err := in.InternOwned(record{Key: "lang", Value: "rust"})
	require.NoError(t, err)
	assert.Equal(t, h2, h3)
	assert.Equal(t, 2, parser.calls)
}

func TestInternRef_BufferReuse(t *testing.T) {
	in := newStrings(t)
	rel := StringFromBytes[string, []byte]()

	buf := []byte("hello")
	h, err := InternRef(in, buf, rel)
	require.NoError(t, err)

	// Stored value does not alias the caller's buffer.
	copy(buf, "jelly")
	v, _ := in.Resolve(h)
	assert.Equal(t, "hello", v)

	h2, err := InternRef(in, []byte("hello"), rel)
	require.NoError(t, err)
	assert.Equal(t, h, h2)
	assert.Equal(t, 1, in.Len())
}

func TestInternRef_MixedPathsConsistent(t *testing.T) {
	in := newStrings(t)
	rel := StringFromBytes[string, []byte]()

	hOwned, err := in.InternOwned("test")
	require.NoError(t, err)
	hRef, err := InternRef(in, []byte("test"), rel)
	require.NoError(t, err)
	hCow, err := InternCow(in, Borrowed[string]([]byte("test")), rel)
	require.NoError(t, err)
	hIdent, err := InternRef(in, "test", Identity(Strings[string]()))
	require.NoError(t, err)

	assert.Equal(t, hOwned, hRef)
	assert.Equal(t, hRef, hCow)
	assert.Equal(t, hCow, hIdent)
	assert.Equal(t, 1, in.Len())
}

func TestInternCow(t *testing.T) {
	in := newRecords(t)
	parser := &countingParse{}
	rel := Relate(recordBorrow, parser.parse)

	owned := Owned[record, []byte](record{Key: "a", Value: "1"})
	assert.True(t, owned.IsOwned())

	h1, err := InternCow(in, owned, rel)
	require.NoError(t, err)
	assert.Equal(t, 0, parser.calls, "owned values are moved in")

	borrowed := Borrowed[record]([]byte("a=1"))
	assert.False(t, borrowed.IsOwned())

	h2, err := InternCow(in, borrowed, rel)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
	assert.Equal(t, 0, parser.calls)

	h3, err := InternCow(in, Borrowed[record]([]byte("b=2")), rel)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)
	assert.Equal(t, 1, parser.calls)
	assert.Equal(t, 2, in.Len())
}

func TestCow_IntoOwned(t *testing.T) {
	rel := StringFromBytes[string, []byte]()
	assert.Equal(t, "x", Owned[string, []byte]("x").IntoOwned(rel))
	assert.Equal(t, "y", Borrowed[string]([]byte("y")).IntoOwned(rel))
}

func TestInternRefOrInsertWith(t *testing.T) {
	in := newRecords(t)
	calls := 0
	construct := func() record {
		calls++
		return record{Key: "k", Value: "v"}
	}

	h1, err := InternRefOrInsertWith(in, []byte("k=v"), recordBorrow, construct)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	h2, err := InternRefOrInsertWith(in, []byte("k=v"), recordBorrow, construct)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
	assert.Equal(t, 1, calls)
}

func TestInternRefOrInsertWith_ConstructorReturnsExisting(t *testing.T) {
	in := newRecords(t)
	h1, err := in.InternOwned(record{Key: "k", Value: "v"})
	require.NoError(t, err)

	// The borrowed key misses, but the constructed value is already present.
	h2, err := InternRefOrInsertWith(in, []byte("other=key"), recordBorrow, func() record {
		return record{Key: "k", Value: "v"}
	})
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
	assert.Equal(t, 1, in.Len())
}

func TestLookupHandle(t *testing.T) {
	in := newStrings(t)
	rel := StringFromBytes[string, []byte]()

	_, ok := LookupHandle(in, []byte("x"), rel)
	assert.False(t, ok)
	assert.True(t, in.IsEmpty())

	h, err := in.InternOwned("x")
	require.NoError(t, err)

	got, ok := LookupHandle(in, []byte("x"), rel)
	require.True(t, ok)
	assert.Equal(t, h, got)

	assert.True(t, ContainsRef(in, []byte("x"), rel))
	assert.False(t, ContainsRef(in, []byte("y"), rel))
	assert.Equal(t, 1, in.Len())
}

func TestRemoveRef(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	in := newStrings(t, WithMetricsCollector(metrics))
	rel := StringFromBytes[string, []byte]()
	for _, v := range []string{"a", "b", "c"} {
		_, _ = in.InternOwned(v)
	}

	v, h, ok := RemoveRef(in, []byte("a"), rel)
	require.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, uint32(0), h)

	_, _, ok = RemoveRef(in, []byte("a"), rel)
	assert.False(t, ok)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.RemoveCount)
	assert.Equal(t, int64(1), stats.RemoveMisses)

	got, ok := LookupHandle(in, []byte("c"), rel)
	require.True(t, ok)
	assert.Equal(t, uint32(1), got)
}
