package hash

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher accumulates bytes into a 64-bit hash.
//
// Write and WriteString never return an error.
type Hasher interface {
	Write(p []byte) (int, error)
	WriteString(s string) (int, error)
	// WriteUint64 writes v as 8 little-endian bytes.
	WriteUint64(v uint64)
	Sum64() uint64
	Reset()
}

// Builder creates Hashers. All Hashers built by one Builder must produce the
// same sum for the same input.
type Builder interface {
	Build() Hasher
}

// BuilderFunc adapts a function to the Builder interface.
type BuilderFunc func() Hasher

// Build implements Builder.
func (f BuilderFunc) Build() Hasher { return f() }

// Seeded returns a maphash Builder with a fresh random seed.
func Seeded() Builder {
	return SeededWith(maphash.MakeSeed())
}

// SeededWith returns a maphash Builder using seed.
func SeededWith(seed maphash.Seed) Builder {
	return seededBuilder{seed: seed}
}

type seededBuilder struct {
	seed maphash.Seed
}

func (b seededBuilder) Build() Hasher {
	h := &maphashHasher{}
	h.h.SetSeed(b.seed)
	return h
}

type maphashHasher struct {
	h   maphash.Hash
	buf [8]byte
}

func (m *maphashHasher) Write(p []byte) (int, error)       { return m.h.Write(p) }
func (m *maphashHasher) WriteString(s string) (int, error) { return m.h.WriteString(s) }
func (m *maphashHasher) Sum64() uint64                     { return m.h.Sum64() }
func (m *maphashHasher) Reset()                            { m.h.Reset() }

func (m *maphashHasher) WriteUint64(v uint64) {
	binary.LittleEndian.PutUint64(m.buf[:], v)
	_, _ = m.h.Write(m.buf[:])
}

// XXHash returns an unseeded xxhash Builder.
func XXHash() Builder {
	return xxBuilder{}
}

// XXHashWithSeed returns an xxhash Builder using seed.
func XXHashWithSeed(seed uint64) Builder {
	return xxBuilder{seed: seed, seeded: true}
}

type xxBuilder struct {
	seed   uint64
	seeded bool
}

func (b xxBuilder) Build() Hasher {
	if b.seeded {
		return &xxHasher{d: xxhash.NewWithSeed(b.seed), seed: b.seed, seeded: true}
	}
	return &xxHasher{d: xxhash.New()}
}

type xxHasher struct {
	d      *xxhash.Digest
	seed   uint64
	seeded bool
	buf    [8]byte
}

func (x *xxHasher) Write(p []byte) (int, error)       { return x.d.Write(p) }
func (x *xxHasher) WriteString(s string) (int, error) { return x.d.WriteString(s) }
func (x *xxHasher) Sum64() uint64                     { return x.d.Sum64() }

func (x *xxHasher) Reset() {
	if x.seeded {
		x.d.ResetWithSeed(x.seed)
		return
	}
	x.d.Reset()
}

func (x *xxHasher) WriteUint64(v uint64) {
	binary.LittleEndian.PutUint64(x.buf[:], v)
	_, _ = x.d.Write(x.buf[:])
}
