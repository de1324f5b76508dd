package intern

import (
	"math"
	"strconv"
)

// Float64 wraps a float64 with total equality, ordering and hashing.
//
// Equality is bitwise identity of the IEEE-754 representation:
//   - a NaN equals itself, and NaNs with different payloads are distinct
//   - -0.0 and +0.0 are distinct
//
// Ordering follows the IEEE-754 totalOrder predicate over the same bits, so
// Compare reports 0 exactly when Equal reports true. Float64 is comparable
// and can be used as a Go map key with the same semantics.
type Float64 struct {
	bits uint64
}

// NewFloat64 wraps f.
func NewFloat64(f float64) Float64 {
	return Float64{bits: math.Float64bits(f)}
}

// Float returns the wrapped value.
func (f Float64) Float() float64 { return math.Float64frombits(f.bits) }

// Bits returns the IEEE-754 bit pattern.
func (f Float64) Bits() uint64 { return f.bits }

// Equal reports bitwise identity.
func (f Float64) Equal(o Float64) bool { return f.bits == o.bits }

// Compare returns -1, 0 or +1 by IEEE-754 totalOrder.
func (f Float64) Compare(o Float64) int {
	return compareKeys(orderKey(f.bits, 63), orderKey(o.bits, 63))
}

// Less reports whether f sorts before o.
func (f Float64) Less(o Float64) bool { return f.Compare(o) < 0 }

func (f Float64) String() string {
	return strconv.FormatFloat(f.Float(), 'g', -1, 64)
}

// Float32 wraps a float32 with the same policy as Float64.
type Float32 struct {
	bits uint32
}

// NewFloat32 wraps f.
func NewFloat32(f float32) Float32 {
	return Float32{bits: math.Float32bits(f)}
}

// Float returns the wrapped value.
func (f Float32) Float() float32 { return math.Float32frombits(f.bits) }

// Bits returns the IEEE-754 bit pattern.
func (f Float32) Bits() uint32 { return f.bits }

// Equal reports bitwise identity.
func (f Float32) Equal(o Float32) bool { return f.bits == o.bits }

// Compare returns -1, 0 or +1 by IEEE-754 totalOrder.
func (f Float32) Compare(o Float32) int {
	return compareKeys(orderKey(uint64(f.bits), 31), orderKey(uint64(o.bits), 31))
}

// Less reports whether f sorts before o.
func (f Float32) Less(o Float32) bool { return f.Compare(o) < 0 }

func (f Float32) String() string {
	return strconv.FormatFloat(float64(f.Float()), 'g', -1, 32)
}

// orderKey maps a float bit pattern with its sign at bit signBit to an
// unsigned key whose natural order is totalOrder.
func orderKey(bits uint64, signBit uint) uint64 {
	sign := uint64(1) << signBit
	mask := sign<<1 - 1
	if bits&sign != 0 {
		return ^bits & mask
	}
	return bits | sign
}

func compareKeys(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Float64s returns the Equivalence for Float64.
func Float64s() Equivalence[Float64] { return float64Eq{} }

type float64Eq struct{}

func (float64Eq) Hash(h Hasher, v Float64) { h.WriteUint64(v.bits) }
func (float64Eq) Equal(a, b Float64) bool  { return a.bits == b.bits }

// Float32s returns the Equivalence for Float32.
func Float32s() Equivalence[Float32] { return float32Eq{} }

type float32Eq struct{}

func (float32Eq) Hash(h Hasher, v Float32) { h.WriteUint64(uint64(v.bits)) }
func (float32Eq) Equal(a, b Float32) bool  { return a.bits == b.bits }
