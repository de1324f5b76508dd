package conv

import "math/bits"

// Integer is the set of built-in integer kinds usable as handles.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// ToHandle converts a position to H safely.
//
// It reports false if pos is negative or does not round-trip through H.
func ToHandle[H Integer](pos int) (H, bool) {
	if pos < 0 {
		return 0, false
	}
	h := H(pos)
	// Signed H wraps to negative, narrower H loses high bits.
	if h < 0 || int(h) != pos {
		return 0, false
	}
	return h, true
}

// FromHandle converts a handle to a position safely.
//
// It reports false if h is negative or exceeds math.MaxInt.
func FromHandle[H Integer](h H) (int, bool) {
	if h < 0 {
		return 0, false
	}
	pos := int(h)
	if pos < 0 || H(pos) != h {
		return 0, false
	}
	return pos, true
}

// Width returns the bit width of H.
func Width[H Integer]() int {
	n := 0
	for h := H(1); h != 0; h <<= 1 {
		n++
	}
	return n
}

// Fits reports whether every non-negative value of H is addressable by a
// native int position on this platform.
func Fits[H Integer]() bool {
	return Width[H]() <= bits.UintSize
}

// MaxPosition returns the largest position representable by H, capped at
// math.MaxInt.
func MaxPosition[H Integer]() int {
	w := Width[H]()
	if H(0)-1 < 0 {
		// Signed: one bit is the sign.
		w--
	}
	if w >= bits.UintSize-1 {
		return int(^uint(0) >> 1)
	}
	return 1<<w - 1
}
