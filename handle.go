package intern

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Handle is the set of integer types an Interner can issue.
//
// Choose the narrowest type that fits the expected number of unique values.
// Handles exchanged between processes of different word sizes must avoid int,
// uint and uintptr.
type Handle interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// RepairHandles adjusts handles issued before the value at position removed
// was deleted. Every handle greater than removed is decremented by one.
//
// Handles equal to removed are left unchanged; they no longer name the value
// they were issued for. RepairHandles returns their indices in handles so the
// caller can drop or replace them. The result is nil when there are none.
func RepairHandles[H Handle](handles []H, removed H) []int {
	var stale []int
	for i, h := range handles {
		switch {
		case h > removed:
			handles[i] = h - 1
		case h == removed:
			stale = append(stale, i)
		}
	}
	return stale
}

// RepairBitmap applies the same shift to a set of 32-bit handles.
//
// A set cannot keep the stale handle without colliding with its shifted
// successor, so removed is dropped from bm. RepairBitmap reports whether it
// was present.
func RepairBitmap(bm *roaring.Bitmap, removed uint32) bool {
	stale := bm.Contains(removed)
	if bm.IsEmpty() || bm.Maximum() < removed {
		return stale
	}

	above := bm.Clone()
	above.RemoveRange(0, uint64(removed)+1)
	bm.RemoveRange(uint64(removed), math.MaxUint32+1)

	it := above.Iterator()
	for it.HasNext() {
		bm.Add(it.Next() - 1)
	}
	return stale
}
