package intern

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
)

func TestRepairHandles(t *testing.T) {
	tests := []struct {
		name      string
		handles   []uint16
		removed   uint16
		want      []uint16
		wantStale []int
	}{
		{"shift above", []uint16{1, 2}, 0, []uint16{0, 1}, nil},
		{"below untouched", []uint16{0, 1, 5}, 3, []uint16{0, 1, 4}, nil},
		{"equal reported", []uint16{2, 4, 2, 1}, 2, []uint16{2, 3, 2, 1}, []int{0, 2}},
		{"empty", nil, 0, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stale := RepairHandles(tt.handles, tt.removed)
			assert.Equal(t, tt.want, tt.handles)
			assert.Equal(t, tt.wantStale, stale)
		})
	}
}

func TestRepairHandles_Signed(t *testing.T) {
	handles := []int8{-1, 0, 1, 127}
	stale := RepairHandles(handles, 0)
	assert.Equal(t, []int8{-1, 0, 0, 126}, handles)
	assert.Equal(t, []int{1}, stale)
}

func TestRepairBitmap(t *testing.T) {
	t.Run("shift and drop", func(t *testing.T) {
		bm := roaring.BitmapOf(0, 2, 3, 10)
		assert.True(t, RepairBitmap(bm, 2))
		assert.Equal(t, []uint32{0, 2, 9}, bm.ToArray())
	})

	t.Run("not present", func(t *testing.T) {
		bm := roaring.BitmapOf(1, 5)
		assert.False(t, RepairBitmap(bm, 3))
		assert.Equal(t, []uint32{1, 4}, bm.ToArray())
	})

	t.Run("above maximum", func(t *testing.T) {
		bm := roaring.BitmapOf(1, 5)
		assert.False(t, RepairBitmap(bm, 9))
		assert.Equal(t, []uint32{1, 5}, bm.ToArray())
	})

	t.Run("empty", func(t *testing.T) {
		bm := roaring.New()
		assert.False(t, RepairBitmap(bm, 0))
		assert.True(t, bm.IsEmpty())
	})

	t.Run("matches interner", func(t *testing.T) {
		in := newStrings(t)
		for _, v := range []string{"hello", "world", "cat", "dog"} {
			_, _ = in.InternOwned(v)
		}
		live := roaring.BitmapOf(1, 2, 3)

		_, ok := in.Remove(1)
		assert.True(t, ok)
		assert.True(t, RepairBitmap(live, 1))

		var got []string
		it := live.Iterator()
		for it.HasNext() {
			v, ok := in.Resolve(it.Next())
			assert.True(t, ok)
			got = append(got, v)
		}
		assert.Equal(t, []string{"cat", "dog"}, got)
	})
}
