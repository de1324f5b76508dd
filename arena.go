package intern

import "strings"

// ExportArena moves all strings into one contiguous arena. The string for
// handle h is arena[offsets[h]:offsets[h+1]]; offsets has Len()+1 entries.
// Like Export, it leaves the Interner empty and reusable.
func ExportArena[T ~string, H Handle](in *Interner[T, H]) (string, []int) {
	total := 0
	for _, v := range in.store.All() {
		total += len(v)
	}

	var sb strings.Builder
	sb.Grow(total)
	offsets := make([]int, 1, in.store.Len()+1)
	for _, v := range in.Export() {
		sb.WriteString(string(v))
		offsets = append(offsets, sb.Len())
	}
	return sb.String(), offsets
}
