package texatlas

import "sort"

// sortForPacking returns a permutation of indices into images, ordered so
// that larger, harder-to-place rectangles are considered first: by
// descending area, tie-broken by a composite height/width priority
// (h*16384+w, descending). Packing the biggest pieces first leaves the most
// flexibility for the smaller ones that follow.
func sortForPacking(images []SourceImage) []int {
	idx := make([]int, len(images))
	for i := range idx {
		idx[i] = i
	}

	priority := func(s Size) int64 {
		return int64(s.H)*16384 + int64(s.W)
	}

	sort.SliceStable(idx, func(a, b int) bool {
		sa, sb := images[idx[a]].Size, images[idx[b]].Size
		if aa, ab := sa.Area(), sb.Area(); aa != ab {
			return aa > ab
		}
		return priority(sa) > priority(sb)
	})

	return idx
}
