package texatlas

// GuillotineEngine packs rectangles into a fixed-size bin by repeatedly
// slicing a chosen free rectangle along a single straight line, so the free
// list stays disjoint (unlike MaxRectsEngine's overlapping free list) at the
// cost of sometimes fragmenting space that a non-guillotine cut could have
// kept whole.
type GuillotineEngine struct {
	binW, binH  int
	allowRotate bool
	placement   PlacementHeuristic
	split       SplitHeuristic
	merge       bool
	used        []Rect
	free        []Rect
}

// NewGuillotineEngine creates an engine for a bin of the given size. merge
// enables coalescing adjacent free rectangles back together after a split.
func NewGuillotineEngine(binSize Size, placement PlacementHeuristic, split SplitHeuristic, allowRotate, merge bool) (*GuillotineEngine, error) {
	if !placement.valid() {
		return nil, ErrUnsupportedPlacementHeuristic
	}
	if !split.valid() {
		return nil, ErrUnsupportedSplitHeuristic
	}
	e := &GuillotineEngine{
		allowRotate: allowRotate,
		placement:   placement,
		split:       split,
		merge:       merge,
	}
	e.Reset(binSize)
	return e, nil
}

// Reset clears all placements and reinitializes the engine for a bin of the
// given size.
func (e *GuillotineEngine) Reset(binSize Size) {
	e.binW, e.binH = binSize.W, binSize.H
	e.used = e.used[:0]
	e.free = append(e.free[:0], NewRect(0, 0, binSize.W, binSize.H))
}

// Occupancy returns the fraction of the bin's area currently covered by
// placed rectangles, in [0, 1].
func (e *GuillotineEngine) Occupancy() float64 {
	binArea := Size{W: e.binW, H: e.binH}.Area()
	if binArea == 0 {
		return 0
	}
	var usedArea int64
	for _, r := range e.used {
		usedArea += r.Area()
	}
	return float64(usedArea) / float64(binArea)
}

// Insert places a single rectangle of the given size. ok is false if no free
// rectangle could accommodate the size in either allowed orientation.
func (e *GuillotineEngine) Insert(size Size) (dest Rect, rotated bool, ok bool) {
	idx, w, h, rot, found := e.pickFree(size)
	if !found {
		return Rect{}, false, false
	}
	return e.placeAt(idx, w, h, rot), rot, true
}

// InsertBatch places every size from sizes in input order, skipping any that
// cannot fit. Unlike MaxRectsEngine.InsertBatch, it does not re-scan all
// remaining items globally: each item in turn goes to its best-scoring free
// rectangle, exactly as Insert would place it.
func (e *GuillotineEngine) InsertBatch(sizes []Size) []InsertResult {
	results := make([]InsertResult, len(sizes))

	for i, sz := range sizes {
		dest, rotated, ok := e.Insert(sz)
		results[i] = InsertResult{Dest: dest, Rotated: rotated, OK: ok}
	}

	return results
}

// pickFree finds the index into e.free, the orientation, and the resulting
// score-best placement for size.
func (e *GuillotineEngine) pickFree(size Size) (idx, w, h int, rotated, ok bool) {
	bestScore1, bestScore2 := int(^uint(0)>>1), int(^uint(0)>>1)
	found := false

	try := func(cw, ch int, asRotated bool) {
		for i, f := range e.free {
			if f.W < cw || f.H < ch {
				continue
			}
			s1, s2 := e.score(f, cw, ch)
			if !found || s1 < bestScore1 || (s1 == bestScore1 && s2 < bestScore2) {
				found = true
				bestScore1, bestScore2 = s1, s2
				idx, w, h, rotated = i, cw, ch, asRotated
			}
		}
	}

	try(size.W, size.H, false)
	if e.allowRotate && size.W != size.H {
		try(size.H, size.W, true)
	}

	return idx, w, h, rotated, found
}

// score computes the two-tier placement score for fitting a wxh rectangle
// into free rectangle f. Worst* variants negate the primary component so
// the shared "lower wins" comparison picks the loosest fit instead of the
// tightest.
func (e *GuillotineEngine) score(f Rect, w, h int) (score1, score2 int) {
	leftoverW := f.W - w
	leftoverH := f.H - h
	shortSide := min(leftoverW, leftoverH)
	longSide := max(leftoverW, leftoverH)
	area := int(f.Area() - Size{W: w, H: h}.Area())

	switch e.placement {
	case GuillotineBestAreaFit:
		return area, shortSide
	case GuillotineBestShortSideFit:
		return shortSide, longSide
	case GuillotineBestLongSideFit:
		return longSide, shortSide
	case GuillotineWorstAreaFit:
		return -area, -shortSide
	case GuillotineWorstShortSideFit:
		return -shortSide, -longSide
	case GuillotineWorstLongSideFit:
		return -longSide, -shortSide
	default:
		return int(^uint(0) >> 1), int(^uint(0) >> 1)
	}
}

// placeAt commits a placement of a w x h rectangle into e.free[idx],
// removing that free rectangle and replacing it with the splits produced by
// splitGuillotine.
func (e *GuillotineEngine) placeAt(idx, w, h int, rotated bool) Rect {
	f := e.free[idx]
	dest := NewRect(f.X, f.Y, w, h)
	e.used = append(e.used, dest)

	e.free = append(e.free[:idx], e.free[idx+1:]...)
	e.free = append(e.free, splitGuillotine(f, dest, e.split)...)

	if e.merge {
		e.free = mergeFreeList(e.free)
	}

	return dest
}

// splitGuillotine carves used out of the corner of free and returns the (at
// most two) leftover rectangles, choosing the split axis per split.
func splitGuillotine(free, used Rect, split SplitHeuristic) []Rect {
	rightW := free.W - used.W
	bottomH := free.H - used.H

	var splitHorizontal bool
	switch split {
	case SplitShorterLeftoverAxis:
		splitHorizontal = rightW <= bottomH
	case SplitLongerLeftoverAxis:
		splitHorizontal = rightW > bottomH
	case SplitShorterAxis:
		splitHorizontal = free.W <= free.H
	case SplitLongerAxis:
		splitHorizontal = free.W > free.H
	case SplitMinimizeArea:
		areaRightTall := rightW * used.H
		areaBottomWide := used.W * bottomH
		splitHorizontal = areaBottomWide > areaRightTall
	case SplitMaximizeArea:
		areaRightTall := rightW * used.H
		areaBottomWide := used.W * bottomH
		splitHorizontal = areaBottomWide <= areaRightTall
	default:
		splitHorizontal = rightW <= bottomH
	}

	var out []Rect
	if splitHorizontal {
		// Horizontal cut: right piece spans the used height, bottom piece
		// spans the full free width.
		if rightW > 0 {
			out = append(out, NewRect(used.Right(), free.Y, rightW, used.H))
		}
		if bottomH > 0 {
			out = append(out, NewRect(free.X, used.Bottom(), free.W, bottomH))
		}
	} else {
		// Vertical cut: right piece spans the full free height, bottom
		// piece spans the used width only.
		if rightW > 0 {
			out = append(out, NewRect(used.Right(), free.Y, rightW, free.H))
		}
		if bottomH > 0 {
			out = append(out, NewRect(free.X, used.Bottom(), used.W, bottomH))
		}
	}

	return out
}

// mergeFreeList coalesces pairs of free rectangles that share a full edge
// back into a single larger rectangle, repeating its O(n^2) pass until a
// pass finds nothing left to merge.
func mergeFreeList(free []Rect) []Rect {
	merged := append([]Rect(nil), free...)

	for {
		didMerge := false
		for i := 0; i < len(merged) && !didMerge; i++ {
			for j := i + 1; j < len(merged); j++ {
				a, b := merged[i], merged[j]
				if combined, ok := mergeTwo(a, b); ok {
					merged[i] = combined
					merged = append(merged[:j], merged[j+1:]...)
					didMerge = true
					break
				}
			}
		}
		if !didMerge {
			break
		}
	}

	return merged
}

// mergeTwo returns the union of a and b when they share a full-length edge
// and are therefore mergeable into one rectangle.
func mergeTwo(a, b Rect) (Rect, bool) {
	if a.Y == b.Y && a.H == b.H {
		if a.Right() == b.X {
			return NewRect(a.X, a.Y, a.W+b.W, a.H), true
		}
		if b.Right() == a.X {
			return NewRect(b.X, b.Y, a.W+b.W, a.H), true
		}
	}
	if a.X == b.X && a.W == b.W {
		if a.Bottom() == b.Y {
			return NewRect(a.X, a.Y, a.W, a.H+b.H), true
		}
		if b.Bottom() == a.Y {
			return NewRect(b.X, b.Y, a.W, a.H+b.H), true
		}
	}
	return Rect{}, false
}
