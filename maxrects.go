package texatlas

// MaxRectsEngine packs rectangles into a fixed-size bin by tracking the set
// of maximal free rectangles that remain after each placement. Free
// rectangles are allowed to overlap one another; pruneFreeList removes any
// that have become fully contained within another after a split.
//
// The zero value is not usable; construct with NewMaxRectsEngine.
type MaxRectsEngine struct {
	binW, binH  int
	allowRotate bool
	heuristic   Heuristic
	used        []Rect
	free        []Rect
}

// NewMaxRectsEngine creates an engine for a bin of the given size.
func NewMaxRectsEngine(binSize Size, heuristic Heuristic, allowRotate bool) (*MaxRectsEngine, error) {
	if !heuristic.valid() {
		return nil, ErrUnsupportedHeuristic
	}
	e := &MaxRectsEngine{
		binW:        binSize.W,
		binH:        binSize.H,
		allowRotate: allowRotate,
		heuristic:   heuristic,
	}
	e.Reset(binSize)
	return e, nil
}

// Reset clears all placements and reinitializes the engine for a bin of the
// given size.
func (e *MaxRectsEngine) Reset(binSize Size) {
	e.binW, e.binH = binSize.W, binSize.H
	e.used = e.used[:0]
	e.free = append(e.free[:0], NewRect(0, 0, binSize.W, binSize.H))
}

// Occupancy returns the fraction of the bin's area currently covered by
// placed rectangles, in [0, 1].
func (e *MaxRectsEngine) Occupancy() float64 {
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

// Insert places a single rectangle of the given size, returning its
// destination and whether it needed to be rotated 90 degrees. ok is false if
// no free rectangle could accommodate the size in either orientation.
func (e *MaxRectsEngine) Insert(size Size) (dest Rect, rotated bool, ok bool) {
	best, bestRotated, score1, _, found := e.scoreBest(size)
	if !found {
		return Rect{}, false, false
	}
	e.placeInto(best)
	_ = score1
	return best, bestRotated, true
}

// InsertBatch places every size from sizes, choosing at each step the size
// and free rectangle pair with the globally best score: an offline strategy
// that scans all remaining candidates instead of inserting in caller-given
// order. The returned slice has one entry per input size, in input order;
// an entry's OK field is false if that size could never be placed.
func (e *MaxRectsEngine) InsertBatch(sizes []Size) []InsertResult {
	results := make([]InsertResult, len(sizes))

	remaining := make([]int, 0, len(sizes))
	for i := range sizes {
		remaining = append(remaining, i)
	}

	for len(remaining) > 0 {
		bestIdx := -1
		var bestRect Rect
		var bestRotated bool
		var bestScore1, bestScore2 int
		found := false

		for _, idx := range remaining {
			rect, rotated, s1, s2, ok := e.scoreBest(sizes[idx])
			if !ok {
				continue
			}
			if !found || s1 < bestScore1 || (s1 == bestScore1 && s2 < bestScore2) {
				found = true
				bestIdx = idx
				bestRect = rect
				bestRotated = rotated
				bestScore1 = s1
				bestScore2 = s2
			}
		}

		if !found {
			break
		}

		e.placeInto(bestRect)
		results[bestIdx] = InsertResult{Dest: bestRect, Rotated: bestRotated, OK: true}

		for i, idx := range remaining {
			if idx == bestIdx {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}

	return results
}

// scoreBest finds the best-scoring placement of size among the current free
// rectangles, trying both orientations when rotation is allowed. Lower
// scores win; ContactPoint is the one heuristic where higher is better, and
// is negated here so the same "lower wins" comparison works uniformly.
func (e *MaxRectsEngine) scoreBest(size Size) (dest Rect, rotated bool, score1, score2 int, ok bool) {
	bestScore1, bestScore2 := int(^uint(0)>>1), int(^uint(0)>>1)
	found := false

	try := func(w, h int, asRotated bool) {
		for _, f := range e.free {
			if f.W < w || f.H < h {
				continue
			}
			s1, s2 := e.score(f, w, h)
			if !found || s1 < bestScore1 || (s1 == bestScore1 && s2 < bestScore2) {
				found = true
				bestScore1, bestScore2 = s1, s2
				dest = NewRect(f.X, f.Y, w, h)
				rotated = asRotated
			}
		}
	}

	try(size.W, size.H, false)
	if e.allowRotate && size.W != size.H {
		try(size.H, size.W, true)
	}

	return dest, rotated, bestScore1, bestScore2, found
}

// score computes the two-tier score for placing a wxh rectangle into free
// rectangle f, per e.heuristic. Lower is better for both components.
func (e *MaxRectsEngine) score(f Rect, w, h int) (score1, score2 int) {
	switch e.heuristic {
	case BestShortSideFit:
		leftoverW := f.W - w
		leftoverH := f.H - h
		return min(leftoverW, leftoverH), max(leftoverW, leftoverH)
	case BestLongSideFit:
		leftoverW := f.W - w
		leftoverH := f.H - h
		return max(leftoverW, leftoverH), min(leftoverW, leftoverH)
	case BestAreaFit:
		leftoverArea := int(f.Area() - Size{W: w, H: h}.Area())
		leftoverW := f.W - w
		leftoverH := f.H - h
		return leftoverArea, min(leftoverW, leftoverH)
	case BottomLeft:
		return f.Y + h, f.X
	case ContactPoint:
		return -e.contactScore(f, w, h), 0
	default:
		return int(^uint(0) >> 1), int(^uint(0) >> 1)
	}
}

// contactScore measures how much of the placed rectangle's border would
// touch either the bin edges or another already-placed rectangle.
func (e *MaxRectsEngine) contactScore(f Rect, w, h int) int {
	candidate := NewRect(f.X, f.Y, w, h)
	score := 0

	if candidate.X == 0 {
		score += candidate.H
	}
	if candidate.Y == 0 {
		score += candidate.W
	}
	if candidate.Right() == e.binW {
		score += candidate.H
	}
	if candidate.Bottom() == e.binH {
		score += candidate.W
	}

	for _, u := range e.used {
		if u.X == candidate.Right() || candidate.X == u.Right() {
			score += commonIntervalLength(u.Y, u.Bottom(), candidate.Y, candidate.Bottom())
		}
		if u.Y == candidate.Bottom() || candidate.Y == u.Bottom() {
			score += commonIntervalLength(u.X, u.Right(), candidate.X, candidate.Right())
		}
	}

	return score
}

// placeInto records rect as used and splits every free rectangle that
// overlaps it, then prunes any free rectangle that became contained in
// another.
func (e *MaxRectsEngine) placeInto(rect Rect) {
	e.used = append(e.used, rect)

	var next []Rect
	for _, f := range e.free {
		if !f.Intersects(rect) {
			next = append(next, f)
			continue
		}
		next = append(next, splitFreeNode(f, rect)...)
	}
	e.free = next
	e.free = pruneFreeList(e.free)
}

// splitFreeNode returns up to four residual rectangles left over after
// carving used out of the interior of free. Each side of free that used does
// not reach contributes one slab; a side that used covers contributes
// nothing. If used does not overlap free, free is returned unchanged.
func splitFreeNode(free, used Rect) []Rect {
	var out []Rect

	if used.X < free.Right() && used.Right() > free.X &&
		used.Y < free.Bottom() && used.Bottom() > free.Y {
		if used.X > free.X {
			out = append(out, NewRect(free.X, free.Y, used.X-free.X, free.H))
		}
		if used.Right() < free.Right() {
			out = append(out, NewRect(used.Right(), free.Y, free.Right()-used.Right(), free.H))
		}
		if used.Y > free.Y {
			out = append(out, NewRect(free.X, free.Y, free.W, used.Y-free.Y))
		}
		if used.Bottom() < free.Bottom() {
			out = append(out, NewRect(free.X, used.Bottom(), free.W, free.Bottom()-used.Bottom()))
		}
		return out
	}

	return []Rect{free}
}

// pruneFreeList removes every free rectangle that is fully contained within
// another, an O(n^2) pass that keeps the free list free of redundant
// entries after repeated splits.
func pruneFreeList(free []Rect) []Rect {
	out := make([]Rect, 0, len(free))
	for i, r := range free {
		contained := false
		for j, other := range free {
			if i == j {
				continue
			}
			if other.ContainsRect(r) && !(r.ContainsRect(other) && i > j) {
				contained = true
				break
			}
		}
		if !contained {
			out = append(out, r)
		}
	}
	return out
}
