package texatlas

// TextureBinPacker arranges a set of source rectangles into a single atlas,
// searching over candidate atlas sizes and placement heuristics until one
// succeeds or the configured maximum size is exceeded.
type TextureBinPacker struct {
	opts Options
}

// NewTextureBinPacker validates opts, fills in defaults, and returns a
// ready-to-use packer.
func NewTextureBinPacker(opts Options) (*TextureBinPacker, error) {
	resolved, err := withDefaults(opts)
	if err != nil {
		return nil, err
	}
	return &TextureBinPacker{opts: resolved}, nil
}

// maxRectsCandidateOrder is the fixed order the general search path tries
// MaxRects heuristics in at each candidate size: BSSF, BLSF, BL, CP, BAF.
// This order is not caller-configurable — a fixed search order is part of
// what makes the general path's result reproducible across callers.
func maxRectsCandidateOrder() []Heuristic {
	return []Heuristic{BestShortSideFit, BestLongSideFit, BottomLeft, ContactPoint, BestAreaFit}
}

// degenerateAtlasSize is the atlas size reported for an empty input slice or
// an input whose total area is zero: just large enough to hold the
// configured border with no interior.
func (p *TextureBinPacker) degenerateAtlasSize() Size {
	return Size{
		W: max(1, p.opts.Border.SumX()),
		H: max(1, p.opts.Border.SumY()),
	}
}

// TryProcess attempts to pack images into a single atlas honoring the
// packer's Options, returning the smallest candidate size (in search order)
// that fit every image.
func (p *TextureBinPacker) TryProcess(images []SourceImage) (PackResult, error) {
	if images == nil {
		return PackResult{}, ErrNilInput
	}
	if len(images) == 0 {
		return PackResult{Valid: true, Size: p.degenerateAtlasSize()}, nil
	}

	sum := summarize(images)
	fp := sum.Fingerprint()

	if sum.totalArea == 0 {
		placements := make([]Placement, len(images))
		for i, img := range images {
			placements[i] = Placement{Source: img, Dest: NewRect(p.opts.Border.Left, p.opts.Border.Top, 0, 0)}
		}
		return PackResult{
			Size:             p.degenerateAtlasSize(),
			Placements:       placements,
			Valid:            true,
			InputFingerprint: fp,
		}, nil
	}

	if sum.isUniform {
		if res, ok := p.tryUniformGrid(images, sum); ok {
			res.InputFingerprint = fp
			return res, nil
		}
	}

	if res, ok := p.tryGeneralSearch(images, sum); ok {
		res.InputFingerprint = fp
		return res, nil
	}

	return PackResult{InputFingerprint: fp}, nil
}

// tryUniformGrid handles the fast path where every input shares the same
// size: the atlas is a near-square grid of cells (each cell the image size
// plus gap) with ceil(sqrt(n)) columns and as many rows as len(images)
// needs, normalized for the restriction, which needs no free-rectangle
// search at all.
func (p *TextureBinPacker) tryUniformGrid(images []SourceImage, sum packSummary) (PackResult, bool) {
	cellW := sum.maxW + p.opts.Gap
	cellH := sum.maxH + p.opts.Gap
	if cellW <= 0 || cellH <= 0 {
		return PackResult{}, false
	}

	n := len(images)
	cols := 1
	for cols*cols < n {
		cols++
	}
	rows := ceilDiv(n, cols)

	innerW := cols*cellW - p.opts.Gap
	innerH := rows*cellH - p.opts.Gap
	size := normalizeSize(Size{
		W: innerW + p.opts.Border.SumX(),
		H: innerH + p.opts.Border.SumY(),
	}, p.opts.Restriction)

	if size.W > p.opts.MaxTextureSize.W || size.H > p.opts.MaxTextureSize.H {
		return PackResult{}, false
	}

	placements := make([]Placement, n)
	for i, img := range images {
		row, col := i/cols, i%cols
		x := p.opts.Border.Left + col*cellW
		y := p.opts.Border.Top + row*cellH
		placements[i] = Placement{
			Source: img,
			Dest:   NewRect(x, y, img.Size.W, img.Size.H),
		}
	}

	if err := newVerifier(size, p.opts.Border).check(placements); err != nil {
		return PackResult{}, false
	}

	return PackResult{Size: size, Placements: placements, Valid: true}, true
}

// tryGeneralSearch walks candidate atlas sizes, attempting every MaxRects
// heuristic at each size before moving on. For Pow2/Pow2Square it falls back
// to the guillotine engine once no MaxRects heuristic has succeeded at any
// size within the configured maximum; the RestrictionAny search instead tries
// the guillotine engine at each candidate size after the MaxRects
// heuristics. RestrictionAny uses an adaptive search that
// grows the candidate area by what the previous attempt actually left
// unplaced; Pow2/Pow2Square enumerate the fixed doubling queue instead, since
// their candidate sizes are already constrained to a short, discrete list.
func (p *TextureBinPacker) tryGeneralSearch(images []SourceImage, sum packSummary) (PackResult, bool) {
	maxSideAll := 0
	for _, img := range images {
		maxSideAll = max(maxSideAll, img.Size.MaxSide())
	}

	minSize := calcMinimumTextureSize(sum.totalArea, maxSideAll, p.opts.Border, p.opts.Restriction)
	if minSize.W < p.opts.MinTextureSize.W {
		minSize.W = p.opts.MinTextureSize.W
	}
	if minSize.H < p.opts.MinTextureSize.H {
		minSize.H = p.opts.MinTextureSize.H
	}
	minSize = normalizeSize(minSize, p.opts.Restriction)

	order := sortForPacking(images)
	sizes := make([]Size, len(images))
	for i, img := range images {
		sizes[i] = img.Size
	}

	if p.opts.Restriction == RestrictionAny {
		return p.tryAdaptiveAnySearch(minSize, maxSideAll, images, order, sizes)
	}

	candidates := enqueuePotentialSizes(minSize, p.opts.MaxTextureSize, p.opts.Restriction)

	for _, candidate := range candidates {
		innerSize := Size{W: candidate.W - p.opts.Border.SumX(), H: candidate.H - p.opts.Border.SumY()}
		if innerSize.Degenerate() {
			continue
		}

		for _, heuristic := range maxRectsCandidateOrder() {
			if res, ok, _ := p.tryMaxRectsAt(candidate, innerSize, images, order, sizes, heuristic); ok {
				return res, true
			}
		}
	}

	for _, candidate := range candidates {
		innerSize := Size{W: candidate.W - p.opts.Border.SumX(), H: candidate.H - p.opts.Border.SumY()}
		if innerSize.Degenerate() {
			continue
		}
		if res, ok, _ := p.tryGuillotineAt(candidate, innerSize, images, order, sizes); ok {
			return res, true
		}
	}

	return PackResult{}, false
}

// tryAdaptiveAnySearch is the RestrictionAny fallback search: try a single
// candidate size derived from the current minimum area, and if every
// heuristic fails to place every image, grow that area by at least a tenth
// of whatever area the best-performing heuristic this round left unplaced
// (floor 1) before recomputing the next candidate. This converges on inputs
// that need much more area than the naive minimum suggests far faster than
// growing by a fixed fraction of the side every round.
func (p *TextureBinPacker) tryAdaptiveAnySearch(minSize Size, maxSideAll int, images []SourceImage, order []int, sizes []Size) (PackResult, bool) {
	minArea := int64(minSize.W) * int64(minSize.H)

	for {
		candidate := calcMinimumTextureSize(minArea, maxSideAll, p.opts.Border, RestrictionAny)
		if candidate.W < minSize.W {
			candidate.W = minSize.W
		}
		if candidate.H < minSize.H {
			candidate.H = minSize.H
		}
		if candidate.W > p.opts.MaxTextureSize.W || candidate.H > p.opts.MaxTextureSize.H {
			return PackResult{}, false
		}

		innerSize := Size{W: candidate.W - p.opts.Border.SumX(), H: candidate.H - p.opts.Border.SumY()}
		if innerSize.Degenerate() {
			minArea += max(minArea/10, 1)
			continue
		}

		missingUnplacedArea := int64(-1)
		for _, heuristic := range maxRectsCandidateOrder() {
			res, ok, unplaced := p.tryMaxRectsAt(candidate, innerSize, images, order, sizes, heuristic)
			if ok {
				return res, true
			}
			if missingUnplacedArea < 0 || unplaced < missingUnplacedArea {
				missingUnplacedArea = unplaced
			}
		}

		if res, ok, unplaced := p.tryGuillotineAt(candidate, innerSize, images, order, sizes); ok {
			return res, true
		} else if missingUnplacedArea < 0 || unplaced < missingUnplacedArea {
			missingUnplacedArea = unplaced
		}

		minArea += max(missingUnplacedArea/10, 1)
	}
}

// tryMaxRectsAt attempts every image against a single MaxRects heuristic at
// candidate. unplacedArea is the gap-inflated area of every image that
// didn't fit, populated only when ok is false.
func (p *TextureBinPacker) tryMaxRectsAt(candidate, innerSize Size, images []SourceImage, order []int, sizes []Size, heuristic Heuristic) (result PackResult, ok bool, unplacedArea int64) {
	engine, err := NewMaxRectsEngine(innerSize, heuristic, p.opts.AllowRotate)
	if err != nil {
		return PackResult{}, false, 0
	}

	ordered := make([]Size, len(order))
	for i, idx := range order {
		ordered[i] = withGap(sizes[idx], p.opts.Gap)
	}

	results := engine.InsertBatch(ordered)

	placements := make([]Placement, len(images))
	fits := true
	for i, idx := range order {
		r := results[i]
		if !r.OK {
			fits = false
			unplacedArea += ordered[i].Area()
			continue
		}
		placements[idx] = toPlacement(images[idx], r.Dest, r.Rotated, p.opts.Border, p.opts.Gap)
	}
	if !fits {
		return PackResult{}, false, unplacedArea
	}

	if err := newVerifier(candidate, p.opts.Border).check(placements); err != nil {
		return PackResult{}, false, 0
	}

	return PackResult{Size: candidate, Placements: placements, Valid: true}, true, 0
}

// tryGuillotineAt is tryMaxRectsAt's guillotine-engine counterpart.
func (p *TextureBinPacker) tryGuillotineAt(candidate, innerSize Size, images []SourceImage, order []int, sizes []Size) (result PackResult, ok bool, unplacedArea int64) {
	engine, err := NewGuillotineEngine(innerSize, p.opts.GuillotinePlacement, p.opts.GuillotineSplit, p.opts.AllowRotate, p.opts.GuillotineMerge)
	if err != nil {
		return PackResult{}, false, 0
	}

	ordered := make([]Size, len(order))
	for i, idx := range order {
		ordered[i] = withGap(sizes[idx], p.opts.Gap)
	}

	results := engine.InsertBatch(ordered)

	placements := make([]Placement, len(images))
	fits := true
	for i, idx := range order {
		r := results[i]
		if !r.OK {
			fits = false
			unplacedArea += ordered[i].Area()
			continue
		}
		placements[idx] = toPlacement(images[idx], r.Dest, r.Rotated, p.opts.Border, p.opts.Gap)
	}
	if !fits {
		return PackResult{}, false, unplacedArea
	}

	if err := newVerifier(candidate, p.opts.Border).check(placements); err != nil {
		return PackResult{}, false, 0
	}

	return PackResult{Size: candidate, Placements: placements, Valid: true}, true, 0
}

// withGap inflates size by the configured gap so adjacent placements end up
// separated once the gap-inclusive rectangle is trimmed back down.
func withGap(size Size, gap int) Size {
	return Size{W: size.W + gap, H: size.H + gap}
}

// toPlacement converts an engine-reported destination (inflated by gap, and
// relative to the engine's border-free interior) back into border-relative,
// gap-trimmed atlas coordinates. Dest.W/H reflect the footprint as placed —
// already swapped for rotation — so a caller blits using Dest's dimensions
// directly and only consults Rotated to know which source axis maps to
// which.
func toPlacement(img SourceImage, dest Rect, rotated bool, border Thickness, gap int) Placement {
	return Placement{
		Source:  img,
		Dest:    NewRect(dest.X+border.Left, dest.Y+border.Top, dest.W-gap, dest.H-gap),
		Rotated: rotated,
	}
}
