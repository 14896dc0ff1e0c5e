package texatlas

// Heuristic selects how MaxRectsEngine scores candidate free rectangles
// when choosing where to place the next image.
type Heuristic int

const (
	// BestShortSideFit picks the free rectangle that minimizes the leftover
	// length along the shorter axis.
	BestShortSideFit Heuristic = iota
	// BestLongSideFit picks the free rectangle that minimizes the leftover
	// length along the longer axis.
	BestLongSideFit
	// BestAreaFit picks the free rectangle with the smallest leftover area.
	BestAreaFit
	// BottomLeft picks the placement with the smallest resulting Y, then
	// the smallest X, favoring a packing that grows left-to-right along
	// the bottom.
	BottomLeft
	// ContactPoint picks the placement that maximizes shared edge length
	// with already-placed rectangles and the bin border.
	ContactPoint
)

func (h Heuristic) valid() bool {
	switch h {
	case BestShortSideFit, BestLongSideFit, BestAreaFit, BottomLeft, ContactPoint:
		return true
	default:
		return false
	}
}

func (h Heuristic) String() string {
	switch h {
	case BestShortSideFit:
		return "BestShortSideFit"
	case BestLongSideFit:
		return "BestLongSideFit"
	case BestAreaFit:
		return "BestAreaFit"
	case BottomLeft:
		return "BottomLeft"
	case ContactPoint:
		return "ContactPoint"
	default:
		return "Invalid"
	}
}

// PlacementHeuristic selects how GuillotineEngine scores candidate free
// rectangles. The Worst* variants are a guillotine-specific idea: picking the
// loosest fit on purpose leaves the remaining free list easier to split
// without fragmenting into slivers.
type PlacementHeuristic int

const (
	// GuillotineBestAreaFit picks the free rectangle with the smallest
	// leftover area.
	GuillotineBestAreaFit PlacementHeuristic = iota
	// GuillotineBestShortSideFit picks the free rectangle that minimizes
	// leftover along the shorter axis.
	GuillotineBestShortSideFit
	// GuillotineBestLongSideFit picks the free rectangle that minimizes
	// leftover along the longer axis.
	GuillotineBestLongSideFit
	// GuillotineWorstAreaFit picks the free rectangle with the largest
	// leftover area.
	GuillotineWorstAreaFit
	// GuillotineWorstShortSideFit picks the free rectangle that maximizes
	// leftover along the shorter axis.
	GuillotineWorstShortSideFit
	// GuillotineWorstLongSideFit picks the free rectangle that maximizes
	// leftover along the longer axis.
	GuillotineWorstLongSideFit
)

func (h PlacementHeuristic) valid() bool {
	switch h {
	case GuillotineBestAreaFit, GuillotineBestShortSideFit, GuillotineBestLongSideFit,
		GuillotineWorstAreaFit, GuillotineWorstShortSideFit, GuillotineWorstLongSideFit:
		return true
	default:
		return false
	}
}

func (h PlacementHeuristic) String() string {
	switch h {
	case GuillotineBestAreaFit:
		return "BestAreaFit"
	case GuillotineBestShortSideFit:
		return "BestShortSideFit"
	case GuillotineBestLongSideFit:
		return "BestLongSideFit"
	case GuillotineWorstAreaFit:
		return "WorstAreaFit"
	case GuillotineWorstShortSideFit:
		return "WorstShortSideFit"
	case GuillotineWorstLongSideFit:
		return "WorstLongSideFit"
	default:
		return "Invalid"
	}
}

// SplitHeuristic selects which of the two residual rectangles produced by a
// guillotine split gets the full leftover length along the chosen split
// axis, and which axis is chosen.
type SplitHeuristic int

const (
	// SplitShorterLeftoverAxis splits along the axis that leaves the
	// shorter leftover length.
	SplitShorterLeftoverAxis SplitHeuristic = iota
	// SplitLongerLeftoverAxis splits along the axis that leaves the longer
	// leftover length.
	SplitLongerLeftoverAxis
	// SplitMinimizeArea splits so the smaller of the two resulting free
	// rectangles has the smallest possible area.
	SplitMinimizeArea
	// SplitMaximizeArea splits so the smaller of the two resulting free
	// rectangles has the largest possible area.
	SplitMaximizeArea
	// SplitShorterAxis always splits along the free rectangle's shorter
	// axis.
	SplitShorterAxis
	// SplitLongerAxis always splits along the free rectangle's longer
	// axis.
	SplitLongerAxis
)

func (h SplitHeuristic) valid() bool {
	switch h {
	case SplitShorterLeftoverAxis, SplitLongerLeftoverAxis, SplitMinimizeArea,
		SplitMaximizeArea, SplitShorterAxis, SplitLongerAxis:
		return true
	default:
		return false
	}
}

func (h SplitHeuristic) String() string {
	switch h {
	case SplitShorterLeftoverAxis:
		return "ShorterLeftoverAxis"
	case SplitLongerLeftoverAxis:
		return "LongerLeftoverAxis"
	case SplitMinimizeArea:
		return "MinimizeArea"
	case SplitMaximizeArea:
		return "MaximizeArea"
	case SplitShorterAxis:
		return "ShorterAxis"
	case SplitLongerAxis:
		return "LongerAxis"
	default:
		return "Invalid"
	}
}
