package texatlas

// SourceImage is a single rectangle to be placed into the atlas, tagged with
// an opaque caller-supplied handle that is echoed back unchanged on the
// resulting Placement.
type SourceImage struct {
	// Tag identifies the caller's image. It is never inspected or compared
	// by this package, only copied onto the resulting Placement.
	Tag any
	// Size is the rectangle's width/height before any rotation.
	Size Size
}

// Placement records where a SourceImage ended up inside the atlas.
type Placement struct {
	Source  SourceImage
	Dest    Rect
	Rotated bool
}

// InsertResult is one engine's answer for a single requested size: where it
// landed, whether it was rotated, and whether it fit at all.
type InsertResult struct {
	Dest    Rect
	Rotated bool
	OK      bool
}

// TextureSizeRestriction constrains which atlas dimensions the planner will
// consider.
type TextureSizeRestriction int

const (
	// RestrictionAny allows any positive integer dimensions.
	RestrictionAny TextureSizeRestriction = iota
	// RestrictionPow2 requires both dimensions to be a power of two.
	RestrictionPow2
	// RestrictionPow2Square requires both dimensions to be an equal power
	// of two.
	RestrictionPow2Square
)

func (r TextureSizeRestriction) valid() bool {
	switch r {
	case RestrictionAny, RestrictionPow2, RestrictionPow2Square:
		return true
	default:
		return false
	}
}

func (r TextureSizeRestriction) String() string {
	switch r {
	case RestrictionAny:
		return "Any"
	case RestrictionPow2:
		return "Pow2"
	case RestrictionPow2Square:
		return "Pow2Square"
	default:
		return "Invalid"
	}
}

// PackResult is the outcome of a TryProcess call.
type PackResult struct {
	// Size is the chosen atlas dimensions. Meaningless when Valid is false.
	Size Size
	// Placements holds one entry per input SourceImage, in input order.
	Placements []Placement
	// Valid is false when no packing could be found within the configured
	// constraints; Size and Placements should not be relied upon.
	Valid bool
	// InputFingerprint is a stable hash of the (sorted, summarized) input
	// set, letting a caller cheaply recognize repeated calls with
	// unchanged inputs. See packSummary.Fingerprint.
	InputFingerprint uint64
}

// packSummary captures aggregate properties of the input set used to pick a
// fast path and to seed the candidate-size search.
type packSummary struct {
	images    []SourceImage
	minW      int
	minH      int
	maxW      int
	maxH      int
	totalArea int64
	isUniform bool
}

func summarize(images []SourceImage) packSummary {
	sum := packSummary{images: images, isUniform: true}
	if len(images) == 0 {
		return sum
	}

	first := images[0].Size
	sum.minW, sum.maxW = first.W, first.W
	sum.minH, sum.maxH = first.H, first.H

	for _, img := range images {
		sz := img.Size
		sum.minW = min(sum.minW, sz.W)
		sum.maxW = max(sum.maxW, sz.W)
		sum.minH = min(sum.minH, sz.H)
		sum.maxH = max(sum.maxH, sz.H)
		sum.totalArea += sz.Area()
		if sz.W != first.W || sz.H != first.H {
			sum.isUniform = false
		}
	}

	return sum
}
