package texatlas

import "github.com/creasty/defaults"

// Options configures a TextureBinPacker. Zero-valued fields are filled with
// their documented default via NewTextureBinPacker.
type Options struct {
	// MinTextureSize is the smallest atlas size the general search
	// considers. Zero means use the default of 16x16. The uniform-grid path
	// and the empty/zero-area shortcuts do not apply it.
	MinTextureSize Size
	// MaxTextureSize is the largest atlas size considered. Zero means use
	// the default of 4096x4096; otherwise both dimensions must be positive.
	MaxTextureSize Size
	// Border reserves a margin on every side of the atlas that no
	// placement may touch.
	Border Thickness
	// Gap is inserted between adjacent placements on every side.
	Gap int
	// Restriction constrains which candidate atlas dimensions are tried.
	Restriction TextureSizeRestriction
	// AllowRotate permits 90-degree rotation of a source image when it
	// improves the fit.
	AllowRotate bool `default:"true"`
	// PreferSquare is defaulted to true but is not consulted by the
	// candidate-size search; it has no effect on the result.
	PreferSquare bool `default:"true"`
	// GuillotinePlacement and GuillotineSplit configure the guillotine
	// engine used as a secondary pass after the MaxRects heuristics fail:
	// for Pow2/Pow2Square once every candidate size has failed, for
	// RestrictionAny at each candidate size in turn.
	GuillotinePlacement PlacementHeuristic
	GuillotineSplit     SplitHeuristic
	// GuillotineMerge enables coalescing the guillotine free list after
	// every placement.
	GuillotineMerge bool `default:"true"`
}

// withDefaults returns a copy of opts with zero-valued fields filled in and
// validates the result.
func withDefaults(opts Options) (Options, error) {
	out := opts
	if err := defaults.Set(&out); err != nil {
		return Options{}, err
	}

	if out.MinTextureSize.Degenerate() {
		out.MinTextureSize = Size{W: 16, H: 16}
	}
	if out.MaxTextureSize.Degenerate() {
		out.MaxTextureSize = Size{W: 4096, H: 4096}
	}
	if out.MaxTextureSize.W <= 0 || out.MaxTextureSize.H <= 0 {
		return Options{}, ErrInvalidMaxTextureSize
	}
	if !out.Restriction.valid() {
		return Options{}, ErrUnsupportedRestriction
	}
	if !out.GuillotinePlacement.valid() {
		return Options{}, ErrUnsupportedPlacementHeuristic
	}
	if !out.GuillotineSplit.valid() {
		return Options{}, ErrUnsupportedSplitHeuristic
	}

	return out, nil
}
