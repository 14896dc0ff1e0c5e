package texatlas

import "errors"

// Programmer-error sentinels. These are returned for conditions a caller
// should never hit in normal operation and can check for with errors.Is.
var (
	// ErrNilInput is returned by TryProcess when given a nil image slice.
	ErrNilInput = errors.New("texatlas: input image slice is nil")

	// ErrUnsupportedRestriction is returned when a TextureSizeRestriction
	// value outside the known enumeration is used.
	ErrUnsupportedRestriction = errors.New("texatlas: unsupported texture size restriction")

	// ErrUnsupportedHeuristic is returned when a MaxRects Heuristic value
	// outside the known enumeration is used to construct an engine.
	ErrUnsupportedHeuristic = errors.New("texatlas: unsupported maxrects heuristic")

	// ErrUnsupportedPlacementHeuristic is returned when a Guillotine
	// PlacementHeuristic value outside the known enumeration is used.
	ErrUnsupportedPlacementHeuristic = errors.New("texatlas: unsupported guillotine placement heuristic")

	// ErrUnsupportedSplitHeuristic is returned when a Guillotine
	// SplitHeuristic value outside the known enumeration is used.
	ErrUnsupportedSplitHeuristic = errors.New("texatlas: unsupported guillotine split heuristic")

	// ErrInvalidMaxTextureSize is returned when Options.MaxTextureSize has
	// a negative dimension; a zero dimension selects the default instead.
	ErrInvalidMaxTextureSize = errors.New("texatlas: max texture size must be positive")
)
