//go:build debug

package texatlas

import "fmt"

func errPlacementOutOfBounds(i int, dest, inner Rect) error {
	return fmt.Errorf("texatlas: placement %d at %s falls outside usable area %s", i, dest, inner)
}

func errPlacementOverlap(i, j int, a, b Rect) error {
	return fmt.Errorf("texatlas: placements %d %s and %d %s overlap", i, a, j, b)
}

// verifier checks a completed packing for overlap and bounds violations. The
// real implementation only runs in debug builds; release builds use a
// no-op stand-in of the same shape so callers never branch on build tags
// themselves.
type verifier struct {
	binSize Size
	border  Thickness
}

func newVerifier(binSize Size, border Thickness) verifier {
	return verifier{binSize: binSize, border: border}
}

// check reports the first invariant violation found among placements, or
// nil if the packing is internally consistent.
func (v verifier) check(placements []Placement) error {
	inner := NewRect(v.border.Left, v.border.Top,
		v.binSize.W-v.border.SumX(), v.binSize.H-v.border.SumY())

	for i, p := range placements {
		if !inner.ContainsRect(p.Dest) {
			return errPlacementOutOfBounds(i, p.Dest, inner)
		}
		for j := i + 1; j < len(placements); j++ {
			if p.Dest.Intersects(placements[j].Dest) {
				return errPlacementOverlap(i, j, p.Dest, placements[j].Dest)
			}
		}
	}

	return nil
}
