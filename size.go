package texatlas

// nextPow2 returns the smallest power of two >= n. n <= 1 returns 1.
func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// ceilDiv returns the ceiling of a/b for positive a and b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// calcMinimumTextureSize returns the smallest size that can geometrically
// hold totalArea and the single largest input dimension, after reserving
// border on every side, honoring restriction.
func calcMinimumTextureSize(totalArea int64, maxSide int, border Thickness, restriction TextureSizeRestriction) Size {
	minW := maxSide + border.SumX()
	minH := maxSide + border.SumY()

	// Start from a size whose interior area can hold totalArea, then grow
	// to satisfy both the area and max-side constraints together.
	side := 1
	for int64(side)*int64(side) < totalArea {
		side++
	}
	minW = max(minW, side+border.SumX())
	minH = max(minH, side+border.SumY())

	return normalizeSize(Size{W: minW, H: minH}, restriction)
}

// normalizeSize rounds size up to satisfy restriction.
func normalizeSize(size Size, restriction TextureSizeRestriction) Size {
	switch restriction {
	case RestrictionPow2:
		return Size{W: nextPow2(size.W), H: nextPow2(size.H)}
	case RestrictionPow2Square:
		side := nextPow2(max(size.W, size.H))
		return Size{W: side, H: side}
	default:
		return size
	}
}

// enqueuePotentialSizes returns an ascending-area sequence of candidate
// atlas sizes to try for RestrictionPow2/RestrictionPow2Square, starting at
// minSize (already normalized for restriction) and doubling one axis at a
// time (both at once for RestrictionPow2Square) until maxSize is exceeded.
// RestrictionAny doesn't enumerate a queue
// at all — see TextureBinPacker.tryAdaptiveAnySearch, which grows a single
// candidate's area on demand from actual placement failures instead.
func enqueuePotentialSizes(minSize, maxSize Size, restriction TextureSizeRestriction) []Size {
	var out []Size

	switch restriction {
	case RestrictionPow2Square:
		side := minSize.MaxSide()
		for side <= maxSize.MinSide() {
			out = append(out, Size{W: side, H: side})
			side *= 2
		}
	default:
		w, h := minSize.W, minSize.H
		for w <= maxSize.W && h <= maxSize.H {
			out = append(out, Size{W: w, H: h})
			if w <= h {
				w *= 2
			} else {
				h *= 2
			}
		}
	}

	return out
}
