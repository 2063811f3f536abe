package vmath

// Toroidal-space helpers. The world is a torus of size w × h: exiting one
// edge reenters the opposite edge, and distances are measured along the
// shortest wrapped path per axis.

// WrapCoord folds x into [0, w), preserving fractional position
func WrapCoord(x, w int64) int64 {
	if w <= 0 {
		return 0
	}
	x %= w
	if x < 0 {
		x += w
	}
	return x
}

// WrapDelta returns the shortest signed delta from a to b along a wrapped
// axis of length w. Result lies in [-w/2, w/2)
func WrapDelta(a, b, w int64) int64 {
	d := b - a
	half := w >> 1
	if d > half {
		d -= w
	} else if d < -half {
		d += w
	}
	return d
}

// TorusDistSq returns the squared shortest wrapped distance between two
// points on a w × h torus
func TorusDistSq(x1, y1, x2, y2, w, h int64) int64 {
	dx := WrapDelta(x1, x2, w)
	dy := WrapDelta(y1, y2, h)
	return Mul(dx, dx) + Mul(dy, dy)
}

// CirclesIntersect reports whether two circles on a w × h torus overlap,
// comparing squared wrapped distance against squared radii sum
func CirclesIntersect(x1, y1, r1, x2, y2, r2, w, h int64) bool {
	radii := r1 + r2
	return TorusDistSq(x1, y1, x2, y2, w, h) < Mul(radii, radii)
}
