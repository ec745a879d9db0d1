package hull

import "math"

// Contains reports whether p lies inside or on the boundary of the convex
// polygon hullPts (counterclockwise order). Degenerate hulls are handled: a
// single point contains only itself, a segment contains the points on it.
func Contains(hullPts []*Point, p *Point) bool {
	switch len(hullPts) {
	case 0:
		return false
	case 1:
		return hullPts[0].Eq(p)
	case 2:
		return Orientation(hullPts[0], hullPts[1], p) == Collinear && inBoundingBox(hullPts[0], hullPts[1], p)
	}
	for i, v := range hullPts {
		w := hullPts[CircularIndex(i+1, len(hullPts))]
		if Orientation(v, w, p) == RightTurn {
			return false
		}
	}
	return true
}

// Assumes p is already known to be collinear with the segment a-b.
func inBoundingBox(a, b, p *Point) bool {
	return math.Min(a.X, b.X)-Tolerance <= p.X && p.X <= math.Max(a.X, b.X)+Tolerance &&
		math.Min(a.Y, b.Y)-Tolerance <= p.Y && p.Y <= math.Max(a.Y, b.Y)+Tolerance
}

// IsConvex reports whether walking the cyclic vertex sequence never turns
// right. Fewer than three vertices is trivially convex.
func IsConvex(hullPts []*Point) bool {
	n := len(hullPts)
	if n < 3 {
		return true
	}
	for i := range hullPts {
		if Orientation(hullPts[i], hullPts[CircularIndex(i+1, n)], hullPts[CircularIndex(i+2, n)]) == RightTurn {
			return false
		}
	}
	return true
}

// Canonicalize rotates the cyclic vertex sequence so the lowest vertex (X
// breaking ties) comes first, without changing the winding. Hulls produced by
// different algorithms start at different canonical vertices; rotating them
// makes them directly comparable.
func Canonicalize(hullPts []*Point) []*Point {
	if len(hullPts) == 0 {
		return []*Point{}
	}
	low := 0
	for i, p := range hullPts {
		if p.below(hullPts[low]) {
			low = i
		}
	}
	out := make([]*Point, 0, len(hullPts))
	for i := range hullPts {
		out = append(out, hullPts[CircularIndex(low+i, len(hullPts))])
	}
	return out
}
