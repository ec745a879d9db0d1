package hull

// Tangent returns the index of the vertex of the convex polygon hullPts that
// is the tangent point as seen from the point p: no vertex lies strictly to
// the right of the ray from p through the returned vertex, and among vertices
// on that ray the farthest one is returned. For a counterclockwise polygon
// this is exactly the vertex a counterclockwise wrap arriving at p should
// visit next, which is how the controller uses it.
//
// The polygon must be strictly convex, as GrahamScan produces, and p must not
// lie strictly inside it. p on the boundary is fine; when p coincides with a
// vertex the tangent is that vertex's successor.
//
// The search is a binary search over the cyclic vertex order. Seen from an
// external p the vertices sweep clockwise along the near chain and
// counterclockwise along the far chain, so classifying each probe by its edge
// direction and its side of the ray through vertex 0 yields a monotone
// predicate on either side of the cut. Runs in O(log k).
//
// Callers must not pass an empty polygon. The controller never builds one, so
// there is no defensive check here.
func Tangent(hullPts []*Point, p *Point) int {
	n := len(hullPts)
	if n == 1 {
		return 0
	}
	if n == 2 {
		switch Orientation(p, hullPts[0], hullPts[1]) {
		case RightTurn:
			return 1
		case Collinear:
			if SquaredDistance(p, hullPts[1]) > SquaredDistance(p, hullPts[0]) {
				return 1
			}
		}
		return 0
	}

	// Direction of edge i as seen from p: RightTurn while the sweep recedes
	// clockwise, LeftTurn while it advances counterclockwise, Collinear only
	// on the two tangent rays.
	edge := func(i int) Turn {
		return Orientation(p, hullPts[i], hullPts[CircularIndex(i+1, n)])
	}

	// The searches below cut the vertex ring at 0, so 0 needs a direct check.
	if edge(n-1) != LeftTurn && edge(0) != RightTurn {
		return fartherOnRay(hullPts, p, 0)
	}

	lo, hi := 1, n-1
	if edge(0) == RightTurn {
		// Vertex 0 is on the receding chain, so the tangent is the first
		// vertex past it where the sweep stops receding. Receding vertices
		// after 0 stay strictly clockwise of the ray through 0; the same-
		// direction vertices past the far chain have swung back to the other
		// side, which is what keeps the predicate monotone across the cycle.
		for lo < hi {
			c := (lo + hi) / 2
			if edge(c) == RightTurn && Orientation(p, hullPts[0], hullPts[c]) == RightTurn {
				lo = c + 1
			} else {
				hi = c
			}
		}
	} else {
		// Vertex 0 is on the advancing chain, so the sweep first climbs away
		// from it, turns, and recedes back past the tangent. The tangent is
		// the first advancing vertex that has crossed back clockwise of the
		// ray through 0.
		for lo < hi {
			c := (lo + hi) / 2
			if edge(c) == LeftTurn && Orientation(p, hullPts[0], hullPts[c]) == RightTurn {
				hi = c
			} else {
				lo = c + 1
			}
		}
	}
	return fartherOnRay(hullPts, p, lo)
}

// If a neighbor of the tangent vertex lies on the same ray from p but sits
// farther out, prefer it. Taking the nearer point would stall the wrap on the
// shared ray instead of advancing past it. The successor is tried first so
// that a vertex coinciding with p resolves forward, not backward.
func fartherOnRay(hullPts []*Point, p *Point, c int) int {
	n := len(hullPts)
	for _, i := range []int{CircularIndex(c+1, n), CircularIndex(c-1, n)} {
		if Orientation(p, hullPts[c], hullPts[i]) == Collinear &&
			SquaredDistance(p, hullPts[i]) > SquaredDistance(p, hullPts[c]) {
			return i
		}
	}
	return c
}
