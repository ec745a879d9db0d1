package hull

// JarvisMarch computes the convex hull by gift wrapping: starting from the
// leftmost point, repeatedly pick the point that every remaining point lies
// to the left of, until the walk returns to the start. O(n*h), since every
// step scans all n points. It is only worth using when h is expected to be
// tiny, but it is unconditionally correct, which is why the controller falls
// back to it when the doubling search runs out of guesses.
//
// The hull comes back in counterclockwise order starting from the leftmost
// point (ties broken by lowest Y). Inputs of fewer than three points are
// returned unchanged; they aren't polygons, just the point(s).
func JarvisMarch(points []*Point) []*Point {
	if len(points) < 3 {
		return append([]*Point{}, points...)
	}

	start := points[0]
	for _, p := range points[1:] {
		if p.X < start.X || (Equal(p.X, start.X) && p.Y < start.Y) {
			start = p
		}
	}

	hullPts := []*Point{}
	curr := start
	for {
		hullPts = append(hullPts, curr)

		// Single best-candidate reduction. A point strictly right of the ray
		// curr -> next means next is not extreme; a collinear point farther out
		// replaces next so intermediate collinear points are skipped entirely.
		var next *Point
		for _, p := range points {
			if p.Eq(curr) {
				continue
			}
			if next == nil {
				next = p
				continue
			}
			switch Orientation(curr, next, p) {
			case RightTurn:
				next = p
			case Collinear:
				if SquaredDistance(curr, p) > SquaredDistance(curr, next) {
					next = p
				}
			}
		}

		if next == nil || next.Eq(start) {
			// next is nil only when every input point is a duplicate of curr.
			break
		}
		curr = next

		if len(hullPts) > len(points) {
			// Cannot happen for consistent orientation results; bail out rather
			// than loop forever if float degeneracy proves otherwise.
			break
		}
	}
	return hullPts
}
