package hull

import "sort"

// GrahamScan computes the convex hull of an arbitrary point collection in
// O(n log n). The hull is returned in counterclockwise order, starting from
// the lowest point (ties broken by lowest X). Collinear points on a hull edge
// are excluded; only the two extreme points of the edge survive. This is also
// the per-group base case for Chans, so it must tolerate any group the
// controller hands it, including duplicates and fully collinear groups.
func GrahamScan(points []*Point) []*Point {
	if len(points) <= 1 {
		return append([]*Point{}, points...)
	}
	if len(points) == 2 {
		if points[0].Eq(points[1]) {
			return []*Point{points[0]}
		}
		return []*Point{points[0], points[1]}
	}

	sorted := sortByPolarAngle(points)

	// Left-turn scan. Collinear triples pop as well, and since the sort puts
	// closer points first on a shared ray, the farther point always evicts the
	// nearer one. That single rule is what enforces the extremes-only policy.
	var stack PointStack
	for _, p := range sorted {
		if !stack.Empty() && p.Eq(stack.Peek()) {
			continue
		}
		for len(stack) >= 2 && Orientation(stack[len(stack)-2], stack[len(stack)-1], p) != LeftTurn {
			stack.Pop()
		}
		stack.Push(p)
	}
	return stack
}

// A common convention in our geometry is that the canonical point of a set is
// the lowest one, with X breaking ties. Y ties are tolerance based, X ties are
// not; two points within Tolerance of each other vertically are "the same
// height" and the leftmost wins.
func (p *Point) below(q *Point) bool {
	if Equal(p.Y, q.Y) {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Sort a copy of the points by polar angle around the canonical start point,
// which ends up at index 0. Angle ties are broken by squared distance from
// the start, closer first. The reference point is captured by the comparator
// closure, so there is no shared sort state and per-group sorts are free to
// run concurrently.
func sortByPolarAngle(points []*Point) []*Point {
	sorted := append([]*Point{}, points...)
	start := sorted[0]
	for _, p := range sorted[1:] {
		if p.below(start) {
			start = p
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a == start {
			return b != start
		}
		if b == start {
			return false
		}
		switch Orientation(start, a, b) {
		case LeftTurn:
			return true
		case RightTurn:
			return false
		}
		return SquaredDistance(start, a) < SquaredDistance(start, b)
	})
	return sorted
}
