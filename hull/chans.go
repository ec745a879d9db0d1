package hull

import (
	"math"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Below this size the partitioning machinery costs more than it saves; hand
// the whole input straight to the quadratic-ish base case.
const smallInputThreshold = 6

// Seed for the grouping shuffle. A fresh seed per call keeps group hulls
// uncorrelated with the input order; tests pin it so cross-algorithm
// comparisons reproduce.
var shuffleSeed = func() int64 { return time.Now().UnixNano() }

// An index pair into the per-group hulls. The wrap walks these rather than
// raw points so that loop closure is a simple pair comparison.
type hullVertex struct {
	hull   int
	vertex int
}

// Chans computes the convex hull of the points in O(n log h) time, where h is
// the number of hull vertices, using Chan's output-sensitive algorithm. The
// strategy is a doubling search over a group size guess m: partition the
// points into groups of at most m, hull each group with GrahamScan, then gift
// wrap across the group hulls using Tangent to consider only one candidate
// per group. If the wrap fails to close within m steps, m was too small;
// restart with the next guess m = 2^2^t. Once m reaches n the single group
// degenerates to a plain wrap of the whole hull, which always closes, so the
// search terminates.
//
// The hull comes back counterclockwise with the same collinear policy as
// GrahamScan: edge-interior collinear points are excluded. A nil collection
// is a caller bug and panics with a recoverable error (the public package
// converts it); an empty collection yields an empty hull.
func Chans(points []*Point) []*Point {
	if points == nil {
		fatalf("convex hull of nil point collection")
	}
	if len(points) <= smallInputThreshold {
		return GrahamScan(points)
	}

	n := len(points)
	shuffled := append([]*Point{}, points...)
	rng := rand.New(rand.NewSource(shuffleSeed()))

	for t := 1; t <= attemptCap(n); t++ {
		m := groupSizeGuess(n, t)

		// Random grouping makes adversarial orderings no worse than average:
		// group hulls tend to be small when the groups aren't spatially
		// correlated. Correctness doesn't depend on the permutation.
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		hulls := groupHulls(shuffled, m)
		traceAttempt(t, m, hulls)
		if hullPts := wrapGroupHulls(hulls, m); hullPts != nil {
			if chansTrace {
				dbgDraw(points, hullPts, 4)
			}
			return hullPts
		}
	}

	// The cap is sized so that m reaches n before we get here, but if it is
	// ever exceeded the gift wrap is always correct, just slower.
	return JarvisMarch(points)
}

// m = min(n, 2^2^t). Squaring the guess each round keeps the total work
// across failed rounds proportional to the final successful round, and the
// round count at O(log log h).
func groupSizeGuess(n, t int) int {
	shift := 1 << t
	if shift >= 31 || 1<<shift >= n {
		return n
	}
	return 1 << shift
}

// Number of doubling rounds before m has certainly reached n, plus margin.
func attemptCap(n int) int {
	return int(math.Ceil(math.Log2(math.Log2(float64(n))))) + 2
}

// Partition the points into contiguous groups of at most m and hull each
// group. Groups share no mutable state, so the hulls are built concurrently;
// this is purely a speedup, never a correctness requirement.
func groupHulls(points []*Point, m int) [][]*Point {
	groups := make([][]*Point, 0, (len(points)+m-1)/m)
	for i := 0; i < len(points); i += m {
		end := i + m
		if end > len(points) {
			end = len(points)
		}
		groups = append(groups, points[i:end])
	}

	hulls := make([][]*Point, len(groups))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, group := range groups {
		i, group := i, group
		g.Go(func() error {
			hulls[i] = GrahamScan(group)
			return nil
		})
	}
	_ = g.Wait() // the workers cannot fail

	return hulls
}

// Gift wrap across the group hulls for at most m steps. Returns the global
// hull if the walk closes, or nil if m steps weren't enough.
func wrapGroupHulls(hulls [][]*Point, m int) []*Point {
	walk := []hullVertex{lowestVertex(hulls)}
	startPt := hulls[walk[0].hull][walk[0].vertex]

	for i := 0; i < m; i++ {
		next := nextVertex(hulls, walk[len(walk)-1])
		// The start point may appear in several group hulls when the input has
		// duplicates, so closure is checked by value as well as by pair.
		if next == walk[0] || hulls[next.hull][next.vertex].Eq(startPt) {
			result := make([]*Point, len(walk))
			for j, hv := range walk {
				result[j] = hulls[hv.hull][hv.vertex]
			}
			return result
		}
		walk = append(walk, next)
	}
	return nil
}

// The canonical global start: lowest vertex across all group hulls, X
// breaking ties. It is necessarily on the global hull.
func lowestVertex(hulls [][]*Point) hullVertex {
	best := hullVertex{0, 0}
	for h, hullPts := range hulls {
		for v, p := range hullPts {
			if p.below(hulls[best.hull][best.vertex]) {
				best = hullVertex{h, v}
			}
		}
	}
	return best
}

// One wrap step. Each group hull contributes its tangent vertex as seen from
// the current point; the current point's own hull contributes its successor
// vertex. The winner is reduced with the same rule as JarvisMarch: a
// candidate strictly right of the ray to the incumbent replaces it, as does a
// collinear candidate that is farther away.
func nextVertex(hulls [][]*Point, curr hullVertex) hullVertex {
	p := hulls[curr.hull][curr.vertex]
	next := hullVertex{curr.hull, CircularIndex(curr.vertex+1, len(hulls[curr.hull]))}

	for h := range hulls {
		if h == curr.hull {
			continue
		}
		candidate := hullVertex{h, Tangent(hulls[h], p)}
		q := hulls[next.hull][next.vertex]
		r := hulls[candidate.hull][candidate.vertex]
		switch Orientation(p, q, r) {
		case RightTurn:
			next = candidate
		case Collinear:
			if SquaredDistance(p, r) > SquaredDistance(p, q) {
				next = candidate
			}
		}
	}
	return next
}
