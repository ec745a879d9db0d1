package hull

import (
	"math"
	"sync/atomic"
)

// Every geometric decision in this package reduces to the orientation test,
// plus squared-distance comparisons to break collinear ties. Cross products
// within Tolerance of zero classify as Collinear; anything looser would let
// the same triple flip between turns depending on argument order, which the
// scan and the tangent search both assume cannot happen.
const Tolerance = 1e-9

type Turn int

const (
	RightTurn Turn = -1
	Collinear Turn = 0
	LeftTurn  Turn = 1
)

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Orientation classifies the ordered triple (p, q, r) by the sign of the
// cross product of (q - p) and (r - p). LeftTurn means r lies to the left of
// the directed line p -> q, i.e. the triple winds counterclockwise.
func Orientation(p, q, r *Point) Turn {
	atomic.AddInt64(&orientationOps, 1)
	cross := (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
	if math.Abs(cross) < Tolerance {
		return Collinear
	}
	if cross > 0 {
		return LeftTurn
	}
	return RightTurn
}

// SquaredDistance is only ever compared against other squared distances, so
// the square root is never taken.
func SquaredDistance(a, b *Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Counter for the scaling tests. Group hulls may be built concurrently, so it
// must be atomic.
var orientationOps int64

func resetOrientationOps() {
	atomic.StoreInt64(&orientationOps, 0)
}

func orientationOpCount() int64 {
	return atomic.LoadInt64(&orientationOps)
}
