// An output-sensitive convex hull package for Go.
//
// This package computes the convex hull of a finite set of 2D points: the
// minimal convex polygon containing all of them. It uses Chan's algorithm,
// which runs in O(n log h) time where h is the number of hull vertices, so
// point sets with small hulls are hulled in near-linear time.
package convexhull

import "github.com/osuushi/convexhull/hull"

type Point = hull.Point

// ConvexHull returns the hull vertices in counterclockwise order, starting
// from the lowest point (ties broken by lowest X). Duplicate input points
// appear at most once, and collinear points interior to a hull edge are
// excluded; only the two extreme points of each edge survive.
//
// Degenerate inputs degrade gracefully: an empty set yields an empty hull, a
// single point yields itself, two distinct points yield both in input order,
// and a fully collinear set yields its two extremes. A nil collection is an
// error.
func ConvexHull(points []*Point) (result []*Point, err error) {
	defer func() {
		recoveredErr := hull.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return hull.Chans(points), nil
}
