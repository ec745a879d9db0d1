package hull

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertValidHull checks the contract every hull algorithm shares: vertices
// are input points with no repeats, the cyclic walk never turns right, no
// vertex is interior to a hull edge, and every input point is inside or on
// the boundary. Together with the no-collinear-vertex check, containment
// implies minimality: removing any strictly convex vertex would leave that
// vertex itself outside.
func AssertValidHull(t *testing.T, input, hullPts []*Point) {
	t.Helper()

	inputSet := make(PointSet)
	for _, p := range input {
		inputSet.Add(p)
	}
	seen := make(PointSet)
	for _, v := range hullPts {
		require.True(t, inputSet.Has(v), "hull vertex %v is not an input point", *v)
		require.False(t, seen.Has(v), "hull vertex %v appears twice", *v)
		seen.Add(v)
	}

	require.True(t, IsConvex(hullPts), "hull turns right somewhere")

	n := len(hullPts)
	if n >= 3 {
		for i := range hullPts {
			triple := [3]*Point{hullPts[i], hullPts[CircularIndex(i+1, n)], hullPts[CircularIndex(i+2, n)]}
			require.NotEqual(t, Collinear, Orientation(triple[0], triple[1], triple[2]),
				"vertex %v lies on the edge between its neighbors", *triple[1])
		}
	}

	for _, p := range input {
		require.True(t, Contains(hullPts, p), "input point %v escapes the hull", *p)
	}
}

// AssertSameHull checks that two hulls are the same cyclic vertex sequence,
// regardless of which canonical start vertex each algorithm chose.
func AssertSameHull(t *testing.T, expected, actual []*Point) {
	t.Helper()

	e := Canonicalize(expected)
	a := Canonicalize(actual)
	require.Equal(t, len(e), len(a), "hulls have different sizes")
	for i := range e {
		require.True(t, e[i].Eq(a[i]), "hulls differ at vertex %d: %v vs %v", i, *e[i], *a[i])
	}
}
