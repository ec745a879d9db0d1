package hull

// Literal hull cases shared by all three algorithms. The expected hull is
// counterclockwise; rotation and algorithm-specific start vertex are
// normalized away by the assertion helpers.
type hullCase struct {
	name   string
	points [][2]float64
	want   [][2]float64
}

var hullCases = []hullCase{
	{
		name:   "empty",
		points: [][2]float64{},
		want:   [][2]float64{},
	},
	{
		name:   "single point",
		points: [][2]float64{{5, 5}},
		want:   [][2]float64{{5, 5}},
	},
	{
		name:   "two points",
		points: [][2]float64{{1, 2}, {3, 4}},
		want:   [][2]float64{{1, 2}, {3, 4}},
	},
	{
		name:   "collinear line",
		points: [][2]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
		want:   [][2]float64{{0, 0}, {3, 3}},
	},
	{
		name:   "vertical line",
		points: [][2]float64{{2, 0}, {2, 1}, {2, 3}, {2, 2}},
		want:   [][2]float64{{2, 0}, {2, 3}},
	},
	{
		name:   "horizontal line",
		points: [][2]float64{{1, 5}, {3, 5}, {2, 5}, {4, 5}},
		want:   [][2]float64{{1, 5}, {4, 5}},
	},
	{
		name:   "duplicates",
		points: [][2]float64{{1, 1}, {1, 1}, {2, 2}, {1, 1}},
		want:   [][2]float64{{1, 1}, {2, 2}},
	},
	{
		name:   "triangle with collinear edge midpoint",
		points: [][2]float64{{0, 0}, {2, 0}, {1, 1}, {1, 0}},
		want:   [][2]float64{{0, 0}, {2, 0}, {1, 1}},
	},
	{
		name:   "square with interior points",
		points: [][2]float64{{0, 0}, {0, 3}, {3, 3}, {3, 0}, {1, 1}, {2, 2}},
		want:   [][2]float64{{0, 0}, {3, 0}, {3, 3}, {0, 3}},
	},
	{
		name:   "pentagon",
		points: [][2]float64{{0, 0}, {2, 0}, {3, 2}, {1, 4}, {-1, 2}},
		want:   [][2]float64{{0, 0}, {2, 0}, {3, 2}, {1, 4}, {-1, 2}},
	},
	{
		name:   "nonconvex scatter",
		points: [][2]float64{{0, 0}, {1, 3}, {2, 2}, {4, 4}, {0, 5}, {3, 1}, {5, 0}},
		want:   [][2]float64{{0, 0}, {5, 0}, {4, 4}, {0, 5}},
	},
	{
		// Octagon corners plus the midpoint of every edge plus interior points.
		// All midpoints and interior points must be excluded.
		name: "octagon with edge midpoints and interior",
		points: [][2]float64{
			{2, 0}, {4, 0}, {6, 2}, {6, 4}, {4, 6}, {2, 6}, {0, 4}, {0, 2},
			{3, 0}, {5, 1}, {6, 3}, {5, 5}, {3, 6}, {1, 5}, {0, 3}, {1, 1},
			{3, 3}, {2, 3}, {4, 3}, {3, 2},
		},
		want: [][2]float64{{2, 0}, {4, 0}, {6, 2}, {6, 4}, {4, 6}, {2, 6}, {0, 4}, {0, 2}},
	},
}

func mkPoints(coords [][2]float64) []*Point {
	points := make([]*Point, len(coords))
	for i, c := range coords {
		points[i] = &Point{c[0], c[1]}
	}
	return points
}
