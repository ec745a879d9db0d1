package hull

type Point struct {
	X float64
	Y float64
}

// Points from the input set are passed around as pointers so that hull output
// provably shares identity with the input. We never modify a point value;
// some applications require exact equality, and we cannot tolerate loss of
// precision.
func (p *Point) Eq(q *Point) bool {
	return p.X == q.X && p.Y == q.Y
}

type PointStack []*Point

type PointSet map[Point]struct{}

func (s PointSet) Add(p *Point) {
	s[*p] = struct{}{}
}

func (s PointSet) Has(p *Point) bool {
	_, ok := s[*p]
	return ok
}

func (s *PointStack) Push(p *Point) {
	*s = append(*s, p)
}

func (s *PointStack) Pop() *Point {
	if len(*s) == 0 {
		return nil
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

func (s *PointStack) Peek() *Point {
	if len(*s) == 0 {
		return nil
	}
	return (*s)[len(*s)-1]
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}
