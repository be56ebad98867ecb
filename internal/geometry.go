package internal

import "math"

// Two points closer than this on both axes are the same point. Crossing points
// are computed in floating point, so a crossing at a shared endpoint rarely
// lands exactly on it.
const Tolerance = 1e-5

type Point struct {
	X float64
	Y float64
}

func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func SamePoint(p, q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

func IsBetween(v, a, b float64) bool {
	return v >= math.Min(a, b) && v <= math.Max(a, b)
}

// Bounding box test only. Callers use it on points already known to lie on the
// segment's infinite line, where it is equivalent to a containment test.
func PointOnSegment(x, y float64, s *Segment) bool {
	return IsBetween(x, s.start.X, s.end.X) && IsBetween(y, s.start.Y, s.end.Y)
}

func IsEndpoint(p Point, e Entity) bool {
	for _, end := range e.Ends() {
		if SamePoint(p, end) {
			return true
		}
	}
	return false
}

// Find the crossing point of two entities. Only segment pairs can cross;
// markers never intersect anything.
func Intersect(e1, e2 Entity) (Point, bool) {
	s1, ok := e1.(*Segment)
	if !ok {
		return Point{}, false
	}
	s2, ok := e2.(*Segment)
	if !ok {
		return Point{}, false
	}

	a1, b1, c1 := s1.Coefficients()
	a2, b2, c2 := s2.Coefficients()

	if a1*b2 == a2*b1 { // parallel, or a degenerate segment
		return Point{}, false
	}

	var x, y float64
	switch {
	case a1 == 0: // s1 is horizontal
		y = -c1 / b1
		x = -(c2 + b2*y) / a2
	case a2 == 0: // s2 is horizontal
		y = -c2 / b2
		x = -(c1 + b1*y) / a1
	default:
		y = (a2*c1 - a1*c2) / (a1*b2 - a2*b1)
		x = -(c2 + b2*y) / a2
	}

	// The infinite lines always cross here, but the segments may not reach it
	if PointOnSegment(x, y, s1) && PointOnSegment(x, y, s2) {
		return Point{X: x, Y: y}, true
	}
	return Point{}, false
}

// Position of p projected onto the segment, where the start is 0 and the end
// is 1. Used to order cut points along a segment.
func PositionAlong(s *Segment, p Point) float64 {
	dx := s.end.X - s.start.X
	dy := s.end.Y - s.start.Y
	lengthSquared := dx*dx + dy*dy
	if lengthSquared == 0 {
		return 0
	}
	return ((p.X-s.start.X)*dx + (p.Y-s.start.Y)*dy) / lengthSquared
}

func pointDistance(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}
