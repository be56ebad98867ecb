package internal

import (
	"image/color"
	"math/rand"
)

type crossing struct {
	target Entity
	point  Point
}

// A parent segment and the pieces that replace it
type replacement struct {
	parent Entity
	pieces []*Segment
}

// Everything a subdivision will do to the store. It is planned in full before
// the store is touched, so a failure partway through leaves nothing half done.
type subdivisionPlan struct {
	markers      []*Marker
	replacements []replacement
}

// Subdivide a freshly inserted edge entity against every other edge entity in
// the store.
//
// Crossings are found against the store as it is now. The markers and pieces
// added here are not checked again during this call, but later insertions see
// them.
func (s *Store) subdivide(base Entity, cfg insertConfig) {
	plan := s.planSubdivision(base, cfg.rng)

	for _, marker := range plan.markers {
		s.insert(marker, insertConfig{skipIntersectionCheck: true})
	}
	for _, r := range plan.replacements {
		s.remove(r.parent.Base().ID)
		for _, piece := range r.pieces {
			s.insert(piece, insertConfig{skipIntersectionCheck: true})
		}
		s.log().Debug("split entity", "parent", r.parent.Base().ID, "pieces", len(r.pieces))
	}
}

func (s *Store) planSubdivision(base Entity, rng *rand.Rand) subdivisionPlan {
	baseID := base.Base().ID

	var plan subdivisionPlan
	var crossings []crossing
	for _, target := range s.entities {
		if !IsEdge(target) || target.Base().ID == baseID {
			continue
		}
		point, ok := Intersect(base, target)
		if !ok {
			continue
		}
		s.log().Debug("found crossing", "base", baseID, "target", target.Base().ID, "x", point.X, "y", point.Y)

		// Every crossing gets a marker, even one at a shared endpoint
		marker := NewPoint(s.ids, point.X, point.Y, &Extra{
			ZIndex: 1,
			Style:  &Style{Fill: color.Transparent},
		})
		marker.Inter = &Inter{A: baseID, B: target.Base().ID}
		plan.markers = append(plan.markers, marker)

		crossings = append(crossings, crossing{target, point})
	}
	if len(crossings) == 0 {
		return plan
	}

	// Crossings at an endpoint need no split on that side. Splitting there
	// would only produce a zero length piece.
	var basePoints []Point
	for _, c := range crossings {
		if !IsEndpoint(c.point, base) {
			basePoints = appendDistinct(basePoints, c.point)
		}
	}
	if len(basePoints) > 0 {
		plan.replacements = append(plan.replacements, replacement{
			parent: base,
			pieces: splitAt(base, basePoints, s.ids, rng),
		})
	}

	// Group by target, in the order the targets were found
	var targets []Entity
	targetPoints := make(map[int][]Point)
	for _, c := range crossings {
		if IsEndpoint(c.point, c.target) {
			continue
		}
		id := c.target.Base().ID
		if _, ok := targetPoints[id]; !ok {
			targets = append(targets, c.target)
		}
		targetPoints[id] = appendDistinct(targetPoints[id], c.point)
	}
	for _, target := range targets {
		plan.replacements = append(plan.replacements, replacement{
			parent: target,
			pieces: splitAt(target, targetPoints[target.Base().ID], s.ids, rng),
		})
	}

	return plan
}

// Append p unless the list already has the same point
func appendDistinct(points []Point, p Point) []Point {
	for _, q := range points {
		if SamePoint(p, q) {
			return points
		}
	}
	return append(points, p)
}

// Pairs of edge entities that cross somewhere other than a shared endpoint.
// Between operations this is always empty; it exists to check that.
func (s *Store) UnresolvedCrossings() [][2]Entity {
	var edges []Entity
	for _, e := range s.entities {
		if IsEdge(e) {
			edges = append(edges, e)
		}
	}

	var result [][2]Entity
	for i, e1 := range edges {
		for _, e2 := range edges[i+1:] {
			point, ok := Intersect(e1, e2)
			if !ok {
				continue
			}
			if !IsEndpoint(point, e1) || !IsEndpoint(point, e2) {
				result = append(result, [2]Entity{e1, e2})
			}
		}
	}
	return result
}
