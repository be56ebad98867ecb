package internal

import (
	"image/color"
	"math/rand"
	"sort"
)

// Split a segment at a list of points on it, returning the pieces. The
// pieces are new edge segments with fresh ids; the input segment is not
// modified, and removing it from its store is up to the caller.
//
// Cut points may be given in any order. They are sorted by their position
// from the segment's start to its end before cutting, so the pieces come back
// in that order too, each starting where the previous one ends.
//
// Splitting anything other than a segment fails with ErrUnsupportedEntityType.
// Splitting at no points returns no pieces. A point that coincides with an
// endpoint, or with another point in the list, would produce a zero length
// piece, and is an error.
//
// If rng is not nil, every piece gets its own random stroke color.
func SplitAt(e Entity, points []Point, ids IDSource, rng *rand.Rand) (pieces []*Segment, err error) {
	defer func() {
		recoveredErr := HandleArrangePanicRecover(recover())
		if recoveredErr != nil {
			pieces = nil
			err = recoveredErr
		}
	}()
	return splitAt(e, points, ids, rng), nil
}

func splitAt(e Entity, points []Point, ids IDSource, rng *rand.Rand) []*Segment {
	segment, ok := e.(*Segment)
	if !ok {
		fatalWrapf(ErrUnsupportedEntityType, "cannot split %s", e)
	}
	if len(points) == 0 {
		return nil
	}

	// Points arrive in the order their crossings were found. Walking them in
	// that order would cut the remainder at points it no longer contains, so
	// order them from start to end first.
	ordered := make([]Point, len(points))
	copy(ordered, points)
	sort.SliceStable(ordered, func(i, j int) bool {
		return PositionAlong(segment, ordered[i]) < PositionAlong(segment, ordered[j])
	})

	pieces := make([]*Segment, 0, len(ordered)+1)
	remainder := segment
	for _, point := range ordered {
		var piece *Segment
		piece, remainder = cutSegment(remainder, point, ids)
		pieces = append(pieces, piece)
	}
	pieces = append(pieces, remainder)

	for _, piece := range pieces {
		if SamePoint(piece.start, piece.end) {
			fatalf("splitting %s at %v leaves a zero length piece", segment, points)
		}
		if rng != nil {
			piece.Style = &Style{Stroke: randomColor(rng)}
		}
	}
	return pieces
}

// Cut a segment in two at a point. The first piece runs from the segment's
// start to the point, the second from the point to the segment's end.
func cutSegment(s *Segment, at Point, ids IDSource) (first, second *Segment) {
	first = NewSegment(ids, s.start.X, s.start.Y, at.X, at.Y, &Extra{Edge: true})
	second = NewSegment(ids, at.X, at.Y, s.end.X, s.end.Y, &Extra{Edge: true})
	return first, second
}

func randomColor(rng *rand.Rand) color.Color {
	rgb := rng.Uint32()
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}
