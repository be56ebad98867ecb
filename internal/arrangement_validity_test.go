package internal

// This contains no actual tests. It is just a helper for testing arrangement
// validity.

import (
	"testing"

	"github.com/osuushi/arrange/internal/dbg"
	"github.com/stretchr/testify/require"
)

// Helper to check that a store holds a valid arrangement. The rules are:
// 1. Ids are unique.
// 2. No edge segment has zero length.
// 3. No two edge entities cross except at an endpoint of both.
// 4. Every intersection marker sits on an endpoint of some edge segment. Only
//    holds while nothing has been removed by hand.
func AssertValidArrangement(t *testing.T, store *Store) {
	t.Helper()

	seen := make(map[int]Entity)
	for _, e := range store.Entities() {
		id := e.Base().ID
		if other, ok := seen[id]; ok {
			t.Fatalf("id %d is used by both %s and %s", id, other, e)
		}
		seen[id] = e
	}

	for _, e := range store.Entities() {
		if s, ok := e.(*Segment); ok && s.Edge {
			require.False(t, SamePoint(s.Start(), s.End()), "zero length segment: %s", s)
		}
	}

	unresolved := store.UnresolvedCrossings()
	require.Empty(t, unresolved, "unresolved crossings:\n%s", dbg.Dump(unresolved))

	for _, e := range store.Entities() {
		marker, ok := e.(*Marker)
		if !ok || marker.Inter == nil {
			continue
		}
		require.True(t, isEdgeEndpoint(store, marker.At()), "intersection marker is not on any segment endpoint: %s", marker)
	}
}

func isEdgeEndpoint(store *Store, p Point) bool {
	for _, e := range store.Entities() {
		if _, ok := e.(*Segment); ok && IsEdge(e) && IsEndpoint(p, e) {
			return true
		}
	}
	return false
}

// Edge segments in insertion order
func edgeSegments(store *Store) []*Segment {
	var result []*Segment
	for _, e := range store.Entities() {
		if s, ok := e.(*Segment); ok && s.Edge {
			result = append(result, s)
		}
	}
	return result
}

func markers(store *Store) []*Marker {
	var result []*Marker
	for _, e := range store.Entities() {
		if m, ok := e.(*Marker); ok {
			result = append(result, m)
		}
	}
	return result
}

// Find the edge segment running between two points, in either direction
func findSegment(store *Store, p, q Point) *Segment {
	for _, s := range edgeSegments(store) {
		if (SamePoint(s.Start(), p) && SamePoint(s.End(), q)) || (SamePoint(s.Start(), q) && SamePoint(s.End(), p)) {
			return s
		}
	}
	return nil
}
