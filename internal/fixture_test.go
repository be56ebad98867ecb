package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
)

// Fixtures are SVG drawings in the fixtures/ directory, available by name sans
// extension. Each <line> is an edge segment, each <circle> a point, in
// document order. If anything goes wrong loading one, the test binary dies.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string, ids IDSource) []Entity {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	entities, err := ReadSVG(fixture, ids)
	if err != nil {
		log.Fatalf("Failed to read fixture %q: %v", name, err)
	}
	if len(entities) == 0 {
		log.Fatalf("No entities found in fixture %q", name)
	}
	return entities
}

// Some ad hoc fixtures

// A fan of n spokes through a common center. Every pair crosses at the center.
func Fan(ids IDSource, n int, radius float64) []Entity {
	var entities []Entity
	for i := 0; i < n; i++ {
		angle := math.Pi * (float64(i) + 0.5) / float64(n)
		dx := radius * math.Cos(angle)
		dy := radius * math.Sin(angle)
		entities = append(entities, NewSegment(ids, -dx, -dy, dx, dy, &Extra{Edge: true}))
	}
	return entities
}

// n segments with endpoints scattered uniformly over a size x size square
func Scatter(ids IDSource, rng *rand.Rand, n int, size float64) []Entity {
	var entities []Entity
	for i := 0; i < n; i++ {
		entities = append(entities, NewSegment(ids,
			rng.Float64()*size, rng.Float64()*size,
			rng.Float64()*size, rng.Float64()*size,
			&Extra{Edge: true},
		))
	}
	return entities
}
