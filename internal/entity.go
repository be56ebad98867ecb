package internal

import (
	"fmt"
	"image/color"
	"sync/atomic"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/arrange/internal/dbg"
)

// An Entity is either a *Segment or a *Marker. The set is closed; code that
// needs variant specific behavior switches on the concrete type.
type Entity interface {
	Base() *EntityBase
	Ends() []Point
	String() string
	isEntity()
}

// Presentation data. The subdivision engine never reads it; it only sets a
// stroke on split pieces when random coloring is requested.
type Style struct {
	Stroke color.Color
	Fill   color.Color
}

// Names the two segments whose crossing produced an intersection marker. These
// are ids rather than entities, and they go stale as soon as either segment is
// split, which is almost immediately.
type Inter struct {
	A, B int
}

type EntityBase struct {
	ID     int
	ZIndex int
	Style  *Style
	// Edge entities take part in intersection checks and subdivision
	Edge  bool
	Inter *Inter
}

func (b *EntityBase) Base() *EntityBase {
	return b
}

type Segment struct {
	EntityBase
	start, end Point
	// Line coefficients such that a*x + b*y + c = 0 on the segment's line.
	// Derived from the endpoints once, in the constructor. Endpoints never
	// change; a moved segment is a new segment.
	a, b, c float64
}

type Marker struct {
	EntityBase
	at Point
}

// Optional construction parameters shared by both entity kinds.
type Extra struct {
	// Pin the id instead of drawing one from the id source. Inserting another
	// entity with the same id replaces this one.
	ID     *int
	ZIndex int
	Style  *Style
	Edge   bool
	// Segments only: force the segment onto the horizontal or vertical through
	// its start, whichever is closer to the requested end.
	Snap bool
}

func newEntityBase(ids IDSource, extra *Extra) EntityBase {
	if extra == nil {
		extra = &Extra{}
	}
	base := EntityBase{
		ZIndex: extra.ZIndex,
		Style:  extra.Style,
		Edge:   extra.Edge,
	}
	if extra.ID != nil {
		base.ID = *extra.ID
	} else {
		base.ID = ids.NextID()
	}
	return base
}

func NewSegment(ids IDSource, x1, y1, x2, y2 float64, extra *Extra) *Segment {
	if extra != nil && extra.Snap {
		if dx, dy := x2-x1, y2-y1; dy*dy > dx*dx {
			x2 = x1
		} else {
			y2 = y1
		}
	}
	return &Segment{
		EntityBase: newEntityBase(ids, extra),
		start:      Point{x1, y1},
		end:        Point{x2, y2},
		a:          y2 - y1,
		b:          x1 - x2,
		c:          x2*y1 - x1*y2,
	}
}

func NewPoint(ids IDSource, x, y float64, extra *Extra) *Marker {
	return &Marker{
		EntityBase: newEntityBase(ids, extra),
		at:         Point{x, y},
	}
}

func (s *Segment) Start() Point { return s.start }
func (s *Segment) End() Point   { return s.end }

func (s *Segment) Coefficients() (a, b, c float64) {
	return s.a, s.b, s.c
}

func (s *Segment) Ends() []Point {
	return []Point{s.start, s.end}
}

func (s *Segment) Length() float64 {
	return pointDistance(s.start, s.end)
}

func (s *Segment) String() string {
	return fmt.Sprintf("Segment %s #%d (%g, %g)-(%g, %g) z=%d",
		s.DbgName(), s.ID, s.start.X, s.start.Y, s.end.X, s.end.Y, s.ZIndex)
}

// With colors on, edge segments are green and plain segments cyan
func (s *Segment) DbgName() string {
	name := dbg.Name(s)
	if s.Edge {
		return palette().Green(name).String()
	}
	return palette().Cyan(name).String()
}

func (s *Segment) isEntity() {}

func (m *Marker) At() Point { return m.at }

func (m *Marker) Ends() []Point {
	return []Point{m.at}
}

func (m *Marker) String() string {
	desc := fmt.Sprintf("Marker %s #%d (%g, %g) z=%d", m.DbgName(), m.ID, m.at.X, m.at.Y, m.ZIndex)
	if m.Inter != nil {
		desc += fmt.Sprintf(" crossing #%d × #%d", m.Inter.A, m.Inter.B)
	}
	return desc
}

// With colors on, intersection markers are red and user placed dots yellow
func (m *Marker) DbgName() string {
	name := dbg.Name(m)
	if m.Inter != nil {
		return palette().Red(name).String()
	}
	return palette().Yellow(name).String()
}

func (m *Marker) isEntity() {}

var colors atomic.Pointer[aurora.Aurora]

func init() {
	SetColor(false)
}

// Turn ANSI colors in entity names on or off. Off by default, so names are
// plain text in logs and piped output.
func SetColor(enabled bool) {
	au := aurora.NewAurora(enabled)
	colors.Store(&au)
}

func palette() aurora.Aurora {
	return *colors.Load()
}

func IsEdge(e Entity) bool {
	return e.Base().Edge
}
