// A planar arrangement of line segments that keeps itself subdivided.
//
// Every segment inserted into a Store is split wherever it crosses a segment
// already there, the crossed segments are split at the same points, and a
// marker point is added at each crossing. Between operations, no two edge
// segments in a store cross anywhere but at an endpoint they share.
//
// The Store is meant to sit under an interactive drawing tool: one user
// action, one insertion, fully settled before the next. It is not safe for
// concurrent use.
package arrange

import "github.com/osuushi/arrange/internal"

type Point = internal.Point
type Entity = internal.Entity
type Segment = internal.Segment
type Marker = internal.Marker
type Style = internal.Style
type Extra = internal.Extra
type Store = internal.Store
type IDSource = internal.IDSource
type Counter = internal.Counter
type BoardOptions = internal.BoardOptions

var (
	NewStore              = internal.NewStore
	NewSegment            = internal.NewSegment
	NewPoint              = internal.NewPoint
	WithIDSource          = internal.WithIDSource
	WithLogger            = internal.WithLogger
	SkipIntersectionCheck = internal.SkipIntersectionCheck
	WithRandomColor       = internal.WithRandomColor
	Intersect             = internal.Intersect
	SplitAt               = internal.SplitAt
	SetLogger             = internal.SetLogger
	SetColor              = internal.SetColor
	FixedID               = internal.FixedID
	ReadSVG               = internal.ReadSVG
	DefaultBoardOptions   = internal.DefaultBoardOptions
	LoadBoardOptions      = internal.LoadBoardOptions
)

const (
	MouseID    = internal.MouseID
	TempLineID = internal.TempLineID
)

var ErrUnsupportedEntityType = internal.ErrUnsupportedEntityType

// Build an arrangement from plain segments, each given as {x1, y1, x2, y2},
// inserted in order. Returns the arrangement's entities in draw order.
func Arrange(segments ...[4]float64) ([]Entity, error) {
	store := internal.NewStore()
	for _, s := range segments {
		segment := store.NewSegment(s[0], s[1], s[2], s[3], &internal.Extra{Edge: true})
		if _, err := store.Insert(segment); err != nil {
			return nil, err
		}
	}
	return store.Sorted(), nil
}
