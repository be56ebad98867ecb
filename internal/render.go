package internal

import (
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
)

// Radius of the circle drawn for a marker, before scaling
const MarkerRadius = 3

var DefaultStroke color.Color = colornames.White

// Something a renderer can draw. Primitives are a pure projection of an
// entity; they hold no reference back to it.
type Primitive interface {
	Draw(c *gg.Context)
}

type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         color.Color
}

type Circle struct {
	CX, CY, R float64
	Stroke    color.Color
	// nil leaves the circle unfilled
	Fill color.Color
}

// Project an entity onto its drawable primitive. Style fields that are set
// override the defaults.
func Render(e Entity) Primitive {
	style := e.Base().Style
	if style == nil {
		style = &Style{}
	}
	stroke := style.Stroke
	if stroke == nil {
		stroke = DefaultStroke
	}

	switch e := e.(type) {
	case *Segment:
		return Line{
			X1: e.start.X, Y1: e.start.Y,
			X2: e.end.X, Y2: e.end.Y,
			Stroke: stroke,
		}
	case *Marker:
		return Circle{
			CX: e.at.X, CY: e.at.Y, R: MarkerRadius,
			Stroke: stroke,
			Fill:   style.Fill,
		}
	}
	fatalf("no renderer for %T", e)
	return nil
}

func (l Line) Draw(c *gg.Context) {
	c.DrawLine(l.X1, l.Y1, l.X2, l.Y2)
	c.SetColor(l.Stroke)
	c.Stroke()
}

func (circle Circle) Draw(c *gg.Context) {
	c.DrawCircle(circle.CX, circle.CY, circle.R)
	if circle.Fill != nil {
		c.SetColor(circle.Fill)
		c.FillPreserve()
	}
	c.SetColor(circle.Stroke)
	c.Stroke()
}
