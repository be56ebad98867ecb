package internal

import (
	"io"
	"strconv"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read entities out of an SVG document: every <line> becomes an edge segment
// and every <circle> becomes a point marker at its center. Everything else is
// ignored. Entities come back in document order, which is the order they
// should be inserted in.
func ReadSVG(r io.Reader, ids IDSource) ([]Entity, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var entities []Entity
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		switch el.Name {
		case "line":
			coords, err := floatAttributes(el, "x1", "y1", "x2", "y2")
			if err != nil {
				return err
			}
			entities = append(entities, NewSegment(ids, coords[0], coords[1], coords[2], coords[3], &Extra{Edge: true}))
		case "circle":
			coords, err := floatAttributes(el, "cx", "cy")
			if err != nil {
				return err
			}
			entities = append(entities, NewPoint(ids, coords[0], coords[1], nil))
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return entities, nil
}

func floatAttributes(el *svgparser.Element, names ...string) ([]float64, error) {
	values := make([]float64, len(names))
	for i, name := range names {
		raw, ok := el.Attributes[name]
		if !ok {
			return nil, errors.Errorf("<%s> is missing %s", el.Name, name)
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "<%s> has invalid %s %q", el.Name, name, raw)
		}
		values[i] = value
	}
	return values, nil
}
