package internal

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestRenderSegment(t *testing.T) {
	var ids Counter
	s := NewSegment(&ids, 1, 2, 3, 4, nil)
	assert.Equal(t, Line{X1: 1, Y1: 2, X2: 3, Y2: 4, Stroke: DefaultStroke}, Render(s))

	s.Style = &Style{Stroke: colornames.Red}
	assert.Equal(t, Line{X1: 1, Y1: 2, X2: 3, Y2: 4, Stroke: colornames.Red}, Render(s))
}

func TestRenderMarker(t *testing.T) {
	var ids Counter
	m := NewPoint(&ids, 5, 6, nil)
	assert.Equal(t, Circle{CX: 5, CY: 6, R: 3, Stroke: DefaultStroke}, Render(m))

	m.Style = &Style{Fill: color.Transparent}
	assert.Equal(t, Circle{CX: 5, CY: 6, R: 3, Stroke: DefaultStroke, Fill: color.Transparent}, Render(m))
}

func TestDrawEntities(t *testing.T) {
	var ids Counter
	entities := []Entity{
		NewSegment(&ids, 0, 10.5, 100, 10.5, nil),
		NewPoint(&ids, 50, 50, &Extra{Style: &Style{Stroke: colornames.Red, Fill: colornames.Red}}),
	}
	c := DrawEntities(entities, 100, 100)
	img := c.Image()
	assert.Equal(t, 100, img.Bounds().Dx())

	r, g, b, _ := img.At(50, 10).RGBA()
	assert.True(t, r > 0 && g > 0 && b > 0, "line pixel should be lit, got %d %d %d", r, g, b)

	r, g, b, _ = img.At(50, 50).RGBA()
	assert.True(t, r > 0 && g == 0 && b == 0, "marker center should be red, got %d %d %d", r, g, b)

	r, g, b, _ = img.At(90, 90).RGBA()
	assert.Equal(t, []uint32{0, 0, 0}, []uint32{r, g, b}, "background should be black")
}

func TestWritePNG(t *testing.T) {
	store := NewStore()
	_, err := store.InsertMany(LoadFixture("cross", store))
	require.NoError(t, err)

	var buf bytes.Buffer
	board := BoardOptions{Width: 40, Height: 30}
	require.NoError(t, WritePNG(store, board, &buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())
}
