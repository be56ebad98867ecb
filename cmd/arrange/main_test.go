package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/arrange/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntity(t *testing.T) {
	var ids internal.Counter

	e, err := parseEntity("1 2", &ids, false)
	require.NoError(t, err)
	marker, ok := e.(*internal.Marker)
	require.True(t, ok)
	assert.Equal(t, internal.Point{X: 1, Y: 2}, marker.At())
	assert.False(t, internal.IsEdge(marker))

	e, err = parseEntity("0 0 10 -2.5", &ids, false)
	require.NoError(t, err)
	segment, ok := e.(*internal.Segment)
	require.True(t, ok)
	assert.Equal(t, internal.Point{X: 10, Y: -2.5}, segment.End())
	assert.True(t, internal.IsEdge(segment))

	e, err = parseEntity("0 0 10 2", &ids, true)
	require.NoError(t, err)
	assert.Equal(t, internal.Point{X: 10, Y: 0}, e.(*internal.Segment).End())

	assert.Equal(t, 3, ids.Peek())
}

func TestParseEntityErrors(t *testing.T) {
	var ids internal.Counter
	for _, line := range []string{"1", "1 2 3", "1 2 3 4 5", "1 two"} {
		_, err := parseEntity(line, &ids, false)
		assert.Error(t, err, line)
	}
}

func TestReadEntities(t *testing.T) {
	input := `
# a cross
0 0 10 10
0 10 10 0

5 1
`
	store := internal.NewStore()
	entities, err := readEntities(strings.NewReader(input), store, false)
	require.NoError(t, err)
	require.Len(t, entities, 3)

	_, err = store.InsertMany(entities)
	require.NoError(t, err)
	// 4 pieces, the crossing marker and the loose point
	assert.Equal(t, 6, store.Len())
	assert.Empty(t, store.UnresolvedCrossings())
}

func TestReadEntitiesReportsLine(t *testing.T) {
	input := "0 0 1 1\n\n0 0 1\n"
	_, err := readEntities(strings.NewReader(input), internal.NewStore(), false)
	assert.EqualError(t, err, "line 3: expected 2 or 4 coordinates, got 3")
}

func TestIsTerminalFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f))
}
