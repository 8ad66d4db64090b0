package export

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/gbfsviz/internal/grid"
	"github.com/san-kum/gbfsviz/internal/search"
	"github.com/san-kum/gbfsviz/internal/viz"
)

func TestGridToSVG(t *testing.T) {
	g := grid.MustParse("S.\n#.\n.G")
	start, goal := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 1}
	path := search.Search(g, start, goal)

	out := GridToSVG(g, start, goal, path, 60, viz.ThemeClassic)

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `width="120" height="240"`)
	// background plus one rect per cell
	assert.Equal(t, 1+6, strings.Count(out, "<rect"))
	assert.Contains(t, out, `fill="#808080"`)
	assert.Contains(t, out, `d="M30.0,30.0 L90.0,30.0 L90.0,90.0 L90.0,150.0"`)
	assert.Contains(t, out, `<circle cx="90.0" cy="150.0" r="20.0" fill="#ffff00"/>`)
	assert.Contains(t, out, "Goal Reached!")
	requireWellFormed(t, out)
}

func TestGridToSVGNoPath(t *testing.T) {
	g := grid.MustParse("S#\n#G")
	out := GridToSVG(g, grid.Cell{}, grid.Cell{Row: 1, Col: 1}, nil, 0, viz.ThemeClassic)

	assert.Contains(t, out, "No Path Found!")
	assert.NotContains(t, out, "<path")
	assert.NotContains(t, out, "<circle")
	requireWellFormed(t, out)
}

func TestGridToSVGNilGrid(t *testing.T) {
	assert.Empty(t, GridToSVG(nil, grid.Cell{}, grid.Cell{}, nil, 60, viz.ThemeClassic))
}

func requireWellFormed(t *testing.T, doc string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if err != nil {
			require.EqualError(t, err, "EOF")
			return
		}
	}
}
