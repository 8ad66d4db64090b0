package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/gbfsviz/internal/grid"
	"github.com/san-kum/gbfsviz/internal/viz"
)

// GridToSVG draws the maze as one square per cell, the route as a polyline
// through cell centres and the agent as a circle on the goal. An empty path
// draws the "No Path Found!" caption instead.
func GridToSVG(g *grid.Grid, start, goal grid.Cell, path []grid.Cell, cellSize int, th viz.Theme) string {
	if g == nil {
		return ""
	}
	if cellSize <= 0 {
		cellSize = 60
	}
	size := float64(cellSize)
	width := g.Cols() * cellSize
	height := g.Rows()*cellSize + cellSize

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g stroke="%s" stroke-width="1">
`, width, height, width, height, th.Free, th.Outline))

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := grid.Cell{Row: r, Col: c}
			fill := th.Free
			switch {
			case cell == start:
				fill = th.Start
			case cell == goal:
				fill = th.Goal
			case g.IsWall(cell):
				fill = th.Wall
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, c*cellSize, r*cellSize, cellSize, cellSize, fill))
		}
	}
	sb.WriteString("</g>\n")

	textY := float64(g.Rows())*size + size*0.6
	if len(path) == 0 {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="Arial" font-size="16" font-weight="bold" text-anchor="middle">No Path Found!</text>
`, float64(width)/2, textY, th.Error))
		sb.WriteString("</svg>")
		return sb.String()
	}

	center := func(c grid.Cell) (float64, float64) {
		return float64(c.Col)*size + size/2, float64(c.Row)*size + size/2
	}

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="%.1f" stroke-linecap="round" stroke-linejoin="round" d="`, th.Trail, size/8))
	for i, c := range path {
		x, y := center(c)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("M%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")

	// Token diameter is two thirds of a cell.
	x, y := center(path[len(path)-1])
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, x, y, size/3, th.Token))
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="Arial" font-size="16" font-weight="bold" text-anchor="middle">Goal Reached!</text>
`, float64(width)/2, textY, th.Text))
	sb.WriteString("</svg>")
	return sb.String()
}
