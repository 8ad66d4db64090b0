package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/gbfsviz/internal/grid"
)

// Cell glyphs, two columns wide so the board keeps a square aspect.
const (
	glyphWall     = "██"
	glyphFree     = "  "
	glyphStart    = "S "
	glyphGoal     = "G "
	glyphToken    = "ᗧ "
	glyphTrail    = "• "
	glyphVisited  = "░░"
	glyphFrontier = "▒▒"
)

// Layers holds what is drawn on top of the bare grid.
type Layers struct {
	// Token is the agent position; nil hides it.
	Token    *grid.Cell
	Trail    []grid.Cell
	Visited  []grid.Cell
	Frontier []grid.Cell
}

// RenderGrid draws g as text, one line per row.
//
// Precedence from top: token, start/goal markers, trail, frontier,
// visited, then the cell marker.
func RenderGrid(g *grid.Grid, start, goal grid.Cell, th Theme, l Layers) string {
	trail := toSet(l.Trail)
	visited := toSet(l.Visited)
	frontier := toSet(l.Frontier)

	wall := lipgloss.NewStyle().Foreground(th.Wall)
	free := lipgloss.NewStyle().Foreground(th.Free)
	startStyle := lipgloss.NewStyle().Bold(true).Foreground(th.Start)
	goalStyle := lipgloss.NewStyle().Bold(true).Foreground(th.Goal)
	token := lipgloss.NewStyle().Bold(true).Foreground(th.Token)
	trailStyle := lipgloss.NewStyle().Foreground(th.Trail)
	visitedStyle := lipgloss.NewStyle().Foreground(th.Visited)
	frontierStyle := lipgloss.NewStyle().Foreground(th.Frontier)

	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < g.Cols(); col++ {
			c := grid.Cell{Row: r, Col: col}
			switch {
			case l.Token != nil && *l.Token == c:
				b.WriteString(token.Render(glyphToken))
			case c == start:
				b.WriteString(startStyle.Render(glyphStart))
			case c == goal:
				b.WriteString(goalStyle.Render(glyphGoal))
			case trail[c]:
				b.WriteString(trailStyle.Render(glyphTrail))
			case frontier[c]:
				b.WriteString(frontierStyle.Render(glyphFrontier))
			case visited[c]:
				b.WriteString(visitedStyle.Render(glyphVisited))
			case g.IsWall(c):
				b.WriteString(wall.Render(glyphWall))
			default:
				b.WriteString(free.Render(glyphFree))
			}
		}
	}
	return b.String()
}

func toSet(cells []grid.Cell) map[grid.Cell]bool {
	set := make(map[grid.Cell]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return set
}
