package grid

import (
	"fmt"
	"strings"
)

// Marker is the content of a single grid cell.
type Marker byte

const (
	Free  Marker = '.'
	Wall  Marker = '#'
	Start Marker = 'S'
	Goal  Marker = 'G'
)

// ParseMarker maps a character to its marker.
func ParseMarker(r rune) (Marker, error) {
	switch m := Marker(r); m {
	case Free, Wall, Start, Goal:
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrMarker, r)
}

func (m Marker) String() string { return string(rune(m)) }

// Cell is a (row, column) coordinate.
type Cell struct {
	Row int
	Col int
}

// Less orders cells by row, then column.
func (c Cell) Less(o Cell) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Add returns c shifted by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Moves lists the orthogonal steps in expansion order: up, down, left, right.
var Moves = [4]Cell{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Grid is an immutable rectangular array of markers.
type Grid struct {
	cells [][]Marker
	rows  int
	cols  int
}

// New builds a grid from rows of markers. The rows are copied.
func New(rows [][]Marker) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	cols := len(rows[0])
	cells := make([][]Marker, len(rows))
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRagged, i, len(row), cols)
		}
		for j, m := range row {
			if _, err := ParseMarker(rune(m)); err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
		}
		cells[i] = append([]Marker(nil), row...)
	}
	return &Grid{cells: cells, rows: len(rows), cols: cols}, nil
}

// Parse reads one row per line. Whitespace within a line is ignored and
// blank lines are skipped, so both "S..#" and "S . . #" are accepted.
func Parse(lines []string) (*Grid, error) {
	rows := make([][]Marker, 0, len(lines))
	for i, line := range lines {
		row := make([]Marker, 0, len(line))
		col := 0
		for _, r := range line {
			if r == ' ' || r == '\t' || r == '\r' {
				continue
			}
			m, err := ParseMarker(r)
			if err != nil {
				return nil, fmt.Errorf("line %d col %d: %w", i, col, err)
			}
			row = append(row, m)
			col++
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return New(rows)
}

// ParseString splits s on newlines and parses the result.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.Split(s, "\n"))
}

// MustParse is like ParseString but panics on error. Intended for
// built-in mazes and tests.
func MustParse(s string) *Grid {
	g, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the marker at c. Out-of-bounds cells read as walls.
func (g *Grid) At(c Cell) Marker {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[c.Row][c.Col]
}

// IsWall reports whether c is a wall or outside the grid.
func (g *Grid) IsWall(c Cell) bool {
	return g.At(c) == Wall
}

// Neighbors returns the in-bounds, non-wall orthogonal neighbours of c in
// the fixed order of Moves.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(Moves))
	for _, d := range Moves {
		n := c.Add(d)
		if g.InBounds(n) && g.cells[n.Row][n.Col] != Wall {
			out = append(out, n)
		}
	}
	return out
}

// Find returns the first cell holding m in row-major order.
func (g *Grid) Find(m Marker) (Cell, bool) {
	for i, row := range g.cells {
		for j, v := range row {
			if v == m {
				return Cell{Row: i, Col: j}, true
			}
		}
	}
	return Cell{}, false
}

// Lines renders each row as a string of marker characters.
func (g *Grid) Lines() []string {
	lines := make([]string, g.rows)
	for i, row := range g.cells {
		lines[i] = string(row)
	}
	return lines
}

func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}
