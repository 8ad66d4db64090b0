package search

import "github.com/san-kum/gbfsviz/internal/grid"

// Heuristic estimates the remaining distance from a cell to the goal.
type Heuristic func(from, to grid.Cell) int

// Manhattan returns |Δrow| + |Δcol|.
func Manhattan(a, b grid.Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
