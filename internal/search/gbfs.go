package search

import "github.com/san-kum/gbfsviz/internal/grid"

// Result contains the outcome of a search.
type Result struct {
	// Path runs from start to goal inclusive; empty when the goal is unreachable.
	Path []grid.Cell
	// Expanded lists cells in the order they were expanded.
	Expanded []grid.Cell
	// Discovered counts frontier insertions, including the start cell.
	Discovered  int
	MaxFrontier int
	// Steps counts frontier pops, including the final pop of the goal.
	Steps int
	Found bool
}

// Search returns the route found by Greedy Best-First Search from start to
// goal, or an empty slice when none exists.
//
// start and goal must lie within g. The start marker is not checked: a wall
// at start only blocks entering that cell as a neighbour, the seed itself is
// still expanded.
func Search(g *grid.Grid, start, goal grid.Cell) []grid.Cell {
	return Run(g, start, goal).Path
}

// Run performs the same search as Search and reports expansion statistics.
func Run(g *grid.Grid, start, goal grid.Cell) Result {
	e := newEngine(g, start, goal, Manhattan)
	for e.step() {
	}
	return e.result()
}

// engine owns the per-call search state shared by Run and Stepper.
type engine struct {
	grid      *grid.Grid
	start     grid.Cell
	goal      grid.Cell
	heuristic Heuristic

	frontier *frontier
	visited  map[grid.Cell]bool
	cameFrom map[grid.Cell]grid.Cell
	expanded []grid.Cell

	current     grid.Cell
	steps       int
	discovered  int
	maxFrontier int
	done        bool
	found       bool
}

func newEngine(g *grid.Grid, start, goal grid.Cell, h Heuristic) *engine {
	e := &engine{
		grid:      g,
		start:     start,
		goal:      goal,
		heuristic: h,
		frontier:  newFrontier(),
		visited:   make(map[grid.Cell]bool),
		cameFrom:  make(map[grid.Cell]grid.Cell),
		current:   start,
	}
	e.enqueue(start)
	return e
}

func (e *engine) enqueue(c grid.Cell) {
	e.frontier.push(c, e.heuristic(c, e.goal))
	e.discovered++
	if n := e.frontier.len(); n > e.maxFrontier {
		e.maxFrontier = n
	}
}

// step pops one frontier entry. It returns false once the goal has been
// popped or the frontier is exhausted.
func (e *engine) step() bool {
	if e.done {
		return false
	}
	if e.frontier.len() == 0 {
		e.done = true
		return false
	}

	current := e.frontier.pop()
	e.current = current
	e.steps++
	if current == e.goal {
		e.done, e.found = true, true
		return false
	}

	e.visited[current] = true
	e.expanded = append(e.expanded, current)
	for _, n := range e.grid.Neighbors(current) {
		if e.visited[n] || e.frontier.contains(n) {
			continue
		}
		// First discoverer wins; cameFrom is never overwritten.
		e.cameFrom[n] = current
		e.enqueue(n)
	}
	return true
}

func (e *engine) path() []grid.Cell {
	return reconstructPath(e.cameFrom, e.start, e.goal)
}

func (e *engine) result() Result {
	path := e.path()
	return Result{
		Path:        path,
		Expanded:    append([]grid.Cell(nil), e.expanded...),
		Discovered:  e.discovered,
		MaxFrontier: e.maxFrontier,
		Steps:       e.steps,
		Found:       len(path) > 0,
	}
}

// reconstructPath walks predecessor links back from goal to start. A
// missing link yields an empty, non-nil slice.
func reconstructPath(cameFrom map[grid.Cell]grid.Cell, start, goal grid.Cell) []grid.Cell {
	path := []grid.Cell{goal}
	for current := goal; current != start; {
		prev, ok := cameFrom[current]
		if !ok {
			return []grid.Cell{}
		}
		path = append(path, prev)
		current = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
