package search

import "github.com/san-kum/gbfsviz/internal/grid"

// Snapshot exposes the search state after a single step. Collections are
// copies and may be retained by the caller.
type Snapshot struct {
	Current  grid.Cell
	Frontier []grid.Cell
	Visited  []grid.Cell
	Done     bool
	Found    bool
	// Path is set once Done; empty when the goal is unreachable.
	Path      []grid.Cell
	StepIndex int
}

// Stepper drives the search one frontier pop per call to Step. It is not
// safe for concurrent use.
type Stepper struct {
	e *engine
}

// NewStepper prepares a search from start to goal without expanding anything.
func NewStepper(g *grid.Grid, start, goal grid.Cell) *Stepper {
	return &Stepper{e: newEngine(g, start, goal, Manhattan)}
}

// Step advances the search by one frontier pop and returns a snapshot. Once
// the search is done, Step keeps returning the final snapshot.
func (s *Stepper) Step() Snapshot {
	s.e.step()
	return s.Snapshot()
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool { return s.e.done }

// Snapshot returns the current state without advancing.
func (s *Stepper) Snapshot() Snapshot {
	snap := Snapshot{
		Current:   s.e.current,
		Frontier:  s.e.frontier.cells(),
		Visited:   append([]grid.Cell(nil), s.e.expanded...),
		Done:      s.e.done,
		Found:     s.e.found,
		StepIndex: s.e.steps,
	}
	if snap.Done {
		snap.Path = s.e.path()
		snap.Found = len(snap.Path) > 0
	}
	return snap
}

// Result returns the statistics gathered so far. The path is only
// meaningful once Done reports true.
func (s *Stepper) Result() Result {
	return s.e.result()
}
