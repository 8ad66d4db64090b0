// Package search implements Greedy Best-First Search over a [grid.Grid].
//
// It exposes two entry points:
//
//   - [Search] / [Run]: run the algorithm to completion.
//   - [Stepper]: advance the search one expansion at a time to drive
//     visualisations of the frontier.
//
// The frontier is ordered by the Manhattan distance to the goal only; cost
// already travelled is ignored, so returned routes are not guaranteed to be
// shortest. A cell keeps the predecessor that first discovered it.
//
// Each call owns its own frontier, visited set and predecessor map; the
// package holds no mutable state, so independent searches may run
// concurrently.
package search
