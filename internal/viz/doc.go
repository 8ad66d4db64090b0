// Package viz animates a pathfinding run in the terminal using Bubble Tea.
//
// The animation consumes the route computed by package search and moves a
// Pac-Man token one cell per tick. Optionally the search itself is shown
// first, one frontier expansion per tick, via [search.Stepper].
//
// # Key Bindings
//
//	Space - Pause/Resume
//	N     - Single step while paused
//	R     - Restart
//	S     - Toggle visited/frontier overlay
//	T     - Cycle color themes
//	+/-   - Change speed
//	?     - Show help overlay
package viz
