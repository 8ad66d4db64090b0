// Package grid defines the maze model searched by the pathfinder.
//
// A [Grid] is a rectangular, immutable array of [Marker] values:
//
//	S . . # . . .
//	# # . # . # .
//	. . . . . # .
//
// Cells are addressed by [Cell] (row, column) and are comparable, so they
// can be used directly as map keys. Grids are built with [New] or [Parse];
// both reject empty and ragged input.
package grid
