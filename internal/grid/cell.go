// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the value types stored in and used to address a Grid.
package grid

import "fmt"

// Cell is the content of a single floor position.
type Cell int

const (
	// Empty is open floor space.
	Empty Cell = iota
	// PaperRoll is a position occupied by a stack of paper rolls.
	PaperRoll
)

// String returns a human-readable name for the cell, used in logs.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case PaperRoll:
		return "paper_roll"
	default:
		return fmt.Sprintf("Cell(%d)", int(c))
	}
}

// Coordinate is a zero-indexed position on the floor. X is the column and Y
// is the row.
type Coordinate struct {
	X int
	Y int
}

// String formats the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Translate returns the coordinate offset by dx columns and dy rows. The
// result is not bounds checked.
func (c Coordinate) Translate(dx, dy int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}
