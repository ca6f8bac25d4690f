// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Grid container and its addressing rules.
package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Grid is a fixed-size rectangle of cells stored in a single row-major slice.
// The zero value is not usable; build a Grid with Parse.
type Grid struct {
	cells  []Cell
	width  int
	height int
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Contains reports whether c lies inside the grid.
func (g *Grid) Contains(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// index maps an in-bounds coordinate to its slot in cells. Callers must check
// Contains first.
func (g *Grid) index(c Coordinate) int {
	return c.X + g.width*c.Y
}

// At returns the cell at c. The boolean is false when c is outside the grid,
// in which case the returned cell is Empty.
func (g *Grid) At(c Coordinate) (Cell, bool) {
	if !g.Contains(c) {
		return Empty, false
	}
	return g.cells[g.index(c)], true
}

// Set overwrites the cell at c. It returns ErrCoordinateNotInGrid when c is
// outside the grid and leaves every cell untouched in that case.
func (g *Grid) Set(c Coordinate, cell Cell) error {
	if !g.Contains(c) {
		return fmt.Errorf("%w: %s outside %dx%d", ErrCoordinateNotInGrid, c, g.width, g.height)
	}
	g.cells[g.index(c)] = cell
	return nil
}

// All returns an iterator over every cell in row-major order: row 0 left to
// right, then row 1, and so on. Each call starts a fresh pass that observes
// the grid contents at the time the cell is reached.
func (g *Grid) All() iter.Seq2[Coordinate, Cell] {
	return func(yield func(Coordinate, Cell) bool) {
		for i, cell := range g.cells {
			c := Coordinate{X: i % g.width, Y: i / g.width}
			if !yield(c, cell) {
				return
			}
		}
	}
}

// Count returns how many cells hold the given state.
func (g *Grid) Count(cell Cell) int {
	n := 0
	for _, c := range g.cells {
		if c == cell {
			n++
		}
	}
	return n
}

// Render writes the grid back out as text, one newline-terminated line per
// row, using marker for paper rolls and empty for everything else.
func (g *Grid) Render(marker, empty rune) string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for c, cell := range g.All() {
		if cell == PaperRoll {
			b.WriteRune(marker)
		} else {
			b.WriteRune(empty)
		}
		if c.X == g.width-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// String renders the grid with '@' for rolls and '.' for empty floor.
func (g *Grid) String() string {
	return g.Render(DefaultRollMarker, '.')
}
