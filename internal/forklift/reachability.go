// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package forklift

import "github.com/specialistvlad/forkliftgo/internal/grid"

// DefaultThreshold is the largest number of occupied neighbors a roll may
// have and still be reachable.
const DefaultThreshold = 3

// MaxThreshold is the number of neighbors of an interior cell. Any threshold
// at or above it makes every roll reachable.
const MaxThreshold = 8

// neighborOffsets lists the eight positions around a cell, row by row.
var neighborOffsets = [...]grid.Coordinate{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// CountNeighbors returns how many of the up to eight cells around c hold a
// paper roll. Positions outside the grid are skipped, so corner cells have at
// most three candidates and edge cells at most five.
func CountNeighbors(g *grid.Grid, c grid.Coordinate) int {
	n := 0
	for _, off := range neighborOffsets {
		if cell, ok := g.At(c.Translate(off.X, off.Y)); ok && cell == grid.PaperRoll {
			n++
		}
	}
	return n
}

// ReachableRolls returns the coordinates of every paper roll with at most
// threshold occupied neighbors, in the grid's row-major order. The grid is
// only read.
func ReachableRolls(g *grid.Grid, threshold int) []grid.Coordinate {
	var reachable []grid.Coordinate
	for c, cell := range g.All() {
		if cell == grid.PaperRoll && CountNeighbors(g, c) <= threshold {
			reachable = append(reachable, c)
		}
	}
	return reachable
}
