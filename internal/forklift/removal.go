// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package forklift

import (
	"fmt"

	"github.com/specialistvlad/forkliftgo/internal/grid"
)

// Round summarizes one scan-then-remove cycle.
type Round struct {
	// Number is 1-based.
	Number int
	// Removed is the number of rolls taken away in this round.
	Removed int
	// Remaining is the number of rolls left on the floor after the round.
	Remaining int
}

// IterativeRemoval removes reachable rolls with DefaultThreshold until no roll
// is reachable and returns the total number removed. The grid is modified in
// place.
func IterativeRemoval(g *grid.Grid) int {
	return removeUntilStable(g, DefaultThreshold, nil)
}

// removeUntilStable runs rounds until a scan finds nothing. onRound, when
// set, is called after every round that removed something.
func removeUntilStable(g *grid.Grid, threshold int, onRound func(Round)) int {
	remaining := g.Count(grid.PaperRoll)
	total := 0

	for number := 1; ; number++ {
		reachable := ReachableRolls(g, threshold)
		if len(reachable) == 0 {
			return total
		}

		for _, c := range reachable {
			if err := g.Set(c, grid.Empty); err != nil {
				// ReachableRolls only yields in-bounds coordinates of this grid.
				panic(fmt.Errorf("forklift: removing roll at %s: %w", c, err))
			}
		}

		total += len(reachable)
		remaining -= len(reachable)
		if onRound != nil {
			onRound(Round{Number: number, Removed: len(reachable), Remaining: remaining})
		}
	}
}
