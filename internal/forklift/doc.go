// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package forklift decides which paper rolls on a warehouse floor a forklift
// can reach.
//
// A roll is reachable when at most a threshold number of the eight cells
// around it (horizontal, vertical and diagonal, clipped at the floor edges)
// also hold rolls. DefaultThreshold is 3.
//
// # Snapshot
//
// ReachableRolls scans a grid once and returns every reachable roll in
// row-major order. The grid is not modified.
//
// # Removal
//
// IterativeRemoval repeatedly takes away every reachable roll until none is
// left. Each round alternates between two states:
//
//	Scanning ──(set not empty)──▶ Removing
//	    ▲                            │
//	    └────────────────────────────┘
//	Scanning ──(set empty)──▶ done
//
// A round's set is computed from one unmodified snapshot, so removals in the
// same round never cascade; they only become visible to the next scan. Every
// round removes at least one roll from a finite set, so the loop ends after at
// most as many rounds as there were rolls.
//
// Engine wraps the same loop with a configurable threshold, per-round hooks
// and structured logging, and returns a Report with the round history.
package forklift
