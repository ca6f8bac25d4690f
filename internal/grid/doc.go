// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package grid provides the in-memory model of a warehouse floor: a fixed
// width by height rectangle of cells, each either empty or holding a stack of
// paper rolls.
//
// # Core Concepts
//
//   - Coordinate: a zero-indexed (column, row) position. X grows to the right,
//     Y grows downwards, matching the order in which layout lines are read.
//
//   - Cell: the two-state content of one position, Empty or PaperRoll.
//
//   - Grid: owns one contiguous slice of width*height cells stored in
//     row-major order. The slice is sized once by Parse and never resized.
//
// # Addressing
//
// The index of a coordinate is x + width*y. Every read and write goes through
// a single bounds check before that index is computed, so a coordinate that is
// outside the rectangle can never touch the backing storage. Reads outside the
// rectangle are routine while probing neighbors, so At reports them with a
// boolean instead of an error. Writes outside the rectangle return
// ErrCoordinateNotInGrid.
//
// # Layouts
//
// Parse builds a Grid from text where every line is a row. A designated
// marker character (DefaultRollMarker, '@') is a paper roll and any other
// character is empty floor. Render is the inverse of Parse.
package grid
