// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionsCannotBeZero is returned when a layout has no rows or its
	// rows are empty.
	ErrDimensionsCannotBeZero = errors.New("grid dimensions cannot be zero")

	// ErrNotRectangular is returned when the rows of a layout differ in length.
	ErrNotRectangular = errors.New("layout is not rectangular")

	// ErrCoordinateNotInGrid is returned when a write targets a coordinate
	// outside the grid.
	ErrCoordinateNotInGrid = errors.New("coordinate not in grid")
)

// MalformedLayoutError describes why a textual layout could not be turned
// into a Grid. Err is always one of ErrDimensionsCannotBeZero or
// ErrNotRectangular.
type MalformedLayoutError struct {
	Err error

	// Line is the 1-based line number of the offending row, or 0 when the
	// problem is not tied to a single row.
	Line int
	// Want and Got are the expected and actual row widths for
	// ErrNotRectangular.
	Want int
	Got  int
}

// Error implements the error interface for MalformedLayoutError.
func (e *MalformedLayoutError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("malformed layout: %v", e.Err)
	}
	return fmt.Sprintf("malformed layout: %v: line %d has width %d, want %d", e.Err, e.Line, e.Got, e.Want)
}

// Unwrap returns the underlying sentinel so callers can use errors.Is.
func (e *MalformedLayoutError) Unwrap() error {
	return e.Err
}
