// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package grid

import (
	"strings"
	"unicode/utf8"
)

// DefaultRollMarker is the layout character that marks a paper roll.
const DefaultRollMarker = '@'

// Parse builds a Grid from a textual layout. Every line is one row and all
// rows must have the same number of characters. A character equal to marker
// becomes PaperRoll, any other character becomes Empty.
//
// Both "\n" and "\r\n" line endings are accepted. Blank lines before the first
// row and after the last row are ignored; a blank line between rows is a row
// of width zero and fails the rectangular check.
//
// On failure the returned error is a *MalformedLayoutError wrapping
// ErrDimensionsCannotBeZero or ErrNotRectangular, and no Grid is returned.
func Parse(text string, marker rune) (*Grid, error) {
	rows, firstLine := splitRows(text)
	if len(rows) == 0 {
		return nil, &MalformedLayoutError{Err: ErrDimensionsCannotBeZero}
	}

	width := utf8.RuneCountInString(rows[0])
	height := len(rows)
	cells := make([]Cell, 0, width*height)

	for i, row := range rows {
		if got := utf8.RuneCountInString(row); got != width {
			return nil, &MalformedLayoutError{
				Err:  ErrNotRectangular,
				Line: firstLine + i,
				Want: width,
				Got:  got,
			}
		}
		for _, ch := range row {
			if ch == marker {
				cells = append(cells, PaperRoll)
			} else {
				cells = append(cells, Empty)
			}
		}
	}

	return &Grid{cells: cells, width: width, height: height}, nil
}

// splitRows splits text into lines, strips carriage returns and drops blank
// lines at both ends. It also returns the 1-based line number of the first
// kept row so errors can point at the original text.
func splitRows(text string) ([]string, int) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	start := 0
	for start < len(lines) && lines[start] == "" {
		start++
	}
	end := len(lines)
	for end > start && lines[end-1] == "" {
		end--
	}

	return lines[start:end], start + 1
}
