package config

import (
	"fmt"
	"unicode/utf8"
)

// Floor is the format-agnostic description of one warehouse floor to analyse.
type Floor struct {
	// Name identifies the floor in logs and in the report.
	Name string
	// Layout is the raw text of the floor, one row per line.
	Layout string
	// Marker is the layout character that marks a paper roll.
	Marker rune
	// Threshold is the largest number of occupied neighbors a reachable roll
	// may have.
	Threshold int
	// Source is the file the floor was declared in.
	Source string
}

// Defaults holds the values applied to floors that do not set them
// explicitly. They normally come from command-line flags.
type Defaults struct {
	Marker    rune
	Threshold int
}

// ParseMarker validates a marker given as a string. It must be exactly one
// character.
func ParseMarker(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("marker must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '\n' || r == '\r' {
		return 0, fmt.Errorf("marker cannot be a line break")
	}
	return r, nil
}
