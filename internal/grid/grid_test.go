package grid

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLayout = "..@@.@@@@.\n@@@.@.@.@@\n@@@@@.@.@@\n@.@@@@..@.\n@@.@@@@.@@\n.@@@@@@@.@\n.@.@.@.@@@\n@.@@@.@@@@\n.@@@@@@@@.\n@.@.@@@.@."

func mustParse(t *testing.T, text string) *Grid {
	t.Helper()
	g, err := Parse(text, DefaultRollMarker)
	require.NoError(t, err)
	return g
}

func TestParse_SampleLayout(t *testing.T) {
	g := mustParse(t, sampleLayout)

	assert.Equal(t, 10, g.Width())
	assert.Equal(t, 10, g.Height())
	require.Len(t, g.cells, 100)

	// Spot-check the first row: "..@@.@@@@."
	want := []Cell{Empty, Empty, PaperRoll, PaperRoll, Empty, PaperRoll, PaperRoll, PaperRoll, PaperRoll, Empty}
	assert.Equal(t, want, g.cells[:10])
	assert.Equal(t, 71, g.Count(PaperRoll))
	assert.Equal(t, 29, g.Count(Empty))
}

func TestParse_RoundTrip(t *testing.T) {
	g := mustParse(t, sampleLayout)
	assert.Equal(t, sampleLayout+"\n", g.String())

	// Any non-marker character is empty floor, so it comes back as the empty rune.
	g = mustParse(t, "a@b\n#@ ")
	assert.Equal(t, "_@_\n_@_\n", g.Render('@', '_'))
}

func TestParse_CustomMarker(t *testing.T) {
	g, err := Parse("x.x\n.x.", 'x')
	require.NoError(t, err)

	assert.Equal(t, 3, g.Count(PaperRoll), "x.x holds two rolls and .x. one")
	assert.Equal(t, "@.@\n.@.\n", g.String())
}

func TestParse_LineEndings(t *testing.T) {
	t.Run("crlf", func(t *testing.T) {
		g := mustParse(t, "@.\r\n.@\r\n")
		assert.Equal(t, 2, g.Width())
		assert.Equal(t, 2, g.Height())
	})

	t.Run("surrounding blank lines are ignored", func(t *testing.T) {
		g := mustParse(t, "\n\n@@@\n...\n\n")
		assert.Equal(t, 3, g.Width())
		assert.Equal(t, 2, g.Height())
	})

	t.Run("multibyte characters count as one column", func(t *testing.T) {
		g := mustParse(t, "é@\n@é")
		assert.Equal(t, 2, g.Width())
	})
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		wantErr  error
		wantLine int
	}{
		{name: "empty input", input: "", wantErr: ErrDimensionsCannotBeZero},
		{name: "only newlines", input: "\n\r\n\n", wantErr: ErrDimensionsCannotBeZero},
		{name: "rows of 3 and 4", input: "@@@\n@@@@", wantErr: ErrNotRectangular, wantLine: 2},
		{name: "interior blank row", input: "@@\n\n@@", wantErr: ErrNotRectangular, wantLine: 2},
		{name: "line numbers count leading blanks", input: "\n@@\n@", wantErr: ErrNotRectangular, wantLine: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Parse(tc.input, DefaultRollMarker)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)

			var layoutErr *MalformedLayoutError
			require.True(t, errors.As(err, &layoutErr))
			assert.Equal(t, tc.wantLine, layoutErr.Line)
		})
	}
}

func TestMalformedLayoutError_Message(t *testing.T) {
	_, err := Parse("@@@\n@@@@", DefaultRollMarker)
	require.Error(t, err)
	assert.Equal(t, "malformed layout: layout is not rectangular: line 2 has width 4, want 3", err.Error())

	_, err = Parse("", DefaultRollMarker)
	require.Error(t, err)
	assert.Equal(t, "malformed layout: grid dimensions cannot be zero", err.Error())
}

func TestAtAndSet_BoundsSafety(t *testing.T) {
	layouts := map[string]string{
		"1x1":   "@",
		"3x2":   "@.@\n.@.",
		"10x10": sampleLayout,
	}

	for name, layout := range layouts {
		t.Run(name, func(t *testing.T) {
			g := mustParse(t, layout)
			before := g.String()

			outside := []Coordinate{
				{X: g.Width(), Y: 0},
				{X: 0, Y: g.Height()},
				{X: g.Width(), Y: g.Height()},
				{X: g.Width() + 7, Y: 1},
				{X: -1, Y: 0},
				{X: 0, Y: -1},
			}
			for _, c := range outside {
				cell, ok := g.At(c)
				assert.False(t, ok, "At(%s) should be absent", c)
				assert.Equal(t, Empty, cell)

				err := g.Set(c, PaperRoll)
				assert.ErrorIs(t, err, ErrCoordinateNotInGrid, "Set(%s)", c)
			}
			assert.Equal(t, before, g.String(), "rejected writes must not change the grid")
		})
	}
}

func TestSet_WritesExactlyOneCell(t *testing.T) {
	g := mustParse(t, "@@@\n@@@\n@@@")

	require.NoError(t, g.Set(Coordinate{X: 1, Y: 2}, Empty))

	cell, ok := g.At(Coordinate{X: 1, Y: 2})
	require.True(t, ok)
	assert.Equal(t, Empty, cell)
	assert.Equal(t, "@@@\n@@@\n@.@\n", g.String())
	assert.Equal(t, 8, g.Count(PaperRoll))
}

func TestAll_RowMajorOrder(t *testing.T) {
	g := mustParse(t, "@..\n.@.")

	var coords []Coordinate
	var cells []Cell
	for c, cell := range g.All() {
		coords = append(coords, c)
		cells = append(cells, cell)
	}

	assert.Equal(t, []Coordinate{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1},
	}, coords)
	assert.Equal(t, []Cell{PaperRoll, Empty, Empty, Empty, PaperRoll, Empty}, cells)
}

func TestAll_RestartableAndStoppable(t *testing.T) {
	g := mustParse(t, sampleLayout)
	seq := g.All()

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	assert.Equal(t, 100, count())
	assert.Equal(t, 100, count())

	visited := 0
	for c := range seq {
		visited++
		if c.Y == 1 {
			break
		}
	}
	assert.Equal(t, 11, visited)

	// A fresh pass sees writes made since the previous pass.
	require.NoError(t, g.Set(Coordinate{X: 0, Y: 0}, PaperRoll))
	for c, cell := range seq {
		assert.Equal(t, PaperRoll, cell)
		assert.Equal(t, Coordinate{}, c)
		break
	}
}

func TestCell_String(t *testing.T) {
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "paper_roll", PaperRoll.String())
	assert.True(t, strings.HasPrefix(Cell(7).String(), "Cell("))
	assert.Equal(t, "(3,4)", Coordinate{X: 3, Y: 4}.String())
	assert.Equal(t, Coordinate{X: 2, Y: 5}, Coordinate{X: 3, Y: 4}.Translate(-1, 1))
}
