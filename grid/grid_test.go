package grid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patrol/grid"
)

// lab is the 10×10 reference map; the guard starts at row 6, column 4 facing up.
const lab = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

//----------------------------------------------------------------------------//
// Direction
//----------------------------------------------------------------------------//

// TestDirection_Clockwise checks the Up→Right→Down→Left→Up cycle.
func TestDirection_Clockwise(t *testing.T) {
	want := map[grid.Direction]grid.Direction{
		grid.Up:    grid.Right,
		grid.Right: grid.Down,
		grid.Down:  grid.Left,
		grid.Left:  grid.Up,
	}
	for d, next := range want {
		assert.Equal(t, next, d.Clockwise(), "Clockwise(%v)", d)
	}
}

// TestDirection_FourTurnsIdentity verifies the rotation cycle has length 4.
func TestDirection_FourTurnsIdentity(t *testing.T) {
	for _, d := range []grid.Direction{grid.Up, grid.Right, grid.Down, grid.Left} {
		got := d
		for i := 0; i < 4; i++ {
			got = got.Clockwise()
		}
		assert.Equal(t, d, got)
		assert.NotEqual(t, d, d.Clockwise().Clockwise())
	}
}

// TestDirection_Glyphs verifies glyph lookup in both directions.
func TestDirection_Glyphs(t *testing.T) {
	cases := []struct {
		glyph rune
		dir   grid.Direction
		dRow  int
		dCol  int
	}{
		{'^', grid.Up, -1, 0},
		{'>', grid.Right, 0, 1},
		{'v', grid.Down, 1, 0},
		{'<', grid.Left, 0, -1},
	}
	for _, tc := range cases {
		t.Run(tc.dir.String(), func(t *testing.T) {
			d, ok := grid.DirectionFromGlyph(tc.glyph)
			require.True(t, ok)
			assert.Equal(t, tc.dir, d)
			assert.Equal(t, tc.glyph, d.Glyph())
			dr, dc := d.Delta()
			assert.Equal(t, tc.dRow, dr)
			assert.Equal(t, tc.dCol, dc)
		})
	}
	_, ok := grid.DirectionFromGlyph('x')
	assert.False(t, ok)
}

//----------------------------------------------------------------------------//
// New and InBounds
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]grid.Cell
	}{
		{"EmptyRows", [][]grid.Cell{}},
		{"EmptyCols", [][]grid.Cell{{}}},
		{"NonRectangular", [][]grid.Cell{{grid.Empty, grid.Empty}, {grid.Obstacle}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.cells)
			assert.ErrorIs(t, err, grid.ErrFormat)
		})
	}
}

// TestNew_DeepCopy checks that mutating the input does not leak into the Grid.
func TestNew_DeepCopy(t *testing.T) {
	cells := [][]grid.Cell{{grid.Empty, grid.Obstacle}}
	g, err := grid.New(cells)
	require.NoError(t, err)

	cells[0][0] = grid.Obstacle
	assert.Equal(t, grid.Empty, g.At(grid.Position{Row: 0, Col: 0}))
}

// TestInBounds checks InBounds on a 3-wide, 2-high grid.
func TestInBounds(t *testing.T) {
	g, _, err := grid.ParseString("^.#\n#..")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)

	for _, p := range []grid.Position{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []grid.Position{{-1, 0}, {0, 3}, {2, 1}, {1, -1}} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
		assert.False(t, g.IsObstacle(p), "IsObstacle(%v)", p)
	}
}

// TestIndexCoordinate verifies the row-major mapping round-trips.
func TestIndexCoordinate(t *testing.T) {
	g, _, err := grid.ParseString(lab)
	require.NoError(t, err)
	for i := 0; i < g.Size(); i++ {
		assert.Equal(t, i, g.Index(g.Coordinate(i)))
	}
	assert.Equal(t, grid.Position{Row: 6, Col: 4}, g.Coordinate(64))
}

//----------------------------------------------------------------------------//
// Parse
//----------------------------------------------------------------------------//

// TestParse_Lab checks dimensions, obstacles and the start marker of the reference map.
func TestParse_Lab(t *testing.T) {
	g, start, err := grid.Parse(strings.NewReader(lab))
	require.NoError(t, err)

	assert.Equal(t, 10, g.Width)
	assert.Equal(t, 10, g.Height)
	assert.Equal(t, grid.Start{Position: grid.Position{Row: 6, Col: 4}, Direction: grid.Up}, start)
	assert.Equal(t, grid.Empty, g.At(start.Position), "marker cell is empty")

	want := []grid.Position{
		{0, 4}, {1, 9}, {3, 2}, {4, 7}, {6, 1}, {7, 8}, {8, 0}, {9, 6},
	}
	assert.Equal(t, want, g.Obstacles())
}

// TestParse_LineEndings accepts CRLF and trailing blank lines.
func TestParse_LineEndings(t *testing.T) {
	g, start, err := grid.ParseString("..#\r\n.<.\r\n\r\n\n")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, grid.Left, start.Direction)
	assert.True(t, g.IsObstacle(grid.Position{Row: 0, Col: 2}))
}

// TestParse_Errors covers each rejection path.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", grid.ErrFormat},
		{"OnlyBlankLines", "\n\n", grid.ErrFormat},
		{"Ragged", "..^\n..\n...", grid.ErrFormat},
		{"BlankLineInside", "..^\n\n...", grid.ErrFormat},
		{"UnknownSymbol", "..^\n.x.", grid.ErrFormat},
		{"MissingAgent", "...\n.#.", grid.ErrMissingAgent},
		{"MultipleAgents", "^..\n..>", grid.ErrMultipleAgents},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, _, err := grid.ParseString(tc.input)
			assert.Nil(t, g)
			if !errors.Is(err, tc.err) {
				t.Errorf("ParseString(%q) error = %v; want %v", tc.input, err, tc.err)
			}
		})
	}
}

// failingReader returns an error on every read.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

// TestParse_ReadError wraps reader failures.
func TestParse_ReadError(t *testing.T) {
	_, _, err := grid.Parse(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}

//----------------------------------------------------------------------------//
// Format
//----------------------------------------------------------------------------//

// TestFormat_RoundTrip re-parses the formatted grid and compares layouts.
func TestFormat_RoundTrip(t *testing.T) {
	g, start, err := grid.ParseString(lab)
	require.NoError(t, err)

	text := grid.Format(g, start)
	assert.Equal(t, lab, text)

	g2, start2, err := grid.ParseString(text)
	require.NoError(t, err)
	assert.Equal(t, g.Width, g2.Width)
	assert.Equal(t, g.Height, g2.Height)
	assert.Equal(t, g.Rows(), g2.Rows())
	assert.Equal(t, g.Obstacles(), g2.Obstacles())
	assert.Equal(t, start, start2)
}
