package grid

import "fmt"

// Text symbols used by the grid format.
const (
	SymbolEmpty    = '.'
	SymbolObstacle = '#'
)

// Cell classifies a single grid cell.
type Cell uint8

const (
	// Empty cells can be entered by the agent.
	Empty Cell = iota
	// Obstacle cells block the agent; they never move or disappear.
	Obstacle
)

// String returns the text symbol of the cell.
func (c Cell) String() string {
	if c == Obstacle {
		return string(SymbolObstacle)
	}
	return string(SymbolEmpty)
}

// Direction is one of the four cardinal facings, ordered clockwise.
type Direction uint8

const (
	// Up faces toward row 0.
	Up Direction = iota
	// Right faces toward the last column.
	Right
	// Down faces toward the last row.
	Down
	// Left faces toward column 0.
	Left
)

// numDirections is the length of the clockwise cycle.
const numDirections = 4

// deltas holds (dRow, dCol) per Direction, indexed by its value.
var deltas = [numDirections][2]int{
	Up:    {-1, 0},
	Right: {0, 1},
	Down:  {1, 0},
	Left:  {0, -1},
}

// glyphs holds the agent marker per Direction.
var glyphs = [numDirections]rune{
	Up:    '^',
	Right: '>',
	Down:  'v',
	Left:  '<',
}

// Clockwise returns the direction after a 90° clockwise turn.
// Four turns return to the original direction.
func (d Direction) Clockwise() Direction {
	return (d + 1) % numDirections
}

// Delta returns the row and column offsets of one step in direction d.
func (d Direction) Delta() (dRow, dCol int) {
	v := deltas[d%numDirections]
	return v[0], v[1]
}

// Glyph returns the agent marker for direction d.
func (d Direction) Glyph() rune {
	return glyphs[d%numDirections]
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// DirectionFromGlyph maps an agent marker to its Direction.
// ok is false when r is not one of "^ > v <".
func DirectionFromGlyph(r rune) (d Direction, ok bool) {
	for i, g := range glyphs {
		if g == r {
			return Direction(i), true
		}
	}
	return 0, false
}

// Position is a (row, column) coordinate. It is only meaningful for a
// given Grid while Grid.InBounds reports true.
type Position struct {
	Row, Col int
}

// Add returns the position one step away from p in direction d.
func (p Position) Add(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Start is the agent marker found while parsing: where the agent stands
// and where it faces before the first step.
type Start struct {
	Position  Position
	Direction Direction
}

// Grid is an immutable rectangular layout of cells.
// Width and Height define its dimensions; cells are stored row-major.
type Grid struct {
	Width, Height int
	cells         []Cell
}
