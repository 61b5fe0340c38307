package grid

import "fmt"

// New constructs a Grid from a non-empty, rectangular 2D slice of cells.
// It deep-copies the input to ensure immutability.
// Returns ErrFormat if rows has no rows, no columns, or rows of differing lengths.
// Complexity: O(W×H) time and memory.
func New(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: grid must have at least one row and one column", ErrFormat)
	}
	h, w := len(rows), len(rows[0])
	cells := make([]Cell, 0, w*h)
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrFormat, r, len(row), w)
		}
		cells = append(cells, row...)
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// At returns the cell at p. Positions outside the grid read as Empty;
// callers decide boundary exit with InBounds.
// Complexity: O(1).
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Empty
	}
	return g.cells[g.Index(p)]
}

// IsObstacle reports whether p is an in-bounds Obstacle cell.
func (g *Grid) IsObstacle(p Position) bool {
	return g.InBounds(p) && g.cells[g.Index(p)] == Obstacle
}

// Size returns the number of cells, Width×Height.
func (g *Grid) Size() int {
	return g.Width * g.Height
}

// Index maps p to its row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Row*g.Width + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.Width, Col: idx % g.Width}
}

// Obstacles returns every obstacle position in row-major order.
// Complexity: O(W×H).
func (g *Grid) Obstacles() []Position {
	var out []Position
	for i, c := range g.cells {
		if c == Obstacle {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// Rows returns a deep copy of the grid as a 2D slice, rows[row][col].
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.Height)
	for r := 0; r < g.Height; r++ {
		rows[r] = make([]Cell, g.Width)
		copy(rows[r], g.cells[r*g.Width:(r+1)*g.Width])
	}
	return rows
}
