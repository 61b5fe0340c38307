package patrol

import "github.com/katalvlaran/patrol/grid"

// Visited is the set of distinct positions an agent has occupied.
// It is backed by a row-major seen bitmap sized to the grid and only grows.
type Visited struct {
	width, height int
	seen          []bool
	count         int
}

// NewVisited returns an empty set sized for g.
// Complexity: O(W×H) memory.
func NewVisited(g *grid.Grid) *Visited {
	return &Visited{
		width:  g.Width,
		height: g.Height,
		seen:   make([]bool, g.Size()),
	}
}

// Record adds p to the set and reports whether it was new.
// Recording a known position, or one outside the grid, changes nothing.
// Complexity: O(1).
func (v *Visited) Record(p grid.Position) bool {
	i, ok := v.index(p)
	if !ok || v.seen[i] {
		return false
	}
	v.seen[i] = true
	v.count++
	return true
}

// Contains reports whether p has been recorded.
func (v *Visited) Contains(p grid.Position) bool {
	i, ok := v.index(p)
	return ok && v.seen[i]
}

// Count returns the number of distinct positions recorded.
func (v *Visited) Count() int {
	return v.count
}

// Positions returns the recorded positions in row-major order.
// Complexity: O(W×H).
func (v *Visited) Positions() []grid.Position {
	out := make([]grid.Position, 0, v.count)
	for i, ok := range v.seen {
		if ok {
			out = append(out, grid.Position{Row: i / v.width, Col: i % v.width})
		}
	}
	return out
}

func (v *Visited) index(p grid.Position) (int, bool) {
	if p.Row < 0 || p.Row >= v.height || p.Col < 0 || p.Col >= v.width {
		return 0, false
	}
	return p.Row*v.width + p.Col, true
}
