package grid

import (
	"fmt"
	"io"
	"strings"
)

// Parse reads the text form of a grid from r. See ParseLines for the format.
func Parse(r io.Reader) (*Grid, Start, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, Start{}, fmt.Errorf("grid: read input: %w", err)
	}
	return ParseString(string(data))
}

// ParseString parses the text form of a grid held in s.
// Lines may end in "\n" or "\r\n".
func ParseString(s string) (*Grid, Start, error) {
	return ParseLines(strings.Split(s, "\n"))
}

// ParseLines parses one grid row per line.
//
// Every row must have the same length and use only ".", "#" and the agent
// markers "^", ">", "v", "<"; exactly one marker must appear in the whole
// grid. The marker cell itself is Empty. Trailing "\r" on a line and
// trailing blank lines are ignored.
//
// Errors: ErrFormat, ErrMissingAgent, ErrMultipleAgents, wrapped with the
// offending row and column.
// Complexity: O(W×H) time and memory.
func ParseLines(lines []string) (*Grid, Start, error) {
	end := len(lines)
	for end > 0 && strings.TrimRight(lines[end-1], "\r") == "" {
		end--
	}
	if end == 0 {
		return nil, Start{}, fmt.Errorf("%w: grid must have at least one row and one column", ErrFormat)
	}

	var (
		start Start
		found bool
		rows  = make([][]Cell, 0, end)
	)
	for r, line := range lines[:end] {
		line = strings.TrimRight(line, "\r")
		row := make([]Cell, 0, len(line))
		for c, ch := range []rune(line) {
			switch ch {
			case SymbolEmpty:
				row = append(row, Empty)
			case SymbolObstacle:
				row = append(row, Obstacle)
			default:
				d, ok := DirectionFromGlyph(ch)
				if !ok {
					return nil, Start{}, fmt.Errorf("%w: unknown symbol %q at row %d, column %d", ErrFormat, ch, r, c)
				}
				here := Position{Row: r, Col: c}
				if found {
					return nil, Start{}, fmt.Errorf("%w: markers at %v and %v", ErrMultipleAgents, start.Position, here)
				}
				start, found = Start{Position: here, Direction: d}, true
				row = append(row, Empty)
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, Start{}, fmt.Errorf("%w: row %d has length %d, want %d", ErrFormat, r, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}

	g, err := New(rows)
	if err != nil {
		return nil, Start{}, err
	}
	if !found {
		return nil, Start{}, ErrMissingAgent
	}

	return g, start, nil
}
