package grid

import (
	"bufio"
	"io"
	"strings"
)

// Encode writes g in its text form to w, one row per line, with the agent
// marker of start drawn at start.Position. The output parses back to an
// identical Grid and Start.
// Complexity: O(W×H).
func Encode(w io.Writer, g *Grid, start Start) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := Position{Row: r, Col: c}
			ch := rune(SymbolEmpty)
			switch {
			case p == start.Position:
				ch = start.Direction.Glyph()
			case g.cells[g.Index(p)] == Obstacle:
				ch = SymbolObstacle
			}
			if _, err := bw.WriteRune(ch); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Format returns the text form written by Encode.
func Format(g *Grid, start Start) string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	_ = Encode(&sb, g, start)
	return sb.String()
}
