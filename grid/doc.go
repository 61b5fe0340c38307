// Package grid loads and describes the map a patrol runs on.
//
// What:
//
//   - Grid is an immutable, rectangular layout of Empty and Obstacle cells.
//   - Parse reads the text form (".", "#" and one of "^ > v <") and locates
//     the single agent marker, returning its Position and Direction as Start.
//   - Format/Encode write a Grid and Start back to the same text form.
//
// Coordinates:
//
//   - Position{Row, Col}, Row grows downward, Col grows to the right.
//   - Cells are stored row-major: Index(p) = p.Row*Width + p.Col.
//
// Complexity:
//
//   - Parse:  O(W×H) time and memory.
//   - Encode: O(W×H) time.
//   - InBounds, At, Index: O(1).
//
// Errors:
//
//   - ErrFormat: empty input, ragged rows or an unknown symbol.
//   - ErrMissingAgent: no agent marker in the grid.
//   - ErrMultipleAgents: more than one agent marker in the grid.
package grid
