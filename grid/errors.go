package grid

import "errors"

var (
	// ErrFormat indicates an empty grid, rows of differing lengths or an unknown symbol.
	ErrFormat = errors.New("grid: malformed grid")
	// ErrMissingAgent indicates the grid holds no agent marker.
	ErrMissingAgent = errors.New("grid: no agent marker found")
	// ErrMultipleAgents indicates the grid holds more than one agent marker.
	ErrMultipleAgents = errors.New("grid: more than one agent marker found")
)
