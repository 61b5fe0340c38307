package patrol

import "errors"

// Sentinel errors for patrol construction and runs.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("patrol: grid is nil")

	// ErrInvalidStart is returned when the start lies outside the grid or on an obstacle.
	ErrInvalidStart = errors.New("patrol: invalid start position")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("patrol: invalid option supplied")

	// ErrTrapped is returned by Run when every neighbour of the agent is an obstacle.
	ErrTrapped = errors.New("patrol: agent is boxed in")

	// ErrStepLimit is returned by Run when the configured step bound is reached.
	ErrStepLimit = errors.New("patrol: step limit reached before exit")
)
