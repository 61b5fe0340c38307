package patrol

import (
	"fmt"

	"github.com/katalvlaran/patrol/grid"
)

// Status is the outcome of a single Step.
type Status uint8

const (
	// Continuing means the agent is still inside the grid.
	Continuing Status = iota
	// Exited means the agent's next move left the grid; the run is over.
	Exited
	// Trapped means all four neighbours are obstacles; the agent cannot move.
	Trapped
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Continuing:
		return "continuing"
	case Exited:
		return "exited"
	case Trapped:
		return "trapped"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Agent is the patrolling entity: where it stands and where it faces.
type Agent struct {
	Position  grid.Position
	Direction grid.Direction
}

// StepEvent describes one completed Step and is passed to OnStep observers.
type StepEvent struct {
	// Step is the 1-based number of the step.
	Step int
	// Before and After are the agent states around the step. After equals
	// Before when the step exited or the agent was trapped.
	Before, After Agent
	// Rotations is the number of in-place clockwise turns taken (0..3).
	Rotations int
	// Status is the step outcome.
	Status Status
	// Visited is the distinct-visit count after the step.
	Visited int
}

// Option configures an Engine via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds run limits and observer callbacks.
type Options struct {
	// MaxSteps, if > 0, stops Run after this many steps with ErrStepLimit.
	// A value of 0 disables the bound.
	MaxSteps int

	// OnStep is called after every Step.
	OnStep func(StepEvent)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no step bound and a no-op OnStep hook.
func DefaultOptions() Options {
	return Options{
		MaxSteps: 0,
		OnStep:   func(StepEvent) {},
	}
}

// WithMaxSteps bounds the number of steps Run may take.
//
//	n > 0: stop after n steps
//	n == 0: no bound
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnStep registers an observer called after every Step.
// Several observers may be registered; they run in registration order.
func WithOnStep(fn func(StepEvent)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnStep
		o.OnStep = func(ev StepEvent) {
			prev(ev)
			fn(ev)
		}
	}
}
