package patrol

import (
	"fmt"

	"github.com/katalvlaran/patrol/grid"
)

// maxRotations is the number of in-place turns tried before an agent is trapped.
const maxRotations = 3

// Engine owns a grid and its single agent for the lifetime of one run.
// It is not safe for concurrent use.
type Engine struct {
	grid      *grid.Grid
	agent     Agent
	visited   *Visited
	opts      Options
	steps     int
	rotations int
	status    Status
}

// New creates an Engine with the agent placed at start.
// The start position is visited from the first instant.
//
// Returns ErrGridNil, ErrInvalidStart (outside the grid or on an obstacle)
// or ErrOptionViolation.
func New(g *grid.Grid, start grid.Start, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start.Position) {
		return nil, fmt.Errorf("%w: %v outside %dx%d grid", ErrInvalidStart, start.Position, g.Width, g.Height)
	}
	if g.IsObstacle(start.Position) {
		return nil, fmt.Errorf("%w: %v is an obstacle", ErrInvalidStart, start.Position)
	}

	e := &Engine{
		grid:    g,
		agent:   Agent{Position: start.Position, Direction: start.Direction},
		visited: NewVisited(g),
		opts:    o,
		status:  Continuing,
	}
	e.visited.Record(start.Position)

	return e, nil
}

// Step advances the agent by one move of the patrol protocol and returns
// the resulting Status. Once the run has ended, Step does nothing and
// returns the final status again.
// Complexity: O(1).
func (e *Engine) Step() Status {
	if e.status != Continuing {
		return e.status
	}
	e.steps++
	before := e.agent
	e.visited.Record(e.agent.Position)

	turns := 0
	for {
		next := e.agent.Position.Add(e.agent.Direction)
		if !e.grid.InBounds(next) {
			e.status = Exited
			break
		}
		if !e.grid.IsObstacle(next) {
			e.agent.Position = next
			e.visited.Record(next)
			break
		}
		if turns == maxRotations {
			// every side is blocked; leave the agent as it was
			e.agent = before
			turns = 0
			e.status = Trapped
			break
		}
		e.agent.Direction = e.agent.Direction.Clockwise()
		turns++
	}
	e.rotations += turns

	e.opts.OnStep(StepEvent{
		Step:      e.steps,
		Before:    before,
		After:     e.agent,
		Rotations: turns,
		Status:    e.status,
		Visited:   e.visited.Count(),
	})

	return e.status
}

// Run steps the agent until it leaves the grid and returns the number of
// distinct positions visited, start included.
//
// If the agent is trapped Run returns ErrTrapped; if the WithMaxSteps bound
// is reached first it returns ErrStepLimit. The count so far is returned
// alongside either error.
func (e *Engine) Run() (int, error) {
	for e.status == Continuing {
		if e.opts.MaxSteps > 0 && e.steps >= e.opts.MaxSteps {
			return e.visited.Count(), fmt.Errorf("%w: %d steps", ErrStepLimit, e.steps)
		}
		e.Step()
	}
	if e.status == Trapped {
		return e.visited.Count(), fmt.Errorf("%w at %v", ErrTrapped, e.agent.Position)
	}

	return e.visited.Count(), nil
}

// Agent returns the current agent state.
func (e *Engine) Agent() Agent { return e.agent }

// Grid returns the grid the agent patrols.
func (e *Engine) Grid() *grid.Grid { return e.grid }

// Visited returns the live visited set. Callers must not mutate it.
func (e *Engine) Visited() *Visited { return e.visited }

// Steps returns the number of steps taken so far.
func (e *Engine) Steps() int { return e.steps }

// Rotations returns the total number of in-place turns taken so far.
func (e *Engine) Rotations() int { return e.rotations }

// Status returns the status of the most recent step, Continuing before the first.
func (e *Engine) Status() Status { return e.status }

// Simulate builds an Engine for g and start and runs it to completion.
func Simulate(g *grid.Grid, start grid.Start, opts ...Option) (int, error) {
	e, err := New(g, start, opts...)
	if err != nil {
		return 0, err
	}
	return e.Run()
}
