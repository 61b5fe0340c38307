// Package patrol simulates a single agent patrolling a grid.Grid.
//
// Protocol, applied once per Engine.Step:
//
//  1. Record the agent's position as visited.
//  2. Look at the cell in front of the agent.
//  3. If it lies outside the grid, the agent leaves: Step returns Exited.
//  4. If it is an obstacle, turn 90° clockwise in place and look again,
//     at most three times.
//  5. Otherwise step onto it, keeping the facing: Step returns Continuing.
//
// An agent walled in on all four sides cannot move; Step returns Trapped.
//
// Run repeats Step until the agent exits and returns the number of distinct
// cells occupied, start included. Cycle detection is not attempted:
// WithMaxSteps bounds a run on inputs that may never reach the boundary.
//
// Observers (for example a renderer) subscribe with WithOnStep; the engine
// itself neither prints nor sleeps.
//
// Complexity: O(1) per step, O(W×H) memory for the visited set.
//
// Errors:
//
//   - ErrGridNil: nil grid passed to New.
//   - ErrInvalidStart: start outside the grid or on an obstacle.
//   - ErrOptionViolation: invalid Option.
//   - ErrTrapped: Run found the agent boxed in on all four sides.
//   - ErrStepLimit: Run reached the WithMaxSteps bound before the agent exited.
package patrol
