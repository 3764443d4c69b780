// Package search computes the fewest elevator trips that bring every
// generator and microchip of a facility to its top floor.
//
// What
//
//   - Breadth-first search over facility configurations, starting from the
//     initial one. Edges are single elevator trips: one floor up or down,
//     carrying one or two items from the elevator's floor.
//   - Configurations that would fry a microchip are never enqueued. The
//     initial configuration is exempt: it is checked for structure only.
//   - Configurations are deduplicated by facility.Key, which ignores element
//     labels, so swapping two elements' floors yields the same node.
//   - Returns a Result containing:
//   - Steps: minimum number of trips
//   - Path: every configuration from the initial one to the goal
//   - Explored / Expanded: discovered and dequeued configuration counts
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a configuration joins the frontier)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth and MaxStates limits (0 means no limit).
//
// Why
//
//	Element interchangeability collapses the labelled state space by roughly
//	the factorial of the element count, which keeps seven-element
//	facilities within a few hundred thousand configurations.
//
// Determinism
//
//	facility.State.Successors enumerates trips in a fixed order and the
//	frontier is a FIFO, so Steps, Path and the hook sequence are fully
//	reproducible for a given input.
//
// Goal
//
//	A configuration is the goal when every item is on floor floorCount-1.
//	The elevator is not checked: the last item can only arrive aboard it.
//	A facility that already has every item on top needs 0 trips.
//
// Memory
//
//	Each discovered configuration is stored once in an arena and refers to
//	its predecessor by index; the path is rebuilt by walking those indices.
//	Everything is released when Solve returns.
//
// Usage
//
//	steps, err := search.MinSteps(puzzle.Initial, puzzle.FloorCount)
//	if errors.Is(err, search.ErrNoSolution) {
//	    // the layout cannot be solved
//	}
//
//	res, err := search.Solve(
//	    puzzle.Initial, puzzle.FloorCount,
//	    search.WithContext(ctx),
//	    search.WithMaxStates(1_000_000),
//	    search.WithLogger(logrus.StandardLogger()),
//	)
//
// Errors
//
//   - facility.ErrFloorCount, ErrFloorOutOfRange, ErrUnpaired for a malformed initial configuration.
//   - ErrOptionViolation      for a negative MaxDepth or MaxStates.
//   - ErrNoSolution            if the reachable configurations never include the goal.
//   - ErrDepthLimit            if MaxDepth hid every remaining configuration.
//   - ErrStateLimit            if MaxStates was exceeded.
//   - ctx.Err() on cancellation, and wrapped OnVisit errors.
package search
