package search

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/rtg/facility"
)

// noParent marks the root node of the arena.
const noParent = -1

// node is one discovered configuration. Nodes are appended to the arena in
// discovery order and never mutated afterwards.
type node struct {
	state  facility.State
	parent int // arena index, noParent for the root
	depth  int
}

// walker encapsulates mutable search state. It is owned by a single Solve
// call; nothing outlives it.
type walker struct {
	floors  int
	opts    Options
	ctx     context.Context
	log     logrus.FieldLogger
	nodes   []node // arena; nodes[head:] is the FIFO frontier
	head    int
	visited map[facility.Key]struct{}
	pruned  bool // MaxDepth kept at least one configuration out
}

// MinSteps returns the minimum number of elevator trips needed to move
// every item of initial to floor floorCount-1. It fails with ErrNoSolution
// when no sequence of safe trips reaches that goal.
func MinSteps(initial facility.State, floorCount int, opts ...Option) (int, error) {
	res, err := Solve(initial, floorCount, opts...)
	if err != nil {
		return 0, err
	}
	return res.Steps, nil
}

// Solve runs breadth-first search from initial in a facility with
// floorCount floors, applying any number of functional Options.
// Returns facility validation errors (ErrFloorCount, ErrFloorOutOfRange,
// ErrUnpaired) for invalid input, ErrOptionViolation for
// bad options, ErrNoSolution, ErrDepthLimit or ErrStateLimit when the goal
// is not reached, the context error on cancellation, or any wrapped
// OnVisit error.
//
// Hooks receive configurations owned by the search; they must not modify
// or retain the Floors slice.
func Solve(initial facility.State, floorCount int, opts ...Option) (*Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Only the structure of the initial configuration is checked; the
	// safety rule applies to the configurations the elevator produces.
	if err := initial.Validate(floorCount); err != nil {
		return nil, err
	}

	w := &walker{
		floors:  floorCount,
		opts:    o,
		ctx:     o.Ctx,
		log:     o.Logger.WithFields(logrus.Fields{"floors": floorCount, "elements": initial.Elements()}),
		visited: make(map[facility.Key]struct{}),
	}
	w.log.WithField("initial", initial.String()).Debug("search started")

	// Seed the arena with the initial configuration (no parent)
	root := initial.Clone()
	w.enqueue(root, root.Key(), noParent, 0)
	goal, err := w.loop()
	if err != nil {
		w.log.WithFields(logrus.Fields{
			"explored": len(w.visited),
			"expanded": w.head,
		}).WithError(err).Debug("search failed")
		return nil, err
	}

	res := &Result{
		Path:     w.pathTo(goal),
		Explored: len(w.visited),
		Expanded: w.head,
	}
	res.Steps = len(res.Path) - 1
	w.log.WithFields(logrus.Fields{
		"steps":    res.Steps,
		"explored": res.Explored,
		"expanded": res.Expanded,
	}).Debug("search finished")
	return res, nil
}

// enqueue marks s visited, calls OnEnqueue, and appends it to the arena.
func (w *walker) enqueue(s facility.State, key facility.Key, parent, depth int) {
	w.visited[key] = struct{}{}
	w.opts.OnEnqueue(s, depth)
	w.nodes = append(w.nodes, node{state: s, parent: parent, depth: depth})
}

// loop processes the frontier until the goal is dequeued, the frontier
// empties, a hook fails, or the context is cancelled. It returns the arena
// index of the goal node.
func (w *walker) loop() (int, error) {
	for w.head < len(w.nodes) {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return noParent, w.ctx.Err()
		default:
		}

		idx := w.dequeue()
		if err := w.visit(idx); err != nil {
			return noParent, err
		}
		if w.nodes[idx].state.IsGoal(w.floors) {
			return idx, nil
		}
		if err := w.enqueueSuccessors(idx); err != nil {
			return noParent, err
		}
	}
	if w.pruned {
		return noParent, fmt.Errorf("%w: no goal within %d trips", ErrDepthLimit, w.opts.MaxDepth)
	}
	return noParent, ErrNoSolution
}

// dequeue advances the frontier head, invokes OnDequeue, and returns the
// index of the node taken.
func (w *walker) dequeue() int {
	idx := w.head
	w.head++
	n := w.nodes[idx]
	w.opts.OnDequeue(n.state, n.depth)
	return idx
}

// visit calls OnVisit for the node at idx.
func (w *walker) visit(idx int) error {
	n := w.nodes[idx]
	if err := w.opts.OnVisit(n.state, n.depth); err != nil {
		return fmt.Errorf("search: OnVisit error at %v: %w", n.state, err)
	}
	return nil
}

// enqueueSuccessors generates the trips available from the node at idx,
// drops unsafe and already-seen configurations, applies MaxDepth and
// MaxStates, and enqueues the rest.
func (w *walker) enqueueSuccessors(idx int) error {
	cur := w.nodes[idx]
	nextDepth := cur.depth + 1
	for _, s := range cur.state.Successors(w.floors) {
		if !s.Safe() {
			continue
		}
		key := s.Key()
		if _, seen := w.visited[key]; seen {
			continue
		}
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			w.pruned = true
			continue
		}
		if w.opts.MaxStates > 0 && len(w.visited) >= w.opts.MaxStates {
			return fmt.Errorf("%w: %d configurations", ErrStateLimit, w.opts.MaxStates)
		}
		w.enqueue(s, key, idx, nextDepth)
	}
	return nil
}

// pathTo follows parent indices from idx back to the root and returns the
// configurations in root-to-idx order.
func (w *walker) pathTo(idx int) []facility.State {
	var path []facility.State
	for cur := idx; cur != noParent; cur = w.nodes[cur].parent {
		path = append(path, w.nodes[cur].state)
	}
	// reverse to get root → idx
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
