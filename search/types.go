// Package search provides tunable options, results and error definitions
// for the breadth-first elevator search.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/rtg/facility"
)

// Sentinel errors for search execution.
var (
	// ErrNoSolution is returned when every reachable configuration has been
	// expanded without bringing all items to the top floor.
	ErrNoSolution = errors.New("search: no solution found")

	// ErrDepthLimit is returned when the queue empties only because
	// WithMaxDepth kept deeper configurations out of it.
	ErrDepthLimit = errors.New("search: depth limit reached")

	// ErrStateLimit is returned when more distinct configurations are
	// discovered than WithMaxStates allows.
	ErrStateLimit = errors.New("search: state limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Option configures Solve via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a configuration joins the frontier,
	// with its distance in trips from the initial configuration.
	OnEnqueue func(s facility.State, depth int)

	// OnDequeue is called immediately before a configuration is visited.
	OnDequeue func(s facility.State, depth int)

	// OnVisit is called when visiting a configuration. If it returns an
	// error, the search aborts and propagates that error.
	OnVisit func(s facility.State, depth int) error

	// MaxDepth, if > 0, keeps configurations deeper than this out of the frontier.
	// A value of 0 disables the limit.
	MaxDepth int

	// MaxStates, if > 0, aborts the search once more distinct
	// configurations than this have been discovered. 0 disables the limit.
	MaxStates int

	// Logger receives debug progress. Defaults to a discarding logger.
	Logger logrus.FieldLogger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Context.Background()
//   - no depth or state limit
//   - no-op hooks
//   - a logger that discards everything
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(facility.State, int) {},
		OnDequeue: func(facility.State, int) {},
		OnVisit:   func(facility.State, int) error { return nil },
		MaxDepth:  0,
		MaxStates: 0,
		Logger:    discardLogger(),
		err:       nil,
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(s facility.State, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(s facility.State, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(s facility.State, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the number of trips explored.
//
//	d > 0: never enqueue configurations more than d trips away
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithMaxStates bounds the number of distinct configurations discovered.
// n == 0 disables the limit; n < 0 is an ErrOptionViolation.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxStates = n
		}
	}
}

// WithLogger routes debug progress to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of a successful search:
//   - Steps: minimum number of elevator trips.
//   - Path: configurations from the initial one to the goal, Steps+1 long.
//   - Explored: distinct canonical configurations discovered.
//   - Expanded: configurations taken off the queue.
type Result struct {
	Steps    int
	Path     []facility.State
	Explored int
	Expanded int
}

// Trips describes each elevator move along Path.
func (r *Result) Trips() []facility.Trip {
	trips := make([]facility.Trip, 0, len(r.Path))
	for i := 1; i < len(r.Path); i++ {
		if t, ok := facility.TripBetween(r.Path[i-1], r.Path[i]); ok {
			trips = append(trips, t)
		}
	}
	return trips
}
