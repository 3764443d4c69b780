package search_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rtg/facility"
	"github.com/katalvlaran/rtg/search"
)

// twoElements: hydrogen generator on floor 1, lithium generator on floor 2,
// both microchips on the ground floor.
func twoElements() facility.State {
	return facility.State{Floors: []int{1, 0, 2, 0}}
}

// fourElements: lithium microchip, elerium and dilithium pairs on the ground
// floor, hydrogen pair on floor 1, lithium generator on floor 2.
func fourElements() facility.State {
	return facility.State{Floors: []int{2, 0, 0, 0, 0, 0, 1, 1}}
}

// TestMinSteps_KnownScenarios covers the published examples and trivial goals.
func TestMinSteps_KnownScenarios(t *testing.T) {
	cases := []struct {
		name   string
		s      facility.State
		floors int
		want   int
	}{
		{"two elements", twoElements(), 4, 11},
		{"four elements", fourElements(), 4, 31},
		{"already on top", facility.State{Elevator: 3, Floors: []int{3, 3, 3, 3}}, 4, 0},
		{"single element two floors", facility.State{Elevator: 0, Floors: []int{1, 1}}, 2, 0},
		{"no items", facility.State{}, 4, 0},
		{"one pair from the ground", facility.State{Floors: []int{0, 0}}, 4, 3},
		{"two pairs from the ground", facility.State{Floors: []int{0, 0, 0, 0}}, 4, 15},
		{"chip one floor below", facility.State{Floors: []int{1, 0}}, 2, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := search.MinSteps(tc.s, tc.floors)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestSolve_Deterministic repeats the same search and expects identical results.
func TestSolve_Deterministic(t *testing.T) {
	first, err := search.Solve(twoElements(), 4)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := search.Solve(twoElements(), 4)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestSolve_PathIsLegal checks that the path starts at the input, ends at the
// goal, and every step is one safe elevator trip.
func TestSolve_PathIsLegal(t *testing.T) {
	initial := fourElements()
	res, err := search.Solve(initial, 4)
	require.NoError(t, err)

	require.Len(t, res.Path, res.Steps+1)
	assert.True(t, res.Path[0].Equal(initial))
	assert.True(t, res.Path[len(res.Path)-1].IsGoal(4))
	for i := 1; i < len(res.Path); i++ {
		prev, cur := res.Path[i-1], res.Path[i]
		_, ok := facility.TripBetween(prev, cur)
		require.True(t, ok, "step %d: %v -> %v is not a single trip", i, prev, cur)
		require.True(t, cur.Safe(), "step %d: %v is unsafe", i, cur)
		require.NoError(t, cur.Validate(4))
	}
	assert.Len(t, res.Trips(), res.Steps)
	assert.GreaterOrEqual(t, res.Explored, res.Expanded)
	assert.Positive(t, res.Expanded)
}

// TestSolve_InputNotMutated ensures the caller's slice is left alone.
func TestSolve_InputNotMutated(t *testing.T) {
	initial := twoElements()
	_, err := search.Solve(initial, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2, 0}, initial.Floors)
}

// TestSolve_ElementPermutation relabels elements and expects the same search.
func TestSolve_ElementPermutation(t *testing.T) {
	a, err := search.Solve(twoElements(), 4)
	require.NoError(t, err)
	b, err := search.Solve(facility.State{Floors: []int{2, 0, 1, 0}}, 4)
	require.NoError(t, err)

	assert.Equal(t, a.Steps, b.Steps)
	assert.Equal(t, a.Path[0].Key(), b.Path[0].Key())
	assert.Equal(t, a.Path[len(a.Path)-1].Key(), b.Path[len(b.Path)-1].Key())
}

// TestSolve_FrontierIsSafe inspects every enqueued configuration. The root
// (depth 0) is the caller's and may be unsafe.
func TestSolve_FrontierIsSafe(t *testing.T) {
	keys := map[facility.Key]bool{}
	res, err := search.Solve(fourElements(), 4,
		search.WithOnEnqueue(func(s facility.State, depth int) {
			if depth > 0 && !s.Safe() {
				t.Errorf("unsafe configuration enqueued: %v", s)
			}
			if err := s.Validate(4); err != nil {
				t.Errorf("out-of-range configuration enqueued: %v", err)
			}
			k := s.Key()
			if keys[k] {
				t.Errorf("configuration %v enqueued twice", s)
			}
			keys[k] = true
		}),
	)
	require.NoError(t, err)
	assert.Len(t, keys, res.Explored)
}

// TestSolve_NoSolution reports unsolvable layouts as errors.
func TestSolve_NoSolution(t *testing.T) {
	cases := []struct {
		name   string
		s      facility.State
		floors int
	}{
		// every generator below, every chip above: any trip fries a chip
		{"three crossed pairs", facility.State{Floors: []int{0, 1, 0, 1, 0, 1}}, 2},
		// nothing on the elevator's floor, and it will not move empty
		{"stranded elevator", facility.State{Elevator: 0, Floors: []int{1, 1}}, 3},
		// the two-element example with two more pairs on the ground floor
		{"crowded ground floor", facility.State{Floors: []int{1, 0, 2, 0, 0, 0, 0, 0}}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			steps, err := search.MinSteps(tc.s, tc.floors)
			require.ErrorIs(t, err, search.ErrNoSolution)
			assert.Equal(t, "search: no solution found", err.Error())
			assert.Zero(t, steps)
		})
	}
}

// TestSolve_InvalidInput rejects malformed initial configurations.
func TestSolve_InvalidInput(t *testing.T) {
	_, err := search.Solve(twoElements(), 0)
	assert.ErrorIs(t, err, facility.ErrFloorCount)

	_, err = search.Solve(twoElements(), 2)
	assert.ErrorIs(t, err, facility.ErrFloorOutOfRange)

	_, err = search.Solve(facility.State{Floors: []int{0}}, 4)
	assert.ErrorIs(t, err, facility.ErrUnpaired)
}

// TestSolve_UnsafeStart searches from an initial configuration that already
// breaks the safety rule; only successors are filtered.
func TestSolve_UnsafeStart(t *testing.T) {
	initial := fourElements()
	require.False(t, initial.Safe())

	res, err := search.Solve(initial, 4)
	require.NoError(t, err)
	assert.Equal(t, 31, res.Steps)
	assert.Equal(t, initial.Key(), res.Path[0].Key())
	for i, s := range res.Path[1:] {
		assert.True(t, s.Safe(), "step %d: %v is unsafe", i+1, s)
	}

	// gen 0 alone on the ground floor, its chip beside the other pair
	unsafe := facility.State{Floors: []int{0, 1, 1, 1}}
	require.False(t, unsafe.Safe())
	steps, err := search.MinSteps(unsafe, 4)
	require.NoError(t, err)
	assert.Positive(t, steps)
}

// TestSolve_Options verifies that invalid options are rejected.
func TestSolve_Options(t *testing.T) {
	_, err := search.Solve(twoElements(), 4, search.WithMaxDepth(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.Solve(twoElements(), 4, search.WithMaxStates(-3))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	// nil arguments keep the defaults
	steps, err := search.MinSteps(twoElements(), 4,
		search.WithContext(nil), //nolint:staticcheck
		search.WithLogger(nil),
		search.WithOnEnqueue(nil),
		search.WithOnDequeue(nil),
		search.WithOnVisit(nil),
	)
	require.NoError(t, err)
	assert.Equal(t, 11, steps)
}

// TestSolve_MaxDepth distinguishes a too-tight depth limit from a sufficient one.
func TestSolve_MaxDepth(t *testing.T) {
	_, err := search.Solve(twoElements(), 4, search.WithMaxDepth(5))
	require.ErrorIs(t, err, search.ErrDepthLimit)
	assert.NotErrorIs(t, err, search.ErrNoSolution)

	steps, err := search.MinSteps(twoElements(), 4, search.WithMaxDepth(11))
	require.NoError(t, err)
	assert.Equal(t, 11, steps)

	steps, err = search.MinSteps(twoElements(), 4, search.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, 11, steps)
}

// TestSolve_MaxStates aborts once the discovered set outgrows the limit.
func TestSolve_MaxStates(t *testing.T) {
	_, err := search.Solve(fourElements(), 4, search.WithMaxStates(10))
	require.ErrorIs(t, err, search.ErrStateLimit)

	// two elements on four floors have at most 4*136 canonical configurations
	res, err := search.Solve(twoElements(), 4, search.WithMaxStates(1000))
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Explored, 1000)
}

// TestSolve_Hooks asserts that hooks fire in breadth-first order.
func TestSolve_Hooks(t *testing.T) {
	var enq, deq, vis []int
	res, err := search.Solve(twoElements(), 4,
		search.WithOnEnqueue(func(_ facility.State, d int) { enq = append(enq, d) }),
		search.WithOnDequeue(func(_ facility.State, d int) { deq = append(deq, d) }),
		search.WithOnVisit(func(_ facility.State, d int) error { vis = append(vis, d); return nil }),
	)
	require.NoError(t, err)

	require.NotEmpty(t, enq)
	assert.Equal(t, 0, enq[0], "the initial configuration is enqueued first")
	assert.Len(t, enq, res.Explored)
	assert.Len(t, deq, res.Expanded)
	assert.Equal(t, deq, vis)
	for i := 1; i < len(deq); i++ {
		require.LessOrEqual(t, deq[i-1], deq[i], "dequeue depths must not decrease")
	}
	assert.Equal(t, res.Steps, deq[len(deq)-1], "the goal is the last node visited")
}

// TestSolve_VisitError aborts the search with the wrapped hook error.
func TestSolve_VisitError(t *testing.T) {
	stop := errors.New("stop here")
	_, err := search.Solve(twoElements(), 4,
		search.WithOnVisit(func(_ facility.State, d int) error {
			if d == 3 {
				return stop
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, stop)
	assert.Contains(t, err.Error(), "OnVisit error")
}

// TestSolve_Cancellation verifies that a cancelled context halts the search.
func TestSolve_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	_, err := search.Solve(fourElements(), 4, search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSolve_Logger emits debug progress with structured fields.
func TestSolve_Logger(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	_, err := search.Solve(twoElements(), 4, search.WithLogger(l))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "search started")
	assert.Contains(t, out, "search finished")
	assert.Contains(t, out, "steps=11")
	assert.Contains(t, out, "floors=4")
}

// TestSolve_ConcurrentSafety ensures concurrent searches do not interfere.
func TestSolve_ConcurrentSafety(t *testing.T) {
	type outcome struct {
		steps int
		err   error
	}
	results := make(chan outcome, 4)
	for i := 0; i < 4; i++ {
		go func() {
			steps, err := search.MinSteps(twoElements(), 4)
			results <- outcome{steps, err}
		}()
	}
	for i := 0; i < 4; i++ {
		r := <-results
		if assert.NoError(t, r.err, "concurrent run #%d", i) {
			assert.Equal(t, 11, r.steps)
		}
	}
}

func TestResult_Trips(t *testing.T) {
	res, err := search.Solve(facility.State{Floors: []int{0, 0}}, 3)
	require.NoError(t, err)
	require.Equal(t, 2, res.Steps)

	trips := res.Trips()
	require.Len(t, trips, 2)
	assert.Equal(t, facility.Trip{From: 0, To: 1, Items: []int{0, 1}}, trips[0])
	assert.Equal(t, facility.Trip{From: 1, To: 2, Items: []int{0, 1}}, trips[1])
}
