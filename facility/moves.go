package facility

// Capacity is the most items the elevator carries in one trip. It refuses
// to move empty.
const Capacity = 2

// Successors returns every configuration one trip away from s: the elevator
// moves one floor up or down, carrying one item or an unordered pair of
// items from its current floor. Directions without an adjacent floor are
// skipped, so no successor leaves [0, floorCount-1]. Safety is not checked.
//
// Upward trips come first, and within a direction pairs precede singles.
func (s State) Successors(floorCount int) []State {
	aboard := s.loadable()
	if len(aboard) == 0 {
		return nil
	}

	n := len(aboard)
	perDir := n + n*(n-1)/2
	out := make([]State, 0, 2*perDir)
	for _, dir := range [...]int{1, -1} {
		to := s.Elevator + dir
		if to < 0 || to >= floorCount {
			continue
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				out = append(out, s.moved(to, aboard[i], aboard[j]))
			}
		}
		for i := 0; i < n; i++ {
			out = append(out, s.moved(to, aboard[i]))
		}
	}
	return out
}

// loadable lists the indexes of items on the elevator's floor.
func (s State) loadable() []int {
	var idx []int
	for i, f := range s.Floors {
		if f == s.Elevator {
			idx = append(idx, i)
		}
	}
	return idx
}

// moved returns a copy of s with the elevator and the given items on floor to.
func (s State) moved(to int, items ...int) State {
	next := s.Clone()
	next.Elevator = to
	for _, i := range items {
		next.Floors[i] = to
	}
	return next
}

// TripBetween describes the move from a to b. It reports false when b is
// not a single legal trip away from a: the elevator must shift by exactly
// one floor, carrying between one and Capacity items from its old floor to
// its new one, and nothing else may change.
func TripBetween(a, b State) (Trip, bool) {
	if len(a.Floors) != len(b.Floors) {
		return Trip{}, false
	}
	if d := b.Elevator - a.Elevator; d != 1 && d != -1 {
		return Trip{}, false
	}
	t := Trip{From: a.Elevator, To: b.Elevator}
	for i := range a.Floors {
		if a.Floors[i] == b.Floors[i] {
			continue
		}
		if a.Floors[i] != t.From || b.Floors[i] != t.To {
			return Trip{}, false
		}
		t.Items = append(t.Items, i)
	}
	if len(t.Items) == 0 || len(t.Items) > Capacity {
		return Trip{}, false
	}
	return t, true
}
