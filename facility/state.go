package facility

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Elements returns the number of generator/microchip pairs in s.
func (s State) Elements() int { return len(s.Floors) / 2 }

// Clone returns a deep copy of s.
func (s State) Clone() State {
	return State{Elevator: s.Elevator, Floors: slices.Clone(s.Floors)}
}

// Equal reports whether s and o place the elevator and every item identically.
func (s State) Equal(o State) bool {
	return s.Elevator == o.Elevator && slices.Equal(s.Floors, o.Floors)
}

// Validate checks the structural invariants of s for a facility with
// floorCount floors: an even number of items and every floor, the elevator
// included, within range. It does not check safety.
func (s State) Validate(floorCount int) error {
	if floorCount < 1 || floorCount > MaxFloors {
		return fmt.Errorf("%w: %d", ErrFloorCount, floorCount)
	}
	if len(s.Floors)%2 != 0 {
		return fmt.Errorf("%w: %d items", ErrUnpaired, len(s.Floors))
	}
	if s.Elevator < 0 || s.Elevator >= floorCount {
		return fmt.Errorf("%w: elevator on floor %d", ErrFloorOutOfRange, s.Elevator)
	}
	for i, f := range s.Floors {
		if f < 0 || f >= floorCount {
			return fmt.Errorf("%w: item %d on floor %d", ErrFloorOutOfRange, i, f)
		}
	}
	return nil
}

// Safe reports whether no microchip is left with a foreign generator while
// separated from its own.
func (s State) Safe() bool {
	for i := 0; i < len(s.Floors); i += 2 {
		chip := s.Floors[i+1]
		if s.Floors[i] == chip {
			continue
		}
		for j := 0; j < len(s.Floors); j += 2 {
			if s.Floors[j] == chip {
				return false
			}
		}
	}
	return true
}

// IsGoal reports whether every item is on the top floor. The elevator is
// not checked: an item can only reach the top floor aboard it.
func (s State) IsGoal(floorCount int) bool {
	top := floorCount - 1
	for _, f := range s.Floors {
		if f != top {
			return false
		}
	}
	return true
}

// Key returns the canonical fingerprint of s: the elevator floor followed
// by the sorted (generator, microchip) floor pairs. Which element occupies
// which pair is dropped, so relabelling elements does not change the key.
func (s State) Key() Key {
	pairs := make([][2]byte, 0, s.Elements())
	for i := 0; i < len(s.Floors); i += 2 {
		pairs = append(pairs, [2]byte{byte(s.Floors[i]), byte(s.Floors[i+1])})
	}
	slices.SortFunc(pairs, func(a, b [2]byte) int {
		if a[0] != b[0] {
			return int(a[0]) - int(b[0])
		}
		return int(a[1]) - int(b[1])
	})

	buf := make([]byte, 0, 1+2*len(pairs))
	buf = append(buf, byte(s.Elevator))
	for _, p := range pairs {
		buf = append(buf, p[0], p[1])
	}
	return Key(buf)
}

// String renders s as "E<elevator> [g0/m0 g1/m1 ...]".
func (s State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "E%d [", s.Elevator)
	for i := 0; i < len(s.Floors); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d/%d", s.Floors[i], s.Floors[i+1])
	}
	b.WriteByte(']')
	return b.String()
}
