package facility

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Puzzle is a facility layout: element names, the number of floors, and
// the initial configuration with the elevator on the ground floor.
// Element k owns Initial.Floors[2k] and Initial.Floors[2k+1].
type Puzzle struct {
	Elements   []string
	FloorCount int
	Initial    State
}

// NewPuzzle pairs items by element, in order of first appearance, and
// places the elevator on floor 0. Every element needs exactly one generator
// and one microchip, and every floor must lie in [0, floorCount-1].
func NewPuzzle(items []Item, floorCount int) (Puzzle, error) {
	if floorCount < 1 || floorCount > MaxFloors {
		return Puzzle{}, fmt.Errorf("%w: %d", ErrFloorCount, floorCount)
	}

	p := Puzzle{FloorCount: floorCount}
	seen := make(map[Item]bool, len(items))
	for _, it := range items {
		if it.Element == "" {
			return Puzzle{}, ErrEmptyElement
		}
		if it.Kind != Generator && it.Kind != Microchip {
			return Puzzle{}, fmt.Errorf("facility: unknown item kind %v", it.Kind)
		}
		if it.Floor < 0 || it.Floor >= floorCount {
			return Puzzle{}, fmt.Errorf("%w: %s %s on floor %d",
				ErrFloorOutOfRange, it.Element, it.Kind, it.Floor)
		}
		slot := Item{Element: it.Element, Kind: it.Kind}
		if seen[slot] {
			return Puzzle{}, fmt.Errorf("%w: %s %s", ErrDuplicateItem, it.Element, it.Kind)
		}
		seen[slot] = true

		k := slices.Index(p.Elements, it.Element)
		if k < 0 {
			k = len(p.Elements)
			p.Elements = append(p.Elements, it.Element)
			p.Initial.Floors = append(p.Initial.Floors, -1, -1)
		}
		p.Initial.Floors[2*k+int(it.Kind)] = it.Floor
	}

	for k, name := range p.Elements {
		if p.Initial.Floors[2*k] < 0 {
			return Puzzle{}, fmt.Errorf("%w: %s has no generator", ErrUnpaired, name)
		}
		if p.Initial.Floors[2*k+1] < 0 {
			return Puzzle{}, fmt.Errorf("%w: %s has no microchip", ErrUnpaired, name)
		}
	}
	return p, nil
}

// WithElements returns a copy of p with a generator and a microchip for
// each named element added on floor.
func (p Puzzle) WithElements(floor int, names ...string) (Puzzle, error) {
	items := p.Items(p.Initial)
	for _, name := range names {
		items = append(items,
			Item{Element: name, Kind: Generator, Floor: floor},
			Item{Element: name, Kind: Microchip, Floor: floor},
		)
	}
	q, err := NewPuzzle(items, p.FloorCount)
	if err != nil {
		return Puzzle{}, err
	}
	q.Initial.Elevator = p.Initial.Elevator
	return q, nil
}

// Items lists the labelled items of s, generator before microchip, in
// element order.
func (p Puzzle) Items(s State) []Item {
	items := make([]Item, 0, len(s.Floors))
	for k, name := range p.Elements {
		items = append(items,
			Item{Element: name, Kind: Generator, Floor: s.Floors[2*k]},
			Item{Element: name, Kind: Microchip, Floor: s.Floors[2*k+1]},
		)
	}
	return items
}

// Describe renders trip t in words, e.g. "up to floor 2 with hydrogen microchip".
func (p Puzzle) Describe(t Trip) string {
	dir := "up"
	if t.Dir() < 0 {
		dir = "down"
	}
	s := fmt.Sprintf("%s to floor %d with ", dir, t.To+1)
	for n, i := range t.Items {
		if n > 0 {
			s += " and "
		}
		kind := Generator
		if i%2 == 1 {
			kind = Microchip
		}
		s += p.Elements[i/2] + " " + kind.String()
	}
	return s
}
