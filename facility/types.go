// Package facility models the radioisotope testing facility: generators and
// microchips spread over a column of floors, and one elevator that carries
// at most two of them per trip.
//
// A State stores only floor numbers. Items are paired by element so that
// Floors[2k] is the generator and Floors[2k+1] the microchip of element k;
// the element names live in Puzzle.
package facility

import (
	"errors"
	"fmt"
)

// MaxFloors bounds floorCount so that every floor index fits in one byte
// of a canonical Key.
const MaxFloors = 255

// Sentinel errors for building and validating configurations.
var (
	// ErrFloorCount is returned when floorCount is outside [1, MaxFloors].
	ErrFloorCount = errors.New("facility: floor count out of range")

	// ErrFloorOutOfRange is returned when an item or the elevator sits
	// outside [0, floorCount-1].
	ErrFloorOutOfRange = errors.New("facility: floor out of range")

	// ErrUnpaired is returned when an element lacks its generator or its
	// microchip, or when a State holds an odd number of items.
	ErrUnpaired = errors.New("facility: element is not paired")

	// ErrDuplicateItem is returned when the same generator or microchip is listed twice.
	ErrDuplicateItem = errors.New("facility: duplicate item")

	// ErrEmptyElement is returned for an item with no element name.
	ErrEmptyElement = errors.New("facility: empty element name")
)

// Kind distinguishes the two item kinds of an element.
type Kind int

const (
	Generator Kind = iota
	Microchip
)

// String returns "generator" or "microchip".
func (k Kind) String() string {
	switch k {
	case Generator:
		return "generator"
	case Microchip:
		return "microchip"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Item is one generator or microchip and the floor it starts on.
type Item struct {
	Element string
	Kind    Kind
	Floor   int
}

// State is a configuration: the elevator floor and one floor per item.
// Floors[2k] is element k's generator, Floors[2k+1] its microchip.
type State struct {
	Elevator int
	Floors   []int
}

// Key is an element-permutation-invariant fingerprint of a State.
type Key string

// Trip describes one elevator move between two consecutive states.
type Trip struct {
	From, To int   // elevator floors
	Items    []int // indexes into State.Floors, ascending
}

// Dir returns +1 for an upward trip and -1 for a downward one.
func (t Trip) Dir() int {
	if t.To > t.From {
		return 1
	}
	return -1
}
