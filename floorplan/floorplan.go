// Package floorplan reads facility descriptions written as one sentence per
// floor:
//
//	The first floor contains a hydrogen-compatible microchip and a lithium-compatible microchip.
//	The second floor contains a hydrogen generator.
//	The third floor contains a lithium generator.
//	The fourth floor contains nothing relevant.
//
// The number of floors is the number of sentences; each sentence names its
// floor with an ordinal word.
package floorplan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/katalvlaran/rtg/facility"
)

var (
	// ErrEmptyInput is returned when the input holds no floor sentences.
	ErrEmptyInput = errors.New("floorplan: empty input")

	// ErrMalformedLine is returned for a line that is not a floor sentence.
	ErrMalformedLine = errors.New("floorplan: malformed line")

	// ErrUnknownFloor is returned for an ordinal that is not recognised or
	// lies beyond the number of floors described.
	ErrUnknownFloor = errors.New("floorplan: unknown floor")

	// ErrDuplicateFloor is returned when two sentences describe the same floor.
	ErrDuplicateFloor = errors.New("floorplan: floor described twice")
)

var (
	floorRe = regexp.MustCompile(`^The (\w+) floor contains (.*?)\.?$`)
	itemRe  = regexp.MustCompile(`(\w+)(?:-compatible)? (generator|microchip)`)
)

const nothing = "nothing relevant"

var ordinals = map[string]int{
	"first": 0, "second": 1, "third": 2, "fourth": 3, "fifth": 4,
	"sixth": 5, "seventh": 6, "eighth": 7, "ninth": 8, "tenth": 9,
}

// line is one parsed floor sentence.
type line struct {
	num   int // 1-based input line
	floor int
	items []facility.Item
}

// Parse reads floor sentences from r and builds the puzzle they describe.
// Blank lines are ignored.
func Parse(r io.Reader) (facility.Puzzle, error) {
	var lines []line
	scanner := bufio.NewScanner(r)
	for num := 1; scanner.Scan(); num++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		l, err := parseLine(text)
		if err != nil {
			return facility.Puzzle{}, fmt.Errorf("line %d: %w", num, err)
		}
		l.num = num
		lines = append(lines, l)
	}
	if err := scanner.Err(); err != nil {
		return facility.Puzzle{}, fmt.Errorf("floorplan: read: %w", err)
	}
	if len(lines) == 0 {
		return facility.Puzzle{}, ErrEmptyInput
	}

	floorCount := len(lines)
	described := make([]bool, floorCount)
	var items []facility.Item
	for _, l := range lines {
		if l.floor >= floorCount {
			return facility.Puzzle{}, fmt.Errorf("line %d: %w: floor %d of %d",
				l.num, ErrUnknownFloor, l.floor+1, floorCount)
		}
		if described[l.floor] {
			return facility.Puzzle{}, fmt.Errorf("line %d: %w: floor %d", l.num, ErrDuplicateFloor, l.floor+1)
		}
		described[l.floor] = true
		items = append(items, l.items...)
	}
	return facility.NewPuzzle(items, floorCount)
}

// ParseString is Parse over a string.
func ParseString(s string) (facility.Puzzle, error) {
	return Parse(strings.NewReader(s))
}

func parseLine(text string) (line, error) {
	m := floorRe.FindStringSubmatch(text)
	if m == nil {
		return line{}, fmt.Errorf("%w: %q", ErrMalformedLine, text)
	}
	floor, ok := ordinals[strings.ToLower(m[1])]
	if !ok {
		return line{}, fmt.Errorf("%w: %q", ErrUnknownFloor, m[1])
	}

	l := line{floor: floor}
	contents := strings.TrimSpace(m[2])
	if contents == nothing {
		return l, nil
	}
	// Matches must cover the whole list; only separators may lie between them.
	prev := 0
	for _, idx := range itemRe.FindAllStringSubmatchIndex(contents, -1) {
		if stray := strayText(contents[prev:idx[0]]); stray != "" {
			return line{}, fmt.Errorf("%w: unexpected %q in %q", ErrMalformedLine, stray, text)
		}
		prev = idx[1]

		kind := facility.Generator
		if contents[idx[4]:idx[5]] == "microchip" {
			kind = facility.Microchip
		}
		element := strings.ToLower(contents[idx[2]:idx[3]])
		l.items = append(l.items, facility.Item{Element: element, Kind: kind, Floor: floor})
	}
	if stray := strayText(contents[prev:]); stray != "" {
		return line{}, fmt.Errorf("%w: unexpected %q in %q", ErrMalformedLine, stray, text)
	}
	if len(l.items) == 0 {
		return line{}, fmt.Errorf("%w: no items in %q", ErrMalformedLine, text)
	}
	return l, nil
}

// strayText returns the words of gap that are not list separators
// ("a", "an", "and" and commas), or "" when there are none.
func strayText(gap string) string {
	var stray []string
	words := strings.FieldsFunc(gap, func(r rune) bool { return r == ' ' || r == ',' })
	for _, w := range words {
		switch strings.ToLower(w) {
		case "a", "an", "and":
		default:
			stray = append(stray, w)
		}
	}
	return strings.Join(stray, " ")
}
