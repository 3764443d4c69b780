package facility

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Render draws s as the facility diagram, top floor first:
//
//	F4 .  .  .  .  .
//	F3 .  .  .  LG .
//	F2 .  HG .  .  .
//	F1 E  .  HM .  LM
//
// Items are labelled with the shortest unique element prefix plus G or M.
func (p Puzzle) Render(s State) string {
	abbr := abbreviations(p.Elements)
	labels := make([]string, 0, len(s.Floors))
	width := 2
	for k := range p.Elements {
		for _, suffix := range [...]string{"G", "M"} {
			l := abbr[k] + suffix
			labels = append(labels, l)
			if n := utf8.RuneCountInString(l); n > width {
				width = n
			}
		}
	}

	var b strings.Builder
	for f := p.FloorCount - 1; f >= 0; f-- {
		var line strings.Builder
		fmt.Fprintf(&line, "F%d ", f+1)
		cell := "."
		if s.Elevator == f {
			cell = "E"
		}
		fmt.Fprintf(&line, "%-*s", width+1, cell)
		for i, fl := range s.Floors {
			cell = "."
			if fl == f {
				cell = labels[i]
			}
			fmt.Fprintf(&line, "%-*s", width+1, cell)
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// abbreviations returns, per name, its shortest prefix not shared with any
// other name, capitalised. Prefixes are cut on rune boundaries.
func abbreviations(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		runes := []rune(name)
		prefix := name
		for l := 1; l <= len(runes); l++ {
			if p := string(runes[:l]); !sharedPrefix(names, i, p) {
				prefix = p
				break
			}
		}
		out[i] = capitalise(prefix)
	}
	return out
}

func sharedPrefix(names []string, self int, prefix string) bool {
	for j, other := range names {
		if j != self && strings.HasPrefix(other, prefix) {
			return true
		}
	}
	return false
}

func capitalise(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
