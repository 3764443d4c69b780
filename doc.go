// Package rtg solves the radioisotope testing facility puzzle: move every
// generator and microchip up a column of floors with a two-item elevator,
// never leaving a microchip with a foreign generator unless its own
// generator is present, in as few trips as possible.
//
// The work is split across three subpackages:
//
//	facility/  — items, configurations, the safety rule, canonical keys,
//	             trip enumeration and floor diagrams
//	search/    — breadth-first search with hooks, limits and cancellation
//	floorplan/ — parser for "The first floor contains ..." descriptions
//
// and one command:
//
//	cmd/rtg    — reads a description from a file or stdin and prints the
//	             minimum number of trips
//
// Quick example, the published two-element facility:
//
//	F4 .  .  .  .  .
//	F3 .  .  .  LG .
//	F2 .  HG .  .  .
//	F1 E  .  HM .  LM
//
//	p, _ := floorplan.ParseString(input)
//	steps, _ := search.MinSteps(p.Initial, p.FloorCount) // 11
package rtg
