/*
rtg prints the minimum number of elevator trips needed to bring every
generator and microchip of a radioisotope testing facility to the top floor.

The facility is described one floor per line ("The first floor contains a
hydrogen-compatible microchip and a lithium generator."). If an argument is
given it is the path of the input file; otherwise the input is read from
standard input.

	rtg input.txt
	rtg -extra elerium,dilithium -path < input.txt
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/rtg/facility"
	"github.com/katalvlaran/rtg/floorplan"
	"github.com/katalvlaran/rtg/search"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process exit, returning 0 on success, 1 on
// failure and 2 on bad flags.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rtg", flag.ContinueOnError)
	fs.SetOutput(stderr)
	extra := fs.String("extra", "", "Comma-separated elements whose generator and microchip start on the first floor")
	showPath := fs.Bool("path", false, "Print the facility after every trip")
	timeout := fs.Duration("timeout", 1*time.Minute, "Abort the search after this long (0 for no limit)")
	maxStates := fs.Int("max-states", 0, "Abort after discovering this many configurations (0 for no limit)")
	maxDepth := fs.Int("max-depth", 0, "Ignore plans longer than this many trips (0 for no limit)")
	verbose := fs.Bool("v", false, "Log search progress")
	cpuProfile := fs.Bool("profile", false, "Write a CPU profile to the working directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	in := stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			log.WithError(err).Error("cannot open input")
			return 1
		}
		defer f.Close()
		in = f
	}

	p, err := floorplan.Parse(in)
	if err != nil {
		log.WithError(err).Error("cannot parse input")
		return 1
	}
	if names := splitList(*extra); len(names) > 0 {
		if p, err = p.WithElements(0, names...); err != nil {
			log.WithError(err).WithField("extra", names).Error("cannot add elements")
			return 1
		}
	}
	log.WithFields(logrus.Fields{
		"elements": len(p.Elements),
		"floors":   p.FloorCount,
	}).Debug("facility loaded")

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	res, err := search.Solve(p.Initial, p.FloorCount,
		search.WithContext(ctx),
		search.WithMaxStates(*maxStates),
		search.WithMaxDepth(*maxDepth),
		search.WithLogger(log),
	)
	if err != nil {
		log.WithError(err).Error("search failed")
		return 1
	}

	if *showPath {
		printPath(stdout, p, res)
	}
	fmt.Fprintln(stdout, res.Steps)
	return 0
}

// printPath writes the facility diagram before the first trip and after each one.
func printPath(w io.Writer, p facility.Puzzle, res *search.Result) {
	trips := res.Trips()
	for i, s := range res.Path {
		if i == 0 {
			fmt.Fprintln(w, "Start:")
		} else {
			fmt.Fprintf(w, "Step %d: %s\n", i, p.Describe(trips[i-1]))
		}
		fmt.Fprintln(w, p.Render(s))
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}
