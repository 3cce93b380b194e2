// Package solver holds the static registry of day solutions the CLI
// dispatches to. Each solution wraps the pure puzzle packages with input
// loading and answer formatting.
package solver

import (
	"fmt"
	"io"
	"sort"
)

// Options carries the config-driven knobs individual days honor.
type Options struct {
	// CycleCap bounds the day 1 repeated-total search in full passes.
	// Zero or negative means unbounded.
	CycleCap int

	// Workers and BaseSeconds parameterize the day 7 assembly simulation.
	Workers     int
	BaseSeconds int
}

// Answer is one labeled puzzle answer, usually one per part.
type Answer struct {
	Label string
	Value string
}

// Func computes a day's answers from its raw input.
type Func func(r io.Reader, opts Options) ([]Answer, error)

// Solution is a registered day.
type Solution struct {
	Day   int
	Name  string
	Solve Func
}

var registry = make(map[int]Solution)

// Register adds a solution to the registry. Registering the same day twice
// is a programming error and panics at init time.
func Register(s Solution) {
	if s.Day < 1 || s.Day > 25 {
		panic(fmt.Sprintf("solver: day %d out of range", s.Day))
	}
	if s.Solve == nil {
		panic(fmt.Sprintf("solver: day %d has no solve func", s.Day))
	}
	if _, dup := registry[s.Day]; dup {
		panic(fmt.Sprintf("solver: day %d registered twice", s.Day))
	}
	registry[s.Day] = s
}

// Lookup returns the solution for a day, if registered.
func Lookup(day int) (Solution, bool) {
	s, ok := registry[day]
	return s, ok
}

// Days returns the registered day numbers in ascending order.
func Days() []int {
	days := make([]int, 0, len(registry))
	for d := range registry {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
