// Package frequency solves day 1: calibrating the device frequency from a
// list of signed changes. Part two cycles the change list indefinitely and
// reports the first running total seen twice.
package frequency

import "errors"

var (
	// ErrNoDeltas is returned when the change list is empty.
	ErrNoDeltas = errors.New("frequency: no changes to apply")

	// ErrNoRepeat is returned by the capped search when no total repeats
	// within the allowed number of full passes.
	ErrNoRepeat = errors.New("frequency: no repeated total within cycle cap")
)

// Sum applies every change once and returns the resulting frequency.
func Sum(deltas []int) int {
	total := 0
	for _, d := range deltas {
		total += d
	}
	return total
}

// FirstReachedTwice cycles through deltas indefinitely, accumulating a
// running total that starts at 0, and returns the first total produced more
// than once. The starting 0 counts as already seen, so a list summing to
// zero over one pass reports 0. The repeat is often only reached after many
// full passes; the search does not terminate if no partial sum ever repeats.
func FirstReachedTwice(deltas []int) (int, error) {
	return FirstReachedTwiceWithin(deltas, 0)
}

// FirstReachedTwiceWithin is FirstReachedTwice with an upper bound on full
// passes through deltas. maxCycles <= 0 means unbounded. When the bound is
// hit without a repeat it returns ErrNoRepeat.
func FirstReachedTwiceWithin(deltas []int, maxCycles int) (int, error) {
	if len(deltas) == 0 {
		return 0, ErrNoDeltas
	}

	total := 0
	seen := map[int]struct{}{0: {}}

	for cycle := 0; maxCycles <= 0 || cycle < maxCycles; cycle++ {
		for pos := 0; pos < len(deltas); pos++ {
			total += deltas[pos]
			if _, ok := seen[total]; ok {
				return total, nil
			}
			seen[total] = struct{}{}
		}
	}
	return 0, ErrNoRepeat
}
