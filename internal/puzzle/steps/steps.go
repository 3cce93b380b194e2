// Package steps solves day 7: ordering assembly steps under prerequisite
// rules, alone and with a crew of parallel workers.
package steps

import (
	"fmt"
	"regexp"
	"sort"
)

var ruleRe = regexp.MustCompile(`^Step ([A-Z]) must be finished before step ([A-Z]) can begin\.$`)

// ParseRules parses rule lines into a map from step to its prerequisites.
// Every mentioned step gets an entry, including steps with no prerequisites.
func ParseRules(lines []string) (map[byte][]byte, error) {
	deps := make(map[byte][]byte)
	for i, line := range lines {
		m := ruleRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("steps: malformed rule on line %d: %q", i+1, line)
		}
		before, step := m[1][0], m[2][0]
		deps[step] = append(deps[step], before)
		if _, ok := deps[before]; !ok {
			deps[before] = nil
		}
	}
	return deps, nil
}

// Order returns the single-worker step order: at each point the
// alphabetically first step whose prerequisites are all complete.
func Order(deps map[byte][]byte) string {
	done := make(map[byte]bool, len(deps))
	order := make([]byte, 0, len(deps))

	for len(order) < len(deps) {
		next, ok := firstReady(deps, done, nil)
		if !ok {
			// Unsatisfiable rules (a cycle); stop rather than spin.
			break
		}
		done[next] = true
		order = append(order, next)
	}
	return string(order)
}

// TimeToComplete simulates workers assembling in parallel and returns the
// total seconds. Step X takes baseSeconds + (X - 'A' + 1) seconds. Idle
// workers always pick the alphabetically first ready step.
func TimeToComplete(deps map[byte][]byte, workers, baseSeconds int) int {
	type job struct {
		step byte
		left int
	}

	crew := make([]*job, workers)
	done := make(map[byte]bool, len(deps))
	started := make(map[byte]bool, len(deps))

	seconds := 0
	for len(done) < len(deps) {
		// Assign ready steps to idle workers.
		for i := range crew {
			if crew[i] != nil {
				continue
			}
			step, ok := firstReady(deps, done, started)
			if !ok {
				break
			}
			started[step] = true
			crew[i] = &job{step: step, left: baseSeconds + int(step-'A') + 1}
		}

		busy := false
		for _, j := range crew {
			if j != nil {
				busy = true
				break
			}
		}
		if !busy {
			// Nothing in flight and nothing ready: the rules are cyclic.
			break
		}

		// Advance one second of work.
		for i, j := range crew {
			if j == nil {
				continue
			}
			j.left--
			if j.left == 0 {
				done[j.step] = true
				crew[i] = nil
			}
		}
		seconds++
	}
	return seconds
}

// firstReady returns the alphabetically first step that is not done, not
// already started, and whose prerequisites are all done.
func firstReady(deps map[byte][]byte, done, started map[byte]bool) (byte, bool) {
	candidates := make([]byte, 0, len(deps))
	for step := range deps {
		if done[step] || started[step] {
			continue
		}
		candidates = append(candidates, step)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

next:
	for _, step := range candidates {
		for _, pre := range deps[step] {
			if !done[pre] {
				continue next
			}
		}
		return step, true
	}
	return 0, false
}
