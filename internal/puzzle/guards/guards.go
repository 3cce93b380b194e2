// Package guards solves day 4: reconstructing guard sleep schedules from a
// shuffled observation log. Both strategies reduce to per-guard histograms
// of the midnight-hour minutes spent asleep.
package guards

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"
)

// Kind discriminates the three log events.
type Kind int

const (
	BeginShift Kind = iota
	FallAsleep
	WakeUp
)

// Record is one parsed log line. Guard is only set on BeginShift records;
// sleep events belong to the most recent shift.
type Record struct {
	Time  time.Time
	Kind  Kind
	Guard int
}

var (
	lineRe  = regexp.MustCompile(`^\[(\d+-\d+-\d+ \d+:\d+)\] (.+)$`)
	shiftRe = regexp.MustCompile(`^Guard #(\d+) begins shift$`)
)

// ParseRecord parses a log line such as
// "[1518-11-01 00:00] Guard #10 begins shift".
func ParseRecord(line string) (Record, error) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return Record{}, fmt.Errorf("guards: malformed record %q", line)
	}

	ts, err := time.Parse("2006-01-02 15:04", m[1])
	if err != nil {
		return Record{}, fmt.Errorf("guards: malformed timestamp in %q: %w", line, err)
	}

	rec := Record{Time: ts}
	switch event := m[2]; event {
	case "falls asleep":
		rec.Kind = FallAsleep
	case "wakes up":
		rec.Kind = WakeUp
	default:
		sm := shiftRe.FindStringSubmatch(event)
		if sm == nil {
			return Record{}, fmt.Errorf("guards: unknown event %q", event)
		}
		id, err := strconv.Atoi(sm[1])
		if err != nil {
			return Record{}, fmt.Errorf("guards: bad guard id in %q: %w", line, err)
		}
		rec.Kind = BeginShift
		rec.Guard = id
	}
	return rec, nil
}

// ParseRecords parses one record per line and sorts them chronologically.
// The raw log arrives shuffled; every computation below needs time order.
func ParseRecords(lines []string) ([]Record, error) {
	recs := make([]Record, 0, len(lines))
	for i, line := range lines {
		rec, err := ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Time.Before(recs[j].Time) })
	return recs, nil
}

// sleepMinutes folds chronological records into a per-guard histogram of
// minutes 0-59 spent asleep. A nap covers [falls asleep, wakes up).
func sleepMinutes(recs []Record) map[int]*[60]int {
	byGuard := make(map[int]*[60]int)

	guard := 0
	napStart := 0
	for _, rec := range recs {
		switch rec.Kind {
		case BeginShift:
			guard = rec.Guard
		case FallAsleep:
			napStart = rec.Time.Minute()
		case WakeUp:
			hist := byGuard[guard]
			if hist == nil {
				hist = new([60]int)
				byGuard[guard] = hist
			}
			for m := napStart; m < rec.Time.Minute(); m++ {
				hist[m]++
			}
		}
	}
	return byGuard
}

// SleepiestGuard implements strategy 1: the guard asleep for the most total
// minutes, and the minute that guard is asleep most often. Returns false if
// no guard ever sleeps.
func SleepiestGuard(recs []Record) (guardID, minute int, ok bool) {
	byGuard := sleepMinutes(recs)

	bestTotal := 0
	for id, hist := range byGuard {
		total := 0
		for _, n := range hist {
			total += n
		}
		if total > bestTotal {
			bestTotal = total
			guardID = id
			minute = maxMinute(hist)
		}
	}
	return guardID, minute, bestTotal > 0
}

// MostFrequentlyAsleep implements strategy 2: the guard most frequently
// asleep on the same minute, and that minute. Returns false if no guard
// ever sleeps.
func MostFrequentlyAsleep(recs []Record) (guardID, minute int, ok bool) {
	byGuard := sleepMinutes(recs)

	bestCount := 0
	for id, hist := range byGuard {
		m := maxMinute(hist)
		if hist[m] > bestCount {
			bestCount = hist[m]
			guardID = id
			minute = m
		}
	}
	return guardID, minute, bestCount > 0
}

func maxMinute(hist *[60]int) int {
	best := 0
	for m, n := range hist {
		if n > hist[best] {
			best = m
		}
	}
	return best
}
