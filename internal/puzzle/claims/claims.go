// Package claims solves day 3: rectangular fabric claims. Part one measures
// the area claimed more than once; part two finds the single claim that
// overlaps no other.
package claims

import (
	"fmt"
	"regexp"
	"strconv"
)

// Claim is one rectangular cut of fabric, e.g. "#123 @ 3,2: 5x4".
type Claim struct {
	ID int
	X  int
	Y  int
	W  int
	H  int
}

var claimRe = regexp.MustCompile(`^#(\d+) @ (\d+),(\d+): (\d+)x(\d+)$`)

// ParseClaim parses a single claim line.
func ParseClaim(line string) (Claim, error) {
	m := claimRe.FindStringSubmatch(line)
	if m == nil {
		return Claim{}, fmt.Errorf("claims: malformed claim %q", line)
	}

	fields := make([]int, 5)
	for i := range fields {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Claim{}, fmt.Errorf("claims: malformed claim %q: %w", line, err)
		}
		fields[i] = n
	}

	return Claim{ID: fields[0], X: fields[1], Y: fields[2], W: fields[3], H: fields[4]}, nil
}

// ParseClaims parses one claim per line.
func ParseClaims(lines []string) ([]Claim, error) {
	out := make([]Claim, 0, len(lines))
	for i, line := range lines {
		c, err := ParseClaim(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Overlaps reports whether two claims share at least one square inch.
func (c Claim) Overlaps(other Claim) bool {
	return c.X < other.X+other.W && other.X < c.X+c.W &&
		c.Y < other.Y+other.H && other.Y < c.Y+c.H
}

type point struct{ x, y int }

// OverlappingArea counts the square inches covered by two or more claims.
func OverlappingArea(cs []Claim) int {
	fabric := make(map[point]int)
	for _, c := range cs {
		for x := c.X; x < c.X+c.W; x++ {
			for y := c.Y; y < c.Y+c.H; y++ {
				fabric[point{x, y}]++
			}
		}
	}

	area := 0
	for _, n := range fabric {
		if n >= 2 {
			area++
		}
	}
	return area
}

// FindIntactClaim returns the ID of the claim overlapping no other claim,
// or false if every claim overlaps something.
func FindIntactClaim(cs []Claim) (int, bool) {
next:
	for i, c := range cs {
		for j, other := range cs {
			if i != j && c.Overlaps(other) {
				continue next
			}
		}
		return c.ID, true
	}
	return 0, false
}
