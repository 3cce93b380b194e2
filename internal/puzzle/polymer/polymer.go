// Package polymer solves day 5: collapsing a polymer by eliminating
// adjacent units of the same type and opposite polarity.
package polymer

// reactsWith reports whether two units annihilate: same letter, opposite
// case.
func reactsWith(a, b byte) bool {
	return a != b && toUpper(a) == toUpper(b)
}

func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// React fully collapses the polymer in a single left-to-right pass. Each
// incoming unit either annihilates the top of the reacted stack or is pushed
// onto it, which reaches the fixpoint without rescanning.
func React(p string) string {
	reacted := make([]byte, 0, len(p))
	for i := 0; i < len(p); i++ {
		unit := p[i]
		if !isLetter(unit) {
			continue
		}
		if n := len(reacted); n > 0 && reactsWith(reacted[n-1], unit) {
			reacted = reacted[:n-1]
		} else {
			reacted = append(reacted, unit)
		}
	}
	return string(reacted)
}

// ShortestAfterRemoval removes each unit type in turn (both polarities),
// reacts the remainder, and returns the shortest resulting length.
func ShortestAfterRemoval(p string) int {
	shortest := len(React(p))
	for unit := byte('A'); unit <= 'Z'; unit++ {
		stripped := removeUnit(p, unit)
		if n := len(React(stripped)); n < shortest {
			shortest = n
		}
	}
	return shortest
}

func removeUnit(p string, upper byte) string {
	out := make([]byte, 0, len(p))
	for i := 0; i < len(p); i++ {
		if toUpper(p[i]) == upper {
			continue
		}
		out = append(out, p[i])
	}
	return string(out)
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
