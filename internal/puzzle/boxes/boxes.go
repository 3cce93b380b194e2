// Package boxes solves day 2: scanning warehouse box IDs. Part one computes
// a letter-count checksum; part two finds the two IDs that differ by exactly
// one character and returns the letters they share.
package boxes

// Checksum multiplies the number of IDs containing a letter exactly twice by
// the number containing a letter exactly three times. An ID counts at most
// once per bucket no matter how many letters qualify.
func Checksum(ids []string) int {
	twos := 0
	threes := 0

	for _, id := range ids {
		freq := charFrequency(id)

		hasTwo := false
		hasThree := false
		for _, count := range freq {
			switch count {
			case 2:
				hasTwo = true
			case 3:
				hasThree = true
			}
		}
		if hasTwo {
			twos++
		}
		if hasThree {
			threes++
		}
	}

	return twos * threes
}

func charFrequency(s string) map[rune]int {
	freq := make(map[rune]int)
	for _, r := range s {
		freq[r]++
	}
	return freq
}

// FindCommonLetters scans all pairs of IDs in index order (i before j, both
// ascending) for the first pair differing at exactly one position, and
// returns the characters common to both, in order. The second result is
// false when no such pair exists. Pairs of unequal length never match.
func FindCommonLetters(ids []string) (string, bool) {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if !almostEqual(ids[i], ids[j]) {
				continue
			}

			a := []rune(ids[i])
			b := []rune(ids[j])
			common := make([]rune, 0, len(a)-1)
			for pos, r := range a {
				if r == b[pos] {
					common = append(common, r)
				}
			}
			return string(common), true
		}
	}
	return "", false
}

// almostEqual reports whether a and b have the same length and differ at
// exactly one position. Identical strings do not qualify.
func almostEqual(a, b string) bool {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) != len(rb) {
		return false
	}

	diffs := 0
	for i := range ra {
		if ra[i] != rb[i] {
			diffs++
			if diffs > 1 {
				return false
			}
		}
	}
	return diffs == 1
}
