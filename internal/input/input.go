// Package input loads puzzle input files. Solvers consume already-parsed
// slices; every malformed-line concern lives here, not in the solvers.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Ints reads one signed integer per line. Leading '+' is accepted, as the
// day 1 input writes positive changes as "+3". Blank lines are skipped.
func Ints(r io.Reader) ([]int, error) {
	var out []int

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(line, "+"))
		if err != nil {
			return nil, fmt.Errorf("input: line %d: %q is not an integer", lineNum, line)
		}
		out = append(out, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	return out, nil
}

// Lines reads every line verbatim, dropping only the trailing blank line
// most editors leave at end of file.
func Lines(r io.Reader) ([]string, error) {
	var out []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		out = append(out, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out, nil
}

// Text reads the whole input as one string with surrounding whitespace
// trimmed. Used by single-line inputs like the day 5 polymer.
func Text(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("input: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Open opens the input file for a day under dir, named day01.txt, day02.txt
// and so on. The caller owns the returned file.
func Open(dir string, day int) (*os.File, error) {
	path := filepath.Join(dir, fmt.Sprintf("day%02d.txt", day))
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	return f, nil
}
