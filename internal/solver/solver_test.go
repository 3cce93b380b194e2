package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultOptions() Options {
	return Options{Workers: 5, BaseSeconds: 60}
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5, 7}, Days())

	s, ok := Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "Chronal Calibration", s.Name)

	_, ok = Lookup(6)
	assert.False(t, ok)
}

func TestRegister_Panics(t *testing.T) {
	assert.Panics(t, func() {
		Register(Solution{Day: 1, Name: "dup", Solve: solveDay01})
	})
	assert.Panics(t, func() {
		Register(Solution{Day: 0, Name: "out of range", Solve: solveDay01})
	})
	assert.Panics(t, func() {
		Register(Solution{Day: 25, Name: "nil solve"})
	})
}

func TestSolveDay01(t *testing.T) {
	answers, err := solveDay01(strings.NewReader("+1\n-2\n+3\n+1\n"), defaultOptions())
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, "3", answers[0].Value)
	assert.Equal(t, "2", answers[1].Value)

	t.Run("cycle cap surfaces as answer text", func(t *testing.T) {
		answers, err := solveDay01(strings.NewReader("+1\n+2\n"), Options{CycleCap: 10})
		require.NoError(t, err)
		assert.Equal(t, "none within 10 cycles", answers[1].Value)
	})

	t.Run("empty input is an error", func(t *testing.T) {
		_, err := solveDay01(strings.NewReader(""), defaultOptions())
		assert.Error(t, err)
	})
}

func TestSolveDay02(t *testing.T) {
	in := "abcde\nfghij\nklmno\npqrst\nfguij\naxcye\nwvxyz\n"
	answers, err := solveDay02(strings.NewReader(in), defaultOptions())
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, "fgij", answers[1].Value)
}

func TestSolveDay03(t *testing.T) {
	in := "#1 @ 1,3: 4x4\n#2 @ 3,1: 4x4\n#3 @ 5,5: 2x2\n"
	answers, err := solveDay03(strings.NewReader(in), defaultOptions())
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, "4", answers[0].Value)
	assert.Equal(t, "3", answers[1].Value)
}

func TestSolveDay04(t *testing.T) {
	in := strings.Join([]string{
		"[1518-11-01 00:00] Guard #10 begins shift",
		"[1518-11-01 00:05] falls asleep",
		"[1518-11-01 00:25] wakes up",
		"[1518-11-01 00:30] falls asleep",
		"[1518-11-01 00:55] wakes up",
		"[1518-11-01 23:58] Guard #99 begins shift",
		"[1518-11-02 00:40] falls asleep",
		"[1518-11-02 00:50] wakes up",
		"[1518-11-03 00:05] Guard #10 begins shift",
		"[1518-11-03 00:24] falls asleep",
		"[1518-11-03 00:29] wakes up",
		"[1518-11-04 00:02] Guard #99 begins shift",
		"[1518-11-04 00:36] falls asleep",
		"[1518-11-04 00:46] wakes up",
		"[1518-11-05 00:03] Guard #99 begins shift",
		"[1518-11-05 00:45] falls asleep",
		"[1518-11-05 00:55] wakes up",
	}, "\n")

	answers, err := solveDay04(strings.NewReader(in), defaultOptions())
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, "240", answers[0].Value)
	assert.Equal(t, "4455", answers[1].Value)
}

func TestSolveDay05(t *testing.T) {
	answers, err := solveDay05(strings.NewReader("dabAcCaCBAcCcaDA\n"), defaultOptions())
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, "10", answers[0].Value)
	assert.Equal(t, "4", answers[1].Value)
}

func TestSolveDay07(t *testing.T) {
	in := strings.Join([]string{
		"Step C must be finished before step A can begin.",
		"Step C must be finished before step F can begin.",
		"Step A must be finished before step B can begin.",
		"Step A must be finished before step D can begin.",
		"Step B must be finished before step E can begin.",
		"Step D must be finished before step E can begin.",
		"Step F must be finished before step E can begin.",
	}, "\n")

	answers, err := solveDay07(strings.NewReader(in), Options{Workers: 2, BaseSeconds: 0})
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, "CABDFE", answers[0].Value)
	assert.Equal(t, "15", answers[1].Value)
}
