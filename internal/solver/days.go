package solver

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"advent/internal/input"
	"advent/internal/puzzle/boxes"
	"advent/internal/puzzle/claims"
	"advent/internal/puzzle/frequency"
	"advent/internal/puzzle/guards"
	"advent/internal/puzzle/polymer"
	"advent/internal/puzzle/steps"
)

func init() {
	Register(Solution{Day: 1, Name: "Chronal Calibration", Solve: solveDay01})
	Register(Solution{Day: 2, Name: "Inventory Management System", Solve: solveDay02})
	Register(Solution{Day: 3, Name: "No Matter How You Slice It", Solve: solveDay03})
	Register(Solution{Day: 4, Name: "Repose Record", Solve: solveDay04})
	Register(Solution{Day: 5, Name: "Alchemical Reduction", Solve: solveDay05})
	Register(Solution{Day: 7, Name: "The Sum of Its Parts", Solve: solveDay07})
}

func solveDay01(r io.Reader, opts Options) ([]Answer, error) {
	deltas, err := input.Ints(r)
	if err != nil {
		return nil, err
	}

	repeated, err := frequency.FirstReachedTwiceWithin(deltas, opts.CycleCap)
	if errors.Is(err, frequency.ErrNoRepeat) {
		return []Answer{
			{Label: "Resulting frequency", Value: itoa(frequency.Sum(deltas))},
			{Label: "First frequency reached twice", Value: fmt.Sprintf("none within %d cycles", opts.CycleCap)},
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return []Answer{
		{Label: "Resulting frequency", Value: itoa(frequency.Sum(deltas))},
		{Label: "First frequency reached twice", Value: itoa(repeated)},
	}, nil
}

func solveDay02(r io.Reader, _ Options) ([]Answer, error) {
	ids, err := input.Lines(r)
	if err != nil {
		return nil, err
	}

	common, ok := boxes.FindCommonLetters(ids)
	if !ok {
		common = "no matching pair"
	}

	return []Answer{
		{Label: "Checksum", Value: itoa(boxes.Checksum(ids))},
		{Label: "Matching box ID common letters", Value: common},
	}, nil
}

func solveDay03(r io.Reader, _ Options) ([]Answer, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	cs, err := claims.ParseClaims(lines)
	if err != nil {
		return nil, err
	}

	intact := "no intact claim"
	if id, ok := claims.FindIntactClaim(cs); ok {
		intact = itoa(id)
	}

	return []Answer{
		{Label: "Total overlapping area", Value: itoa(claims.OverlappingArea(cs))},
		{Label: "Nonoverlapping claim id", Value: intact},
	}, nil
}

func solveDay04(r io.Reader, _ Options) ([]Answer, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	recs, err := guards.ParseRecords(lines)
	if err != nil {
		return nil, err
	}

	answers := make([]Answer, 0, 2)

	if guard, minute, ok := guards.SleepiestGuard(recs); ok {
		answers = append(answers, Answer{
			Label: "Strategy 1 (guard x minute)",
			Value: itoa(guard * minute),
		})
	}
	if guard, minute, ok := guards.MostFrequentlyAsleep(recs); ok {
		answers = append(answers, Answer{
			Label: "Strategy 2 (guard x minute)",
			Value: itoa(guard * minute),
		})
	}
	if len(answers) == 0 {
		return nil, errors.New("solver: no guard ever slept")
	}
	return answers, nil
}

func solveDay05(r io.Reader, _ Options) ([]Answer, error) {
	p, err := input.Text(r)
	if err != nil {
		return nil, err
	}

	return []Answer{
		{Label: "Length of reacted polymer", Value: itoa(len(polymer.React(p)))},
		{Label: "Shortest length once removed", Value: itoa(polymer.ShortestAfterRemoval(p))},
	}, nil
}

func solveDay07(r io.Reader, opts Options) ([]Answer, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, err
	}
	deps, err := steps.ParseRules(lines)
	if err != nil {
		return nil, err
	}

	return []Answer{
		{Label: "Step order (1 worker)", Value: steps.Order(deps)},
		{
			Label: fmt.Sprintf("Time to complete (%d workers)", opts.Workers),
			Value: itoa(steps.TimeToComplete(deps, opts.Workers, opts.BaseSeconds)),
		},
	}, nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
