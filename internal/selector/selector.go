// Package selector implements the lookahead best-guess search: for
// each candidate guess it simulates the coloring against every
// surviving target, measures how many candidates would remain, and
// picks the guess with the lowest expected remaining count.
package selector

import (
	"fmt"
	"sync"

	"golang.org/x/exp/constraints"

	"github.com/bent101/wordlet/internal/color"
	"github.com/bent101/wordlet/internal/constraint"
)

// ErrLengthMismatch is surfaced when a candidate's length does not
// match the constraint's width.
type ErrLengthMismatch struct {
	Want, Got int
}

func (e ErrLengthMismatch) Error() string {
	return fmt.Sprintf("selector: length mismatch, want %d got %d", e.Want, e.Got)
}

// ErrNoCandidates is returned when the surviving set is empty, so
// expected-remaining would divide by zero. The game driver stops as
// soon as Filter reports no survivors, so it reaches this error only
// when the dictionary yields no candidate for the starter and width;
// this is a defensive guard (spec.md §9, open question).
type ErrNoCandidates struct{}

func (ErrNoCandidates) Error() string {
	return "selector: no surviving candidates"
}

// Result is the outcome of FindBest: the index (into the original
// candidates slice) of the best guess, and its expected remaining
// survivor count.
type Result struct {
	Index             int
	ExpectedRemaining float64
}

// FindBest evaluates every candidate as a possible next guess and
// returns the one minimising the expected number of surviving
// candidates after the guess, per spec.md §4.4.
//
// Candidate guesses are evaluated in parallel (one goroutine per
// guess, following the fork-join shape of the teacher's MinBy/
// progressbar worker pools); each worker holds its own Constraint
// clone and its own state_id memoisation table, and the final
// reduction is a sequential left-to-right scan over the results so
// the chosen index is independent of goroutine scheduling order.
func FindBest(base constraint.Constraint, candidates []string) (Result, error) {
	for _, w := range candidates {
		if len(w) != base.Width() {
			return Result{}, ErrLengthMismatch{Want: base.Width(), Got: len(w)}
		}
	}

	survivors := make([]string, 0, len(candidates))
	for _, w := range candidates {
		ok, err := base.Matches(w)
		if err != nil {
			return Result{}, err
		}
		if ok {
			survivors = append(survivors, w)
		}
	}
	if len(survivors) == 0 {
		return Result{}, ErrNoCandidates{}
	}

	type scored struct {
		expected float64
		err      error
	}
	scores := make([]scored, len(candidates))

	var wg sync.WaitGroup
	for i, guess := range candidates {
		wg.Add(1)
		go func(i int, guess string) {
			defer wg.Done()
			scores[i].expected, scores[i].err = expectedRemaining(base, guess, survivors, candidates)
		}(i, guess)
	}
	wg.Wait()

	bestIdx := -1
	var bestVal float64
	var firstErr error
	for i, s := range scores {
		if s.err != nil {
			if firstErr == nil {
				firstErr = s.err
			}
			continue
		}
		if bestIdx == -1 || less(s.expected, bestVal) {
			bestIdx = i
			bestVal = s.expected
		}
	}

	if firstErr != nil {
		return Result{}, firstErr
	}

	return Result{Index: bestIdx, ExpectedRemaining: bestVal}, nil
}

// less is the tie-break comparator: strictly smaller wins, equal
// keeps the earlier (lower-index) candidate. Written over
// constraints.Ordered so the same comparator shape as the teacher's
// generic MinBy helper applies here.
func less[T constraints.Ordered](a, b T) bool {
	return a < b
}

// expectedRemaining computes the score for a single candidate guess
// against every surviving target, memoising by color.Vector.StateID
// so that targets producing identical colorings reuse one filter
// pass (spec.md §4.4 step 3).
func expectedRemaining(base constraint.Constraint, guess string, survivors, allCandidates []string) (float64, error) {
	memo := make(map[int]int)

	sum := 0
	counted := 0

	for _, target := range survivors {
		colors, err := color.Of(guess, target)
		if err != nil {
			return 0, err
		}

		id := colors.StateID()
		k, ok := memo[id]
		if !ok {
			clone := base.Clone()
			if err := clone.Update(guess, colors); err != nil {
				return 0, err
			}
			result, err := clone.Filter(allCandidates)
			if err != nil {
				return 0, err
			}
			k = result.Count
			memo[id] = k
		}

		if k > 1 || (k == 1 && colors.AllExact()) {
			sum += k
			counted++
		}
	}

	if counted == 0 {
		return 0, nil
	}
	return float64(sum) / float64(counted), nil
}
