package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/bent101/wordlet/internal/applog"
	"github.com/bent101/wordlet/internal/color"
	"github.com/bent101/wordlet/internal/constraint"
	"github.com/bent101/wordlet/internal/dictionary"
	"github.com/bent101/wordlet/internal/selector"
)

// maxCandidatesShown bounds how many surviving words the driver
// prints after each filter pass, the "how many words left, want to
// see them" affordance the original's REPL offers (see SPEC_FULL.md §4).
const maxCandidatesShown = 12

// runGame drives one game to completion per spec.md §6.2: obtain
// candidates, build a Constraint, then loop find_best -> display ->
// observe colors -> update -> filter, until solved or unique.
func runGame(dir string, starter byte, width int, auto string, log *applog.Logger) error {
	candidates, err := dictionary.Load(dir, starter, width)
	if err != nil {
		return err
	}
	log = log.WithGame(starter, width)
	log.Info("loaded dictionary", "candidates", len(candidates))

	c := constraint.New(starter, width)
	console := bufio.NewReader(os.Stdin)

	for {
		result, err := selector.FindBest(c, candidates)
		if err != nil {
			return err
		}
		guess := candidates[result.Index]
		fmt.Printf("guess> %s (expected remaining: %.2f)\n", guess, result.ExpectedRemaining)

		var colors color.Vector
		if auto != "" {
			colors, err = color.Of(guess, auto)
			if err != nil {
				return err
			}
			fmt.Println(renderVector(guess, colors))
		} else {
			colors, err = promptColorVector(console, guess, width)
			if err != nil {
				return err
			}
		}

		if colors.AllExact() {
			fmt.Printf("Solved: %s\n", guess)
			return nil
		}

		if err := c.Update(guess, colors); err != nil {
			return err
		}

		filtered, err := c.Filter(candidates)
		if err != nil {
			return err
		}
		if filtered.IsOne {
			fmt.Printf("Only one candidate left: %s\n", filtered.Unique)
			return nil
		}
		if filtered.Count == 0 {
			return fmt.Errorf("no candidate matches the reported colors")
		}

		log.Debug("filtered candidates", "remaining", filtered.Count)
		showCandidates(candidates, c, filtered.Count)
	}
}

// showCandidates prints up to maxCandidatesShown surviving words.
func showCandidates(candidates []string, c constraint.Constraint, total int) {
	fmt.Printf("%d candidates remain", total)
	if total == 0 || total > maxCandidatesShown {
		fmt.Println()
		return
	}

	shown := make([]string, 0, total)
	for _, w := range candidates {
		ok, err := c.Matches(w)
		if err != nil || !ok {
			continue
		}
		shown = append(shown, w)
	}
	fmt.Printf(": %v\n", shown)
}
