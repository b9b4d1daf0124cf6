// Package bench implements the --bench driver mode: it runs FindBest
// once per word length against a starter's dictionaries and reports
// timings, the way bent101-go-wordle-solving/api/wordle.go times its
// hint/bitvector precomputation passes with a progress bar.
package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/bent101/wordlet/internal/applog"
	"github.com/bent101/wordlet/internal/constraint"
	"github.com/bent101/wordlet/internal/dictionary"
	"github.com/bent101/wordlet/internal/selector"
)

// Widths are the word lengths benchmarked per spec.md §6.4: body
// length 5..8 plus the implicit starter letter.
var Widths = []int{6, 7, 8, 9}

// Report is one width's benchmark outcome.
type Report struct {
	Width             int
	Candidates        int
	BestGuess         string
	ExpectedRemaining float64
	Elapsed           time.Duration
	Err               error
}

// Run benchmarks FindBest for starter across every width in Widths,
// loading each width's dictionary from dir. Progress is shown with
// the same progressbar.Default shape as the teacher (which draws on
// stderr); the per-width results are written to out.
func Run(dir string, starter byte, out io.Writer, log *applog.Logger) []Report {
	bar := progressbar.Default(int64(len(Widths)))
	reports := make([]Report, 0, len(Widths))

	for _, w := range Widths {
		report := Report{Width: w}

		words, err := dictionary.Load(dir, starter, w)
		if err != nil {
			report.Err = err
			reports = append(reports, report)
			bar.Add(1)
			continue
		}
		report.Candidates = len(words)

		c := constraint.New(starter, w)

		start := time.Now()
		result, err := selector.FindBest(c, words)
		report.Elapsed = time.Since(start)
		if err != nil {
			report.Err = err
			reports = append(reports, report)
			bar.Add(1)
			continue
		}

		report.BestGuess = words[result.Index]
		report.ExpectedRemaining = result.ExpectedRemaining
		reports = append(reports, report)

		log.Info("benchmarked width",
			"width", w,
			"candidates", report.Candidates,
			"best", report.BestGuess,
			"expected_remaining", report.ExpectedRemaining,
			"elapsed", report.Elapsed,
		)
		bar.Add(1)
	}

	for _, r := range reports {
		if r.Err != nil {
			fmt.Fprintf(out, "W=%d: error: %v\n", r.Width, r.Err)
			continue
		}
		fmt.Fprintf(out, "W=%d: %d candidates, best=%q, expected_remaining=%.3f, took=%s\n",
			r.Width, r.Candidates, r.BestGuess, r.ExpectedRemaining, r.Elapsed)
	}

	return reports
}
