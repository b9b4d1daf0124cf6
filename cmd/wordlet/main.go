// Command wordlet is the interactive/auto-play/benchmark driver for
// the candidate-reduction engine in internal/selector. The core
// algorithm lives under internal/; this package is the "external
// collaborator" spec.md §1 and §6.4 describe: argument parsing, the
// text UI, and the benchmark harness.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bent101/wordlet/internal/applog"
	"github.com/bent101/wordlet/internal/bench"
)

const usage = `usage: wordlet <starter><len>
       wordlet --auto <word> <starter><len>
       wordlet --bench <letter>

  <starter><len>  starter is a letter a-z, len is the body length
                  (the word length minus the revealed starter), one
                  of 5, 6, 7 or 8.
  --auto <word>   auto-play: colors are synthesized against <word>
                  instead of prompted for.
  --bench <letter> run find_best for each word length against the
                  starter letter's dictionaries and print timings.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("wordlet", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }

	auto := fs.String("auto", "", "auto-play against this word")
	benchLetter := fs.String("bench", "", "benchmark mode: starter letter")
	dir := fs.String("dict", "dictionaries", "dictionary directory")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := applog.New()

	if *benchLetter != "" {
		if len(*benchLetter) != 1 {
			fmt.Fprintln(os.Stderr, "wordlet: --bench wants a single starter letter")
			return 1
		}
		bench.Run(*dir, (*benchLetter)[0], os.Stdout, log)
		return 0
	}

	positional := fs.Args()
	if len(positional) != 1 {
		fs.Usage()
		return 0
	}

	starter, width, err := parseSelector(positional[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "wordlet:", err)
		return 1
	}

	if err := runGame(*dir, starter, width, *auto, log); err != nil {
		fmt.Fprintln(os.Stderr, "wordlet:", err)
		return 1
	}
	return 0
}

// parseSelector parses the positional "<starter><len>" selector from
// spec.md §6.4: starter in a-z, len in {5,6,7,8}, body length = word
// length minus the implicit starter.
func parseSelector(s string) (byte, int, error) {
	if len(s) != 2 {
		return 0, 0, fmt.Errorf("selector %q must be exactly 2 characters", s)
	}
	starter := s[0]
	if starter < 'a' || starter > 'z' {
		return 0, 0, fmt.Errorf("selector %q: starter must be a-z", s)
	}
	body := s[1]
	if body < '5' || body > '8' {
		return 0, 0, fmt.Errorf("selector %q: len must be one of 5,6,7,8", s)
	}
	return starter, int(body-'0') + 1, nil
}
