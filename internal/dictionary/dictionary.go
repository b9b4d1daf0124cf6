// Package dictionary loads candidate word lists for a given starter
// letter and word length. This is an external collaborator to the
// core engine (spec.md §6.1): the core never reads files itself.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrMissingDictionary is returned when no dictionary file exists for
// the requested starter letter.
type ErrMissingDictionary struct {
	Starter byte
}

func (e ErrMissingDictionary) Error() string {
	return fmt.Sprintf("dictionary: no wordlist for starter %q", e.Starter)
}

// ErrInvalidChar is returned when a dictionary line contains a
// character outside a-z.
type ErrInvalidChar struct {
	Line int
	Char byte
}

func (e ErrInvalidChar) Error() string {
	return fmt.Sprintf("dictionary: invalid char %q on line %d", e.Char, e.Line)
}

// Load reads the word list for starter from dir/<starter>.txt,
// returning every line of length w over a-z, in file order.
func Load(dir string, starter byte, w int) ([]string, error) {
	path := filepath.Join(dir, string(starter)+".txt")

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrMissingDictionary{Starter: starter}
		}
		return nil, fmt.Errorf("dictionary: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if err := validate(word, lineNo); err != nil {
			return nil, err
		}
		if len(word) != w {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: %w", err)
	}

	return words, nil
}

func validate(word string, line int) error {
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'a' || c > 'z' {
			return ErrInvalidChar{Line: line, Char: c}
		}
	}
	return nil
}
