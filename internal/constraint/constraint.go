// Package constraint implements the aggregate per-position letter
// masks plus per-letter count budgets that a sequence of guesses
// narrows down to the target word.
package constraint

import (
	"fmt"

	"github.com/bent101/wordlet/internal/color"
	"github.com/bent101/wordlet/internal/letterset"
)

// ErrLengthMismatch is returned by any operation that receives a
// word or color vector of the wrong length for this Constraint.
type ErrLengthMismatch struct {
	Op   string
	Want int
	Got  int
}

func (e ErrLengthMismatch) Error() string {
	return fmt.Sprintf("constraint.%s: length mismatch, want %d got %d", e.Op, e.Want, e.Got)
}

// budget is a per-letter count constraint: either a lower bound
// ("at least n") or an exact bound ("exactly n"). An exact budget
// never regresses to a lower bound once set.
type budget struct {
	count int
	exact bool
}

// Constraint is the full narrowing state for one game: one
// letterset.Mask per position plus a budget per letter a-z.
type Constraint struct {
	width   int
	masks   []letterset.Mask
	budgets [26]budget
}

// New builds a Constraint for a word of length w whose first letter
// is the revealed starter. Every other position starts full and
// every letter budget starts at "at least 0".
func New(starter byte, w int) Constraint {
	masks := make([]letterset.Mask, w)
	masks[0] = letterset.Of(starter)
	for i := 1; i < w; i++ {
		masks[i] = letterset.Full()
	}
	return Constraint{width: w, masks: masks}
}

// Width reports the word length this Constraint was built for.
func (c Constraint) Width() int {
	return c.width
}

// Clone returns a deep value copy safe to mutate independently of c.
// The selector relies on this to apply a hypothetical Update during
// lookahead without aliasing the base constraint.
func (c Constraint) Clone() Constraint {
	masks := make([]letterset.Mask, len(c.masks))
	copy(masks, c.masks)
	clone := c
	clone.masks = masks
	return clone
}

func countLetter(word string, c byte) int {
	n := 0
	for i := 0; i < len(word); i++ {
		if word[i] == c {
			n++
		}
	}
	return n
}

// Matches reports whether word satisfies every position mask and
// every letter budget.
func (c Constraint) Matches(word string) (bool, error) {
	if len(word) != c.width {
		return false, ErrLengthMismatch{Op: "Matches", Want: c.width, Got: len(word)}
	}

	for i := 0; i < c.width; i++ {
		if !c.masks[i].Contains(word[i]) {
			return false, nil
		}
	}

	for letter := byte('a'); letter <= 'z'; letter++ {
		b := c.budgets[letter-'a']
		n := countLetter(word, letter)
		if b.exact {
			if n != b.count {
				return false, nil
			}
		} else if n < b.count {
			return false, nil
		}
	}

	return true, nil
}

// Update absorbs the result of guessing guess and observing colors,
// per spec.md §4.3: first the per-letter budget is tightened (promoted
// to exact when the guess repeats a letter more often than the target
// admits), then exact positions are fixed, then letters are removed
// from positions they are now known wrong at.
func (c *Constraint) Update(guess string, colors color.Vector) error {
	if len(guess) != c.width {
		return ErrLengthMismatch{Op: "Update", Want: c.width, Got: len(guess)}
	}
	if len(colors) != c.width {
		return ErrLengthMismatch{Op: "Update", Want: c.width, Got: len(colors)}
	}

	// 1. Budget update.
	for letter := byte('a'); letter <= 'z'; letter++ {
		allC := 0
		nonBlueC := 0
		for i := 0; i < c.width; i++ {
			if guess[i] == letter {
				allC++
				if colors[i] != color.Absent {
					nonBlueC++
				}
			}
		}
		if allC == 0 {
			continue
		}

		b := &c.budgets[letter-'a']
		if b.exact {
			continue
		}
		if allC > nonBlueC {
			b.exact = true
			b.count = nonBlueC
		} else if b.count < allC {
			b.count = allC
		}
	}

	// 2. Exact positions.
	for i := 0; i < c.width; i++ {
		if colors[i] == color.Exact {
			c.masks[i] = c.masks[i].Set(guess[i])
		}
	}

	// 3. Removal.
	for letter := byte('a'); letter <= 'z'; letter++ {
		fixedC := 0
		for i := 0; i < c.width; i++ {
			if l, ok := c.masks[i].Singleton(); ok && l == letter {
				fixedC++
			}
		}

		b := c.budgets[letter-'a']
		if b.exact && fixedC == b.count {
			for i := 0; i < c.width; i++ {
				c.masks[i] = c.masks[i].Remove(letter)
			}
			continue
		}

		for i := 0; i < c.width; i++ {
			if guess[i] == letter && colors[i] != color.Exact {
				c.masks[i] = c.masks[i].Remove(letter)
			}
		}
	}

	return nil
}

// FilterResult is the outcome of Filter: either a count of surviving
// candidates, or the unique remaining word when exactly one matches.
type FilterResult struct {
	Count  int
	Unique string
	IsOne  bool
}

// Filter counts the candidates satisfying c, returning the unique
// survivor when there is exactly one.
func (c Constraint) Filter(candidates []string) (FilterResult, error) {
	count := 0
	var unique string

	for _, w := range candidates {
		ok, err := c.Matches(w)
		if err != nil {
			return FilterResult{}, err
		}
		if ok {
			count++
			unique = w
		}
	}

	return FilterResult{Count: count, Unique: unique, IsOne: count == 1}, nil
}
