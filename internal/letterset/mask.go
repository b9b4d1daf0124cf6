// Package letterset implements the per-position letter set used by the
// constraint engine: a 26-bit word where bit i means letter 'a'+i is
// still admissible at that position.
package letterset

import "math/bits"

// Mask is the set of letters still possible at one word position.
// The zero value is the empty mask; use Full to get the all-letters
// mask a fresh position starts with.
type Mask uint32

const allLetters Mask = (1 << 26) - 1

// Full returns the mask admitting every letter a-z.
func Full() Mask {
	return allLetters
}

// Of returns the singleton mask containing only c.
func Of(c byte) Mask {
	return Mask(1) << letterIndex(c)
}

func letterIndex(c byte) byte {
	return c - 'a'
}

// Contains reports whether c is still admitted by m.
func (m Mask) Contains(c byte) bool {
	return m&(Mask(1)<<letterIndex(c)) != 0
}

// Remove drops c from m, unless m would become empty, in which case
// it is a no-op. Callers rely on this as a non-regression guard: a
// reachable mask never empties.
func (m Mask) Remove(c byte) Mask {
	bit := Mask(1) << letterIndex(c)
	if m&bit == 0 {
		return m
	}
	if bits.OnesCount32(uint32(m)) <= 1 {
		return m
	}
	return m &^ bit
}

// Set replaces m with the singleton {c}.
func (m Mask) Set(c byte) Mask {
	return Of(c)
}

// Singleton returns the unique letter in m and true, or (0, false) if
// m does not contain exactly one letter.
func (m Mask) Singleton() (byte, bool) {
	if bits.OnesCount32(uint32(m)) != 1 {
		return 0, false
	}
	return 'a' + byte(bits.TrailingZeros32(uint32(m))), true
}

// Count returns the number of letters still admitted by m.
func (m Mask) Count() int {
	return bits.OnesCount32(uint32(m))
}
