package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/mitchellh/colorstring"
	"github.com/rivo/uniseg"

	"github.com/bent101/wordlet/internal/color"
)

// renderVector paints guess using v's colors, the terminal rendering
// home the teacher's go.mod declared (mitchellh/colorstring) but its
// trimmed source never used. Exact is green, Misplaced is yellow,
// Absent is printed dim.
func renderVector(guess string, v color.Vector) string {
	var b strings.Builder
	for i, c := range v {
		letter := strings.ToUpper(string(guess[i]))
		switch c {
		case color.Exact:
			b.WriteString(colorstring.Color("[green]" + letter + "[reset]"))
		case color.Misplaced:
			b.WriteString(colorstring.Color("[yellow]" + letter + "[reset]"))
		default:
			b.WriteString(colorstring.Color("[dim]" + letter + "[reset]"))
		}
	}
	return b.String()
}

// alignedWidth reports how many characters s holds as the user sees
// them, using uniseg to count grapheme clusters rather than bytes.
// The prompt uses it to report the length of a mistyped color entry.
func alignedWidth(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// promptColorVector asks the user to type the color result of a
// guess and parses it, re-prompting on a malformed entry per
// spec.md §7 ("a malformed user-supplied ColorVector is recoverable
// -- the driver re-prompts").
func promptColorVector(in *bufio.Reader, guess string, w int) (color.Vector, error) {
	for {
		fmt.Printf("colors for %s (r=exact y=misplaced b=absent, %d chars)> ", guess, w)
		line, err := in.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if len(line) != w {
			fmt.Printf("need exactly %d characters, got %d\n", w, alignedWidth(line))
			continue
		}
		v, err := color.Parse(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		return v, nil
	}
}
