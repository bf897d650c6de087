// Package poem analyses whole poems: it splits verses into hemistichs,
// scans them concurrently and votes on the meter of the poem.
package poem

import (
	"regexp"
	"strings"
)

// Position is where a hemistich sits in its verse.
type Position string

const (
	Sadr   Position = "sadr"   // first half
	Ajuz   Position = "ajuz"   // second half
	Single Position = "single" // a line too short to split
)

// Hemistich is one half-line of a poem.
type Hemistich struct {
	Verse    int // index among the non-empty lines
	Position Position
	Text     string
}

// caesura matches the explicit markers poets and editors put between the
// two halves of a verse.
var caesura = regexp.MustCompile(`[،,*\t]| {3,}`)

// Split breaks a poem into hemistichs, one verse per non-empty line.
//
// A line is split at its first caesura marker: an Arabic or Latin comma,
// an asterisk, a tab, or a run of three or more spaces. A line without a
// usable marker is split between its words at the midpoint, and a one-word
// line is kept whole.
func Split(text string) []Hemistich {
	var out []Hemistich
	verse := 0

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		sadr, ajuz, ok := splitLine(line)
		if ok {
			out = append(out,
				Hemistich{Verse: verse, Position: Sadr, Text: sadr},
				Hemistich{Verse: verse, Position: Ajuz, Text: ajuz},
			)
		} else {
			out = append(out, Hemistich{Verse: verse, Position: Single, Text: line})
		}
		verse++
	}

	return out
}

func splitLine(line string) (string, string, bool) {
	if loc := caesura.FindStringIndex(line); loc != nil {
		sadr := strings.Join(strings.Fields(line[:loc[0]]), " ")
		ajuz := strings.Join(strings.Fields(caesura.ReplaceAllString(line[loc[1]:], " ")), " ")
		if sadr != "" && ajuz != "" {
			return sadr, ajuz, true
		}
	}

	words := strings.Fields(caesura.ReplaceAllString(line, " "))
	if len(words) < 2 {
		return "", "", false
	}
	mid := len(words) / 2
	return strings.Join(words[:mid], " "), strings.Join(words[mid:], " "), true
}
