// Package prosody holds the record types shared by every scansion stage:
// the binary skeleton, detected feet, licenses and faults.
//
// Values of these types are created fresh per analysis and are never
// mutated after the stage that produced them returns.
package prosody

import "strings"

// Symbol is one slot of the prosodic skeleton.
type Symbol byte

const (
	Moving    Symbol = '1' // mutaḥarrik
	Quiescent Symbol = '0' // sākin
)

// Skeleton is the binary moving/quiescent pattern of a hemistich.
// Letters[i] is the letter that produced Symbols[i].
type Skeleton struct {
	Symbols []Symbol
	Letters []rune
}

// Len returns the number of symbols.
func (s Skeleton) Len() int {
	return len(s.Symbols)
}

// String renders the skeleton as a bit-string such as "11010".
func (s Skeleton) String() string {
	var b strings.Builder
	b.Grow(len(s.Symbols))
	for _, sym := range s.Symbols {
		b.WriteByte(byte(sym))
	}
	return b.String()
}

// Window returns the bit-string of symbols [start, start+n), or false when
// the window runs past the end of the skeleton.
func (s Skeleton) Window(start, n int) (string, bool) {
	if start < 0 || n < 0 || start+n > len(s.Symbols) {
		return "", false
	}
	var b strings.Builder
	b.Grow(n)
	for _, sym := range s.Symbols[start : start+n] {
		b.WriteByte(byte(sym))
	}
	return b.String(), true
}

// LettersAt returns the letters behind symbols [start, start+n).
func (s Skeleton) LettersAt(start, n int) string {
	if start < 0 || start >= len(s.Letters) {
		return ""
	}
	end := start + n
	if end > len(s.Letters) {
		end = len(s.Letters)
	}
	return string(s.Letters[start:end])
}

// Severity grades a metrical deviation.
type Severity string

const (
	Acceptable Severity = "acceptable"
	Critical   Severity = "critical"
)

// License names a metrical deviation (zihāf, ʿilla) or an illegal break.
type License struct {
	Name        string
	Description string
	Severity    Severity
	Correctable bool
}

// IsZero reports whether no license was assigned.
func (l License) IsZero() bool {
	return l.Name == ""
}

// DetectedFoot is one foot found by the segmenter.
type DetectedFoot struct {
	Name      string
	Position  int    // index of the first symbol in the skeleton
	Pattern   string // actual bit-string consumed
	Letters   string
	License   *License // nil for a canonical foot
	Canonical bool
}

// Len returns the number of symbols the foot consumed.
func (f DetectedFoot) Len() int {
	return len(f.Pattern)
}

// Fault is a deviation attributed to one detected foot.
type Fault struct {
	FootIndex   int
	Foot        string
	License     string
	Description string
	Severity    Severity
	Correctable bool
}

// SubForm classifies how much of a meter's full template a hemistich realises.
type SubForm string

const (
	Complete        SubForm = "complete"         // tāmm
	Truncated       SubForm = "truncated"        // majzūʾ
	DoublyTruncated SubForm = "doubly-truncated" // mashṭūr
	Curtailed       SubForm = "curtailed"        // manhūk
)

// Valid reports whether s is one of the known sub-forms.
func (s SubForm) Valid() bool {
	switch s {
	case Complete, Truncated, DoublyTruncated, Curtailed:
		return true
	}
	return false
}

// IsBitString reports whether p is a non-empty string of '0' and '1'.
func IsBitString(p string) bool {
	if p == "" {
		return false
	}
	for i := 0; i < len(p); i++ {
		if p[i] != byte(Moving) && p[i] != byte(Quiescent) {
			return false
		}
	}
	return true
}
