package phonology

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Letters and marks the tokenizer understands.
const (
	tatweel = '\u0640'

	fathatan   = '\u064B'
	dammatan   = '\u064C'
	kasratan   = '\u064D'
	fatha      = '\u064E'
	damma      = '\u064F'
	kasra      = '\u0650'
	shadda     = '\u0651'
	sukun      = '\u0652'
	madda      = '\u0653'
	daggerAlif = '\u0670'

	hamza       = 'ء'
	alif        = 'ا'
	alifMaqsura = 'ى'
	waw         = 'و'
	ya          = 'ي'
	nun         = 'ن'
	ha          = 'ه'
)

// folds maps hamza carriers and tāʾ marbūṭa onto their bare letters.
var folds = map[rune]rune{
	'أ': alif,
	'إ': alif,
	'آ': alif,
	'ٱ': alif,
	'ؤ': waw,
	'ئ': ya,
	'ة': ha,
}

// separators are the punctuation runes kept as word boundaries.
var separators = map[rune]struct{}{
	'،': {}, '؛': {}, '؟': {}, '.': {}, ',': {}, ';': {}, ':': {}, '!': {}, '?': {}, '*': {},
}

// isLetter reports whether r is a bare Arabic letter after folding.
func isLetter(r rune) bool {
	return (r >= hamza && r <= 'غ') || (r >= 'ف' && r <= ya)
}

// isMark reports whether r is a diacritic the tokenizer interprets.
func isMark(r rune) bool {
	return (r >= fathatan && r <= madda) || r == daggerAlif
}

func isSeparator(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	_, ok := separators[r]
	return ok
}

func fold(r rune) rune {
	if f, ok := folds[r]; ok {
		return f
	}
	return r
}

func dropped(r rune) bool {
	return r == tatweel || !(isLetter(r) || isMark(r) || isSeparator(r))
}

// Normalize prepares raw text for tokenization: composes the input to NFC,
// folds hamza carriers and tāʾ marbūṭa, strips tatweel and anything that is
// not an Arabic letter, diacritic, whitespace or punctuation, and collapses
// whitespace runs into single spaces.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	t := transform.Chain(norm.NFC, runes.Map(fold), runes.Remove(runes.Predicate(dropped)))
	out, _, err := transform.String(t, text)
	if err != nil {
		// The chain has no failing stage; keep the raw text rather than lose it.
		out = text
	}

	return strings.Join(strings.Fields(out), " ")
}
