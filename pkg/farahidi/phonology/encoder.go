package phonology

import (
	"strings"

	"github.com/cognicore/farahidi/pkg/farahidi/prosody"
)

// Encode maps tokens to the binary skeleton: moving letters become '1',
// quiescent letters and long-vowel markers become '0'.
// The skeleton always has exactly one symbol per token.
func Encode(tokens []Token) prosody.Skeleton {
	skel := prosody.Skeleton{
		Symbols: make([]prosody.Symbol, len(tokens)),
		Letters: make([]rune, len(tokens)),
	}
	for i, tok := range tokens {
		if tok.State == Moving {
			skel.Symbols[i] = prosody.Moving
		} else {
			skel.Symbols[i] = prosody.Quiescent
		}
		skel.Letters[i] = tok.Letter
	}
	return skel
}

// ArudiWriting renders tokens in prosodic spelling: every pronounced letter
// is written, geminates twice and nunation as a nūn, with moving letters
// carrying their vowel and quiescent ones a sukūn.
func ArudiWriting(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteRune(tok.Letter)
		switch tok.State {
		case Moving:
			if v := shortVowel(tok.Vowel); v != 0 {
				b.WriteRune(v)
			}
		case Quiescent:
			b.WriteRune(sukun)
		}
	}
	return b.String()
}

// shortVowel maps a tanwīn mark onto the vowel it carries.
func shortVowel(r rune) rune {
	switch r {
	case fathatan:
		return fatha
	case dammatan:
		return damma
	case kasratan:
		return kasra
	}
	return r
}
