package phonology

// VowelState is the prosodic state of one phoneme.
type VowelState int

const (
	Moving VowelState = iota
	Quiescent
	LongVowel
)

func (s VowelState) String() string {
	switch s {
	case Moving:
		return "moving"
	case Quiescent:
		return "quiescent"
	case LongVowel:
		return "long-vowel"
	}
	return "unknown"
}

// SourceHint records why a token received its state.
type SourceHint int

const (
	Explicit        SourceHint = iota // a written vowel or sukūn
	InferredDefault                   // no diacritic, state inferred from the letter
	ShaddaFirst                       // first half of a geminated consonant
	ShaddaSecond                      // second half of a geminated consonant
	TanwiinNoon                       // nūn realising nunation
	SuperscriptAlif                   // alif realising a dagger alif
)

func (h SourceHint) String() string {
	switch h {
	case Explicit:
		return "explicit"
	case InferredDefault:
		return "inferred-default"
	case ShaddaFirst:
		return "shadda-first"
	case ShaddaSecond:
		return "shadda-second"
	case TanwiinNoon:
		return "tanwiin-noon"
	case SuperscriptAlif:
		return "superscript-alif"
	}
	return "unknown"
}

// Token is one phoneme: a letter and its vowel state.
type Token struct {
	Letter rune
	State  VowelState
	Hint   SourceHint
	Vowel  rune // the written short vowel or tanwīn mark, 0 if none
}

// marks collects the diacritics written on one letter. Order is ignored,
// so shadda+fatḥa and the NFC order fatḥa+shadda read the same.
type marks struct {
	vowel  rune
	tanwin rune
	shadda bool
	sukun  bool
	dagger bool
}

func (m *marks) add(r rune) {
	switch r {
	case fatha, damma, kasra:
		m.vowel = r
	case fathatan, dammatan, kasratan:
		m.tanwin = r
	case shadda:
		m.shadda = true
	case sukun:
		m.sukun = true
	case daggerAlif:
		m.dagger = true
	}
}

func (m marks) empty() bool {
	return m.vowel == 0 && m.tanwin == 0 && !m.shadda && !m.sukun && !m.dagger
}

// Tokenize normalizes text and splits it into phonemic tokens.
// Whitespace and punctuation separate words but produce no tokens.
// Text without Arabic letters yields an empty slice.
func Tokenize(text string) []Token {
	rs := []rune(Normalize(text))
	tokens := make([]Token, 0, len(rs))

	wordStart := true
	afterTanwinFath := false

	for i := 0; i < len(rs); {
		r := rs[i]
		if isSeparator(r) {
			wordStart = true
			afterTanwinFath = false
			i++
			continue
		}
		if !isLetter(r) {
			// A mark with no letter to sit on.
			i++
			continue
		}

		j := i + 1
		var m marks
		for j < len(rs) && isMark(rs[j]) {
			m.add(rs[j])
			j++
		}

		tokens = appendLetter(tokens, r, m, wordStart, afterTanwinFath)

		afterTanwinFath = m.tanwin == fathatan
		wordStart = false
		i = j
	}

	return tokens
}

func appendLetter(tokens []Token, r rune, m marks, wordStart, afterTanwinFath bool) []Token {
	isAlif := r == alif || r == alifMaqsura

	// The alif written after tanwīn al-fatḥ (بًا) is not pronounced.
	if isAlif && afterTanwinFath && m.empty() {
		return tokens
	}

	// Tanwīn written on the seat alif (باً) only adds the nūn.
	if isAlif && !wordStart && m.tanwin != 0 && !m.shadda {
		return append(tokens, Token{Letter: nun, State: Quiescent, Hint: TanwiinNoon})
	}

	switch {
	case m.shadda:
		tokens = append(tokens, Token{Letter: r, State: Quiescent, Hint: ShaddaFirst})
		switch {
		case m.tanwin != 0:
			tokens = append(tokens,
				Token{Letter: r, State: Moving, Hint: ShaddaSecond, Vowel: m.tanwin},
				Token{Letter: nun, State: Quiescent, Hint: TanwiinNoon},
			)
		case m.vowel != 0:
			tokens = append(tokens, Token{Letter: r, State: Moving, Hint: ShaddaSecond, Vowel: m.vowel})
		default:
			tokens = append(tokens, Token{Letter: r, State: Quiescent, Hint: ShaddaSecond})
		}
	case m.tanwin != 0:
		tokens = append(tokens,
			Token{Letter: r, State: Moving, Hint: Explicit, Vowel: m.tanwin},
			Token{Letter: nun, State: Quiescent, Hint: TanwiinNoon},
		)
	case m.vowel != 0:
		tokens = append(tokens, Token{Letter: r, State: Moving, Hint: Explicit, Vowel: m.vowel})
	case m.sukun:
		tokens = append(tokens, Token{Letter: r, State: Quiescent, Hint: Explicit})
	case m.dagger:
		// هٰ carries an implicit fatḥa before the dagger alif.
		tokens = append(tokens, Token{Letter: r, State: Moving, Hint: InferredDefault})
	default:
		tokens = append(tokens, Token{Letter: r, State: defaultState(r, wordStart), Hint: InferredDefault})
	}

	if m.dagger {
		tokens = append(tokens, Token{Letter: alif, State: LongVowel, Hint: SuperscriptAlif})
	}

	return tokens
}

// defaultState infers the state of an undiacritized letter. Alif and alif
// maqṣūra mark length and are quiescent. Wāw and yāʾ are quiescent length
// markers inside a word but consonants, hence moving, at the start of one.
func defaultState(r rune, wordStart bool) VowelState {
	switch r {
	case alif, alifMaqsura:
		return Quiescent
	case waw, ya:
		if wordStart {
			return Moving
		}
		return Quiescent
	}
	return Moving
}
