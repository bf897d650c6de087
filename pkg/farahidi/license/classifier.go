// Package license names the deviation between a foot's actual pattern and
// its canonical pattern.
//
// The classifier is a fixed list of positional rules. Licenses registered in
// the catalogue for a foot take precedence; these rules only cover patterns
// the catalogue does not list.
package license

import "github.com/cognicore/farahidi/pkg/farahidi/prosody"

// khabnPosition is the fifth symbol, where the sabab's quiescent sits.
const khabnPosition = 4

// pegs holds the watad (peg) region [start, end) of the feet whose rules
// depend on it.
var pegs = map[string][2]int{
	prosody.FootMafailun: {4, 6}, // final peg, lun
}

// Classify names the deviation of actual from canonical for the named foot.
// Rules are tried in order and the first match wins:
//
//  1. one quiescent→moving substitution at the fifth symbol: khabn
//  2. one quiescent→moving substitution elsewhere: ṭayy
//  3. mafāʿīlun with every deviation inside its peg: iqāma
//  4. mustafʿilun realised shorter than canonical: tashīl
//  5. anything else: an uncorrectable critical break
//
// Identical patterns return the zero License.
func Classify(actual, canonical, foot string) prosody.License {
	if actual == canonical {
		return prosody.License{}
	}

	if len(actual) == len(canonical) {
		diffs := differences(actual, canonical)

		if len(diffs) == 1 {
			i := diffs[0]
			if canonical[i] == byte(prosody.Quiescent) && actual[i] == byte(prosody.Moving) {
				if i == khabnPosition {
					return prosody.License{
						Name:        prosody.LicenseKhabn,
						Description: "elision of the fifth quiescent (khabn)",
						Severity:    prosody.Acceptable,
						Correctable: true,
					}
				}
				return prosody.License{
					Name:        prosody.LicenseTayy,
					Description: "vowel moved onto a quiescent letter (ṭayy)",
					Severity:    prosody.Acceptable,
					Correctable: true,
				}
			}
		}

		if peg, ok := pegs[foot]; ok && within(diffs, peg) {
			return prosody.License{
				Name:        prosody.LicenseIqama,
				Description: "peg inverted in mafāʿīlun (iqāma)",
				Severity:    prosody.Acceptable,
				Correctable: true,
			}
		}
	}

	if foot == prosody.FootMustafilun && len(actual) < len(canonical) {
		return prosody.License{
			Name:        prosody.LicenseTashil,
			Description: "mustafʿilun lightened to a shorter foot (tashīl)",
			Severity:    prosody.Acceptable,
			Correctable: true,
		}
	}

	return prosody.License{
		Name:        prosody.LicenseUnclassified,
		Description: "deviation not permitted at this position",
		Severity:    prosody.Critical,
		Correctable: false,
	}
}

// differences returns the indexes where two equal-length patterns differ.
func differences(a, b string) []int {
	var diffs []int
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			diffs = append(diffs, i)
		}
	}
	return diffs
}

func within(diffs []int, region [2]int) bool {
	if len(diffs) == 0 {
		return false
	}
	for _, i := range diffs {
		if i < region[0] || i >= region[1] {
			return false
		}
	}
	return true
}
