// Package meter aligns a sequence of detected feet against the meter
// templates of a catalogue and reports the best match.
package meter

import (
	"fmt"

	"github.com/cognicore/farahidi/pkg/farahidi/catalogue"
	"github.com/cognicore/farahidi/pkg/farahidi/license"
	"github.com/cognicore/farahidi/pkg/farahidi/prosody"
)

// Status grades an accepted match.
type Status string

const (
	Valid   Status = "valid"
	Partial Status = "partial"
)

// Thresholds defines the score bands of a match.
type Thresholds struct {
	Valid   float64 // at or above: valid
	Partial float64 // at or above, below Valid: partial; below: no match
}

// Options configures a Matcher.
type Options struct {
	RelatedCredit float64
	Thresholds    Thresholds
}

// DefaultOptions returns the standard credit and thresholds.
func DefaultOptions() Options {
	return Options{
		RelatedCredit: 0.75,
		Thresholds: Thresholds{
			Valid:   0.7,
			Partial: 0.5,
		},
	}
}

// Match is the best (meter, sub-form) alignment of a hemistich.
type Match struct {
	Meter    string
	Arabic   string
	Form     prosody.SubForm // form of the winning template
	SubForm  prosody.SubForm // derived from the canonical feet actually found
	Score    float64
	Status   Status
	Expected []string
}

// IsValid reports whether the match reached the valid threshold.
func (m Match) IsValid() bool {
	return m.Status == Valid
}

// Matcher scores foot sequences against catalogue templates.
type Matcher struct {
	cat       *catalogue.Catalogue
	templates []catalogue.Template
	opts      Options
}

// New creates a matcher over the templates of cat.
func New(cat *catalogue.Catalogue, opts Options) *Matcher {
	return &Matcher{
		cat:       cat,
		templates: cat.Templates(),
		opts:      opts,
	}
}

// Match returns the best-scoring template for the detected feet.
//
// Each template is scored position by position: an exact foot name earns
// 1.0, a related foot earns RelatedCredit, anything else earns nothing. The
// total is divided by the longer of the two sequences. A later template
// replaces the current best only with a strictly greater score, so ties go
// to the earlier catalogue entry. The second result is false when the best
// score falls below the partial threshold.
func (m *Matcher) Match(feet []prosody.DetectedFoot) (Match, bool) {
	if len(feet) == 0 {
		return Match{}, false
	}

	best := -1
	bestScore := 0.0
	for i, tmpl := range m.templates {
		score := m.score(feet, tmpl)
		if best < 0 || score > bestScore {
			best, bestScore = i, score
		}
	}

	if best < 0 || bestScore < m.opts.Thresholds.Partial {
		return Match{}, false
	}

	tmpl := m.templates[best]
	match := Match{
		Meter:    tmpl.Meter,
		Arabic:   tmpl.Arabic,
		Form:     tmpl.Form,
		Score:    bestScore,
		Status:   Partial,
		Expected: tmpl.Names(),
	}
	if bestScore >= m.opts.Thresholds.Valid {
		match.Status = Valid
	}

	full, ok := m.cat.FullLength(tmpl.Meter)
	if !ok {
		full = len(tmpl.Feet)
	}
	match.SubForm = deriveSubForm(countCanonical(feet), full)

	return match, true
}

func (m *Matcher) score(feet []prosody.DetectedFoot, tmpl catalogue.Template) float64 {
	total := len(feet)
	if len(tmpl.Feet) > total {
		total = len(tmpl.Feet)
	}
	if total == 0 {
		return 0
	}

	credit := 0.0
	for i, expected := range tmpl.Feet {
		if i >= len(feet) {
			break
		}
		switch {
		case feet[i].Name == expected.Name:
			credit += 1
		case related(feet[i], expected):
			credit += m.opts.RelatedCredit
		}
	}
	return credit / float64(total)
}

// related reports whether a detected foot may stand in for the expected one:
// its pattern is one the expected foot admits, or the expected foot lists it
// as a substitute.
func related(f prosody.DetectedFoot, expected *catalogue.Foot) bool {
	return expected.Admits(f.Pattern) || expected.IsRelated(f.Name)
}

func countCanonical(feet []prosody.DetectedFoot) int {
	n := 0
	for _, f := range feet {
		if f.Canonical {
			n++
		}
	}
	return n
}

// deriveSubForm grades n intact feet against a complete form of full feet.
func deriveSubForm(n, full int) prosody.SubForm {
	switch {
	case n >= full:
		return prosody.Complete
	case 2*n >= full:
		return prosody.Truncated
	case 3*n >= full:
		return prosody.DoublyTruncated
	default:
		return prosody.Curtailed
	}
}

// Faults lists the deviations of the detected feet.
//
// When match is non-nil, an aligned position holding neither the expected
// foot nor a related one is classified against the expected foot's canonical
// pattern, and that verdict is the position's only fault. Every other
// licensed foot yields its license.
func (m *Matcher) Faults(feet []prosody.DetectedFoot, match *Match) []prosody.Fault {
	var faults []prosody.Fault

	for i, f := range feet {
		if fault, ok := m.misaligned(i, f, match); ok {
			faults = append(faults, fault)
			continue
		}

		if f.License != nil && !f.License.IsZero() {
			faults = append(faults, prosody.Fault{
				FootIndex:   i,
				Foot:        f.Name,
				License:     f.License.Name,
				Description: f.License.Description,
				Severity:    f.License.Severity,
				Correctable: f.License.Correctable,
			})
		}
	}

	return faults
}

// misaligned classifies foot f at position i when it stands where match
// expects an unrelated foot.
func (m *Matcher) misaligned(i int, f prosody.DetectedFoot, match *Match) (prosody.Fault, bool) {
	if match == nil || i >= len(match.Expected) {
		return prosody.Fault{}, false
	}
	expected, ok := m.cat.Foot(match.Expected[i])
	if !ok || f.Name == expected.Name || related(f, expected) {
		return prosody.Fault{}, false
	}

	lic := license.Classify(f.Pattern, expected.Pattern, expected.Name)
	if lic.IsZero() {
		return prosody.Fault{}, false
	}
	return prosody.Fault{
		FootIndex:   i,
		Foot:        f.Name,
		License:     lic.Name,
		Description: fmt.Sprintf("%s where %s was expected: %s", f.Name, expected.Name, lic.Description),
		Severity:    lic.Severity,
		Correctable: lic.Correctable,
	}, true
}
