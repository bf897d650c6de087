// Package advisor turns a match score and its faults into a confidence
// figure and a correction hint.
package advisor

import (
	"math"
	"strings"

	"github.com/cognicore/farahidi/pkg/farahidi/prosody"
)

// Penalties are the confidence points removed per fault.
type Penalties struct {
	Critical   float64
	Acceptable float64
}

// DefaultPenalties returns the standard 20/5 penalties.
func DefaultPenalties() Penalties {
	return Penalties{Critical: 20, Acceptable: 5}
}

// DefaultSeparator joins the descriptions in a suggestion.
const DefaultSeparator = " | "

// Confidence computes max(0, score*100 - penalties), rounded to two
// decimals. score is the alignment score in [0, 1]; pass 0 when no meter
// matched.
func Confidence(score float64, faults []prosody.Fault, p Penalties) float64 {
	c := score * 100
	for _, f := range faults {
		switch f.Severity {
		case prosody.Critical:
			c -= p.Critical
		case prosody.Acceptable:
			c -= p.Acceptable
		}
	}
	if c < 0 {
		c = 0
	}
	if c > 100 {
		c = 100
	}
	return math.Round(c*100) / 100
}

// Suggestion joins the descriptions of the correctable, non-critical faults
// with sep. It is empty when no fault qualifies.
func Suggestion(faults []prosody.Fault, sep string) string {
	var parts []string
	for _, f := range faults {
		if !f.Correctable || f.Severity == prosody.Critical {
			continue
		}
		desc := f.Description
		if desc == "" {
			desc = f.License
		}
		parts = append(parts, f.Foot+": "+desc)
	}
	return strings.Join(parts, sep)
}
