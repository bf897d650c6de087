package farahidi

import (
	"github.com/cognicore/farahidi/pkg/farahidi/advisor"
	"github.com/cognicore/farahidi/pkg/farahidi/catalogue"
	"github.com/cognicore/farahidi/pkg/farahidi/config"
	"github.com/cognicore/farahidi/pkg/farahidi/meter"
	"github.com/cognicore/farahidi/pkg/farahidi/phonology"
	"github.com/cognicore/farahidi/pkg/farahidi/prosody"
	"github.com/cognicore/farahidi/pkg/farahidi/segment"
)

// Engine is the scansion facade. It holds only read-only state and is safe
// for concurrent use.
type Engine struct {
	segmenter *segment.Segmenter
	matcher   *meter.Matcher
	penalties advisor.Penalties
	separator string
}

// Options configures an Engine. Nil fields fall back to the built-in
// catalogue and the default settings.
type Options struct {
	Catalogue *catalogue.Catalogue
	Config    *config.Engine
}

// New creates an Engine with the given dependencies
func New(opts Options) *Engine {
	cat := opts.Catalogue
	if cat == nil {
		cat = catalogue.Default()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	return &Engine{
		segmenter: segment.New(cat),
		matcher:   meter.New(cat, cfg.MatcherOptions()),
		penalties: cfg.AdvisorPenalties(),
		separator: cfg.CorrectionSeparator,
	}
}

// ScansionResult is the full analysis of one hemistich
type ScansionResult struct {
	OriginalText   string
	NormalizedText string
	ArudiText      string
	Skeleton       string
	Feet           []prosody.DetectedFoot
	Unscanned      []int
	Meter          *meter.Match // nil when no meter reached the partial threshold
	Faults         []prosody.Fault
	Confidence     float64
	Suggestion     string
}

// IsValid reports whether a meter was matched at the valid threshold
func (r ScansionResult) IsValid() bool {
	return r.Meter != nil && r.Meter.IsValid()
}

// Analyze scans one hemistich. It never fails: text that yields no feet
// produces a result with no meter and zero confidence.
func (e *Engine) Analyze(text string) ScansionResult {
	tokens := phonology.Tokenize(text)
	skel := phonology.Encode(tokens)
	feet := e.segmenter.Segment(skel)

	res := ScansionResult{
		OriginalText:   text,
		NormalizedText: phonology.Normalize(text),
		ArudiText:      phonology.ArudiWriting(tokens),
		Skeleton:       skel.String(),
		Feet:           feet,
		Unscanned:      segment.Unscanned(skel, feet),
	}

	score := 0.0
	if match, ok := e.matcher.Match(feet); ok {
		res.Meter = &match
		score = match.Score
	}

	res.Faults = e.matcher.Faults(feet, res.Meter)
	res.Confidence = advisor.Confidence(score, res.Faults, e.penalties)
	res.Suggestion = advisor.Suggestion(res.Faults, e.separator)

	return res
}
