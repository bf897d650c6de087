package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/farahidi/pkg/farahidi/advisor"
	"github.com/cognicore/farahidi/pkg/farahidi/internalerr"
	"github.com/cognicore/farahidi/pkg/farahidi/meter"
)

// Engine holds the tunables of a scansion engine
type Engine struct {
	Thresholds          Thresholds `yaml:"thresholds"`
	RelatedCredit       float64    `yaml:"related_credit"`
	Penalties           Penalties  `yaml:"penalties"`
	CorrectionSeparator string     `yaml:"correction_separator"`
}

// Thresholds are the score bands of a meter match
type Thresholds struct {
	Valid   float64 `yaml:"valid"`
	Partial float64 `yaml:"partial"`
}

// Penalties are the confidence points removed per fault
type Penalties struct {
	Critical   float64 `yaml:"critical"`
	Acceptable float64 `yaml:"acceptable"`
}

// Default returns the standard engine settings
func Default() *Engine {
	opts := meter.DefaultOptions()
	pen := advisor.DefaultPenalties()

	return &Engine{
		Thresholds: Thresholds{
			Valid:   opts.Thresholds.Valid,
			Partial: opts.Thresholds.Partial,
		},
		RelatedCredit: opts.RelatedCredit,
		Penalties: Penalties{
			Critical:   pen.Critical,
			Acceptable: pen.Acceptable,
		},
		CorrectionSeparator: advisor.DefaultSeparator,
	}
}

// LoadEngine loads engine settings from a YAML file. Keys missing from the
// file keep their default values.
func LoadEngine(path string) (*Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	e := Default()
	if err := yaml.Unmarshal(data, e); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate checks that thresholds, credit and penalties are in range
func (e *Engine) Validate() error {
	if e.Thresholds.Partial < 0 || e.Thresholds.Valid > 1 || e.Thresholds.Partial > e.Thresholds.Valid {
		return fmt.Errorf("%w: thresholds must satisfy 0 <= partial <= valid <= 1, got partial=%v valid=%v",
			internalerr.ErrInvalidConfig, e.Thresholds.Partial, e.Thresholds.Valid)
	}
	if e.RelatedCredit < 0 || e.RelatedCredit > 1 {
		return fmt.Errorf("%w: related_credit must be in [0, 1], got %v", internalerr.ErrInvalidConfig, e.RelatedCredit)
	}
	if e.Penalties.Critical < 0 || e.Penalties.Acceptable < 0 {
		return fmt.Errorf("%w: penalties must not be negative", internalerr.ErrInvalidConfig)
	}
	return nil
}

// MatcherOptions converts the settings for the meter matcher
func (e *Engine) MatcherOptions() meter.Options {
	return meter.Options{
		RelatedCredit: e.RelatedCredit,
		Thresholds: meter.Thresholds{
			Valid:   e.Thresholds.Valid,
			Partial: e.Thresholds.Partial,
		},
	}
}

// AdvisorPenalties converts the settings for the advisor
func (e *Engine) AdvisorPenalties() advisor.Penalties {
	return advisor.Penalties{
		Critical:   e.Penalties.Critical,
		Acceptable: e.Penalties.Acceptable,
	}
}
