package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/farahidi/pkg/farahidi/internalerr"
)

func TestDefault(t *testing.T) {
	e := Default()

	if e.Thresholds.Valid != 0.7 || e.Thresholds.Partial != 0.5 {
		t.Errorf("Unexpected thresholds %+v", e.Thresholds)
	}
	if e.RelatedCredit != 0.75 {
		t.Errorf("Expected related credit 0.75, got %v", e.RelatedCredit)
	}
	if e.Penalties.Critical != 20 || e.Penalties.Acceptable != 5 {
		t.Errorf("Unexpected penalties %+v", e.Penalties)
	}
	if e.CorrectionSeparator != " | " {
		t.Errorf("Unexpected separator %q", e.CorrectionSeparator)
	}
	if err := e.Validate(); err != nil {
		t.Errorf("Default settings should validate: %v", err)
	}
}

func TestLoadEngine(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "engine.yaml")

	content := `thresholds:
  valid: 0.8
related_credit: 0.7
penalties:
  critical: 25
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	e, err := LoadEngine(path)
	if err != nil {
		t.Fatalf("Failed to load engine config: %v", err)
	}

	if e.Thresholds.Valid != 0.8 {
		t.Errorf("Expected valid threshold 0.8, got %v", e.Thresholds.Valid)
	}
	// Keys not in the file keep defaults
	if e.Thresholds.Partial != 0.5 {
		t.Errorf("Expected default partial threshold, got %v", e.Thresholds.Partial)
	}
	if e.Penalties.Critical != 25 || e.Penalties.Acceptable != 5 {
		t.Errorf("Unexpected penalties %+v", e.Penalties)
	}

	opts := e.MatcherOptions()
	if opts.RelatedCredit != 0.7 || opts.Thresholds.Valid != 0.8 {
		t.Errorf("MatcherOptions = %+v", opts)
	}
	if p := e.AdvisorPenalties(); p.Critical != 25 {
		t.Errorf("AdvisorPenalties = %+v", p)
	}
}

func TestLoadEngineInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"partial above valid", "thresholds: {valid: 0.4, partial: 0.6}\n"},
		{"valid above one", "thresholds: {valid: 1.5}\n"},
		{"negative partial", "thresholds: {partial: -0.1}\n"},
		{"credit above one", "related_credit: 2\n"},
		{"negative penalty", "penalties: {acceptable: -5}\n"},
		{"malformed", "thresholds: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "engine.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadEngine(path)
			if !errors.Is(err, internalerr.ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadEngineMissingFile(t *testing.T) {
	if _, err := LoadEngine("/nonexistent/engine.yaml"); err == nil {
		t.Error("Should error on missing file")
	}
}
