package meter

import (
	"math"
	"reflect"
	"testing"

	"github.com/cognicore/farahidi/pkg/farahidi/catalogue"
	"github.com/cognicore/farahidi/pkg/farahidi/prosody"
)

const testCatalogue = `
feet:
  - name: a
    pattern: "110"
    related: [c]
    variants:
      - pattern: "11"
        license: cut
  - name: b
    pattern: "10"
  - name: c
    pattern: "1010"
meters:
  - name: first
    forms:
      - form: complete
        feet: [a, b]
  - name: second
    forms:
      - form: complete
        feet: [a, b]
`

func testMatcher(t *testing.T) (*Matcher, *catalogue.Catalogue) {
	t.Helper()
	cat, err := catalogue.Parse([]byte(testCatalogue))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return New(cat, DefaultOptions()), cat
}

func canonical(name, pattern string) prosody.DetectedFoot {
	return prosody.DetectedFoot{Name: name, Pattern: pattern, Canonical: true}
}

func TestMatchTawilOpening(t *testing.T) {
	m := New(catalogue.Default(), DefaultOptions())
	feet := []prosody.DetectedFoot{
		canonical(prosody.FootFaulun, "11010"),
		canonical(prosody.FootMafailun, "1101010"),
	}

	match, ok := m.Match(feet)
	if !ok {
		t.Fatal("Expected a match")
	}
	if match.Meter != prosody.MeterTawil {
		t.Errorf("Meter = %q, want %q", match.Meter, prosody.MeterTawil)
	}
	if match.Score != 1.0 || match.Status != Valid || !match.IsValid() {
		t.Errorf("Expected a full valid score, got %.3f %s", match.Score, match.Status)
	}
	if match.Form != prosody.DoublyTruncated {
		t.Errorf("Winning template form = %s", match.Form)
	}
	// Two intact feet of a four-foot meter.
	if match.SubForm != prosody.Truncated {
		t.Errorf("SubForm = %s, want truncated", match.SubForm)
	}
	if faults := m.Faults(feet, &match); len(faults) != 0 {
		t.Errorf("Canonical feet should produce no faults, got %+v", faults)
	}
}

func TestMatchBelowFloor(t *testing.T) {
	m := New(catalogue.Default(), DefaultOptions())
	var feet []prosody.DetectedFoot
	for i := 0; i < 5; i++ {
		feet = append(feet, canonical(prosody.FootMafulatu, "1010101"))
	}

	if match, ok := m.Match(feet); ok {
		t.Errorf("Expected no match, got %s at %.2f", match.Meter, match.Score)
	}
}

func TestMatchEmpty(t *testing.T) {
	m := New(catalogue.Default(), DefaultOptions())
	if _, ok := m.Match(nil); ok {
		t.Error("No feet should never match")
	}
}

func TestMatchTiesGoToFirstEntry(t *testing.T) {
	m, _ := testMatcher(t)

	match, ok := m.Match([]prosody.DetectedFoot{canonical("a", "110"), canonical("b", "10")})
	if !ok {
		t.Fatal("Expected a match")
	}
	if match.Meter != "first" {
		t.Errorf("Tie should go to the first template, got %q", match.Meter)
	}
	if !reflect.DeepEqual(match.Expected, []string{"a", "b"}) {
		t.Errorf("Expected = %v", match.Expected)
	}
}

func TestMatchTiesInDefaultCatalogue(t *testing.T) {
	m := New(catalogue.Default(), DefaultOptions())

	// al-Rajaz and al-Khafīf both score 2.75/3; al-Rajaz is listed first.
	feet := []prosody.DetectedFoot{
		canonical(prosody.FootFailatun, "1011010"),
		canonical(prosody.FootMustafilun, "1010110"),
		canonical(prosody.FootMustafilun, "1010110"),
	}
	match, ok := m.Match(feet)
	if !ok {
		t.Fatal("Expected a match")
	}
	if match.Meter != prosody.MeterRajaz || match.Form != prosody.Complete {
		t.Errorf("Got %s/%s, want al-Rajaz/complete", match.Meter, match.Form)
	}
	if want := 2.75 / 3; math.Abs(match.Score-want) > 1e-9 {
		t.Errorf("Score = %.4f, want %.4f", match.Score, want)
	}
}

func TestMatchRelatedCredit(t *testing.T) {
	m, _ := testMatcher(t)

	tests := []struct {
		name string
		foot prosody.DetectedFoot
	}{
		{"listed as related", canonical("c", "1010")},
		{"pattern admitted by expected foot", prosody.DetectedFoot{Name: "c", Pattern: "11"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feet := []prosody.DetectedFoot{tt.foot, canonical("b", "10")}
			match, ok := m.Match(feet)
			if !ok {
				t.Fatal("Expected a match")
			}
			if want := (0.75 + 1) / 2; math.Abs(match.Score-want) > 1e-9 {
				t.Errorf("Score = %.4f, want %.4f", match.Score, want)
			}
			if match.Status != Valid {
				t.Errorf("Status = %s", match.Status)
			}
			for _, f := range m.Faults(feet, &match) {
				if f.Severity == prosody.Critical {
					t.Errorf("Related foot should not be a break: %+v", f)
				}
			}
		})
	}
}

func TestMatchCustomRelatedCredit(t *testing.T) {
	cat, err := catalogue.Parse([]byte(testCatalogue))
	if err != nil {
		t.Fatal(err)
	}
	opts := DefaultOptions()
	opts.RelatedCredit = 0.8
	m := New(cat, opts)

	match, _ := m.Match([]prosody.DetectedFoot{canonical("c", "1010"), canonical("b", "10")})
	if want := 0.9; math.Abs(match.Score-want) > 1e-9 {
		t.Errorf("Score = %.4f, want %.4f", match.Score, want)
	}
}

func TestMatchPartialWithBreak(t *testing.T) {
	m, _ := testMatcher(t)

	feet := []prosody.DetectedFoot{canonical("a", "110"), canonical("c", "1010")}
	match, ok := m.Match(feet)
	if !ok {
		t.Fatal("Score 0.5 should still be a partial match")
	}
	if match.Status != Partial || match.IsValid() {
		t.Errorf("Status = %s, want partial", match.Status)
	}

	faults := m.Faults(feet, &match)
	if len(faults) != 1 {
		t.Fatalf("Expected one fault, got %+v", faults)
	}
	f := faults[0]
	if f.FootIndex != 1 || f.License != prosody.LicenseUnclassified || f.Severity != prosody.Critical || f.Correctable {
		t.Errorf("Unexpected fault %+v", f)
	}
}

func TestMatchNoCredit(t *testing.T) {
	m, _ := testMatcher(t)

	if _, ok := m.Match([]prosody.DetectedFoot{canonical("b", "10"), canonical("a", "110")}); ok {
		t.Error("Swapped feet should not match")
	}
}

func TestFaultsForLicensedFeet(t *testing.T) {
	m, cat := testMatcher(t)
	a, _ := cat.Foot("a")
	v, _ := a.Variant("11")
	lic := v.License

	feet := []prosody.DetectedFoot{
		{Name: "a", Pattern: "11", License: &lic},
		canonical("b", "10"),
	}

	for _, match := range []*Match{nil, {Expected: []string{"a", "b"}}} {
		faults := m.Faults(feet, match)
		if len(faults) != 1 {
			t.Fatalf("Expected the license as the only fault, got %+v", faults)
		}
		f := faults[0]
		if f.FootIndex != 0 || f.Foot != "a" || f.License != "cut" {
			t.Errorf("Unexpected fault %+v", f)
		}
		if f.Severity != prosody.Acceptable || !f.Correctable {
			t.Errorf("Catalogued variant should be acceptable and correctable: %+v", f)
		}
	}
}

func TestFaultsMisalignedLicensedFoot(t *testing.T) {
	m, cat := testMatcher(t)
	a, _ := cat.Foot("a")
	v, _ := a.Variant("11")
	lic := v.License

	// A variant of a standing where b is expected: one verdict, not two.
	feet := []prosody.DetectedFoot{{Name: "a", Pattern: "11", License: &lic}}
	faults := m.Faults(feet, &Match{Expected: []string{"b"}})
	if len(faults) != 1 {
		t.Fatalf("Expected one fault, got %+v", faults)
	}
	f := faults[0]
	if f.FootIndex != 0 || f.License != prosody.LicenseTayy {
		t.Errorf("Expected the classifier verdict against b, got %+v", f)
	}
}

func TestDeriveSubForm(t *testing.T) {
	tests := []struct {
		n, full int
		want    prosody.SubForm
	}{
		{4, 4, prosody.Complete},
		{5, 4, prosody.Complete},
		{3, 4, prosody.Truncated},
		{2, 4, prosody.Truncated},
		{1, 4, prosody.Curtailed},
		{2, 3, prosody.Truncated},
		{1, 3, prosody.DoublyTruncated},
		{0, 3, prosody.Curtailed},
		{1, 2, prosody.Truncated},
	}

	for _, tt := range tests {
		if got := deriveSubForm(tt.n, tt.full); got != tt.want {
			t.Errorf("deriveSubForm(%d, %d) = %s, want %s", tt.n, tt.full, got, tt.want)
		}
	}
}

func TestSubFormCountsOnlyCanonicalFeet(t *testing.T) {
	m := New(catalogue.Default(), DefaultOptions())
	lic := prosody.License{Name: prosody.LicenseKhabn, Severity: prosody.Acceptable, Correctable: true}

	// Four mutaqārib feet, three of them licensed: one intact foot of four.
	feet := []prosody.DetectedFoot{canonical(prosody.FootFaulun, "11010")}
	for i := 0; i < 3; i++ {
		feet = append(feet, prosody.DetectedFoot{Name: prosody.FootFaulun, Pattern: "1101", License: &lic})
	}

	match, ok := m.Match(feet)
	if !ok || match.Meter != prosody.MeterMutaqarib {
		t.Fatalf("Expected al-Mutaqārib, got %+v", match)
	}
	if match.Form != prosody.Complete || match.SubForm != prosody.Curtailed {
		t.Errorf("Form %s / SubForm %s", match.Form, match.SubForm)
	}
	if faults := m.Faults(feet, &match); len(faults) != 3 {
		t.Errorf("Expected three license faults, got %d", len(faults))
	}
}
