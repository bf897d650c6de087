// Package catalogue holds the static tables of feet and meters.
//
// A Catalogue is built once, from the embedded YAML or from a file, and is
// read-only afterwards, so one instance can be shared by any number of
// concurrent analyses.
package catalogue

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/farahidi/pkg/farahidi/internalerr"
	"github.com/cognicore/farahidi/pkg/farahidi/license"
	"github.com/cognicore/farahidi/pkg/farahidi/prosody"
)

//go:embed catalogue.yaml
var builtinYAML []byte

var builtin = sync.OnceValues(func() (*Catalogue, error) {
	return Parse(builtinYAML)
})

// Variant is a licensed realisation of a foot.
type Variant struct {
	Pattern string
	License prosody.License
}

// Foot is a foot template: its canonical pattern and admissible variants.
type Foot struct {
	Name     string
	Arabic   string
	Pattern  string
	Related  []string // feet this one may legitimately stand in for
	Variants []Variant
}

// Variant returns the registered variant with the given pattern.
func (f *Foot) Variant(pattern string) (Variant, bool) {
	for _, v := range f.Variants {
		if v.Pattern == pattern {
			return v, true
		}
	}
	return Variant{}, false
}

// Admits reports whether pattern is the canonical pattern or a registered
// variant of the foot.
func (f *Foot) Admits(pattern string) bool {
	if pattern == f.Pattern {
		return true
	}
	_, ok := f.Variant(pattern)
	return ok
}

// IsRelated reports whether the named foot is listed as a substitute.
func (f *Foot) IsRelated(name string) bool {
	for _, r := range f.Related {
		if r == name {
			return true
		}
	}
	return false
}

// Template is one sub-form of a meter: the ordered feet of a hemistich.
type Template struct {
	Meter  string
	Arabic string
	Form   prosody.SubForm
	Feet   []*Foot
}

// Names returns the foot names of the template in order.
func (t Template) Names() []string {
	names := make([]string, len(t.Feet))
	for i, f := range t.Feet {
		names[i] = f.Name
	}
	return names
}

// Meter groups the templates of one meter.
type Meter struct {
	Name   string
	Arabic string
	Forms  []Template
}

// Catalogue is the validated set of feet and meters.
type Catalogue struct {
	feet      []*Foot
	byName    map[string]*Foot
	byLength  []*Foot
	meters    []Meter
	templates []Template
	full      map[string]int
}

// Default returns the built-in catalogue. The embedded tables are covered by
// tests, so a parse failure here is a programming error.
func Default() *Catalogue {
	c, err := builtin()
	if err != nil {
		panic(fmt.Sprintf("catalogue: built-in tables: %v", err))
	}
	return c
}

// LoadFile reads and validates a catalogue from a YAML file.
func LoadFile(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Foot looks a foot up by name.
func (c *Catalogue) Foot(name string) (*Foot, bool) {
	f, ok := c.byName[name]
	return f, ok
}

// Feet returns the feet in catalogue order.
func (c *Catalogue) Feet() []*Foot {
	return append([]*Foot(nil), c.feet...)
}

// ByLength returns the feet ordered by descending canonical length, keeping
// catalogue order among feet of equal length.
func (c *Catalogue) ByLength() []*Foot {
	return append([]*Foot(nil), c.byLength...)
}

// Meters returns the meters in catalogue order.
func (c *Catalogue) Meters() []Meter {
	return append([]Meter(nil), c.meters...)
}

// Templates returns every (meter, sub-form) template in catalogue order.
func (c *Catalogue) Templates() []Template {
	return append([]Template(nil), c.templates...)
}

// FullLength returns the number of feet in the complete form of a meter.
func (c *Catalogue) FullLength(meter string) (int, bool) {
	n, ok := c.full[meter]
	return n, ok
}

// yamlCatalogue mirrors the on-disk layout.
type yamlCatalogue struct {
	Feet []struct {
		Name     string   `yaml:"name"`
		Arabic   string   `yaml:"arabic"`
		Pattern  string   `yaml:"pattern"`
		Related  []string `yaml:"related"`
		Variants []struct {
			Pattern     string `yaml:"pattern"`
			License     string `yaml:"license"`
			Description string `yaml:"description"`
			Severity    string `yaml:"severity"`
			Correctable *bool  `yaml:"correctable"`
		} `yaml:"variants"`
	} `yaml:"feet"`
	Meters []struct {
		Name   string `yaml:"name"`
		Arabic string `yaml:"arabic"`
		Forms  []struct {
			Form string   `yaml:"form"`
			Feet []string `yaml:"feet"`
		} `yaml:"forms"`
	} `yaml:"meters"`
}

// Parse builds a catalogue from YAML and validates it.
//
// A variant without a license is named by the positional classifier.
// A variant without a severity is acceptable, and a variant is correctable
// unless it is critical or says otherwise.
func Parse(data []byte) (*Catalogue, error) {
	var raw yamlCatalogue
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidCatalogue, err)
	}

	if len(raw.Feet) == 0 {
		return nil, fmt.Errorf("%w: no feet", internalerr.ErrInvalidCatalogue)
	}
	if len(raw.Meters) == 0 {
		return nil, fmt.Errorf("%w: no meters", internalerr.ErrInvalidCatalogue)
	}

	c := &Catalogue{
		byName: make(map[string]*Foot, len(raw.Feet)),
		full:   make(map[string]int, len(raw.Meters)),
	}

	for _, rf := range raw.Feet {
		if rf.Name == "" {
			return nil, fmt.Errorf("%w: foot without a name", internalerr.ErrInvalidCatalogue)
		}
		if _, dup := c.byName[rf.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate foot %q", internalerr.ErrInvalidCatalogue, rf.Name)
		}
		if !prosody.IsBitString(rf.Pattern) {
			return nil, fmt.Errorf("%w: foot %q: pattern %q is not a bit-string", internalerr.ErrInvalidCatalogue, rf.Name, rf.Pattern)
		}

		foot := &Foot{
			Name:    rf.Name,
			Arabic:  rf.Arabic,
			Pattern: rf.Pattern,
			Related: rf.Related,
		}

		seen := map[string]bool{rf.Pattern: true}
		for _, rv := range rf.Variants {
			if !prosody.IsBitString(rv.Pattern) {
				return nil, fmt.Errorf("%w: foot %q: variant %q is not a bit-string", internalerr.ErrInvalidCatalogue, rf.Name, rv.Pattern)
			}
			if seen[rv.Pattern] {
				return nil, fmt.Errorf("%w: foot %q: variant %q repeats a registered pattern", internalerr.ErrInvalidCatalogue, rf.Name, rv.Pattern)
			}
			seen[rv.Pattern] = true

			lic, err := variantLicense(rf.Name, rf.Pattern, rv.Pattern, rv.License, rv.Description, rv.Severity, rv.Correctable)
			if err != nil {
				return nil, err
			}
			foot.Variants = append(foot.Variants, Variant{Pattern: rv.Pattern, License: lic})
		}

		c.feet = append(c.feet, foot)
		c.byName[foot.Name] = foot
	}

	canonical := make(map[string]string, len(c.feet))
	for _, f := range c.feet {
		canonical[f.Pattern] = f.Name
	}
	for _, f := range c.feet {
		for _, v := range f.Variants {
			if owner, ok := canonical[v.Pattern]; ok {
				return nil, fmt.Errorf("%w: foot %q: variant %q is the canonical pattern of %q", internalerr.ErrInvalidCatalogue, f.Name, v.Pattern, owner)
			}
		}
		for _, r := range f.Related {
			if _, ok := c.byName[r]; !ok {
				return nil, fmt.Errorf("%w: foot %q: related foot %q is unknown", internalerr.ErrInvalidCatalogue, f.Name, r)
			}
		}
	}

	c.byLength = append([]*Foot(nil), c.feet...)
	sort.SliceStable(c.byLength, func(i, j int) bool {
		return len(c.byLength[i].Pattern) > len(c.byLength[j].Pattern)
	})

	seenMeters := make(map[string]bool, len(raw.Meters))
	for _, rm := range raw.Meters {
		if rm.Name == "" {
			return nil, fmt.Errorf("%w: meter without a name", internalerr.ErrInvalidCatalogue)
		}
		if seenMeters[rm.Name] {
			return nil, fmt.Errorf("%w: duplicate meter %q", internalerr.ErrInvalidCatalogue, rm.Name)
		}
		seenMeters[rm.Name] = true

		meter := Meter{Name: rm.Name, Arabic: rm.Arabic}
		forms := make(map[prosody.SubForm]bool, len(rm.Forms))
		for _, rform := range rm.Forms {
			form := prosody.SubForm(rform.Form)
			if !form.Valid() {
				return nil, fmt.Errorf("%w: meter %q: unknown form %q", internalerr.ErrInvalidCatalogue, rm.Name, rform.Form)
			}
			if forms[form] {
				return nil, fmt.Errorf("%w: meter %q: duplicate form %q", internalerr.ErrInvalidCatalogue, rm.Name, form)
			}
			forms[form] = true
			if len(rform.Feet) == 0 {
				return nil, fmt.Errorf("%w: meter %q: form %q has no feet", internalerr.ErrInvalidCatalogue, rm.Name, form)
			}

			tmpl := Template{Meter: rm.Name, Arabic: rm.Arabic, Form: form}
			for _, name := range rform.Feet {
				foot, ok := c.byName[name]
				if !ok {
					return nil, fmt.Errorf("%w: meter %q: unknown foot %q", internalerr.ErrInvalidCatalogue, rm.Name, name)
				}
				tmpl.Feet = append(tmpl.Feet, foot)
			}

			if form == prosody.Complete {
				c.full[rm.Name] = len(tmpl.Feet)
			}
			meter.Forms = append(meter.Forms, tmpl)
			c.templates = append(c.templates, tmpl)
		}
		if !forms[prosody.Complete] {
			return nil, fmt.Errorf("%w: meter %q has no complete form", internalerr.ErrInvalidCatalogue, rm.Name)
		}
		c.meters = append(c.meters, meter)
	}

	return c, nil
}

func variantLicense(foot, canonical, pattern, name, desc, severity string, correctable *bool) (prosody.License, error) {
	if name == "" {
		lic := license.Classify(pattern, canonical, foot)
		if desc != "" {
			lic.Description = desc
		}
		return lic, nil
	}

	lic := prosody.License{
		Name:        name,
		Description: desc,
		Severity:    prosody.Acceptable,
	}
	if severity != "" {
		lic.Severity = prosody.Severity(severity)
	}
	if lic.Severity != prosody.Acceptable && lic.Severity != prosody.Critical {
		return prosody.License{}, fmt.Errorf("%w: foot %q: variant %q: unknown severity %q", internalerr.ErrInvalidCatalogue, foot, pattern, severity)
	}
	if lic.Description == "" {
		lic.Description = name
	}

	lic.Correctable = lic.Severity != prosody.Critical
	if correctable != nil {
		lic.Correctable = *correctable
	}
	return lic, nil
}
