package config

import (
	"fmt"

	"github.com/cognicore/farahidi/pkg/farahidi/catalogue"
)

// Loader loads the catalogue and engine settings
type Loader struct {
	CataloguePath string
	ConfigPath    string
}

// Components holds the loaded, validated components
type Components struct {
	Catalogue *catalogue.Catalogue
	Engine    *Engine
}

// Load reads the configured files and falls back to the built-in catalogue
// and default settings for empty paths
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	// Load catalogue
	if l.CataloguePath != "" {
		cat, err := catalogue.LoadFile(l.CataloguePath)
		if err != nil {
			return nil, fmt.Errorf("load catalogue: %w", err)
		}
		comp.Catalogue = cat
	} else {
		comp.Catalogue = catalogue.Default()
	}

	// Load engine settings
	if l.ConfigPath != "" {
		eng, err := LoadEngine(l.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load engine config: %w", err)
		}
		comp.Engine = eng
	} else {
		comp.Engine = Default()
	}

	return comp, nil
}
